package models

// Event is a serverless-function style invocation payload.
type Event struct {
	HTTPMethod      string            `json:"httpMethod"`
	Path            string            `json:"path,omitempty"`
	Headers         map[string]string `json:"headers"`
	Body            string            `json:"body"`
	IsBase64Encoded bool              `json:"isBase64Encoded,omitempty"`
}

// Result is the function response written back to the host.
type Result struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers,omitempty"`
	Body       string            `json:"body"`
}
