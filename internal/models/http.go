// Package models defines the request, response and submission structures
// shared by the HTTP, gRPC and function transports.
package models

import (
	"net/http"
	"strings"
)

// Headers maps lower-cased header names to their values.
type Headers map[string]string

// NewHeaders builds Headers from an arbitrary-cased map.
func NewHeaders(src map[string]string) Headers {
	h := make(Headers, len(src))
	for k, v := range src {
		h[strings.ToLower(k)] = v
	}
	return h
}

// HeadersFromHTTP converts http.Header into Headers. Repeated values
// are joined with ", ".
func HeadersFromHTTP(src http.Header) Headers {
	h := make(Headers, len(src))
	for k, v := range src {
		h[strings.ToLower(k)] = strings.Join(v, ", ")
	}
	return h
}

// Get returns the value stored for name, ignoring case.
func (h Headers) Get(name string) string {
	return h[strings.ToLower(name)]
}

// Lookup is like Get but also reports whether the header was present.
func (h Headers) Lookup(name string) (string, bool) {
	v, ok := h[strings.ToLower(name)]
	return v, ok
}

// Request is a transport-independent view of an incoming call.
type Request struct {
	// Method is the HTTP method, e.g. "POST".
	Method string

	// Headers holds the request headers keyed by lower-cased name.
	Headers Headers

	// Body is the raw request body, expected to be JSON.
	Body []byte
}

// Response is the outcome of handling a Request.
type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
}

// SuccessResponse is the body returned for an accepted submission.
type SuccessResponse struct {
	Success  bool     `json:"success"`
	Message  string   `json:"message"`
	Metadata Metadata `json:"metadata"`
}

// ErrorResponse is the body returned for rejected or failed submissions.
type ErrorResponse struct {
	Error string `json:"error"`

	// Details carries the underlying error text for processing failures.
	Details string `json:"details,omitempty"`
}
