package models

import "go.uber.org/zap/zapcore"

// Metadata describes the client that sent a submission. It is derived
// from request headers and only used for diagnostics.
type Metadata struct {
	Timestamp string `json:"timestamp"`
	IP        string `json:"ip"`
	UserAgent string `json:"userAgent"`
	Referrer  string `json:"referrer"`
	Language  string `json:"language"`
	Country   string `json:"country"`

	// Accept and Encoding are nil, and left out of the JSON, when the
	// client did not send the corresponding header. An empty header is kept.
	Accept   *string `json:"accept,omitempty"`
	Encoding *string `json:"encoding,omitempty"`
}

// MarshalLogObject lets Metadata be logged as a nested zap object.
func (m Metadata) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("timestamp", m.Timestamp)
	enc.AddString("ip", m.IP)
	enc.AddString("userAgent", m.UserAgent)
	enc.AddString("referrer", m.Referrer)
	enc.AddString("language", m.Language)
	enc.AddString("country", m.Country)
	if m.Accept != nil {
		enc.AddString("accept", *m.Accept)
	}
	if m.Encoding != nil {
		enc.AddString("encoding", *m.Encoding)
	}
	return nil
}

// Submission is an accepted message together with its metadata.
type Submission struct {
	Message  string   `json:"message"`
	Metadata Metadata `json:"metadata"`
}
