package service

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/atinyakov/go-submission-handler/internal/models"
)

var (
	// ErrMethodNotAllowed is returned for any method other than POST.
	ErrMethodNotAllowed = errors.New("method not allowed")

	// ErrMessageRequired is returned when the message is missing or blank.
	ErrMessageRequired = errors.New("message is required")
)

// ProcessingError wraps a failure while reading or decoding a submission.
type ProcessingError struct {
	Err error
}

// Error returns the text of the wrapped error.
func (e *ProcessingError) Error() string {
	return e.Err.Error()
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}

// Response texts.
const (
	msgMethodNotAllowed = "Method not allowed"
	msgMessageRequired  = "Message is required"
	msgProcessingFailed = "Failed to process message"
	msgReceived         = "Message received successfully"
)

// ResponseFor maps an error returned by Submit to its terminal response.
// Errors outside the taxonomy are reported as processing failures.
func ResponseFor(err error) models.Response {
	var pe *ProcessingError

	switch {
	case errors.Is(err, ErrMethodNotAllowed):
		return jsonResponse(http.StatusMethodNotAllowed, models.ErrorResponse{Error: msgMethodNotAllowed})
	case errors.Is(err, ErrMessageRequired):
		return jsonResponse(http.StatusBadRequest, models.ErrorResponse{Error: msgMessageRequired})
	case errors.As(err, &pe):
		return jsonResponse(http.StatusInternalServerError, models.ErrorResponse{Error: msgProcessingFailed, Details: pe.Error()})
	default:
		return jsonResponse(http.StatusInternalServerError, models.ErrorResponse{Error: msgProcessingFailed, Details: err.Error()})
	}
}

func jsonResponse(status int, payload interface{}) models.Response {
	body, err := json.Marshal(payload)
	if err != nil {
		status = http.StatusInternalServerError
		body = []byte(`{"error":"` + msgProcessingFailed + `"}`)
	}

	return models.Response{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       body,
	}
}
