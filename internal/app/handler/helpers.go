// Package handler adapts HTTP requests to the submission service: it reads
// the body under a size limit, normalises headers, and writes the service
// response back to the client.
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/atinyakov/go-submission-handler/internal/models"
)

// DefaultMaxBodyBytes is the body limit used when none is configured.
const DefaultMaxBodyBytes int64 = 1 << 20

// readBody reads the whole request body, refusing anything larger than limit.
func readBody(w http.ResponseWriter, r *http.Request, limit int64) ([]byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	defer r.Body.Close()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, fmt.Errorf("request body must not be larger than %d bytes", tooLarge.Limit)
		}
		return nil, fmt.Errorf("read request body: %w", err)
	}

	return body, nil
}

// writeResponse copies a service response onto w.
func writeResponse(w http.ResponseWriter, resp models.Response) error {
	for k, v := range resp.Headers {
		w.Header().Set(k, v)
	}
	w.WriteHeader(resp.StatusCode)

	_, err := w.Write(resp.Body)
	return err
}

// writeJSON writes payload with the given status.
func writeJSON(w http.ResponseWriter, status int, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(body)
	return err
}
