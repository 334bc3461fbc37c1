// Package function runs the submission service as a serverless function:
// an event in the Netlify/Lambda shape goes in, a result comes out.
package function

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"github.com/atinyakov/go-submission-handler/internal/app/service"
	"github.com/atinyakov/go-submission-handler/internal/models"
)

// Invoke handles a single event.
func Invoke(ctx context.Context, s service.SubmissionServiceIface, event models.Event) models.Result {
	body := []byte(event.Body)
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			return toResult(service.ResponseFor(&service.ProcessingError{Err: fmt.Errorf("decode base64 body: %w", err)}))
		}
		body = decoded
	}

	resp := s.Handle(ctx, models.Request{
		Method:  event.HTTPMethod,
		Headers: models.NewHeaders(event.Headers),
		Body:    body,
	})

	return toResult(resp)
}

// Run decodes one event from r, invokes the service and encodes the result to w.
func Run(ctx context.Context, s service.SubmissionServiceIface, r io.Reader, w io.Writer) error {
	var event models.Event
	if err := json.NewDecoder(r).Decode(&event); err != nil {
		return fmt.Errorf("decode event: %w", err)
	}

	return json.NewEncoder(w).Encode(Invoke(ctx, s, event))
}

func toResult(resp models.Response) models.Result {
	return models.Result{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       string(resp.Body),
	}
}
