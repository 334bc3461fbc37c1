// Package service implements message submission: the method gate, body
// decoding, message validation, metadata extraction and the response
// mapping shared by every transport.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/atinyakov/go-submission-handler/internal/middleware"
	"github.com/atinyakov/go-submission-handler/internal/models"
)

// SubmissionService accepts messages and hands them to a Recorder.
type SubmissionService struct {
	recorder Recorder
	logger   *zap.Logger
	now      func() time.Time
}

// Option configures a SubmissionService.
type Option func(*SubmissionService)

// WithClock overrides the time source used for metadata timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *SubmissionService) {
		s.now = now
	}
}

// NewSubmission creates a SubmissionService.
func NewSubmission(recorder Recorder, logger *zap.Logger, opts ...Option) *SubmissionService {
	s := &SubmissionService{
		recorder: recorder,
		logger:   logger,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Handle runs Submit and converts its outcome into a response.
// It never returns an error; every failure becomes a terminal response.
func (s *SubmissionService) Handle(ctx context.Context, req models.Request) models.Response {
	sub, err := s.Submit(ctx, req)
	if err != nil {
		var pe *ProcessingError
		if errors.As(err, &pe) {
			s.logger.Error("Error processing message",
				zap.String("request_id", middleware.RequestIDFromContext(ctx)),
				zap.Error(err),
			)
		}
		return ResponseFor(err)
	}

	return jsonResponse(http.StatusOK, models.SuccessResponse{
		Success:  true,
		Message:  msgReceived,
		Metadata: sub.Metadata,
	})
}

// Submit validates req and records the resulting submission.
func (s *SubmissionService) Submit(ctx context.Context, req models.Request) (*models.Submission, error) {
	if req.Method != http.MethodPost {
		return nil, ErrMethodNotAllowed
	}

	message, err := decodeMessage(req.Body)
	if err != nil {
		return nil, err
	}

	sub := models.Submission{
		Message:  message,
		Metadata: ExtractMetadata(req.Headers, s.now()),
	}

	if err := s.recorder.Record(ctx, sub); err != nil {
		s.logger.Warn("failed to record submission",
			zap.String("request_id", middleware.RequestIDFromContext(ctx)),
			zap.Error(err),
		)
	}

	return &sub, nil
}

// decodeMessage extracts the message field from a JSON document.
// Absent and falsy values are ErrMessageRequired; a document that cannot
// be decoded or a message that is not text is a ProcessingError.
func decodeMessage(body []byte) (string, error) {
	var doc interface{}
	if err := json.Unmarshal(body, &doc); err != nil {
		return "", &ProcessingError{Err: err}
	}

	switch d := doc.(type) {
	case nil:
		return "", &ProcessingError{Err: errors.New("cannot read message of null document")}
	case map[string]interface{}:
		return messageValue(d["message"])
	default:
		return "", ErrMessageRequired
	}
}

func messageValue(v interface{}) (string, error) {
	switch m := v.(type) {
	case nil:
		return "", ErrMessageRequired
	case string:
		if strings.TrimSpace(m) == "" {
			return "", ErrMessageRequired
		}
		return m, nil
	case bool:
		if !m {
			return "", ErrMessageRequired
		}
	case float64:
		if m == 0 {
			return "", ErrMessageRequired
		}
	}

	return "", &ProcessingError{Err: fmt.Errorf("message must be a string, got %T", v)}
}
