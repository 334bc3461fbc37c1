// Package recorder provides sinks for accepted submissions: the structured
// log, an append-only JSON Lines journal, and a fan-out over several sinks.
package recorder

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/atinyakov/go-submission-handler/internal/middleware"
	"github.com/atinyakov/go-submission-handler/internal/models"
)

// Recorder mirrors service.Recorder so this package stays free of the service import.
type Recorder interface {
	Record(context.Context, models.Submission) error
}

// LogRecorder writes each submission to a zap logger.
type LogRecorder struct {
	logger *zap.Logger
}

// NewLogRecorder creates a LogRecorder.
func NewLogRecorder(logger *zap.Logger) *LogRecorder {
	return &LogRecorder{logger: logger}
}

// Record logs the message and its metadata.
func (r *LogRecorder) Record(ctx context.Context, s models.Submission) error {
	r.logger.Info("Message received",
		zap.String("request_id", middleware.RequestIDFromContext(ctx)),
		zap.String("message", s.Message),
		zap.Object("metadata", s.Metadata),
	)
	return nil
}

// Multi records to every wrapped recorder and joins their errors.
type Multi []Recorder

// Record calls each recorder in order, even after a failure.
func (m Multi) Record(ctx context.Context, s models.Submission) error {
	var errs []error
	for _, r := range m {
		if err := r.Record(ctx, s); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
