package service

import (
	"context"

	"github.com/atinyakov/go-submission-handler/internal/models"
)

// Recorder receives every accepted submission. Implementations live in
// the recorder package.
type Recorder interface {
	Record(context.Context, models.Submission) error
}

// SubmissionServiceIface is what the transports depend on.
type SubmissionServiceIface interface {
	Handle(context.Context, models.Request) models.Response
}
