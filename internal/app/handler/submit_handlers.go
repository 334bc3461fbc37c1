package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/atinyakov/go-submission-handler/internal/app/service"
	"github.com/atinyakov/go-submission-handler/internal/middleware"
	"github.com/atinyakov/go-submission-handler/internal/models"
)

// SubmitHandler adapts HTTP requests to the submission service.
type SubmitHandler struct {
	service      service.SubmissionServiceIface
	logger       *zap.Logger
	maxBodyBytes int64
}

// NewSubmit creates a SubmitHandler. A non-positive maxBodyBytes selects
// DefaultMaxBodyBytes.
func NewSubmit(s service.SubmissionServiceIface, l *zap.Logger, maxBodyBytes int64) *SubmitHandler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}

	return &SubmitHandler{
		service:      s,
		logger:       l,
		maxBodyBytes: maxBodyBytes,
	}
}

// Submit handles a message submission for any method; the service rejects
// everything but POST. The body is only read for POST requests.
func (h *SubmitHandler) Submit(res http.ResponseWriter, req *http.Request) {
	r := models.Request{
		Method:  req.Method,
		Headers: models.HeadersFromHTTP(req.Header),
	}

	if req.Method == http.MethodPost {
		body, err := readBody(res, req, h.maxBodyBytes)
		if err != nil {
			h.logger.Error("Error processing message",
				zap.String("request_id", middleware.RequestIDFromContext(req.Context())),
				zap.Error(err),
			)
			h.write(res, req, service.ResponseFor(&service.ProcessingError{Err: err}))
			return
		}
		r.Body = body
	}

	h.write(res, req, h.service.Handle(req.Context(), r))
}

func (h *SubmitHandler) write(res http.ResponseWriter, req *http.Request, resp models.Response) {
	if err := writeResponse(res, resp); err != nil {
		h.logger.Info("failed to write response",
			zap.String("request_id", middleware.RequestIDFromContext(req.Context())),
			zap.Error(err),
		)
	}
}
