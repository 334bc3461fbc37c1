package handler

import (
	"net/http"

	"github.com/atinyakov/go-submission-handler/internal/models"
)

// Ping answers liveness probes.
func Ping(res http.ResponseWriter, _ *http.Request) {
	res.Header().Set("Content-Type", "text/plain; charset=utf-8")
	res.WriteHeader(http.StatusOK)
	_, _ = res.Write([]byte("pong"))
}

// NotFound reports unknown routes in the same JSON shape as submission errors.
func NotFound(res http.ResponseWriter, _ *http.Request) {
	_ = writeJSON(res, http.StatusNotFound, models.ErrorResponse{Error: "Route not found"})
}
