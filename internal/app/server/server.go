// Package server assembles the HTTP router of the submission service.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/atinyakov/go-submission-handler/internal/app/handler"
	"github.com/atinyakov/go-submission-handler/internal/app/service"
	"github.com/atinyakov/go-submission-handler/internal/middleware"
)

// SubmitPaths are the routes the submission handler is mounted on.
var SubmitPaths = []string{"/", "/api/submit", "/.netlify/functions/submit"}

// Options tunes the router.
type Options struct {
	AllowedOrigins []string
	MaxBodyBytes   int64
}

// Init builds the router. Every method reaches the submission handler so
// that rejected methods get the JSON 405 body. Preflight requests included:
// CORS headers are added and the handler still answers 405.
func Init(logger *zap.Logger, s service.SubmissionServiceIface, opts Options) *chi.Mux {
	submit := handler.NewSubmit(s, logger, opts.MaxBodyBytes)

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.WithRequestID)
	r.Use(middleware.WithRequestLogging(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Content-Encoding", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,

		OptionsPassthrough: true,
	}))
	r.Use(middleware.WithGzipRequest)
	r.Use(middleware.WithGzipResponse)

	for _, p := range SubmitPaths {
		r.HandleFunc(p, submit.Submit)
	}

	r.Get("/ping", handler.Ping)
	r.NotFound(handler.NotFound)

	return r
}
