// Command invoke runs one submission event read from stdin and writes the
// function result to stdout, the way a serverless host would call it.
package main

import (
	"context"
	"os"

	"go.uber.org/zap"

	"github.com/atinyakov/go-submission-handler/internal/app/function"
	"github.com/atinyakov/go-submission-handler/internal/app/service"
	"github.com/atinyakov/go-submission-handler/internal/logger"
	"github.com/atinyakov/go-submission-handler/internal/recorder"
)

func main() {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "info"
	}

	// stdout carries the result, so logs go to stderr and LOG_PATH.
	var logPaths []string
	if p := os.Getenv("LOG_PATH"); p != "" {
		logPaths = append(logPaths, p)
	}

	log := logger.New()
	defer log.Sync()

	if err := log.Init(level, logPaths...); err != nil {
		panic(err)
	}
	log.Info("Invoking submission function", "log_level", level)

	svc := service.NewSubmission(recorder.NewLogRecorder(log.Log), log.Log)

	if err := function.Run(context.Background(), svc, os.Stdin, os.Stdout); err != nil {
		log.Log.Error("invocation failed", zap.Error(err))
		panic(err)
	}
}
