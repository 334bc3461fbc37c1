package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/crypto/acme/autocert"

	"github.com/atinyakov/go-submission-handler/internal/app/server"
	grpcserver "github.com/atinyakov/go-submission-handler/internal/app/server/grpc"
	"github.com/atinyakov/go-submission-handler/internal/app/service"
	"github.com/atinyakov/go-submission-handler/internal/config"
	"github.com/atinyakov/go-submission-handler/internal/logger"
	"github.com/atinyakov/go-submission-handler/internal/recorder"

	_ "net/http/pprof"
)

var buildVersion string
var buildDate string
var buildCommit string

func main() {
	options, err := config.Parse()
	if err != nil {
		panic(err)
	}

	fmt.Printf("Build version: %s\n", orNA(buildVersion))
	fmt.Printf("Build date: %s\n", orNA(buildDate))
	fmt.Printf("Build commit: %s\n", orNA(buildCommit))

	log := logger.New()
	defer log.Sync()

	if err := log.Init(options.LogLevel); err != nil {
		panic(err)
	}
	zapLogger := log.Log

	if options.EnablePprof {
		go func() {
			zapLogger.Info("Starting pprof server", zap.String("addr", "localhost:6060"))
			if err := http.ListenAndServe("localhost:6060", nil); err != nil {
				zapLogger.Error("pprof server error", zap.Error(err))
			}
		}()
	}

	recorders := recorder.Multi{recorder.NewLogRecorder(zapLogger)}
	if options.SubmissionLogPath != "" {
		journal, err := recorder.NewFileRecorder(options.SubmissionLogPath, zapLogger)
		if err != nil {
			panic(err)
		}
		defer journal.Close()
		recorders = append(recorders, journal)
	}

	submissionService := service.NewSubmission(recorders, zapLogger)
	r := server.Init(zapLogger, submissionService, server.Options{
		AllowedOrigins: options.Origins(),
		MaxBodyBytes:   options.MaxBodyBytes,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var grpcSrv *grpcserver.Server
	if options.GRPCPort != 0 {
		grpcSrv = grpcserver.New(zapLogger, submissionService, options.GRPCPort)
		go func() {
			if err := grpcSrv.Start(); err != nil {
				zapLogger.Error("gRPC server error", zap.Error(err))
				stop()
			}
		}()
	}

	srv := &http.Server{
		Addr:    options.Port,
		Handler: r,
	}
	if options.EnableHTTPS {
		manager := &autocert.Manager{
			Cache:      autocert.DirCache("cache-dir"),
			Prompt:     autocert.AcceptTOS,
			HostPolicy: autocert.HostWhitelist(options.Hosts()...),
		}
		srv.Addr = ":443"
		srv.TLSConfig = manager.TLSConfig()
	}

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		panic(err)
	}
	zapLogger.Info("Server is running",
		zap.String("hostname", ln.Addr().String()),
		zap.Bool("tls", options.EnableHTTPS),
		zap.Strings("hosts", options.Hosts()),
	)

	serveErr := make(chan error, 1)
	go func() {
		if options.EnableHTTPS {
			serveErr <- srv.ServeTLS(ln, "", "")
			return
		}
		serveErr <- srv.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			panic(err)
		}
	case <-ctx.Done():
		zapLogger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), options.ShutdownTimeout.Duration)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("HTTP shutdown error", zap.Error(err))
	}
	if grpcSrv != nil {
		grpcSrv.GracefulStop()
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
