package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	shared "github.com/trekline/server/pkg"
	"github.com/trekline/server/pkg/api"
	"github.com/trekline/server/pkg/bootstrap"
	"github.com/trekline/server/pkg/infrastructure/sentry"
)

func main() {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	ctx := context.Background()
	svc, err := bootstrap.NewService(ctx)
	if err != nil {
		slog.Error("Failed to initialize service", "error", err)
		os.Exit(1)
	}
	defer svc.Close()

	if err := sentry.Init(sentry.Config{
		DSN:         svc.Config.SentryDSN,
		Environment: svc.Config.Environment,
		ServerName:  shared.ServiceName,
	}, svc.Logger); err != nil {
		svc.Logger.Warn("Continuing without Sentry", "error", err)
	}
	defer sentry.Flush(2 * time.Second)

	srv := &http.Server{
		Addr:              svc.Config.ListenAddr,
		Handler:           api.NewRouter(svc.Tracker, svc.Logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		svc.Logger.Info("Server listening", "addr", svc.Config.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			svc.Logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	svc.Logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		svc.Logger.Error("Shutdown failed", "error", err)
	}
}
