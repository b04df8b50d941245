package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/productscience/liquidstake/operator/config"
	"github.com/productscience/liquidstake/operator/logging"
	"github.com/productscience/liquidstake/operator/maintenance"
	"github.com/productscience/liquidstake/operator/server"
)

func main() {
	cfg, err := config.Load(config.FileProvider())
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}
	logging.Setup(os.Stdout, cfg.LogLevel)
	logging.Info("config loaded", logging.Config,
		"admin", cfg.Admin,
		"schedule", cfg.Schedule,
		"retry_attempts", cfg.Retry.Attempts,
		"retry_delay", cfg.Retry.Delay,
	)

	// Transaction signing lives outside the operator; it only logs what it would submit.
	runner := maintenance.NewRunner(cfg.Admin, cfg.Retry, maintenance.DryRunBroadcaster{})
	scheduler, err := maintenance.NewScheduler(cfg.Schedule, runner)
	if err != nil {
		log.Fatalf("error creating scheduler: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.NewServer(runner)
	srv.Start(cfg.Listen)
	scheduler.Start(ctx)

	<-ctx.Done()
	logging.Info("shutting down", logging.Server)
	scheduler.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error("status server shutdown failed", logging.Server, "error", err)
	}
}
