package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"seller_landing/internal/email"
	"seller_landing/internal/scheduler"
	"seller_landing/platform/config"
	"seller_landing/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting scheduler", "env", cfg.Env, "queue", cfg.GetAsynqQueueName())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !cfg.IsMailEnabled() {
		log.Warn("mail not configured; lead notifications will be dropped")
	}

	worker, err := scheduler.NewWorker(cfg, email.NewSender(cfg), log)
	if err != nil {
		log.Error("failed to initialize scheduler worker", "error", err)
		panic("failed to initialize scheduler worker: " + err.Error())
	}

	worker.Run(ctx)
	log.Info("scheduler stopped")
}
