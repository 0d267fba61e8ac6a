package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"seller_landing/internal/email"
	"seller_landing/internal/events"
	apphttp "seller_landing/internal/http"
	"seller_landing/internal/http/router"
	"seller_landing/internal/leadform"
	"seller_landing/internal/leadform/ports"
	"seller_landing/internal/notification"
	"seller_landing/internal/scheduler"
	"seller_landing/internal/sheets"
	"seller_landing/internal/web"
	"seller_landing/platform/config"
	"seller_landing/platform/logger"
	"seller_landing/platform/metrics"
	"seller_landing/platform/retry"
	"seller_landing/platform/validator"

	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	appMetrics, err := metrics.New()
	if err != nil {
		log.Error("failed to initialize metrics", "error", err)
		panic("failed to initialize metrics: " + err.Error())
	}

	eventBus := events.NewInMemoryBus(log)
	val := validator.New()

	target := ports.Target{SpreadsheetID: cfg.GetSpreadsheetID(), SheetName: cfg.GetSheetName()}
	sheetsClient := sheets.New(cfg.GetGoogleCredentialsJSON())

	if target.SpreadsheetID == "" {
		log.Warn("SPREADSHEET_ID not configured; submissions will be rejected")
	} else if cfg.GetSheetsVerifyOnStart() {
		verifySheets(ctx, log, sheetsClient, target)
	}

	// ========================================================================
	// Notification Layer
	// ========================================================================

	leadNotifier, closeNotifier := initLeadNotifier(cfg, log)
	if closeNotifier != nil {
		defer closeNotifier()
	}

	notificationModule := notification.New(email.NewSender(cfg), leadNotifier, cfg.GetLeadNotifyTo(), log)
	notificationModule.RegisterHandlers(eventBus)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	webModule, err := web.NewModule()
	if err != nil {
		log.Error("failed to load landing page", "error", err)
		panic("failed to load landing page: " + err.Error())
	}

	leadformModule := leadform.NewModule(sheetsClient, target, eventBus, appMetrics, val, log)

	app := &apphttp.App{
		Config:  cfg,
		Logger:  log,
		Metrics: appMetrics,
		Modules: []apphttp.Module{
			webModule,
			leadformModule,
		},
	}

	srv := &http.Server{
		Addr:              cfg.GetHTTPAddr(),
		Handler:           router.New(app),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
	}

	// Let in-flight notifications finish before the queue client closes.
	eventBus.Wait()
	log.Info("server stopped")
}

// verifySheets checks the spreadsheet at startup. Failures are logged and
// the server still starts; submissions report the same error per request.
func verifySheets(ctx context.Context, log *logger.Logger, client *sheets.Client, target ports.Target) {
	err := retry.Init(ctx, log, "verify spreadsheet", retry.Options{MaxTries: 5}, func(ctx context.Context) error {
		err := client.Verify(ctx, target)
		if errors.Is(err, ports.ErrCredentialsMissing) || errors.Is(err, ports.ErrCredentialsInvalid) {
			return retry.Permanent(err)
		}
		return err
	})
	if err != nil {
		log.Error("spreadsheet verification failed", "spreadsheetId", target.SpreadsheetID, "sheet", target.SheetName, "error", err)
		return
	}
	log.Info("spreadsheet verified", "spreadsheetId", target.SpreadsheetID, "sheet", target.SheetName)
}

func initLeadNotifier(cfg *config.Config, log *logger.Logger) (scheduler.LeadNotifier, func()) {
	if cfg.GetRedisURL() == "" {
		if cfg.IsMailEnabled() {
			log.Info("REDIS_URL not configured; lead notifications are sent inline")
		}
		return nil, nil
	}

	client, err := scheduler.NewClient(cfg)
	if err != nil {
		log.Error("failed to initialize lead notification queue", "error", err)
		return nil, nil
	}

	return client, func() {
		_ = client.Close()
	}
}
