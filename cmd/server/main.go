package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"krushi/internal/adapters/httpapi"
	"krushi/internal/application"
	"krushi/internal/config"
	"krushi/internal/infrastructure/database"
	"krushi/internal/infrastructure/i18n"
	"krushi/internal/infrastructure/logging"
	"krushi/internal/infrastructure/metrics"
	"krushi/internal/infrastructure/notify"
	"krushi/internal/infrastructure/workerpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("❌ invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.New(os.Stderr, logging.Options{Level: cfg.LogLevel, Colored: cfg.LogColored})
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("❌ server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		return err
	}
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	catalog, err := i18n.LoadCatalog(cfg.DefaultLanguage)
	if err != nil {
		return err
	}
	messages, err := i18n.NewTranslator(cfg.DefaultLanguage, logger)
	if err != nil {
		return err
	}
	logger.Info("🌐 Translations loaded", "catalog", catalog.Languages(), "messages", messages.Languages())

	notifier, err := notify.New(cfg.DiscordWebhookURL, logger)
	if err != nil {
		return err
	}
	workers, err := workerpool.New(cfg.NotifyWorkers, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := workers.Shutdown(cfg.ShutdownTimeout); err != nil {
			logger.Warn("worker pool shutdown", "error", err)
		}
	}()

	m := metrics.New()
	m.WatchWorkers(workers.Running)

	productUC := application.NewProductService(database.NewProductRepository(pool), messages)
	offeringUC := application.NewOfferingService(database.NewOfferingRepository(pool), messages)
	contactUC := application.NewContactService(
		database.NewContactRepository(pool),
		notifier,
		workers,
		catalog,
		cfg.ContactRules(),
		m,
		logger,
	)

	handler := httpapi.NewHandler(httpapi.Deps{
		Products:    productUC,
		Offerings:   offeringUC,
		Contacts:    contactUC,
		Catalog:     catalog,
		Messages:    messages,
		DB:          pool,
		Logger:      logger,
		Development: cfg.IsDevelopment(),
	})
	server := httpapi.NewServer(handler, httpapi.Options{
		Addr:            cfg.Addr(),
		ClientURL:       cfg.ClientURL,
		DefaultLanguage: cfg.DefaultLanguage,
		ShutdownTimeout: cfg.ShutdownTimeout,
		Metrics:         m,
		MetricsHandler:  m.Handler(),
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Start(gctx)
	})
	logger.Info("🚀 Kanhaiya Krushi API started", "env", cfg.Environment, "port", cfg.Port)
	return g.Wait()
}
