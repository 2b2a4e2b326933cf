// Command seed replaces the catalog with the sample products and services.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"krushi/internal/config"
	"krushi/internal/domain/entities"
	"krushi/internal/domain/translation"
	"krushi/internal/infrastructure/database"
	"krushi/internal/infrastructure/logging"
	"krushi/internal/ports/output"
	"krushi/pkg/format"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("❌ invalid configuration", "error", err)
		os.Exit(1)
	}
	logger := logging.New(os.Stderr, logging.Options{Level: cfg.LogLevel, Colored: cfg.LogColored})
	slog.SetDefault(logger)

	if err := run(context.Background(), cfg); err != nil {
		logger.Error("❌ seed failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		return err
	}
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	products := database.NewProductRepository(tx)
	offerings := database.NewOfferingRepository(tx)
	if err := seed(ctx, products, offerings); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	slog.Info("✅ sample data inserted", "products", len(sampleProducts), "services", len(sampleOfferings))
	return nil
}

func seed(ctx context.Context, products output.ProductRepository, offerings output.OfferingRepository) error {
	if err := products.DeleteAll(ctx); err != nil {
		return err
	}
	if err := offerings.DeleteAll(ctx); err != nil {
		return err
	}
	for i := range sampleProducts {
		p := sampleProducts[i]
		if err := products.Create(ctx, &p); err != nil {
			return fmt.Errorf("seed %q: %w", p.Name, err)
		}
		stock := format.Stock(p.Stock)
		slog.Info("🌱 product",
			"id", p.ID,
			"name", p.Name,
			"price", format.Price(p.Price, p.Unit, translation.English),
			"stock", stock.Indicator+" "+stock.Text,
			"tags", strings.Join(format.Tags(p.Tags, 3), " "),
		)
	}
	for i := range sampleOfferings {
		o := sampleOfferings[i]
		if o.Icon == "" {
			o.Icon = entities.DefaultOfferingIcon
		}
		if o.Duration == "" {
			o.Duration = entities.DefaultOfferingDuration
		}
		if err := offerings.Create(ctx, &o); err != nil {
			return fmt.Errorf("seed %q: %w", o.Title, err)
		}
		slog.Info("🧑‍🌾 service", "id", o.ID, "title", o.Title, "features", format.Features(o.Features, 2))
	}
	return nil
}
