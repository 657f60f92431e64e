package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"toy-sales-report/config"
	"toy-sales-report/models"
	"toy-sales-report/services"
	"toy-sales-report/storage"
	"toy-sales-report/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	logger := utils.NewLogger(cfg.LogLevel).With("run_id", uuid.NewString())
	defer func() { _ = logger.Sync() }()

	logger.Info("=== Toy sales report starting ===")
	logger.Info("Config: source %s | catalog %s | output %s (%s)",
		cfg.CatalogSource, cfg.CatalogPath, cfg.ReportPath, cfg.ReportFormat)

	ctx := context.Background()

	source, err := openSource(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to open catalog source: %v", err)
		os.Exit(1)
	}
	defer source.Close()

	writer, err := storage.NewReportWriter(cfg.ReportFormat, cfg.ReportPath, storage.WriterOptions{
		ChromeBin:  cfg.ChromeBin,
		PDFTimeout: cfg.PDFTimeout,
		Logger:     logger,
	})
	if err != nil {
		logger.Error("Failed to set up report writer: %v", err)
		os.Exit(1)
	}

	if err := run(ctx, source, writer, cfg.DateLayout, utils.SystemClock, logger); err != nil {
		if errors.Is(err, models.ErrMalformedInput) {
			logger.Error("Catalog is malformed, no report written: %v", err)
		} else {
			logger.Error("Report generation failed: %v", err)
		}
		os.Exit(1)
	}

	fmt.Printf("  Done. Report → %s\n", cfg.ReportPath)
}

// run loads, validates, aggregates and writes one report. Nothing is written
// unless the whole catalog is valid.
func run(ctx context.Context, source storage.CatalogSource, writer storage.ReportWriter,
	dateLayout string, clock utils.Clock, logger *utils.Logger) error {

	raw, err := source.Load(ctx)
	if err != nil {
		return err
	}

	catalog, err := services.NewCleaner(logger).Clean(raw)
	if err != nil {
		return err
	}
	logger.Info("Loaded %d products", len(catalog.Products))

	reports := services.NewReportService(logger, dateLayout)
	summary := reports.Summarize(catalog, clock())
	text := reports.Render(summary)

	if err := writer.Write(ctx, summary, text); err != nil {
		return err
	}
	logger.Info("Report written (%d bytes)", len(text))
	return nil
}

func openSource(ctx context.Context, cfg *config.Config, logger *utils.Logger) (storage.CatalogSource, error) {
	switch cfg.CatalogSource {
	case config.SourcePostgres:
		return storage.NewPostgresSource(ctx, cfg.DSN(), &utils.RetryConfig{
			MaxAttempts: cfg.MaxRetries,
			BaseDelay:   2 * time.Second,
			Logger:      logger,
		})
	default:
		return storage.NewFileSource(cfg.CatalogPath), nil
	}
}
