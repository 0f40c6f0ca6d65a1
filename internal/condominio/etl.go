package condominio

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/torre9/condominio/internal/condominio/assemble"
	"github.com/torre9/condominio/internal/condominio/types"
	"github.com/torre9/condominio/internal/condominio/workbook"
	"github.com/torre9/condominio/internal/db"
	"github.com/torre9/condominio/internal/logger"
	"github.com/torre9/condominio/internal/store"
)

var (
	// ErrStoreExists refuses to touch an existing store unless the caller
	// explicitly opted into destructive replacement.
	ErrStoreExists    = errors.New("store already exists, pass force to rebuild it")
	ErrSchemaNotFound = errors.New("schema script not found")
)

// Run executes one full seeding run: destroy-on-request, read, classify,
// load. Fatal conditions abort with no partial store left behind;
// recoverable conditions accumulate in the returned report.
func Run(ctx context.Context, cfg Config, appLogger *logger.Logger) (*types.SeedReport, error) {
	const component = "ETL"

	if _, err := os.Stat(cfg.StorePath); err == nil {
		if !cfg.Force {
			return nil, fmt.Errorf("%w: %s", ErrStoreExists, cfg.StorePath)
		}
		if err := os.Remove(cfg.StorePath); err != nil {
			return nil, fmt.Errorf("cannot remove existing store %s (is it in use?): %w", cfg.StorePath, err)
		}
		appLogger.Info(component, "Existing store removed: path=%s", cfg.StorePath)
	}

	schema, err := loadSchema(cfg.SchemaPath)
	if err != nil {
		return nil, err
	}

	wb, err := workbook.Open(cfg.WorkbookPath)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	payload, report, err := assemble.BuildPayload(wb, cfg.Sheets, cfg.Period, cfg.TerraceInstallmentUSD, appLogger)
	if err != nil {
		return nil, err
	}
	payload.Reserve = append(payload.Reserve, cfg.OpeningReserve...)

	// Single writer for the duration of the run.
	database, err := db.New(cfg.StorePath, 1, 1, "5m")
	if err != nil {
		return nil, fmt.Errorf("failed to open store %s: %w", cfg.StorePath, err)
	}

	storage := store.NewStorage(database)

	if err := storage.Schema.Apply(ctx, schema); err != nil {
		return nil, discardStore(database, cfg.StorePath, err)
	}
	if err := storage.Seed.Apply(ctx, payload, report); err != nil {
		return nil, discardStore(database, cfg.StorePath, err)
	}

	if err := database.Close(); err != nil {
		return nil, err
	}

	appLogger.Info(component, "Seeding completed: %s", report.Summary())
	for _, detail := range report.MalformedRows {
		appLogger.Warn(component, "Malformed row skipped: %s", detail)
	}
	for _, detail := range report.DanglingRefs {
		appLogger.Warn(component, "Dangling reference skipped: %s", detail)
	}

	return report, nil
}

// discardStore removes the half-built store file so a failed run leaves
// nothing behind.
func discardStore(database interface{ Close() error }, path string, cause error) error {
	database.Close()
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%v (and failed to remove partial store: %w)", cause, err)
	}
	return cause
}

func loadSchema(path string) (string, error) {
	if path == "" {
		return store.DefaultSchema, nil
	}

	script, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("%w: %s", ErrSchemaNotFound, path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read schema script %s: %w", path, err)
	}
	return string(script), nil
}
