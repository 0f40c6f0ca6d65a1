package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/torre9/condominio/internal/condominio"
	"github.com/torre9/condominio/internal/env"
	"github.com/torre9/condominio/internal/logger"
)

func main() {
	const component = "Main"
	var appLogger = &logger.Logger{MinLevel: logger.LevelInfo}

	// Remove default timestamp since we add our own
	log.SetFlags(0)

	godotenv.Load()

	baseDir := env.GetString("CONDO_BASE_DIR", ".")
	defaults := condominio.DefaultConfig(baseDir)

	workbookPtr := flag.String("workbook", env.GetString("CONDO_WORKBOOK", defaults.WorkbookPath), "Path to the source workbook")
	dbPtr := flag.String("db", env.GetString("CONDO_DB", defaults.StorePath), "Path to the SQLite store")
	schemaPtr := flag.String("schema", env.GetString("CONDO_SCHEMA", ""), "Path to an external schema script (embedded script when empty)")
	periodPtr := flag.String("period", env.GetString("CONDO_PERIOD", defaults.Period), "Target period, e.g. 2026-01")
	forcePtr := flag.Bool("force", false, "Destroy and rebuild an existing store")
	logLevelPtr := flag.String("loglevel", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	appLogger.SetLogLevel(logger.ParseLevel(*logLevelPtr))

	cfg := defaults
	cfg.WorkbookPath = *workbookPtr
	cfg.StorePath = *dbPtr
	cfg.SchemaPath = *schemaPtr
	cfg.Period = *periodPtr
	cfg.Force = *forcePtr
	cfg.TerraceInstallmentUSD = env.GetFloat("CONDO_CUOTA_TERRAZA_USD", cfg.TerraceInstallmentUSD)

	startedAt := time.Now()
	appLogger.Info(component, "Seeding run starting: workbook=%s store=%s period=%s force=%t",
		cfg.WorkbookPath, cfg.StorePath, cfg.Period, cfg.Force)

	report, err := condominio.Run(context.Background(), cfg, appLogger)
	if err != nil {
		appLogger.Fatal(component, "Seeding run aborted: error=%v", err)
		return
	}

	appLogger.Info(component, "Seeding run completed: duration=%.2fs %s",
		time.Since(startedAt).Seconds(), report.Summary())
}
