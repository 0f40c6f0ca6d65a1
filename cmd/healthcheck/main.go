package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/torre9/condominio/internal/db"
	"github.com/torre9/condominio/internal/env"
	"github.com/torre9/condominio/internal/store"
)

// Verifies that the store contains every expected table and reports row
// counts. Exits non-zero when the store file or any table is missing.
func main() {
	godotenv.Load()

	baseDir := env.GetString("CONDO_BASE_DIR", ".")
	dbPtr := flag.String("db", env.GetString("CONDO_DB", filepath.Join(baseDir, "condominio.db")), "Path to the SQLite store")
	flag.Parse()

	fmt.Printf("[INFO] Checking store: %s\n", *dbPtr)

	if _, err := os.Stat(*dbPtr); os.IsNotExist(err) {
		fmt.Println("[ERROR] Store file not found.")
		os.Exit(1)
	}

	database, err := db.New(*dbPtr, 1, 1, "1m")
	if err != nil {
		fmt.Printf("[ERROR] Cannot open store: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	storage := store.NewStorage(database)

	statuses, err := storage.Schema.Status(context.Background(), store.ExpectedTables)
	if err != nil {
		fmt.Printf("[ERROR] Cannot inspect store: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\n[TABLES]")
	passed := 0
	for _, s := range statuses {
		if s.Exists {
			fmt.Printf("  [OK] %s: %d rows\n", s.Name, s.Rows)
			passed++
		} else {
			fmt.Printf("  [FAIL] %s: missing\n", s.Name)
		}
	}

	fmt.Printf("\n[RESULT] %d/%d tables present\n", passed, len(statuses))
	if passed != len(statuses) {
		os.Exit(1)
	}
}
