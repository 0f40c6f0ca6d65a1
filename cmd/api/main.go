package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/torre9/condominio/internal/db"
	"github.com/torre9/condominio/internal/env"
	"github.com/torre9/condominio/internal/store"
)

func main() {
	godotenv.Load()

	cfg := config{
		addr: env.GetString("ADDR", ":8080"),
		db: dbConfig{
			path:         env.GetString("CONDO_DB", "condominio.db"),
			maxOpenConns: env.GetInt("DB_MAX_OPEN_CONNS", 4),
			maxIdleConns: env.GetInt("DB_MAX_IDLE_CONNS", 4),
			maxIdleTime:  env.GetString("DB_MAX_IDLE_TIME", "15m"),
		},
	}

	database, err := db.New(
		cfg.db.path,
		cfg.db.maxOpenConns,
		cfg.db.maxIdleConns,
		cfg.db.maxIdleTime)

	if err != nil {
		log.Panic(err)
	}
	defer database.Close()
	log.Printf("Store opened at %s", cfg.db.path)

	storage := store.NewStorage(database)

	app := &application{
		config: cfg,
		store:  *storage,
	}

	mux := app.mount()

	log.Fatal(app.run(mux))
}
