package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/kina524/sql-data-analyzy-app/internal/app"
	"github.com/kina524/sql-data-analyzy-app/internal/logging"
	"github.com/kina524/sql-data-analyzy-app/internal/storage/sqlite"
)

func main() {
	godotenv.Load()
	logging.InitFromEnv()

	ctx := context.Background()
	dbPath := os.Getenv("USERDB_PATH")

	store, err := sqlite.Open(dbPath)
	if err != nil {
		logging.Fatalf("open sqlite: %v", err)
	}
	if err := store.EnsureSchema(ctx); err != nil {
		store.Close()
		logging.Fatalf("ensure schema: %v", err)
	}
	path := store.Path()
	store.Close()

	app.New(path, os.Stdin, os.Stdout).Run(ctx)
}
