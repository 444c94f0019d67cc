package main

import (
	"log"

	"github.com/joho/godotenv"

	"dnfapi/internal/config"
	"dnfapi/internal/database"
	"dnfapi/internal/domain/lead"
	"dnfapi/internal/domain/proposal"
	"dnfapi/internal/pkg/logger"
)

// migrate applies the schema and exits. Useful with DB_AUTO_MIGRATE=false.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	dsn := cfg.DSN()
	if database.IsMemory(dsn) {
		log.Fatal("nothing to migrate for the in-memory store")
	}

	db, err := database.Connect(dsn, database.PoolConfig{MaxOpenConns: 1}, logger.Discard())
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer func() { _ = database.Close(db) }()

	if err := database.Migrate(db, dsn, &lead.Lead{}, &proposal.Proposal{}); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
	log.Printf("migrations applied: postgres=%t", database.IsPostgres(dsn))
}
