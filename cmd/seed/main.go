package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"dnfapi/internal/database"
	"dnfapi/internal/domain/lead"
	"dnfapi/internal/domain/proposal"
	"dnfapi/internal/pkg/logger"
)

// seed fills a local database with demo rows. Re-running it is safe:
// proposals that already exist are skipped.
func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "dnf.db"
	}
	if database.IsMemory(dsn) {
		log.Fatal("seed needs a SQL database")
	}

	db, err := database.Connect(dsn, database.DefaultPool(), logger.Discard())
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	defer func() { _ = database.Close(db) }()

	log.Println("Running migrations...")
	if err := database.Migrate(db, dsn, &lead.Lead{}, &proposal.Proposal{}); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	ctx := context.Background()
	leads := lead.NewRepository(db)
	proposals := proposal.NewRepository(db)

	var leadCount, proposalCount, skipped int
	for i := 1; i <= 5; i++ {
		l := &lead.Lead{
			Name:     fmt.Sprintf("Lead Demo %d", i),
			Email:    fmt.Sprintf("lead%d@example.com", i),
			Company:  "Empresa Demo",
			Resource: lead.ResourceGuideNR1,
		}
		if err := leads.Create(ctx, l); err != nil {
			log.Fatalf("insert lead: %v", err)
		}
		leadCount++
	}

	for i := 1; i <= 3; i++ {
		p := &proposal.Proposal{
			Name:    fmt.Sprintf("Contato Demo %d", i),
			Email:   fmt.Sprintf("proposta%d@example.com", i),
			Phone:   fmt.Sprintf("1199999000%d", i),
			Company: "Empresa Demo",
			Message: "Gostaria de uma proposta para adequação à NR-1.",
		}
		err := proposals.Create(ctx, p)
		switch {
		case errors.Is(err, database.ErrConflict):
			skipped++
		case err != nil:
			log.Fatalf("insert proposal: %v", err)
		default:
			proposalCount++
		}
	}

	log.Printf("seed completed: leads=%d proposals=%d proposals_skipped=%d", leadCount, proposalCount, skipped)
}
