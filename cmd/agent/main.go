package main

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/adetunji/coldreach/internal/infra/csvsource"
	"github.com/adetunji/coldreach/internal/infra/database"
	"github.com/adetunji/coldreach/internal/infra/integration/findymail"
	"github.com/adetunji/coldreach/internal/infra/integration/serper"
	"github.com/adetunji/coldreach/internal/usecase"
)

const defaultLimit = 3

func main() {
	godotenv.Load()

	serperKey := os.Getenv("SERPER_API_KEY")
	findyKey := os.Getenv("FINDY_API_KEY")
	if serperKey == "" || findyKey == "" {
		log.Fatal("Missing SERPER_API_KEY or FINDY_API_KEY in .env")
	}

	limit := defaultLimit
	if len(os.Args) > 1 {
		n, err := strconv.Atoi(os.Args[1])
		if err != nil || n < 1 {
			log.Fatalf("Invalid limit %q: want a positive integer", os.Args[1])
		}
		limit = n
	}

	db, err := database.Open(getenv("AGENT_DB_PATH", "./agent_emails.db"))
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	defer db.Close()
	log.Println("Connected to SQLite database")

	ctx := context.Background()

	leadRepo := database.NewLeadRepository(db)
	if err := leadRepo.Init(ctx); err != nil {
		log.Fatalf("Error creating leads table: %v", err)
	}

	companies, err := csvsource.ReadCompaniesFile(getenv("COMPANIES_CSV", "./companies.csv"))
	if err != nil {
		log.Fatalf("Error reading companies CSV: %v", err)
	}

	searcher := serper.NewClient(serperKey, os.Getenv("SERPER_URL"))
	finder := findymail.NewClient(findyKey, os.Getenv("FINDY_URL"))

	uc := usecase.NewDiscoverLeadsUseCase(leadRepo, searcher, finder)

	log.Printf("Processing companies from the top (Limit: %d active/valid)...", limit)

	summary, err := uc.Execute(ctx, companies, limit)
	if err != nil {
		log.Fatalf("Discovery run aborted: %v", err)
	}

	log.Printf("Done. Processed: %d, Skipped: %d, Saved: %d", summary.Processed, summary.Skipped, summary.Saved)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
