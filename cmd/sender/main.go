package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/adetunji/coldreach/internal/infra/database"
	"github.com/adetunji/coldreach/internal/infra/mail"
	"github.com/adetunji/coldreach/internal/usecase"
)

const defaultLimit = 1000

func main() {
	godotenv.Load()

	dryRun := flag.Bool("dry-run", false, "list READY leads without sending")
	flag.Parse()

	limit := defaultLimit
	if args := flag.Args(); len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			log.Fatalf("Invalid limit %q: want a positive integer", args[0])
		}
		limit = n
	}

	db, err := database.Open(getenv("AGENT_DB_PATH", "./agent_emails.db"))
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	leadRepo := database.NewLeadRepository(db)
	if err := leadRepo.Init(ctx); err != nil {
		log.Fatalf("Error creating leads table: %v", err)
	}

	if *dryRun {
		leads, err := leadRepo.ListReady(ctx, limit)
		if err != nil {
			log.Fatalf("Error listing leads: %v", err)
		}
		log.Printf("%d leads ready to send:", len(leads))
		for _, lead := range leads {
			log.Printf("  %s -> %s <%s> [%s]", lead.CompanyName, lead.FounderName, lead.FounderEmail, lead.EmailType)
		}
		return
	}

	user := os.Getenv("EMAIL_USER")
	pass := os.Getenv("EMAIL_PASS")
	if user == "" || pass == "" {
		log.Fatal("Missing EMAIL_USER or EMAIL_PASS in .env")
	}

	smtpPort, err := strconv.Atoi(getenv("SMTP_PORT", "587"))
	if err != nil {
		log.Fatalf("Invalid SMTP_PORT: %v", err)
	}

	sender := mail.NewEmailSender(getenv("SMTP_HOST", "smtp.gmail.com"), smtpPort, user, pass)

	uc := usecase.NewSendReadyLeadsUseCase(leadRepo, sender)

	summary, err := uc.Execute(ctx, limit)
	if err != nil {
		log.Fatalf("Delivery run aborted: %v", err)
	}

	log.Printf("Done. Sent: %d, Failed: %d, Skipped: %d", summary.Sent, summary.Failed, summary.Skipped)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
