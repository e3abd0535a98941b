package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/adetunji/coldreach/internal/infra/database"
	"github.com/adetunji/coldreach/internal/infra/http/handlers"
	"github.com/adetunji/coldreach/internal/infra/http/middleware"
	"github.com/adetunji/coldreach/internal/infra/mail"
	"github.com/adetunji/coldreach/internal/usecase"
)

func main() {
	godotenv.Load()

	user := os.Getenv("EMAIL_USER")
	pass := os.Getenv("EMAIL_PASS")
	if user == "" || pass == "" {
		log.Fatal("Missing EMAIL_USER or EMAIL_PASS in .env")
	}

	smtpPort, err := strconv.Atoi(getenv("SMTP_PORT", "587"))
	if err != nil {
		log.Fatalf("Invalid SMTP_PORT: %v", err)
	}

	db, err := database.Open(getenv("SERVER_DB_PATH", "./emails.db"))
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	defer db.Close()
	log.Println("Connected to SQLite database")

	auditRepo := database.NewSentEmailRepository(db)
	if err := auditRepo.Init(context.Background()); err != nil {
		log.Fatalf("Error creating sent_emails table: %v", err)
	}

	mailSender := mail.NewEmailSender(getenv("SMTP_HOST", "smtp.gmail.com"), smtpPort, user, pass)

	sendManualEmailUC := usecase.NewSendManualEmailUseCase(auditRepo, mailSender)

	healthHandler := handlers.NewHealthHandler()
	sendEmailHandler := handlers.NewSendEmailHandler(sendManualEmailUC)

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		// The browser extension popup calls from an extension origin.
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/", healthHandler.Handle)
	r.Post("/send-email", sendEmailHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := getenv("PORT", "3000")
	log.Printf("Server is running on port %s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal(err)
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
