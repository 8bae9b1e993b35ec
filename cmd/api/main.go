package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"icisdportal/config"
	_ "icisdportal/docs"
	"icisdportal/internal/adapters/auth"
	"icisdportal/internal/adapters/content"
	"icisdportal/internal/adapters/email"
	deliveryhttp "icisdportal/internal/delivery/http"
	"icisdportal/internal/delivery/http/controllers"
	"icisdportal/internal/delivery/http/middleware"
	"icisdportal/internal/domain"
	"icisdportal/internal/repository/memory"
	"icisdportal/internal/repository/postgres"
	"icisdportal/internal/services"
)

// @title ICISD Conference Portal API
// @version 1.0
// @description Conference website backend: account portal, paper submissions, contact form, and program content.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Document storage: Postgres when DATABASE_URL is set, in-memory otherwise.
	var docs domain.DocumentStore
	if cfg.DBUrl != "" {
		db, err := sql.Open("postgres", cfg.DBUrl)
		if err != nil {
			logger.Error("opening database", "err", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			logger.Error("pinging database", "err", err)
			os.Exit(1)
		}
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			logger.Error("ensuring schema", "err", err)
			os.Exit(1)
		}
		docs = postgres.NewDocumentStore(db)
		logger.Info("using postgres document store")
	} else {
		docs = memory.NewDocumentStore()
		logger.Info("no DATABASE_URL set, using in-memory document store")
	}

	var codec domain.CredentialCodec
	if cfg.CredentialMode == "bcrypt" {
		codec = auth.NewBcryptCodec(0)
	} else {
		codec = auth.NewPlainCodec()
	}

	store := services.NewAccountStore(docs, codec, logger)
	if err := store.Initialize(ctx); err != nil {
		logger.Error("initializing account store", "err", err)
		os.Exit(1)
	}

	contentProvider, err := content.NewProvider()
	if err != nil {
		logger.Error("loading program content", "err", err)
		os.Exit(1)
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.SESRegion,
			AccessKeyID:        cfg.Email.SESAccessKeyID,
			SecretAccessKey:    cfg.Email.SESSecretAccessKey,
			InsecureSkipVerify: cfg.Email.SESInsecureTLS,
		},
	})
	if err != nil {
		logger.Error("creating mailer", "err", err)
		os.Exit(1)
	}
	emailSvc := services.NewEmailService(mailer, email.NewTemplateRenderer(), cfg.Email.ContactRecipient, logger)

	issuer, verifier := auth.NewJWTCodec(cfg.JWTSecret)
	session := services.NewSessionService(store, docs, issuer, emailSvc, cfg.JWTExpiry, cfg.AuthDelay, logger)
	submissions := services.NewSubmissionService(docs, contentProvider, emailSvc, logger)

	mux := deliveryhttp.NewRouter(
		controllers.NewAuthController(logger, session),
		controllers.NewPapersController(logger, submissions),
		controllers.NewContactController(logger, emailSvc),
		controllers.NewProgramController(logger, contentProvider),
		controllers.NewAdminController(logger, store),
		verifier,
		cfg.AdminKey,
		logger,
	)

	handler := middleware.CORS(cfg.AllowedOrigins, middleware.LoggingMiddleware(logger, mux))
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutting down server", "err", err)
		}
	}()

	logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
