package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"icisdportal/internal/delivery/http/controllers"
	"icisdportal/internal/delivery/http/middleware"
	"icisdportal/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	auth *controllers.AuthController,
	papers *controllers.PapersController,
	contact *controllers.ContactController,
	program *controllers.ProgramController,
	admin *controllers.AdminController,
	verifier domain.TokenVerifier,
	adminKey string,
	logger *slog.Logger,
) *http.ServeMux {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(verifier, logger)
	requireAdmin := middleware.RequireAdminKey(adminKey)

	// Auth
	mux.HandleFunc("POST /auth/check-email", auth.CheckEmail)
	mux.HandleFunc("POST /auth/register", auth.Register)
	mux.HandleFunc("POST /auth/login", auth.Login)
	mux.HandleFunc("POST /auth/complete-registration", requireAuth(auth.CompleteRegistration))
	mux.HandleFunc("POST /auth/logout", auth.Logout)
	mux.HandleFunc("GET /auth/me", requireAuth(auth.Me))

	// Papers
	mux.HandleFunc("POST /papers", requireAuth(papers.Submit))
	mux.HandleFunc("GET /papers", requireAuth(papers.ListMine))

	// Contact
	mux.HandleFunc("POST /contact", contact.Send)

	// Program
	mux.HandleFunc("GET /program/about", program.About)
	mux.HandleFunc("GET /program/dates", program.Dates)
	mux.HandleFunc("GET /program/speakers", program.Speakers)
	mux.HandleFunc("GET /program/committee", program.Committees)
	mux.HandleFunc("GET /program/fees", program.Fees)
	mux.HandleFunc("GET /program/schedule", program.Schedule)
	mux.HandleFunc("GET /program/venue", program.Venue)
	mux.HandleFunc("GET /program/topics", program.Topics)

	// Admin
	mux.HandleFunc("GET /admin/accounts", requireAdmin(admin.ListAccounts))
	mux.HandleFunc("DELETE /admin/accounts/{email}", requireAdmin(admin.DeleteAccount))
	mux.HandleFunc("POST /admin/reset", requireAdmin(admin.Reset))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
