package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"icisdportal/internal/delivery/http/helpers"
	"icisdportal/internal/delivery/http/middleware"
	"icisdportal/internal/domain"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// CheckEmailRequest is the request body for POST /auth/check-email
type CheckEmailRequest struct {
	Email string `json:"email"`
}

// Validate implements Validator.
func (c CheckEmailRequest) Validate() []string {
	var errs []string
	email := strings.TrimSpace(strings.ToLower(c.Email))
	if email == "" {
		errs = append(errs, "email is required")
	} else if !emailRegexp.MatchString(email) {
		errs = append(errs, "invalid email format")
	}
	return errs
}

// RegisterRequest is the request body for POST /auth/register
type RegisterRequest struct {
	Email           string `json:"email"`
	Name            string `json:"name"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Validate implements Validator.
func (r RegisterRequest) Validate() []string {
	var errs []string
	email := strings.TrimSpace(strings.ToLower(r.Email))
	if email != "" && !emailRegexp.MatchString(email) {
		errs = append(errs, "invalid email format")
	}
	return errs
}

// LoginRequest is the request body for POST /auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate implements Validator.
func (l LoginRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(l.Email) == "" {
		errs = append(errs, "email is required")
	}
	if l.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// CompleteRegistrationRequest is the request body for POST /auth/complete-registration
type CompleteRegistrationRequest struct {
	Email string `json:"email"`
}

// Validate implements Validator.
func (c CompleteRegistrationRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Email) == "" {
		errs = append(errs, "email is required")
	}
	return errs
}

// AuthResponse is the response body for successful register and login calls.
type AuthResponse struct {
	User         *domain.Identity `json:"user"`
	Token        string           `json:"token"`
	TokenType    string           `json:"token_type"`
	ShouldGoHome bool             `json:"shouldGoHome"`
}

// AuthController handles the account portal endpoints.
type AuthController struct {
	Logger  *slog.Logger
	Service domain.SessionService
}

// NewAuthController creates an AuthController with the given logger and session service.
func NewAuthController(logger *slog.Logger, svc domain.SessionService) *AuthController {
	return &AuthController{
		Logger:  logger,
		Service: svc,
	}
}

// writeOutcomeError maps an account sentinel error to a status code and
// writes the portal's user-facing copy for it.
func writeOutcomeError(w http.ResponseWriter, err error) {
	msg := domain.ErrorMessage(err)
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, msg)
	case errors.Is(err, domain.ErrInvalidCredential):
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, msg)
	case errors.Is(err, domain.ErrDuplicateEmail):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, msg)
	default:
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, msg)
	}
}

// CheckEmail godoc
// @Summary Check whether an email is registered
// @Description Probes an email before any password is collected. Returns whether an account exists and whether its registration is completed, so the client can route to the sign-in form, the sign-up form, or straight past registration.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body CheckEmailRequest true "Email to probe"
// @Success 200 {object} helpers.APIResponse "data contains exists and completed flags"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /auth/check-email [post]
func (c *AuthController) CheckEmail(w http.ResponseWriter, r *http.Request) {
	var req CheckEmailRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	check := c.Service.CheckEmail(r.Context(), strings.TrimSpace(strings.ToLower(req.Email)))
	helpers.WriteJSONSuccess(w, http.StatusOK, check)
}

// Register godoc
// @Summary Create a new account
// @Description Registers a new account and signs it in. Fails when the passwords differ, a field is empty, the password is shorter than six characters, or the email is already registered.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Registration data"
// @Success 201 {object} helpers.APIResponse "data contains user, token, and shouldGoHome"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /auth/register [post]
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	out := c.Service.Register(r.Context(), req.Email, req.Name, req.Password, req.ConfirmPassword)
	if !out.Success {
		writeOutcomeError(w, out.Err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, AuthResponse{
		User:      out.Identity,
		Token:     out.Token,
		TokenType: "Bearer",
	})
}

// Login godoc
// @Summary Sign in
// @Description Authenticates with email and password. On success the response carries the signed-in identity, a JWT, and a shouldGoHome flag that tells the client to skip the registration form when the account already completed it.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} helpers.APIResponse "data contains user, token, and shouldGoHome"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /auth/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	out := c.Service.SignIn(r.Context(), req.Email, req.Password)
	if !out.Success {
		writeOutcomeError(w, out.Err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, AuthResponse{
		User:         out.Identity,
		Token:        out.Token,
		TokenType:    "Bearer",
		ShouldGoHome: out.ShouldGoHome,
	})
}

// CompleteRegistration godoc
// @Summary Mark registration as completed
// @Description Flips the account's registration-completed flag after the conference registration form is submitted. Requires Bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CompleteRegistrationRequest true "Account email"
// @Success 200 {object} helpers.APIResponse "data contains the updated registration status"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /auth/complete-registration [post]
func (c *AuthController) CompleteRegistration(w http.ResponseWriter, r *http.Request) {
	if _, _, ok := middleware.AccountFromContext(r.Context()); !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	var req CompleteRegistrationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if !c.Service.CompleteRegistration(r.Context(), req.Email) {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, domain.ErrorMessage(domain.ErrAccountNotFound))
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"completed": true})
}

// Logout godoc
// @Summary Sign out
// @Description Clears the current session identity.
// @Tags auth
// @Produce json
// @Success 200 {object} helpers.APIResponse "data is null"
// @Router /auth/logout [post]
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	c.Service.Logout(r.Context())
	helpers.WriteJSONSuccess(w, http.StatusOK, nil)
}

// Me godoc
// @Summary Get current identity
// @Description Returns the currently signed-in identity, or 404 when nobody is signed in. Requires Bearer token.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the identity"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /auth/me [get]
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	if _, _, ok := middleware.AccountFromContext(r.Context()); !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	id := c.Service.CurrentUser()
	if id == nil {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "no active session")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, id)
}
