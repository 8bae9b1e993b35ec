package domain

import (
	"context"
	"errors"
)

// EmailCheck is the result of probing an email before any password is
// collected: it tells the UI whether to show the sign-in or the create
// account form, or to skip straight past the registration form.
type EmailCheck struct {
	Exists    bool `json:"exists"`
	Completed bool `json:"completed"`
}

// AuthOutcome is the structured result of a sign-in or sign-up attempt.
// Errors are carried, not thrown: Err is one of the account sentinel
// errors and ErrorMessage(Err) is the user-facing copy.
type AuthOutcome struct {
	Success      bool
	Identity     *Identity
	Token        string
	ShouldGoHome bool
	Err          error
}

// SessionService layers a single current identity on top of the account
// store and centralizes post-authentication routing decisions. At most one
// identity is current at a time; it survives restarts through the session
// document namespace.
type SessionService interface {
	CheckEmail(ctx context.Context, email string) EmailCheck
	// Register fails with ErrPasswordMismatch before touching the store
	// when confirm differs; otherwise delegates to the account store and,
	// on success, sets and persists the stripped identity.
	Register(ctx context.Context, email, name, password, confirm string) AuthOutcome
	// SignIn verifies credentials; on success the outcome's ShouldGoHome
	// mirrors the account's RegistrationCompleted flag.
	SignIn(ctx context.Context, email, password string) AuthOutcome
	// CompleteRegistration marks the account's registration as done and,
	// when the current identity matches the email, refreshes its snapshot.
	CompleteRegistration(ctx context.Context, email string) bool
	Logout(ctx context.Context)
	CurrentUser() *Identity
	IsLoggedIn() bool
}

// ErrorMessage maps account sentinel errors to the copy the portal UI
// shows next to the form.
func ErrorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrAccountNotFound):
		return "User not found. Please create an account."
	case errors.Is(err, ErrInvalidCredential):
		return "Invalid password. Please try again."
	case errors.Is(err, ErrDuplicateEmail):
		return "Email already registered. Please sign in instead."
	case errors.Is(err, ErrInvalidInput):
		return "All fields are required."
	case errors.Is(err, ErrWeakPassword):
		return "Password must be at least 6 characters long."
	case errors.Is(err, ErrPasswordMismatch):
		return "Passwords do not match."
	}
	return err.Error()
}
