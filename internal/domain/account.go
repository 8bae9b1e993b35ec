package domain

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for account operations.
var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrInvalidCredential = errors.New("invalid credential")
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrInvalidInput      = errors.New("missing required field")
	ErrWeakPassword      = errors.New("password too short")
	ErrPasswordMismatch  = errors.New("passwords do not match")
)

// MinPasswordLen is the minimum accepted password length.
const MinPasswordLen = 6

// Account represents a registered portal user. Password is stored in the
// form produced by the configured CredentialCodec and never leaves the
// account store except through VerifyCredentials, whose callers must strip
// it before exposing the account.
//
// The JSON field names are the durable storage contract: administrative
// tooling reads the serialized collection directly.
// swagger:model Account
type Account struct {
	ID                    string     `json:"id"`
	Email                 string     `json:"email"`
	Name                  string     `json:"name"`
	Password              string     `json:"password"`
	CreatedAt             time.Time  `json:"createdAt"`
	RegistrationCompleted bool       `json:"registrationCompleted"`
	LastLogin             *time.Time `json:"lastLogin,omitempty"`
}

// Identity is an Account with the password structurally removed. It is the
// only account representation the session layer and the UI ever see.
// swagger:model Identity
type Identity struct {
	ID                    string     `json:"id"`
	Email                 string     `json:"email"`
	Name                  string     `json:"name"`
	CreatedAt             time.Time  `json:"createdAt"`
	RegistrationCompleted bool       `json:"registrationCompleted"`
	LastLogin             *time.Time `json:"lastLogin,omitempty"`
}

// Identity returns the password-free view of the account.
func (a *Account) Identity() *Identity {
	return &Identity{
		ID:                    a.ID,
		Email:                 a.Email,
		Name:                  a.Name,
		CreatedAt:             a.CreatedAt,
		RegistrationCompleted: a.RegistrationCompleted,
		LastLogin:             a.LastLogin,
	}
}

// RegistrationStatus reports whether an email has an account and whether
// that account finished the conference registration form.
type RegistrationStatus struct {
	Registered bool `json:"registered"`
	Completed  bool `json:"completed"`
}

// AccountStore is the sole authority over the account collection. Email
// comparison is case-insensitive everywhere; emails are lowercased on
// creation.
type AccountStore interface {
	// Initialize loads the durable collection (treating a missing or
	// corrupt document as empty) and seeds the fixture accounts when the
	// collection is empty. Call once before use.
	Initialize(ctx context.Context) error
	EmailExists(ctx context.Context, email string) bool
	FindByEmail(ctx context.Context, email string) (*Account, bool)
	// VerifyCredentials checks email/password, updates LastLogin on success
	// and returns a copy of the account (password included; strip before
	// exposing). Fails with ErrAccountNotFound or ErrInvalidCredential.
	VerifyCredentials(ctx context.Context, email, password string) (*Account, error)
	// Register creates an account with RegistrationCompleted=false. Fails
	// with ErrDuplicateEmail, ErrInvalidInput, or ErrWeakPassword.
	Register(ctx context.Context, email, name, password string) (*Account, error)
	// SetRegistrationCompleted flips the completion flag; reports whether
	// an account matched. Idempotent.
	SetRegistrationCompleted(ctx context.Context, email string, completed bool) bool
	RegistrationStatus(ctx context.Context, email string) RegistrationStatus
	// ListAll returns all accounts in insertion order with passwords
	// replaced by a masking placeholder. Administrative use only.
	ListAll(ctx context.Context) []*Account
	Delete(ctx context.Context, email string) bool
	// Reset clears the collection and its durable representation.
	Reset(ctx context.Context) error
}

// CredentialCodec converts a password to its stored form and verifies a
// password against a stored form. The default codec stores verbatim to
// match the original portal's contract; the bcrypt codec is the hardened
// alternative.
type CredentialCodec interface {
	Encode(password string) (string, error)
	Verify(stored, password string) error
}

// TokenIssuer issues API tokens (e.g. JWT) for an authenticated account.
type TokenIssuer interface {
	Issue(accountID, email string, registrationCompleted bool, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the account identity claims.
type TokenVerifier interface {
	Verify(token string) (accountID, email string, err error)
}
