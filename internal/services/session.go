package services

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"icisdportal/internal/domain"
)

type sessionService struct {
	store       domain.AccountStore
	docs        domain.DocumentStore
	issuer      domain.TokenIssuer
	email       domain.EmailService
	tokenExpiry time.Duration
	delay       time.Duration
	logger      *slog.Logger

	mu      sync.Mutex
	current *domain.Identity
}

// NewSessionService creates a SessionService over the account store. The
// previous identity, if any, is restored from the session document. delay
// is the artificial latency applied to auth operations; zero disables it.
// email, when non-nil, receives a welcome send for each new registration.
func NewSessionService(store domain.AccountStore, docs domain.DocumentStore, issuer domain.TokenIssuer, email domain.EmailService, tokenExpiry, delay time.Duration, logger *slog.Logger) domain.SessionService {
	s := &sessionService{
		store:       store,
		docs:        docs,
		issuer:      issuer,
		email:       email,
		tokenExpiry: tokenExpiry,
		delay:       delay,
		logger:      logger,
	}
	s.restore(context.Background())
	return s
}

// restore loads the persisted identity. Failures leave the session
// anonymous; they are never fatal.
func (s *sessionService) restore(ctx context.Context) {
	doc, err := s.docs.Load(ctx, domain.SessionKey)
	if err != nil {
		if !errors.Is(err, domain.ErrDocumentNotFound) {
			s.logger.Error("loading session identity", "err", err)
		}
		return
	}
	var id domain.Identity
	if err := json.Unmarshal(doc, &id); err != nil {
		s.logger.Error("session identity document is corrupt", "err", err)
		return
	}
	s.current = &id
}

// pause simulates network latency. It returns early when the context is
// canceled; correctness never depends on the delay elapsing.
func (s *sessionService) pause(ctx context.Context) {
	if s.delay <= 0 {
		return
	}
	select {
	case <-time.After(s.delay):
	case <-ctx.Done():
	}
}

// setCurrent replaces the current identity and rewrites its persisted
// copy. Caller holds the lock.
func (s *sessionService) setCurrent(ctx context.Context, id *domain.Identity) {
	s.current = id
	doc, err := json.Marshal(id)
	if err != nil {
		s.logger.Error("serializing session identity", "err", err)
		return
	}
	if err := s.docs.Save(ctx, domain.SessionKey, doc); err != nil {
		s.logger.Error("saving session identity", "err", err)
	}
}

func (s *sessionService) issueToken(a *domain.Account) string {
	if s.issuer == nil {
		return ""
	}
	token, err := s.issuer.Issue(a.ID, a.Email, a.RegistrationCompleted, s.tokenExpiry)
	if err != nil {
		s.logger.Error("issuing token", "email", a.Email, "err", err)
		return ""
	}
	return token
}

func (s *sessionService) CheckEmail(ctx context.Context, email string) domain.EmailCheck {
	s.pause(ctx)
	status := s.store.RegistrationStatus(ctx, email)
	return domain.EmailCheck{Exists: status.Registered, Completed: status.Completed}
}

func (s *sessionService) Register(ctx context.Context, email, name, password, confirm string) domain.AuthOutcome {
	s.pause(ctx)

	// Confirmation mismatch is rejected before the store is touched so a
	// typo never creates an account.
	if password != confirm {
		return domain.AuthOutcome{Err: domain.ErrPasswordMismatch}
	}

	a, err := s.store.Register(ctx, email, name, password)
	if err != nil {
		return domain.AuthOutcome{Err: err}
	}

	id := a.Identity()
	s.mu.Lock()
	s.setCurrent(ctx, id)
	s.mu.Unlock()

	if s.email != nil {
		// Welcome delivery is best-effort; the account already exists.
		data := &domain.WelcomeEmailData{Email: a.Email, Name: a.Name}
		if err := s.email.SendWelcome(ctx, data); err != nil {
			s.logger.Error("sending welcome email", "email", a.Email, "err", err)
		}
	}

	return domain.AuthOutcome{Success: true, Identity: id, Token: s.issueToken(a)}
}

func (s *sessionService) SignIn(ctx context.Context, email, password string) domain.AuthOutcome {
	s.pause(ctx)

	a, err := s.store.VerifyCredentials(ctx, email, password)
	if err != nil {
		return domain.AuthOutcome{Err: err}
	}

	id := a.Identity()
	s.mu.Lock()
	s.setCurrent(ctx, id)
	s.mu.Unlock()

	return domain.AuthOutcome{
		Success:      true,
		Identity:     id,
		Token:        s.issueToken(a),
		ShouldGoHome: a.RegistrationCompleted,
	}
}

func (s *sessionService) CompleteRegistration(ctx context.Context, email string) bool {
	if !s.store.SetRegistrationCompleted(ctx, email, true) {
		return false
	}

	// The store record and the session snapshot hold the same fact; this
	// is the one place both copies must move together.
	s.mu.Lock()
	if s.current != nil && strings.EqualFold(s.current.Email, email) {
		updated := *s.current
		updated.RegistrationCompleted = true
		s.setCurrent(ctx, &updated)
	}
	s.mu.Unlock()
	return true
}

func (s *sessionService) Logout(ctx context.Context) {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	if err := s.docs.Delete(ctx, domain.SessionKey); err != nil {
		s.logger.Error("removing session identity", "err", err)
	}
}

func (s *sessionService) CurrentUser() *domain.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	cp := *s.current
	return &cp
}

func (s *sessionService) IsLoggedIn() bool {
	return s.CurrentUser() != nil
}
