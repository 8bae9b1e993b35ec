package services

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"icisdportal/internal/domain"
)

// maskedPassword replaces real passwords in administrative listings.
const maskedPassword = "***"

type accountStore struct {
	docs   domain.DocumentStore
	codec  domain.CredentialCodec
	logger *slog.Logger
	now    func() time.Time

	mu       sync.Mutex
	accounts []*domain.Account
}

// NewAccountStore creates the account store over the given document store
// and credential codec. Call Initialize before use.
func NewAccountStore(docs domain.DocumentStore, codec domain.CredentialCodec, logger *slog.Logger) domain.AccountStore {
	return &accountStore{
		docs:   docs,
		codec:  codec,
		logger: logger,
		now:    time.Now,
	}
}

func (s *accountStore) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accounts = nil
	doc, err := s.docs.Load(ctx, domain.AccountsKey)
	if err != nil && !errors.Is(err, domain.ErrDocumentNotFound) {
		// Losing the collection is recoverable: reseed below.
		s.logger.Error("loading accounts", "err", err)
	}
	if len(doc) > 0 {
		if err := json.Unmarshal(doc, &s.accounts); err != nil {
			s.logger.Error("accounts document is corrupt, starting empty", "err", err)
			s.accounts = nil
		}
	}
	if len(s.accounts) == 0 {
		s.seedFixtures()
		s.persist(ctx)
	}
	return nil
}

// seedFixtures inserts the two demo accounts so the portal always has a
// working credential pair. Both are flagged as fully registered. Caller
// holds the lock.
func (s *accountStore) seedFixtures() {
	now := s.now()
	fixtures := []struct {
		id        string
		email     string
		name      string
		password  string
		createdAt time.Time
		lastLogin time.Time
	}{
		{"user-1", "user@example.com", "John Doe", "password123", now.AddDate(0, 0, -7), now.AddDate(0, 0, -2)},
		{"user-2", "test@icisd.com", "Jane Smith", "test123", now.AddDate(0, 0, -5), now.AddDate(0, 0, -1)},
	}
	for _, f := range fixtures {
		stored, err := s.codec.Encode(f.password)
		if err != nil {
			s.logger.Error("encoding fixture credential", "email", f.email, "err", err)
			continue
		}
		lastLogin := f.lastLogin
		s.accounts = append(s.accounts, &domain.Account{
			ID:                    f.id,
			Email:                 f.email,
			Name:                  f.name,
			Password:              stored,
			CreatedAt:             f.createdAt,
			RegistrationCompleted: true,
			LastLogin:             &lastLogin,
		})
	}
}

// persist rewrites the whole collection to the accounts document. Storage
// failures are logged, never surfaced: the in-memory collection stays
// authoritative for the life of the process. Caller holds the lock.
func (s *accountStore) persist(ctx context.Context) {
	doc, err := json.Marshal(s.accounts)
	if err != nil {
		s.logger.Error("serializing accounts", "err", err)
		return
	}
	if err := s.docs.Save(ctx, domain.AccountsKey, doc); err != nil {
		s.logger.Error("saving accounts", "err", err)
	}
}

// findLocked returns the account with the given email, case-insensitively.
// Caller holds the lock.
func (s *accountStore) findLocked(email string) *domain.Account {
	for _, a := range s.accounts {
		if strings.EqualFold(a.Email, email) {
			return a
		}
	}
	return nil
}

func (s *accountStore) EmailExists(ctx context.Context, email string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findLocked(email) != nil
}

func (s *accountStore) FindByEmail(ctx context.Context, email string) (*domain.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := s.findLocked(email)
	if a == nil {
		return nil, false
	}
	cp := *a
	return &cp, true
}

func (s *accountStore) VerifyCredentials(ctx context.Context, email, password string) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.findLocked(email)
	if a == nil {
		return nil, domain.ErrAccountNotFound
	}
	if err := s.codec.Verify(a.Password, password); err != nil {
		return nil, domain.ErrInvalidCredential
	}

	now := s.now()
	a.LastLogin = &now
	s.persist(ctx)

	cp := *a
	return &cp, nil
}

func (s *accountStore) Register(ctx context.Context, email, name, password string) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email = strings.TrimSpace(email)
	if s.findLocked(email) != nil {
		return nil, domain.ErrDuplicateEmail
	}
	if email == "" || strings.TrimSpace(name) == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(password) < domain.MinPasswordLen {
		return nil, domain.ErrWeakPassword
	}

	stored, err := s.codec.Encode(password)
	if err != nil {
		return nil, err
	}

	now := s.now()
	lastLogin := now
	a := &domain.Account{
		ID:                    "user-" + uuid.NewString(),
		Email:                 strings.ToLower(email),
		Name:                  name,
		Password:              stored,
		CreatedAt:             now,
		RegistrationCompleted: false,
		LastLogin:             &lastLogin,
	}
	s.accounts = append(s.accounts, a)
	s.persist(ctx)

	cp := *a
	return &cp, nil
}

func (s *accountStore) SetRegistrationCompleted(ctx context.Context, email string, completed bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.findLocked(email)
	if a == nil {
		return false
	}
	a.RegistrationCompleted = completed
	s.persist(ctx)
	return true
}

func (s *accountStore) RegistrationStatus(ctx context.Context, email string) domain.RegistrationStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.findLocked(email)
	if a == nil {
		return domain.RegistrationStatus{}
	}
	return domain.RegistrationStatus{Registered: true, Completed: a.RegistrationCompleted}
}

func (s *accountStore) ListAll(ctx context.Context) []*domain.Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.Account, 0, len(s.accounts))
	for _, a := range s.accounts {
		cp := *a
		cp.Password = maskedPassword
		out = append(out, &cp)
	}
	return out
}

func (s *accountStore) Delete(ctx context.Context, email string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.accounts {
		if strings.EqualFold(a.Email, email) {
			s.accounts = append(s.accounts[:i], s.accounts[i+1:]...)
			s.persist(ctx)
			return true
		}
	}
	return false
}

func (s *accountStore) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accounts = nil
	if err := s.docs.Delete(ctx, domain.AccountsKey); err != nil {
		return err
	}
	return nil
}
