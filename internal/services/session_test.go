package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"icisdportal/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeIssuer hands out recognizable tokens so the tests can assert the
// session carried one through.
type fakeIssuer struct{ fail bool }

func (f fakeIssuer) Issue(accountID, email string, completed bool, expiry time.Duration) (string, error) {
	if f.fail {
		return "", assert.AnError
	}
	return "token-for-" + accountID, nil
}

func newTestSession(t *testing.T) (domain.SessionService, domain.AccountStore, domain.DocumentStore) {
	t.Helper()
	store, docs := newTestStore(t)
	svc := NewSessionService(store, docs, fakeIssuer{}, nil, time.Hour, 0, testLogger())
	return svc, store, docs
}

func TestSessionService_CheckEmail(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newTestSession(t)

	// Known fixture account, fully registered.
	check := svc.CheckEmail(ctx, "user@example.com")
	assert.Equal(t, domain.EmailCheck{Exists: true, Completed: true}, check)

	// Unknown address.
	check = svc.CheckEmail(ctx, "nobody@x.com")
	assert.Equal(t, domain.EmailCheck{}, check)

	// Registered but not completed.
	_, err := store.Register(ctx, "new@x.com", "New User", "abc123")
	require.NoError(t, err)
	check = svc.CheckEmail(ctx, "new@x.com")
	assert.Equal(t, domain.EmailCheck{Exists: true, Completed: false}, check)
}

func TestSessionService_Register(t *testing.T) {
	ctx := context.Background()
	svc, _, docs := newTestSession(t)

	out := svc.Register(ctx, "new@x.com", "New User", "abc123", "abc123")
	require.NoError(t, out.Err)
	assert.True(t, out.Success)
	require.NotNil(t, out.Identity)
	assert.Equal(t, "new@x.com", out.Identity.Email)
	assert.False(t, out.Identity.RegistrationCompleted)
	assert.False(t, out.ShouldGoHome)
	assert.NotEmpty(t, out.Token)

	// The new identity is the current session and is persisted.
	assert.True(t, svc.IsLoggedIn())
	doc, err := docs.Load(ctx, domain.SessionKey)
	require.NoError(t, err)
	var persisted domain.Identity
	require.NoError(t, json.Unmarshal(doc, &persisted))
	assert.Equal(t, out.Identity.ID, persisted.ID)
}

func TestSessionService_RegisterMismatchCreatesNoAccount(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newTestSession(t)

	out := svc.Register(ctx, "new@x.com", "New User", "abc123", "different")
	assert.False(t, out.Success)
	require.ErrorIs(t, out.Err, domain.ErrPasswordMismatch)
	assert.Equal(t, "Passwords do not match.", domain.ErrorMessage(out.Err))

	assert.False(t, store.EmailExists(ctx, "new@x.com"))
	assert.False(t, svc.IsLoggedIn())
}

func TestSessionService_RegisterStoreErrors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
		wantMsg  string
	}{
		{"duplicate", "user@example.com", "abc123", domain.ErrDuplicateEmail, "Email already registered. Please sign in instead."},
		{"weak password", "new@x.com", "abc12", domain.ErrWeakPassword, "Password must be at least 6 characters long."},
		{"empty name", "new@x.com", "abc123", domain.ErrInvalidInput, "All fields are required."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newTestSession(t)
			name := "New User"
			if tt.name == "empty name" {
				name = ""
			}
			out := svc.Register(ctx, tt.email, name, tt.password, tt.password)
			assert.False(t, out.Success)
			require.ErrorIs(t, out.Err, tt.wantErr)
			assert.Equal(t, tt.wantMsg, domain.ErrorMessage(out.Err))
			assert.False(t, svc.IsLoggedIn())
		})
	}
}

func TestSessionService_SignIn(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestSession(t)

	// Completed fixture account goes straight home.
	out := svc.SignIn(ctx, "user@example.com", "password123")
	require.NoError(t, out.Err)
	assert.True(t, out.Success)
	assert.True(t, out.ShouldGoHome)
	require.NotNil(t, out.Identity)
	assert.Equal(t, "John Doe", out.Identity.Name)
	assert.NotEmpty(t, out.Token)
	assert.True(t, svc.IsLoggedIn())
}

func TestSessionService_SignInIncompleteAccountStaysOnPortal(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newTestSession(t)

	_, err := store.Register(ctx, "new@x.com", "New User", "abc123")
	require.NoError(t, err)

	out := svc.SignIn(ctx, "new@x.com", "abc123")
	require.NoError(t, out.Err)
	assert.True(t, out.Success)
	assert.False(t, out.ShouldGoHome)
}

func TestSessionService_SignInFailures(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
		wantMsg  string
	}{
		{"unknown account", "ghost@x.com", "whatever", domain.ErrAccountNotFound, "User not found. Please create an account."},
		{"wrong password", "user@example.com", "wrong", domain.ErrInvalidCredential, "Invalid password. Please try again."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newTestSession(t)
			out := svc.SignIn(ctx, tt.email, tt.password)
			assert.False(t, out.Success)
			require.ErrorIs(t, out.Err, tt.wantErr)
			assert.Equal(t, tt.wantMsg, domain.ErrorMessage(out.Err))
			assert.False(t, svc.IsLoggedIn())
		})
	}
}

func TestSessionService_CompleteRegistration(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newTestSession(t)

	out := svc.Register(ctx, "new@x.com", "New User", "abc123", "abc123")
	require.True(t, out.Success)
	require.False(t, svc.CurrentUser().RegistrationCompleted)

	require.True(t, svc.CompleteRegistration(ctx, "NEW@x.com"))

	// Both the store record and the session snapshot moved.
	status := store.RegistrationStatus(ctx, "new@x.com")
	assert.True(t, status.Completed)
	require.NotNil(t, svc.CurrentUser())
	assert.True(t, svc.CurrentUser().RegistrationCompleted)

	assert.False(t, svc.CompleteRegistration(ctx, "ghost@x.com"))
}

func TestSessionService_CompleteRegistrationForOtherAccountLeavesSessionAlone(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newTestSession(t)

	_, err := store.Register(ctx, "other@x.com", "Other", "abc123")
	require.NoError(t, err)

	out := svc.Register(ctx, "new@x.com", "New User", "abc123", "abc123")
	require.True(t, out.Success)

	require.True(t, svc.CompleteRegistration(ctx, "other@x.com"))
	assert.False(t, svc.CurrentUser().RegistrationCompleted)
}

func TestSessionService_Logout(t *testing.T) {
	ctx := context.Background()
	svc, _, docs := newTestSession(t)

	out := svc.SignIn(ctx, "user@example.com", "password123")
	require.True(t, out.Success)

	svc.Logout(ctx)
	assert.False(t, svc.IsLoggedIn())
	assert.Nil(t, svc.CurrentUser())

	_, err := docs.Load(ctx, domain.SessionKey)
	require.ErrorIs(t, err, domain.ErrDocumentNotFound)
}

func TestSessionService_RegisterSendsWelcomeEmail(t *testing.T) {
	ctx := context.Background()
	store, docs := newTestStore(t)
	mail := &recordingEmail{}
	svc := NewSessionService(store, docs, fakeIssuer{}, mail, time.Hour, 0, testLogger())

	out := svc.Register(ctx, "new@x.com", "New User", "abc123", "abc123")
	require.True(t, out.Success)
	require.Len(t, mail.welcomes, 1)
	assert.Equal(t, "new@x.com", mail.welcomes[0].Email)

	// Failed registrations send nothing.
	out = svc.Register(ctx, "new@x.com", "Dup", "abc123", "abc123")
	require.False(t, out.Success)
	assert.Len(t, mail.welcomes, 1)
}

func TestSessionService_RestoresPersistedIdentity(t *testing.T) {
	ctx := context.Background()
	store, docs := newTestStore(t)

	first := NewSessionService(store, docs, fakeIssuer{}, nil, time.Hour, 0, testLogger())
	out := first.SignIn(ctx, "user@example.com", "password123")
	require.True(t, out.Success)

	// A fresh service over the same documents picks the identity back up.
	second := NewSessionService(store, docs, fakeIssuer{}, nil, time.Hour, 0, testLogger())
	require.True(t, second.IsLoggedIn())
	assert.Equal(t, out.Identity.ID, second.CurrentUser().ID)
	assert.Equal(t, "user@example.com", second.CurrentUser().Email)
}

func TestSessionService_CorruptSessionDocumentStaysAnonymous(t *testing.T) {
	ctx := context.Background()
	store, docs := newTestStore(t)
	require.NoError(t, docs.Save(ctx, domain.SessionKey, []byte("{broken")))

	svc := NewSessionService(store, docs, fakeIssuer{}, nil, time.Hour, 0, testLogger())
	assert.False(t, svc.IsLoggedIn())
}

func TestSessionService_CurrentUserReturnsCopy(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestSession(t)

	out := svc.SignIn(ctx, "user@example.com", "password123")
	require.True(t, out.Success)

	id := svc.CurrentUser()
	id.Name = "Mutated"
	assert.Equal(t, "John Doe", svc.CurrentUser().Name)
}

func TestSessionService_TokenIssueFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	store, docs := newTestStore(t)
	svc := NewSessionService(store, docs, fakeIssuer{fail: true}, nil, time.Hour, 0, testLogger())

	out := svc.SignIn(ctx, "user@example.com", "password123")
	assert.True(t, out.Success)
	assert.Empty(t, out.Token)
}

func TestSessionService_ArtificialDelayRespectsContext(t *testing.T) {
	store, docs := newTestStore(t)
	svc := NewSessionService(store, docs, fakeIssuer{}, nil, time.Hour, 5*time.Second, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	svc.CheckEmail(ctx, "user@example.com")
	assert.Less(t, time.Since(start), time.Second)
}
