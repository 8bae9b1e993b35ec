package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	h "icisdportal/internal/delivery/http/helpers"
	"icisdportal/internal/domain"
)

type contextKey string

const (
	accountIDKey contextKey = "accountID"
	emailKey     contextKey = "email"
)

// SetAccount returns a context carrying the authenticated account ID and
// email. Used by auth middleware.
func SetAccount(ctx context.Context, accountID, email string) context.Context {
	ctx = context.WithValue(ctx, accountIDKey, accountID)
	return context.WithValue(ctx, emailKey, email)
}

// AccountFromContext returns the authenticated account ID and email from
// the context, if present.
func AccountFromContext(ctx context.Context) (accountID, email string, ok bool) {
	accountID, ok = ctx.Value(accountIDKey).(string)
	if !ok {
		return "", "", false
	}
	email, _ = ctx.Value(emailKey).(string)
	return accountID, email, true
}

// RequireAuth returns a wrapper that validates the Bearer token and sets the
// account identity in the request context. If the token is missing or
// invalid, it responds with 401 and does not call next.
func RequireAuth(verifier domain.TokenVerifier, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing authorization header")
				return
			}
			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid authorization format")
				return
			}
			token := strings.TrimSpace(auth[len(prefix):])
			if token == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing token")
				return
			}
			accountID, email, err := verifier.Verify(token)
			if err != nil {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired token")
				return
			}
			r = r.WithContext(SetAccount(r.Context(), accountID, email))
			next(w, r)
		}
	}
}

// RequireAdminKey returns a wrapper that checks the X-Admin-Key header
// against the configured key. An empty configured key disables the
// administrative surface entirely.
func RequireAdminKey(adminKey string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if adminKey == "" {
				h.WriteJSONError(w, http.StatusForbidden, h.ErrCodeForbidden, "administrative access is disabled")
				return
			}
			if r.Header.Get("X-Admin-Key") != adminKey {
				h.WriteJSONError(w, http.StatusForbidden, h.ErrCodeForbidden, "invalid admin key")
				return
			}
			next(w, r)
		}
	}
}
