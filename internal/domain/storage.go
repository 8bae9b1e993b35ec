package domain

import (
	"context"
	"errors"
)

// Document namespace keys. The keys are a compatibility contract with the
// original portal's storage layout and with administrative tooling that
// reads the documents directly.
const (
	AccountsKey    = "icisd_users"
	SessionKey     = "current_user"
	SubmissionsKey = "icisd_submissions"
)

// ErrDocumentNotFound is returned by DocumentStore.Load when no document
// exists under the key.
var ErrDocumentNotFound = errors.New("document not found")

// DocumentStore is a namespaced document port: each key holds one JSON
// document that is rewritten whole on every mutation. This mirrors the
// single-key/full-rewrite discipline of the original portal's storage and
// sidesteps partial-write corruption.
type DocumentStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, doc []byte) error
	Delete(ctx context.Context, key string) error
}
