package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"icisdportal/internal/domain"
)

type plainCodec struct{}

// NewPlainCodec returns the store-and-compare codec the original portal
// used: passwords are stored verbatim and compared verbatim. It exists for
// behavioral parity and demo data readability; use NewBcryptCodec for
// anything resembling production.
func NewPlainCodec() domain.CredentialCodec {
	return plainCodec{}
}

func (plainCodec) Encode(password string) (string, error) {
	return password, nil
}

func (plainCodec) Verify(stored, password string) error {
	if subtle.ConstantTimeCompare([]byte(stored), []byte(password)) != 1 {
		return fmt.Errorf("credential mismatch")
	}
	return nil
}

type bcryptCodec struct {
	cost int
}

// NewBcryptCodec returns the hardened codec: bcrypt over a SHA256 digest
// of the password, so inputs longer than bcrypt's 72-byte limit still
// hash fully.
func NewBcryptCodec(cost int) domain.CredentialCodec {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &bcryptCodec{cost: cost}
}

func (c *bcryptCodec) Encode(password string) (string, error) {
	sum := sha256.Sum256([]byte(password))
	hash, err := bcrypt.GenerateFromPassword([]byte(hex.EncodeToString(sum[:])), c.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (c *bcryptCodec) Verify(stored, password string) error {
	sum := sha256.Sum256([]byte(password))
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(hex.EncodeToString(sum[:])))
}
