// Package password provides the employee password schemes.
package password

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/tair/inventory-management/internal/employee/domain"
	"github.com/tair/inventory-management/pkg/config"
)

// Plaintext stores passwords as submitted and compares them exactly
type Plaintext struct{}

func (Plaintext) Hash(password string) (string, error) {
	return password, nil
}

func (Plaintext) Compare(stored, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}

// Bcrypt stores bcrypt hashes
type Bcrypt struct {
	Cost int
}

func (b Bcrypt) Hash(password string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

func (Bcrypt) Compare(stored, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)) == nil
}

// New returns the scheme configured by name
func New(name string) (domain.PasswordScheme, error) {
	switch name {
	case config.PasswordPlaintext, "":
		return Plaintext{}, nil
	case config.PasswordBcrypt:
		return Bcrypt{}, nil
	default:
		return nil, fmt.Errorf("unsupported password scheme %q", name)
	}
}
