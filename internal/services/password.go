package services

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordScheme controls how passwords are stored and compared.
type PasswordScheme interface {
	// Hash returns the storable form of a plaintext password.
	Hash(password string) (string, error)

	// Match reports whether candidate matches the stored form.
	Match(stored, candidate string) bool
}

// PlainScheme stores passwords as-is and compares them byte for byte,
// case-sensitively. This mirrors the page this manager was ported from and
// is the default; it is a known security gap accepted for compatibility.
type PlainScheme struct{}

func (PlainScheme) Hash(password string) (string, error) { return password, nil }

func (PlainScheme) Match(stored, candidate string) bool { return stored == candidate }

// BcryptScheme stores bcrypt hashes instead of plaintext. Existing plaintext
// records will no longer match after switching schemes.
type BcryptScheme struct {
	Cost int
}

func (s BcryptScheme) Hash(password string) (string, error) {
	cost := s.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (s BcryptScheme) Match(stored, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)) == nil
}

// SchemeByName maps a config value to a PasswordScheme.
func SchemeByName(name string) (PasswordScheme, error) {
	switch name {
	case "", "plain":
		return PlainScheme{}, nil
	case "bcrypt":
		return BcryptScheme{}, nil
	default:
		return nil, fmt.Errorf("unknown password scheme: %s", name)
	}
}
