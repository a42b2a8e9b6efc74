// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/wardrobe-manager/backend/internal/application/adapter"
)

// DefaultBcryptCost is the cost factor used outside tests.
const DefaultBcryptCost = 12

// passwordService implements the adapter.PasswordService interface.
type passwordService struct {
	cost int
}

// NewPasswordService creates a password service hashing with DefaultBcryptCost.
func NewPasswordService() adapter.PasswordService {
	return NewPasswordServiceWithCost(DefaultBcryptCost)
}

// NewPasswordServiceWithCost creates a password service with an explicit bcrypt cost.
func NewPasswordServiceWithCost(cost int) adapter.PasswordService {
	return &passwordService{cost: cost}
}

// HashPassword hashes a plain text password using bcrypt.
func (s *passwordService) HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// VerifyPassword compares a plain text password with a hashed password.
func (s *passwordService) VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// ValidatePasswordStrength checks the password length limits of the adapter package.
func (s *passwordService) ValidatePasswordStrength(password string) error {
	if len([]rune(password)) < adapter.MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", adapter.MinPasswordLength)
	}
	if len(password) > adapter.MaxPasswordBytes {
		return fmt.Errorf("password must be at most %d bytes long", adapter.MaxPasswordBytes)
	}
	return nil
}
