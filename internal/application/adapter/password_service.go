// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// Password length limits enforced at registration.
// bcrypt ignores input past 72 bytes, so longer passwords are rejected instead of silently truncated.
const (
	MinPasswordLength = 8
	MaxPasswordBytes  = 72
)

// PasswordService hashes and checks account passwords.
type PasswordService interface {
	// HashPassword returns a salted hash of password.
	HashPassword(password string) (string, error)

	// VerifyPassword returns an error unless password matches hashedPassword.
	VerifyPassword(hashedPassword, password string) error

	// ValidatePasswordStrength rejects passwords outside MinPasswordLength and MaxPasswordBytes.
	ValidatePasswordStrength(password string) error
}
