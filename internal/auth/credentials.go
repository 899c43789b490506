package auth

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/catalog-service/internal/config"
)

// CredentialChecker validates submitted credentials against the single
// configured admin identity.
type CredentialChecker struct {
	username string
	password string
}

// NewCredentialChecker builds a checker from config.
func NewCredentialChecker(cfg config.AuthConfig) *CredentialChecker {
	return &CredentialChecker{username: cfg.AdminUsername, password: cfg.AdminPassword}
}

// Check reports whether the pair matches the admin identity. When the
// configured password is a bcrypt hash the submitted password is compared
// against it with bcrypt; otherwise both comparisons are constant-time.
func (c *CredentialChecker) Check(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(c.username)) == 1

	var passOK bool
	if isBcryptHash(c.password) {
		passOK = bcrypt.CompareHashAndPassword([]byte(c.password), []byte(password)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(c.password)) == 1
	}

	return userOK && passOK
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}
