package service

import (
	"time"

	"github.com/spec-kit/catalog-service/internal/auth"
	"github.com/spec-kit/catalog-service/internal/config"
	apperrors "github.com/spec-kit/catalog-service/pkg/util"
)

// AuthService coordinates the admin login flow and token verification.
type AuthService struct {
	credentials *auth.CredentialChecker
	tokenMgr    *auth.TokenManager
}

// NewAuthService builds the service from config.
func NewAuthService(cfg config.AuthConfig) *AuthService {
	return &AuthService{
		credentials: auth.NewCredentialChecker(cfg),
		tokenMgr:    auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL()),
	}
}

// Login validates the credential pair and issues a bearer token.
func (s *AuthService) Login(username, password string) (string, time.Time, error) {
	if !s.credentials.Check(username, password) {
		return "", time.Time{}, apperrors.NewInvalidCredentials("Credenciales incorrectas")
	}
	return s.tokenMgr.Issue(username)
}

// VerifyToken checks a bearer token and returns its subject.
func (s *AuthService) VerifyToken(tokenStr string) (string, error) {
	return s.tokenMgr.Verify(tokenStr)
}

// TokenManager exposes the manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
