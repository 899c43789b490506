package service

import (
	"errors"
	"testing"

	"github.com/spec-kit/catalog-service/internal/config"
	apperrors "github.com/spec-kit/catalog-service/pkg/util"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		AdminUsername: "admin",
		AdminPassword: "admin123",
		JWTSecret:     "test-secret",
		TokenTTLHours: 24,
	}
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	svc := NewAuthService(testAuthConfig())

	token, _, err := svc.Login("admin", "admin123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	subject, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if subject != "admin" {
		t.Errorf("expected subject 'admin', got %q", subject)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := NewAuthService(testAuthConfig())

	_, _, err := svc.Login("admin", "wrong")
	if err == nil {
		t.Fatal("expected error")
	}

	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("expected DomainError, got %T", err)
	}
	if domainErr.Code != "INVALID_CREDENTIALS" || domainErr.HTTPStatus != 401 {
		t.Errorf("unexpected error mapping: code=%s status=%d", domainErr.Code, domainErr.HTTPStatus)
	}
}
