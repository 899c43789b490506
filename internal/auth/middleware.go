package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/catalog-service/pkg/util"
)

const subjectKey = "auth_subject"

// Middleware validates bearer tokens on protected routes. Any valid token
// holder may perform any protected operation; the subject is stored for
// handlers that echo it back.
type Middleware struct {
	tokens *TokenManager
}

// NewMiddleware constructs the auth gate.
func NewMiddleware(tokens *TokenManager) *Middleware {
	return &Middleware{tokens: tokens}
}

// Handle enforces authentication for protected routes.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewForbidden("Credenciales no proporcionadas")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewForbidden("Credenciales no proporcionadas")
	}

	subject, err := m.tokens.Verify(parts[1])
	if err != nil {
		if errors.Is(err, ErrTokenExpired) {
			return apperrors.NewForbidden("Token expirado")
		}
		return apperrors.NewForbidden("Token inválido")
	}

	c.Locals(subjectKey, subject)
	return c.Next()
}

// SubjectFromContext retrieves the authenticated subject, if any.
func SubjectFromContext(c *fiber.Ctx) (string, bool) {
	val := c.Locals(subjectKey)
	if val == nil {
		return "", false
	}
	subject, ok := val.(string)
	return subject, ok
}
