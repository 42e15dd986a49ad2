// Package middleware provides HTTP middleware for the fiber app.
package middleware

import (
	"log"
	"strings"

	"ledgerwriter/internal/auth"
	"ledgerwriter/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware verifies the bearer token on incoming requests and stores
// the verified claims and the raw token in the request context. The raw
// token is kept so downstream calls can forward the caller's credential.
type AuthMiddleware struct {
	verifier *auth.Verifier
}

func NewAuthMiddleware(verifier *auth.Verifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Handler rejects the request with 401 unless the Authorization header
// carries a verifiable bearer token. Every verification failure is treated
// uniformly; no partial trust.
func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" || token == authHeader {
		return response.Unauthorized(c)
	}

	claims, err := m.verifier.Verify(token)
	if err != nil {
		log.Printf("token verification failed: %v", err)
		return response.Unauthorized(c)
	}

	c.Locals("claims", claims)
	c.Locals("token", token)
	return c.Next()
}
