package middleware

import (
	"errors"
	"strings"

	"job-khojo/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
)

const CtxRoleKey = "role"

type AuthMiddleware struct {
	jwt jwt.Service
}

func NewAuthMiddleware(jwtSvc jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc}
}

// Middleware guards admin routes with a bearer token. A "token" query
// parameter is accepted as a fallback because browser WebSocket clients
// cannot set an Authorization header.
func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		if m == nil || m.jwt == nil {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
		}

		token, ok := bearerTokenFromHeader(c.Get("Authorization"))
		if !ok {
			token = strings.TrimSpace(c.Query("token"))
			ok = token != ""
		}
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
		}

		claims, err := m.jwt.ValidateToken(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return NewAppError(fiber.StatusUnauthorized, "Token expired", err)
			}
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", err)
		}

		c.Locals(CtxRoleKey, claims.Role)
		return c.Next()
	}
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}
