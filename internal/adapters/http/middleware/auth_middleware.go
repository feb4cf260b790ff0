package middleware

import (
	"errors"
	"strings"

	"ooskills-backend/internal/core/domain"
	"ooskills-backend/internal/core/services"
	"ooskills-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware creates authentication middleware. Validation goes
// through the auth service so that a lineage revoked after the access
// token was minted still rejects the request.
func AuthMiddleware(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accessToken := extractToken(c)
		if accessToken == "" {
			return response.Unauthorized(c, "Access token required")
		}

		claims, err := authService.Validate(c.Context(), accessToken)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrTokenExpired):
				return response.Unauthorized(c, "Access token expired")
			case errors.Is(err, domain.ErrTokenRevoked):
				return response.Unauthorized(c, "Session has been revoked")
			default:
				return response.Unauthorized(c, "Invalid access token")
			}
		}

		c.Locals("userID", claims.UserID)
		c.Locals("email", claims.Email)
		c.Locals("role", claims.Role)
		c.Locals("lineageID", claims.LineageID)

		return c.Next()
	}
}

// RoleMiddleware creates role-based authorization middleware
func RoleMiddleware(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return response.Unauthorized(c, "Unauthorized")
		}

		for _, allowedRole := range allowedRoles {
			if role == allowedRole {
				return c.Next()
			}
		}

		return response.Forbidden(c, "You don't have permission to access this resource")
	}
}

// AdminOnly middleware allows ADMIN and SUPER_ADMIN roles
func AdminOnly() fiber.Handler {
	return RoleMiddleware(string(domain.RoleAdmin), string(domain.RoleSuperAdmin))
}

// SuperAdminOnly middleware allows only the SUPER_ADMIN role
func SuperAdminOnly() fiber.Handler {
	return RoleMiddleware(string(domain.RoleSuperAdmin))
}

// extractToken reads the access token from the cookie first, then the
// Authorization header
func extractToken(c *fiber.Ctx) string {
	if token := c.Cookies("access_token"); token != "" {
		return token
	}

	authHeader := c.Get("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}
