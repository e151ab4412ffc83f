package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/aidrp-service/internal/domain"
	apperrors "github.com/spec-kit/aidrp-service/pkg/util/errorutil"
)

// RequireRole ensures the authenticated principal satisfies the required
// role. Only reachable after AuthMiddleware, so a missing principal means
// the route was wired without it.
func RequireRole(required domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.User == nil {
			return apperrors.NewUnauthorized("authentication required")
		}
		if !principal.User.Role.Satisfies(required) {
			return apperrors.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}

// RequireAdmin gates admin-only routes.
func RequireAdmin() fiber.Handler {
	return RequireRole(domain.RoleAdmin)
}
