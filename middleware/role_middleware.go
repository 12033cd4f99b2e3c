package middleware

import (
	"github.com/gofiber/fiber/v2"

	authutils "hr-crm-backend/lib/utils/auth-utils"
	"hr-crm-backend/models"
	apimodels "hr-crm-backend/models/api"
)

// RequireRole rejects callers whose token role is not in the allowed set.
// Ownership checks stay in the domain handlers, which receive the full
// AuthContext.
func RequireRole(roles ...models.UserRole) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authCtx := authutils.GetAuthContext(ctx)
		if !authCtx.Is(roles...) {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation is not available for your role"))
		}
		return ctx.Next()
	}
}
