package middleware

import (
	authutils "jobboard-backend/lib/utils/auth-utils"
	"jobboard-backend/models"
	apimodels "jobboard-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

// RecruiterRequired expects AuthorizationRequired to run first
func RecruiterRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if !GetUserRole(ctx).IsRecruiter() {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("Forbidden"))
		}
		return ctx.Next()
	}
}

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, ok := claims["sub"].(string); ok {
		return sub
	}
	return ""
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	claims := authutils.GetClaims(ctx)
	if role, exist := claims["role"]; exist {
		if stringRole, ok := role.(string); ok && stringRole != "" {
			return models.UserRole(stringRole)
		}
	}
	return ""
}
