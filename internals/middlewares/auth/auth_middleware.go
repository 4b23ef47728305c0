// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	tokenService "quizmaster_backend/internals/features/users/auth/service"
)

func extractBearerToken(c *fiber.Ctx) (string, error) {
	h := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if h == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Missing token")
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid Authorization header")
	}
	return strings.TrimSpace(parts[1]), nil
}

// AuthMiddleware memverifikasi access token dan menyimpan identitas ke Locals.
// Gagal verifikasi = 401, handler di belakangnya tidak pernah dipanggil.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return err
		}

		userID, role, err := tokenService.VerifyToken(tokenString)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or expired token")
		}

		c.Locals("user_id", userID.String())
		c.Locals("userRole", role)
		return c.Next()
	}
}
