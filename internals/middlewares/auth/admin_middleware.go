// internals/middlewares/auth/admin_middleware.go
package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "quizmaster_backend/internals/features/users/user/model"
)

// IsAdmin cek role=admin dengan membaca ulang user dari DB, bukan dari token.
// Admin yang didemote/dihapus kehilangan privilege seketika walau tokennya
// masih hidup.
func IsAdmin(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userIDStr, ok := c.Locals("user_id").(string)
		if !ok || userIDStr == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Missing user identity")
		}
		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid user id")
		}

		var u userModel.UserModel
		if err := db.First(&u, "user_id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - User not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}
		if !u.IsAdmin() {
			return fiber.NewError(fiber.StatusForbidden, "Admin access required")
		}

		c.Locals("userRole", u.UserRole)
		return c.Next()
	}
}
