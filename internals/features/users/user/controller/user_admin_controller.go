// internals/features/users/user/controller/user_admin_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	attemptModel "quizmaster_backend/internals/features/quizzes/attempt/model"
	userDTO "quizmaster_backend/internals/features/users/user/dto"
	userModel "quizmaster_backend/internals/features/users/user/model"
	helper "quizmaster_backend/internals/helpers"
)

type UserAdminController struct {
	DB *gorm.DB
}

// LIST
// GET /admin/users
func (h *UserAdminController) ListUsers(c *fiber.Ctx) error {
	var rows []userModel.UserModel
	if err := h.DB.Order("user_created_at ASC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "Daftar user", userDTO.FromUserModels(rows))
}

// DELETE
// DELETE /admin/users/:id
// Ikut menghapus attempts + scores milik user tersebut (tanpa baris yatim).
func (h *UserAdminController) DeleteUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var u userModel.UserModel
		if err := tx.First(&u, "user_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
		}

		// minimal satu admin harus tetap ada
		if u.IsAdmin() {
			var admins int64
			if err := tx.Model(&userModel.UserModel{}).
				Where("user_role = ?", userModel.RoleAdmin).
				Count(&admins).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek admin")
			}
			if admins <= 1 {
				return fiber.NewError(fiber.StatusBadRequest, "Admin terakhir tidak boleh dihapus")
			}
		}

		if err := tx.Where(
			"score_quiz_attempt_id IN (?)",
			tx.Model(&attemptModel.QuizAttemptModel{}).
				Select("quiz_attempt_id").
				Where("quiz_attempt_user_id = ?", id),
		).Delete(&attemptModel.ScoreModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus scores")
		}
		if err := tx.Delete(&attemptModel.QuizAttemptModel{}, "quiz_attempt_user_id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus attempts")
		}
		if err := tx.Delete(&userModel.UserModel{}, "user_id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus user")
		}

		c.Locals("deleted_user", u)
		return nil
	}); err != nil {
		return err
	}

	u := c.Locals("deleted_user").(userModel.UserModel)
	return helper.JsonDeleted(c, "User berhasil dihapus", userDTO.FromUserModel(u))
}
