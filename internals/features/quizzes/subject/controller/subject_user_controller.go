// internals/features/quizzes/subject/controller/subject_user_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subjectDTO "quizmaster_backend/internals/features/quizzes/subject/dto"
	subjectModel "quizmaster_backend/internals/features/quizzes/subject/model"
	helper "quizmaster_backend/internals/helpers"
)

type SubjectUserController struct {
	DB *gorm.DB
}

// LIST (sisi user): hanya id + name
// GET /user/subjects
func (h *SubjectUserController) ListSubjects(c *fiber.Ctx) error {
	var rows []subjectModel.SubjectModel
	if err := h.DB.Order("subject_name ASC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "Daftar subject", subjectDTO.ToSubjectListItems(rows))
}
