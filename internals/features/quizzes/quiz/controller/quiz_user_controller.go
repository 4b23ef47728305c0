// internals/features/quizzes/quiz/controller/quiz_user_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	quizDTO "quizmaster_backend/internals/features/quizzes/quiz/dto"
	quizModel "quizmaster_backend/internals/features/quizzes/quiz/model"
	subjectModel "quizmaster_backend/internals/features/quizzes/subject/model"
	helper "quizmaster_backend/internals/helpers"
)

type QuizUserController struct {
	DB *gorm.DB
}

// LIST per subject (sisi user): semua quiz di bawah chapter milik subject
// GET /user/quizzes/:subjectId
func (h *QuizUserController) ListQuizzesBySubject(c *fiber.Ctx) error {
	subjectID, err := uuid.Parse(strings.TrimSpace(c.Params("subjectId")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var cnt int64
	if err := h.DB.Model(&subjectModel.SubjectModel{}).
		Where("subject_id = ?", subjectID).
		Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek subject")
	}
	if cnt == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Subject tidak ditemukan")
	}

	var rows []quizModel.QuizModel
	if err := h.DB.
		Joins("JOIN chapters ON chapters.chapter_id = quizzes.quiz_chapter_id").
		Where("chapters.chapter_subject_id = ?", subjectID).
		Order("quizzes.quiz_date ASC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonOK(c, "Daftar quiz", quizDTO.ToQuizListItems(rows))
}
