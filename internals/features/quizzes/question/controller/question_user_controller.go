// internals/features/quizzes/question/controller/question_user_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	questionDTO "quizmaster_backend/internals/features/quizzes/question/dto"
	questionModel "quizmaster_backend/internals/features/quizzes/question/model"
	quizModel "quizmaster_backend/internals/features/quizzes/quiz/model"
	helper "quizmaster_backend/internals/helpers"
)

type QuestionUserController struct {
	DB *gorm.DB
}

// LIST untuk mengerjakan quiz: kunci jawaban tidak pernah dikirim
// GET /user/quiz/:quizId
func (h *QuestionUserController) ListQuestions(c *fiber.Ctx) error {
	quizID, err := uuid.Parse(strings.TrimSpace(c.Params("quizId")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var cnt int64
	if err := h.DB.Model(&quizModel.QuizModel{}).
		Where("quiz_id = ?", quizID).
		Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek quiz")
	}
	if cnt == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Quiz tidak ditemukan")
	}

	var rows []questionModel.QuestionModel
	if err := h.DB.
		Where("question_quiz_id = ?", quizID).
		Order("question_created_at ASC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonOK(c, "Daftar soal", questionDTO.ToQuestionUserItems(rows))
}
