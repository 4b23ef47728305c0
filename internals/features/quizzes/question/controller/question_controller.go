// internals/features/quizzes/question/controller/question_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	questionDTO "quizmaster_backend/internals/features/quizzes/question/dto"
	questionModel "quizmaster_backend/internals/features/quizzes/question/model"
	quizModel "quizmaster_backend/internals/features/quizzes/quiz/model"
	helper "quizmaster_backend/internals/helpers"
)

type QuestionController struct {
	DB *gorm.DB
}

func (h *QuestionController) quizExists(tx *gorm.DB, id uuid.UUID) error {
	var cnt int64
	if err := tx.Model(&quizModel.QuizModel{}).
		Where("quiz_id = ?", id).
		Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek quiz")
	}
	if cnt == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Quiz tidak ditemukan")
	}
	return nil
}

// CREATE
// POST /admin/quizzes/:id/questions
func (h *QuestionController) CreateQuestion(c *fiber.Ctx) error {
	quizID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req questionDTO.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "question_text, option1, option2, dan correct_option (1-4) wajib diisi")
	}

	if err := h.quizExists(h.DB, quizID); err != nil {
		return err
	}

	m := req.ToModel(quizID)
	if err := m.ValidateShape(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := h.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat question")
	}

	return helper.JsonCreated(c, "Question berhasil dibuat", questionDTO.FromQuestionModel(m))
}

// LIST (sisi admin, kunci jawaban ikut)
// GET /admin/quizzes/:id/questions
func (h *QuestionController) ListQuestions(c *fiber.Ctx) error {
	quizID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	if err := h.quizExists(h.DB, quizID); err != nil {
		return err
	}

	var rows []questionModel.QuestionModel
	if err := h.DB.
		Where("question_quiz_id = ?", quizID).
		Order("question_created_at ASC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "Daftar question", questionDTO.FromQuestionModels(rows))
}

// UPDATE (partial)
// PUT /admin/questions/:id
func (h *QuestionController) UpdateQuestion(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req questionDTO.UpdateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var m questionModel.QuestionModel
		if err := tx.First(&m, "question_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Question tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
		}

		req.Apply(&m)
		// validasi ulang setelah merge, correct_option harus menunjuk slot terisi
		if err := m.ValidateShape(); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := tx.Save(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui question")
		}

		c.Locals("updated_question", m)
		return nil
	}); err != nil {
		return err
	}

	m := c.Locals("updated_question").(questionModel.QuestionModel)
	return helper.JsonUpdated(c, "Question berhasil diperbarui", questionDTO.FromQuestionModel(m))
}

// DELETE
// DELETE /admin/questions/:id
// Attempt dan score yang sudah ada tidak disentuh.
func (h *QuestionController) DeleteQuestion(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var m questionModel.QuestionModel
		if err := tx.First(&m, "question_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Question tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
		}

		if err := tx.Delete(&questionModel.QuestionModel{}, "question_id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus question")
		}

		c.Locals("deleted_question", m)
		return nil
	}); err != nil {
		return err
	}

	m := c.Locals("deleted_question").(questionModel.QuestionModel)
	return helper.JsonDeleted(c, "Question berhasil dihapus", questionDTO.FromQuestionModel(m))
}
