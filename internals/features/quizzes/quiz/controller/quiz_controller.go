// internals/features/quizzes/quiz/controller/quiz_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	attemptModel "quizmaster_backend/internals/features/quizzes/attempt/model"
	chapterModel "quizmaster_backend/internals/features/quizzes/chapter/model"
	questionModel "quizmaster_backend/internals/features/quizzes/question/model"
	quizDTO "quizmaster_backend/internals/features/quizzes/quiz/dto"
	quizModel "quizmaster_backend/internals/features/quizzes/quiz/model"
	helper "quizmaster_backend/internals/helpers"
)

type QuizController struct {
	DB *gorm.DB
}

func (h *QuizController) chapterExists(tx *gorm.DB, id uuid.UUID) error {
	var cnt int64
	if err := tx.Model(&chapterModel.ChapterModel{}).
		Where("chapter_id = ?", id).
		Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek chapter")
	}
	if cnt == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Chapter tidak ditemukan")
	}
	return nil
}

// CREATE
// POST /admin/chapters/:id/quizzes
func (h *QuizController) CreateQuiz(c *fiber.Ctx) error {
	chapterID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req quizDTO.CreateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "duration_minutes wajib diisi dan harus > 0")
	}

	if err := h.chapterExists(h.DB, chapterID); err != nil {
		return err
	}

	m, err := req.ToModel(chapterID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Format date harus yyyy-mm-dd")
	}
	if err := h.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat quiz")
	}

	return helper.JsonCreated(c, "Quiz berhasil dibuat", quizDTO.FromQuizModel(m))
}

// LIST
// GET /admin/chapters/:id/quizzes
func (h *QuizController) ListQuizzes(c *fiber.Ctx) error {
	chapterID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	if err := h.chapterExists(h.DB, chapterID); err != nil {
		return err
	}

	var rows []quizModel.QuizModel
	if err := h.DB.
		Where("quiz_chapter_id = ?", chapterID).
		Order("quiz_created_at ASC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "Daftar quiz", quizDTO.FromQuizModels(rows))
}

// UPDATE (partial)
// PUT /admin/quizzes/:id
func (h *QuizController) UpdateQuiz(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req quizDTO.UpdateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "duration_minutes harus > 0")
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var m quizModel.QuizModel
		if err := tx.First(&m, "quiz_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Quiz tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
		}

		if err := req.Apply(&m); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Format date harus yyyy-mm-dd")
		}
		if err := tx.Save(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui quiz")
		}

		c.Locals("updated_quiz", m)
		return nil
	}); err != nil {
		return err
	}

	m := c.Locals("updated_quiz").(quizModel.QuizModel)
	return helper.JsonUpdated(c, "Quiz berhasil diperbarui", quizDTO.FromQuizModel(m))
}

// DELETE
// DELETE /admin/quizzes/:id
// Cascade: questions → attempts → scores.
func (h *QuizController) DeleteQuiz(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var m quizModel.QuizModel
		if err := tx.First(&m, "quiz_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Quiz tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
		}

		attemptIDs := tx.Model(&attemptModel.QuizAttemptModel{}).
			Select("quiz_attempt_id").
			Where("quiz_attempt_quiz_id = ?", id)

		if err := tx.Where("score_quiz_attempt_id IN (?)", attemptIDs).
			Delete(&attemptModel.ScoreModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus scores")
		}
		if err := tx.Delete(&attemptModel.QuizAttemptModel{}, "quiz_attempt_quiz_id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus attempts")
		}
		if err := tx.Delete(&questionModel.QuestionModel{}, "question_quiz_id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus questions")
		}
		if err := tx.Delete(&quizModel.QuizModel{}, "quiz_id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus quiz")
		}

		c.Locals("deleted_quiz", m)
		return nil
	}); err != nil {
		return err
	}

	m := c.Locals("deleted_quiz").(quizModel.QuizModel)
	return helper.JsonDeleted(c, "Quiz berhasil dihapus", quizDTO.FromQuizModel(m))
}
