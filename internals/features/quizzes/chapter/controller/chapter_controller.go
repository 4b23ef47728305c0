// internals/features/quizzes/chapter/controller/chapter_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	attemptModel "quizmaster_backend/internals/features/quizzes/attempt/model"
	chapterDTO "quizmaster_backend/internals/features/quizzes/chapter/dto"
	chapterModel "quizmaster_backend/internals/features/quizzes/chapter/model"
	questionModel "quizmaster_backend/internals/features/quizzes/question/model"
	quizModel "quizmaster_backend/internals/features/quizzes/quiz/model"
	subjectModel "quizmaster_backend/internals/features/quizzes/subject/model"
	helper "quizmaster_backend/internals/helpers"
)

type ChapterController struct {
	DB *gorm.DB
}

func (h *ChapterController) subjectExists(tx *gorm.DB, id uuid.UUID) error {
	var cnt int64
	if err := tx.Model(&subjectModel.SubjectModel{}).
		Where("subject_id = ?", id).
		Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek subject")
	}
	if cnt == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Subject tidak ditemukan")
	}
	return nil
}

// CREATE
// POST /admin/subjects/:id/chapters
func (h *ChapterController) CreateChapter(c *fiber.Ctx) error {
	subjectID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req chapterDTO.CreateChapterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Nama chapter wajib diisi")
	}

	// parent dicek eksplisit, jangan andalkan FK error dari store
	if err := h.subjectExists(h.DB, subjectID); err != nil {
		return err
	}

	m := req.ToModel(subjectID)
	if err := h.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat chapter")
	}

	return helper.JsonCreated(c, "Chapter berhasil dibuat", chapterDTO.FromChapterModel(m))
}

// LIST
// GET /admin/subjects/:id/chapters
func (h *ChapterController) ListChapters(c *fiber.Ctx) error {
	subjectID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	if err := h.subjectExists(h.DB, subjectID); err != nil {
		return err
	}

	var rows []chapterModel.ChapterModel
	if err := h.DB.
		Where("chapter_subject_id = ?", subjectID).
		Order("chapter_created_at ASC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "Daftar chapter", chapterDTO.FromChapterModels(rows))
}

// UPDATE (partial)
// PUT /admin/chapters/:id
func (h *ChapterController) UpdateChapter(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req chapterDTO.UpdateChapterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var m chapterModel.ChapterModel
		if err := tx.First(&m, "chapter_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Chapter tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
		}

		req.Apply(&m)
		if err := tx.Save(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui chapter")
		}

		c.Locals("updated_chapter", m)
		return nil
	}); err != nil {
		return err
	}

	m := c.Locals("updated_chapter").(chapterModel.ChapterModel)
	return helper.JsonUpdated(c, "Chapter berhasil diperbarui", chapterDTO.FromChapterModel(m))
}

// DELETE
// DELETE /admin/chapters/:id
// Cascade: quizzes → questions → attempts → scores.
func (h *ChapterController) DeleteChapter(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var m chapterModel.ChapterModel
		if err := tx.First(&m, "chapter_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Chapter tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
		}

		quizIDs := tx.Model(&quizModel.QuizModel{}).
			Select("quiz_id").
			Where("quiz_chapter_id = ?", id)
		attemptIDs := tx.Model(&attemptModel.QuizAttemptModel{}).
			Select("quiz_attempt_id").
			Where("quiz_attempt_quiz_id IN (?)", quizIDs)

		if err := tx.Where("score_quiz_attempt_id IN (?)", attemptIDs).
			Delete(&attemptModel.ScoreModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus scores")
		}
		if err := tx.Where("quiz_attempt_quiz_id IN (?)", quizIDs).
			Delete(&attemptModel.QuizAttemptModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus attempts")
		}
		if err := tx.Where("question_quiz_id IN (?)", quizIDs).
			Delete(&questionModel.QuestionModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus questions")
		}
		if err := tx.Delete(&quizModel.QuizModel{}, "quiz_chapter_id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus quizzes")
		}
		if err := tx.Delete(&chapterModel.ChapterModel{}, "chapter_id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus chapter")
		}

		c.Locals("deleted_chapter", m)
		return nil
	}); err != nil {
		return err
	}

	m := c.Locals("deleted_chapter").(chapterModel.ChapterModel)
	return helper.JsonDeleted(c, "Chapter berhasil dihapus", chapterDTO.FromChapterModel(m))
}
