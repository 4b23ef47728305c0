// internals/features/quizzes/subject/controller/subject_controller.go
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
	quizModel "quizmaster_backend/internals/features/quizzes/quiz/model"
	subjectDTO "quizmaster_backend/internals/features/quizzes/subject/dto"
	subjectModel "quizmaster_backend/internals/features/quizzes/subject/model"
	helper "quizmaster_backend/internals/helpers"
)

type SubjectController struct {
	DB *gorm.DB
}

// CREATE
// POST /admin/subjects
func (h *SubjectController) CreateSubject(c *fiber.Ctx) error {
	var req subjectDTO.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()

	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Nama subject wajib diisi")
	}

	m := req.ToModel()
	if err := h.DB.Create(&m).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate") || strings.Contains(low, "unique") {
			return fiber.NewError(fiber.StatusBadRequest, "Nama subject sudah digunakan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat subject")
	}

	return helper.JsonCreated(c, "Subject berhasil dibuat", subjectDTO.FromSubjectModel(m))
}

// LIST
// GET /admin/subjects
func (h *SubjectController) ListSubjects(c *fiber.Ctx) error {
	var rows []subjectModel.SubjectModel
	if err := h.DB.Order("subject_created_at ASC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "Daftar subject", subjectDTO.FromSubjectModels(rows))
}

// GET BY ID
// GET /admin/subjects/:id
func (h *SubjectController) GetSubject(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var m subjectModel.SubjectModel
	if err := h.DB.First(&m, "subject_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Subject tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonOK(c, "Detail subject ditemukan", subjectDTO.FromSubjectModel(m))
}

// UPDATE (partial)
// PUT /admin/subjects/:id
func (h *SubjectController) UpdateSubject(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req subjectDTO.UpdateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var m subjectModel.SubjectModel
		if err := tx.First(&m, "subject_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Subject tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
		}

		req.Apply(&m)

		if err := tx.Save(&m).Error; err != nil {
			low := strings.ToLower(err.Error())
			if strings.Contains(low, "duplicate") || strings.Contains(low, "unique") {
				return fiber.NewError(fiber.StatusBadRequest, "Nama subject sudah digunakan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui subject")
		}

		c.Locals("updated_subject", m)
		return nil
	}); err != nil {
		return err
	}

	m := c.Locals("updated_subject").(subjectModel.SubjectModel)
	return helper.JsonUpdated(c, "Subject berhasil diperbarui", subjectDTO.FromSubjectModel(m))
}

// DELETE
// DELETE /admin/subjects/:id
// Cascade eksplisit: chapters → quizzes → questions → attempts → scores,
// semua dalam satu transaksi.
func (h *SubjectController) DeleteSubject(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var m subjectModel.SubjectModel
		if err := tx.First(&m, "subject_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Subject tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data")
		}

		chapterIDs := tx.Model(&chapterModel.ChapterModel{}).
			Select("chapter_id").
			Where("chapter_subject_id = ?", id)
		quizIDs := tx.Model(&quizModel.QuizModel{}).
			Select("quiz_id").
			Where("quiz_chapter_id IN (?)", chapterIDs)
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
		if err := tx.Where("quiz_chapter_id IN (?)", chapterIDs).
			Delete(&quizModel.QuizModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus quizzes")
		}
		if err := tx.Delete(&chapterModel.ChapterModel{}, "chapter_subject_id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus chapters")
		}
		if err := tx.Delete(&subjectModel.SubjectModel{}, "subject_id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus subject")
		}

		c.Locals("deleted_subject", m)
		return nil
	}); err != nil {
		return err
	}

	m := c.Locals("deleted_subject").(subjectModel.SubjectModel)
	return helper.JsonDeleted(c, "Subject berhasil dihapus", subjectDTO.FromSubjectModel(m))
}
