// internals/features/quizzes/attempt/controller/attempt_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	attemptDTO "quizmaster_backend/internals/features/quizzes/attempt/dto"
	attemptService "quizmaster_backend/internals/features/quizzes/attempt/service"
	helper "quizmaster_backend/internals/helpers"
)

type AttemptController struct {
	DB      *gorm.DB
	Grading *attemptService.GradingService
}

func NewAttemptController(db *gorm.DB) *AttemptController {
	return &AttemptController{
		DB:      db,
		Grading: attemptService.NewGradingService(db),
	}
}

func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	return id, nil
}

// SUBMIT + auto grading
// POST /user/quiz/attempt
func (h *AttemptController) SubmitAttempt(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req attemptDTO.SubmitAttemptRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "quiz_id dan answers wajib diisi")
	}

	quizID, err := uuid.Parse(strings.TrimSpace(req.QuizID))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "quiz_id tidak valid")
	}

	result, err := h.Grading.SubmitAttempt(userID, quizID, req.Answers)
	if err != nil {
		return err
	}

	return helper.JsonCreated(c, "Attempt berhasil dinilai", attemptDTO.AttemptResultResponse{
		AttemptID:      result.AttemptID,
		QuizID:         result.QuizID,
		Score:          result.Score,
		CorrectCount:   result.CorrectCount,
		TotalSubmitted: result.TotalSubmitted,
	})
}

// HISTORY semua attempt milik user, score "N/A" kalau belum dinilai
// GET /user/history
func (h *AttemptController) History(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var rows []attemptDTO.HistoryRow
	if err := h.DB.Table("quiz_attempts").
		Select("quiz_attempts.quiz_attempt_id, quiz_attempts.quiz_attempt_quiz_id, quiz_attempts.quiz_attempt_start_time, scores.score_total_score").
		Joins("LEFT JOIN scores ON scores.score_quiz_attempt_id = quiz_attempts.quiz_attempt_id").
		Where("quiz_attempts.quiz_attempt_user_id = ?", userID).
		Order("quiz_attempts.quiz_attempt_start_time DESC").
		Scan(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil riwayat")
	}

	return helper.JsonOK(c, "Riwayat attempt", attemptDTO.ToHistoryItems(rows))
}
