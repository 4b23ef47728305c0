// internals/features/dashboard/controller/dashboard_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attemptModel "quizmaster_backend/internals/features/quizzes/attempt/model"
	chapterModel "quizmaster_backend/internals/features/quizzes/chapter/model"
	questionModel "quizmaster_backend/internals/features/quizzes/question/model"
	quizModel "quizmaster_backend/internals/features/quizzes/quiz/model"
	subjectModel "quizmaster_backend/internals/features/quizzes/subject/model"
	userModel "quizmaster_backend/internals/features/users/user/model"
	helper "quizmaster_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

type dashboardSummary struct {
	TotalUsers     int64 `json:"total_users"`
	TotalSubjects  int64 `json:"total_subjects"`
	TotalChapters  int64 `json:"total_chapters"`
	TotalQuizzes   int64 `json:"total_quizzes"`
	TotalQuestions int64 `json:"total_questions"`
	TotalAttempts  int64 `json:"total_attempts"`
}

// Ringkasan angka untuk landing admin
// GET /admin/dashboard
func (h *DashboardController) Summary(c *fiber.Ctx) error {
	var out dashboardSummary

	counts := []struct {
		model any
		dst   *int64
	}{
		{&userModel.UserModel{}, &out.TotalUsers},
		{&subjectModel.SubjectModel{}, &out.TotalSubjects},
		{&chapterModel.ChapterModel{}, &out.TotalChapters},
		{&quizModel.QuizModel{}, &out.TotalQuizzes},
		{&questionModel.QuestionModel{}, &out.TotalQuestions},
		{&attemptModel.QuizAttemptModel{}, &out.TotalAttempts},
	}
	for _, row := range counts {
		if err := h.DB.Model(row.model).Count(row.dst).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil ringkasan")
		}
	}

	return helper.JsonOK(c, "Ringkasan dashboard", out)
}
