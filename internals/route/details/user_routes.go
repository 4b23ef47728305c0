// internals/route/details/user_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attemptController "quizmaster_backend/internals/features/quizzes/attempt/controller"
	questionController "quizmaster_backend/internals/features/quizzes/question/controller"
	quizController "quizmaster_backend/internals/features/quizzes/quiz/controller"
	subjectController "quizmaster_backend/internals/features/quizzes/subject/controller"
	authMiddleware "quizmaster_backend/internals/middlewares/auth"
)

// Route sisi peserta: cukup JWT valid, tanpa cek role.
func UserRoutes(app *fiber.App, db *gorm.DB) {
	subject := &subjectController.SubjectUserController{DB: db}
	quiz := &quizController.QuizUserController{DB: db}
	question := &questionController.QuestionUserController{DB: db}
	attempt := attemptController.NewAttemptController(db)

	grp := app.Group("/user", authMiddleware.AuthMiddleware())

	grp.Get("/subjects", subject.ListSubjects)
	grp.Get("/quizzes/:subjectId", quiz.ListQuizzesBySubject)
	grp.Get("/quiz/:quizId", question.ListQuestions)

	grp.Post("/quiz/attempt", attempt.SubmitAttempt)
	grp.Get("/history", attempt.History)
}
