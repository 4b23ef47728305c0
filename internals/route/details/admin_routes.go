// internals/route/details/admin_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashboardController "quizmaster_backend/internals/features/dashboard/controller"
	chapterController "quizmaster_backend/internals/features/quizzes/chapter/controller"
	questionController "quizmaster_backend/internals/features/quizzes/question/controller"
	quizController "quizmaster_backend/internals/features/quizzes/quiz/controller"
	subjectController "quizmaster_backend/internals/features/quizzes/subject/controller"
	userController "quizmaster_backend/internals/features/users/user/controller"
	authMiddleware "quizmaster_backend/internals/middlewares/auth"
)

// Semua route di sini butuh JWT valid + role admin (dicek ulang ke DB).
func AdminRoutes(app *fiber.App, db *gorm.DB) {
	dashboard := &dashboardController.DashboardController{DB: db}
	subject := &subjectController.SubjectController{DB: db}
	chapter := &chapterController.ChapterController{DB: db}
	quiz := &quizController.QuizController{DB: db}
	question := &questionController.QuestionController{DB: db}
	user := &userController.UserAdminController{DB: db}

	grp := app.Group("/admin",
		authMiddleware.AuthMiddleware(),
		authMiddleware.IsAdmin(db),
	)

	grp.Get("/dashboard", dashboard.Summary)

	grp.Post("/subjects", subject.CreateSubject)
	grp.Get("/subjects", subject.ListSubjects)
	grp.Get("/subjects/:id", subject.GetSubject)
	grp.Put("/subjects/:id", subject.UpdateSubject)
	grp.Delete("/subjects/:id", subject.DeleteSubject)

	grp.Post("/subjects/:id/chapters", chapter.CreateChapter)
	grp.Get("/subjects/:id/chapters", chapter.ListChapters)
	grp.Put("/chapters/:id", chapter.UpdateChapter)
	grp.Delete("/chapters/:id", chapter.DeleteChapter)

	grp.Post("/chapters/:id/quizzes", quiz.CreateQuiz)
	grp.Get("/chapters/:id/quizzes", quiz.ListQuizzes)
	grp.Put("/quizzes/:id", quiz.UpdateQuiz)
	grp.Delete("/quizzes/:id", quiz.DeleteQuiz)

	grp.Post("/quizzes/:id/questions", question.CreateQuestion)
	grp.Get("/quizzes/:id/questions", question.ListQuestions)
	grp.Put("/questions/:id", question.UpdateQuestion)
	grp.Delete("/questions/:id", question.DeleteQuestion)

	grp.Get("/users", user.ListUsers)
	grp.Delete("/users/:id", user.DeleteUser)
}
