// internals/route/details/auth_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "quizmaster_backend/internals/features/users/auth/controller"
	"quizmaster_backend/internals/middlewares"
	authMiddleware "quizmaster_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := &authController.AuthController{DB: db}

	grp := app.Group("/auth")
	grp.Post("/register", ctrl.Register)
	grp.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	grp.Get("/me", authMiddleware.AuthMiddleware(), ctrl.Me)
}
