package studentRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "studytask/controllers/student"
	"studytask/middleware"
	validators "studytask/validators/student"
)

// SetupStudentRoutes sets up the student profile routes
func SetupStudentRoutes(app *fiber.App) {
	studentGroup := app.Group("/student", middleware.JWTMiddleware)

	studentGroup.Get("/profile", controllers.MyProfile)
	studentGroup.Put("/profile", validators.UpdateProfile(), controllers.UpdateProfile)
	studentGroup.Post("/profile/edit-request", controllers.RequestProfileEdit)
	studentGroup.Post("/profile/avatar", controllers.UploadAvatar)
}
