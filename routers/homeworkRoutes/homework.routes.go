package homeworkRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "studytask/controllers/homework"
	"studytask/middleware"
	validators "studytask/validators/homework"
)

// SetupHomeworkRoutes sets up teacher and student homework routes
func SetupHomeworkRoutes(app *fiber.App) {
	teacher := []fiber.Handler{middleware.JWTMiddleware, middleware.RequireRole("TEACHER", "ADMIN")}

	teacherGroup := app.Group("/teacher/homework", teacher...)
	teacherGroup.Post("/create", validators.CreateHomework(), controllers.CreateHomework)
	teacherGroup.Get("/:id/submissions", validators.HomeworkID(), controllers.HomeworkSubmissions)
	teacherGroup.Post("/submission/:id/grade", validators.GradeSubmission(), controllers.GradeSubmission)

	homeworkGroup := app.Group("/homework", middleware.JWTMiddleware)
	homeworkGroup.Get("/course/:id", validators.CourseID(), controllers.CourseHomework)
	homeworkGroup.Post("/:id/submit", validators.SubmitHomework(), controllers.SubmitHomework)
}
