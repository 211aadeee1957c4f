package adminRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "studytask/controllers/admin"
	"studytask/middleware"
	validators "studytask/validators/admin"
)

// SetupAdminRoutes sets up request review, moderation and dashboard
// routes
func SetupAdminRoutes(app *fiber.App) {
	admin := []fiber.Handler{middleware.JWTMiddleware, middleware.RequireRole("ADMIN")}

	requestGroup := app.Group("/admin/request", admin...)
	requestGroup.Get("/course", controllers.ListCourseRequests)
	requestGroup.Post("/course/:id/approve", validators.RequestID(), controllers.ApproveCourseRequest)
	requestGroup.Post("/course/:id/reject", validators.RejectRequest(), controllers.RejectCourseRequest)
	requestGroup.Get("/profile-edit", controllers.ListProfileEditRequests)
	requestGroup.Post("/profile-edit/:id/review", validators.ReviewEditRequest(), controllers.ReviewProfileEditRequest)

	studentGroup := app.Group("/admin/student", admin...)
	studentGroup.Get("/list", controllers.ListStudents)
	studentGroup.Post("/:student_id/block-module/:module_id", validators.StudentModulePair(), controllers.BlockModule)
	studentGroup.Delete("/:student_id/block-module/:module_id", validators.StudentModulePair(), controllers.UnblockModule)

	dashGroup := app.Group("/admin/dashboard", admin...)
	dashGroup.Get("/stats", controllers.Dashboard)
}
