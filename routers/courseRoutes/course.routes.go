package courseRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "studytask/controllers/course"
	"studytask/middleware"
	validators "studytask/validators/course"
)

// SetupCourseRoutes sets up the student-facing course, progress and
// quiz routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course", middleware.JWTMiddleware)

	courseGroup.Get("/my", controllers.MyCourses)
	courseGroup.Post("/request", validators.RequestCourse(), controllers.RequestCourseByCode)
	courseGroup.Get("/requests", controllers.MyCourseRequests)
	courseGroup.Get("/:id", validators.CourseID(), controllers.CourseDetail)
	courseGroup.Get("/:id/progress", validators.CourseID(), controllers.MyProgress)

	// Progress mutations
	courseGroup.Post("/:course_id/lesson/:lesson_id/complete", validators.CourseLessonPair(), controllers.CompleteLesson)
	courseGroup.Post("/:course_id/module/:module_id/complete", validators.CourseModulePair(), controllers.CompleteModule)

	// Quiz taking
	quizGroup := app.Group("/quiz", middleware.JWTMiddleware)
	quizGroup.Get("/:id", validators.QuizID(), controllers.GetQuiz)
	quizGroup.Post("/:id/submit", validators.SubmitQuiz(), controllers.SubmitQuiz)
	quizGroup.Get("/:id/attempts", validators.QuizID(), controllers.MyAttempts)
}
