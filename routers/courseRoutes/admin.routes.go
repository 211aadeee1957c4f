package courseRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "studytask/controllers/course"
	"studytask/middleware"
	validators "studytask/validators/course"
)

// SetupAdminCourseRoutes sets up all admin course management routes
func SetupAdminCourseRoutes(app *fiber.App) {
	admin := []fiber.Handler{middleware.JWTMiddleware, middleware.RequireRole("ADMIN")}

	// Course CRUD
	courseGroup := app.Group("/admin/course", admin...)
	courseGroup.Post("/create", validators.CreateCourse(), controllers.AdminCreateCourse)
	courseGroup.Put("/:id", validators.UpdateCourse(), controllers.AdminUpdateCourse)
	courseGroup.Delete("/:id", validators.CourseID(), controllers.AdminDeleteCourse)
	courseGroup.Get("/list", controllers.AdminGetAllCourses)
	courseGroup.Post("/:course_id/module/:module_id", validators.CourseModulePair(), controllers.AdminAttachModule)
	courseGroup.Delete("/:course_id/module/:module_id", validators.CourseModulePair(), controllers.AdminDetachModule)

	// Module management
	moduleGroup := app.Group("/admin/module", admin...)
	moduleGroup.Post("/create", validators.CreateModule(), controllers.AdminCreateModule)
	moduleGroup.Put("/:id", validators.UpdateModule(), controllers.AdminUpdateModule)
	moduleGroup.Delete("/:id", validators.ModuleID(), controllers.AdminDeleteModule)
	moduleGroup.Get("/list", controllers.AdminListModules)
	moduleGroup.Post("/:module_id/lesson/:lesson_id", validators.ModuleLessonPair(), controllers.AdminAttachLesson)
	moduleGroup.Delete("/:module_id/lesson/:lesson_id", validators.ModuleLessonPair(), controllers.AdminDetachLesson)
	moduleGroup.Post("/:module_id/quiz/:quiz_id", validators.ModuleQuizPair(), controllers.AdminAttachQuiz)
	moduleGroup.Delete("/:module_id/quiz/:quiz_id", validators.ModuleQuizPair(), controllers.AdminDetachQuiz)

	// Lesson management
	lessonGroup := app.Group("/admin/lesson", admin...)
	lessonGroup.Post("/create", validators.CreateLesson(), controllers.AdminCreateLesson)
	lessonGroup.Put("/:id", validators.UpdateLesson(), controllers.AdminUpdateLesson)
	lessonGroup.Delete("/:id", validators.LessonID(), controllers.AdminDeleteLesson)
	lessonGroup.Get("/list", controllers.AdminListLessons)

	// Quiz management
	quizGroup := app.Group("/admin/quiz", admin...)
	quizGroup.Post("/create", validators.CreateQuiz(), controllers.AdminCreateQuiz)
	quizGroup.Put("/:id", validators.UpdateQuiz(), controllers.AdminUpdateQuiz)
	quizGroup.Delete("/question/:id", validators.QuestionID(), controllers.AdminDeleteQuestion)
	quizGroup.Delete("/:id", validators.QuizID(), controllers.AdminDeleteQuiz)
	quizGroup.Get("/list", controllers.AdminListQuizzes)
	quizGroup.Post("/:id/question", validators.AddQuestion(), controllers.AdminAddQuestion)
	quizGroup.Post("/:quiz_id/assign/:student_id", validators.AssignQuiz(), controllers.AdminAssignQuiz)
	quizGroup.Delete("/:quiz_id/assign/:student_id", validators.AssignQuiz(), controllers.AdminUnassignQuiz)
}
