package courseValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"studytask/middleware"
)

// CreateLesson validates lesson creation. A lesson carries exactly one
// content source: an uploaded video file, an uploaded PDF, or an
// external video URL.
func CreateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title    string `json:"title"`
			VideoURL string `json:"video_url"`
		})

		// Lessons arrive as multipart when a file is attached; form
		// values cover both that and the urlencoded case.
		if err := c.BodyParser(reqData); err != nil {
			reqData.Title = c.FormValue("title")
			reqData.VideoURL = c.FormValue("video_url")
		}
		if reqData.Title == "" {
			reqData.Title = c.FormValue("title")
		}
		if reqData.VideoURL == "" {
			reqData.VideoURL = c.FormValue("video_url")
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.VideoURL = strings.TrimSpace(reqData.VideoURL)

		if reqData.Title == "" {
			errors["title"] = "Lesson title is required!"
		} else if len(reqData.Title) < 3 {
			errors["title"] = "Lesson title must be at least 3 characters long!"
		}

		sources := 0
		if _, err := c.FormFile("video"); err == nil {
			sources++
		}
		if _, err := c.FormFile("pdf"); err == nil {
			sources++
		}
		if reqData.VideoURL != "" {
			sources++
		}
		if sources == 0 {
			errors["content"] = "A video file, a PDF file or a video URL is required!"
		} else if sources > 1 {
			errors["content"] = "Provide exactly one content source!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}

// UpdateLesson validates lesson metadata update
func UpdateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		lessonID, ok := paramID(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Lesson ID!", nil)
		}

		reqData := new(struct {
			Title    string `json:"title"`
			VideoURL string `json:"video_url"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)

		if reqData.Title != "" && len(reqData.Title) < 3 {
			errors["title"] = "Lesson title must be at least 3 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("lessonID", lessonID)
		c.Locals("validatedLessonUpdate", reqData)
		return c.Next()
	}
}

// LessonID validates requests addressed to a single lesson
func LessonID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		lessonID, ok := paramID(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Lesson ID!", nil)
		}

		c.Locals("lessonID", lessonID)
		return c.Next()
	}
}
