package homeworkValidator

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"studytask/middleware"
)

func paramID(c *fiber.Ctx, name string) (int, bool) {
	raw := strings.TrimSpace(c.Params(name))
	if raw == "" {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// CreateHomework validates a new homework assignment
func CreateHomework() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID    uint   `json:"course_id"`
			Title       string `json:"title"`
			Description string `json:"description"`
			DueDate     string `json:"due_date"`
			Stars       int    `json:"stars"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)

		if reqData.CourseID == 0 {
			errors["course_id"] = "Course ID is required!"
		}

		if reqData.Title == "" {
			errors["title"] = "Homework title is required!"
		} else if len(reqData.Title) < 3 {
			errors["title"] = "Homework title must be at least 3 characters long!"
		}

		if reqData.Stars < 0 {
			errors["stars"] = "Stars cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedHomework", reqData)
		return c.Next()
	}
}

// CourseID validates requests addressed to a course's homework list
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := paramID(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// SubmitHomework validates a student submission
func SubmitHomework() fiber.Handler {
	return func(c *fiber.Ctx) error {
		homeworkID, ok := paramID(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Homework ID!", nil)
		}

		reqData := new(struct {
			Text string `json:"text"`
		})

		// Submissions may arrive as multipart when a file is attached.
		if err := c.BodyParser(reqData); err != nil {
			reqData.Text = c.FormValue("text")
		}
		if reqData.Text == "" {
			reqData.Text = c.FormValue("text")
		}

		c.Locals("homeworkID", homeworkID)
		c.Locals("validatedSubmission", reqData)
		return c.Next()
	}
}

// HomeworkID validates requests addressed to a single homework
func HomeworkID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		homeworkID, ok := paramID(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Homework ID!", nil)
		}

		c.Locals("homeworkID", homeworkID)
		return c.Next()
	}
}

// GradeSubmission validates a grading request
func GradeSubmission() fiber.Handler {
	return func(c *fiber.Ctx) error {
		submissionID, ok := paramID(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Submission ID!", nil)
		}

		reqData := new(struct {
			Grade int `json:"grade"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Grade < 0 || reqData.Grade > 100 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"grade": "Grade must be between 0 and 100!",
			})
		}

		c.Locals("submissionID", submissionID)
		c.Locals("validatedGrade", reqData)
		return c.Next()
	}
}
