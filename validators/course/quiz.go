package courseValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"studytask/middleware"
)

// CreateQuiz validates quiz creation request
func CreateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title string `json:"title"`
			Stars int    `json:"stars"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)

		if reqData.Title == "" {
			errors["title"] = "Quiz title is required!"
		} else if len(reqData.Title) < 3 {
			errors["title"] = "Quiz title must be at least 3 characters long!"
		}

		if reqData.Stars < 0 {
			errors["stars"] = "Stars cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}

// UpdateQuiz validates quiz update request
func UpdateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		quizID, ok := paramID(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Quiz ID!", nil)
		}

		reqData := new(struct {
			Title    string `json:"title"`
			Stars    *int   `json:"stars"`
			IsActive *bool  `json:"is_active"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)

		if reqData.Title != "" && len(reqData.Title) < 3 {
			errors["title"] = "Quiz title must be at least 3 characters long!"
		}

		if reqData.Stars != nil && *reqData.Stars < 0 {
			errors["stars"] = "Stars cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("quizID", quizID)
		c.Locals("validatedQuizUpdate", reqData)
		return c.Next()
	}
}

// QuizID validates requests addressed to a single quiz
func QuizID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		quizID, ok := paramID(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Quiz ID!", nil)
		}

		c.Locals("quizID", quizID)
		return c.Next()
	}
}

// QuestionID validates requests addressed to a single question
func QuestionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		questionID, ok := paramID(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Question ID!", nil)
		}

		c.Locals("questionID", questionID)
		return c.Next()
	}
}

// AddQuestion validates a new question. At least two answer options are
// required, with exactly one marked correct: the evaluator depends on
// it.
func AddQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		quizID, ok := paramID(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Quiz ID!", nil)
		}

		reqData := new(struct {
			Text    string `json:"text"`
			Answers []struct {
				Text      string `json:"text"`
				IsCorrect bool   `json:"is_correct"`
			} `json:"answers"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Text = strings.TrimSpace(reqData.Text)

		if reqData.Text == "" {
			errors["text"] = "Question text is required!"
		}

		if len(reqData.Answers) < 2 {
			errors["answers"] = "At least two answer options are required!"
		} else {
			correct := 0
			for _, a := range reqData.Answers {
				if strings.TrimSpace(a.Text) == "" {
					errors["answers"] = "Answer options cannot be empty!"
					break
				}
				if a.IsCorrect {
					correct++
				}
			}
			if _, ok := errors["answers"]; !ok && correct != 1 {
				errors["answers"] = "Exactly one answer must be marked correct!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("quizID", quizID)
		c.Locals("validatedQuestion", reqData)
		return c.Next()
	}
}

// SubmitQuiz validates a quiz submission body
func SubmitQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		quizID, ok := paramID(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Quiz ID!", nil)
		}

		reqData := new(struct {
			Answers map[uint]uint `json:"answers"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if len(reqData.Answers) == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"answers": "At least one answer is required!",
			})
		}

		c.Locals("quizID", quizID)
		c.Locals("validatedQuizSubmission", reqData)
		return c.Next()
	}
}

// AssignQuiz validates a direct quiz assignment
func AssignQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		quizID, ok := paramID(c, "quiz_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Quiz ID!", nil)
		}

		studentID, ok := paramID(c, "student_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Student ID!", nil)
		}

		c.Locals("quizID", quizID)
		c.Locals("studentID", studentID)
		return c.Next()
	}
}
