package courseController

import (
	"github.com/gofiber/fiber/v2"

	"studytask/database"
	"studytask/gamify"
	"studytask/middleware"
	courseModels "studytask/models/course"
)

// GetQuiz returns a quiz with questions and answer options for taking.
// Correct-answer flags are stripped before the payload leaves the API.
func GetQuiz(c *fiber.Ctx) error {
	quizID := c.Locals("quizID").(int)

	student, err := currentStudent(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student profile not found!", nil)
	}

	db := database.Database.Db

	allowed, reason, err := gamify.CanAttemptQuiz(db, student.ID, uint(quizID))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check quiz eligibility!", nil)
	}
	if !allowed {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, reason, nil)
	}

	var quiz courseModels.Quiz
	if err := db.Where("id = ? AND is_active = true AND is_deleted = false", quizID).
		Preload("Questions", "is_deleted = false").
		Preload("Questions.Answers", "is_deleted = false").
		First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	type answerView struct {
		ID   uint   `json:"id"`
		Text string `json:"text"`
	}
	type questionView struct {
		ID      uint         `json:"id"`
		Text    string       `json:"text"`
		Answers []answerView `json:"answers"`
	}

	questions := make([]questionView, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		qv := questionView{ID: q.ID, Text: q.Text}
		for _, a := range q.Answers {
			qv.Answers = append(qv.Answers, answerView{ID: a.ID, Text: a.Text})
		}
		questions = append(questions, qv)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully!", fiber.Map{
		"id":        quiz.ID,
		"title":     quiz.Title,
		"stars":     quiz.Stars,
		"questions": questions,
	})
}

// SubmitQuiz scores an attempt and runs the downstream update chain for
// every enrolled course that carries this quiz.
func SubmitQuiz(c *fiber.Ctx) error {
	quizID := uint(c.Locals("quizID").(int))

	reqData, ok := c.Locals("validatedQuizSubmission").(*struct {
		Answers map[uint]uint `json:"answers"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	student, err := currentStudent(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student profile not found!", nil)
	}

	db := database.Database.Db

	allowed, reason, err := gamify.CanAttemptQuiz(db, student.ID, quizID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check quiz eligibility!", nil)
	}
	if !allowed {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, reason, nil)
	}

	attempt, err := gamify.SubmitAttempt(db, student.ID, quizID, reqData.Answers)
	if err != nil {
		if err == gamify.ErrQuizNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit quiz!", nil)
	}

	// A passing attempt may close modules in any enrolled course that
	// includes this quiz.
	awardedAny := false
	if attempt.Passed {
		var moduleIDs []uint
		db.Table("module_quizzes").Where("quiz_id = ?", quizID).Pluck("module_id", &moduleIDs)

		var enrolledIDs []uint
		db.Table("student_courses").Where("student_id = ?", student.ID).Pluck("course_id", &enrolledIDs)

		for _, courseID := range enrolledIDs {
			var courseModuleIDs []uint
			db.Table("course_modules").
				Where("course_id = ? AND module_id IN ?", courseID, moduleIDs).
				Pluck("module_id", &courseModuleIDs)
			if len(courseModuleIDs) == 0 {
				continue
			}

			for _, moduleID := range courseModuleIDs {
				if _, err := gamify.MarkModuleComplete(db, student.ID, courseID, moduleID); err != nil {
					return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update module completion!", nil)
				}
			}

			var course courseModels.Course
			if err := db.Where("id = ?", courseID).First(&course).Error; err != nil {
				continue
			}
			awarded, err := gamify.AwardCourseStars(db, student.ID, &course)
			if err != nil {
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to award course stars!", nil)
			}
			awardedAny = awardedAny || awarded

			if _, err := gamify.RefreshProgress(db, student.ID, courseID); err != nil {
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to refresh progress!", nil)
			}
		}
	}

	unlocked := gamify.EvaluateAchievements(db, student.ID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz submitted!", fiber.Map{
		"attempt_number":       attempt.AttemptNumber,
		"score":                attempt.Score,
		"passed":               attempt.Passed,
		"stars_penalty":        attempt.StarsPenalty,
		"course_stars_awarded": awardedAny,
		"new_achievements":     unlocked,
	})
}

// MyAttempts lists the student's attempt history for a quiz
func MyAttempts(c *fiber.Ctx) error {
	quizID := c.Locals("quizID").(int)

	student, err := currentStudent(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student profile not found!", nil)
	}

	var attempts []courseModels.QuizAttempt
	if err := database.Database.Db.
		Where("student_id = ? AND quiz_id = ? AND is_deleted = false", student.ID, quizID).
		Order("attempt_number asc").
		Find(&attempts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch attempts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attempts fetched successfully!", attempts)
}
