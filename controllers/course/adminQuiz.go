package courseController

import (
	"github.com/gofiber/fiber/v2"

	"studytask/database"
	"studytask/middleware"
	"studytask/models"
	courseModels "studytask/models/course"
	"studytask/utils"
)

// AdminCreateQuiz creates a quiz without questions
func AdminCreateQuiz(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedQuiz").(*struct {
		Title string `json:"title"`
		Stars int    `json:"stars"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	quiz := courseModels.Quiz{
		Title:    reqData.Title,
		Stars:    reqData.Stars,
		IsActive: true,
	}

	if err := database.Database.Db.Create(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz created successfully!", quiz)
}

// AdminUpdateQuiz updates quiz title, bonus stars and active flag
func AdminUpdateQuiz(c *fiber.Ctx) error {
	quizID := c.Locals("quizID").(int)

	reqData, ok := c.Locals("validatedQuizUpdate").(*struct {
		Title    string `json:"title"`
		Stars    *int   `json:"stars"`
		IsActive *bool  `json:"is_active"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var quiz courseModels.Quiz
	if err := db.Where("id = ? AND is_deleted = false", quizID).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	if reqData.Title != "" {
		quiz.Title = reqData.Title
	}
	if reqData.Stars != nil {
		quiz.Stars = *reqData.Stars
	}
	if reqData.IsActive != nil {
		quiz.IsActive = *reqData.IsActive
	}

	if err := db.Save(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz updated successfully!", quiz)
}

// AdminDeleteQuiz soft-deletes a quiz
func AdminDeleteQuiz(c *fiber.Ctx) error {
	quizID := c.Locals("quizID").(int)

	db := database.Database.Db

	var quiz courseModels.Quiz
	if err := db.Where("id = ? AND is_deleted = false", quizID).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	quiz.IsDeleted = true
	if err := db.Save(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz deleted successfully!", nil)
}

// AdminListQuizzes lists all quizzes with their questions
func AdminListQuizzes(c *fiber.Ctx) error {
	var quizzes []courseModels.Quiz
	if err := database.Database.Db.Where("is_deleted = false").
		Preload("Questions", "is_deleted = false").
		Preload("Questions.Answers", "is_deleted = false").
		Order("created_at desc").
		Find(&quizzes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quizzes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quizzes fetched successfully!", quizzes)
}

// AdminAddQuestion adds a question with its answers to a quiz. The
// validator guarantees at least two answers with exactly one correct.
func AdminAddQuestion(c *fiber.Ctx) error {
	quizID := c.Locals("quizID").(int)

	reqData, ok := c.Locals("validatedQuestion").(*struct {
		Text    string `json:"text"`
		Answers []struct {
			Text      string `json:"text"`
			IsCorrect bool   `json:"is_correct"`
		} `json:"answers"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var quiz courseModels.Quiz
	if err := db.Where("id = ? AND is_deleted = false", quizID).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	question := courseModels.Question{
		QuizID: quiz.ID,
		Text:   reqData.Text,
	}
	for _, a := range reqData.Answers {
		question.Answers = append(question.Answers, courseModels.Answer{
			Text:      a.Text,
			IsCorrect: a.IsCorrect,
		})
	}

	if err := db.Create(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Question added successfully!", question)
}

// AdminDeleteQuestion soft-deletes a question
func AdminDeleteQuestion(c *fiber.Ctx) error {
	questionID := c.Locals("questionID").(int)

	db := database.Database.Db

	var question courseModels.Question
	if err := db.Where("id = ? AND is_deleted = false", questionID).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	question.IsDeleted = true
	if err := db.Save(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question deleted successfully!", nil)
}

// AdminAssignQuiz assigns a quiz directly to a student, bypassing the
// normal module gating when the student attempts it.
func AdminAssignQuiz(c *fiber.Ctx) error {
	quizID := c.Locals("quizID").(int)
	studentID := c.Locals("studentID").(int)

	db := database.Database.Db

	var quiz courseModels.Quiz
	if err := db.Where("id = ? AND is_deleted = false", quizID).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	var student models.Student
	if err := db.Where("id = ? AND is_deleted = false", studentID).First(&student).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	if err := db.Model(&student).Association("AssignedQuizzes").Append(&quiz); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to assign quiz!", nil)
	}

	utils.Notify(db, student.ID, models.NotifHomework, "You have been assigned the quiz \""+quiz.Title+"\".")

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz assigned to student!", nil)
}

// AdminUnassignQuiz removes a direct quiz assignment
func AdminUnassignQuiz(c *fiber.Ctx) error {
	quizID := c.Locals("quizID").(int)
	studentID := c.Locals("studentID").(int)

	db := database.Database.Db

	var quiz courseModels.Quiz
	if err := db.Where("id = ?", quizID).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	var student models.Student
	if err := db.Where("id = ?", studentID).First(&student).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	if err := db.Model(&student).Association("AssignedQuizzes").Delete(&quiz); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to unassign quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz assignment removed!", nil)
}
