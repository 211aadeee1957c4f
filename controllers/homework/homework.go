package homeworkController

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"studytask/database"
	"studytask/gamify"
	"studytask/middleware"
	"studytask/models"
	courseModels "studytask/models/course"
	"studytask/utils"
)

func currentStudent(c *fiber.Ctx) (*models.Student, error) {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return nil, fiber.ErrUnauthorized
	}

	var student models.Student
	if err := database.Database.Db.
		Where("user_id = ? AND is_deleted = false", userID).
		First(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

// CreateHomework lets a teacher or admin assign homework to a course.
// Every enrolled student gets a notification.
func CreateHomework(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedHomework").(*struct {
		CourseID    uint   `json:"course_id"`
		Title       string `json:"title"`
		Description string `json:"description"`
		DueDate     string `json:"due_date"`
		Stars       int    `json:"stars"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	teacherID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = false", reqData.CourseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	homework := models.Homework{
		CourseID:    course.ID,
		TeacherID:   teacherID,
		Title:       reqData.Title,
		Description: reqData.Description,
		Stars:       reqData.Stars,
	}

	if reqData.DueDate != "" {
		due, err := time.Parse(time.RFC3339, reqData.DueDate)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid due date format!", nil)
		}
		homework.DueDate = &due
	}

	if err := db.Create(&homework).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create homework!", nil)
	}

	var studentIDs []uint
	db.Table("student_courses").Where("course_id = ?", course.ID).Pluck("student_id", &studentIDs)
	for _, studentID := range studentIDs {
		utils.Notify(db, studentID, models.NotifHomework,
			"New homework \""+homework.Title+"\" in course \""+course.Title+"\".")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Homework created successfully!", homework)
}

// CourseHomework lists homework for one course
func CourseHomework(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var homework []models.Homework
	if err := database.Database.Db.
		Where("course_id = ? AND is_deleted = false", courseID).
		Order("created_at desc").
		Find(&homework).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch homework!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Homework fetched successfully!", homework)
}

// SubmitHomework records a student's submission, one per homework
func SubmitHomework(c *fiber.Ctx) error {
	homeworkID := c.Locals("homeworkID").(int)

	reqData, ok := c.Locals("validatedSubmission").(*struct {
		Text string `json:"text"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	student, err := currentStudent(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student profile not found!", nil)
	}

	db := database.Database.Db

	var homework models.Homework
	if err := db.Where("id = ? AND is_deleted = false", homeworkID).First(&homework).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Homework not found!", nil)
	}

	var enrolled int64
	db.Table("student_courses").
		Where("student_id = ? AND course_id = ?", student.ID, homework.CourseID).
		Count(&enrolled)
	if enrolled == 0 {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not enrolled in this course!", nil)
	}

	var existing int64
	db.Model(&models.HomeworkSubmission{}).
		Where("homework_id = ? AND student_id = ? AND is_deleted = false", homework.ID, student.ID).
		Count(&existing)
	if existing > 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already submitted this homework!", nil)
	}

	submission := models.HomeworkSubmission{
		HomeworkID: homework.ID,
		StudentID:  student.ID,
		Text:       reqData.Text,
		Status:     "SUBMITTED",
	}

	if file, err := c.FormFile("file"); err == nil && file != nil {
		savedPath, err := utils.SaveUploadedFile(file, "./uploads/homework", utils.HomeworkExtensions)
		if errors.Is(err, utils.ErrExtensionNotAllowed) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unsupported submission file type!", nil)
		}
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save submission file!", nil)
		}
		submission.FileURL = utils.GetFileURL(savedPath)
	}

	if err := db.Create(&submission).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit homework!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Homework submitted successfully!", submission)
}

// HomeworkSubmissions lists submissions for one homework, teacher view
func HomeworkSubmissions(c *fiber.Ctx) error {
	homeworkID := c.Locals("homeworkID").(int)

	var submissions []models.HomeworkSubmission
	if err := database.Database.Db.
		Where("homework_id = ? AND is_deleted = false", homeworkID).
		Order("created_at asc").
		Find(&submissions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch submissions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submissions fetched successfully!", submissions)
}

// GradeSubmission grades a submission and pays the homework's stars
// through the ledger when the grade passes.
func GradeSubmission(c *fiber.Ctx) error {
	submissionID := c.Locals("submissionID").(int)

	reqData, ok := c.Locals("validatedGrade").(*struct {
		Grade int `json:"grade"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var submission models.HomeworkSubmission
	if err := db.Where("id = ? AND is_deleted = false", submissionID).First(&submission).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Submission not found!", nil)
	}
	if submission.Status == "GRADED" {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Submission is already graded!", nil)
	}

	var homework models.Homework
	if err := db.Where("id = ?", submission.HomeworkID).First(&homework).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load homework!", nil)
	}

	now := time.Now()
	grade := reqData.Grade
	submission.Grade = &grade
	submission.Status = "GRADED"
	submission.GradedAt = &now
	if err := db.Save(&submission).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to grade submission!", nil)
	}

	if grade >= gamify.PassThreshold && homework.Stars > 0 {
		if _, err := gamify.UpdateStars(db, submission.StudentID, homework.Stars,
			"Homework \""+homework.Title+"\" graded"); err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to award homework stars!", nil)
		}
	}

	utils.Notify(db, submission.StudentID, models.NotifHomework,
		"Your homework \""+homework.Title+"\" was graded.")

	gamify.EvaluateAchievements(db, submission.StudentID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submission graded successfully!", submission)
}
