package adminController

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studytask/database"
	"studytask/middleware"
	"studytask/models"
	courseModels "studytask/models/course"
	"studytask/utils"
)

// ListCourseRequests lists enrollment requests, filterable by status
func ListCourseRequests(c *fiber.Ctx) error {
	status := c.Query("status", models.RequestPending)

	var requests []models.CourseAddRequest
	if err := database.Database.Db.
		Where("status = ? AND is_deleted = false", status).
		Order("created_at asc").
		Find(&requests).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch requests!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course requests fetched successfully!", requests)
}

// ApproveCourseRequest approves an enrollment request: the approval and
// the enrollment commit together, then the student is notified.
func ApproveCourseRequest(c *fiber.Ctx) error {
	requestID := c.Locals("requestID").(int)

	db := database.Database.Db

	var request models.CourseAddRequest
	if err := db.Where("id = ? AND status = ? AND is_deleted = false", requestID, models.RequestPending).
		First(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Pending request not found!", nil)
	}

	var student models.Student
	if err := db.Where("id = ? AND is_deleted = false", request.StudentID).First(&student).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = false", request.CourseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&student).Association("Courses").Append(&course); err != nil {
			return err
		}

		now := time.Now()
		request.Status = models.RequestApproved
		request.ReviewedAt = &now
		return tx.Save(&request).Error
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to approve request!", nil)
	}

	utils.Notify(db, student.ID, models.NotifCourseApproved,
		"Your request to join \""+course.Title+"\" was approved.")

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Request approved and student enrolled!", request)
}

// RejectCourseRequest rejects an enrollment request with an optional reason
func RejectCourseRequest(c *fiber.Ctx) error {
	requestID := c.Locals("requestID").(int)
	reason, _ := c.Locals("rejectionReason").(string)

	db := database.Database.Db

	var request models.CourseAddRequest
	if err := db.Where("id = ? AND status = ? AND is_deleted = false", requestID, models.RequestPending).
		First(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Pending request not found!", nil)
	}

	now := time.Now()
	request.Status = models.RequestRejected
	request.AdminResponse = reason
	request.ReviewedAt = &now
	if err := db.Save(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reject request!", nil)
	}

	message := "Your course request was rejected."
	if reason != "" {
		message += " Reason: " + reason
	}
	utils.Notify(db, request.StudentID, models.NotifCourseRejected, message)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Request rejected!", request)
}

// ListProfileEditRequests lists profile edit requests, filterable by status
func ListProfileEditRequests(c *fiber.Ctx) error {
	status := c.Query("status", models.RequestPending)

	var requests []models.ProfileEditRequest
	if err := database.Database.Db.
		Where("status = ? AND is_deleted = false", status).
		Order("created_at asc").
		Find(&requests).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch requests!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile edit requests fetched successfully!", requests)
}

// ReviewProfileEditRequest approves or rejects a profile edit request
func ReviewProfileEditRequest(c *fiber.Ctx) error {
	requestID := c.Locals("requestID").(int)
	approve := c.Locals("approveRequest").(bool)
	reason, _ := c.Locals("rejectionReason").(string)

	db := database.Database.Db

	var request models.ProfileEditRequest
	if err := db.Where("id = ? AND status = ? AND is_deleted = false", requestID, models.RequestPending).
		First(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Pending request not found!", nil)
	}

	now := time.Now()
	request.ReviewedAt = &now
	request.AdminResponse = reason
	if approve {
		request.Status = models.RequestApproved
	} else {
		request.Status = models.RequestRejected
	}

	if err := db.Save(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to review request!", nil)
	}

	message := "Your profile edit request was rejected."
	if approve {
		message = "Your profile edit request was approved. You may now edit your profile once."
	}
	utils.Notify(db, request.StudentID, models.NotifProfileEdit, message)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Request reviewed!", request)
}

// BlockModule blocks a module for one student
func BlockModule(c *fiber.Ctx) error {
	studentID := c.Locals("studentID").(int)
	moduleID := c.Locals("moduleID").(int)

	db := database.Database.Db

	var student models.Student
	if err := db.Where("id = ? AND is_deleted = false", studentID).First(&student).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	var module courseModels.Module
	if err := db.Where("id = ? AND is_deleted = false", moduleID).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	if err := db.Model(&student).Association("BlockedModules").Append(&module); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to block module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module blocked for student!", nil)
}

// UnblockModule removes a module block for one student
func UnblockModule(c *fiber.Ctx) error {
	studentID := c.Locals("studentID").(int)
	moduleID := c.Locals("moduleID").(int)

	db := database.Database.Db

	var student models.Student
	if err := db.Where("id = ?", studentID).First(&student).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	var module courseModels.Module
	if err := db.Where("id = ?", moduleID).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	if err := db.Model(&student).Association("BlockedModules").Delete(&module); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to unblock module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module unblocked for student!", nil)
}

// Dashboard returns headline counts for the admin home screen
func Dashboard(c *fiber.Ctx) error {
	db := database.Database.Db

	var students, courses, quizzes, pendingCourseRequests, pendingEditRequests, attempts int64
	db.Model(&models.Student{}).Where("is_deleted = false").Count(&students)
	db.Model(&courseModels.Course{}).Where("is_deleted = false").Count(&courses)
	db.Model(&courseModels.Quiz{}).Where("is_deleted = false").Count(&quizzes)
	db.Model(&models.CourseAddRequest{}).
		Where("status = ? AND is_deleted = false", models.RequestPending).
		Count(&pendingCourseRequests)
	db.Model(&models.ProfileEditRequest{}).
		Where("status = ? AND is_deleted = false", models.RequestPending).
		Count(&pendingEditRequests)
	db.Model(&courseModels.QuizAttempt{}).Where("is_deleted = false").Count(&attempts)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"students":                students,
		"courses":                 courses,
		"quizzes":                 quizzes,
		"quiz_attempts":           attempts,
		"pending_course_requests": pendingCourseRequests,
		"pending_edit_requests":   pendingEditRequests,
	})
}

// ListStudents lists student profiles with account info, paginated
func ListStudents(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	db := database.Database.Db

	var total int64
	db.Model(&models.Student{}).Where("is_deleted = false").Count(&total)

	var students []models.Student
	if err := db.Where("is_deleted = false").
		Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&students).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch students!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Students fetched successfully!", fiber.Map{
		"students": students,
		"total":    total,
		"page":     page,
		"limit":    limit,
	})
}
