package notificationController

import (
	"github.com/gofiber/fiber/v2"

	"studytask/database"
	"studytask/middleware"
	"studytask/models"
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

// MyNotifications lists the student's notifications, newest first
func MyNotifications(c *fiber.Ctx) error {
	student, err := currentStudent(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student profile not found!", nil)
	}

	unreadOnly := c.QueryBool("unread", false)

	db := database.Database.Db

	query := db.Where("student_id = ? AND is_deleted = false", student.ID)
	if unreadOnly {
		query = query.Where("is_read = false")
	}

	var notifications []models.Notification
	if err := query.Order("created_at desc").Limit(100).Find(&notifications).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch notifications!", nil)
	}

	var unread int64
	db.Model(&models.Notification{}).
		Where("student_id = ? AND is_read = false AND is_deleted = false", student.ID).
		Count(&unread)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notifications fetched successfully!", fiber.Map{
		"notifications": notifications,
		"unread":        unread,
	})
}

// MarkRead marks one notification as read
func MarkRead(c *fiber.Ctx) error {
	notificationID := c.Locals("notificationID").(int)

	student, err := currentStudent(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student profile not found!", nil)
	}

	db := database.Database.Db

	var notification models.Notification
	if err := db.Where("id = ? AND student_id = ? AND is_deleted = false", notificationID, student.ID).
		First(&notification).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Notification not found!", nil)
	}

	notification.IsRead = true
	if err := db.Save(&notification).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark notification as read!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notification marked as read!", nil)
}

// MarkAllRead marks every unread notification as read
func MarkAllRead(c *fiber.Ctx) error {
	student, err := currentStudent(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student profile not found!", nil)
	}

	if err := database.Database.Db.Model(&models.Notification{}).
		Where("student_id = ? AND is_read = false AND is_deleted = false", student.ID).
		Update("is_read", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark notifications as read!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "All notifications marked as read!", nil)
}
