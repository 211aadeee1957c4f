package utils

import (
	"log"

	"gorm.io/gorm"

	"studytask/models"
)

// Notify creates a notification for a student. Best effort: the
// gamification pipeline never aborts because a notification failed to
// persist, so errors are logged and swallowed here.
func Notify(db *gorm.DB, studentID uint, notifType, message string) {
	notification := models.Notification{
		StudentID: studentID,
		Type:      notifType,
		Message:   message,
	}
	if err := db.Create(&notification).Error; err != nil {
		log.Printf("Error creating notification for student %d: %v", studentID, err)
	}
}
