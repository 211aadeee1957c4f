package models

import "gorm.io/gorm"

const (
	NotifCourseApproved = "course_approved"
	NotifCourseRejected = "course_rejected"
	NotifStarsAwarded   = "stars_awarded"
	NotifAchievement    = "achievement"
	NotifHomework       = "homework"
	NotifProfileEdit    = "profile_edit"
)

// Notification is a fire-and-forget message for a student.
type Notification struct {
	gorm.Model
	StudentID uint   `gorm:"index;not null"`
	Type      string `gorm:"not null"`
	Message   string `gorm:"type:text"`
	IsRead    bool   `gorm:"default:false"`
	IsDeleted bool   `gorm:"default:false"`
}
