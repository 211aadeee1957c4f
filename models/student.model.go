package models

import (
	"gorm.io/gorm"

	courseModels "studytask/models/course"
)

// Student is the learner profile attached to a User account.
// Stars is the platform currency balance; it is floor-clamped at 0
// by the gamification ledger and must never be written directly.
type Student struct {
	gorm.Model
	UserID            uint   `gorm:"uniqueIndex;not null"`
	AvatarURL         string `gorm:"default:''"`
	Phone             string `gorm:"default:''"`
	Stars             int    `gorm:"default:0"`
	ProfileEditedOnce bool   `gorm:"default:false"`
	IsDeleted         bool   `gorm:"default:false"`

	Courses         []courseModels.Course `gorm:"many2many:student_courses;"`
	BlockedModules  []courseModels.Module `gorm:"many2many:student_blocked_modules;"`
	AssignedQuizzes []courseModels.Quiz   `gorm:"many2many:student_assigned_quizzes;"`
}
