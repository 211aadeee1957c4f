package models

import (
	"time"

	"gorm.io/gorm"
)

// Homework is a teacher-assigned task for a course.
type Homework struct {
	gorm.Model
	CourseID    uint       `gorm:"index;not null"`
	TeacherID   uint       `gorm:"index;not null"` // User ID of the assigning teacher
	Title       string     `gorm:"not null"`
	Description string     `gorm:"type:text"`
	DueDate     *time.Time `json:"due_date"`
	Stars       int        `gorm:"default:0"` // Stars awarded on grading, at teacher's discretion
	IsDeleted   bool       `gorm:"default:false"`
}

// HomeworkSubmission is a student's answer to a homework, one per
// (student, homework) pair.
type HomeworkSubmission struct {
	gorm.Model
	HomeworkID uint   `gorm:"index:idx_homework_student,unique;not null"`
	StudentID  uint   `gorm:"index:idx_homework_student,unique;not null"`
	Text       string `gorm:"type:text"`
	FileURL    string `gorm:"default:''"`
	Status     string `gorm:"default:'SUBMITTED'"` // SUBMITTED, GRADED
	Grade      *int   `json:"grade"`               // percent, set by the teacher
	GradedAt   *time.Time
	IsDeleted  bool `gorm:"default:false"`
}
