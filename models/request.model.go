package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RequestPending  = "PENDING"
	RequestApproved = "APPROVED"
	RequestRejected = "REJECTED"
)

// ProfileEditRequest is a student's request to unlock profile editing,
// reviewed by an admin.
type ProfileEditRequest struct {
	gorm.Model
	StudentID     uint       `gorm:"index;not null"`
	Status        string     `gorm:"default:'PENDING'"`
	AdminResponse string     `gorm:"type:text"`
	ReviewedAt    *time.Time `json:"reviewed_at"`
	IsDeleted     bool       `gorm:"default:false"`
}

// CourseAddRequest is a student's request to join a course by code,
// reviewed by an admin.
type CourseAddRequest struct {
	gorm.Model
	StudentID     uint       `gorm:"index;not null"`
	CourseID      uint       `gorm:"index;not null"`
	Comment       string     `gorm:"type:text"`
	Status        string     `gorm:"default:'PENDING'"`
	AdminResponse string     `gorm:"type:text"`
	ReviewedAt    *time.Time `json:"reviewed_at"`
	IsDeleted     bool       `gorm:"default:false"`
}
