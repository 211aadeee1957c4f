package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name                string     `gorm:"default:''"`
	Email               string     `gorm:"unique;not null"`
	Role                string     `gorm:"default:'STUDENT'"` // STUDENT, TEACHER, ADMIN
	Password            string     `gorm:"not null"`
	LastLogin           *time.Time `json:"last_login"`
	FailedLoginAttempts int        `gorm:"default:0"`
	IsBlocked           bool       `gorm:"default:false"`
	IsDeleted           bool       `gorm:"default:false"`
}
