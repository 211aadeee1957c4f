package course

import "gorm.io/gorm"

// Module groups lessons and quizzes; a module can be shared by several
// courses.
type Module struct {
	gorm.Model
	Title       string `json:"title"`
	Description string `json:"description"`
	IsDeleted   bool   `gorm:"default:false"`

	Lessons []Lesson `gorm:"many2many:module_lessons;" json:"lessons,omitempty"`
	Quizzes []Quiz   `gorm:"many2many:module_quizzes;" json:"quizzes,omitempty"`
}
