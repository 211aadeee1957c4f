package course

import "gorm.io/gorm"

// Course is a set of modules with a star reward paid at most once per
// student on strict completion.
type Course struct {
	gorm.Model
	Title       string `json:"title"`
	Description string `json:"description"`
	Stars       int    `json:"stars" gorm:"default:0"` // star reward for completing the course
	CourseCode  string `json:"course_code" gorm:"uniqueIndex;size:5"`
	ImageURL    string `json:"image_url"`
	IsDeleted   bool   `gorm:"default:false"`

	Modules []Module `gorm:"many2many:course_modules;" json:"modules,omitempty"`
}
