package course

import "gorm.io/gorm"

// StudentProgress caches the completion percentage for a (student,
// course) pair. Progress is derived; the completion rows below stay
// authoritative and the percentage is recomputed on every mutation.
type StudentProgress struct {
	gorm.Model
	StudentID uint `json:"student_id" gorm:"index:idx_progress_student_course,unique;not null"`
	CourseID  uint `json:"course_id" gorm:"index:idx_progress_student_course,unique;not null"`
	Progress  int  `json:"progress" gorm:"default:0"` // 0-100
	IsDeleted bool `gorm:"default:false"`
}

// LessonCompletion marks a lesson as viewed by a student within a
// course. Monotonic: once created it is never reverted.
type LessonCompletion struct {
	gorm.Model
	StudentID uint `json:"student_id" gorm:"index:idx_lesson_completion,unique;not null"`
	CourseID  uint `json:"course_id" gorm:"index:idx_lesson_completion,unique;not null"`
	LessonID  uint `json:"lesson_id" gorm:"index:idx_lesson_completion,unique;not null"`
	IsDeleted bool `gorm:"default:false"`
}

// ModuleCompletion marks a module as completed by a student within a
// course.
type ModuleCompletion struct {
	gorm.Model
	StudentID uint `json:"student_id" gorm:"index:idx_module_completion,unique;not null"`
	CourseID  uint `json:"course_id" gorm:"index:idx_module_completion,unique;not null"`
	ModuleID  uint `json:"module_id" gorm:"index:idx_module_completion,unique;not null"`
	IsDeleted bool `gorm:"default:false"`
}
