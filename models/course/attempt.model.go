package course

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// QuizAttempt is one scored submission. Attempts are append-only;
// "latest" queries order by attempt_number descending.
type QuizAttempt struct {
	gorm.Model
	StudentID       uint           `json:"student_id" gorm:"index;not null"`
	QuizID          uint           `json:"quiz_id" gorm:"index;not null"`
	AttemptNumber   int            `json:"attempt_number" gorm:"default:1"`
	Score           int            `json:"score"` // percent, 0-100
	Passed          bool           `json:"passed" gorm:"default:false"`
	StarsPenalty    int            `json:"stars_penalty" gorm:"default:0"`
	SelectedAnswers datatypes.JSON `json:"selected_answers"` // question ID -> answer ID snapshot
	IsDeleted       bool           `gorm:"default:false"`
}

// QuizResult is the one-shot marker per (student, quiz) pair guarding
// the first-attempt perfect-score star bonus. The unique index is
// load-bearing: it keeps the payout idempotent.
type QuizResult struct {
	gorm.Model
	StudentID      uint `json:"student_id" gorm:"index:idx_quiz_result,unique;not null"`
	QuizID         uint `json:"quiz_id" gorm:"index:idx_quiz_result,unique;not null"`
	Score          int  `json:"score"`
	TotalQuestions int  `json:"total_questions" gorm:"default:0"`
	StarsGiven     bool `json:"stars_given" gorm:"default:false"`
	IsDeleted      bool `gorm:"default:false"`
}

// CourseCompletion guards the at-most-once course star payout per
// (student, course) pair. Created lazily on the first completion check.
type CourseCompletion struct {
	gorm.Model
	StudentID  uint `json:"student_id" gorm:"index:idx_course_completion,unique;not null"`
	CourseID   uint `json:"course_id" gorm:"index:idx_course_completion,unique;not null"`
	StarsGiven bool `json:"stars_given" gorm:"default:false"`
	IsDeleted  bool `gorm:"default:false"`
}
