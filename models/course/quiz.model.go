package course

import "gorm.io/gorm"

// Quiz is a scored test; Stars is the one-time bonus for a perfect
// first attempt.
type Quiz struct {
	gorm.Model
	Title     string `json:"title"`
	Stars     int    `json:"stars" gorm:"default:1"`
	IsActive  bool   `json:"is_active" gorm:"default:true"`
	IsDeleted bool   `gorm:"default:false"`

	Questions []Question `json:"questions,omitempty"`
}

// Question belongs to one quiz. The evaluator assumes exactly one
// correct answer; the add-question validator enforces that on create.
type Question struct {
	gorm.Model
	QuizID    uint   `json:"quiz_id" gorm:"index;not null"`
	Text      string `json:"text"`
	IsDeleted bool   `gorm:"default:false"`

	Answers []Answer `json:"answers,omitempty"`
}

// Answer is one option of a question.
type Answer struct {
	gorm.Model
	QuestionID uint   `json:"question_id" gorm:"index;not null"`
	Text       string `json:"text"`
	IsCorrect  bool   `json:"is_correct" gorm:"default:false"`
	IsDeleted  bool   `gorm:"default:false"`
}
