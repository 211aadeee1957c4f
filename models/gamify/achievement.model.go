package gamify

import "gorm.io/gorm"

// Achievement condition types. Each maps to one field of the metric
// summary.
const (
	CondPassedQuizzes    = "passed_quizzes"
	CondPerfectQuizzes   = "perfect_quizzes"
	CondCompletedCourses = "completed_courses"
	CondTotalStars       = "total_stars"
	CondLevelReached     = "level_reached"
)

// Achievement is a one-time unlockable reward gated by a metric
// threshold.
type Achievement struct {
	gorm.Model
	Code           string `json:"code" gorm:"uniqueIndex;not null"`
	Title          string `json:"title"`
	Description    string `json:"description" gorm:"type:text"`
	ConditionType  string `json:"condition_type" gorm:"not null"`
	ConditionValue int    `json:"condition_value" gorm:"not null"`
	Reward         string `json:"reward"`
	RewardIcon     string `json:"reward_icon"`
	IsActive       bool   `json:"is_active" gorm:"default:true"`
	IsDeleted      bool   `gorm:"default:false"`
}

// StudentAchievement is the unlock join row, created at most once per
// (student, achievement) pair. It doubles as the already-notified gate.
type StudentAchievement struct {
	gorm.Model
	StudentID     uint `json:"student_id" gorm:"index:idx_student_achievement,unique;not null"`
	AchievementID uint `json:"achievement_id" gorm:"index:idx_student_achievement,unique;not null"`
	IsDeleted     bool `gorm:"default:false"`
}
