package gamify

import (
	"log"

	"gorm.io/gorm"

	"studytask/models"
	courseModels "studytask/models/course"
)

// Metrics is the rolled-up summary the achievement evaluator reads.
//
// PassedQuizzes counts passing attempt records, not distinct quizzes:
// a student passing the same quiz twice counts twice. That matches the
// original behavior and is kept until the product owner decides
// otherwise.
type Metrics struct {
	PassedQuizzes    int `json:"passed_quizzes"`
	PerfectQuizzes   int `json:"perfect_quizzes"`
	CompletedCourses int `json:"completed_courses"`
	TotalStars       int `json:"total_stars"`
	LevelReached     int `json:"level_reached"`
}

// ComputeMetrics aggregates the student's counters. It never fails:
// any error degrades to a zeroed, level-1 summary so a broken
// aggregation can never take down the student's page.
func ComputeMetrics(db *gorm.DB, studentID uint) Metrics {
	fallback := Metrics{LevelReached: 1}

	var passed int64
	if err := db.Model(&courseModels.QuizAttempt{}).
		Where("student_id = ? AND passed = true AND is_deleted = false", studentID).
		Count(&passed).Error; err != nil {
		log.Printf("Error aggregating passed quizzes for student %d: %v", studentID, err)
		return fallback
	}

	var perfect int64
	if err := db.Model(&courseModels.QuizAttempt{}).
		Where("student_id = ? AND score = 100 AND is_deleted = false", studentID).
		Count(&perfect).Error; err != nil {
		log.Printf("Error aggregating perfect quizzes for student %d: %v", studentID, err)
		return fallback
	}

	var completedCourses int64
	if err := db.Model(&courseModels.CourseCompletion{}).
		Where("student_id = ? AND stars_given = true AND is_deleted = false", studentID).
		Count(&completedCourses).Error; err != nil {
		log.Printf("Error aggregating completed courses for student %d: %v", studentID, err)
		return fallback
	}

	var student models.Student
	if err := db.Where("id = ? AND is_deleted = false", studentID).First(&student).Error; err != nil {
		log.Printf("Error loading student %d for metrics: %v", studentID, err)
		return fallback
	}

	levelReached := 1
	if level := GetLevel(db, student.Stars); level != nil {
		levelReached = level.Number
	}

	return Metrics{
		PassedQuizzes:    int(passed),
		PerfectQuizzes:   int(perfect),
		CompletedCourses: int(completedCourses),
		TotalStars:       student.Stars,
		LevelReached:     levelReached,
	}
}

// ValueFor returns the metric matching an achievement condition type,
// or -1 for an unknown type so it can never satisfy a threshold.
func (m Metrics) ValueFor(conditionType string) int {
	switch conditionType {
	case "passed_quizzes":
		return m.PassedQuizzes
	case "perfect_quizzes":
		return m.PerfectQuizzes
	case "completed_courses":
		return m.CompletedCourses
	case "total_stars":
		return m.TotalStars
	case "level_reached":
		return m.LevelReached
	}
	return -1
}
