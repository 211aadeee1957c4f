package gamify

import (
	"log"

	"gorm.io/gorm"

	"studytask/models"
	gamifyModels "studytask/models/gamify"
	"studytask/utils"
)

// Progress is a student's standing toward one achievement:
// percentage = min(100, floor(100 * current / target)), with a
// non-positive threshold treated as target 1.
type Progress struct {
	Current    int `json:"current"`
	Target     int `json:"target"`
	Percentage int `json:"percentage"`
}

// EvaluateAchievements compares the student's metrics against every
// active achievement and unlocks newly satisfied ones. Idempotent:
// calling it again without a state change returns an empty list. One
// achievement's failure never blocks the others.
func EvaluateAchievements(db *gorm.DB, studentID uint) []gamifyModels.Achievement {
	metrics := ComputeMetrics(db, studentID)

	var achievements []gamifyModels.Achievement
	if err := db.Where("is_active = true AND is_deleted = false").Find(&achievements).Error; err != nil {
		log.Printf("Error loading achievements for student %d: %v", studentID, err)
		return nil
	}

	var unlocked []gamifyModels.Achievement
	for _, achievement := range achievements {
		isNew, err := unlockIfSatisfied(db, studentID, achievement, metrics)
		if err != nil {
			log.Printf("Error evaluating achievement %s for student %d: %v",
				achievement.Code, studentID, err)
			continue
		}
		if isNew {
			unlocked = append(unlocked, achievement)
			utils.Notify(db, studentID, models.NotifAchievement,
				"Achievement unlocked: "+achievement.Title)
		}
	}
	return unlocked
}

func unlockIfSatisfied(db *gorm.DB, studentID uint, achievement gamifyModels.Achievement, metrics Metrics) (bool, error) {
	value := metrics.ValueFor(achievement.ConditionType)
	if value < achievement.ConditionValue {
		return false, nil
	}

	var existing gamifyModels.StudentAchievement
	err := db.Where("student_id = ? AND achievement_id = ? AND is_deleted = false",
		studentID, achievement.ID).First(&existing).Error
	if err == nil {
		return false, nil // already unlocked
	}
	if err != gorm.ErrRecordNotFound {
		return false, err
	}

	unlock := gamifyModels.StudentAchievement{
		StudentID:     studentID,
		AchievementID: achievement.ID,
	}
	if err := db.Create(&unlock).Error; err != nil {
		// A unique-index violation means a concurrent call already
		// unlocked it; either way this call unlocked nothing new.
		return false, err
	}
	return true, nil
}

// AchievementProgress reports how close the student is to one
// achievement's threshold.
func AchievementProgress(db *gorm.DB, studentID uint, achievement *gamifyModels.Achievement) Progress {
	metrics := ComputeMetrics(db, studentID)

	current := metrics.ValueFor(achievement.ConditionType)
	if current < 0 {
		current = 0
	}

	target := achievement.ConditionValue
	if target <= 0 {
		target = 1
	}

	percentage := current * 100 / target
	if percentage > 100 {
		percentage = 100
	}

	return Progress{Current: current, Target: target, Percentage: percentage}
}
