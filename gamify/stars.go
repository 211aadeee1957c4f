package gamify

import (
	"log"
	"time"

	"gorm.io/gorm"

	"studytask/models"
	gamifyModels "studytask/models/gamify"
)

// StarChange reports the outcome of a star balance mutation.
type StarChange struct {
	OldLevel   *gamifyModels.Level `json:"old_level"`
	NewLevel   *gamifyModels.Level `json:"new_level"`
	Changed    bool                `json:"changed"`
	NewBalance int                 `json:"new_balance"`
}

// GetLevel returns the first level (ordered by number) whose
// [MinStars, MaxStars) range contains the balance, or nil when no
// level matches. Ranges are guaranteed non-overlapping at creation
// time, so the scan is deterministic.
func GetLevel(db *gorm.DB, balance int) *gamifyModels.Level {
	var levels []gamifyModels.Level
	if err := db.Where("is_deleted = false").Order("number asc").Find(&levels).Error; err != nil {
		log.Printf("Error loading levels: %v", err)
		return nil
	}
	for i := range levels {
		if levels[i].Contains(balance) {
			return &levels[i]
		}
	}
	return nil
}

// UpdateStars applies a delta to the student's star balance, writing
// an audit transaction row. The balance is floor-clamped at 0: a delta
// that would drive it negative sets it to 0 instead. Write failures
// propagate so callers can react.
func UpdateStars(db *gorm.DB, studentID uint, delta int, reason string) (StarChange, error) {
	change := StarChange{}

	var student models.Student
	if err := db.Where("id = ? AND is_deleted = false", studentID).First(&student).Error; err != nil {
		return change, err
	}

	balanceBefore := student.Stars
	balanceAfter := balanceBefore + delta
	if balanceAfter < 0 {
		balanceAfter = 0
	}

	change.OldLevel = GetLevel(db, balanceBefore)
	change.NewBalance = balanceAfter

	txn := gamifyModels.StarTransaction{
		StudentID:       studentID,
		Delta:           delta,
		BalanceBefore:   balanceBefore,
		BalanceAfter:    balanceAfter,
		Reason:          reason,
		TransactionDate: time.Now(),
	}
	if err := db.Create(&txn).Error; err != nil {
		return StarChange{NewBalance: balanceBefore}, err
	}

	student.Stars = balanceAfter
	if err := db.Save(&student).Error; err != nil {
		return StarChange{NewBalance: balanceBefore}, err
	}

	change.NewLevel = GetLevel(db, balanceAfter)
	change.Changed = levelNumber(change.OldLevel) != levelNumber(change.NewLevel)
	return change, nil
}

func levelNumber(l *gamifyModels.Level) int {
	if l == nil {
		return 0
	}
	return l.Number
}
