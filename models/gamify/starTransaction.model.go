package gamify

import (
	"time"

	"gorm.io/gorm"
)

// StarTransaction is the audit row written for every star balance
// mutation.
type StarTransaction struct {
	gorm.Model
	StudentID       uint      `json:"student_id" gorm:"index;not null"`
	Delta           int       `json:"delta"` // requested change, may differ from applied when clamped
	BalanceBefore   int       `json:"balance_before"`
	BalanceAfter    int       `json:"balance_after"`
	Reason          string    `json:"reason"`
	TransactionDate time.Time `json:"transaction_date"`
	IsDeleted       bool      `gorm:"default:false"`
}
