package gamify

import (
	"testing"

	"github.com/stretchr/testify/require"

	gamifyModels "studytask/models/gamify"
)

func TestUpdateStarsAppliesDelta(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, 10)

	change, err := UpdateStars(db, student.ID, 15, "test credit")
	require.NoError(t, err)
	require.Equal(t, 25, change.NewBalance)

	var balance int
	require.NoError(t, db.Table("students").Where("id = ?", student.ID).
		Pluck("stars", &balance).Error)
	require.Equal(t, 25, balance)

	var txn gamifyModels.StarTransaction
	require.NoError(t, db.Where("student_id = ?", student.ID).First(&txn).Error)
	require.Equal(t, 15, txn.Delta)
	require.Equal(t, 10, txn.BalanceBefore)
	require.Equal(t, 25, txn.BalanceAfter)
	require.Equal(t, "test credit", txn.Reason)
}

func TestUpdateStarsClampsAtZero(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, 3)

	change, err := UpdateStars(db, student.ID, -10, "penalty")
	require.NoError(t, err)
	require.Equal(t, 0, change.NewBalance)

	var balance int
	require.NoError(t, db.Table("students").Where("id = ?", student.ID).
		Pluck("stars", &balance).Error)
	require.Equal(t, 0, balance)

	// The audit row keeps the requested delta, not the applied one.
	var txn gamifyModels.StarTransaction
	require.NoError(t, db.Where("student_id = ?", student.ID).First(&txn).Error)
	require.Equal(t, -10, txn.Delta)
	require.Equal(t, 3, txn.BalanceBefore)
	require.Equal(t, 0, txn.BalanceAfter)
}

func TestUpdateStarsMissingStudent(t *testing.T) {
	db := newTestDB(t)

	_, err := UpdateStars(db, 9999, 5, "noone")
	require.Error(t, err)
}

func TestGetLevelHalfOpenRanges(t *testing.T) {
	db := newTestDB(t)
	seedLevels(t, db, 3)

	// [0,100) is level 1, [100,200) is level 2.
	level := GetLevel(db, 99)
	require.NotNil(t, level)
	require.Equal(t, 1, level.Number)

	level = GetLevel(db, 100)
	require.NotNil(t, level)
	require.Equal(t, 2, level.Number)

	level = GetLevel(db, 0)
	require.NotNil(t, level)
	require.Equal(t, 1, level.Number)
}

func TestGetLevelNoMatch(t *testing.T) {
	db := newTestDB(t)
	seedLevels(t, db, 2)

	require.Nil(t, GetLevel(db, 200))
	require.Nil(t, GetLevel(db, -1))
}

func TestUpdateStarsReportsLevelChange(t *testing.T) {
	db := newTestDB(t)
	seedLevels(t, db, 3)
	student := createStudent(t, db, 95)

	change, err := UpdateStars(db, student.ID, 10, "crossing")
	require.NoError(t, err)
	require.True(t, change.Changed)
	require.NotNil(t, change.OldLevel)
	require.NotNil(t, change.NewLevel)
	require.Equal(t, 1, change.OldLevel.Number)
	require.Equal(t, 2, change.NewLevel.Number)

	change, err = UpdateStars(db, student.ID, 10, "staying")
	require.NoError(t, err)
	require.False(t, change.Changed)
}
