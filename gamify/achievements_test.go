package gamify

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	courseModels "studytask/models/course"
	gamifyModels "studytask/models/gamify"
)

func seedAchievement(t *testing.T, db *gorm.DB, code, condType string, value int) *gamifyModels.Achievement {
	t.Helper()

	achievement := gamifyModels.Achievement{
		Code:           code,
		Title:          "Achievement " + code,
		ConditionType:  condType,
		ConditionValue: value,
		IsActive:       true,
	}
	if err := db.Create(&achievement).Error; err != nil {
		t.Fatalf("failed to seed achievement: %v", err)
	}
	return &achievement
}

func passQuizTimes(t *testing.T, db *gorm.DB, studentID, quizID uint, times int) {
	t.Helper()

	for n := 1; n <= times; n++ {
		attempt := courseModels.QuizAttempt{
			StudentID:     studentID,
			QuizID:        quizID,
			AttemptNumber: n,
			Score:         80,
			Passed:        true,
		}
		if err := db.Create(&attempt).Error; err != nil {
			t.Fatalf("failed to create attempt: %v", err)
		}
	}
}

func TestEvaluateAchievementsUnlocksAtThreshold(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, 0)
	quiz := makeQuiz(t, db, "Quiz", 0, 2)
	seedAchievement(t, db, "quiz_3", gamifyModels.CondPassedQuizzes, 3)

	passQuizTimes(t, db, student.ID, quiz.ID, 2)
	unlocked := EvaluateAchievements(db, student.ID)
	require.Empty(t, unlocked)

	passQuizTimes(t, db, student.ID, quiz.ID, 1)
	unlocked = EvaluateAchievements(db, student.ID)
	require.Len(t, unlocked, 1)
	require.Equal(t, "quiz_3", unlocked[0].Code)

	var count int64
	require.NoError(t, db.Model(&gamifyModels.StudentAchievement{}).
		Where("student_id = ?", student.ID).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestEvaluateAchievementsIdempotent(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, 0)
	quiz := makeQuiz(t, db, "Quiz", 0, 2)
	seedAchievement(t, db, "quiz_1", gamifyModels.CondPassedQuizzes, 1)

	passQuizTimes(t, db, student.ID, quiz.ID, 1)

	unlocked := EvaluateAchievements(db, student.ID)
	require.Len(t, unlocked, 1)

	// Nothing new on the second pass.
	unlocked = EvaluateAchievements(db, student.ID)
	require.Empty(t, unlocked)

	var count int64
	require.NoError(t, db.Model(&gamifyModels.StudentAchievement{}).
		Where("student_id = ?", student.ID).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestEvaluateAchievementsSkipsInactive(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, 100)

	active := seedAchievement(t, db, "stars_50", gamifyModels.CondTotalStars, 50)
	inactive := seedAchievement(t, db, "stars_10", gamifyModels.CondTotalStars, 10)
	require.NoError(t, db.Model(inactive).Update("is_active", false).Error)

	unlocked := EvaluateAchievements(db, student.ID)
	require.Len(t, unlocked, 1)
	require.Equal(t, active.Code, unlocked[0].Code)
}

func TestEvaluateAchievementsUnlocksSeveralAtOnce(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, 300)

	seedAchievement(t, db, "stars_100", gamifyModels.CondTotalStars, 100)
	seedAchievement(t, db, "stars_250", gamifyModels.CondTotalStars, 250)
	seedAchievement(t, db, "stars_500", gamifyModels.CondTotalStars, 500)

	unlocked := EvaluateAchievements(db, student.ID)
	require.Len(t, unlocked, 2)
}

func TestAchievementProgressPercentage(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, 0)
	quiz := makeQuiz(t, db, "Quiz", 0, 2)
	achievement := seedAchievement(t, db, "quiz_10", gamifyModels.CondPassedQuizzes, 10)

	passQuizTimes(t, db, student.ID, quiz.ID, 9)

	progress := AchievementProgress(db, student.ID, achievement)
	require.Equal(t, 9, progress.Current)
	require.Equal(t, 10, progress.Target)
	require.Equal(t, 90, progress.Percentage)

	// Overshooting caps at 100.
	for n := 10; n <= 12; n++ {
		attempt := courseModels.QuizAttempt{
			StudentID: student.ID, QuizID: quiz.ID, AttemptNumber: n, Score: 80, Passed: true,
		}
		require.NoError(t, db.Create(&attempt).Error)
	}

	progress = AchievementProgress(db, student.ID, achievement)
	require.Equal(t, 12, progress.Current)
	require.Equal(t, 100, progress.Percentage)
}

func TestAchievementProgressTargetFloor(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, 0)

	achievement := seedAchievement(t, db, "zeroed", gamifyModels.CondPassedQuizzes, 0)

	// A non-positive threshold is treated as target 1.
	progress := AchievementProgress(db, student.ID, achievement)
	require.Equal(t, 1, progress.Target)
	require.Equal(t, 0, progress.Percentage)
}

func TestAchievementProgressUnknownConditionReadsZero(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, 0)

	achievement := &gamifyModels.Achievement{
		Code:           "strange",
		Title:          "Strange",
		ConditionType:  "not_a_metric",
		ConditionValue: 5,
		IsActive:       true,
	}
	require.NoError(t, db.Create(achievement).Error)

	progress := AchievementProgress(db, student.ID, achievement)
	require.Equal(t, 0, progress.Current)
	require.Equal(t, 0, progress.Percentage)
}
