package gamify

import (
	"testing"

	"github.com/stretchr/testify/require"

	courseModels "studytask/models/course"
)

func TestComputeMetricsCountsPassingAttempts(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, 0)
	quiz := makeQuiz(t, db, "Quiz", 0, 2)

	// Two passing attempts on the same quiz both count: the metric
	// counts attempts, not distinct quizzes.
	for n := 1; n <= 2; n++ {
		attempt := courseModels.QuizAttempt{
			StudentID:     student.ID,
			QuizID:        quiz.ID,
			AttemptNumber: n,
			Score:         80,
			Passed:        true,
		}
		require.NoError(t, db.Create(&attempt).Error)
	}

	metrics := ComputeMetrics(db, student.ID)
	require.Equal(t, 2, metrics.PassedQuizzes)
	require.Equal(t, 0, metrics.PerfectQuizzes)
}

func TestComputeMetricsPerfectAndCourses(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, 120)
	seedLevels(t, db, 3)
	quiz := makeQuiz(t, db, "Quiz", 0, 2)

	perfect := courseModels.QuizAttempt{
		StudentID: student.ID, QuizID: quiz.ID, AttemptNumber: 1, Score: 100, Passed: true,
	}
	require.NoError(t, db.Create(&perfect).Error)

	// Only completions with the payout flag count.
	paid := courseModels.CourseCompletion{StudentID: student.ID, CourseID: 1, StarsGiven: true}
	pending := courseModels.CourseCompletion{StudentID: student.ID, CourseID: 2, StarsGiven: false}
	require.NoError(t, db.Create(&paid).Error)
	require.NoError(t, db.Create(&pending).Error)

	metrics := ComputeMetrics(db, student.ID)
	require.Equal(t, 1, metrics.PassedQuizzes)
	require.Equal(t, 1, metrics.PerfectQuizzes)
	require.Equal(t, 1, metrics.CompletedCourses)
	require.Equal(t, 120, metrics.TotalStars)
	require.Equal(t, 2, metrics.LevelReached)
}

func TestComputeMetricsFallbackShape(t *testing.T) {
	db := newTestDB(t)

	// Unknown student degrades to the zeroed level-1 summary.
	metrics := ComputeMetrics(db, 9999)
	require.Equal(t, Metrics{LevelReached: 1}, metrics)
}

func TestComputeMetricsDefaultLevelWithoutSeed(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, 500)

	// No levels defined: level reached stays 1.
	metrics := ComputeMetrics(db, student.ID)
	require.Equal(t, 1, metrics.LevelReached)
	require.Equal(t, 500, metrics.TotalStars)
}

func TestValueForConditionTypes(t *testing.T) {
	metrics := Metrics{
		PassedQuizzes:    3,
		PerfectQuizzes:   2,
		CompletedCourses: 1,
		TotalStars:       42,
		LevelReached:     4,
	}

	require.Equal(t, 3, metrics.ValueFor("passed_quizzes"))
	require.Equal(t, 2, metrics.ValueFor("perfect_quizzes"))
	require.Equal(t, 1, metrics.ValueFor("completed_courses"))
	require.Equal(t, 42, metrics.ValueFor("total_stars"))
	require.Equal(t, 4, metrics.ValueFor("level_reached"))
	require.Equal(t, -1, metrics.ValueFor("bogus_condition"))
}
