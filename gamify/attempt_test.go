package gamify

import (
	"testing"

	"github.com/stretchr/testify/require"

	courseModels "studytask/models/course"
)

func TestSubmitAttemptScoresAndPasses(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, 50)
	quiz := makeQuiz(t, db, "Fractions", 0, 5)

	answers := correctAnswers(t, db, quiz.ID)
	// Spoil one question: 4/5 correct is 80 percent.
	for q := range answers {
		answers[q] = 0
		break
	}

	attempt, err := SubmitAttempt(db, student.ID, quiz.ID, answers)
	require.NoError(t, err)
	require.Equal(t, 1, attempt.AttemptNumber)
	require.Equal(t, 80, attempt.Score)
	require.True(t, attempt.Passed)
	require.Equal(t, 0, attempt.StarsPenalty)

	var balance int
	require.NoError(t, db.Table("students").Where("id = ?", student.ID).
		Pluck("stars", &balance).Error)
	require.Equal(t, 50, balance)
}

func TestSubmitAttemptFailurePenaltyGrowsWithAttempts(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, 50)
	quiz := makeQuiz(t, db, "Decimals", 0, 5)

	wrong := wrongAnswers(t, db, quiz.ID)

	attempt, err := SubmitAttempt(db, student.ID, quiz.ID, wrong)
	require.NoError(t, err)
	require.Equal(t, 1, attempt.AttemptNumber)
	require.Equal(t, 0, attempt.Score)
	require.False(t, attempt.Passed)
	require.Equal(t, 5, attempt.StarsPenalty)

	attempt, err = SubmitAttempt(db, student.ID, quiz.ID, wrong)
	require.NoError(t, err)
	require.Equal(t, 2, attempt.AttemptNumber)
	require.Equal(t, 10, attempt.StarsPenalty)

	// 50 - 5 - 10.
	var balance int
	require.NoError(t, db.Table("students").Where("id = ?", student.ID).
		Pluck("stars", &balance).Error)
	require.Equal(t, 35, balance)
}

func TestSubmitAttemptPenaltyClampsBalance(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, 2)
	quiz := makeQuiz(t, db, "Geometry", 0, 4)

	wrong := wrongAnswers(t, db, quiz.ID)
	attempt, err := SubmitAttempt(db, student.ID, quiz.ID, wrong)
	require.NoError(t, err)
	require.Equal(t, 5, attempt.StarsPenalty)

	var balance int
	require.NoError(t, db.Table("students").Where("id = ?", student.ID).
		Pluck("stars", &balance).Error)
	require.Equal(t, 0, balance)
}

func TestSubmitAttemptPerfectFirstAttemptBonus(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, 0)
	quiz := makeQuiz(t, db, "Algebra", 7, 3)

	attempt, err := SubmitAttempt(db, student.ID, quiz.ID, correctAnswers(t, db, quiz.ID))
	require.NoError(t, err)
	require.Equal(t, 100, attempt.Score)
	require.True(t, attempt.Passed)

	var balance int
	require.NoError(t, db.Table("students").Where("id = ?", student.ID).
		Pluck("stars", &balance).Error)
	require.Equal(t, 7, balance)

	var result courseModels.QuizResult
	require.NoError(t, db.Where("student_id = ? AND quiz_id = ?", student.ID, quiz.ID).
		First(&result).Error)
	require.True(t, result.StarsGiven)

	// A second perfect run pays nothing more.
	_, err = SubmitAttempt(db, student.ID, quiz.ID, correctAnswers(t, db, quiz.ID))
	require.NoError(t, err)
	require.NoError(t, db.Table("students").Where("id = ?", student.ID).
		Pluck("stars", &balance).Error)
	require.Equal(t, 7, balance)
}

func TestSubmitAttemptNoBonusOnSecondAttemptPerfect(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, 20)
	quiz := makeQuiz(t, db, "History", 7, 3)

	// Fail the first attempt, then ace the second.
	_, err := SubmitAttempt(db, student.ID, quiz.ID, wrongAnswers(t, db, quiz.ID))
	require.NoError(t, err)

	attempt, err := SubmitAttempt(db, student.ID, quiz.ID, correctAnswers(t, db, quiz.ID))
	require.NoError(t, err)
	require.Equal(t, 2, attempt.AttemptNumber)
	require.Equal(t, 100, attempt.Score)

	// 20 minus the attempt-1 penalty, no bonus.
	var balance int
	require.NoError(t, db.Table("students").Where("id = ?", student.ID).
		Pluck("stars", &balance).Error)
	require.Equal(t, 15, balance)

	var result courseModels.QuizResult
	require.NoError(t, db.Where("student_id = ? AND quiz_id = ?", student.ID, quiz.ID).
		First(&result).Error)
	require.False(t, result.StarsGiven)
}

func TestSubmitAttemptUnknownQuiz(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, 0)

	_, err := SubmitAttempt(db, student.ID, 424242, map[uint]uint{1: 1})
	require.ErrorIs(t, err, ErrQuizNotFound)
}

func TestSubmitAttemptInactiveQuiz(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, 0)
	quiz := makeQuiz(t, db, "Retired", 0, 2)
	require.NoError(t, db.Model(quiz).Update("is_active", false).Error)

	_, err := SubmitAttempt(db, student.ID, quiz.ID, map[uint]uint{1: 1})
	require.ErrorIs(t, err, ErrQuizNotFound)
}

func TestCanAttemptQuizRequiresEnrollment(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, 0)
	outsider := createStudent(t, db, 0)

	quiz := makeQuiz(t, db, "Quiz", 0, 2)
	buildCourse(t, db, student, nil, []courseModels.Quiz{*quiz})

	ok, reason, err := CanAttemptQuiz(db, outsider.ID, quiz.ID)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, "You are not enrolled in a course containing this quiz.", reason)
}

func TestCanAttemptQuizUnattachedQuiz(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, 0)
	quiz := makeQuiz(t, db, "Orphan", 0, 2)

	ok, reason, err := CanAttemptQuiz(db, student.ID, quiz.ID)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, "Quiz is not available to you.", reason)
}

func TestCanAttemptQuizGatedByLessons(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, 0)

	lessons := []courseModels.Lesson{{Title: "Intro"}}
	quiz := makeQuiz(t, db, "Quiz", 0, 2)
	course, _ := buildCourse(t, db, student, lessons, []courseModels.Quiz{*quiz})

	ok, reason, err := CanAttemptQuiz(db, student.ID, quiz.ID)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, "Complete all lessons of the module before taking its quiz.", reason)

	_, err = MarkLessonComplete(db, student.ID, course.ID, lessons[0].ID)
	require.NoError(t, err)

	ok, reason, err = CanAttemptQuiz(db, student.ID, quiz.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Empty(t, reason)
}

func TestCanAttemptQuizBlockedModule(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, 0)

	lessons := []courseModels.Lesson{{Title: "Intro"}}
	quiz := makeQuiz(t, db, "Quiz", 0, 2)
	course, module := buildCourse(t, db, student, lessons, []courseModels.Quiz{*quiz})

	_, err := MarkLessonComplete(db, student.ID, course.ID, lessons[0].ID)
	require.NoError(t, err)

	require.NoError(t, db.Exec(
		"INSERT INTO student_blocked_modules (student_id, module_id) VALUES (?, ?)",
		student.ID, module.ID).Error)

	ok, _, err := CanAttemptQuiz(db, student.ID, quiz.ID)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCanAttemptQuizDirectAssignmentBypassesGates(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, 0)
	quiz := makeQuiz(t, db, "Homework Quiz", 0, 2)

	// Not enrolled anywhere, quiz not in any module.
	require.NoError(t, db.Exec(
		"INSERT INTO student_assigned_quizzes (student_id, quiz_id) VALUES (?, ?)",
		student.ID, quiz.ID).Error)

	ok, reason, err := CanAttemptQuiz(db, student.ID, quiz.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Empty(t, reason)
}
