package gamify

import (
	"testing"

	"github.com/stretchr/testify/require"

	courseModels "studytask/models/course"
)

func TestComputeProgressEmptyCourse(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, 0)

	course := courseModels.Course{Title: "Empty", CourseCode: randomCode(t, db)}
	require.NoError(t, db.Create(&course).Error)

	progress, err := ComputeProgress(db, student.ID, course.ID)
	require.NoError(t, err)
	require.Equal(t, 0, progress)
}

func TestComputeProgressFloorsPercentage(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, 0)

	lessons := []courseModels.Lesson{{Title: "A"}, {Title: "B"}, {Title: "C"}}
	course, _ := buildCourse(t, db, student, lessons, nil)

	// 1 of 3 parts completed: floor(100/3) = 33.
	progress, err := MarkLessonComplete(db, student.ID, course.ID, lessons[0].ID)
	require.NoError(t, err)
	require.Equal(t, 33, progress)

	progress, err = MarkLessonComplete(db, student.ID, course.ID, lessons[1].ID)
	require.NoError(t, err)
	require.Equal(t, 66, progress)
}

func TestMarkLessonCompleteIdempotent(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, 0)

	lessons := []courseModels.Lesson{{Title: "A"}, {Title: "B"}}
	course, _ := buildCourse(t, db, student, lessons, nil)

	progress, err := MarkLessonComplete(db, student.ID, course.ID, lessons[0].ID)
	require.NoError(t, err)
	require.Equal(t, 50, progress)

	// Marking again neither fails nor inflates the percentage.
	progress, err = MarkLessonComplete(db, student.ID, course.ID, lessons[0].ID)
	require.NoError(t, err)
	require.Equal(t, 50, progress)

	var count int64
	require.NoError(t, db.Model(&courseModels.LessonCompletion{}).
		Where("student_id = ? AND course_id = ?", student.ID, course.ID).
		Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestProgressCountsLessonsAndQuizzesTogether(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, 0)

	lessons := []courseModels.Lesson{{Title: "A"}}
	quiz := makeQuiz(t, db, "Quiz", 0, 2)
	course, _ := buildCourse(t, db, student, lessons, []courseModels.Quiz{*quiz})

	progress, err := MarkLessonComplete(db, student.ID, course.ID, lessons[0].ID)
	require.NoError(t, err)
	require.Equal(t, 50, progress)

	attempt := courseModels.QuizAttempt{
		StudentID:     student.ID,
		QuizID:        quiz.ID,
		AttemptNumber: 1,
		Score:         100,
		Passed:        true,
	}
	require.NoError(t, db.Create(&attempt).Error)

	progress, err = ComputeProgress(db, student.ID, course.ID)
	require.NoError(t, err)
	require.Equal(t, 100, progress)
}

func TestQuizCountedByLatestAttemptOnly(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, 0)

	quiz := makeQuiz(t, db, "Quiz", 0, 2)
	course, _ := buildCourse(t, db, student, nil, []courseModels.Quiz{*quiz})

	pass := courseModels.QuizAttempt{StudentID: student.ID, QuizID: quiz.ID, AttemptNumber: 1, Score: 100, Passed: true}
	require.NoError(t, db.Create(&pass).Error)

	progress, err := ComputeProgress(db, student.ID, course.ID)
	require.NoError(t, err)
	require.Equal(t, 100, progress)

	// A later failing attempt supersedes the pass.
	fail := courseModels.QuizAttempt{StudentID: student.ID, QuizID: quiz.ID, AttemptNumber: 2, Score: 0, Passed: false}
	require.NoError(t, db.Create(&fail).Error)

	progress, err = ComputeProgress(db, student.ID, course.ID)
	require.NoError(t, err)
	require.Equal(t, 0, progress)
}

func TestRefreshProgressCachesRecord(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, 0)

	lessons := []courseModels.Lesson{{Title: "A"}, {Title: "B"}}
	course, _ := buildCourse(t, db, student, lessons, nil)

	_, err := MarkLessonComplete(db, student.ID, course.ID, lessons[0].ID)
	require.NoError(t, err)

	var record courseModels.StudentProgress
	require.NoError(t, db.Where("student_id = ? AND course_id = ?", student.ID, course.ID).
		First(&record).Error)
	require.Equal(t, 50, record.Progress)

	_, err = MarkLessonComplete(db, student.ID, course.ID, lessons[1].ID)
	require.NoError(t, err)

	// Same row updated, not a second one.
	var count int64
	require.NoError(t, db.Model(&courseModels.StudentProgress{}).
		Where("student_id = ?", student.ID).Count(&count).Error)
	require.Equal(t, int64(1), count)

	require.NoError(t, db.Where("student_id = ? AND course_id = ?", student.ID, course.ID).
		First(&record).Error)
	require.Equal(t, 100, record.Progress)
}

func TestIsCompletedStricterThanFullProgress(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, 0)

	lessons := []courseModels.Lesson{{Title: "A"}}
	course, module := buildCourse(t, db, student, lessons, nil)

	progress, err := MarkLessonComplete(db, student.ID, course.ID, lessons[0].ID)
	require.NoError(t, err)
	require.Equal(t, 100, progress)

	// Full percentage alone does not complete the course; the module
	// completion record is still missing.
	completed, err := IsCompleted(db, student.ID, course.ID)
	require.NoError(t, err)
	require.False(t, completed)

	marked, err := MarkModuleComplete(db, student.ID, course.ID, module.ID)
	require.NoError(t, err)
	require.True(t, marked)

	completed, err = IsCompleted(db, student.ID, course.ID)
	require.NoError(t, err)
	require.True(t, completed)
}

func TestIsCompletedFalseForCourseWithoutModules(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, 0)

	course := courseModels.Course{Title: "Hollow", CourseCode: randomCode(t, db)}
	require.NoError(t, db.Create(&course).Error)

	completed, err := IsCompleted(db, student.ID, course.ID)
	require.NoError(t, err)
	require.False(t, completed)
}

func TestMarkModuleCompleteRefusesUnfinishedModule(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, 0)

	lessons := []courseModels.Lesson{{Title: "A"}, {Title: "B"}}
	course, module := buildCourse(t, db, student, lessons, nil)

	_, err := MarkLessonComplete(db, student.ID, course.ID, lessons[0].ID)
	require.NoError(t, err)

	marked, err := MarkModuleComplete(db, student.ID, course.ID, module.ID)
	require.NoError(t, err)
	require.False(t, marked)

	var count int64
	require.NoError(t, db.Model(&courseModels.ModuleCompletion{}).
		Where("student_id = ?", student.ID).Count(&count).Error)
	require.Equal(t, int64(0), count)
}

func TestAwardCourseStarsPaysOnce(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, 0)

	lessons := []courseModels.Lesson{{Title: "A"}}
	course, module := buildCourse(t, db, student, lessons, nil)
	require.NoError(t, db.Model(course).Update("stars", 40).Error)

	_, err := MarkLessonComplete(db, student.ID, course.ID, lessons[0].ID)
	require.NoError(t, err)
	_, err = MarkModuleComplete(db, student.ID, course.ID, module.ID)
	require.NoError(t, err)

	var fresh courseModels.Course
	require.NoError(t, db.First(&fresh, course.ID).Error)

	paid, err := AwardCourseStars(db, student.ID, &fresh)
	require.NoError(t, err)
	require.True(t, paid)

	var balance int
	require.NoError(t, db.Table("students").Where("id = ?", student.ID).
		Pluck("stars", &balance).Error)
	require.Equal(t, 40, balance)

	// Second call is a no-op.
	paid, err = AwardCourseStars(db, student.ID, &fresh)
	require.NoError(t, err)
	require.False(t, paid)

	require.NoError(t, db.Table("students").Where("id = ?", student.ID).
		Pluck("stars", &balance).Error)
	require.Equal(t, 40, balance)
}

func TestAwardCourseStarsRequiresCompletion(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, 0)

	lessons := []courseModels.Lesson{{Title: "A"}}
	course, _ := buildCourse(t, db, student, lessons, nil)
	require.NoError(t, db.Model(course).Update("stars", 40).Error)

	paid, err := AwardCourseStars(db, student.ID, course)
	require.NoError(t, err)
	require.False(t, paid)

	var count int64
	require.NoError(t, db.Model(&courseModels.CourseCompletion{}).Count(&count).Error)
	require.Equal(t, int64(0), count)
}
