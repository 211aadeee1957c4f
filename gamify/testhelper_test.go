package gamify

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"studytask/models"
	courseModels "studytask/models/course"
	gamifyModels "studytask/models/gamify"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Student{},
		&models.Notification{},
		&courseModels.Course{},
		&courseModels.Module{},
		&courseModels.Lesson{},
		&courseModels.Quiz{},
		&courseModels.Question{},
		&courseModels.Answer{},
		&courseModels.StudentProgress{},
		&courseModels.LessonCompletion{},
		&courseModels.ModuleCompletion{},
		&courseModels.QuizAttempt{},
		&courseModels.QuizResult{},
		&courseModels.CourseCompletion{},
		&gamifyModels.Level{},
		&gamifyModels.Achievement{},
		&gamifyModels.StudentAchievement{},
		&gamifyModels.StarTransaction{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func createStudent(t *testing.T, db *gorm.DB, stars int) *models.Student {
	t.Helper()

	testUserCounter++
	user := models.User{
		Name:     "Test Student",
		Email:    fmt.Sprintf("student%d@example.com", testUserCounter),
		Password: "x",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	student := models.Student{UserID: user.ID, Stars: stars}
	if err := db.Create(&student).Error; err != nil {
		t.Fatalf("failed to create student: %v", err)
	}
	return &student
}

// buildCourse wires a course with one module holding the given lessons
// and quizzes, and enrolls the student.
func buildCourse(t *testing.T, db *gorm.DB, student *models.Student, lessons []courseModels.Lesson, quizzes []courseModels.Quiz) (*courseModels.Course, *courseModels.Module) {
	t.Helper()

	module := courseModels.Module{Title: "Module 1"}
	if err := db.Create(&module).Error; err != nil {
		t.Fatalf("failed to create module: %v", err)
	}

	for i := range lessons {
		if lessons[i].ID == 0 {
			if err := db.Create(&lessons[i]).Error; err != nil {
				t.Fatalf("failed to create lesson: %v", err)
			}
		}
		if err := db.Model(&module).Association("Lessons").Append(&lessons[i]); err != nil {
			t.Fatalf("failed to attach lesson: %v", err)
		}
	}
	for i := range quizzes {
		if quizzes[i].ID == 0 {
			if err := db.Create(&quizzes[i]).Error; err != nil {
				t.Fatalf("failed to create quiz: %v", err)
			}
		}
		if err := db.Model(&module).Association("Quizzes").Append(&quizzes[i]); err != nil {
			t.Fatalf("failed to attach quiz: %v", err)
		}
	}

	course := courseModels.Course{Title: "Course 1", CourseCode: randomCode(t, db)}
	if err := db.Create(&course).Error; err != nil {
		t.Fatalf("failed to create course: %v", err)
	}
	if err := db.Model(&course).Association("Modules").Append(&module); err != nil {
		t.Fatalf("failed to attach module: %v", err)
	}

	if err := db.Model(student).Association("Courses").Append(&course); err != nil {
		t.Fatalf("failed to enroll student: %v", err)
	}
	return &course, &module
}

var (
	testUserCounter int
	testCodeCounter int
)

func randomCode(t *testing.T, db *gorm.DB) string {
	t.Helper()
	testCodeCounter++
	return fmt.Sprintf("T%04d", testCodeCounter)
}

// makeQuiz builds an active quiz with the requested number of
// questions, two answers each, the first one correct.
func makeQuiz(t *testing.T, db *gorm.DB, title string, bonusStars, questionCount int) *courseModels.Quiz {
	t.Helper()

	quiz := courseModels.Quiz{Title: title, Stars: bonusStars, IsActive: true}
	if err := db.Create(&quiz).Error; err != nil {
		t.Fatalf("failed to create quiz: %v", err)
	}

	for i := 0; i < questionCount; i++ {
		question := courseModels.Question{
			QuizID: quiz.ID,
			Text:   "Question",
			Answers: []courseModels.Answer{
				{Text: "Right", IsCorrect: true},
				{Text: "Wrong", IsCorrect: false},
			},
		}
		if err := db.Create(&question).Error; err != nil {
			t.Fatalf("failed to create question: %v", err)
		}
	}
	return &quiz
}

// correctAnswers builds a full-marks submission for the quiz.
func correctAnswers(t *testing.T, db *gorm.DB, quizID uint) map[uint]uint {
	t.Helper()

	var questions []courseModels.Question
	if err := db.Where("quiz_id = ?", quizID).Find(&questions).Error; err != nil {
		t.Fatalf("failed to load questions: %v", err)
	}

	answers := make(map[uint]uint, len(questions))
	for _, q := range questions {
		var right courseModels.Answer
		if err := db.Where("question_id = ? AND is_correct = true", q.ID).First(&right).Error; err != nil {
			t.Fatalf("failed to load correct answer: %v", err)
		}
		answers[q.ID] = right.ID
	}
	return answers
}

// wrongAnswers builds a zero-marks submission for the quiz.
func wrongAnswers(t *testing.T, db *gorm.DB, quizID uint) map[uint]uint {
	t.Helper()

	var questions []courseModels.Question
	if err := db.Where("quiz_id = ?", quizID).Find(&questions).Error; err != nil {
		t.Fatalf("failed to load questions: %v", err)
	}

	answers := make(map[uint]uint, len(questions))
	for _, q := range questions {
		var wrong courseModels.Answer
		if err := db.Where("question_id = ? AND is_correct = false", q.ID).First(&wrong).Error; err != nil {
			t.Fatalf("failed to load wrong answer: %v", err)
		}
		answers[q.ID] = wrong.ID
	}
	return answers
}

func seedLevels(t *testing.T, db *gorm.DB, count int) {
	t.Helper()

	for i := 1; i <= count; i++ {
		level := gamifyModels.Level{
			Number:   i,
			Name:     "Level",
			MinStars: (i - 1) * 100,
			MaxStars: i * 100,
		}
		if err := db.Create(&level).Error; err != nil {
			t.Fatalf("failed to seed level %d: %v", i, err)
		}
	}
}
