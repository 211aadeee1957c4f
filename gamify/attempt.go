package gamify

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"studytask/models"
	courseModels "studytask/models/course"
	"studytask/utils"
)

// Quiz evaluation tunables. Overridden from config at startup.
var (
	PassThreshold = 70 // minimum percent to pass
	PenaltyUnit   = 5  // stars deducted per failed attempt, times attempt number
)

var ErrQuizNotFound = errors.New("quiz not found")

// SubmitAttempt scores a quiz submission and persists an immutable
// attempt record. answers maps question ID to the chosen answer ID.
//
// On failure the star penalty is attempt_number * PenaltyUnit, applied
// through the ledger. A separate first-attempt perfect-score bonus
// pays the quiz's star reward once per (student, quiz) pair, gated by
// the QuizResult marker. The whole pipeline runs in one transaction.
func SubmitAttempt(db *gorm.DB, studentID, quizID uint, answers map[uint]uint) (*courseModels.QuizAttempt, error) {
	var quiz courseModels.Quiz
	if err := db.Where("id = ? AND is_active = true AND is_deleted = false", quizID).
		First(&quiz).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrQuizNotFound
		}
		return nil, err
	}

	var questions []courseModels.Question
	if err := db.Where("quiz_id = ? AND is_deleted = false", quizID).Find(&questions).Error; err != nil {
		return nil, err
	}

	// Map each question to its correct answer. The evaluator assumes a
	// single correct answer; the first one found wins.
	correct := make(map[uint]uint, len(questions))
	for _, q := range questions {
		var answer courseModels.Answer
		err := db.Where("question_id = ? AND is_correct = true AND is_deleted = false", q.ID).
			Order("id asc").First(&answer).Error
		if err == gorm.ErrRecordNotFound {
			continue
		}
		if err != nil {
			return nil, err
		}
		correct[q.ID] = answer.ID
	}

	correctCount := 0
	for questionID, answerID := range answers {
		if correct[questionID] == answerID && answerID != 0 {
			correctCount++
		}
	}

	percent := 0
	if len(questions) > 0 {
		percent = correctCount * 100 / len(questions)
	}
	passed := percent >= PassThreshold

	selectedJSON, err := json.Marshal(stringKeyed(answers))
	if err != nil {
		return nil, err
	}

	var attempt *courseModels.QuizAttempt
	err = db.Transaction(func(tx *gorm.DB) error {
		var lastNumber int
		row := tx.Model(&courseModels.QuizAttempt{}).
			Where("student_id = ? AND quiz_id = ? AND is_deleted = false", studentID, quizID).
			Select("COALESCE(MAX(attempt_number), 0)")
		if err := row.Scan(&lastNumber).Error; err != nil {
			return err
		}
		attemptNumber := lastNumber + 1

		penalty := 0
		if !passed {
			penalty = attemptNumber * PenaltyUnit
		}

		record := courseModels.QuizAttempt{
			StudentID:       studentID,
			QuizID:          quizID,
			AttemptNumber:   attemptNumber,
			Score:           percent,
			Passed:          passed,
			StarsPenalty:    penalty,
			SelectedAnswers: datatypes.JSON(selectedJSON),
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		if penalty > 0 {
			reason := fmt.Sprintf("Quiz \"%s\" failed, attempt %d", quiz.Title, attemptNumber)
			if _, err := UpdateStars(tx, studentID, -penalty, reason); err != nil {
				return err
			}
		}

		// One-shot perfect-score bonus, first attempt only. The unique
		// (student, quiz) index on quiz_results keeps this idempotent
		// even under a racing duplicate submission.
		var result courseModels.QuizResult
		err := tx.Where("student_id = ? AND quiz_id = ? AND is_deleted = false", studentID, quizID).
			First(&result).Error
		if err == gorm.ErrRecordNotFound {
			result = courseModels.QuizResult{
				StudentID:      studentID,
				QuizID:         quizID,
				Score:          percent,
				TotalQuestions: len(questions),
			}
			if err := tx.Create(&result).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		if attemptNumber == 1 && passed && percent == 100 && !result.StarsGiven && quiz.Stars > 0 {
			if _, err := UpdateStars(tx, studentID, quiz.Stars, "Perfect score on quiz \""+quiz.Title+"\""); err != nil {
				return err
			}
			result.StarsGiven = true
			if err := tx.Save(&result).Error; err != nil {
				return err
			}
			utils.Notify(tx, studentID, models.NotifStarsAwarded,
				"Perfect score! +"+strconv.Itoa(quiz.Stars)+" stars for quiz \""+quiz.Title+"\"")
		}

		attempt = &record
		return nil
	})
	if err != nil {
		return nil, err
	}
	return attempt, nil
}

// CanAttemptQuiz is the eligibility gate checked before evaluation:
// the student must either have the quiz directly assigned, or be
// enrolled in a course containing the quiz's module with every lesson
// of that module completed and the module not blocked. Returns a
// user-visible reason on rejection.
func CanAttemptQuiz(db *gorm.DB, studentID, quizID uint) (bool, string, error) {
	// Direct assignment bypasses the module gate.
	var assigned int64
	if err := db.Table("student_assigned_quizzes").
		Where("student_id = ? AND quiz_id = ?", studentID, quizID).
		Count(&assigned).Error; err != nil {
		return false, "", err
	}
	if assigned > 0 {
		return true, "", nil
	}

	var moduleIDs []uint
	if err := db.Table("module_quizzes").
		Where("quiz_id = ?", quizID).
		Pluck("module_id", &moduleIDs).Error; err != nil {
		return false, "", err
	}
	if len(moduleIDs) == 0 {
		return false, "Quiz is not available to you.", nil
	}

	var blockedIDs []uint
	if err := db.Table("student_blocked_modules").
		Where("student_id = ?", studentID).
		Pluck("module_id", &blockedIDs).Error; err != nil {
		return false, "", err
	}
	blocked := make(map[uint]bool, len(blockedIDs))
	for _, id := range blockedIDs {
		blocked[id] = true
	}

	var enrolledCourseIDs []uint
	if err := db.Table("student_courses").
		Where("student_id = ?", studentID).
		Pluck("course_id", &enrolledCourseIDs).Error; err != nil {
		return false, "", err
	}
	if len(enrolledCourseIDs) == 0 {
		return false, "You are not enrolled in a course containing this quiz.", nil
	}

	lessonsPending := false
	for _, moduleID := range moduleIDs {
		if blocked[moduleID] {
			continue
		}

		var courseIDs []uint
		if err := db.Table("course_modules").
			Where("module_id = ? AND course_id IN ?", moduleID, enrolledCourseIDs).
			Pluck("course_id", &courseIDs).Error; err != nil {
			return false, "", err
		}

		for _, courseID := range courseIDs {
			done, err := moduleLessonsDone(db, studentID, courseID, moduleID)
			if err != nil {
				return false, "", err
			}
			if done {
				return true, "", nil
			}
			lessonsPending = true
		}
	}

	if lessonsPending {
		return false, "Complete all lessons of the module before taking its quiz.", nil
	}
	return false, "You are not enrolled in a course containing this quiz.", nil
}

func moduleLessonsDone(db *gorm.DB, studentID, courseID, moduleID uint) (bool, error) {
	var lessonIDs []uint
	if err := db.Table("module_lessons").
		Where("module_id = ?", moduleID).
		Pluck("lesson_id", &lessonIDs).Error; err != nil {
		return false, err
	}
	for _, lessonID := range lessonIDs {
		var count int64
		if err := db.Model(&courseModels.LessonCompletion{}).
			Where("student_id = ? AND course_id = ? AND lesson_id = ? AND is_deleted = false",
				studentID, courseID, lessonID).
			Count(&count).Error; err != nil {
			return false, err
		}
		if count == 0 {
			return false, nil
		}
	}
	return true, nil
}

func stringKeyed(answers map[uint]uint) map[string]uint {
	out := make(map[string]uint, len(answers))
	for q, a := range answers {
		out[strconv.FormatUint(uint64(q), 10)] = a
	}
	return out
}
