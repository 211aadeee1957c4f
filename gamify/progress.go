package gamify

import (
	"gorm.io/gorm"

	"studytask/models"
	courseModels "studytask/models/course"
	"studytask/utils"
)

// CourseParts holds the union of lesson and quiz IDs across every
// module of a course.
type CourseParts struct {
	LessonIDs map[uint]bool
	QuizIDs   map[uint]bool
	ModuleIDs []uint
}

// Total returns the number of completable parts in the course.
func (p *CourseParts) Total() int {
	return len(p.LessonIDs) + len(p.QuizIDs)
}

// CollectCourseParts gathers all lesson and quiz IDs reachable from
// the course's modules.
func CollectCourseParts(db *gorm.DB, courseID uint) (*CourseParts, error) {
	parts := &CourseParts{
		LessonIDs: make(map[uint]bool),
		QuizIDs:   make(map[uint]bool),
	}

	if err := db.Table("course_modules").
		Where("course_id = ?", courseID).
		Pluck("module_id", &parts.ModuleIDs).Error; err != nil {
		return nil, err
	}

	if len(parts.ModuleIDs) == 0 {
		return parts, nil
	}

	var lessonIDs []uint
	if err := db.Table("module_lessons").
		Where("module_id IN ?", parts.ModuleIDs).
		Pluck("lesson_id", &lessonIDs).Error; err != nil {
		return nil, err
	}
	for _, id := range lessonIDs {
		parts.LessonIDs[id] = true
	}

	var quizIDs []uint
	if err := db.Table("module_quizzes").
		Where("module_id IN ?", parts.ModuleIDs).
		Pluck("quiz_id", &quizIDs).Error; err != nil {
		return nil, err
	}
	for _, id := range quizIDs {
		parts.QuizIDs[id] = true
	}

	return parts, nil
}

// passedQuizIDs returns the quizzes (restricted to the given set) whose
// latest attempt by the student is a pass. Latest means highest
// attempt number.
func passedQuizIDs(db *gorm.DB, studentID uint, quizIDs map[uint]bool) (map[uint]bool, error) {
	passed := make(map[uint]bool)
	if len(quizIDs) == 0 {
		return passed, nil
	}

	ids := make([]uint, 0, len(quizIDs))
	for id := range quizIDs {
		ids = append(ids, id)
	}

	var attempts []courseModels.QuizAttempt
	if err := db.Where("student_id = ? AND quiz_id IN ? AND is_deleted = false", studentID, ids).
		Order("attempt_number desc").
		Find(&attempts).Error; err != nil {
		return nil, err
	}

	seen := make(map[uint]bool)
	for _, a := range attempts {
		if seen[a.QuizID] {
			continue
		}
		seen[a.QuizID] = true
		if a.Passed {
			passed[a.QuizID] = true
		}
	}
	return passed, nil
}

// ComputeProgress computes the student's completion percentage for a
// course: floor(100 * completed parts / total parts), clamped to
// [0,100]. A course with no content yields 0.
func ComputeProgress(db *gorm.DB, studentID, courseID uint) (int, error) {
	parts, err := CollectCourseParts(db, courseID)
	if err != nil {
		return 0, err
	}

	total := parts.Total()
	if total == 0 {
		return 0, nil
	}

	var completions []courseModels.LessonCompletion
	if err := db.Where("student_id = ? AND course_id = ? AND is_deleted = false", studentID, courseID).
		Find(&completions).Error; err != nil {
		return 0, err
	}

	completed := 0
	for _, c := range completions {
		if parts.LessonIDs[c.LessonID] {
			completed++
		}
	}

	passed, err := passedQuizIDs(db, studentID, parts.QuizIDs)
	if err != nil {
		return 0, err
	}
	completed += len(passed)

	progress := completed * 100 / total
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	return progress, nil
}

// RefreshProgress recomputes the percentage and persists it into the
// cached StudentProgress record, creating the record on first use.
func RefreshProgress(db *gorm.DB, studentID, courseID uint) (int, error) {
	progress, err := ComputeProgress(db, studentID, courseID)
	if err != nil {
		return 0, err
	}

	var record courseModels.StudentProgress
	err = db.Where("student_id = ? AND course_id = ? AND is_deleted = false", studentID, courseID).
		First(&record).Error
	if err == gorm.ErrRecordNotFound {
		record = courseModels.StudentProgress{
			StudentID: studentID,
			CourseID:  courseID,
			Progress:  progress,
		}
		return progress, db.Create(&record).Error
	}
	if err != nil {
		return 0, err
	}

	record.Progress = progress
	return progress, db.Save(&record).Error
}

// MarkLessonComplete records a lesson as viewed and refreshes the
// cached percentage. Marking an already-completed lesson is a no-op.
func MarkLessonComplete(db *gorm.DB, studentID, courseID, lessonID uint) (int, error) {
	var existing courseModels.LessonCompletion
	err := db.Where("student_id = ? AND course_id = ? AND lesson_id = ? AND is_deleted = false",
		studentID, courseID, lessonID).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		completion := courseModels.LessonCompletion{
			StudentID: studentID,
			CourseID:  courseID,
			LessonID:  lessonID,
		}
		if err := db.Create(&completion).Error; err != nil {
			return 0, err
		}
	} else if err != nil {
		return 0, err
	}

	return RefreshProgress(db, studentID, courseID)
}

// ModuleFinished reports whether every lesson of a module is completed
// and every quiz's latest attempt is a pass.
func ModuleFinished(db *gorm.DB, studentID, courseID, moduleID uint) (bool, error) {
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

	var quizIDs []uint
	if err := db.Table("module_quizzes").
		Where("module_id = ?", moduleID).
		Pluck("quiz_id", &quizIDs).Error; err != nil {
		return false, err
	}

	if len(quizIDs) > 0 {
		quizSet := make(map[uint]bool, len(quizIDs))
		for _, id := range quizIDs {
			quizSet[id] = true
		}
		passed, err := passedQuizIDs(db, studentID, quizSet)
		if err != nil {
			return false, err
		}
		for _, id := range quizIDs {
			if !passed[id] {
				return false, nil
			}
		}
	}

	return true, nil
}

// MarkModuleComplete records module completion once every part of the
// module is finished, then refreshes the cached percentage. Returns
// whether the module is now marked completed.
func MarkModuleComplete(db *gorm.DB, studentID, courseID, moduleID uint) (bool, error) {
	finished, err := ModuleFinished(db, studentID, courseID, moduleID)
	if err != nil {
		return false, err
	}
	if !finished {
		return false, nil
	}

	var existing courseModels.ModuleCompletion
	err = db.Where("student_id = ? AND course_id = ? AND module_id = ? AND is_deleted = false",
		studentID, courseID, moduleID).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		completion := courseModels.ModuleCompletion{
			StudentID: studentID,
			CourseID:  courseID,
			ModuleID:  moduleID,
		}
		if err := db.Create(&completion).Error; err != nil {
			return false, err
		}
	} else if err != nil {
		return false, err
	}

	if _, err := RefreshProgress(db, studentID, courseID); err != nil {
		return false, err
	}
	return true, nil
}

// IsCompleted is the strict completion gate used for the course star
// payout: the student's completed-module set must cover every module
// of the course, and every module must itself be finished. Stricter
// than ComputeProgress reaching 100; the two are separate predicates
// on purpose.
func IsCompleted(db *gorm.DB, studentID, courseID uint) (bool, error) {
	var moduleIDs []uint
	if err := db.Table("course_modules").
		Where("course_id = ?", courseID).
		Pluck("module_id", &moduleIDs).Error; err != nil {
		return false, err
	}
	if len(moduleIDs) == 0 {
		return false, nil
	}

	var completedIDs []uint
	if err := db.Model(&courseModels.ModuleCompletion{}).
		Where("student_id = ? AND course_id = ? AND is_deleted = false", studentID, courseID).
		Pluck("module_id", &completedIDs).Error; err != nil {
		return false, err
	}
	completedSet := make(map[uint]bool, len(completedIDs))
	for _, id := range completedIDs {
		completedSet[id] = true
	}

	for _, moduleID := range moduleIDs {
		if !completedSet[moduleID] {
			return false, nil
		}
		finished, err := ModuleFinished(db, studentID, courseID, moduleID)
		if err != nil {
			return false, err
		}
		if !finished {
			return false, nil
		}
	}
	return true, nil
}

// AwardCourseStars pays the course star reward at most once per
// (student, course) pair. Safe to call repeatedly after completion:
// the CourseCompletion row's StarsGiven flag and unique index keep the
// payout idempotent. Returns whether stars were paid on this call.
func AwardCourseStars(db *gorm.DB, studentID uint, course *courseModels.Course) (bool, error) {
	completed, err := IsCompleted(db, studentID, course.ID)
	if err != nil {
		return false, err
	}
	if !completed {
		return false, nil
	}

	var record courseModels.CourseCompletion
	err = db.Where("student_id = ? AND course_id = ? AND is_deleted = false", studentID, course.ID).
		First(&record).Error
	if err == gorm.ErrRecordNotFound {
		record = courseModels.CourseCompletion{StudentID: studentID, CourseID: course.ID}
		if err := db.Create(&record).Error; err != nil {
			return false, err
		}
	} else if err != nil {
		return false, err
	}

	if record.StarsGiven {
		return false, nil
	}

	if course.Stars > 0 {
		if _, err := UpdateStars(db, studentID, course.Stars, "Course completed: "+course.Title); err != nil {
			return false, err
		}
	}

	record.StarsGiven = true
	if err := db.Save(&record).Error; err != nil {
		return false, err
	}

	var student models.Student
	if err := db.Where("id = ? AND is_deleted = false", studentID).First(&student).Error; err == nil {
		utils.Notify(db, student.ID, models.NotifStarsAwarded,
			"Course \""+course.Title+"\" completed!")
	}

	return true, nil
}
