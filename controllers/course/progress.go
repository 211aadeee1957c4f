package courseController

import (
	"github.com/gofiber/fiber/v2"

	"studytask/database"
	"studytask/gamify"
	"studytask/middleware"
	courseModels "studytask/models/course"
)

// CompleteLesson records a lesson as viewed, then runs the full update
// chain in order: refresh the cached percentage, try to finish the
// modules that carry this lesson, pay the course reward if the course
// is now strictly complete, and re-evaluate achievements.
func CompleteLesson(c *fiber.Ctx) error {
	courseID := uint(c.Locals("courseID").(int))
	lessonID := uint(c.Locals("lessonID").(int))

	student, err := currentStudent(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student profile not found!", nil)
	}

	db := database.Database.Db

	var enrolled int64
	db.Table("student_courses").
		Where("student_id = ? AND course_id = ?", student.ID, courseID).
		Count(&enrolled)
	if enrolled == 0 {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not enrolled in this course!", nil)
	}

	parts, err := gamify.CollectCourseParts(db, courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load course structure!", nil)
	}
	if !parts.LessonIDs[lessonID] {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson does not belong to this course!", nil)
	}

	percent, err := gamify.MarkLessonComplete(db, student.ID, courseID, lessonID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record lesson completion!", nil)
	}

	inCourse := make(map[uint]bool, len(parts.ModuleIDs))
	for _, id := range parts.ModuleIDs {
		inCourse[id] = true
	}

	// A lesson can sit in several modules of the course; try them all.
	var moduleIDs []uint
	db.Table("module_lessons").Where("lesson_id = ?", lessonID).Pluck("module_id", &moduleIDs)
	for _, moduleID := range moduleIDs {
		if !inCourse[moduleID] {
			continue
		}
		if _, err := gamify.MarkModuleComplete(db, student.ID, courseID, moduleID); err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update module completion!", nil)
		}
	}

	var course courseModels.Course
	if err := db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load course!", nil)
	}

	awarded, err := gamify.AwardCourseStars(db, student.ID, &course)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to award course stars!", nil)
	}

	unlocked := gamify.EvaluateAchievements(db, student.ID)

	percent, err = gamify.RefreshProgress(db, student.ID, courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to refresh progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson completed!", fiber.Map{
		"progress":             percent,
		"course_stars_awarded": awarded,
		"new_achievements":     unlocked,
	})
}

// CompleteModule explicitly closes a module once all of its lessons are
// viewed and all of its quizzes are passed.
func CompleteModule(c *fiber.Ctx) error {
	courseID := uint(c.Locals("courseID").(int))
	moduleID := uint(c.Locals("moduleID").(int))

	student, err := currentStudent(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student profile not found!", nil)
	}

	db := database.Database.Db

	var enrolled int64
	db.Table("student_courses").
		Where("student_id = ? AND course_id = ?", student.ID, courseID).
		Count(&enrolled)
	if enrolled == 0 {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not enrolled in this course!", nil)
	}

	var inCourse int64
	db.Table("course_modules").
		Where("course_id = ? AND module_id = ?", courseID, moduleID).
		Count(&inCourse)
	if inCourse == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module does not belong to this course!", nil)
	}

	done, err := gamify.MarkModuleComplete(db, student.ID, courseID, moduleID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update module completion!", nil)
	}
	if !done {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Module is not finished yet!", nil)
	}

	var course courseModels.Course
	if err := db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load course!", nil)
	}

	awarded, err := gamify.AwardCourseStars(db, student.ID, &course)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to award course stars!", nil)
	}

	unlocked := gamify.EvaluateAchievements(db, student.ID)

	percent, err := gamify.RefreshProgress(db, student.ID, courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to refresh progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module completed!", fiber.Map{
		"progress":             percent,
		"course_stars_awarded": awarded,
		"new_achievements":     unlocked,
	})
}

// MyProgress returns the cached percentage and strict completion state
// for one course.
func MyProgress(c *fiber.Ctx) error {
	courseID := uint(c.Locals("courseID").(int))

	student, err := currentStudent(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student profile not found!", nil)
	}

	db := database.Database.Db

	percent, err := gamify.RefreshProgress(db, student.ID, courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute progress!", nil)
	}

	done, err := gamify.IsCompleted(db, student.ID, courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check completion!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"progress":  percent,
		"completed": done,
	})
}
