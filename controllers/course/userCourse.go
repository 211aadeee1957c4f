package courseController

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"studytask/database"
	"studytask/gamify"
	"studytask/middleware"
	"studytask/models"
	courseModels "studytask/models/course"
)

// currentStudent resolves the learner profile from the authenticated user
func currentStudent(c *fiber.Ctx) (*models.Student, error) {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return nil, fiber.ErrUnauthorized
	}

	var student models.Student
	if err := database.Database.Db.
		Where("user_id = ? AND is_deleted = false", userID).
		First(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

// MyCourses lists the student's enrolled courses with their cached progress
func MyCourses(c *fiber.Ctx) error {
	student, err := currentStudent(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student profile not found!", nil)
	}

	db := database.Database.Db

	var courses []courseModels.Course
	if err := db.Model(student).Association("Courses").Find(&courses); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	type courseWithProgress struct {
		courseModels.Course
		Progress  int  `json:"progress"`
		Completed bool `json:"completed"`
	}

	result := make([]courseWithProgress, 0, len(courses))
	for _, course := range courses {
		if course.IsDeleted {
			continue
		}

		percent, err := gamify.RefreshProgress(db, student.ID, course.ID)
		if err != nil {
			percent = 0
		}
		done, err := gamify.IsCompleted(db, student.ID, course.ID)
		if err != nil {
			done = false
		}

		result = append(result, courseWithProgress{
			Course:    course,
			Progress:  percent,
			Completed: done,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", result)
}

// CourseDetail returns a course with modules, lessons and quizzes for an
// enrolled student. Modules blocked for this student are flagged.
func CourseDetail(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

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

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = false", courseID).
		Preload("Modules", "is_deleted = false").
		Preload("Modules.Lessons", "is_deleted = false").
		Preload("Modules.Quizzes", "is_deleted = false AND is_active = true").
		First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var blockedIDs []uint
	db.Table("student_blocked_modules").
		Where("student_id = ?", student.ID).
		Pluck("module_id", &blockedIDs)
	blocked := make(map[uint]bool, len(blockedIDs))
	for _, id := range blockedIDs {
		blocked[id] = true
	}

	type moduleView struct {
		courseModels.Module
		Blocked  bool `json:"blocked"`
		Finished bool `json:"finished"`
	}

	modules := make([]moduleView, 0, len(course.Modules))
	for _, m := range course.Modules {
		finished, err := gamify.ModuleFinished(db, student.ID, course.ID, m.ID)
		if err != nil {
			finished = false
		}
		modules = append(modules, moduleView{
			Module:   m,
			Blocked:  blocked[m.ID],
			Finished: finished,
		})
	}

	percent, err := gamify.RefreshProgress(db, student.ID, course.ID)
	if err != nil {
		percent = 0
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", fiber.Map{
		"course":   course,
		"modules":  modules,
		"progress": percent,
	})
}

// RequestCourseByCode files an enrollment request for the course matching
// the given code. An admin approves or rejects it later.
func RequestCourseByCode(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourseRequest").(*struct {
		CourseCode string `json:"course_code"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	student, err := currentStudent(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student profile not found!", nil)
	}

	db := database.Database.Db

	var course courseModels.Course
	code := strings.ToUpper(strings.TrimSpace(reqData.CourseCode))
	if err := db.Where("course_code = ? AND is_deleted = false", code).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No course found for this code!", nil)
	}

	var enrolled int64
	db.Table("student_courses").
		Where("student_id = ? AND course_id = ?", student.ID, course.ID).
		Count(&enrolled)
	if enrolled > 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You are already enrolled in this course!", nil)
	}

	var pending int64
	db.Model(&models.CourseAddRequest{}).
		Where("student_id = ? AND course_id = ? AND status = ?", student.ID, course.ID, models.RequestPending).
		Count(&pending)
	if pending > 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "A request for this course is already pending!", nil)
	}

	request := models.CourseAddRequest{
		StudentID: student.ID,
		CourseID:  course.ID,
		Status:    models.RequestPending,
	}
	if err := db.Create(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course request submitted!", request)
}

// MyCourseRequests lists the student's own enrollment requests
func MyCourseRequests(c *fiber.Ctx) error {
	student, err := currentStudent(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student profile not found!", nil)
	}

	var requests []models.CourseAddRequest
	if err := database.Database.Db.
		Where("student_id = ? AND is_deleted = false", student.ID).
		Order("created_at desc").
		Find(&requests).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch requests!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Requests fetched successfully!", requests)
}
