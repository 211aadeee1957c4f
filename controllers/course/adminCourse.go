package courseController

import (
	"github.com/gofiber/fiber/v2"

	"studytask/database"
	"studytask/middleware"
	courseModels "studytask/models/course"
	"studytask/utils"
)

// AdminCreateCourse creates a course with a fresh enrollment code
func AdminCreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Stars       int    `json:"stars"`
		ImageURL    string `json:"image_url"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Retry on the off chance the generated code collides
	code := utils.GenerateCourseCode()
	for i := 0; i < 5; i++ {
		var existing courseModels.Course
		if err := db.Where("course_code = ?", code).First(&existing).Error; err != nil {
			break
		}
		code = utils.GenerateCourseCode()
	}

	course := courseModels.Course{
		Title:       reqData.Title,
		Description: reqData.Description,
		Stars:       reqData.Stars,
		ImageURL:    reqData.ImageURL,
		CourseCode:  code,
	}

	if err := db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// AdminUpdateCourse updates course fields
func AdminUpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedCourseUpdate").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Stars       *int   `json:"stars"`
		ImageURL    string `json:"image_url"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = false", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if reqData.Title != "" {
		course.Title = reqData.Title
	}
	if reqData.Description != "" {
		course.Description = reqData.Description
	}
	if reqData.Stars != nil {
		course.Stars = *reqData.Stars
	}
	if reqData.ImageURL != "" {
		course.ImageURL = reqData.ImageURL
	}

	if err := db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// AdminDeleteCourse soft-deletes a course
func AdminDeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = false", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	course.IsDeleted = true
	if err := db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// AdminGetAllCourses lists courses with pagination
func AdminGetAllCourses(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db

	query := db.Model(&courseModels.Course{}).Where("is_deleted = false")

	var total int64
	query.Count(&total)

	var courses []courseModels.Course
	if err := query.Preload("Modules", "is_deleted = false").
		Offset(offset).Limit(limit).Order("created_at desc").
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// AdminAttachModule binds an existing module to a course
func AdminAttachModule(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)
	moduleID := c.Locals("moduleID").(int)

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = false", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var module courseModels.Module
	if err := db.Where("id = ? AND is_deleted = false", moduleID).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	if err := db.Model(&course).Association("Modules").Append(&module); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to attach module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module attached to course!", nil)
}

// AdminDetachModule unbinds a module from a course
func AdminDetachModule(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)
	moduleID := c.Locals("moduleID").(int)

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = false", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var module courseModels.Module
	if err := db.Where("id = ?", moduleID).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	if err := db.Model(&course).Association("Modules").Delete(&module); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to detach module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module detached from course!", nil)
}
