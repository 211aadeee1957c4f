package courseController

import (
	"github.com/gofiber/fiber/v2"

	"studytask/database"
	"studytask/middleware"
	courseModels "studytask/models/course"
)

// AdminCreateModule creates a standalone module
func AdminCreateModule(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedModule").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	module := courseModels.Module{
		Title:       reqData.Title,
		Description: reqData.Description,
	}

	if err := database.Database.Db.Create(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module created successfully!", module)
}

// AdminUpdateModule updates module fields
func AdminUpdateModule(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(int)

	reqData, ok := c.Locals("validatedModuleUpdate").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var module courseModels.Module
	if err := db.Where("id = ? AND is_deleted = false", moduleID).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	if reqData.Title != "" {
		module.Title = reqData.Title
	}
	if reqData.Description != "" {
		module.Description = reqData.Description
	}

	if err := db.Save(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module updated successfully!", module)
}

// AdminDeleteModule soft-deletes a module
func AdminDeleteModule(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(int)

	db := database.Database.Db

	var module courseModels.Module
	if err := db.Where("id = ? AND is_deleted = false", moduleID).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	module.IsDeleted = true
	if err := db.Save(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module deleted successfully!", nil)
}

// AdminListModules lists all modules
func AdminListModules(c *fiber.Ctx) error {
	db := database.Database.Db

	var modules []courseModels.Module
	if err := db.Where("is_deleted = false").
		Preload("Lessons", "is_deleted = false").
		Preload("Quizzes", "is_deleted = false").
		Order("created_at desc").
		Find(&modules).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch modules!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules fetched successfully!", modules)
}

// AdminAttachLesson binds a lesson to a module
func AdminAttachLesson(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(int)
	lessonID := c.Locals("lessonID").(int)

	db := database.Database.Db

	var module courseModels.Module
	if err := db.Where("id = ? AND is_deleted = false", moduleID).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	var lesson courseModels.Lesson
	if err := db.Where("id = ? AND is_deleted = false", lessonID).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	if err := db.Model(&module).Association("Lessons").Append(&lesson); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to attach lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson attached to module!", nil)
}

// AdminDetachLesson unbinds a lesson from a module
func AdminDetachLesson(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(int)
	lessonID := c.Locals("lessonID").(int)

	db := database.Database.Db

	var module courseModels.Module
	if err := db.Where("id = ? AND is_deleted = false", moduleID).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	var lesson courseModels.Lesson
	if err := db.Where("id = ?", lessonID).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	if err := db.Model(&module).Association("Lessons").Delete(&lesson); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to detach lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson detached from module!", nil)
}

// AdminAttachQuiz binds a quiz to a module
func AdminAttachQuiz(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(int)
	quizID := c.Locals("quizID").(int)

	db := database.Database.Db

	var module courseModels.Module
	if err := db.Where("id = ? AND is_deleted = false", moduleID).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	var quiz courseModels.Quiz
	if err := db.Where("id = ? AND is_deleted = false", quizID).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	if err := db.Model(&module).Association("Quizzes").Append(&quiz); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to attach quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz attached to module!", nil)
}

// AdminDetachQuiz unbinds a quiz from a module
func AdminDetachQuiz(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(int)
	quizID := c.Locals("quizID").(int)

	db := database.Database.Db

	var module courseModels.Module
	if err := db.Where("id = ? AND is_deleted = false", moduleID).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	var quiz courseModels.Quiz
	if err := db.Where("id = ?", quizID).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	if err := db.Model(&module).Association("Quizzes").Delete(&quiz); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to detach quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz detached from module!", nil)
}
