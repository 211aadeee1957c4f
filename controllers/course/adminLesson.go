package courseController

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"studytask/database"
	"studytask/middleware"
	courseModels "studytask/models/course"
	"studytask/utils"
)

// AdminCreateLesson creates a lesson from either an uploaded video, an
// uploaded PDF, or an external video URL. The validator guarantees exactly
// one content source is present.
func AdminCreateLesson(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLesson").(*struct {
		Title    string `json:"title"`
		VideoURL string `json:"video_url"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	lesson := courseModels.Lesson{
		Title:    reqData.Title,
		VideoURL: reqData.VideoURL,
	}

	if videoFile, err := c.FormFile("video"); err == nil && videoFile != nil {
		savedPath, err := utils.SaveUploadedFile(videoFile, "./uploads/videos", utils.VideoExtensions)
		if errors.Is(err, utils.ErrExtensionNotAllowed) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unsupported video format!", nil)
		}
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save video file!", nil)
		}
		lesson.VideoPath = savedPath
	}

	if pdfFile, err := c.FormFile("pdf"); err == nil && pdfFile != nil {
		savedPath, err := utils.SaveUploadedFile(pdfFile, "./uploads/pdfs", utils.PdfExtensions)
		if errors.Is(err, utils.ErrExtensionNotAllowed) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Only PDF files can be converted to slides!", nil)
		}
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save PDF file!", nil)
		}
		lesson.PDFPath = savedPath
		lesson.ConvertPDFToSlides = true
	}

	if err := database.Database.Db.Create(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson!", nil)
	}

	// Slide conversion happens out of band so the upload response stays fast.
	if lesson.ConvertPDFToSlides {
		go func(lessonID uint, pdfPath string) {
			count, err := utils.RequestSlideConversion(lessonID, pdfPath)
			if err != nil {
				log.Printf("Slide conversion failed for lesson %d: %v", lessonID, err)
				return
			}
			if err := database.Database.Db.Model(&courseModels.Lesson{}).
				Where("id = ?", lessonID).
				Update("slide_count", count).Error; err != nil {
				log.Printf("Failed to store slide count for lesson %d: %v", lessonID, err)
			}
		}(lesson.ID, lesson.PDFPath)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully!", lesson)
}

// AdminUpdateLesson updates lesson metadata
func AdminUpdateLesson(c *fiber.Ctx) error {
	lessonID := c.Locals("lessonID").(int)

	reqData, ok := c.Locals("validatedLessonUpdate").(*struct {
		Title    string `json:"title"`
		VideoURL string `json:"video_url"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var lesson courseModels.Lesson
	if err := db.Where("id = ? AND is_deleted = false", lessonID).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	if reqData.Title != "" {
		lesson.Title = reqData.Title
	}
	if reqData.VideoURL != "" {
		lesson.VideoURL = reqData.VideoURL
	}

	if err := db.Save(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson updated successfully!", lesson)
}

// AdminDeleteLesson soft-deletes a lesson
func AdminDeleteLesson(c *fiber.Ctx) error {
	lessonID := c.Locals("lessonID").(int)

	db := database.Database.Db

	var lesson courseModels.Lesson
	if err := db.Where("id = ? AND is_deleted = false", lessonID).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	lesson.IsDeleted = true
	if err := db.Save(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson deleted successfully!", nil)
}

// AdminListLessons lists all lessons
func AdminListLessons(c *fiber.Ctx) error {
	var lessons []courseModels.Lesson
	if err := database.Database.Db.Where("is_deleted = false").
		Order("created_at desc").
		Find(&lessons).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons fetched successfully!", lessons)
}
