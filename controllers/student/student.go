package studentController

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studytask/database"
	"studytask/middleware"
	"studytask/models"
	"studytask/utils"
)

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

// MyProfile returns the student profile with account details
func MyProfile(c *fiber.Ctx) error {
	student, err := currentStudent(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student profile not found!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ?", student.UserID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch account!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", fiber.Map{
		"name":                user.Name,
		"email":               user.Email,
		"avatar_url":          student.AvatarURL,
		"phone":               student.Phone,
		"stars":               student.Stars,
		"profile_edited_once": student.ProfileEditedOnce,
	})
}

// editAllowed reports whether the student may edit the profile: either
// the free first edit is still available or an approved edit request is
// waiting to be consumed.
func editAllowed(student *models.Student) (bool, *models.ProfileEditRequest) {
	if !student.ProfileEditedOnce {
		return true, nil
	}

	var request models.ProfileEditRequest
	err := database.Database.Db.
		Where("student_id = ? AND status = ? AND is_deleted = false", student.ID, models.RequestApproved).
		Order("created_at desc").
		First(&request).Error
	if err != nil {
		return false, nil
	}
	return true, &request
}

// UpdateProfile applies a profile edit. The first edit is free; later
// ones consume an admin-approved edit request. The edit and the flag
// update commit together.
func UpdateProfile(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedProfileUpdate").(*struct {
		Name      string `json:"name"`
		Phone     string `json:"phone"`
		AvatarURL string `json:"avatar_url"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	student, err := currentStudent(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student profile not found!", nil)
	}

	allowed, approvedRequest := editAllowed(student)
	if !allowed {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Profile already edited. Request an edit from an admin first!", nil)
	}

	err = database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if reqData.Name != "" {
			if err := tx.Model(&models.User{}).
				Where("id = ?", student.UserID).
				Update("name", reqData.Name).Error; err != nil {
				return err
			}
		}

		if reqData.Phone != "" {
			student.Phone = reqData.Phone
		}
		if reqData.AvatarURL != "" {
			student.AvatarURL = reqData.AvatarURL
		}
		student.ProfileEditedOnce = true
		if err := tx.Save(student).Error; err != nil {
			return err
		}

		// Consume the approved request so it cannot be reused.
		if approvedRequest != nil {
			approvedRequest.IsDeleted = true
			if err := tx.Save(approvedRequest).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", student)
}

// RequestProfileEdit files a request to unlock another profile edit
func RequestProfileEdit(c *fiber.Ctx) error {
	student, err := currentStudent(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student profile not found!", nil)
	}

	if !student.ProfileEditedOnce {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Your free profile edit is still available!", nil)
	}

	db := database.Database.Db

	var pending int64
	db.Model(&models.ProfileEditRequest{}).
		Where("student_id = ? AND status = ? AND is_deleted = false", student.ID, models.RequestPending).
		Count(&pending)
	if pending > 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "An edit request is already pending!", nil)
	}

	request := models.ProfileEditRequest{
		StudentID: student.ID,
		Status:    models.RequestPending,
	}
	if err := db.Create(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create edit request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Profile edit request submitted!", request)
}

// UploadAvatar stores a profile picture and points the profile at it
func UploadAvatar(c *fiber.Ctx) error {
	student, err := currentStudent(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student profile not found!", nil)
	}

	file, err := c.FormFile("avatar")
	if err != nil || file == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Avatar file is required!", nil)
	}

	savedPath, err := utils.SaveUploadedFile(file, "./uploads/avatars", utils.AvatarExtensions)
	if errors.Is(err, utils.ErrExtensionNotAllowed) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Avatar must be an image file!", nil)
	}
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save avatar!", nil)
	}

	student.AvatarURL = utils.GetFileURL(savedPath)
	if err := database.Database.Db.Save(student).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update avatar!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Avatar uploaded successfully!", fiber.Map{
		"avatar_url": student.AvatarURL,
	})
}
