package gamifyController

import (
	"github.com/gofiber/fiber/v2"

	"studytask/database"
	"studytask/middleware"
	gamifyModels "studytask/models/gamify"
)

// levelRangeOverlaps reports whether [minStars, maxStars) collides with
// an existing level's range. excludeID skips the level being updated.
func levelRangeOverlaps(minStars, maxStars int, excludeID uint) (bool, error) {
	var count int64
	query := database.Database.Db.Model(&gamifyModels.Level{}).
		Where("is_deleted = false AND min_stars < ? AND max_stars > ?", maxStars, minStars)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// AdminCreateLevel creates a level after checking its star range does
// not overlap an existing one.
func AdminCreateLevel(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLevel").(*struct {
		Number      int    `json:"number"`
		Name        string `json:"name"`
		MinStars    int    `json:"min_stars"`
		MaxStars    int    `json:"max_stars"`
		Description string `json:"description"`
		ImageURL    string `json:"image_url"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var existing int64
	db.Model(&gamifyModels.Level{}).
		Where("number = ? AND is_deleted = false", reqData.Number).
		Count(&existing)
	if existing > 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "A level with this number already exists!", nil)
	}

	overlaps, err := levelRangeOverlaps(reqData.MinStars, reqData.MaxStars, 0)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to validate level range!", nil)
	}
	if overlaps {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Level star range overlaps an existing level!", nil)
	}

	level := gamifyModels.Level{
		Number:      reqData.Number,
		Name:        reqData.Name,
		MinStars:    reqData.MinStars,
		MaxStars:    reqData.MaxStars,
		Description: reqData.Description,
		ImageURL:    reqData.ImageURL,
	}

	if err := db.Create(&level).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create level!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Level created successfully!", level)
}

// AdminUpdateLevel updates a level, re-checking range overlap when the
// bounds change.
func AdminUpdateLevel(c *fiber.Ctx) error {
	levelID := c.Locals("levelID").(int)

	reqData, ok := c.Locals("validatedLevelUpdate").(*struct {
		Name        string `json:"name"`
		MinStars    *int   `json:"min_stars"`
		MaxStars    *int   `json:"max_stars"`
		Description string `json:"description"`
		ImageURL    string `json:"image_url"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var level gamifyModels.Level
	if err := db.Where("id = ? AND is_deleted = false", levelID).First(&level).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Level not found!", nil)
	}

	minStars := level.MinStars
	maxStars := level.MaxStars
	if reqData.MinStars != nil {
		minStars = *reqData.MinStars
	}
	if reqData.MaxStars != nil {
		maxStars = *reqData.MaxStars
	}
	if minStars >= maxStars {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "min_stars must be less than max_stars!", nil)
	}

	if minStars != level.MinStars || maxStars != level.MaxStars {
		overlaps, err := levelRangeOverlaps(minStars, maxStars, level.ID)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to validate level range!", nil)
		}
		if overlaps {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Level star range overlaps an existing level!", nil)
		}
	}

	level.MinStars = minStars
	level.MaxStars = maxStars
	if reqData.Name != "" {
		level.Name = reqData.Name
	}
	if reqData.Description != "" {
		level.Description = reqData.Description
	}
	if reqData.ImageURL != "" {
		level.ImageURL = reqData.ImageURL
	}

	if err := db.Save(&level).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update level!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Level updated successfully!", level)
}

// AdminDeleteLevel soft-deletes a level
func AdminDeleteLevel(c *fiber.Ctx) error {
	levelID := c.Locals("levelID").(int)

	db := database.Database.Db

	var level gamifyModels.Level
	if err := db.Where("id = ? AND is_deleted = false", levelID).First(&level).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Level not found!", nil)
	}

	level.IsDeleted = true
	if err := db.Save(&level).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete level!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Level deleted successfully!", nil)
}

// AdminCreateAchievement creates an achievement definition
func AdminCreateAchievement(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAchievement").(*struct {
		Code           string `json:"code"`
		Title          string `json:"title"`
		Description    string `json:"description"`
		ConditionType  string `json:"condition_type"`
		ConditionValue int    `json:"condition_value"`
		Reward         string `json:"reward"`
		RewardIcon     string `json:"reward_icon"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var existing int64
	db.Model(&gamifyModels.Achievement{}).
		Where("code = ? AND is_deleted = false", reqData.Code).
		Count(&existing)
	if existing > 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "An achievement with this code already exists!", nil)
	}

	achievement := gamifyModels.Achievement{
		Code:           reqData.Code,
		Title:          reqData.Title,
		Description:    reqData.Description,
		ConditionType:  reqData.ConditionType,
		ConditionValue: reqData.ConditionValue,
		Reward:         reqData.Reward,
		RewardIcon:     reqData.RewardIcon,
		IsActive:       true,
	}

	if err := db.Create(&achievement).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create achievement!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Achievement created successfully!", achievement)
}

// AdminUpdateAchievement updates an achievement definition
func AdminUpdateAchievement(c *fiber.Ctx) error {
	achievementID := c.Locals("achievementID").(int)

	reqData, ok := c.Locals("validatedAchievementUpdate").(*struct {
		Title          string `json:"title"`
		Description    string `json:"description"`
		ConditionValue *int   `json:"condition_value"`
		Reward         string `json:"reward"`
		RewardIcon     string `json:"reward_icon"`
		IsActive       *bool  `json:"is_active"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var achievement gamifyModels.Achievement
	if err := db.Where("id = ? AND is_deleted = false", achievementID).First(&achievement).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Achievement not found!", nil)
	}

	if reqData.Title != "" {
		achievement.Title = reqData.Title
	}
	if reqData.Description != "" {
		achievement.Description = reqData.Description
	}
	if reqData.ConditionValue != nil {
		achievement.ConditionValue = *reqData.ConditionValue
	}
	if reqData.Reward != "" {
		achievement.Reward = reqData.Reward
	}
	if reqData.RewardIcon != "" {
		achievement.RewardIcon = reqData.RewardIcon
	}
	if reqData.IsActive != nil {
		achievement.IsActive = *reqData.IsActive
	}

	if err := db.Save(&achievement).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update achievement!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Achievement updated successfully!", achievement)
}

// AdminDeleteAchievement soft-deletes an achievement
func AdminDeleteAchievement(c *fiber.Ctx) error {
	achievementID := c.Locals("achievementID").(int)

	db := database.Database.Db

	var achievement gamifyModels.Achievement
	if err := db.Where("id = ? AND is_deleted = false", achievementID).First(&achievement).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Achievement not found!", nil)
	}

	achievement.IsDeleted = true
	if err := db.Save(&achievement).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete achievement!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Achievement deleted successfully!", nil)
}

// AdminListAchievements lists all achievements including inactive ones
func AdminListAchievements(c *fiber.Ctx) error {
	var achievements []gamifyModels.Achievement
	if err := database.Database.Db.
		Where("is_deleted = false").
		Order("condition_type, condition_value").
		Find(&achievements).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch achievements!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Achievements fetched successfully!", achievements)
}
