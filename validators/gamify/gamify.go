package gamifyValidator

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"studytask/middleware"
	gamifyModels "studytask/models/gamify"
)

func paramID(c *fiber.Ctx, name string) (int, bool) {
	raw := strings.TrimSpace(c.Params(name))
	if raw == "" {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

var validConditionTypes = map[string]bool{
	gamifyModels.CondPassedQuizzes:    true,
	gamifyModels.CondPerfectQuizzes:   true,
	gamifyModels.CondCompletedCourses: true,
	gamifyModels.CondTotalStars:       true,
	gamifyModels.CondLevelReached:     true,
}

// CreateLevel validates a new level definition. Range overlap against
// existing levels is checked in the controller.
func CreateLevel() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Number      int    `json:"number"`
			Name        string `json:"name"`
			MinStars    int    `json:"min_stars"`
			MaxStars    int    `json:"max_stars"`
			Description string `json:"description"`
			ImageURL    string `json:"image_url"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Name = strings.TrimSpace(reqData.Name)

		if reqData.Number < 1 {
			errors["number"] = "Level number must be at least 1!"
		}

		if reqData.Name == "" {
			errors["name"] = "Level name is required!"
		}

		if reqData.MinStars < 0 {
			errors["min_stars"] = "min_stars cannot be negative!"
		}

		if reqData.MinStars >= reqData.MaxStars {
			errors["max_stars"] = "max_stars must be greater than min_stars!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLevel", reqData)
		return c.Next()
	}
}

// UpdateLevel validates a level update
func UpdateLevel() fiber.Handler {
	return func(c *fiber.Ctx) error {
		levelID, ok := paramID(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Level ID!", nil)
		}

		reqData := new(struct {
			Name        string `json:"name"`
			MinStars    *int   `json:"min_stars"`
			MaxStars    *int   `json:"max_stars"`
			Description string `json:"description"`
			ImageURL    string `json:"image_url"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.MinStars != nil && *reqData.MinStars < 0 {
			errors["min_stars"] = "min_stars cannot be negative!"
		}

		if reqData.MinStars != nil && reqData.MaxStars != nil && *reqData.MinStars >= *reqData.MaxStars {
			errors["max_stars"] = "max_stars must be greater than min_stars!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("levelID", levelID)
		c.Locals("validatedLevelUpdate", reqData)
		return c.Next()
	}
}

// LevelID validates requests addressed to a single level
func LevelID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		levelID, ok := paramID(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Level ID!", nil)
		}

		c.Locals("levelID", levelID)
		return c.Next()
	}
}

// CreateAchievement validates a new achievement definition
func CreateAchievement() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Code           string `json:"code"`
			Title          string `json:"title"`
			Description    string `json:"description"`
			ConditionType  string `json:"condition_type"`
			ConditionValue int    `json:"condition_value"`
			Reward         string `json:"reward"`
			RewardIcon     string `json:"reward_icon"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Code = strings.TrimSpace(reqData.Code)
		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.ConditionType = strings.TrimSpace(reqData.ConditionType)

		if reqData.Code == "" {
			errors["code"] = "Achievement code is required!"
		}

		if reqData.Title == "" {
			errors["title"] = "Achievement title is required!"
		}

		if !validConditionTypes[reqData.ConditionType] {
			errors["condition_type"] = "Unknown condition type!"
		}

		if reqData.ConditionValue < 1 {
			errors["condition_value"] = "Condition value must be at least 1!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAchievement", reqData)
		return c.Next()
	}
}

// UpdateAchievement validates an achievement update
func UpdateAchievement() fiber.Handler {
	return func(c *fiber.Ctx) error {
		achievementID, ok := paramID(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Achievement ID!", nil)
		}

		reqData := new(struct {
			Title          string `json:"title"`
			Description    string `json:"description"`
			ConditionValue *int   `json:"condition_value"`
			Reward         string `json:"reward"`
			RewardIcon     string `json:"reward_icon"`
			IsActive       *bool  `json:"is_active"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ConditionValue != nil && *reqData.ConditionValue < 1 {
			errors["condition_value"] = "Condition value must be at least 1!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("achievementID", achievementID)
		c.Locals("validatedAchievementUpdate", reqData)
		return c.Next()
	}
}

// AchievementID validates requests addressed to a single achievement
func AchievementID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		achievementID, ok := paramID(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Achievement ID!", nil)
		}

		c.Locals("achievementID", achievementID)
		return c.Next()
	}
}
