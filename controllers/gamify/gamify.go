package gamifyController

import (
	"github.com/gofiber/fiber/v2"

	"studytask/database"
	"studytask/gamify"
	"studytask/middleware"
	"studytask/models"
	gamifyModels "studytask/models/gamify"
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

// StarsSummary returns the student's balance, current level and the
// distance to the next one.
func StarsSummary(c *fiber.Ctx) error {
	student, err := currentStudent(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student profile not found!", nil)
	}

	db := database.Database.Db

	level := gamify.GetLevel(db, student.Stars)

	summary := fiber.Map{
		"stars": student.Stars,
		"level": level,
	}

	if level != nil {
		var next gamifyModels.Level
		err := db.Where("number = ? AND is_deleted = false", level.Number+1).First(&next).Error
		if err == nil {
			summary["next_level"] = next
			summary["stars_to_next_level"] = next.MinStars - student.Stars
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stars summary fetched successfully!", summary)
}

// StarHistory lists the student's ledger entries, newest first
func StarHistory(c *fiber.Ctx) error {
	student, err := currentStudent(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student profile not found!", nil)
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	db := database.Database.Db

	var total int64
	db.Model(&gamifyModels.StarTransaction{}).
		Where("student_id = ? AND is_deleted = false", student.ID).
		Count(&total)

	var transactions []gamifyModels.StarTransaction
	if err := db.Where("student_id = ? AND is_deleted = false", student.ID).
		Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch star history!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Star history fetched successfully!", fiber.Map{
		"transactions": transactions,
		"total":        total,
		"page":         page,
		"limit":        limit,
	})
}

// MyAchievements returns every active achievement with its unlock state
// and progress toward the target.
func MyAchievements(c *fiber.Ctx) error {
	student, err := currentStudent(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student profile not found!", nil)
	}

	db := database.Database.Db

	var achievements []gamifyModels.Achievement
	if err := db.Where("is_active = true AND is_deleted = false").
		Order("condition_type, condition_value").
		Find(&achievements).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch achievements!", nil)
	}

	var unlockedIDs []uint
	db.Model(&gamifyModels.StudentAchievement{}).
		Where("student_id = ? AND is_deleted = false", student.ID).
		Pluck("achievement_id", &unlockedIDs)
	unlocked := make(map[uint]bool, len(unlockedIDs))
	for _, id := range unlockedIDs {
		unlocked[id] = true
	}

	type achievementView struct {
		gamifyModels.Achievement
		Unlocked bool            `json:"unlocked"`
		Progress gamify.Progress `json:"progress"`
	}

	result := make([]achievementView, 0, len(achievements))
	for i := range achievements {
		result = append(result, achievementView{
			Achievement: achievements[i],
			Unlocked:    unlocked[achievements[i].ID],
			Progress:    gamify.AchievementProgress(db, student.ID, &achievements[i]),
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Achievements fetched successfully!", result)
}

// Leaderboard ranks students by star balance
func Leaderboard(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	if limit < 1 || limit > 100 {
		limit = 10
	}

	db := database.Database.Db

	var students []models.Student
	if err := db.Where("is_deleted = false").
		Order("stars desc").
		Limit(limit).
		Find(&students).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch leaderboard!", nil)
	}

	type entry struct {
		Rank   int    `json:"rank"`
		Name   string `json:"name"`
		Stars  int    `json:"stars"`
		Level  int    `json:"level"`
		Avatar string `json:"avatar"`
	}

	result := make([]entry, 0, len(students))
	for i, s := range students {
		var user models.User
		if err := db.Where("id = ?", s.UserID).First(&user).Error; err != nil {
			continue
		}

		levelNumber := 0
		if level := gamify.GetLevel(db, s.Stars); level != nil {
			levelNumber = level.Number
		}

		result = append(result, entry{
			Rank:   i + 1,
			Name:   user.Name,
			Stars:  s.Stars,
			Level:  levelNumber,
			Avatar: s.AvatarURL,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Leaderboard fetched successfully!", result)
}

// Levels lists the level table
func Levels(c *fiber.Ctx) error {
	var levels []gamifyModels.Level
	if err := database.Database.Db.
		Where("is_deleted = false").
		Order("number asc").
		Find(&levels).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch levels!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Levels fetched successfully!", levels)
}
