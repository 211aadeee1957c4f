package gamifyRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "studytask/controllers/gamify"
	"studytask/middleware"
	validators "studytask/validators/gamify"
)

// SetupGamifyRoutes sets up the star, level and achievement routes
func SetupGamifyRoutes(app *fiber.App) {
	gamifyGroup := app.Group("/gamify", middleware.JWTMiddleware)

	gamifyGroup.Get("/stars", controllers.StarsSummary)
	gamifyGroup.Get("/stars/history", controllers.StarHistory)
	gamifyGroup.Get("/achievements", controllers.MyAchievements)
	gamifyGroup.Get("/leaderboard", controllers.Leaderboard)
	gamifyGroup.Get("/levels", controllers.Levels)

	admin := []fiber.Handler{middleware.JWTMiddleware, middleware.RequireRole("ADMIN")}

	levelGroup := app.Group("/admin/level", admin...)
	levelGroup.Post("/create", validators.CreateLevel(), controllers.AdminCreateLevel)
	levelGroup.Put("/:id", validators.UpdateLevel(), controllers.AdminUpdateLevel)
	levelGroup.Delete("/:id", validators.LevelID(), controllers.AdminDeleteLevel)

	achievementGroup := app.Group("/admin/achievement", admin...)
	achievementGroup.Post("/create", validators.CreateAchievement(), controllers.AdminCreateAchievement)
	achievementGroup.Put("/:id", validators.UpdateAchievement(), controllers.AdminUpdateAchievement)
	achievementGroup.Delete("/:id", validators.AchievementID(), controllers.AdminDeleteAchievement)
	achievementGroup.Get("/list", controllers.AdminListAchievements)
}
