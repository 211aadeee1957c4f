package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"studytask/config"
	"studytask/database"
	"studytask/gamify"
	adminRoutes "studytask/routers/adminRoutes"
	authRoutes "studytask/routers/authRoutes"
	courseRoutes "studytask/routers/courseRoutes"
	gamifyRoutes "studytask/routers/gamifyRoutes"
	homeworkRoutes "studytask/routers/homeworkRoutes"
	notificationRoutes "studytask/routers/notificationRoutes"
	studentRoutes "studytask/routers/studentRoutes"
	"studytask/utils"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	// Quiz evaluation tunables come from the environment
	gamify.PassThreshold = config.AppConfig.PassThreshold
	gamify.PenaltyUnit = config.AppConfig.PenaltyUnit

	app := fiber.New(fiber.Config{
		BodyLimit: 100 * 1024 * 1024, // lesson videos arrive through this API
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded lesson videos, PDFs and avatars
	app.Static("/uploads", "./uploads")

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupAdminCourseRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	gamifyRoutes.SetupGamifyRoutes(app)
	studentRoutes.SetupStudentRoutes(app)
	adminRoutes.SetupAdminRoutes(app)
	notificationRoutes.SetupNotificationRoutes(app)
	homeworkRoutes.SetupHomeworkRoutes(app)

	scheduler := utils.InitializeSchedulers()
	defer scheduler.Stop()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
