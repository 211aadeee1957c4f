package utils

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"studytask/database"
	"studytask/models"
	gamifyModels "studytask/models/gamify"
)

func logScheduler(message string) {
	log.Printf("[SCHEDULER] %s", message)
}

// sendWeeklyDigests emails every active student their star balance and
// the achievements unlocked in the past week
func sendWeeklyDigests() {
	db := database.Database.Db
	weekAgo := time.Now().AddDate(0, 0, -7)

	var students []models.Student
	if err := db.Where("is_deleted = false").Find(&students).Error; err != nil {
		logScheduler("Failed to load students for digest: " + err.Error())
		return
	}

	sent := 0
	for _, student := range students {
		var user models.User
		if err := db.Where("id = ? AND is_deleted = false", student.UserID).First(&user).Error; err != nil {
			continue
		}

		var newAchievements int64
		db.Model(&gamifyModels.StudentAchievement{}).
			Where("student_id = ? AND created_at >= ? AND is_deleted = false", student.ID, weekAgo).
			Count(&newAchievements)

		if err := SendDigestEmail(user.Email, user.Name, student.Stars, int(newAchievements)); err != nil {
			continue
		}
		sent++
	}

	log.Printf("[SCHEDULER] Weekly digests sent: %d/%d", sent, len(students))
}

// expireStaleRequests rejects pending profile-edit and course-add
// requests older than 30 days so the admin queue does not grow forever
func expireStaleRequests() {
	db := database.Database.Db
	cutoff := time.Now().AddDate(0, 0, -30)
	now := time.Now()

	result := db.Model(&models.CourseAddRequest{}).
		Where("status = ? AND created_at < ? AND is_deleted = false", models.RequestPending, cutoff).
		Updates(map[string]interface{}{
			"status":         models.RequestRejected,
			"admin_response": "Request expired after 30 days without review.",
			"reviewed_at":    now,
		})
	expired := result.RowsAffected

	result = db.Model(&models.ProfileEditRequest{}).
		Where("status = ? AND created_at < ? AND is_deleted = false", models.RequestPending, cutoff).
		Updates(map[string]interface{}{
			"status":         models.RequestRejected,
			"admin_response": "Request expired after 30 days without review.",
			"reviewed_at":    now,
		})
	expired += result.RowsAffected

	log.Printf("[SCHEDULER] Requests expired: %d", expired)
}

// InitializeSchedulers starts the platform's recurring jobs
func InitializeSchedulers() *cron.Cron {
	logScheduler("Initializing schedulers...")

	c := cron.New()

	// Monday 08:00 weekly digest
	c.AddFunc("0 8 * * 1", func() {
		sendWeeklyDigests()
	})

	// Daily at 03:00, expire stale requests
	c.AddFunc("0 3 * * *", func() {
		expireStaleRequests()
	})

	c.Start()

	logScheduler("All schedulers initialized successfully")
	return c
}
