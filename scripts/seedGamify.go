package main

import (
	"log"

	"studytask/config"
	"studytask/database"
	gamifyModels "studytask/models/gamify"
)

// Seeds the level table and the starter achievement catalog. Safe to
// run repeatedly: existing rows are updated, not duplicated.
func main() {
	config.LoadConfig()
	database.ConnectDb()

	db := database.Database.Db

	levels := []gamifyModels.Level{
		{Number: 1, Name: "StudyTask Newcomer", MinStars: 0, MaxStars: 100, Description: "Welcome to StudyTask! Your learning journey starts here.", ImageURL: "levels/newcomer.png"},
		{Number: 2, Name: "Active Learner", MinStars: 100, MaxStars: 200, Description: "You take part actively and show real interest in learning.", ImageURL: "levels/active_learner.png"},
		{Number: 3, Name: "Curious Mind", MinStars: 200, MaxStars: 300, Description: "Your curiosity helps you understand the material deeply.", ImageURL: "levels/curious_mind.png"},
		{Number: 4, Name: "Goal Setter", MinStars: 300, MaxStars: 400, Description: "You set goals and reach them step by step.", ImageURL: "levels/goal_setter.png"},
		{Number: 5, Name: "Knowledge Explorer", MinStars: 400, MaxStars: 500, Description: "You explore topics thoroughly and from every angle.", ImageURL: "levels/knowledge_explorer.png"},
		{Number: 6, Name: "Mindful Student", MinStars: 500, MaxStars: 600, Description: "A mindful approach to studying brings excellent results.", ImageURL: "levels/mindful_student.png"},
		{Number: 7, Name: "Topic Conqueror", MinStars: 600, MaxStars: 700, Description: "Even the hardest topics give way to you.", ImageURL: "levels/topic_conqueror.png"},
		{Number: 8, Name: "Confident Practitioner", MinStars: 700, MaxStars: 800, Description: "You apply what you learn with confidence.", ImageURL: "levels/confident_practitioner.png"},
		{Number: 9, Name: "Levelled-Up Learner", MinStars: 800, MaxStars: 900, Description: "Your skills have grown remarkably!", ImageURL: "levels/levelled_up.png"},
		{Number: 10, Name: "Topic Guide", MinStars: 900, MaxStars: 1000, Description: "You can guide others through the topics you study.", ImageURL: "levels/topic_guide.png"},
	}

	levelsCreated := 0
	levelsUpdated := 0
	for _, seed := range levels {
		var existing gamifyModels.Level
		err := db.Where("number = ?", seed.Number).First(&existing).Error
		if err != nil {
			if err := db.Create(&seed).Error; err != nil {
				log.Fatalf("Failed to create level %d: %v", seed.Number, err)
			}
			levelsCreated++
			continue
		}

		existing.Name = seed.Name
		existing.MinStars = seed.MinStars
		existing.MaxStars = seed.MaxStars
		existing.Description = seed.Description
		if seed.ImageURL != "" {
			existing.ImageURL = seed.ImageURL
		}
		existing.IsDeleted = false
		if err := db.Save(&existing).Error; err != nil {
			log.Fatalf("Failed to update level %d: %v", seed.Number, err)
		}
		levelsUpdated++
	}

	log.Printf("Levels done: created %d, updated %d", levelsCreated, levelsUpdated)

	achievements := []gamifyModels.Achievement{
		// Passed quizzes
		{Code: "quiz_10", Title: "First Quiz Marathon", Description: "Pass 10 quizzes and earn branded stickers", ConditionType: gamifyModels.CondPassedQuizzes, ConditionValue: 10, Reward: "Branded stickers", RewardIcon: "⭐"},
		{Code: "quiz_20", Title: "Confident Player", Description: "Pass 20 quizzes for a sticker pack and a badge", ConditionType: gamifyModels.CondPassedQuizzes, ConditionValue: 20, Reward: "Sticker pack + badge", RewardIcon: "⭐"},
		{Code: "quiz_30", Title: "True Fighter", Description: "Pass 30 quizzes for a branded notebook", ConditionType: gamifyModels.CondPassedQuizzes, ConditionValue: 30, Reward: "StudyTask notebook", RewardIcon: "⭐"},
		{Code: "quiz_50", Title: "Half a Hundred!", Description: "Pass 50 quizzes for a water bottle", ConditionType: gamifyModels.CondPassedQuizzes, ConditionValue: 50, Reward: "StudyTask water bottle", RewardIcon: "⭐"},
		{Code: "quiz_75", Title: "Almost a Hundred", Description: "Pass 75 quizzes for a gym backpack", ConditionType: gamifyModels.CondPassedQuizzes, ConditionValue: 75, Reward: "Gym backpack", RewardIcon: "⭐"},
		{Code: "quiz_100", Title: "One Hundred!", Description: "Pass 100 quizzes for a branded hoodie", ConditionType: gamifyModels.CondPassedQuizzes, ConditionValue: 100, Reward: "StudyTask hoodie", RewardIcon: "⭐"},

		// Perfect quizzes
		{Code: "perfect_5", Title: "100% Accuracy", Description: "Score 100% on 5 quizzes for the Sharpshooter badge", ConditionType: gamifyModels.CondPerfectQuizzes, ConditionValue: 5, Reward: "Sharpshooter badge", RewardIcon: "🎯"},
		{Code: "perfect_10", Title: "Sniper", Description: "Score 100% on 10 quizzes for a branded mug", ConditionType: gamifyModels.CondPerfectQuizzes, ConditionValue: 10, Reward: "StudyTask mug", RewardIcon: "🎯"},
		{Code: "perfect_20", Title: "Test Legend", Description: "Score 100% on 20 quizzes for headphones", ConditionType: gamifyModels.CondPerfectQuizzes, ConditionValue: 20, Reward: "Headphones", RewardIcon: "🎯"},

		// Completed courses
		{Code: "courses_5", Title: "First 5 Courses", Description: "Complete 5 courses for a t-shirt", ConditionType: gamifyModels.CondCompletedCourses, ConditionValue: 5, Reward: "StudyTask t-shirt", RewardIcon: "👕"},
		{Code: "courses_10", Title: "The Ten!", Description: "Complete 10 courses for a sports bag", ConditionType: gamifyModels.CondCompletedCourses, ConditionValue: 10, Reward: "Sports bag", RewardIcon: "🎒"},
		{Code: "courses_15", Title: "Fifteen", Description: "Complete 15 courses for a smart band", ConditionType: gamifyModels.CondCompletedCourses, ConditionValue: 15, Reward: "Smart band", RewardIcon: "⌚"},
		{Code: "courses_20", Title: "Twenty", Description: "Complete 20 courses for a tablet", ConditionType: gamifyModels.CondCompletedCourses, ConditionValue: 20, Reward: "Tablet", RewardIcon: "📱"},

		// Star balance
		{Code: "stars_100", Title: "100 Stars", Description: "Collect 100 stars for a sticker pack", ConditionType: gamifyModels.CondTotalStars, ConditionValue: 100, Reward: "Sticker pack", RewardIcon: "🌟"},
		{Code: "stars_250", Title: "250 Stars", Description: "Collect 250 stars for a branded cap", ConditionType: gamifyModels.CondTotalStars, ConditionValue: 250, Reward: "StudyTask cap", RewardIcon: "🧢"},
		{Code: "stars_500", Title: "500 Stars", Description: "Collect 500 stars for a t-shirt", ConditionType: gamifyModels.CondTotalStars, ConditionValue: 500, Reward: "StudyTask t-shirt", RewardIcon: "👕"},
		{Code: "stars_1000", Title: "1000 Stars", Description: "Collect 1000 stars for a hoodie", ConditionType: gamifyModels.CondTotalStars, ConditionValue: 1000, Reward: "StudyTask hoodie", RewardIcon: "🧥"},
		{Code: "stars_2000", Title: "2000 Stars", Description: "Collect 2000 stars for a backpack", ConditionType: gamifyModels.CondTotalStars, ConditionValue: 2000, Reward: "StudyTask backpack", RewardIcon: "🎒"},

		// Levels
		{Code: "level_2", Title: "Level 2", Description: "Reach level 2 for stickers", ConditionType: gamifyModels.CondLevelReached, ConditionValue: 2, Reward: "StudyTask stickers", RewardIcon: "🏅"},
		{Code: "level_3", Title: "Level 3", Description: "Reach level 3 for a badge", ConditionType: gamifyModels.CondLevelReached, ConditionValue: 3, Reward: "StudyTask badge", RewardIcon: "🏅"},
		{Code: "level_4", Title: "Level 4", Description: "Reach level 4 for a water bottle", ConditionType: gamifyModels.CondLevelReached, ConditionValue: 4, Reward: "StudyTask bottle", RewardIcon: "🏅"},
		{Code: "level_5", Title: "Level 5", Description: "Reach level 5 for a t-shirt", ConditionType: gamifyModels.CondLevelReached, ConditionValue: 5, Reward: "StudyTask t-shirt", RewardIcon: "🏅"},

		// Mixed milestones
		{Code: "streak_quiz_7", Title: "7-Day Streak", Description: "Keep passing quizzes for a week for a notepad", ConditionType: gamifyModels.CondPassedQuizzes, ConditionValue: 25, Reward: "StudyTask notepad", RewardIcon: "📓"},
		{Code: "streak_quiz_14", Title: "14-Day Streak", Description: "Keep passing quizzes for two weeks for a thermo mug", ConditionType: gamifyModels.CondPassedQuizzes, ConditionValue: 40, Reward: "Thermo mug", RewardIcon: "🥤"},
		{Code: "mix_start", Title: "Starter Set", Description: "10 quizzes and a course behind you", ConditionType: gamifyModels.CondPassedQuizzes, ConditionValue: 10, Reward: "Sticker set", RewardIcon: "🎒"},
		{Code: "mix_mid", Title: "Solid Start", Description: "30 quizzes and 3 courses for a cap", ConditionType: gamifyModels.CondPassedQuizzes, ConditionValue: 30, Reward: "StudyTask cap", RewardIcon: "🧢"},
		{Code: "mix_pro", Title: "Champion's Path", Description: "75 quizzes and 10 courses for a hoodie", ConditionType: gamifyModels.CondPassedQuizzes, ConditionValue: 75, Reward: "StudyTask hoodie", RewardIcon: "🧥"},
		{Code: "mix_legend", Title: "StudyTask Legend", Description: "100 quizzes and 20 courses for a tablet", ConditionType: gamifyModels.CondPassedQuizzes, ConditionValue: 100, Reward: "Tablet", RewardIcon: "📱"},
		{Code: "perfect_master", Title: "Accuracy Master", Description: "20 perfect quizzes for headphones", ConditionType: gamifyModels.CondPerfectQuizzes, ConditionValue: 20, Reward: "Headphones", RewardIcon: "🎧"},
		{Code: "courses_pro", Title: "Study Pro", Description: "15 courses for a smart band", ConditionType: gamifyModels.CondCompletedCourses, ConditionValue: 15, Reward: "Smart band", RewardIcon: "⌚"},
	}

	achievementsCreated := 0
	achievementsSkipped := 0
	for _, seed := range achievements {
		var count int64
		db.Model(&gamifyModels.Achievement{}).Where("code = ?", seed.Code).Count(&count)
		if count > 0 {
			achievementsSkipped++
			continue
		}

		seed.IsActive = true
		if err := db.Create(&seed).Error; err != nil {
			log.Fatalf("Failed to create achievement %s: %v", seed.Code, err)
		}
		achievementsCreated++
	}

	log.Printf("Achievements done: created %d, already present %d", achievementsCreated, achievementsSkipped)
}
