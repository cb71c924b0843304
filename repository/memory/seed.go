package memory

import (
	"time"

	"github.com/questtrack/backend/domain"
)

func mustTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

func timePtr(value string) *time.Time {
	t := mustTime(value)
	return &t
}

// SeedQuests returns the fixed quest collection the service boots with.
func SeedQuests() []domain.Quest {
	return []domain.Quest{
		{
			ID:            1,
			Title:         "Complete Morning Workout",
			Description:   "Do 30 minutes of exercise to start the day strong",
			Status:        domain.StatusPending,
			Priority:      domain.PriorityMedium,
			Category:      domain.CategoryHealth,
			XPReward:      50,
			Deadline:      timePtr("2024-01-15T09:00:00Z"),
			EstimatedTime: 30,
			CreatedAt:     mustTime("2024-01-14T06:00:00Z"),
			Tags:          []string{"exercise", "health", "morning"},
			Difficulty:    domain.DifficultyEasy,
		},
		{
			ID:            2,
			Title:         "Finish Project Report",
			Description:   "Write the final report for the quarterly project review",
			Status:        domain.StatusInProgress,
			Priority:      domain.PriorityHigh,
			Category:      domain.CategoryWork,
			XPReward:      100,
			Deadline:      timePtr("2024-01-16T17:00:00Z"),
			EstimatedTime: 120,
			CreatedAt:     mustTime("2024-01-10T09:00:00Z"),
			Tags:          []string{"work", "report", "deadline"},
			Difficulty:    domain.DifficultyMedium,
		},
		{
			ID:            3,
			Title:         "Learn New Recipe",
			Description:   "Try cooking a new dish from the cookbook",
			Status:        domain.StatusCompleted,
			Priority:      domain.PriorityLow,
			Category:      domain.CategoryPersonal,
			XPReward:      25,
			Deadline:      timePtr("2024-01-14T19:00:00Z"),
			EstimatedTime: 60,
			CreatedAt:     mustTime("2024-01-13T10:00:00Z"),
			CompletedAt:   timePtr("2024-01-14T18:30:00Z"),
			Tags:          []string{"cooking", "learning", "personal"},
			Difficulty:    domain.DifficultyEasy,
		},
		{
			ID:            4,
			Title:         "Call Mom",
			Description:   "Weekly check-in call with family",
			Status:        domain.StatusPending,
			Priority:      domain.PriorityMedium,
			Category:      domain.CategoryPersonal,
			XPReward:      30,
			Deadline:      timePtr("2024-01-17T20:00:00Z"),
			EstimatedTime: 20,
			CreatedAt:     mustTime("2024-01-14T08:00:00Z"),
			Tags:          []string{"family", "communication"},
			Difficulty:    domain.DifficultyEasy,
		},
		{
			ID:            5,
			Title:         "Debug Login Issue",
			Description:   "Fix the authentication bug reported by users",
			Status:        domain.StatusPending,
			Priority:      domain.PriorityCritical,
			Category:      domain.CategoryWork,
			XPReward:      150,
			Deadline:      timePtr("2024-01-15T12:00:00Z"),
			EstimatedTime: 90,
			CreatedAt:     mustTime("2024-01-14T14:00:00Z"),
			Tags:          []string{"bug", "authentication", "urgent"},
			Difficulty:    domain.DifficultyHard,
		},
		{
			ID:            6,
			Title:         "Read Chapter 3",
			Description:   "Complete reading assignment for JavaScript course",
			Status:        domain.StatusPending,
			Priority:      domain.PriorityMedium,
			Category:      domain.CategoryLearning,
			XPReward:      40,
			Deadline:      timePtr("2024-01-18T23:59:00Z"),
			EstimatedTime: 45,
			CreatedAt:     mustTime("2024-01-15T09:00:00Z"),
			Tags:          []string{"reading", "javascript", "course"},
			Difficulty:    domain.DifficultyEasy,
		},
	}
}

// SeedPlayers returns the fixed player profiles. The demo account joins at
// the supplied instant.
func SeedPlayers(now time.Time) []domain.Player {
	return []domain.Player{
		{
			Username:        "alex",
			DisplayName:     "Alex Chen",
			Email:           "alex.chen@example.com",
			Level:           15,
			TotalXP:         2450,
			XPToNextLevel:   550,
			CurrentStreak:   7,
			LongestStreak:   21,
			JoinDate:        mustTime("2024-01-01T00:00:00Z"),
			LastActive:      mustTime("2024-01-14T18:30:00Z"),
			ActiveQuests:    []int{1, 2, 4, 5},
			CompletedQuests: []int{3},
			Achievements:    []string{"First Week", "Early Bird", "Streak Master"},
			Preferences: domain.Preferences{
				Categories:    []domain.CategoryCode{domain.CategoryWork, domain.CategoryHealth},
				Difficulty:    domain.DifficultyMedium,
				Notifications: true,
				Theme:         "dark",
			},
			Stats: domain.ProfileStats{
				TotalQuestsStarted:    12,
				CompletionRate:        75,
				AverageCompletionTime: 45,
				FavoriteCategory:      domain.CategoryWork,
			},
		},
		{
			Username:        "jordan",
			DisplayName:     "Jordan Smith",
			Email:           "jordan.smith@example.com",
			Level:           8,
			TotalXP:         890,
			XPToNextLevel:   110,
			CurrentStreak:   3,
			LongestStreak:   12,
			JoinDate:        mustTime("2024-01-05T00:00:00Z"),
			LastActive:      mustTime("2024-01-14T16:45:00Z"),
			ActiveQuests:    []int{2, 4},
			CompletedQuests: []int{},
			Achievements:    []string{"Getting Started"},
			Preferences: domain.Preferences{
				Categories:    []domain.CategoryCode{domain.CategoryPersonal, domain.CategoryLearning},
				Difficulty:    domain.DifficultyEasy,
				Notifications: false,
				Theme:         "light",
			},
			Stats: domain.ProfileStats{
				TotalQuestsStarted:    6,
				CompletionRate:        50,
				AverageCompletionTime: 60,
				FavoriteCategory:      domain.CategoryPersonal,
			},
		},
		{
			Username:        "sam",
			DisplayName:     "Sam Taylor",
			Email:           "sam.taylor@example.com",
			Level:           22,
			TotalXP:         4200,
			XPToNextLevel:   800,
			CurrentStreak:   14,
			LongestStreak:   35,
			JoinDate:        mustTime("2023-12-15T00:00:00Z"),
			LastActive:      mustTime("2024-01-14T20:15:00Z"),
			ActiveQuests:    []int{1, 5},
			CompletedQuests: []int{3},
			Achievements:    []string{"First Week", "Early Bird", "Streak Master", "Veteran", "XP Hunter"},
			Preferences: domain.Preferences{
				Categories:    []domain.CategoryCode{domain.CategoryWork, domain.CategoryHealth, domain.CategoryPersonal},
				Difficulty:    domain.DifficultyHard,
				Notifications: true,
				Theme:         "auto",
			},
			Stats: domain.ProfileStats{
				TotalQuestsStarted:    25,
				CompletionRate:        88,
				AverageCompletionTime: 35,
				FavoriteCategory:      domain.CategoryWork,
			},
		},
		{
			Username:        "demo",
			DisplayName:     "Demo User",
			Email:           "demo@questtracker.com",
			Level:           1,
			TotalXP:         0,
			XPToNextLevel:   100,
			CurrentStreak:   0,
			LongestStreak:   0,
			JoinDate:        now,
			LastActive:      now,
			ActiveQuests:    []int{1},
			CompletedQuests: []int{},
			Achievements:    []string{},
			Preferences: domain.Preferences{
				Categories:    []domain.CategoryCode{domain.CategoryPersonal},
				Difficulty:    domain.DifficultyEasy,
				Notifications: true,
				Theme:         "light",
			},
			Stats: domain.ProfileStats{
				TotalQuestsStarted:    1,
				CompletionRate:        0,
				AverageCompletionTime: 0,
				FavoriteCategory:      domain.CategoryPersonal,
			},
		},
	}
}

// SeedCategories returns the static category catalog.
func SeedCategories() []domain.Category {
	return []domain.Category{
		{
			ID:                  domain.CategoryWork,
			Name:                "Work & Career",
			Description:         "Professional development and work-related tasks",
			Color:               "#3B82F6",
			Icon:                "💼",
			Emoji:               "💼",
			DefaultXPMultiplier: 1.2,
			CommonPriorities:    []domain.Priority{domain.PriorityHigh, domain.PriorityCritical},
			SuggestedTimeBlocks: []int{30, 60, 120},
			PopularTags:         []string{"meetings", "projects", "deadlines", "learning"},
			DifficultyDistribution: domain.DifficultyDistribution{
				Easy: 20, Medium: 50, Hard: 30,
			},
			Tips: []string{
				"Break large projects into smaller, manageable tasks",
				"Set realistic deadlines to avoid burnout",
				"Use high-priority for urgent work items",
			},
		},
		{
			ID:                  domain.CategoryHealth,
			Name:                "Health & Fitness",
			Description:         "Physical and mental wellness activities",
			Color:               "#10B981",
			Icon:                "🏃",
			Emoji:               "🏃‍♂️",
			DefaultXPMultiplier: 1.1,
			CommonPriorities:    []domain.Priority{domain.PriorityMedium, domain.PriorityHigh},
			SuggestedTimeBlocks: []int{20, 30, 45, 60},
			PopularTags:         []string{"exercise", "meditation", "nutrition", "sleep"},
			DifficultyDistribution: domain.DifficultyDistribution{
				Easy: 40, Medium: 40, Hard: 20,
			},
			Tips: []string{
				"Start with small, achievable goals",
				"Consistency is more important than intensity",
				"Track your progress to stay motivated",
			},
		},
		{
			ID:                  domain.CategoryPersonal,
			Name:                "Personal Life",
			Description:         "Family, friends, hobbies, and personal growth",
			Color:               "#8B5CF6",
			Icon:                "🌟",
			Emoji:               "🌟",
			DefaultXPMultiplier: 1.0,
			CommonPriorities:    []domain.Priority{domain.PriorityLow, domain.PriorityMedium},
			SuggestedTimeBlocks: []int{15, 30, 60},
			PopularTags:         []string{"family", "friends", "hobbies", "self-care"},
			DifficultyDistribution: domain.DifficultyDistribution{
				Easy: 60, Medium: 30, Hard: 10,
			},
			Tips: []string{
				"Schedule personal time just like work meetings",
				"Small gestures often have the biggest impact",
				"Remember to celebrate personal achievements",
			},
		},
		{
			ID:                  domain.CategoryLearning,
			Name:                "Learning & Skills",
			Description:         "Education, skill development, and knowledge acquisition",
			Color:               "#F59E0B",
			Icon:                "📚",
			Emoji:               "📚",
			DefaultXPMultiplier: 1.3,
			CommonPriorities:    []domain.Priority{domain.PriorityMedium, domain.PriorityHigh},
			SuggestedTimeBlocks: []int{45, 60, 90},
			PopularTags:         []string{"courses", "reading", "practice", "research"},
			DifficultyDistribution: domain.DifficultyDistribution{
				Easy: 30, Medium: 50, Hard: 20,
			},
			Tips: []string{
				"Set specific learning goals for each session",
				"Apply what you learn through practice projects",
				"Join communities related to your learning topics",
			},
		},
		{
			ID:                  domain.CategoryCreative,
			Name:                "Creative Projects",
			Description:         "Art, writing, music, and other creative endeavors",
			Color:               "#EF4444",
			Icon:                "🎨",
			Emoji:               "🎨",
			DefaultXPMultiplier: 1.1,
			CommonPriorities:    []domain.Priority{domain.PriorityLow, domain.PriorityMedium},
			SuggestedTimeBlocks: []int{30, 60, 120},
			PopularTags:         []string{"art", "writing", "music", "design"},
			DifficultyDistribution: domain.DifficultyDistribution{
				Easy: 35, Medium: 45, Hard: 20,
			},
			Tips: []string{
				"Embrace the creative process, not just the outcome",
				"Set aside regular time for creative exploration",
				"Share your work to get feedback and motivation",
			},
		},
		{
			ID:                  domain.CategoryFinance,
			Name:                "Finance & Money",
			Description:         "Budgeting, investing, and financial planning",
			Color:               "#059669",
			Icon:                "💰",
			Emoji:               "💰",
			DefaultXPMultiplier: 1.2,
			CommonPriorities:    []domain.Priority{domain.PriorityMedium, domain.PriorityHigh},
			SuggestedTimeBlocks: []int{30, 45, 60},
			PopularTags:         []string{"budgeting", "investing", "savings", "planning"},
			DifficultyDistribution: domain.DifficultyDistribution{
				Easy: 25, Medium: 55, Hard: 20,
			},
			Tips: []string{
				"Start with small, consistent financial habits",
				"Automate savings and investments when possible",
				"Review and adjust your financial goals regularly",
			},
		},
	}
}

// SeedCategoryStats returns the frozen per-category usage snapshot. It is
// intentionally independent of the live quest collection.
func SeedCategoryStats() map[domain.CategoryCode]domain.CategoryStats {
	return map[domain.CategoryCode]domain.CategoryStats{
		domain.CategoryWork:     {TotalQuests: 12, Completed: 8, AverageCompletionTime: 65, ActiveUsers: 45},
		domain.CategoryHealth:   {TotalQuests: 18, Completed: 14, AverageCompletionTime: 35, ActiveUsers: 38},
		domain.CategoryPersonal: {TotalQuests: 15, Completed: 12, AverageCompletionTime: 40, ActiveUsers: 42},
		domain.CategoryLearning: {TotalQuests: 20, Completed: 15, AverageCompletionTime: 75, ActiveUsers: 35},
		domain.CategoryCreative: {TotalQuests: 10, Completed: 7, AverageCompletionTime: 85, ActiveUsers: 25},
		domain.CategoryFinance:  {TotalQuests: 8, Completed: 5, AverageCompletionTime: 50, ActiveUsers: 20},
	}
}
