package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank(t *testing.T) {
	assert.Equal(t, "Beginner", Rank(1))
	assert.Equal(t, "Beginner", Rank(4))
	assert.Equal(t, "Intermediate", Rank(5))
	assert.Equal(t, "Advanced", Rank(10))
	assert.Equal(t, "Expert", Rank(15))
	assert.Equal(t, "Expert", Rank(19))
	assert.Equal(t, "Master", Rank(20))
}

func TestActivityScore_InactivityPenalty(t *testing.T) {
	now := ts("2024-01-15T00:00:00Z")
	base := Player{
		Level:         10,
		CurrentStreak: 4,
		Achievements:  []string{"First Week", "Early Bird"},
	}

	active := base
	active.LastActive = now
	assert.Equal(t, 160, active.ActivityScore(now))

	idle := base
	idle.LastActive = now.Add(-5 * 24 * time.Hour)
	assert.Equal(t, 128, idle.ActivityScore(now))

	dormant := base
	dormant.LastActive = now.Add(-10 * 24 * time.Hour)
	assert.Equal(t, 80, dormant.ActivityScore(now))
}

func TestCompletionRate(t *testing.T) {
	empty := Player{}
	assert.Equal(t, 0, empty.CompletionRate())

	p := Player{CompletedQuests: []int{3}, ActiveQuests: []int{1, 2, 4}}
	assert.Equal(t, 25, p.CompletionRate())

	p = Player{CompletedQuests: []int{1, 2}, ActiveQuests: []int{3}}
	assert.Equal(t, 67, p.CompletionRate())
}

func TestStreakStatus(t *testing.T) {
	assert.Equal(t, "Building", (&Player{CurrentStreak: 0}).StreakStatus())
	assert.Equal(t, "Good 👍", (&Player{CurrentStreak: 3}).StreakStatus())
	assert.Equal(t, "Hot Streak! 🔥", (&Player{CurrentStreak: 7}).StreakStatus())
}

func TestCalculateStats(t *testing.T) {
	now := ts("2024-01-15T00:00:00Z")
	p := Player{
		Level:           15,
		TotalXP:         2450,
		CurrentStreak:   7,
		LongestStreak:   21,
		LastActive:      now,
		ActiveQuests:    []int{1, 2, 4, 5},
		CompletedQuests: []int{3},
		Achievements:    []string{"First Week", "Early Bird", "Streak Master"},
		Preferences: Preferences{
			Categories: []CategoryCode{CategoryWork, CategoryHealth},
		},
		Stats: ProfileStats{AverageCompletionTime: 45},
	}

	stats := p.CalculateStats(now)
	assert.Equal(t, 1, stats.TotalQuestsCompleted)
	assert.Equal(t, 4, stats.ActiveQuestsCount)
	assert.Equal(t, 5, stats.TotalQuests)
	assert.Equal(t, 20, stats.CompletionRate)
	assert.Equal(t, 2450, stats.AverageXPPerQuest)
	assert.Equal(t, CategoryWork, stats.MostActiveCategory)
	assert.Equal(t, 45, stats.TotalEstimatedTimeMinutes)
	assert.Equal(t, "Expert", stats.Rank)
	assert.Equal(t, 245, stats.ActivityScore)
}

func TestCalculateStats_Defaults(t *testing.T) {
	now := ts("2024-01-15T00:00:00Z")
	p := Player{LastActive: now}

	stats := p.CalculateStats(now)
	assert.Equal(t, 0, stats.AverageXPPerQuest)
	assert.Equal(t, CategoryCode("none"), stats.MostActiveCategory)
	assert.Equal(t, "Beginner", stats.Rank)
}

func TestAchievementDetails(t *testing.T) {
	p := Player{Achievements: []string{"XP Hunter", "Mystery Badge"}}

	details := p.AchievementDetails()
	require.Len(t, details, 2)
	assert.Equal(t, "Epic", details[0].Rarity)
	assert.Equal(t, "Earned over 3000 XP points", details[0].Description)
	assert.Equal(t, "Special achievement unlocked", details[1].Description)
	assert.Equal(t, "Unknown", details[1].Rarity)
}

func TestRecommendations_CapsAtThree(t *testing.T) {
	now := ts("2024-01-15T00:00:00Z")
	// Triggers all four rules.
	p := Player{
		Level:         1,
		XPToNextLevel: 50,
		CurrentStreak: 0,
		LastActive:    now,
		ActiveQuests:  []int{1, 2},
		Preferences:   Preferences{Categories: []CategoryCode{CategoryPersonal}},
	}

	recs := p.Recommendations(now)
	require.Len(t, recs, 3)
	assert.Equal(t, "improvement", recs[0].Type)
	assert.Equal(t, "streak", recs[1].Type)
	assert.Equal(t, "variety", recs[2].Type)
}

func TestRecommendations_LevelUpMessage(t *testing.T) {
	now := ts("2024-01-15T00:00:00Z")
	p := Player{
		Level:           8,
		XPToNextLevel:   60,
		CurrentStreak:   5,
		LastActive:      now,
		CompletedQuests: []int{1, 2, 3},
		Preferences:     Preferences{Categories: []CategoryCode{CategoryWork, CategoryHealth}},
	}

	recs := p.Recommendations(now)
	require.Len(t, recs, 1)
	assert.Equal(t, "level_up", recs[0].Type)
	assert.Equal(t, "You're only 60 XP away from level 9", recs[0].Description)
}

func TestRecommendations_NoneForStrongPlayer(t *testing.T) {
	now := ts("2024-01-15T00:00:00Z")
	p := Player{
		Level:           22,
		XPToNextLevel:   800,
		CurrentStreak:   14,
		LastActive:      now,
		ActiveQuests:    []int{1},
		CompletedQuests: []int{2, 3, 4},
		Preferences:     Preferences{Categories: []CategoryCode{CategoryWork, CategoryHealth}},
	}

	assert.Empty(t, p.Recommendations(now))
}
