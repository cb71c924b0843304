package domain

import (
	"fmt"
	"math"
	"time"
)

// Preferences is the mutable sub-record of a player profile.
type Preferences struct {
	Categories    []CategoryCode `json:"categories"`
	Difficulty    Difficulty     `json:"difficulty"`
	Notifications bool           `json:"notifications"`
	Theme         string         `json:"theme"`
}

// PreferencesPatch carries the fields of a partial preferences update.
// Nil fields are left untouched.
type PreferencesPatch struct {
	Categories    []CategoryCode
	Difficulty    *Difficulty
	Notifications *bool
	Theme         *string
}

// ProfileStats is the static per-player snapshot seeded at startup.
// It is not recomputed from the live quest collection.
type ProfileStats struct {
	TotalQuestsStarted    int          `json:"total_quests_started"`
	CompletionRate        int          `json:"completion_rate"`
	AverageCompletionTime int          `json:"average_completion_time"`
	FavoriteCategory      CategoryCode `json:"favorite_category"`
}

// Player represents a profile keyed by username.
type Player struct {
	Username        string       `json:"username"`
	DisplayName     string       `json:"display_name"`
	Email           string       `json:"email"`
	Level           int          `json:"level"`
	TotalXP         int          `json:"total_xp"`
	XPToNextLevel   int          `json:"xp_to_next_level"`
	CurrentStreak   int          `json:"current_streak"`
	LongestStreak   int          `json:"longest_streak"`
	JoinDate        time.Time    `json:"join_date"`
	LastActive      time.Time    `json:"last_active"`
	ActiveQuests    []int        `json:"active_quests"`
	CompletedQuests []int        `json:"completed_quests"`
	Achievements    []string     `json:"achievements"`
	Preferences     Preferences  `json:"preferences"`
	Stats           ProfileStats `json:"stats"`
}

// Rank maps a level to its named tier.
func Rank(level int) string {
	switch {
	case level >= 20:
		return "Master"
	case level >= 15:
		return "Expert"
	case level >= 10:
		return "Advanced"
	case level >= 5:
		return "Intermediate"
	default:
		return "Beginner"
	}
}

// ActivityScore scores a player's engagement: level, streak and achievements
// weighted, then scaled down by inactivity. The most severe threshold wins.
func (p *Player) ActivityScore(now time.Time) int {
	score := float64(p.Level*10 + p.CurrentStreak*5 + len(p.Achievements)*20)

	daysInactive := int(now.Sub(p.LastActive).Hours() / 24)
	if daysInactive > 7 {
		score *= 0.5
	} else if daysInactive > 3 {
		score *= 0.8
	}

	return int(math.Round(score))
}

// CompletionRate is the percentage of the player's quests that are completed,
// zero when the player has no quests at all.
func (p *Player) CompletionRate() int {
	completed := len(p.CompletedQuests)
	total := completed + len(p.ActiveQuests)
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// StreakStatus labels the current streak.
func (p *Player) StreakStatus() string {
	switch {
	case p.CurrentStreak >= 7:
		return "Hot Streak! 🔥"
	case p.CurrentStreak >= 3:
		return "Good 👍"
	default:
		return "Building"
	}
}

// CalculatedStats is the derived statistics block served with profiles.
type CalculatedStats struct {
	TotalQuestsCompleted      int          `json:"total_quests_completed"`
	ActiveQuestsCount         int          `json:"active_quests_count"`
	TotalQuests               int          `json:"total_quests"`
	CompletionRate            int          `json:"completion_rate"`
	AverageXPPerQuest         int          `json:"average_xp_per_quest"`
	StreakStatus              string       `json:"streak_status"`
	CurrentStreak             int          `json:"current_streak"`
	LongestStreak             int          `json:"longest_streak"`
	MostActiveCategory        CategoryCode `json:"most_active_category"`
	TotalEstimatedTimeMinutes int          `json:"total_estimated_time_minutes"`
	Rank                      string       `json:"rank"`
	ActivityScore             int          `json:"activity_score"`
}

// CalculateStats derives the full statistics block at the given instant.
func (p *Player) CalculateStats(now time.Time) CalculatedStats {
	completed := len(p.CompletedQuests)
	active := len(p.ActiveQuests)

	avgXP := 0
	if completed > 0 {
		avgXP = int(math.Round(float64(p.TotalXP) / float64(completed)))
	}

	mostActive := CategoryCode("none")
	if len(p.Preferences.Categories) > 0 {
		mostActive = p.Preferences.Categories[0]
	}

	return CalculatedStats{
		TotalQuestsCompleted:      completed,
		ActiveQuestsCount:         active,
		TotalQuests:               completed + active,
		CompletionRate:            p.CompletionRate(),
		AverageXPPerQuest:         avgXP,
		StreakStatus:              p.StreakStatus(),
		CurrentStreak:             p.CurrentStreak,
		LongestStreak:             p.LongestStreak,
		MostActiveCategory:        mostActive,
		TotalEstimatedTimeMinutes: p.Stats.AverageCompletionTime * completed,
		Rank:                      Rank(p.Level),
		ActivityScore:             p.ActivityScore(now),
	}
}

// AchievementDetail describes a named achievement.
type AchievementDetail struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Rarity      string `json:"rarity"`
}

var achievementDescriptions = map[string]string{
	"First Week":      "Completed your first week of quests",
	"Early Bird":      "Completed 5 quests before their deadline",
	"Streak Master":   "Maintained a 7-day quest completion streak",
	"Getting Started": "Completed your first quest",
	"Veteran":         "Been active for over 30 days",
	"XP Hunter":       "Earned over 3000 XP points",
}

var achievementRarities = map[string]string{
	"Getting Started": "Common",
	"First Week":      "Common",
	"Early Bird":      "Uncommon",
	"Streak Master":   "Rare",
	"Veteran":         "Rare",
	"XP Hunter":       "Epic",
}

// AchievementDetails expands the player's achievement names into their
// descriptions and rarities.
func (p *Player) AchievementDetails() []AchievementDetail {
	details := make([]AchievementDetail, 0, len(p.Achievements))
	for _, name := range p.Achievements {
		desc, ok := achievementDescriptions[name]
		if !ok {
			desc = "Special achievement unlocked"
		}
		rarity, ok := achievementRarities[name]
		if !ok {
			rarity = "Unknown"
		}
		details = append(details, AchievementDetail{Name: name, Description: desc, Rarity: rarity})
	}
	return details
}

// Recommendation is a personalized next-step suggestion.
type Recommendation struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action"`
}

// Recommendations derives up to three suggestions from the player's
// current statistics.
func (p *Player) Recommendations(now time.Time) []Recommendation {
	var recs []Recommendation

	if p.CompletionRate() < 50 {
		recs = append(recs, Recommendation{
			Type:        "improvement",
			Title:       "Focus on Quest Completion",
			Description: "Try completing more of your active quests to improve your completion rate",
			Action:      "Review your active quests and prioritize the easiest ones",
		})
	}

	if p.CurrentStreak < 3 {
		recs = append(recs, Recommendation{
			Type:        "streak",
			Title:       "Build Your Streak",
			Description: "Complete quests daily to build up your completion streak",
			Action:      "Set small, achievable daily quests",
		})
	}

	if len(p.Preferences.Categories) < 2 {
		recs = append(recs, Recommendation{
			Type:        "variety",
			Title:       "Explore New Categories",
			Description: "Try quests in different categories to earn more diverse XP",
			Action:      "Browse the categories endpoint for new quest types",
		})
	}

	if p.XPToNextLevel < 100 {
		recs = append(recs, Recommendation{
			Type:        "level_up",
			Title:       "Level Up Soon!",
			Description: fmt.Sprintf("You're only %d XP away from level %d", p.XPToNextLevel, p.Level+1),
			Action:      "Complete a high-priority quest to level up quickly",
		})
	}

	if len(recs) > 3 {
		recs = recs[:3]
	}
	return recs
}
