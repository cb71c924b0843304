package player

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/questtrack/backend/domain"
	"github.com/questtrack/backend/internal/pipeline"
	"github.com/questtrack/backend/repository"
)

const (
	// DefaultLeaderboardLimit is the page size when none is requested.
	DefaultLeaderboardLimit = 10
	// MaxLeaderboardLimit bounds leaderboard page sizes.
	MaxLeaderboardLimit = 50
)

type UseCase struct {
	players repository.PlayerRepository
	logger  *zap.Logger
	now     func() time.Time
}

func New(players repository.PlayerRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		players: players,
		logger:  logger,
		now:     time.Now,
	}
}

// QuestLink points a profile at one of the player's quests.
type QuestLink struct {
	ID       int    `json:"id"`
	Endpoint string `json:"endpoint"`
}

// QuestDetails groups the player's quest links by state.
type QuestDetails struct {
	Active    []QuestLink `json:"active"`
	Completed []QuestLink `json:"completed"`
}

// Profile is the full player payload.
type Profile struct {
	domain.Player
	CalculatedStats    *domain.CalculatedStats    `json:"calculated_stats,omitempty"`
	QuestDetails       *QuestDetails              `json:"quest_details,omitempty"`
	AchievementDetails []domain.AchievementDetail `json:"achievement_details"`
	Recommendations    []domain.Recommendation    `json:"recommendations"`
}

// ProfileOptions toggles the optional profile blocks.
type ProfileOptions struct {
	IncludeQuests bool
	IncludeStats  bool
}

// GetProfile assembles a player profile with derived statistics,
// achievement details and recommendations.
func (uc *UseCase) GetProfile(ctx context.Context, username string, opts ProfileOptions) (*Profile, error) {
	p, err := uc.players.GetByUsername(ctx, username)
	if err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return nil, uc.notFound(ctx, username)
		}
		return nil, err
	}

	now := uc.now()
	profile := &Profile{
		Player:             *p,
		AchievementDetails: p.AchievementDetails(),
		Recommendations:    p.Recommendations(now),
	}

	if opts.IncludeStats {
		stats := p.CalculateStats(now)
		profile.CalculatedStats = &stats
	}

	if opts.IncludeQuests {
		profile.QuestDetails = &QuestDetails{
			Active:    questLinks(p.ActiveQuests),
			Completed: questLinks(p.CompletedQuests),
		}
	}

	return profile, nil
}

// Entry is one leaderboard row.
type Entry struct {
	Username            string    `json:"username"`
	DisplayName         string    `json:"display_name"`
	Level               int       `json:"level"`
	TotalXP             int       `json:"total_xp"`
	CurrentStreak       int       `json:"current_streak"`
	Rank                string    `json:"rank"`
	CompletedQuests     int       `json:"completed_quests"`
	ActiveQuests        int       `json:"active_quests"`
	CompletionRate      int       `json:"completion_rate"`
	ActivityScore       int       `json:"activity_score"`
	LastActive          time.Time `json:"last_active"`
	AchievementsCount   int       `json:"achievements_count"`
	LeaderboardPosition int       `json:"leaderboard_position"`
	Endpoint            string    `json:"endpoint"`
}

// LeaderboardStats aggregates the whole player base, not just the page.
type LeaderboardStats struct {
	TotalPlayers          int    `json:"total_players"`
	AverageLevel          int    `json:"average_level"`
	TotalXPEarned         int    `json:"total_xp_earned"`
	AverageCompletionRate int    `json:"average_completion_rate"`
	MostActivePlayer      *Entry `json:"most_active_player"`
}

type Sorting struct {
	By    string `json:"by"`
	Order string `json:"order"`
}

type Pagination struct {
	Limit    int  `json:"limit"`
	Returned int  `json:"returned"`
	HasMore  bool `json:"has_more"`
}

// LeaderboardResult is the leaderboard payload.
type LeaderboardResult struct {
	LeaderboardStats LeaderboardStats `json:"leaderboard_stats"`
	SortApplied      Sorting          `json:"sort_applied"`
	Pagination       Pagination       `json:"pagination"`
	Players          []Entry          `json:"players"`
}

// LeaderboardParams carries the raw leaderboard query parameters.
type LeaderboardParams struct {
	SortBy string
	Order  string
	Limit  int
}

// Leaderboard ranks all players by the selected key. Positions are assigned
// after sorting, before pagination.
func (uc *UseCase) Leaderboard(ctx context.Context, params LeaderboardParams) (*LeaderboardResult, error) {
	all, err := uc.players.List(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	entries := make([]Entry, 0, len(all))
	for _, p := range all {
		stats := p.CalculateStats(now)
		entries = append(entries, Entry{
			Username:          p.Username,
			DisplayName:       p.DisplayName,
			Level:             p.Level,
			TotalXP:           p.TotalXP,
			CurrentStreak:     p.CurrentStreak,
			Rank:              stats.Rank,
			CompletedQuests:   stats.TotalQuestsCompleted,
			ActiveQuests:      stats.ActiveQuestsCount,
			CompletionRate:    stats.CompletionRate,
			ActivityScore:     stats.ActivityScore,
			LastActive:        p.LastActive,
			AchievementsCount: len(p.Achievements),
			Endpoint:          "/api/players/" + p.Username,
		})
	}

	sortBy := params.SortBy
	if sortBy == "" {
		sortBy = "level"
	}
	order := "desc"
	if params.Order == "asc" {
		order = "asc"
	}
	pipeline.SortBy(entries, compareBy(sortBy), order == "desc")

	for i := range entries {
		entries[i].LeaderboardPosition = i + 1
	}

	stats := aggregate(entries)

	limit := pipeline.ClampLimit(params.Limit, DefaultLeaderboardLimit, MaxLeaderboardLimit)
	page := pipeline.Truncate(entries, limit)

	return &LeaderboardResult{
		LeaderboardStats: stats,
		SortApplied:      Sorting{By: sortBy, Order: order},
		Pagination: Pagination{
			Limit:    limit,
			Returned: len(page),
			HasMore:  len(entries) > limit,
		},
		Players: page,
	}, nil
}

// PreferencesUpdate is the partial-update payload for player preferences.
type PreferencesUpdate struct {
	Categories    []domain.CategoryCode
	Difficulty    *domain.Difficulty
	Notifications *bool
	Theme         *string
}

// PreferencesResult echoes the updated preferences.
type PreferencesResult struct {
	Username    string             `json:"username"`
	Preferences domain.Preferences `json:"preferences"`
}

// UpdatePreferences merges the supplied fields into the player preferences.
// last_active refreshes on every successful call.
func (uc *UseCase) UpdatePreferences(ctx context.Context, username string, update PreferencesUpdate) (*PreferencesResult, error) {
	patch := domain.PreferencesPatch{
		Categories:    update.Categories,
		Difficulty:    update.Difficulty,
		Notifications: update.Notifications,
		Theme:         update.Theme,
	}

	updated, err := uc.players.UpdatePreferences(ctx, username, patch, uc.now())
	if err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return nil, uc.notFound(ctx, username)
		}
		return nil, err
	}

	uc.logger.Info("player preferences updated", zap.String("username", updated.Username))

	return &PreferencesResult{
		Username:    updated.Username,
		Preferences: updated.Preferences,
	}, nil
}

func (uc *UseCase) notFound(ctx context.Context, username string) error {
	details := map[string]interface{}{
		"suggestion": "Check the username spelling or try: alex, jordan, sam, demo",
	}
	if names, err := uc.players.Usernames(ctx); err == nil {
		details["available_players"] = names
	}
	return domain.NewErrorWithDetails(domain.ErrCodeNotFound,
		fmt.Sprintf("Player %s not found", username), details)
}

func questLinks(ids []int) []QuestLink {
	links := make([]QuestLink, 0, len(ids))
	for _, id := range ids {
		links = append(links, QuestLink{
			ID:       id,
			Endpoint: fmt.Sprintf("/api/quests/%d", id),
		})
	}
	return links
}

func compareBy(sortBy string) func(a, b Entry) int {
	switch sortBy {
	case "xp":
		return func(a, b Entry) int { return a.TotalXP - b.TotalXP }
	case "streak":
		return func(a, b Entry) int { return a.CurrentStreak - b.CurrentStreak }
	case "activity":
		return func(a, b Entry) int { return a.ActivityScore - b.ActivityScore }
	case "completion_rate":
		return func(a, b Entry) int { return a.CompletionRate - b.CompletionRate }
	default:
		return func(a, b Entry) int { return a.Level - b.Level }
	}
}

// aggregate computes leaderboard-wide statistics. The most active player is
// the first-encountered maximum.
func aggregate(entries []Entry) LeaderboardStats {
	if len(entries) == 0 {
		return LeaderboardStats{}
	}

	levelSum, xpSum, rateSum := 0, 0, 0
	mostActive := 0
	for i, e := range entries {
		levelSum += e.Level
		xpSum += e.TotalXP
		rateSum += e.CompletionRate
		if e.ActivityScore > entries[mostActive].ActivityScore {
			mostActive = i
		}
	}

	top := entries[mostActive]
	return LeaderboardStats{
		TotalPlayers:          len(entries),
		AverageLevel:          roundDiv(levelSum, len(entries)),
		TotalXPEarned:         xpSum,
		AverageCompletionRate: roundDiv(rateSum, len(entries)),
		MostActivePlayer:      &top,
	}
}

func roundDiv(sum, count int) int {
	if count == 0 {
		return 0
	}
	half := count / 2
	return (sum + half) / count
}
