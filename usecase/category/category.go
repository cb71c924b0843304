package category

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/questtrack/backend/domain"
	"github.com/questtrack/backend/internal/pipeline"
	"github.com/questtrack/backend/repository"
)

type UseCase struct {
	categories repository.CategoryRepository
	logger     *zap.Logger
	now        func() time.Time
}

func New(categories repository.CategoryRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		categories: categories,
		logger:     logger,
		now:        time.Now,
	}
}

// StatsBlock is the optional per-category statistics attachment for listings.
type StatsBlock struct {
	TotalQuestsAvailable     int    `json:"total_quests_available"`
	TotalCompleted           int    `json:"total_completed"`
	CompletionRate           int    `json:"completion_rate"`
	AvgCompletionTimeMinutes int    `json:"avg_completion_time_minutes"`
	ActiveUsers              int    `json:"active_users"`
	DifficultyLevel          string `json:"difficulty_level"`
	Trending                 string `json:"trending"`
}

// Listed is a catalog entry with its optional statistics.
type Listed struct {
	domain.Category
	Stats *StatsBlock `json:"stats,omitempty"`
}

// Insights highlights catalog extremes, computed over the filtered set.
type Insights struct {
	MostPopular      *domain.Category  `json:"most_popular"`
	HighestXP        *domain.Category  `json:"highest_xp"`
	BestForBeginners []domain.Category `json:"best_for_beginners"`
	QuickWins        []domain.Category `json:"quick_wins"`
}

// FiltersApplied echoes the listing parameters.
type FiltersApplied struct {
	Search       *string `json:"search"`
	IncludeStats bool    `json:"include_stats"`
	SortBy       string  `json:"sort_by"`
	Order        string  `json:"order"`
}

// ListResult is the category listing payload.
type ListResult struct {
	TotalCategories int            `json:"total_categories"`
	Categories      []Listed       `json:"categories"`
	FiltersApplied  FiltersApplied `json:"filters_applied"`
	Insights        *Insights      `json:"insights"`
}

// ListParams carries the raw listing query parameters.
type ListParams struct {
	Search       string
	IncludeStats bool
	SortBy       string
	Order        string
}

// List filters the catalog by search term, sorts it and optionally attaches
// the frozen statistics with catalog insights.
func (uc *UseCase) List(ctx context.Context, params ListParams) (*ListResult, error) {
	all, err := uc.categories.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := all
	if params.Search != "" {
		term := params.Search
		filtered = pipeline.Filter(all, func(c domain.Category) bool {
			return c.MatchesSearch(term)
		})
	}

	sortBy := params.SortBy
	if sortBy == "" {
		sortBy = "name"
	}
	order := "asc"
	if params.Order == "desc" {
		order = "desc"
	}

	statsFor := func(code domain.CategoryCode) domain.CategoryStats {
		stats, _ := uc.categories.StatsFor(ctx, code)
		return stats
	}
	pipeline.SortBy(filtered, uc.compareBy(sortBy, statsFor), order == "desc")

	listed := make([]Listed, 0, len(filtered))
	for _, c := range filtered {
		entry := Listed{Category: c}
		if params.IncludeStats {
			stats := statsFor(c.ID)
			entry.Stats = &StatsBlock{
				TotalQuestsAvailable:     stats.TotalQuests,
				TotalCompleted:           stats.Completed,
				CompletionRate:           stats.CompletionRate(),
				AvgCompletionTimeMinutes: stats.AverageCompletionTime,
				ActiveUsers:              stats.ActiveUsers,
				DifficultyLevel:          difficultyLevel(c),
				Trending:                 stats.TrendingLabel(),
			}
		}
		listed = append(listed, entry)
	}

	var insights *Insights
	if params.IncludeStats {
		insights = buildInsights(filtered, statsFor)
	}

	return &ListResult{
		TotalCategories: len(listed),
		Categories:      listed,
		FiltersApplied: FiltersApplied{
			Search:       optional(params.Search),
			IncludeStats: params.IncludeStats,
			SortBy:       sortBy,
			Order:        order,
		},
		Insights: insights,
	}, nil
}

// DetailStats is the statistics block on a category detail.
type DetailStats struct {
	TotalQuestsAvailable     int                           `json:"total_quests_available"`
	TotalCompleted           int                           `json:"total_completed"`
	CompletionRate           int                           `json:"completion_rate"`
	AvgCompletionTimeMinutes int                           `json:"avg_completion_time_minutes"`
	ActiveUsers              int                           `json:"active_users"`
	DifficultyBreakdown      domain.DifficultyDistribution `json:"difficulty_breakdown"`
	TrendingScore            int                           `json:"trending_score"`
	RecommendedFor           []string                      `json:"recommended_for"`
}

// RelatedEndpoints links a category to its quest queries.
type RelatedEndpoints struct {
	Quests          string `json:"quests"`
	PendingQuests   string `json:"pending_quests"`
	CompletedQuests string `json:"completed_quests"`
	HighPriority    string `json:"high_priority"`
}

// SampleQuest is a canned quest shape priced for the category.
type SampleQuest struct {
	ID             string            `json:"id"`
	Title          string            `json:"title"`
	EstimatedTime  int               `json:"estimated_time"`
	Difficulty     domain.Difficulty `json:"difficulty"`
	XPReward       int               `json:"xp_reward"`
	CreateEndpoint string            `json:"create_endpoint"`
	Note           string            `json:"note"`
}

// Detail is the category detail payload.
type Detail struct {
	domain.Category
	Stats            DetailStats                 `json:"stats"`
	RelatedEndpoints RelatedEndpoints            `json:"related_endpoints"`
	SampleQuests     []SampleQuest               `json:"sample_quests,omitempty"`
	ActionableTips   []string                    `json:"actionable_tips,omitempty"`
	GettingStarted   *domain.GettingStartedGuide `json:"getting_started,omitempty"`
}

// DetailOptions toggles the optional detail blocks.
type DetailOptions struct {
	IncludeQuests bool
	IncludeTips   bool
}

// Get assembles a category detail with its frozen statistics and derived
// trending score.
func (uc *UseCase) Get(ctx context.Context, code string, opts DetailOptions) (*Detail, error) {
	c, err := uc.categories.GetByCode(ctx, domain.CategoryCode(code))
	if err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return nil, uc.notFound(ctx, code)
		}
		return nil, err
	}

	stats, err := uc.categories.StatsFor(ctx, c.ID)
	if err != nil {
		return nil, err
	}

	detail := &Detail{
		Category: *c,
		Stats: DetailStats{
			TotalQuestsAvailable:     stats.TotalQuests,
			TotalCompleted:           stats.Completed,
			CompletionRate:           stats.CompletionRate(),
			AvgCompletionTimeMinutes: stats.AverageCompletionTime,
			ActiveUsers:              stats.ActiveUsers,
			DifficultyBreakdown:      c.DifficultyDistribution,
			TrendingScore:            stats.TrendingScore(),
			RecommendedFor:           c.RecommendedFor(),
		},
		RelatedEndpoints: RelatedEndpoints{
			Quests:          fmt.Sprintf("/api/quests?category=%s", c.ID),
			PendingQuests:   fmt.Sprintf("/api/quests?category=%s&status=pending", c.ID),
			CompletedQuests: fmt.Sprintf("/api/quests?category=%s&status=completed", c.ID),
			HighPriority:    fmt.Sprintf("/api/quests?category=%s&priority=high", c.ID),
		},
	}

	if opts.IncludeQuests {
		detail.SampleQuests = sampleQuests(c)
	}
	if opts.IncludeTips {
		detail.ActionableTips = c.Tips
		guide := c.GettingStarted()
		detail.GettingStarted = &guide
	}

	return detail, nil
}

// Suggestion is one generated quest suggestion.
type Suggestion struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	EstimatedTime int               `json:"estimated_time"`
	Difficulty    domain.Difficulty `json:"difficulty"`
	XPReward      int               `json:"xp_reward"`
	Priority      domain.Priority   `json:"priority"`
	Tags          []string          `json:"tags"`
}

// CategoryRef is the compact category block on a suggestions payload.
type CategoryRef struct {
	ID   domain.CategoryCode `json:"id"`
	Name string              `json:"name"`
	Icon string              `json:"icon"`
}

// SuggestionFilters echoes the suggestion query parameters.
type SuggestionFilters struct {
	Difficulty           string `json:"difficulty"`
	TimeAvailableMinutes *int   `json:"time_available_minutes"`
}

// SuggestionsResult is the suggestions payload.
type SuggestionsResult struct {
	Category         CategoryRef       `json:"category"`
	Filters          SuggestionFilters `json:"filters"`
	Suggestions      []Suggestion      `json:"suggestions"`
	TotalSuggestions int               `json:"total_suggestions"`
}

// Suggestions generates templated quest suggestions for a category, filtered
// by difficulty and available time. XP prices against the category
// multiplier.
func (uc *UseCase) Suggestions(ctx context.Context, code, difficulty string, timeAvailable int) (*SuggestionsResult, error) {
	c, err := uc.categories.GetByCode(ctx, domain.CategoryCode(code))
	if err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return nil, uc.notFound(ctx, code)
		}
		return nil, err
	}

	if difficulty == "" {
		difficulty = "any"
	}

	var suggestions []Suggestion
	for i, tmpl := range c.SuggestionTemplates() {
		if difficulty != "any" && string(tmpl.Difficulty) != strings.ToLower(difficulty) {
			continue
		}
		if timeAvailable > 0 && tmpl.Minutes > timeAvailable {
			continue
		}

		priority := domain.PriorityMedium
		if tmpl.Difficulty == domain.DifficultyEasy {
			priority = domain.PriorityLow
		}

		tags := c.PopularTags
		if len(tags) > 2 {
			tags = tags[:2]
		}

		suggestions = append(suggestions, Suggestion{
			ID:            fmt.Sprintf("suggestion_%s_%d", c.ID, i+1),
			Title:         tmpl.Title,
			Description:   tmpl.Description,
			EstimatedTime: tmpl.Minutes,
			Difficulty:    tmpl.Difficulty,
			XPReward:      c.TemplateXP(tmpl.Minutes),
			Priority:      priority,
			Tags:          tags,
		})
	}
	if suggestions == nil {
		suggestions = []Suggestion{}
	}

	filters := SuggestionFilters{Difficulty: difficulty}
	if timeAvailable > 0 {
		filters.TimeAvailableMinutes = &timeAvailable
	}

	return &SuggestionsResult{
		Category:         CategoryRef{ID: c.ID, Name: c.Name, Icon: c.Icon},
		Filters:          filters,
		Suggestions:      suggestions,
		TotalSuggestions: len(suggestions),
	}, nil
}

func (uc *UseCase) notFound(ctx context.Context, code string) error {
	details := map[string]interface{}{
		"suggestion": "Try: work, health, personal, learning, creative, finance",
	}
	if refs, err := uc.categories.Refs(ctx); err == nil {
		details["available_categories"] = refs
	}
	return domain.NewErrorWithDetails(domain.ErrCodeNotFound,
		fmt.Sprintf("Category with ID '%s' not found", code), details)
}

func (uc *UseCase) compareBy(sortBy string, statsFor func(domain.CategoryCode) domain.CategoryStats) func(a, b domain.Category) int {
	switch sortBy {
	case "popularity":
		return func(a, b domain.Category) int {
			return statsFor(a.ID).ActiveUsers - statsFor(b.ID).ActiveUsers
		}
	case "xp_multiplier":
		return func(a, b domain.Category) int {
			switch {
			case a.DefaultXPMultiplier < b.DefaultXPMultiplier:
				return -1
			case a.DefaultXPMultiplier > b.DefaultXPMultiplier:
				return 1
			default:
				return 0
			}
		}
	default:
		return func(a, b domain.Category) int {
			return strings.Compare(a.Name, b.Name)
		}
	}
}

// buildInsights derives catalog extremes: ties go to the first category in
// source order.
func buildInsights(categories []domain.Category, statsFor func(domain.CategoryCode) domain.CategoryStats) *Insights {
	if len(categories) == 0 {
		return &Insights{BestForBeginners: []domain.Category{}, QuickWins: []domain.Category{}}
	}

	mostPopular := 0
	highestXP := 0
	for i, c := range categories {
		if statsFor(c.ID).ActiveUsers > statsFor(categories[mostPopular].ID).ActiveUsers {
			mostPopular = i
		}
		if c.DefaultXPMultiplier > categories[highestXP].DefaultXPMultiplier {
			highestXP = i
		}
	}

	beginners := pipeline.Filter(categories, func(c domain.Category) bool {
		return c.DifficultyDistribution.Easy >= 50
	})
	quickWins := pipeline.Filter(categories, func(c domain.Category) bool {
		return len(c.SuggestedTimeBlocks) > 0 && c.SuggestedTimeBlocks[0] <= 20
	})

	popular := categories[mostPopular]
	highest := categories[highestXP]
	return &Insights{
		MostPopular:      &popular,
		HighestXP:        &highest,
		BestForBeginners: beginners,
		QuickWins:        quickWins,
	}
}

func difficultyLevel(c domain.Category) string {
	if c.DefaultXPMultiplier > 1.2 {
		return "challenging"
	}
	return "moderate"
}

func sampleQuests(c *domain.Category) []SampleQuest {
	templates := c.SampleQuestTemplates()
	out := make([]SampleQuest, 0, len(templates))
	for i, tmpl := range templates {
		out = append(out, SampleQuest{
			ID:             fmt.Sprintf("sample_%s_%d", c.ID, i+1),
			Title:          tmpl.Title,
			EstimatedTime:  tmpl.Minutes,
			Difficulty:     tmpl.Difficulty,
			XPReward:       c.TemplateXP(tmpl.Minutes),
			CreateEndpoint: "/api/quests",
			Note:           "This is a sample quest - create similar ones via POST /api/quests",
		})
	}
	return out
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
