package category

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/questtrack/backend/domain"
	"github.com/questtrack/backend/repository/memory"
)

func newTestUseCase() *UseCase {
	uc := New(memory.NewCategoryRepository(memory.SeedCategories(), memory.SeedCategoryStats()), nil)
	uc.now = func() time.Time { return time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC) }
	return uc
}

func TestList_DefaultSortByName(t *testing.T) {
	uc := newTestUseCase()

	result, err := uc.List(context.Background(), ListParams{})
	require.NoError(t, err)

	assert.Equal(t, 6, result.TotalCategories)
	assert.Equal(t, "Creative Projects", result.Categories[0].Name)
	assert.Equal(t, "Work & Career", result.Categories[5].Name)
	assert.Equal(t, "name", result.FiltersApplied.SortBy)
	assert.Equal(t, "asc", result.FiltersApplied.Order)
	// No stats requested, no stats attached.
	assert.Nil(t, result.Categories[0].Stats)
	assert.Nil(t, result.Insights)
}

func TestList_SearchFiltersCatalog(t *testing.T) {
	uc := newTestUseCase()

	result, err := uc.List(context.Background(), ListParams{Search: "exercise"})
	require.NoError(t, err)

	require.Equal(t, 1, result.TotalCategories)
	assert.Equal(t, domain.CategoryHealth, result.Categories[0].ID)
	require.NotNil(t, result.FiltersApplied.Search)
	assert.Equal(t, "exercise", *result.FiltersApplied.Search)
}

func TestList_SortByPopularityDesc(t *testing.T) {
	uc := newTestUseCase()

	result, err := uc.List(context.Background(), ListParams{SortBy: "popularity", Order: "desc"})
	require.NoError(t, err)

	assert.Equal(t, domain.CategoryWork, result.Categories[0].ID)
	assert.Equal(t, domain.CategoryFinance, result.Categories[5].ID)
}

func TestList_IncludeStats(t *testing.T) {
	uc := newTestUseCase()

	result, err := uc.List(context.Background(), ListParams{IncludeStats: true})
	require.NoError(t, err)

	var work *Listed
	for i := range result.Categories {
		if result.Categories[i].ID == domain.CategoryWork {
			work = &result.Categories[i]
		}
	}
	require.NotNil(t, work)
	require.NotNil(t, work.Stats)
	assert.Equal(t, 12, work.Stats.TotalQuestsAvailable)
	assert.Equal(t, 67, work.Stats.CompletionRate)
	assert.Equal(t, "high", work.Stats.Trending)
	assert.Equal(t, "moderate", work.Stats.DifficultyLevel)

	insights := result.Insights
	require.NotNil(t, insights)
	assert.Equal(t, domain.CategoryWork, insights.MostPopular.ID)
	assert.Equal(t, domain.CategoryLearning, insights.HighestXP.ID)

	beginnerIDs := make([]domain.CategoryCode, 0, len(insights.BestForBeginners))
	for _, c := range insights.BestForBeginners {
		beginnerIDs = append(beginnerIDs, c.ID)
	}
	assert.Equal(t, []domain.CategoryCode{domain.CategoryPersonal}, beginnerIDs)

	quickIDs := make([]domain.CategoryCode, 0, len(insights.QuickWins))
	for _, c := range insights.QuickWins {
		quickIDs = append(quickIDs, c.ID)
	}
	assert.ElementsMatch(t, []domain.CategoryCode{domain.CategoryHealth, domain.CategoryPersonal}, quickIDs)
}

func TestGet_DetailWithStats(t *testing.T) {
	uc := newTestUseCase()

	detail, err := uc.Get(context.Background(), "work", DetailOptions{})
	require.NoError(t, err)

	assert.Equal(t, "Work & Career", detail.Name)
	assert.Equal(t, 12, detail.Stats.TotalQuestsAvailable)
	assert.Equal(t, 77, detail.Stats.TrendingScore)
	assert.Equal(t, domain.DifficultyDistribution{Easy: 20, Medium: 50, Hard: 30}, detail.Stats.DifficultyBreakdown)
	assert.Equal(t, "/api/quests?category=work", detail.RelatedEndpoints.Quests)
	assert.Equal(t, "/api/quests?category=work&status=pending", detail.RelatedEndpoints.PendingQuests)

	// Optional blocks are off by default.
	assert.Nil(t, detail.SampleQuests)
	assert.Nil(t, detail.GettingStarted)
}

func TestGet_IncludeQuestsAndTips(t *testing.T) {
	uc := newTestUseCase()

	detail, err := uc.Get(context.Background(), "health", DetailOptions{IncludeQuests: true, IncludeTips: true})
	require.NoError(t, err)

	require.Len(t, detail.SampleQuests, 3)
	assert.Equal(t, "sample_health_1", detail.SampleQuests[0].ID)
	// 20 minutes at the 1.1 category multiplier.
	assert.Equal(t, 22, detail.SampleQuests[0].XPReward)
	assert.Equal(t, "/api/quests", detail.SampleQuests[0].CreateEndpoint)

	assert.Len(t, detail.ActionableTips, 3)
	require.NotNil(t, detail.GettingStarted)
	assert.Equal(t, "Choose one small health habit to focus on", detail.GettingStarted.Step1)
}

func TestGet_NotFoundListsCategories(t *testing.T) {
	uc := newTestUseCase()

	_, err := uc.Get(context.Background(), "gaming", DetailOptions{})
	require.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
	assert.Equal(t, "Category with ID 'gaming' not found", err.Error())

	details := domain.ErrorDetails(err)
	require.NotNil(t, details)
	assert.Contains(t, details, "available_categories")
}

func TestSuggestions_Default(t *testing.T) {
	uc := newTestUseCase()

	result, err := uc.Suggestions(context.Background(), "learning", "", 0)
	require.NoError(t, err)

	assert.Equal(t, domain.CategoryLearning, result.Category.ID)
	assert.Equal(t, "any", result.Filters.Difficulty)
	assert.Nil(t, result.Filters.TimeAvailableMinutes)
	require.Equal(t, 3, result.TotalSuggestions)

	first := result.Suggestions[0]
	assert.Equal(t, "suggestion_learning_1", first.ID)
	assert.Equal(t, "Review learning & skills goals", first.Title)
	// 20 minutes at the 1.3 multiplier, easy templates get low priority.
	assert.Equal(t, 26, first.XPReward)
	assert.Equal(t, domain.PriorityLow, first.Priority)
	assert.Equal(t, []string{"courses", "reading"}, first.Tags)
}

func TestSuggestions_FilterByDifficulty(t *testing.T) {
	uc := newTestUseCase()

	result, err := uc.Suggestions(context.Background(), "work", "medium", 0)
	require.NoError(t, err)

	require.Equal(t, 1, result.TotalSuggestions)
	assert.Equal(t, domain.DifficultyMedium, result.Suggestions[0].Difficulty)
	assert.Equal(t, domain.PriorityMedium, result.Suggestions[0].Priority)
}

func TestSuggestions_FilterByTimeAvailable(t *testing.T) {
	uc := newTestUseCase()

	result, err := uc.Suggestions(context.Background(), "work", "", 15)
	require.NoError(t, err)

	require.Equal(t, 1, result.TotalSuggestions)
	assert.Equal(t, 15, result.Suggestions[0].EstimatedTime)
	require.NotNil(t, result.Filters.TimeAvailableMinutes)
	assert.Equal(t, 15, *result.Filters.TimeAvailableMinutes)
}

func TestSuggestions_NoMatches(t *testing.T) {
	uc := newTestUseCase()

	result, err := uc.Suggestions(context.Background(), "work", "hard", 0)
	require.NoError(t, err)

	assert.NotNil(t, result.Suggestions)
	assert.Zero(t, result.TotalSuggestions)
}

func TestSuggestions_UnknownCategory(t *testing.T) {
	uc := newTestUseCase()

	_, err := uc.Suggestions(context.Background(), "gaming", "", 0)
	require.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
}
