package quest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/questtrack/backend/domain"
	"github.com/questtrack/backend/repository/memory"
)

func fixedNow() time.Time {
	return time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)
}

func newTestUseCase() *UseCase {
	uc := New(memory.NewQuestRepository(memory.SeedQuests()), nil)
	uc.now = fixedNow
	return uc
}

func TestList_NoFiltersReturnsWholeCollection(t *testing.T) {
	uc := newTestUseCase()

	result, err := uc.List(context.Background(), ListParams{})
	require.NoError(t, err)

	assert.Equal(t, 6, result.TotalQuests)
	assert.Equal(t, 6, result.ReturnedQuests)
	assert.Equal(t, 395, result.TotalXPAvailable)
	assert.Equal(t, 1, result.CompletedCount)
	assert.Equal(t, 2, result.UrgentCount)
	assert.False(t, result.Pagination.HasMore)

	// Default sort is newest first.
	assert.Equal(t, "created_at", result.Sorting.SortBy)
	assert.Equal(t, "desc", result.Sorting.Order)
	assert.Equal(t, 6, result.Quests[0].ID)
	assert.Equal(t, 2, result.Quests[5].ID)
}

func TestList_FilterByStatus(t *testing.T) {
	uc := newTestUseCase()

	result, err := uc.List(context.Background(), ListParams{Status: "pending"})
	require.NoError(t, err)

	assert.Equal(t, 4, result.TotalQuests)
	for _, q := range result.Quests {
		assert.Equal(t, domain.StatusPending, q.Status)
	}
	require.NotNil(t, result.FiltersApplied.Status)
	assert.Equal(t, "pending", *result.FiltersApplied.Status)
	assert.Nil(t, result.FiltersApplied.Category)
}

func TestList_FiltersCombine(t *testing.T) {
	uc := newTestUseCase()

	result, err := uc.List(context.Background(), ListParams{
		Status:   "pending",
		Category: "work",
	})
	require.NoError(t, err)

	require.Equal(t, 1, result.TotalQuests)
	assert.Equal(t, 5, result.Quests[0].ID)
}

func TestList_FilterByTags(t *testing.T) {
	uc := newTestUseCase()

	result, err := uc.List(context.Background(), ListParams{Tags: "urgent, reading"})
	require.NoError(t, err)

	require.Equal(t, 2, result.TotalQuests)
	assert.ElementsMatch(t, []int{5, 6}, []int{result.Quests[0].ID, result.Quests[1].ID})
}

func TestList_SortByPriority(t *testing.T) {
	uc := newTestUseCase()

	result, err := uc.List(context.Background(), ListParams{SortBy: "priority"})
	require.NoError(t, err)

	ids := make([]int, 0, len(result.Quests))
	for _, q := range result.Quests {
		ids = append(ids, q.ID)
	}
	// Critical first, then high, then the mediums in source order.
	assert.Equal(t, []int{5, 2, 1, 4, 6, 3}, ids)
}

func TestList_SortByDeadlinePutsUndatedLast(t *testing.T) {
	uc := newTestUseCase()
	_, err := uc.quests.Create(context.Background(), &domain.Quest{Title: "No deadline", CreatedAt: fixedNow()})
	require.NoError(t, err)

	result, err := uc.List(context.Background(), ListParams{SortBy: "deadline", Order: "asc"})
	require.NoError(t, err)

	last := result.Quests[len(result.Quests)-1]
	assert.Equal(t, "No deadline", last.Title)
}

func TestList_ExplicitLimitPaginates(t *testing.T) {
	uc := newTestUseCase()

	result, err := uc.List(context.Background(), ListParams{Limit: 2})
	require.NoError(t, err)

	assert.Equal(t, 6, result.TotalQuests)
	assert.Equal(t, 2, result.ReturnedQuests)
	assert.Equal(t, 2, result.Pagination.Limit)
	assert.True(t, result.Pagination.HasMore)
	// Aggregation still spans the whole filtered set.
	assert.Equal(t, 395, result.TotalXPAvailable)
}

func TestList_InvalidDifficultyFails(t *testing.T) {
	uc := newTestUseCase()

	_, err := uc.List(context.Background(), ListParams{Difficulty: "extreme"})
	require.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))

	details := domain.ErrorDetails(err)
	require.NotNil(t, details)
	assert.Equal(t, "extreme", details["provided"])
	assert.Equal(t, domain.Difficulties, details["valid_values"])
}

func TestList_InvalidDateFilterFails(t *testing.T) {
	uc := newTestUseCase()

	_, err := uc.List(context.Background(), ListParams{CreatedAfter: "yesterday"})
	require.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
}

func TestList_DateFilters(t *testing.T) {
	uc := newTestUseCase()

	result, err := uc.List(context.Background(), ListParams{CreatedAfter: "2024-01-14"})
	require.NoError(t, err)
	assert.Equal(t, 4, result.TotalQuests)

	result, err = uc.List(context.Background(), ListParams{DeadlineBefore: "2024-01-15T12:00:00Z"})
	require.NoError(t, err)
	// Quests 1, 3 and 5 have deadlines at or before noon on the 15th.
	assert.Equal(t, 3, result.TotalQuests)
}

func TestGet_EnrichesQuest(t *testing.T) {
	uc := newTestUseCase()

	quest, err := uc.Get(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, "Finish Project Report", quest.Title)
	require.NotNil(t, quest.CompletionPercentage)
	assert.Equal(t, 1.2, quest.DifficultyInfo.Multiplier)
}

func TestGet_NotFoundListsAvailableQuests(t *testing.T) {
	uc := newTestUseCase()

	_, err := uc.Get(context.Background(), 99)
	require.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
	assert.Equal(t, "Quest with ID 99 not found", err.Error())

	details := domain.ErrorDetails(err)
	require.NotNil(t, details)
	assert.Contains(t, details, "available_quests")
	assert.Contains(t, details, "suggestion")
}

func TestComplete_AwardsReward(t *testing.T) {
	uc := newTestUseCase()

	result, err := uc.Complete(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCompleted, result.Quest.Status)
	// Completed before the deadline: 100 base, 10 bonus, x1.2.
	assert.Equal(t, 100, result.Rewards.BaseXP)
	assert.Equal(t, 10, result.Rewards.BonusXP)
	assert.Equal(t, 132, result.Rewards.TotalXPEarned)
	assert.True(t, result.Rewards.EarlyCompletion)
}

func TestComplete_IsNotIdempotent(t *testing.T) {
	uc := newTestUseCase()

	_, err := uc.Complete(context.Background(), 3)
	require.True(t, domain.IsDomainError(err, domain.ErrCodeConflict))

	details := domain.ErrorDetails(err)
	require.NotNil(t, details)
	assert.Equal(t, 3, details["quest_id"])
}

func TestComplete_UnknownQuest(t *testing.T) {
	uc := newTestUseCase()

	_, err := uc.Complete(context.Background(), 404)
	require.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
}

func TestCreate_AssignsIdentityAndXP(t *testing.T) {
	uc := newTestUseCase()

	result, err := uc.Create(context.Background(), CreateParams{
		Title:    "Write weekly review",
		Category: "work",
		Priority: "high",
	})
	require.NoError(t, err)

	assert.Equal(t, 7, result.Quest.ID)
	assert.Equal(t, 7, result.TotalQuests)
	assert.Equal(t, domain.StatusPending, result.Quest.Status)
	// XP comes from the priority table, defaults fill the rest.
	assert.Equal(t, 100, result.Quest.XPReward)
	assert.Equal(t, 30, result.Quest.EstimatedTime)
	assert.Equal(t, domain.DifficultyMedium, result.Quest.Difficulty)
	assert.NotNil(t, result.Quest.Tags)
}

func TestCreate_ParsesDeadline(t *testing.T) {
	uc := newTestUseCase()

	result, err := uc.Create(context.Background(), CreateParams{
		Title:    "Pay rent",
		Category: "personal",
		Priority: "medium",
		Deadline: "2024-01-20T17:00:00Z",
	})
	require.NoError(t, err)
	require.NotNil(t, result.Quest.Deadline)
	assert.Equal(t, time.Date(2024, 1, 20, 17, 0, 0, 0, time.UTC), *result.Quest.Deadline)
}

func TestCreate_CollectsEveryViolation(t *testing.T) {
	uc := newTestUseCase()

	_, err := uc.Create(context.Background(), CreateParams{
		Title:      "   ",
		Category:   "gaming",
		Priority:   "extreme",
		Deadline:   "not-a-date",
		Difficulty: "impossible",
	})
	require.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))

	details := domain.ErrorDetails(err)
	require.NotNil(t, details)
	violations, ok := details["validation_errors"].([]string)
	require.True(t, ok)
	assert.Len(t, violations, 5)
	assert.Equal(t, []string{"title", "category", "priority"}, details["required_fields"])
}

func TestCreate_RejectsFinanceCategory(t *testing.T) {
	uc := newTestUseCase()

	_, err := uc.Create(context.Background(), CreateParams{
		Title:    "Review budget",
		Category: "finance",
		Priority: "medium",
	})
	require.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))

	details := domain.ErrorDetails(err)
	violations, ok := details["validation_errors"].([]string)
	require.True(t, ok)
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0], "category")
}
