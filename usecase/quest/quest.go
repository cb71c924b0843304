package quest

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

// MaxListLimit bounds quest page sizes.
const MaxListLimit = 50

type UseCase struct {
	quests repository.QuestRepository
	logger *zap.Logger
	now    func() time.Time
}

func New(quests repository.QuestRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		quests: quests,
		logger: logger,
		now:    time.Now,
	}
}

// ListParams carries the raw query parameters of a quest listing. Empty
// strings mean "no constraint".
type ListParams struct {
	Status         string
	Priority       string
	Category       string
	Tags           string
	Difficulty     string
	CreatedAfter   string
	DeadlineBefore string
	SortBy         string
	Order          string
	Limit          int
}

// FiltersApplied echoes the recognized filters back to the caller; unset
// filters serialize as null.
type FiltersApplied struct {
	Status         *string `json:"status"`
	Priority       *string `json:"priority"`
	Category       *string `json:"category"`
	Tags           *string `json:"tags"`
	Difficulty     *string `json:"difficulty"`
	CreatedAfter   *string `json:"created_after"`
	DeadlineBefore *string `json:"deadline_before"`
}

type Sorting struct {
	SortBy string `json:"sort_by"`
	Order  string `json:"order"`
}

type Pagination struct {
	Limit   int  `json:"limit"`
	HasMore bool `json:"has_more"`
}

// Summary is the trimmed enriched quest served in listings.
type Summary struct {
	ID                int                   `json:"id"`
	Title             string                `json:"title"`
	Status            domain.Status         `json:"status"`
	Priority          domain.Priority       `json:"priority"`
	Category          domain.CategoryCode   `json:"category"`
	XPReward          int                   `json:"xp_reward"`
	Deadline          *time.Time            `json:"deadline,omitempty"`
	DaysUntilDeadline *int                  `json:"days_until_deadline,omitempty"`
	IsUrgent          bool                  `json:"is_urgent"`
	IsOverdue         bool                  `json:"is_overdue"`
	Difficulty        domain.Difficulty     `json:"difficulty"`
	DifficultyInfo    domain.DifficultyInfo `json:"difficulty_info"`
	Tags              []string              `json:"tags"`
	Endpoint          string                `json:"endpoint"`
}

// ListResult is the full listing payload: summary statistics over the
// filtered (pre-pagination) set plus the bounded page.
type ListResult struct {
	TotalQuests      int            `json:"total_quests"`
	ReturnedQuests   int            `json:"returned_quests"`
	TotalXPAvailable int            `json:"total_xp_available"`
	CompletedCount   int            `json:"completed_count"`
	UrgentCount      int            `json:"urgent_count"`
	FiltersApplied   FiltersApplied `json:"filters_applied"`
	Sorting          Sorting        `json:"sorting"`
	Quests           []Summary      `json:"quests"`
	Pagination       Pagination     `json:"pagination"`
}

// List filters, sorts, aggregates and paginates the quest collection.
func (uc *UseCase) List(ctx context.Context, params ListParams) (*ListResult, error) {
	all, err := uc.quests.List(ctx)
	if err != nil {
		return nil, err
	}

	preds, err := buildPredicates(params)
	if err != nil {
		return nil, err
	}
	filtered := pipeline.Filter(all, preds...)

	sortBy := params.SortBy
	if sortBy == "" {
		sortBy = "created_at"
	}
	order := "desc"
	if params.Order == "asc" {
		order = "asc"
	}
	pipeline.SortBy(filtered, compareBy(sortBy), order == "desc")

	// Aggregation runs on the filtered set before pagination.
	now := uc.now()
	totalXP := 0
	completedCount := 0
	urgentCount := 0
	for i := range filtered {
		totalXP += filtered[i].XPReward
		if filtered[i].Status == domain.StatusCompleted {
			completedCount++
		}
		if filtered[i].IsUrgentAt(now) {
			urgentCount++
		}
	}

	// No limit means the whole filtered set; an explicit one is clamped.
	limit := len(filtered)
	if params.Limit > 0 {
		limit = pipeline.ClampLimit(params.Limit, limit, MaxListLimit)
	}
	page := pipeline.Truncate(filtered, limit)

	summaries := make([]Summary, 0, len(page))
	for _, q := range page {
		enriched := q.Enrich(now)
		summaries = append(summaries, Summary{
			ID:                enriched.ID,
			Title:             enriched.Title,
			Status:            enriched.Status,
			Priority:          enriched.Priority,
			Category:          enriched.Category,
			XPReward:          enriched.XPReward,
			Deadline:          enriched.Deadline,
			DaysUntilDeadline: enriched.DaysUntilDeadline,
			IsUrgent:          enriched.IsUrgent,
			IsOverdue:         enriched.IsOverdue,
			Difficulty:        enriched.Difficulty,
			DifficultyInfo:    enriched.DifficultyInfo,
			Tags:              enriched.Tags,
			Endpoint:          fmt.Sprintf("/api/quests/%d", enriched.ID),
		})
	}

	return &ListResult{
		TotalQuests:      len(filtered),
		ReturnedQuests:   len(summaries),
		TotalXPAvailable: totalXP,
		CompletedCount:   completedCount,
		UrgentCount:      urgentCount,
		FiltersApplied: FiltersApplied{
			Status:         optional(params.Status),
			Priority:       optional(params.Priority),
			Category:       optional(params.Category),
			Tags:           optional(params.Tags),
			Difficulty:     optional(params.Difficulty),
			CreatedAfter:   optional(params.CreatedAfter),
			DeadlineBefore: optional(params.DeadlineBefore),
		},
		Sorting:    Sorting{SortBy: sortBy, Order: order},
		Quests:     summaries,
		Pagination: Pagination{Limit: limit, HasMore: len(filtered) > limit},
	}, nil
}

// Get returns one enriched quest. Unknown ids fail with a suggestions list.
func (uc *UseCase) Get(ctx context.Context, id int) (*domain.EnrichedQuest, error) {
	q, err := uc.quests.GetByID(ctx, id)
	if err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return nil, uc.notFound(ctx, id)
		}
		return nil, err
	}
	enriched := q.Enrich(uc.now())
	return &enriched, nil
}

// CompleteResult pairs the completed quest with its reward breakdown.
type CompleteResult struct {
	Quest   domain.EnrichedQuest `json:"quest"`
	Rewards domain.Reward        `json:"rewards"`
}

// Complete transitions the quest to completed and computes the XP award.
// Completion is not idempotent: a second call fails with a conflict and
// leaves completed_at untouched.
func (uc *UseCase) Complete(ctx context.Context, id int) (*CompleteResult, error) {
	now := uc.now()
	completed, err := uc.quests.Complete(ctx, id, now)
	if err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return nil, uc.notFound(ctx, id)
		}
		return nil, err
	}

	rewards := completed.CompletionReward(now)
	uc.logger.Info("quest completed",
		zap.Int("quest_id", completed.ID),
		zap.Int("xp_earned", rewards.TotalXPEarned),
		zap.Bool("early", rewards.EarlyCompletion),
	)

	return &CompleteResult{
		Quest:   completed.Enrich(now),
		Rewards: rewards,
	}, nil
}

// CreateParams carries the raw fields of a quest creation request.
type CreateParams struct {
	Title         string
	Description   string
	Priority      string
	Category      string
	Deadline      string
	Tags          []string
	EstimatedTime int
	Difficulty    string
}

// CreateResult is the creation payload.
type CreateResult struct {
	Quest       domain.EnrichedQuest `json:"quest"`
	TotalQuests int                  `json:"total_quests"`
}

// Create validates the request, collecting every violated rule before
// responding, then allocates the next identity and appends the quest.
// The XP reward comes from the priority table; client values are ignored.
func (uc *UseCase) Create(ctx context.Context, params CreateParams) (*CreateResult, error) {
	var violations []string

	title := strings.TrimSpace(params.Title)
	if title == "" {
		violations = append(violations, "title is required and must be a non-empty string")
	}

	category, ok := domain.ParseCreatableCategory(params.Category)
	if !ok {
		violations = append(violations, "category is required and must be one of: work, health, personal, learning, creative")
	}

	priority, ok := domain.ParsePriority(params.Priority)
	if !ok {
		violations = append(violations, "priority is required and must be one of: low, medium, high, critical")
	}

	var deadline *time.Time
	if params.Deadline != "" {
		parsed, err := parseTimestamp(params.Deadline)
		if err != nil {
			violations = append(violations, "deadline must be a valid ISO date string (e.g., 2024-01-20T17:00:00Z)")
		} else {
			deadline = &parsed
		}
	}

	difficulty := domain.DifficultyMedium
	if params.Difficulty != "" {
		parsed, ok := domain.ParseDifficulty(params.Difficulty)
		if !ok {
			violations = append(violations, "difficulty must be one of: easy, medium, hard")
		} else {
			difficulty = parsed
		}
	}

	if len(violations) > 0 {
		return nil, domain.NewErrorWithDetails(domain.ErrCodeInvalid, "validation failed",
			map[string]interface{}{
				"validation_errors": violations,
				"required_fields":   []string{"title", "category", "priority"},
				"optional_fields":   []string{"description", "deadline", "tags", "estimated_time", "difficulty"},
			})
	}

	estimated := params.EstimatedTime
	if estimated <= 0 {
		estimated = 30
	}
	tags := params.Tags
	if tags == nil {
		tags = []string{}
	}

	now := uc.now()
	created, err := uc.quests.Create(ctx, &domain.Quest{
		Title:         title,
		Description:   params.Description,
		Status:        domain.StatusPending,
		Priority:      priority,
		Category:      category,
		XPReward:      priority.XPReward(),
		Deadline:      deadline,
		EstimatedTime: estimated,
		CreatedAt:     now,
		Tags:          tags,
		Difficulty:    difficulty,
	})
	if err != nil {
		return nil, err
	}

	refs, err := uc.quests.Refs(ctx)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("quest created",
		zap.Int("quest_id", created.ID),
		zap.String("category", string(created.Category)),
		zap.String("priority", string(created.Priority)),
	)

	return &CreateResult{
		Quest:       created.Enrich(now),
		TotalQuests: len(refs),
	}, nil
}

func (uc *UseCase) notFound(ctx context.Context, id int) error {
	details := map[string]interface{}{
		"suggestion": "Check the quest ID or browse all quests at /api/quests",
	}
	if refs, err := uc.quests.Refs(ctx); err == nil {
		details["available_quests"] = refs
	}
	return domain.NewErrorWithDetails(domain.ErrCodeNotFound,
		fmt.Sprintf("Quest with ID %d not found", id), details)
}

// buildPredicates turns the recognized filter keys into pipeline predicates.
// Unknown difficulty values and unparsable timestamps fail early with the
// valid alternatives enumerated.
func buildPredicates(params ListParams) ([]pipeline.Predicate[domain.Quest], error) {
	var preds []pipeline.Predicate[domain.Quest]

	if params.Status != "" {
		want := strings.ToLower(params.Status)
		preds = append(preds, func(q domain.Quest) bool {
			return strings.ToLower(string(q.Status)) == want
		})
	}

	if params.Priority != "" {
		want := strings.ToLower(params.Priority)
		preds = append(preds, func(q domain.Quest) bool {
			return strings.ToLower(string(q.Priority)) == want
		})
	}

	if params.Category != "" {
		want := strings.ToLower(params.Category)
		preds = append(preds, func(q domain.Quest) bool {
			return strings.ToLower(string(q.Category)) == want
		})
	}

	if params.Tags != "" {
		var tags []string
		for _, tag := range strings.Split(params.Tags, ",") {
			tags = append(tags, strings.TrimSpace(tag))
		}
		preds = append(preds, func(q domain.Quest) bool {
			return q.HasAnyTag(tags)
		})
	}

	if params.Difficulty != "" {
		difficulty, ok := domain.ParseDifficulty(params.Difficulty)
		if !ok {
			return nil, domain.NewErrorWithDetails(domain.ErrCodeInvalid,
				"Difficulty must be one of: easy, medium, hard",
				map[string]interface{}{
					"provided":     params.Difficulty,
					"valid_values": domain.Difficulties,
				})
		}
		preds = append(preds, func(q domain.Quest) bool {
			return q.Difficulty == difficulty
		})
	}

	if params.CreatedAfter != "" {
		after, err := parseTimestamp(params.CreatedAfter)
		if err != nil {
			return nil, invalidDate("created_after", params.CreatedAfter)
		}
		preds = append(preds, func(q domain.Quest) bool {
			return !q.CreatedAt.Before(after)
		})
	}

	if params.DeadlineBefore != "" {
		before, err := parseTimestamp(params.DeadlineBefore)
		if err != nil {
			return nil, invalidDate("deadline_before", params.DeadlineBefore)
		}
		preds = append(preds, func(q domain.Quest) bool {
			return q.Deadline != nil && !q.Deadline.After(before)
		})
	}

	return preds, nil
}

func invalidDate(field, provided string) error {
	return domain.NewErrorWithDetails(domain.ErrCodeInvalid,
		field+" must be a valid ISO date string",
		map[string]interface{}{"provided": provided})
}

// compareBy selects the sort key. Unknown keys fall back to created_at.
func compareBy(sortBy string) func(a, b domain.Quest) int {
	switch sortBy {
	case "priority":
		return func(a, b domain.Quest) int {
			return a.Priority.Rank() - b.Priority.Rank()
		}
	case "deadline":
		return func(a, b domain.Quest) int {
			return compareTimes(deadlineOrFarFuture(a), deadlineOrFarFuture(b))
		}
	case "xp_reward":
		return func(a, b domain.Quest) int {
			return a.XPReward - b.XPReward
		}
	case "title":
		return func(a, b domain.Quest) int {
			return strings.Compare(a.Title, b.Title)
		}
	default:
		return func(a, b domain.Quest) int {
			return compareTimes(a.CreatedAt, b.CreatedAt)
		}
	}
}

var farFuture = time.Date(2099, 12, 31, 0, 0, 0, 0, time.UTC)

// Quests without deadlines sort after every dated quest in ascending order.
func deadlineOrFarFuture(q domain.Quest) time.Time {
	if q.Deadline == nil {
		return farFuture
	}
	return *q.Deadline
}

func compareTimes(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

// parseTimestamp accepts RFC 3339 or a bare date.
func parseTimestamp(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
