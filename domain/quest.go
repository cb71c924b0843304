package domain

import (
	"math"
	"strings"
	"time"
)

// Status is the quest lifecycle state. Transitions only move forward:
// pending or in_progress may become completed, never the reverse.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Priority is the quest priority level.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Difficulty is the quest difficulty level.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Priorities enumerates valid priority values in rank order.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

// Difficulties enumerates valid difficulty values.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// ParsePriority normalizes and validates a priority string.
func ParsePriority(s string) (Priority, bool) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	for _, valid := range Priorities {
		if p == valid {
			return p, true
		}
	}
	return "", false
}

// ParseDifficulty normalizes and validates a difficulty string.
func ParseDifficulty(s string) (Difficulty, bool) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	for _, valid := range Difficulties {
		if d == valid {
			return d, true
		}
	}
	return "", false
}

// Rank orders priorities low < medium < high < critical for sorting.
func (p Priority) Rank() int {
	switch p {
	case PriorityLow:
		return 1
	case PriorityMedium:
		return 2
	case PriorityHigh:
		return 3
	case PriorityCritical:
		return 4
	default:
		return 0
	}
}

// XPReward returns the fixed XP assigned to a quest at creation time.
// Client-supplied values are ignored.
func (p Priority) XPReward() int {
	switch p {
	case PriorityLow:
		return 25
	case PriorityHigh:
		return 100
	case PriorityCritical:
		return 150
	default:
		return 50
	}
}

// Multiplier is the difficulty multiplier applied to completion rewards and
// shown on quest listings.
func (d Difficulty) Multiplier() float64 {
	switch d {
	case DifficultyMedium:
		return 1.2
	case DifficultyHard:
		return 1.5
	default:
		return 1.0
	}
}

// Icon returns the display marker for the difficulty.
func (d Difficulty) Icon() string {
	switch d {
	case DifficultyMedium:
		return "🟡"
	case DifficultyHard:
		return "🔴"
	default:
		return "🟢"
	}
}

// Quest represents a task record in the tracker.
type Quest struct {
	ID            int          `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description,omitempty"`
	Status        Status       `json:"status"`
	Priority      Priority     `json:"priority"`
	Category      CategoryCode `json:"category"`
	XPReward      int          `json:"xp_reward"`
	Deadline      *time.Time   `json:"deadline,omitempty"`
	EstimatedTime int          `json:"estimated_time"`
	CreatedAt     time.Time    `json:"created_at"`
	CompletedAt   *time.Time   `json:"completed_at,omitempty"`
	Tags          []string     `json:"tags"`
	Difficulty    Difficulty   `json:"difficulty"`
}

func (q *Quest) IsCompleted() bool {
	return q != nil && q.Status == StatusCompleted
}

// HasTag reports whether the quest carries any of the given tags,
// compared case-insensitively.
func (q *Quest) HasAnyTag(tags []string) bool {
	if q == nil {
		return false
	}
	for _, own := range q.Tags {
		for _, want := range tags {
			if strings.EqualFold(own, want) {
				return true
			}
		}
	}
	return false
}

// DaysUntilDeadline returns ceil((deadline - now) / 24h). Negative values
// mean the deadline has passed.
func (q *Quest) DaysUntilDeadline(now time.Time) (int, bool) {
	if q == nil || q.Deadline == nil {
		return 0, false
	}
	days := math.Ceil(q.Deadline.Sub(now).Hours() / 24)
	return int(days), true
}

// DifficultyInfo is the display block attached to enriched quests.
type DifficultyInfo struct {
	Icon       string  `json:"icon"`
	Multiplier float64 `json:"multiplier"`
}

// EnrichedQuest is a quest plus the derived fields computed per request.
// All derivation is pure in the quest and the supplied clock.
type EnrichedQuest struct {
	Quest
	DaysUntilDeadline    *int           `json:"days_until_deadline,omitempty"`
	IsUrgent             bool           `json:"is_urgent"`
	IsOverdue            bool           `json:"is_overdue"`
	CompletionPercentage *int           `json:"completion_percentage,omitempty"`
	DifficultyInfo       DifficultyInfo `json:"difficulty_info"`
}

// Enrich computes the derived fields for a quest at the given instant.
func (q Quest) Enrich(now time.Time) EnrichedQuest {
	enriched := EnrichedQuest{
		Quest: q,
		DifficultyInfo: DifficultyInfo{
			Icon:       q.Difficulty.Icon(),
			Multiplier: q.Difficulty.Multiplier(),
		},
	}

	if days, ok := q.DaysUntilDeadline(now); ok {
		enriched.DaysUntilDeadline = &days
		enriched.IsUrgent = days <= 1 && q.Status != StatusCompleted
		enriched.IsOverdue = days < 0 && q.Status != StatusCompleted
	}

	if q.Status == StatusInProgress {
		pct := completionEstimate(q.ID)
		enriched.CompletionPercentage = &pct
	}

	return enriched
}

// IsUrgentAt applies the urgency rule without full enrichment, for summary
// counts over filtered sets.
func (q *Quest) IsUrgentAt(now time.Time) bool {
	days, ok := q.DaysUntilDeadline(now)
	return ok && days <= 1 && q.Status != StatusCompleted
}

// completionEstimate derives a stable 10-90 progress figure from the quest
// identity. There is no real progress tracking behind it.
func completionEstimate(id int) int {
	return 10 + (id*37)%81
}

// Reward is the XP breakdown returned by quest completion.
type Reward struct {
	BaseXP               int     `json:"base_xp"`
	BonusXP              int     `json:"bonus_xp"`
	DifficultyMultiplier float64 `json:"difficulty_multiplier"`
	TotalXPEarned        int     `json:"total_xp_earned"`
	EarlyCompletion      bool    `json:"early_completion"`
}

// CompletionReward computes the XP awarded for completing the quest at the
// given instant: a 10% bonus when the deadline is met, then the difficulty
// multiplier over base plus bonus, rounded to the nearest integer.
func (q *Quest) CompletionReward(completedAt time.Time) Reward {
	base := q.XPReward
	bonus := 0
	if q.Deadline != nil && !completedAt.After(*q.Deadline) {
		bonus = int(math.Round(float64(base) * 0.10))
	}

	mult := q.Difficulty.Multiplier()
	total := int(math.Round(float64(base+bonus) * mult))

	return Reward{
		BaseXP:               base,
		BonusXP:              bonus,
		DifficultyMultiplier: mult,
		TotalXPEarned:        total,
		EarlyCompletion:      bonus > 0,
	}
}
