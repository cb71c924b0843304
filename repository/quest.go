package repository

import (
	"context"
	"time"

	"github.com/questtrack/backend/domain"
)

// QuestRef is the compact identity used in not-found suggestions.
type QuestRef struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// QuestRepository owns the quest collection. Mutations are serialized by the
// implementation; reads return copies.
type QuestRepository interface {
	List(ctx context.Context) ([]domain.Quest, error)
	GetByID(ctx context.Context, id int) (*domain.Quest, error)
	// Create assigns the next identity (max existing + 1) and appends.
	Create(ctx context.Context, quest *domain.Quest) (*domain.Quest, error)
	// Complete transitions pending/in_progress to completed at the given
	// instant. Returns domain.ErrQuestNotFound for unknown IDs; a second
	// completion returns an error wrapping domain.ErrQuestCompleted with
	// quest_id/completed_at details, leaving the original completed_at
	// untouched.
	Complete(ctx context.Context, id int, now time.Time) (*domain.Quest, error)
	// Refs lists id/title pairs for suggestion payloads.
	Refs(ctx context.Context) ([]QuestRef, error)
}
