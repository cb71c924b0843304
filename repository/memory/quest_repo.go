package memory

import (
	"context"
	"sync"
	"time"

	"github.com/questtrack/backend/domain"
	"github.com/questtrack/backend/repository"
)

// QuestRepository is the in-memory quest store. A single RWMutex guards the
// collection: Create and Complete take the write lock so identity allocation
// and status transitions are serialized.
type QuestRepository struct {
	mu     sync.RWMutex
	quests []domain.Quest
}

// NewQuestRepository builds a store seeded with the given quests.
func NewQuestRepository(seed []domain.Quest) *QuestRepository {
	quests := make([]domain.Quest, len(seed))
	copy(quests, seed)
	return &QuestRepository{quests: quests}
}

func (r *QuestRepository) List(ctx context.Context) ([]domain.Quest, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Quest, len(r.quests))
	copy(out, r.quests)
	return out, nil
}

func (r *QuestRepository) GetByID(ctx context.Context, id int) (*domain.Quest, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.quests {
		if r.quests[i].ID == id {
			q := r.quests[i]
			return &q, nil
		}
	}
	return nil, domain.ErrQuestNotFound
}

func (r *QuestRepository) Create(ctx context.Context, quest *domain.Quest) (*domain.Quest, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	// Not a dense counter: max existing + 1, or 1 for an empty store.
	nextID := 1
	for i := range r.quests {
		if r.quests[i].ID >= nextID {
			nextID = r.quests[i].ID + 1
		}
	}

	created := *quest
	created.ID = nextID
	if created.Tags == nil {
		created.Tags = []string{}
	}
	r.quests = append(r.quests, created)

	out := created
	return &out, nil
}

func (r *QuestRepository) Complete(ctx context.Context, id int, now time.Time) (*domain.Quest, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.quests {
		if r.quests[i].ID != id {
			continue
		}
		if r.quests[i].Status == domain.StatusCompleted {
			completedAt := ""
			if r.quests[i].CompletedAt != nil {
				completedAt = r.quests[i].CompletedAt.Format(time.RFC3339)
			}
			return nil, domain.WrapErrorWithDetails(domain.ErrCodeConflict,
				domain.ErrQuestCompleted,
				map[string]interface{}{
					"quest_id":     id,
					"completed_at": completedAt,
				})
		}

		r.quests[i].Status = domain.StatusCompleted
		completedAt := now
		r.quests[i].CompletedAt = &completedAt

		q := r.quests[i]
		return &q, nil
	}
	return nil, domain.ErrQuestNotFound
}

func (r *QuestRepository) Refs(ctx context.Context) ([]repository.QuestRef, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	refs := make([]repository.QuestRef, 0, len(r.quests))
	for i := range r.quests {
		refs = append(refs, repository.QuestRef{ID: r.quests[i].ID, Title: r.quests[i].Title})
	}
	return refs, nil
}

var _ repository.QuestRepository = (*QuestRepository)(nil)
