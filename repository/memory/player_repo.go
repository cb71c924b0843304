package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/questtrack/backend/domain"
	"github.com/questtrack/backend/repository"
)

// PlayerRepository is the in-memory player store, keyed by lowercase
// username. Preference updates take the write lock.
type PlayerRepository struct {
	mu      sync.RWMutex
	order   []string
	players map[string]domain.Player
}

// NewPlayerRepository builds a store seeded with the given players. Seed
// order is preserved for listings.
func NewPlayerRepository(seed []domain.Player) *PlayerRepository {
	repo := &PlayerRepository{players: make(map[string]domain.Player, len(seed))}
	for _, p := range seed {
		key := strings.ToLower(p.Username)
		repo.order = append(repo.order, key)
		repo.players[key] = p
	}
	return repo
}

func (r *PlayerRepository) List(ctx context.Context) ([]domain.Player, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Player, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.players[key])
	}
	return out, nil
}

func (r *PlayerRepository) GetByUsername(ctx context.Context, username string) (*domain.Player, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.players[strings.ToLower(username)]
	if !ok {
		return nil, domain.ErrPlayerNotFound
	}
	return &p, nil
}

func (r *PlayerRepository) UpdatePreferences(ctx context.Context, username string, patch domain.PreferencesPatch, now time.Time) (*domain.Player, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(username)
	p, ok := r.players[key]
	if !ok {
		return nil, domain.ErrPlayerNotFound
	}

	if patch.Categories != nil {
		p.Preferences.Categories = patch.Categories
	}
	if patch.Difficulty != nil {
		p.Preferences.Difficulty = *patch.Difficulty
	}
	if patch.Notifications != nil {
		p.Preferences.Notifications = *patch.Notifications
	}
	if patch.Theme != nil {
		p.Preferences.Theme = *patch.Theme
	}

	// last_active refreshes on every successful call, changed or not.
	p.LastActive = now
	r.players[key] = p

	out := p
	return &out, nil
}

func (r *PlayerRepository) Usernames(ctx context.Context) ([]string, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.order))
	copy(out, r.order)
	return out, nil
}

var _ repository.PlayerRepository = (*PlayerRepository)(nil)
