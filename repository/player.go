package repository

import (
	"context"
	"time"

	"github.com/questtrack/backend/domain"
)

// PlayerRepository owns the player collection, keyed by lowercase username.
type PlayerRepository interface {
	List(ctx context.Context) ([]domain.Player, error)
	GetByUsername(ctx context.Context, username string) (*domain.Player, error)
	// UpdatePreferences merges only the patch fields that are set and always
	// refreshes last_active, even when no field changed.
	UpdatePreferences(ctx context.Context, username string, patch domain.PreferencesPatch, now time.Time) (*domain.Player, error)
	// Usernames lists known handles for suggestion payloads.
	Usernames(ctx context.Context) ([]string, error)
}
