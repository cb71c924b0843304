package repository

import (
	"context"

	"github.com/questtrack/backend/domain"
)

// CategoryRef is the compact identity used in not-found suggestions.
type CategoryRef struct {
	ID   domain.CategoryCode `json:"id"`
	Name string              `json:"name"`
}

// CategoryRepository owns the static category catalog and its frozen usage
// snapshot. Both are immutable after seeding.
type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetByCode(ctx context.Context, code domain.CategoryCode) (*domain.Category, error)
	// StatsFor returns the frozen snapshot for the code, zero-valued when
	// the code has no snapshot.
	StatsFor(ctx context.Context, code domain.CategoryCode) (domain.CategoryStats, error)
	Refs(ctx context.Context) ([]CategoryRef, error)
}
