package memory

import (
	"context"
	"strings"

	"github.com/questtrack/backend/domain"
	"github.com/questtrack/backend/repository"
)

// CategoryRepository serves the static category catalog and its frozen usage
// snapshot. Nothing mutates after construction, so no locking is needed.
type CategoryRepository struct {
	categories []domain.Category
	stats      map[domain.CategoryCode]domain.CategoryStats
}

// NewCategoryRepository builds the catalog store.
func NewCategoryRepository(categories []domain.Category, stats map[domain.CategoryCode]domain.CategoryStats) *CategoryRepository {
	cats := make([]domain.Category, len(categories))
	copy(cats, categories)
	return &CategoryRepository{categories: cats, stats: stats}
}

func (r *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	_ = ctx
	out := make([]domain.Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

func (r *CategoryRepository) GetByCode(ctx context.Context, code domain.CategoryCode) (*domain.Category, error) {
	_ = ctx
	normalized := domain.CategoryCode(strings.ToLower(string(code)))
	for i := range r.categories {
		if r.categories[i].ID == normalized {
			c := r.categories[i]
			return &c, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

func (r *CategoryRepository) StatsFor(ctx context.Context, code domain.CategoryCode) (domain.CategoryStats, error) {
	_ = ctx
	return r.stats[code], nil
}

func (r *CategoryRepository) Refs(ctx context.Context) ([]repository.CategoryRef, error) {
	_ = ctx
	refs := make([]repository.CategoryRef, 0, len(r.categories))
	for i := range r.categories {
		refs = append(refs, repository.CategoryRef{ID: r.categories[i].ID, Name: r.categories[i].Name})
	}
	return refs, nil
}

var _ repository.CategoryRepository = (*CategoryRepository)(nil)
