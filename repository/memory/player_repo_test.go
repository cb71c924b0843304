package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/questtrack/backend/domain"
)

func seedNow() time.Time {
	return time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
}

func TestPlayerRepository_ListPreservesSeedOrder(t *testing.T) {
	repo := NewPlayerRepository(SeedPlayers(seedNow()))

	players, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, players, 4)
	assert.Equal(t, "alex", players[0].Username)
	assert.Equal(t, "demo", players[3].Username)
}

func TestPlayerRepository_GetByUsernameIsCaseInsensitive(t *testing.T) {
	repo := NewPlayerRepository(SeedPlayers(seedNow()))
	ctx := context.Background()

	p, err := repo.GetByUsername(ctx, "ALEX")
	require.NoError(t, err)
	assert.Equal(t, "Alex Chen", p.DisplayName)

	_, err = repo.GetByUsername(ctx, "nobody")
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
}

func TestPlayerRepository_UpdatePreferencesMergesPartially(t *testing.T) {
	repo := NewPlayerRepository(SeedPlayers(seedNow()))
	ctx := context.Background()
	now := seedNow().Add(24 * time.Hour)

	theme := "light"
	updated, err := repo.UpdatePreferences(ctx, "alex", domain.PreferencesPatch{Theme: &theme}, now)
	require.NoError(t, err)

	assert.Equal(t, "light", updated.Preferences.Theme)
	// Untouched fields survive the patch.
	assert.Equal(t, []domain.CategoryCode{domain.CategoryWork, domain.CategoryHealth}, updated.Preferences.Categories)
	assert.Equal(t, domain.DifficultyMedium, updated.Preferences.Difficulty)
	assert.True(t, updated.Preferences.Notifications)
	assert.Equal(t, now, updated.LastActive)
}

func TestPlayerRepository_UpdatePreferencesRefreshesLastActive(t *testing.T) {
	repo := NewPlayerRepository(SeedPlayers(seedNow()))
	ctx := context.Background()
	now := seedNow().Add(48 * time.Hour)

	// An empty patch still counts as activity.
	updated, err := repo.UpdatePreferences(ctx, "jordan", domain.PreferencesPatch{}, now)
	require.NoError(t, err)
	assert.Equal(t, now, updated.LastActive)
	assert.Equal(t, "light", updated.Preferences.Theme)
}

func TestPlayerRepository_UpdatePreferencesUnknownPlayer(t *testing.T) {
	repo := NewPlayerRepository(SeedPlayers(seedNow()))

	_, err := repo.UpdatePreferences(context.Background(), "nobody", domain.PreferencesPatch{}, seedNow())
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
}

func TestPlayerRepository_Usernames(t *testing.T) {
	repo := NewPlayerRepository(SeedPlayers(seedNow()))

	names, err := repo.Usernames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"alex", "jordan", "sam", "demo"}, names)
}
