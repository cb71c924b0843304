package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/questtrack/backend/domain"
	"github.com/questtrack/backend/pkg/httpcontext"
	"github.com/questtrack/backend/repository/memory"
	playerUC "github.com/questtrack/backend/usecase/player"
)

func newPlayerHandler() *PlayerHandler {
	uc := playerUC.New(memory.NewPlayerRepository(memory.SeedPlayers(time.Now().UTC())), nil)
	return NewPlayerHandler(uc, httpcontext.NewAdapter(time.Second), nil)
}

func TestPlayerHandler_UpdatePreferences_EmptyBodyIsEmptyPatch(t *testing.T) {
	h := newPlayerHandler()
	ctx := newRequestCtx(http.MethodPut, "/api/players/alex/preferences", nil)
	ctx.SetUserValue("username", "alex")

	h.UpdatePreferences(ctx)

	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	envelope := decode(t, ctx)
	assert.Equal(t, "success", envelope.Status)

	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "alex", data["username"])

	prefs, ok := data["preferences"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "dark", prefs["theme"])
	assert.Equal(t, true, prefs["notifications"])
}

func TestPlayerHandler_UpdatePreferences_PartialPatch(t *testing.T) {
	h := newPlayerHandler()
	body := []byte(`{"theme":"light"}`)
	ctx := newRequestCtx(http.MethodPut, "/api/players/alex/preferences", body)
	ctx.SetUserValue("username", "alex")

	h.UpdatePreferences(ctx)

	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	data, ok := decode(t, ctx).Data.(map[string]interface{})
	require.True(t, ok)

	prefs, ok := data["preferences"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "light", prefs["theme"])
	assert.Equal(t, true, prefs["notifications"], "untouched fields survive the patch")
}

func TestPlayerHandler_UpdatePreferences_MalformedBody(t *testing.T) {
	h := newPlayerHandler()
	ctx := newRequestCtx(http.MethodPut, "/api/players/alex/preferences", []byte("{not json"))
	ctx.SetUserValue("username", "alex")

	h.UpdatePreferences(ctx)

	assert.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())
	assert.Equal(t, string(domain.ErrCodeInvalid), decode(t, ctx).Code)
}
