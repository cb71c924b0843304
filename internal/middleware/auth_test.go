package middleware

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/questtrack/backend/api/transport"
	"github.com/questtrack/backend/domain"
)

var testKeys = []string{"demo_key_12345", "test_key_67890"}

func runAuth(t *testing.T, configure func(ctx *fasthttp.RequestCtx)) (*fasthttp.RequestCtx, bool) {
	t.Helper()

	called := false
	next := func(ctx *fasthttp.RequestCtx) { called = true }
	handler := APIKeyAuth(testKeys, nil)(next)

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.SetRequestURI("/api/quests")
	if configure != nil {
		configure(ctx)
	}
	handler(ctx)
	return ctx, called
}

func decodeEnvelope(t *testing.T, ctx *fasthttp.RequestCtx) transport.Envelope {
	t.Helper()
	var envelope transport.Envelope
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &envelope))
	return envelope
}

func TestAPIKeyAuth_MissingKey(t *testing.T) {
	ctx, called := runAuth(t, nil)

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, ctx.Response.StatusCode())

	envelope := decodeEnvelope(t, ctx)
	assert.Equal(t, string(domain.ErrCodeUnauthorized), envelope.Code)
	assert.Contains(t, envelope.Error, "API key missing")
}

func TestAPIKeyAuth_InvalidKey(t *testing.T) {
	ctx, called := runAuth(t, func(ctx *fasthttp.RequestCtx) {
		ctx.Request.Header.Set("X-API-Key", "wrong_key")
	})

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, ctx.Response.StatusCode())

	envelope := decodeEnvelope(t, ctx)
	assert.Equal(t, "The provided API key is not valid", envelope.Error)
}

func TestAPIKeyAuth_HeaderKeyPasses(t *testing.T) {
	ctx, called := runAuth(t, func(ctx *fasthttp.RequestCtx) {
		ctx.Request.Header.Set("X-API-Key", "demo_key_12345")
	})

	assert.True(t, called)
	assert.Equal(t, "demo_key_12345", ctx.UserValue(UserValueAPIKey))

	identity, ok := ctx.UserValue(UserValueIdentity).(domain.Identity)
	require.True(t, ok)
	assert.Equal(t, "Demo User", identity.Name)
	assert.Equal(t, "demo", identity.Role)
}

func TestAPIKeyAuth_QueryParamFallback(t *testing.T) {
	ctx, called := runAuth(t, func(ctx *fasthttp.RequestCtx) {
		ctx.Request.SetRequestURI("/api/quests?api_key=test_key_67890")
	})

	assert.True(t, called)
	assert.Equal(t, "test_key_67890", ctx.UserValue(UserValueAPIKey))
}

func TestAPIKeyAuth_UnlistedConfiguredKey(t *testing.T) {
	called := false
	handler := APIKeyAuth([]string{"custom_key"}, nil)(func(ctx *fasthttp.RequestCtx) { called = true })

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.SetRequestURI("/api/quests")
	ctx.Request.Header.Set("X-API-Key", "custom_key")
	handler(ctx)

	require.True(t, called)
	identity, ok := ctx.UserValue(UserValueIdentity).(domain.Identity)
	require.True(t, ok)
	assert.Equal(t, "unknown", identity.Role)
}
