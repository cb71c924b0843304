package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/questtrack/backend/api/transport"
	"github.com/questtrack/backend/domain"
	"github.com/questtrack/backend/pkg/httpcontext"
	playerUC "github.com/questtrack/backend/usecase/player"
)

type PlayerHandler struct {
	baseHandler
	uc *playerUC.UseCase
}

func NewPlayerHandler(uc *playerUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *PlayerHandler {
	return &PlayerHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Leaderboard
// @Tags players
// @Router /api/players [get]
func (h *PlayerHandler) Leaderboard(ctx *fasthttp.RequestCtx) {
	args := ctx.QueryArgs()
	params := playerUC.LeaderboardParams{
		SortBy: string(args.Peek("sort_by")),
		Order:  string(args.Peek("order")),
		Limit:  parseInt(string(args.Peek("limit")), 0),
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	result, err := h.uc.Leaderboard(stdCtx, params)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, result)
}

// @Summary Get player profile
// @Tags players
// @Router /api/players/{username} [get]
func (h *PlayerHandler) Get(ctx *fasthttp.RequestCtx) {
	username, _ := ctx.UserValue("username").(string)
	args := ctx.QueryArgs()
	opts := playerUC.ProfileOptions{
		IncludeQuests: string(args.Peek("include_quests")) == "true",
		IncludeStats:  string(args.Peek("include_stats")) != "false",
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	profile, err := h.uc.GetProfile(stdCtx, username, opts)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, profile)
}

// @Summary Update player preferences
// @Tags players
// @Router /api/players/{username}/preferences [put]
func (h *PlayerHandler) UpdatePreferences(ctx *fasthttp.RequestCtx) {
	username, _ := ctx.UserValue("username").(string)

	// A missing body is an empty patch; the player keeps current
	// preferences and only last_active refreshes.
	var req transport.UpdatePreferencesRequest
	if body := ctx.PostBody(); len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
			return
		}
	}

	update := playerUC.PreferencesUpdate{
		Notifications: req.Notifications,
		Theme:         req.Theme,
	}
	if req.Categories != nil {
		categories := make([]domain.CategoryCode, 0, len(req.Categories))
		for _, c := range req.Categories {
			categories = append(categories, domain.CategoryCode(c))
		}
		update.Categories = categories
	}
	if req.Difficulty != nil {
		difficulty := domain.Difficulty(*req.Difficulty)
		update.Difficulty = &difficulty
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	result, err := h.uc.UpdatePreferences(stdCtx, username, update)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, result)
}
