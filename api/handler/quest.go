package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/questtrack/backend/api/transport"
	"github.com/questtrack/backend/domain"
	"github.com/questtrack/backend/pkg/httpcontext"
	questUC "github.com/questtrack/backend/usecase/quest"
)

type QuestHandler struct {
	baseHandler
	uc *questUC.UseCase
}

func NewQuestHandler(uc *questUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *QuestHandler {
	return &QuestHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List quests
// @Tags quests
// @Router /api/quests [get]
func (h *QuestHandler) List(ctx *fasthttp.RequestCtx) {
	args := ctx.QueryArgs()
	params := questUC.ListParams{
		Status:         string(args.Peek("status")),
		Priority:       string(args.Peek("priority")),
		Category:       string(args.Peek("category")),
		Tags:           string(args.Peek("tags")),
		Difficulty:     string(args.Peek("difficulty")),
		CreatedAfter:   string(args.Peek("created_after")),
		DeadlineBefore: string(args.Peek("deadline_before")),
		SortBy:         string(args.Peek("sort_by")),
		Order:          string(args.Peek("order")),
		Limit:          parseInt(string(args.Peek("limit")), 0),
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	result, err := h.uc.List(stdCtx, params)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, result)
}

// @Summary Get quest
// @Tags quests
// @Router /api/quests/{id} [get]
func (h *QuestHandler) Get(ctx *fasthttp.RequestCtx) {
	id, ok := h.questID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	quest, err := h.uc.Get(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, quest)
}

// @Summary Create quest
// @Tags quests
// @Router /api/quests [post]
func (h *QuestHandler) Create(ctx *fasthttp.RequestCtx) {
	var req transport.CreateQuestRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	result, err := h.uc.Create(stdCtx, questUC.CreateParams{
		Title:         req.Title,
		Description:   req.Description,
		Priority:      req.Priority,
		Category:      req.Category,
		Deadline:      req.Deadline,
		Tags:          req.Tags,
		EstimatedTime: int(req.EstimatedTime),
		Difficulty:    req.Difficulty,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, result)
}

// @Summary Complete quest
// @Tags quests
// @Router /api/quests/{id}/complete [post]
func (h *QuestHandler) Complete(ctx *fasthttp.RequestCtx) {
	id, ok := h.questID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	result, err := h.uc.Complete(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, result)
}

func (h *QuestHandler) questID(ctx *fasthttp.RequestCtx) (int, bool) {
	raw, _ := ctx.UserValue("id").(string)
	id, err := strconv.Atoi(raw)
	if err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(
			string(domain.ErrCodeInvalid),
			"Quest ID must be a number",
			map[string]interface{}{"provided": raw},
		))
		return 0, false
	}
	return id, true
}

func parseInt(value string, fallback int) int {
	if v, err := strconv.Atoi(value); err == nil {
		return v
	}
	return fallback
}
