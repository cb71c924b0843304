package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/questtrack/backend/pkg/httpcontext"
	categoryUC "github.com/questtrack/backend/usecase/category"
)

type CategoryHandler struct {
	baseHandler
	uc *categoryUC.UseCase
}

func NewCategoryHandler(uc *categoryUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List categories
// @Tags categories
// @Router /api/categories [get]
func (h *CategoryHandler) List(ctx *fasthttp.RequestCtx) {
	args := ctx.QueryArgs()
	params := categoryUC.ListParams{
		Search:       string(args.Peek("search")),
		IncludeStats: string(args.Peek("include_stats")) == "true",
		SortBy:       string(args.Peek("sort_by")),
		Order:        string(args.Peek("order")),
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

// @Summary Get category
// @Tags categories
// @Router /api/categories/{id} [get]
func (h *CategoryHandler) Get(ctx *fasthttp.RequestCtx) {
	code, _ := ctx.UserValue("id").(string)
	args := ctx.QueryArgs()
	opts := categoryUC.DetailOptions{
		IncludeQuests: string(args.Peek("include_quests")) == "true",
		IncludeTips:   string(args.Peek("include_tips")) != "false",
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	detail, err := h.uc.Get(stdCtx, code, opts)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, detail)
}

// @Summary Quest suggestions for a category
// @Tags categories
// @Router /api/categories/{id}/suggestions [get]
func (h *CategoryHandler) Suggestions(ctx *fasthttp.RequestCtx) {
	code, _ := ctx.UserValue("id").(string)
	args := ctx.QueryArgs()
	difficulty := string(args.Peek("difficulty"))
	timeAvailable := parseInt(string(args.Peek("time_available")), 0)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	result, err := h.uc.Suggestions(stdCtx, code, difficulty, timeAvailable)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, result)
}
