package httpapi

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/football-chatbot/internal/usecase"
)

type cacheWarmRequest struct {
	LeagueIDs  []int    `json:"league_ids" validate:"omitempty,max=20,dive,gt=0"`
	Resources  []string `json:"resources" validate:"omitempty,max=4,dive,required"`
	MaxWorkers int      `json:"max_workers" validate:"omitempty,gte=1,lte=8"`
}

func (h *Handler) GetCacheStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCacheStats")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, h.footballService.CacheStats())
}

func (h *Handler) ClearCache(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ClearCache")
	defer span.End()

	removed, err := h.footballService.ClearCache(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "clear cache failed", "removed", removed, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "cache cleared", "removed", removed)
	writeSuccess(ctx, w, http.StatusOK, map[string]int{"removed": removed})
}

func (h *Handler) WarmCache(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.WarmCache")
	defer span.End()

	if h.cacheWarmService == nil {
		writeError(ctx, w, fmt.Errorf("%w: cache warmer is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	var req cacheWarmRequest
	if err := decodeJSONBody(r, &req, true); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.cacheWarmService.Warm(ctx, usecase.CacheWarmInput{
		LeagueIDs:  req.LeagueIDs,
		Resources:  req.Resources,
		MaxWorkers: req.MaxWorkers,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "warm cache failed", "league_ids", req.LeagueIDs, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}
