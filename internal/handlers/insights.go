package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tegarerputra/DuitTrack-sub000/internal/dto"
	"github.com/tegarerputra/DuitTrack-sub000/internal/middleware"
	"github.com/tegarerputra/DuitTrack-sub000/internal/response"
)

type InsightsService interface {
	PeriodInsights(ctx context.Context, uid, periodID string) (*dto.PeriodInsights, error)
	Comparison(ctx context.Context, uid, periodID string) (*dto.PeriodComparisonResult, error)
}

type insightsHandlers struct {
	ResponseHandler response.ResponseHandler
	InsightsSvc     InsightsService
}

func NewInsightsHandlers(deps *Deps) *insightsHandlers {
	return &insightsHandlers{
		ResponseHandler: deps.ResponseHandler,
		InsightsSvc:     deps.InsightsSvc,
	}
}

func (h *insightsHandlers) InsightsRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/{periodId}", h.PeriodInsights)
	r.Get("/{periodId}/comparison", h.Comparison)
	return r
}

func (h *insightsHandlers) PeriodInsights(w http.ResponseWriter, r *http.Request) {
	periodID := chi.URLParam(r, "periodId")
	uid := middleware.UID(r.Context())
	insights, err := h.InsightsSvc.PeriodInsights(r.Context(), uid, periodID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, insights)
}

func (h *insightsHandlers) Comparison(w http.ResponseWriter, r *http.Request) {
	periodID := chi.URLParam(r, "periodId")
	uid := middleware.UID(r.Context())
	comparison, err := h.InsightsSvc.Comparison(r.Context(), uid, periodID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, comparison)
}
