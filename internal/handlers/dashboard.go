package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tegarerputra/DuitTrack-sub000/internal/dto"
	"github.com/tegarerputra/DuitTrack-sub000/internal/middleware"
	"github.com/tegarerputra/DuitTrack-sub000/internal/response"
)

type DashboardService interface {
	Summary(ctx context.Context, uid string) (*dto.DashboardSummary, error)
}

type dashboardHandlers struct {
	ResponseHandler response.ResponseHandler
	DashboardSvc    DashboardService
}

func NewDashboardHandlers(deps *Deps) *dashboardHandlers {
	return &dashboardHandlers{
		ResponseHandler: deps.ResponseHandler,
		DashboardSvc:    deps.DashboardSvc,
	}
}

func (h *dashboardHandlers) DashboardRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Summary)
	return r
}

func (h *dashboardHandlers) Summary(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	summary, err := h.DashboardSvc.Summary(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, summary)
}
