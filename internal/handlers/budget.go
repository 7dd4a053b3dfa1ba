package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tegarerputra/DuitTrack-sub000/internal/dto"
	"github.com/tegarerputra/DuitTrack-sub000/internal/middleware"
	"github.com/tegarerputra/DuitTrack-sub000/internal/models"
	"github.com/tegarerputra/DuitTrack-sub000/internal/response"
)

type BudgetService interface {
	Get(ctx context.Context, uid, periodID string) (*models.Budget, error)
	Set(ctx context.Context, uid, periodID string, req dto.SetBudgetRequest) (*models.Budget, error)
}

type budgetHandlers struct {
	ResponseHandler response.ResponseHandler
	BudgetSvc       BudgetService
}

func NewBudgetHandlers(deps *Deps) *budgetHandlers {
	return &budgetHandlers{
		ResponseHandler: deps.ResponseHandler,
		BudgetSvc:       deps.BudgetSvc,
	}
}

func (h *budgetHandlers) BudgetRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/{periodId}", h.Get)
	r.Put("/{periodId}", h.Set)
	return r
}

func (h *budgetHandlers) Get(w http.ResponseWriter, r *http.Request) {
	periodID := chi.URLParam(r, "periodId")
	uid := middleware.UID(r.Context())
	budget, err := h.BudgetSvc.Get(r.Context(), uid, periodID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, budget)
}

func (h *budgetHandlers) Set(w http.ResponseWriter, r *http.Request) {
	periodID := chi.URLParam(r, "periodId")
	var body dto.SetBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	uid := middleware.UID(r.Context())
	budget, err := h.BudgetSvc.Set(r.Context(), uid, periodID, body)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, budget)
}
