package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tegarerputra/DuitTrack-sub000/internal/dto"
	"github.com/tegarerputra/DuitTrack-sub000/internal/errs"
	"github.com/tegarerputra/DuitTrack-sub000/internal/middleware"
	"github.com/tegarerputra/DuitTrack-sub000/internal/models"
	"github.com/tegarerputra/DuitTrack-sub000/internal/response"
)

type ExpenseService interface {
	Create(ctx context.Context, uid string, req dto.CreateExpenseRequest) (*models.Expense, error)
	Get(ctx context.Context, uid, expenseID string) (*models.Expense, error)
	Update(ctx context.Context, uid, expenseID string, req dto.UpdateExpenseRequest) (*models.Expense, error)
	Delete(ctx context.Context, uid, expenseID string) error
	ListByPeriod(ctx context.Context, uid, periodID string) ([]models.Expense, error)
}

type expenseHandlers struct {
	ResponseHandler response.ResponseHandler
	ExpenseSvc      ExpenseService
}

func NewExpenseHandlers(deps *Deps) *expenseHandlers {
	return &expenseHandlers{
		ResponseHandler: deps.ResponseHandler,
		ExpenseSvc:      deps.ExpenseSvc,
	}
}

func (h *expenseHandlers) ExpenseRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{expenseId}", h.Get)
	r.Put("/{expenseId}", h.Update)
	r.Delete("/{expenseId}", h.Delete)
	return r
}

func (h *expenseHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var body dto.CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	uid := middleware.UID(r.Context())
	expense, err := h.ExpenseSvc.Create(r.Context(), uid, body)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, expense)
}

func (h *expenseHandlers) Get(w http.ResponseWriter, r *http.Request) {
	expenseID := chi.URLParam(r, "expenseId")
	uid := middleware.UID(r.Context())
	expense, err := h.ExpenseSvc.Get(r.Context(), uid, expenseID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, expense)
}

func (h *expenseHandlers) Update(w http.ResponseWriter, r *http.Request) {
	expenseID := chi.URLParam(r, "expenseId")
	var body dto.UpdateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	uid := middleware.UID(r.Context())
	expense, err := h.ExpenseSvc.Update(r.Context(), uid, expenseID, body)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, expense)
}

func (h *expenseHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	expenseID := chi.URLParam(r, "expenseId")
	uid := middleware.UID(r.Context())
	if err := h.ExpenseSvc.Delete(r.Context(), uid, expenseID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

// List returns the expenses of one period, selected by the periodId query
// parameter.
func (h *expenseHandlers) List(w http.ResponseWriter, r *http.Request) {
	periodID := r.URL.Query().Get("periodId")
	if periodID == "" {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("periodId query parameter is required"))
		return
	}

	uid := middleware.UID(r.Context())
	expenses, err := h.ExpenseSvc.ListByPeriod(r.Context(), uid, periodID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, expenses)
}
