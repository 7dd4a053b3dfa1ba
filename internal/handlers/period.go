package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tegarerputra/DuitTrack-sub000/internal/dto"
	"github.com/tegarerputra/DuitTrack-sub000/internal/errs"
	"github.com/tegarerputra/DuitTrack-sub000/internal/middleware"
	"github.com/tegarerputra/DuitTrack-sub000/internal/period"
	"github.com/tegarerputra/DuitTrack-sub000/internal/response"
)

type PeriodService interface {
	ListPeriods(ctx context.Context, uid string, count int) ([]dto.PeriodView, error)
	CurrentPeriod(ctx context.Context, uid string) (period.Period, error)
	PeriodByID(ctx context.Context, uid, periodID string) (period.Period, error)
	PeriodForDate(ctx context.Context, uid string, date time.Time) (period.Period, error)
	PeriodData(ctx context.Context, uid, periodID string) (*dto.PeriodData, error)
}

type periodHandlers struct {
	ResponseHandler response.ResponseHandler
	PeriodSvc       PeriodService
}

func NewPeriodHandlers(deps *Deps) *periodHandlers {
	return &periodHandlers{
		ResponseHandler: deps.ResponseHandler,
		PeriodSvc:       deps.PeriodSvc,
	}
}

func (h *periodHandlers) PeriodRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Get("/current", h.Current)  // must be before /{periodId}
	r.Get("/for-date", h.ForDate) // likewise
	r.Get("/{periodId}", h.Get)
	r.Get("/{periodId}/data", h.Data)
	return r
}

func (h *periodHandlers) List(w http.ResponseWriter, r *http.Request) {
	var count int
	if raw := r.URL.Query().Get("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			h.ResponseHandler.HandleError(w, r, errs.NewValidationError("count must be a positive integer"))
			return
		}
		count = parsed
	}

	uid := middleware.UID(r.Context())
	views, err := h.PeriodSvc.ListPeriods(r.Context(), uid, count)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, views)
}

func (h *periodHandlers) Current(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	p, err := h.PeriodSvc.CurrentPeriod(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, dto.PeriodView{
		Period:  p,
		Display: period.FormatPeriodDisplay(p.StartDate, p.EndDate),
	})
}

// ForDate resolves which period contains an arbitrary date, e.g. when
// backdating an expense.
func (h *periodHandlers) ForDate(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("date")
	date, err := time.Parse(dto.DateLayout, raw)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("date query parameter must be a YYYY-MM-DD date"))
		return
	}

	uid := middleware.UID(r.Context())
	p, err := h.PeriodSvc.PeriodForDate(r.Context(), uid, date)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, dto.PeriodView{
		Period:  p,
		Display: period.FormatPeriodDisplay(p.StartDate, p.EndDate),
	})
}

func (h *periodHandlers) Get(w http.ResponseWriter, r *http.Request) {
	periodID := chi.URLParam(r, "periodId")
	if _, err := time.Parse(dto.DateLayout, periodID); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("period id must be a YYYY-MM-DD date"))
		return
	}

	uid := middleware.UID(r.Context())
	p, err := h.PeriodSvc.PeriodByID(r.Context(), uid, periodID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, dto.PeriodView{
		Period:  p,
		Display: period.FormatPeriodDisplay(p.StartDate, p.EndDate),
	})
}

func (h *periodHandlers) Data(w http.ResponseWriter, r *http.Request) {
	periodID := chi.URLParam(r, "periodId")
	uid := middleware.UID(r.Context())

	// resolve first so an unknown id is a 404, not an empty bundle
	if _, err := h.PeriodSvc.PeriodByID(r.Context(), uid, periodID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	data, err := h.PeriodSvc.PeriodData(r.Context(), uid, periodID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, data)
}
