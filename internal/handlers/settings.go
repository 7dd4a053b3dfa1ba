package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tegarerputra/DuitTrack-sub000/internal/dto"
	"github.com/tegarerputra/DuitTrack-sub000/internal/middleware"
	"github.com/tegarerputra/DuitTrack-sub000/internal/period"
	"github.com/tegarerputra/DuitTrack-sub000/internal/response"
)

type SettingsService interface {
	ResetConfig(ctx context.Context, uid string) (period.ResetConfig, error)
	PreviewResetChange(ctx context.Context, uid string, req dto.ResetChangeRequest) (*dto.ResetChangePreview, error)
	ApplyResetChange(ctx context.Context, uid string, req dto.ResetChangeRequest) (*dto.ResetChangeResult, error)
	ResetHistory(ctx context.Context, uid string) ([]period.ChangeHistory, error)
}

type settingsHandlers struct {
	ResponseHandler response.ResponseHandler
	SettingsSvc     SettingsService
}

func NewSettingsHandlers(deps *Deps) *settingsHandlers {
	return &settingsHandlers{
		ResponseHandler: deps.ResponseHandler,
		SettingsSvc:     deps.SettingsSvc,
	}
}

func (h *settingsHandlers) SettingsRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/reset", h.GetResetConfig)
	r.Post("/reset/preview", h.PreviewResetChange)
	r.Post("/reset", h.ApplyResetChange)
	r.Get("/reset/history", h.ResetHistory)
	return r
}

func (h *settingsHandlers) GetResetConfig(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	cfg, err := h.SettingsSvc.ResetConfig(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, cfg)
}

func (h *settingsHandlers) PreviewResetChange(w http.ResponseWriter, r *http.Request) {
	var body dto.ResetChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	uid := middleware.UID(r.Context())
	preview, err := h.SettingsSvc.PreviewResetChange(r.Context(), uid, body)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, preview)
}

func (h *settingsHandlers) ApplyResetChange(w http.ResponseWriter, r *http.Request) {
	var body dto.ResetChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	uid := middleware.UID(r.Context())
	result, err := h.SettingsSvc.ApplyResetChange(r.Context(), uid, body)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, result)
}

func (h *settingsHandlers) ResetHistory(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	history, err := h.SettingsSvc.ResetHistory(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, history)
}
