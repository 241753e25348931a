package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/appforge/console-server/internal/logger"
	"github.com/appforge/console-server/internal/utils"
	"github.com/appforge/console-server/models"
)

func (h *Handler) listAdvertising(w http.ResponseWriter, r *http.Request) {
	account, ok := accountFromRequest(w, r)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	ads, err := h.services.AdvertisingService.List(r.Context(), account, page, limit)
	if err != nil {
		writeError(w, r, err, "error listing advertising")
		return
	}

	utils.WriteJSON(w, ads, http.StatusOK)
}

func (h *Handler) getAdvertising(w http.ResponseWriter, r *http.Request) {
	account, ok := accountFromRequest(w, r)
	if !ok {
		return
	}

	ad, err := h.services.AdvertisingService.Get(r.Context(), account, chi.URLParam(r, "adID"))
	if err != nil {
		writeError(w, r, err, "error getting advertising")
		return
	}

	utils.WriteJSON(w, ad, http.StatusOK)
}

func (h *Handler) createAdvertising(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	account, ok := accountFromRequest(w, r)
	if !ok {
		return
	}

	var req models.CreateAdvertisingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	ad, err := h.services.AdvertisingService.Create(r.Context(), account, req)
	if err != nil {
		writeError(w, r, err, "error creating advertising")
		return
	}

	utils.WriteJSON(w, ad, http.StatusCreated)
}

func (h *Handler) updateAdvertising(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	account, ok := accountFromRequest(w, r)
	if !ok {
		return
	}

	var req models.UpdateAdvertisingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	ad, err := h.services.AdvertisingService.Update(r.Context(), account, chi.URLParam(r, "adID"), req)
	if err != nil {
		writeError(w, r, err, "error updating advertising")
		return
	}

	utils.WriteJSON(w, ad, http.StatusOK)
}

func (h *Handler) updateAdvertisingStatus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	account, ok := accountFromRequest(w, r)
	if !ok {
		return
	}

	var req models.StatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	ad, err := h.services.AdvertisingService.UpdateStatus(r.Context(), account, chi.URLParam(r, "adID"), req.Status)
	if err != nil {
		writeError(w, r, err, "error updating advertising status")
		return
	}

	utils.WriteJSON(w, ad, http.StatusOK)
}

func (h *Handler) deleteAdvertising(w http.ResponseWriter, r *http.Request) {
	account, ok := accountFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.AdvertisingService.Delete(r.Context(), account, chi.URLParam(r, "adID")); err != nil {
		writeError(w, r, err, "error deleting advertising")
		return
	}

	utils.WriteJSON(w, models.ResultResponse{Result: "success"}, http.StatusOK)
}
