package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/appforge/console-server/internal/logger"
	"github.com/appforge/console-server/internal/utils"
	"github.com/appforge/console-server/models"
)

// accountFromRequest fetches the authenticated account placed in the context
// by the auth middleware. A missing account means the route was wired without
// the middleware and is answered with 401.
func accountFromRequest(w http.ResponseWriter, r *http.Request) (models.Account, bool) {
	account, ok := utils.GetAccountFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no account found in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
	}
	return account, ok
}

// writeError maps a service or store error to its HTTP status and writes a
// plain-text response.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	logger.FromRequest(r).Err(err).Msg(msg)
	http.Error(w, msg, statusFromError(err))
}

func (h *Handler) listApps(w http.ResponseWriter, r *http.Request) {
	account, ok := accountFromRequest(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	page, _ := strconv.Atoi(query.Get("page"))
	limit, _ := strconv.Atoi(query.Get("limit"))

	filter := models.AppFilter{
		Page:     page,
		Limit:    limit,
		Status:   query.Get("status"),
		IsHidden: query.Get("is_hidden"),
		Mode:     models.AppMode(query.Get("mode")),
		Name:     query.Get("name"),
	}
	if tagIDs := query.Get("tag_ids"); tagIDs != "" {
		filter.TagIDs = strings.Split(tagIDs, ",")
	}

	apps, err := h.services.AppService.List(r.Context(), account, filter)
	if err != nil {
		writeError(w, r, err, "error listing apps")
		return
	}

	utils.WriteJSON(w, apps, http.StatusOK)
}

func (h *Handler) getApp(w http.ResponseWriter, r *http.Request) {
	account, ok := accountFromRequest(w, r)
	if !ok {
		return
	}

	app, err := h.services.AppService.Get(r.Context(), account, chi.URLParam(r, "appID"))
	if err != nil {
		writeError(w, r, err, "error getting app")
		return
	}

	utils.WriteJSON(w, app, http.StatusOK)
}

func (h *Handler) createApp(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	account, ok := accountFromRequest(w, r)
	if !ok {
		return
	}

	var req models.CreateAppRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	app, err := h.services.AppService.Create(r.Context(), account, req)
	if err != nil {
		writeError(w, r, err, "error creating app")
		return
	}

	utils.WriteJSON(w, app, http.StatusCreated)
}

func (h *Handler) updateApp(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	account, ok := accountFromRequest(w, r)
	if !ok {
		return
	}

	var req models.UpdateAppRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	app, err := h.services.AppService.Update(r.Context(), account, chi.URLParam(r, "appID"), req)
	if err != nil {
		writeError(w, r, err, "error updating app")
		return
	}

	utils.WriteJSON(w, app, http.StatusOK)
}

func (h *Handler) deleteApp(w http.ResponseWriter, r *http.Request) {
	account, ok := accountFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.AppService.Delete(r.Context(), account, chi.URLParam(r, "appID")); err != nil {
		writeError(w, r, err, "error deleting app")
		return
	}

	utils.WriteJSON(w, models.ResultResponse{Result: "success"}, http.StatusOK)
}

func (h *Handler) updateAppStatus(w http.ResponseWriter, r *http.Request) {
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

	app, err := h.services.AppService.UpdateStatus(r.Context(), account, chi.URLParam(r, "appID"), req.Status)
	if err != nil {
		writeError(w, r, err, "error updating app status")
		return
	}

	utils.WriteJSON(w, app, http.StatusOK)
}

func (h *Handler) updateAppHidden(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	account, ok := accountFromRequest(w, r)
	if !ok {
		return
	}

	var req models.HiddenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	app, err := h.services.AppService.UpdateHidden(r.Context(), account, chi.URLParam(r, "appID"), req.IsHidden)
	if err != nil {
		writeError(w, r, err, "error updating app visibility")
		return
	}

	utils.WriteJSON(w, app, http.StatusOK)
}

func (h *Handler) updateAppName(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	account, ok := accountFromRequest(w, r)
	if !ok {
		return
	}

	var req models.NameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	app, err := h.services.AppService.UpdateName(r.Context(), account, chi.URLParam(r, "appID"), req.Name)
	if err != nil {
		writeError(w, r, err, "error renaming app")
		return
	}

	utils.WriteJSON(w, app, http.StatusOK)
}

func (h *Handler) updateAppIcon(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	account, ok := accountFromRequest(w, r)
	if !ok {
		return
	}

	var req models.IconRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	app, err := h.services.AppService.UpdateIcon(r.Context(), account, chi.URLParam(r, "appID"), req.Icon, req.IconBackground)
	if err != nil {
		writeError(w, r, err, "error updating app icon")
		return
	}

	utils.WriteJSON(w, app, http.StatusOK)
}

func (h *Handler) updateAppSiteStatus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	account, ok := accountFromRequest(w, r)
	if !ok {
		return
	}

	var req models.SiteStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	app, err := h.services.AppService.UpdateSiteStatus(r.Context(), account, chi.URLParam(r, "appID"), req.EnableSite)
	if err != nil {
		writeError(w, r, err, "error toggling app site")
		return
	}

	utils.WriteJSON(w, app, http.StatusOK)
}

func (h *Handler) updateAppAPIStatus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	account, ok := accountFromRequest(w, r)
	if !ok {
		return
	}

	var req models.APIStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	app, err := h.services.AppService.UpdateAPIStatus(r.Context(), account, chi.URLParam(r, "appID"), req.EnableAPI)
	if err != nil {
		writeError(w, r, err, "error toggling app api")
		return
	}

	utils.WriteJSON(w, app, http.StatusOK)
}

func (h *Handler) setDefaultApp(w http.ResponseWriter, r *http.Request) {
	account, ok := accountFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.AppService.SetDefaultApp(r.Context(), account, chi.URLParam(r, "appID")); err != nil {
		writeError(w, r, err, "error pinning default app")
		return
	}

	utils.WriteJSON(w, models.ResultResponse{Result: "success"}, http.StatusOK)
}

func (h *Handler) getDefaultApp(w http.ResponseWriter, r *http.Request) {
	account, ok := accountFromRequest(w, r)
	if !ok {
		return
	}

	setting, err := h.services.AppService.GetDefaultApp(r.Context(), account)
	if err != nil {
		writeError(w, r, err, "error getting default app")
		return
	}

	utils.WriteJSON(w, setting, http.StatusOK)
}
