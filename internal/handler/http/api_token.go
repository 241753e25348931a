package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/appforge/console-server/internal/utils"
	"github.com/appforge/console-server/models"
)

func (h *Handler) listAPIKeys(w http.ResponseWriter, r *http.Request) {
	account, ok := accountFromRequest(w, r)
	if !ok {
		return
	}

	tokens, err := h.services.APITokenService.List(r.Context(), account, chi.URLParam(r, "appID"))
	if err != nil {
		writeError(w, r, err, "error listing api keys")
		return
	}

	utils.WriteJSON(w, models.ListResponse[models.APIToken]{Data: tokens}, http.StatusOK)
}

func (h *Handler) createAPIKey(w http.ResponseWriter, r *http.Request) {
	account, ok := accountFromRequest(w, r)
	if !ok {
		return
	}

	token, err := h.services.APITokenService.Create(r.Context(), account, chi.URLParam(r, "appID"))
	if err != nil {
		writeError(w, r, err, "error creating api key")
		return
	}

	utils.WriteJSON(w, token, http.StatusCreated)
}

func (h *Handler) deleteAPIKey(w http.ResponseWriter, r *http.Request) {
	account, ok := accountFromRequest(w, r)
	if !ok {
		return
	}

	err := h.services.APITokenService.Delete(r.Context(), account, chi.URLParam(r, "appID"), chi.URLParam(r, "keyID"))
	if err != nil {
		writeError(w, r, err, "error deleting api key")
		return
	}

	utils.WriteJSON(w, models.ResultResponse{Result: "success"}, http.StatusOK)
}
