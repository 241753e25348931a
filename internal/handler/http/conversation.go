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

// listConversations answers one keyset page of the app's conversations.
// Clients scroll by passing the id of the last conversation they have seen.
func (h *Handler) listConversations(w http.ResponseWriter, r *http.Request) {
	account, ok := accountFromRequest(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	limit, _ := strconv.Atoi(query.Get("limit"))

	page, err := h.services.ConversationService.List(r.Context(), account,
		chi.URLParam(r, "appID"), query.Get("last_id"), query.Get("sort_by"), limit)
	if err != nil {
		writeError(w, r, err, "error listing conversations")
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) renameConversation(w http.ResponseWriter, r *http.Request) {
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

	conv, err := h.services.ConversationService.Rename(r.Context(), account,
		chi.URLParam(r, "appID"), chi.URLParam(r, "conversationID"), req.Name)
	if err != nil {
		writeError(w, r, err, "error renaming conversation")
		return
	}

	utils.WriteJSON(w, conv, http.StatusOK)
}

func (h *Handler) deleteConversation(w http.ResponseWriter, r *http.Request) {
	account, ok := accountFromRequest(w, r)
	if !ok {
		return
	}

	err := h.services.ConversationService.Delete(r.Context(), account,
		chi.URLParam(r, "appID"), chi.URLParam(r, "conversationID"))
	if err != nil {
		writeError(w, r, err, "error deleting conversation")
		return
	}

	utils.WriteJSON(w, models.ResultResponse{Result: "success"}, http.StatusOK)
}

// bulkDeleteConversations removes every listed conversation that exists.
// Missing ids are reported in the response but never fail the request.
func (h *Handler) bulkDeleteConversations(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	account, ok := accountFromRequest(w, r)
	if !ok {
		return
	}

	var req models.BulkDeleteConversationsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	missing, err := h.services.ConversationService.BulkDelete(r.Context(), account,
		chi.URLParam(r, "appID"), req.ConversationIDs)
	if err != nil {
		writeError(w, r, err, "error bulk deleting conversations")
		return
	}

	utils.WriteJSON(w, struct {
		Result  string   `json:"result"`
		Missing []string `json:"missing_ids,omitempty"`
	}{Result: "success", Missing: missing}, http.StatusOK)
}
