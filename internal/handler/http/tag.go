package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/appforge/console-server/internal/logger"
	"github.com/appforge/console-server/internal/utils"
	"github.com/appforge/console-server/models"
)

func (h *Handler) listTags(w http.ResponseWriter, r *http.Request) {
	account, ok := accountFromRequest(w, r)
	if !ok {
		return
	}

	tags, err := h.services.TagService.List(r.Context(), account, r.URL.Query().Get("type"), r.URL.Query().Get("keyword"))
	if err != nil {
		writeError(w, r, err, "error listing tags")
		return
	}

	utils.WriteJSON(w, models.ListResponse[models.TagWithBindingCount]{Data: tags}, http.StatusOK)
}

func (h *Handler) createTag(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	account, ok := accountFromRequest(w, r)
	if !ok {
		return
	}

	var req models.CreateTagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	tag, err := h.services.TagService.Create(r.Context(), account, req)
	if err != nil {
		writeError(w, r, err, "error creating tag")
		return
	}

	utils.WriteJSON(w, tag, http.StatusCreated)
}

func (h *Handler) renameTag(w http.ResponseWriter, r *http.Request) {
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

	tag, err := h.services.TagService.Rename(r.Context(), account, chi.URLParam(r, "tagID"), req.Name)
	if err != nil {
		writeError(w, r, err, "error renaming tag")
		return
	}

	utils.WriteJSON(w, tag, http.StatusOK)
}

func (h *Handler) deleteTag(w http.ResponseWriter, r *http.Request) {
	account, ok := accountFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.TagService.Delete(r.Context(), account, chi.URLParam(r, "tagID")); err != nil {
		writeError(w, r, err, "error deleting tag")
		return
	}

	utils.WriteJSON(w, models.ResultResponse{Result: "success"}, http.StatusOK)
}

func (h *Handler) saveTagBindings(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	account, ok := accountFromRequest(w, r)
	if !ok {
		return
	}

	var req models.SaveTagBindingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.TagService.SaveBindings(r.Context(), account, req); err != nil {
		writeError(w, r, err, "error saving tag bindings")
		return
	}

	utils.WriteJSON(w, models.ResultResponse{Result: "success"}, http.StatusOK)
}

func (h *Handler) removeTagBinding(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	account, ok := accountFromRequest(w, r)
	if !ok {
		return
	}

	var req models.RemoveTagBindingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.TagService.RemoveBinding(r.Context(), account, req); err != nil {
		writeError(w, r, err, "error removing tag binding")
		return
	}

	utils.WriteJSON(w, models.ResultResponse{Result: "success"}, http.StatusOK)
}
