package handler

import (
	"net/http"

	"github.com/Dan9191/finance-service/internal/models"
)

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	entries, err := h.svc.Categories(r.Context(), userID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, entries)
}

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	var req models.CategoryDefinition
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	created, err := h.svc.CreateCategory(r.Context(), userID, req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	categoryID, err := pathID(r, "categoryID")
	if err != nil {
		h.writeError(w, err)
		return
	}
	var req models.CategoryUpdate
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	if err := h.svc.UpdateCategory(r.Context(), userID, categoryID, req); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	categoryID, err := pathID(r, "categoryID")
	if err != nil {
		h.writeError(w, err)
		return
	}
	if err := h.svc.DeleteCategory(r.Context(), userID, categoryID); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
