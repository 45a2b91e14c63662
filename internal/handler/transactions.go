package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Dan9191/finance-service/internal/models"
	"github.com/Dan9191/finance-service/internal/service"
)

// ListTransactions returns categorized transactions of ?slugs=a,b (all when empty).
func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	slugs, err := service.ParseSlugs(r.URL.Query().Get("slugs"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	res, err := h.svc.Transactions(r.Context(), userID, slugs)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

// CreateTransaction stores a manual transaction in the source named by the path.
func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	var req models.ManualTransaction
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	id, err := h.svc.CreateTransaction(r.Context(), userID, mux.Vars(r)["slug"], req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}
