package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Dan9191/finance-service/internal/models"
	"github.com/Dan9191/finance-service/internal/service"
)

// goalRequest resolves the caller and the {goalID} path variable.
func (h *Handler) goalRequest(w http.ResponseWriter, r *http.Request) (userID, goalID int64, ok bool) {
	userID, err := currentUser(r)
	if err == nil {
		goalID, err = pathID(r, "goalID")
	}
	if err != nil {
		h.writeError(w, err)
		return 0, 0, false
	}
	return userID, goalID, true
}

func (h *Handler) ListGoals(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	list, err := h.svc.Goals(r.Context(), userID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, list)
}

func (h *Handler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	var req service.NewGoal
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	goal, err := h.svc.CreateGoal(r.Context(), userID, req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, goal)
}

func (h *Handler) RenameGoal(w http.ResponseWriter, r *http.Request) {
	userID, goalID, ok := h.goalRequest(w, r)
	if !ok {
		return
	}
	var req struct {
		GoalName string `json:"goalName"`
	}
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	if err := h.svc.RenameGoal(r.Context(), userID, goalID, req.GoalName); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	userID, goalID, ok := h.goalRequest(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteGoal(r.Context(), userID, goalID); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AddGoalRule(w http.ResponseWriter, r *http.Request) {
	userID, goalID, ok := h.goalRequest(w, r)
	if !ok {
		return
	}
	var req models.GoalRule
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	rule, err := h.svc.AddGoalRule(r.Context(), userID, goalID, req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, rule)
}

func (h *Handler) DeleteGoalRule(w http.ResponseWriter, r *http.Request) {
	userID, goalID, ok := h.goalRequest(w, r)
	if !ok {
		return
	}
	ruleID, err := pathID(r, "ruleID")
	if err != nil {
		h.writeError(w, err)
		return
	}
	if err := h.svc.DeleteGoalRule(r.Context(), userID, goalID, ruleID); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) LinkTransaction(w http.ResponseWriter, r *http.Request) {
	userID, goalID, ok := h.goalRequest(w, r)
	if !ok {
		return
	}
	var req struct {
		TransactionID     int64  `json:"transactionID"`
		TransactionSource string `json:"transactionSource"`
	}
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	if err := h.svc.LinkTransaction(r.Context(), userID, goalID, req.TransactionSource, req.TransactionID); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) UnlinkTransaction(w http.ResponseWriter, r *http.Request) {
	userID, goalID, ok := h.goalRequest(w, r)
	if !ok {
		return
	}
	transactionID, err := pathID(r, "transactionID")
	if err != nil {
		h.writeError(w, err)
		return
	}
	if err := h.svc.UnlinkTransaction(r.Context(), userID, goalID, mux.Vars(r)["slug"], transactionID); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GoalSummary evaluates a goal; ?abs=true sums absolute amounts.
func (h *Handler) GoalSummary(w http.ResponseWriter, r *http.Request) {
	userID, goalID, ok := h.goalRequest(w, r)
	if !ok {
		return
	}
	abs, err := queryBool(r, "abs")
	if err != nil {
		h.writeError(w, err)
		return
	}
	summary, err := h.svc.GoalSummary(r.Context(), userID, goalID, abs)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, summary)
}
