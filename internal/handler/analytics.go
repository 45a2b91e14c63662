package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/Dan9191/finance-service/internal/analytics"
)

// report runs a report builder for the authenticated user and writes its result.
func (h *Handler) report(w http.ResponseWriter, r *http.Request, build func(ctx context.Context, userID int64) (any, error)) {
	userID, err := currentUser(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	res, err := build(r.Context(), userID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

// windowed is report for builders that take a reference date.
func (h *Handler) windowed(w http.ResponseWriter, r *http.Request, build func(ctx context.Context, userID int64, asOf time.Time) (any, error)) {
	asOf, err := h.asOf(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.report(w, r, func(ctx context.Context, userID int64) (any, error) {
		return build(ctx, userID, asOf)
	})
}

func (h *Handler) Balance(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, func(ctx context.Context, userID int64) (any, error) {
		return h.svc.Balance(ctx, userID)
	})
}

// CashFlow groups by ?period=day|month|year, month by default.
func (h *Handler) CashFlow(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	if period == "" {
		period = string(analytics.PeriodMonth)
	}
	h.report(w, r, func(ctx context.Context, userID int64) (any, error) {
		return h.svc.CashFlow(ctx, userID, period)
	})
}

func (h *Handler) ExpenseDistribution(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, func(ctx context.Context, userID int64) (any, error) {
		return h.svc.ExpenseDistribution(ctx, userID)
	})
}

func (h *Handler) IncomeDistribution(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, func(ctx context.Context, userID int64) (any, error) {
		return h.svc.IncomeDistribution(ctx, userID)
	})
}

func (h *Handler) Anomaly(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, func(ctx context.Context, userID int64) (any, error) {
		return h.svc.Anomaly(ctx, userID)
	})
}

func (h *Handler) Habits(w http.ResponseWriter, r *http.Request) {
	h.windowed(w, r, func(ctx context.Context, userID int64, asOf time.Time) (any, error) {
		return h.svc.Habits(ctx, userID, asOf)
	})
}

func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, func(ctx context.Context, userID int64) (any, error) {
		return h.svc.Profile(ctx, userID)
	})
}

func (h *Handler) Score(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, func(ctx context.Context, userID int64) (any, error) {
		return h.svc.Score(ctx, userID)
	})
}

func (h *Handler) Forecast(w http.ResponseWriter, r *http.Request) {
	h.windowed(w, r, func(ctx context.Context, userID int64, asOf time.Time) (any, error) {
		return h.svc.Forecast(ctx, userID, asOf)
	})
}

func (h *Handler) CategoryForecast(w http.ResponseWriter, r *http.Request) {
	h.windowed(w, r, func(ctx context.Context, userID int64, asOf time.Time) (any, error) {
		return h.svc.CategoryForecast(ctx, userID, asOf)
	})
}

// LastTransactions returns ?limit= newest rows per source.
func (h *Handler) LastTransactions(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", analytics.DefaultRecentLimit)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.report(w, r, func(ctx context.Context, userID int64) (any, error) {
		return h.svc.LastTransactions(ctx, userID, limit)
	})
}
