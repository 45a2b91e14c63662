package handler

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Routes registers every endpoint. Everything except registration, login and
// the key rate requires auth.
func (h *Handler) Routes(r *mux.Router, auth mux.MiddlewareFunc) {
	r.HandleFunc("/register", h.Register).Methods(http.MethodPost)
	r.HandleFunc("/login", h.Login).Methods(http.MethodPost)
	r.HandleFunc("/key-rate", h.KeyRate).Methods(http.MethodGet)

	a := r.PathPrefix("/").Subrouter()
	a.Use(auth)

	a.HandleFunc("/me", h.Me).Methods(http.MethodGet)
	a.HandleFunc("/friends", h.ListFriends).Methods(http.MethodGet)
	a.HandleFunc("/friends", h.AddFriend).Methods(http.MethodPost)
	a.HandleFunc("/friends/{friendID}", h.DeleteFriend).Methods(http.MethodDelete)

	a.HandleFunc("/transactions", h.ListTransactions).Methods(http.MethodGet)
	a.HandleFunc("/transactions/{slug}", h.CreateTransaction).Methods(http.MethodPost)

	a.HandleFunc("/categories", h.ListCategories).Methods(http.MethodGet)
	a.HandleFunc("/categories", h.CreateCategory).Methods(http.MethodPost)
	a.HandleFunc("/categories/{categoryID}", h.UpdateCategory).Methods(http.MethodPatch)
	a.HandleFunc("/categories/{categoryID}", h.DeleteCategory).Methods(http.MethodDelete)

	a.HandleFunc("/goals", h.ListGoals).Methods(http.MethodGet)
	a.HandleFunc("/goals", h.CreateGoal).Methods(http.MethodPost)
	a.HandleFunc("/goals/{goalID}", h.RenameGoal).Methods(http.MethodPatch)
	a.HandleFunc("/goals/{goalID}", h.DeleteGoal).Methods(http.MethodDelete)
	a.HandleFunc("/goals/{goalID}/rules", h.AddGoalRule).Methods(http.MethodPost)
	a.HandleFunc("/goals/{goalID}/rules/{ruleID}", h.DeleteGoalRule).Methods(http.MethodDelete)
	a.HandleFunc("/goals/{goalID}/transactions", h.LinkTransaction).Methods(http.MethodPost)
	a.HandleFunc("/goals/{goalID}/transactions/{slug}/{transactionID}", h.UnlinkTransaction).Methods(http.MethodDelete)
	a.HandleFunc("/goals/{goalID}/summary", h.GoalSummary).Methods(http.MethodGet)

	an := a.PathPrefix("/analytics").Subrouter()
	an.HandleFunc("/balance", h.Balance).Methods(http.MethodGet)
	an.HandleFunc("/cash-flow", h.CashFlow).Methods(http.MethodGet)
	an.HandleFunc("/categories/expense", h.ExpenseDistribution).Methods(http.MethodGet)
	an.HandleFunc("/categories/income", h.IncomeDistribution).Methods(http.MethodGet)
	an.HandleFunc("/anomaly", h.Anomaly).Methods(http.MethodGet)
	an.HandleFunc("/habits", h.Habits).Methods(http.MethodGet)
	an.HandleFunc("/profile", h.Profile).Methods(http.MethodGet)
	an.HandleFunc("/score", h.Score).Methods(http.MethodGet)
	an.HandleFunc("/forecast", h.Forecast).Methods(http.MethodGet)
	an.HandleFunc("/forecast/categories", h.CategoryForecast).Methods(http.MethodGet)
	an.HandleFunc("/last-transactions", h.LastTransactions).Methods(http.MethodGet)
}
