package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dan9191/finance-service/internal/config"
	"github.com/Dan9191/finance-service/internal/middleware"
	"github.com/Dan9191/finance-service/internal/models"
	"github.com/Dan9191/finance-service/internal/repository"
	"github.com/Dan9191/finance-service/internal/service"
	mock_service "github.com/Dan9191/finance-service/internal/service/mocks"
)

const testUser int64 = 1

type stubKeyRate struct {
	rate float64
	err  error
}

func (s stubKeyRate) GetKeyRate(context.Context) (float64, error) { return s.rate, s.err }

// asUser stands in for the JWT middleware.
func asUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(middleware.WithUserID(r.Context(), testUser)))
	})
}

func newRouter(t *testing.T, keyRate KeyRateProvider) (*mux.Router, *mock_service.MockStore) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	log := logrus.New()
	log.SetOutput(io.Discard)

	store := mock_service.NewMockStore(ctrl)
	svc := service.NewService(store, log, &config.Config{JWTSecret: "x", TokenTTL: time.Hour})
	h := NewHandler(svc, keyRate, log)
	h.now = func() time.Time { return time.Date(2025, 12, 22, 0, 0, 0, 0, time.UTC) }

	r := mux.NewRouter()
	h.Routes(r, asUser)
	return r, store
}

func do(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(method, target, reader))
	return rr
}

func expectRows(store *mock_service.MockStore) {
	store.EXPECT().FindTransactions(gomock.Any(), models.SourceAlfa, testUser).Return([]models.RawRecord{
		{"id": int64(1), "operationDate": "2025-12-01", "category": "Продукты", "currencyAmount": "-5000"},
	}, nil)
	store.EXPECT().FindTransactions(gomock.Any(), models.SourceTinkoff, testUser).Return(nil, nil)
	store.EXPECT().ListCategories(gomock.Any(), testUser).Return(nil, nil)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("x: %w", service.ErrInvalidInput), http.StatusBadRequest},
		{service.ErrInvalidCredentials, http.StatusUnauthorized},
		{service.ErrForbidden, http.StatusForbidden},
		{service.ErrNotFound, http.StatusNotFound},
		{service.ErrAlreadyExists, http.StatusConflict},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFor(tt.err), tt.err.Error())
	}
}

func TestForecastEndpoint(t *testing.T) {
	r, store := newRouter(t, nil)
	expectRows(store)

	rr := do(r, http.MethodGet, "/analytics/forecast", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, 5000.0, got["forecastAmount"])
	assert.Equal(t, "низкая", got["confidence"])
	assert.Equal(t, 1.0, got["periodsAnalyzed"])
}

func TestForecastEndpoint_AsOfMovesWindow(t *testing.T) {
	r, store := newRouter(t, nil)
	expectRows(store)

	rr := do(r, http.MethodGet, "/analytics/forecast?asOf=2026-09-01", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"periodsAnalyzed":0`)
}

func TestForecastEndpoint_BadAsOf(t *testing.T) {
	r, _ := newRouter(t, nil)
	rr := do(r, http.MethodGet, "/analytics/habits?asOf=22.12.2025", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCashFlowEndpoint_UnsupportedPeriod(t *testing.T) {
	r, _ := newRouter(t, nil)
	rr := do(r, http.MethodGet, "/analytics/cash-flow?period=week", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "unsupported period")
}

func TestExpenseEndpoint(t *testing.T) {
	r, store := newRouter(t, nil)
	expectRows(store)

	rr := do(r, http.MethodGet, "/analytics/categories/expense", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var got models.ExpenseDistribution
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, models.StatusSuccess, got.Status)
	require.Len(t, got.Data, 1)
	assert.Equal(t, models.CategoryShare{Category: "Продукты", Amount: 5000, Percent: 100}, got.Data[0])
}

func TestListTransactions_UnknownSlug(t *testing.T) {
	r, _ := newRouter(t, nil)
	rr := do(r, http.MethodGet, "/transactions?slugs=sber", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLastTransactions_BadLimit(t *testing.T) {
	r, _ := newRouter(t, nil)
	rr := do(r, http.MethodGet, "/analytics/last-transactions?limit=-3", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateTransaction(t *testing.T) {
	r, store := newRouter(t, nil)
	store.EXPECT().CreateTransaction(gomock.Any(), models.SourceTinkoff, testUser, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ int64, m models.ManualTransaction) (int64, error) {
			assert.Equal(t, "2025-12-01", m.OperationDate.String())
			assert.Equal(t, -300.0, m.CurrencyAmount)
			return 77, nil
		})

	rr := do(r, http.MethodPost, "/transactions/tinkoff",
		`{"operationDate":"2025-12-01","description":"кофе","currencyAmount":-300}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"id":77}`, rr.Body.String())

	rr = do(r, http.MethodPost, "/transactions/tinkoff", `{"description":`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGoalSummaryEndpoint(t *testing.T) {
	r, store := newRouter(t, nil)
	store.EXPECT().IsGoalOwner(gomock.Any(), int64(4), testUser).Return(false, nil)

	rr := do(r, http.MethodGet, "/goals/4/summary?abs=true", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = do(r, http.MethodGet, "/goals/abc/summary", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(r, http.MethodGet, "/goals/4/summary?abs=maybe", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateGoalEndpoint_UnknownOperation(t *testing.T) {
	r, _ := newRouter(t, nil)
	rr := do(r, http.MethodPost, "/goals", `{"goalName":"Машина","rules":[{"goalOperation":"~","goalRule":"100"}]}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDeleteCategory_NotOwned(t *testing.T) {
	r, store := newRouter(t, nil)
	store.EXPECT().DeleteCategory(gomock.Any(), testUser, int64(3)).
		Return(fmt.Errorf("category 3: %w", repository.ErrNotFound))

	rr := do(r, http.MethodDelete, "/categories/3", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRegisterConflict(t *testing.T) {
	r, store := newRouter(t, nil)
	store.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(repository.ErrDuplicate)

	rr := do(r, http.MethodPost, "/register", `{"username":"anna","password":"pw"}`)
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestKeyRateEndpoint(t *testing.T) {
	r, _ := newRouter(t, stubKeyRate{rate: 16.5})
	rr := do(r, http.MethodGet, "/key-rate", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"key_rate":16.5}`, rr.Body.String())

	r, _ = newRouter(t, stubKeyRate{err: errors.New("timeout")})
	rr = do(r, http.MethodGet, "/key-rate", "")
	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

func TestInternalErrorsAreNotLeaked(t *testing.T) {
	r, store := newRouter(t, nil)
	store.EXPECT().ListFriends(gomock.Any(), testUser).Return(nil, errors.New("pq: password authentication failed"))

	rr := do(r, http.MethodGet, "/friends", "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "password")
}
