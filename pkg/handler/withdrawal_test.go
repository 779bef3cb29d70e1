package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reward_wallet_back/internal/withdrawal"
	"reward_wallet_back/models"
	"reward_wallet_back/pkg/service"
)

type stubAuth struct {
	user models.User
}

func (s stubAuth) GetUserByTelegramId(int64) (models.User, error) { return s.user, nil }
func (s stubAuth) CreateUser(models.User) (int64, error)          { return s.user.ID, nil }

type stubWithdrawals struct {
	submitted  models.Withdrawal
	listed     []models.Withdrawal
	cancelled  service.CancelResult
	err        error
	lastActor  models.Actor
	lastSubmit models.SubmitWithdrawalInput
}

func (s *stubWithdrawals) Submit(actor models.Actor, input models.SubmitWithdrawalInput) (models.Withdrawal, error) {
	s.lastActor, s.lastSubmit = actor, input
	return s.submitted, s.err
}

func (s *stubWithdrawals) List(actor models.Actor) ([]models.Withdrawal, error) {
	s.lastActor = actor
	return s.listed, s.err
}

func (s *stubWithdrawals) Decide(actor models.Actor, input models.DecideWithdrawalInput) (models.Withdrawal, error) {
	s.lastActor = actor
	return s.submitted, s.err
}

func (s *stubWithdrawals) Cancel(actor models.Actor, input models.CancelWithdrawalInput) (service.CancelResult, error) {
	s.lastActor = actor
	return s.cancelled, s.err
}

func newTestRouter(user models.User, wd *stubWithdrawals) *gin.Engine {
	gin.SetMode(gin.TestMode)
	viper.Set("cors.origins", []string{"http://localhost"})
	h := NewHandler(&service.Service{
		Authorization: stubAuth{user: user},
		Withdrawals:   wd,
	})
	return h.InitRoute()
}

func doJSON(router *gin.Engine, method, path, body string, telegramID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if telegramID != "" {
		req.Header.Set("X-Telegram-ID", telegramID)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSubmitWithdrawalRequiresIdentity(t *testing.T) {
	router := newTestRouter(models.User{}, &stubWithdrawals{})

	w := doJSON(router, http.MethodPost, "/api/withdrawals", `{"amount":100,"method":"bkash","recipient":"01712345678"}`, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSubmitWithdrawalOK(t *testing.T) {
	wd := &stubWithdrawals{
		submitted: models.Withdrawal{
			ID:     7,
			Amount: decimal.NewFromInt(100),
			Fee:    decimal.NewFromInt(1),
			Status: withdrawal.StatusPending,
		},
	}
	router := newTestRouter(models.User{ID: 1, TelegramID: 111}, wd)

	w := doJSON(router, http.MethodPost, "/api/withdrawals", `{"amount":100,"method":"bkash","recipient":"01712345678"}`, "111")

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(7), resp["requestId"])
	assert.Equal(t, withdrawal.StatusPending, resp["status"])
	assert.Equal(t, int64(111), wd.lastActor.TelegramID)
	assert.True(t, wd.lastSubmit.Amount.Equal(decimal.NewFromInt(100)))
}

func TestSubmitWithdrawalMissingFields(t *testing.T) {
	router := newTestRouter(models.User{ID: 1, TelegramID: 111}, &stubWithdrawals{})

	w := doJSON(router, http.MethodPost, "/api/withdrawals", `{"amount":100}`, "111")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestErrorKindMapping(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{withdrawal.ErrAmountOutOfRange, http.StatusBadRequest},
		{withdrawal.ErrInsufficientBalance, http.StatusBadRequest},
		{withdrawal.ErrInvalidRecipient, http.StatusBadRequest},
		{withdrawal.ErrUnsupportedMethod, http.StatusBadRequest},
		{withdrawal.ErrInvalidStateTransition, http.StatusBadRequest},
		{withdrawal.ErrUnauthorized, http.StatusUnauthorized},
		{withdrawal.ErrNotFound, http.StatusNotFound},
		{withdrawal.ErrLedgerUnavailable, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		router := newTestRouter(models.User{ID: 1, TelegramID: 111}, &stubWithdrawals{err: tt.err})
		w := doJSON(router, http.MethodPost, "/api/withdrawals", `{"amount":100,"method":"bkash","recipient":"01712345678"}`, "111")
		assert.Equal(t, tt.code, w.Code, "error %v", tt.err)
	}
}

func TestDecideWithdrawalRejectsBadStatusValue(t *testing.T) {
	router := newTestRouter(models.User{ID: 2, TelegramID: 222, IsAdmin: true}, &stubWithdrawals{})

	w := doJSON(router, http.MethodPut, "/api/withdrawals", `{"withdrawalId":7,"status":"paid"}`, "222")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCancelWithdrawalReportsRefund(t *testing.T) {
	wd := &stubWithdrawals{
		cancelled: service.CancelResult{
			RefundedAmount:    decimal.NewFromInt(100),
			RefundedAmountBDT: decimal.NewFromInt(11000),
		},
	}
	router := newTestRouter(models.User{ID: 1, TelegramID: 111}, wd)

	w := doJSON(router, http.MethodDelete, "/api/withdrawals", `{"id":7}`, "111")

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "100", resp["refundedAmount"])
	assert.Equal(t, "11000", resp["refundedAmountBDT"])
}

func TestListWithdrawals(t *testing.T) {
	wd := &stubWithdrawals{
		listed: []models.Withdrawal{{ID: 2}, {ID: 1}},
	}
	router := newTestRouter(models.User{ID: 1, TelegramID: 111}, wd)

	w := doJSON(router, http.MethodGet, "/api/withdrawals", "", "111")

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Withdrawals []models.Withdrawal `json:"withdrawals"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Withdrawals, 2)
	assert.Equal(t, int64(1), wd.lastActor.UserID)
}
