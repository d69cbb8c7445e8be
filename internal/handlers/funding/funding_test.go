package funding

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/tukarid/tukarbot/internal/config"
	"github.com/tukarid/tukarbot/internal/conversation"
	"github.com/tukarid/tukarbot/internal/domain"
	"github.com/tukarid/tukarbot/internal/dto"
	"github.com/tukarid/tukarbot/internal/gate"
	"github.com/tukarid/tukarbot/internal/ledger"
	fundingservice "github.com/tukarid/tukarbot/internal/service/fundingservice"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*FundingHandler, *MockFundingService, *MockLedger, *MockGate) {
	ctrl := gomock.NewController(t)
	service := NewMockFundingService(ctrl)
	l := NewMockLedger(ctrl)
	g := NewMockGate(ctrl)
	handler := New(&config.Config{MinTopUpRp: 15000, MinWithdrawRp: 15000}, service, l, g, conversation.NewManager())
	t.Cleanup(ctrl.Finish)
	return handler, service, l, g
}

func userRequest(method, target, body string) *http.Request {
	r := httptest.NewRequest(method, target, bytes.NewBufferString(body))

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("userID", "user-1")
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestBalanceHandler(t *testing.T) {
	handler, _, l, _ := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.BalanceResponseDTO
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				l.EXPECT().
					Account(gomock.Any(), "user-1").
					Return(domain.Account{Balance: 50000, Wallet: "0xabc"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.BalanceResponseDTO{BalanceRp: 50000, Wallet: "0xabc"},
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				l.EXPECT().
					Account(gomock.Any(), "user-1").
					Return(domain.Account{}, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			w := httptest.NewRecorder()
			handler.Balance(w, userRequest(http.MethodGet, "/balance", ""))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.BalanceResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestTopUpFlow(t *testing.T) {
	handler, service, _, g := NewMock(t)

	g.EXPECT().Allow(gomock.Any(), "").Return(nil)
	service.EXPECT().
		SubmitTopUp(gomock.Any(), "user-1", int64(20000), "DANA", "Budi", "receipt-1").
		Return(&domain.TopUpRequest{ID: "req-1", AmountRp: 20000, Status: domain.StatusPending}, nil)

	steps := []struct {
		name string
		call func(w http.ResponseWriter, r *http.Request)
		url  string
		body string
	}{
		{"start", handler.StartTopUp, "/topup/start", ""},
		{"amount", handler.TopUpAmount, "/topup/amount", `{"amount_rp":20000}`},
		{"method", handler.TopUpMethod, "/topup/method", `{"value":"DANA"}`},
		{"name", handler.TopUpName, "/topup/name", `{"value":"Budi"}`},
		{"proof", handler.TopUpProof, "/topup/proof", `{"value":"receipt-1"}`},
	}

	for _, s := range steps {
		w := httptest.NewRecorder()
		s.call(w, userRequest(http.MethodPost, s.url, s.body))
		assert.Equal(t, http.StatusOK, w.Code, s.name)

		if s.name == "method" {
			var body dto.TopUpMethodResponseDTO
			_ = json.NewDecoder(w.Body).Decode(&body)
			assert.Equal(t, config.PaymentMethods["DANA"], body.Instruction)
		}
		if s.name == "proof" {
			var body dto.FundingRequestResponseDTO
			_ = json.NewDecoder(w.Body).Decode(&body)
			assert.Equal(t, "req-1", body.ID)
			assert.Equal(t, string(domain.StatusPending), body.Status)
		}
	}
}

func TestTopUpAmountBelowMinimum(t *testing.T) {
	handler, _, _, g := NewMock(t)

	g.EXPECT().Allow(gomock.Any(), "").Return(nil)

	w := httptest.NewRecorder()
	handler.StartTopUp(w, userRequest(http.MethodPost, "/topup/start", ""))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	handler.TopUpAmount(w, userRequest(http.MethodPost, "/topup/amount", `{"amount_rp":14999}`))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestTopUpOutOfOrderIsIgnored(t *testing.T) {
	handler, _, _, _ := NewMock(t)

	// No flow was started; the input is dropped silently. The absent
	// SubmitTopUp expectation proves nothing was filed.
	w := httptest.NewRecorder()
	handler.TopUpProof(w, userRequest(http.MethodPost, "/topup/proof", `{"value":"receipt-1"}`))

	assert.Equal(t, http.StatusOK, w.Code)
	var body dto.FlowStepResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.True(t, body.Ignored)
}

func TestStartTopUpDuringMaintenance(t *testing.T) {
	handler, _, _, g := NewMock(t)

	start := time.Date(2026, 9, 1, 2, 0, 0, 0, time.UTC)
	g.EXPECT().Allow(gomock.Any(), "").Return(&gate.MaintenanceError{
		Window: domain.MaintenanceWindow{Start: start, End: start.Add(2 * time.Hour), Reason: "db upgrade"},
	})

	w := httptest.NewRecorder()
	handler.StartTopUp(w, userRequest(http.MethodPost, "/topup/start", ""))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var body dto.MaintenanceNoticeDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Equal(t, "db upgrade", body.Reason)
}

func TestWithdrawFlow(t *testing.T) {
	handler, service, _, g := NewMock(t)

	g.EXPECT().Allow(gomock.Any(), "").Return(nil)
	service.EXPECT().
		SubmitWithdraw(gomock.Any(), "user-1", int64(30000), "BCA", "1234567890", "Budi").
		Return(&domain.WithdrawRequest{ID: "req-2", AmountRp: 30000, Status: domain.StatusPending}, nil)

	w := httptest.NewRecorder()
	handler.StartWithdraw(w, userRequest(http.MethodPost, "/withdraw/start", ""))
	assert.Equal(t, http.StatusOK, w.Code)
	var startBody dto.WithdrawStartResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&startBody)
	assert.Equal(t, config.WithdrawMethods, startBody.Methods)

	steps := []struct {
		name string
		call func(w http.ResponseWriter, r *http.Request)
		url  string
		body string
	}{
		{"method", handler.WithdrawMethod, "/withdraw/method", `{"value":"BCA"}`},
		{"target", handler.WithdrawTarget, "/withdraw/target", `{"value":"1234567890"}`},
		{"name", handler.WithdrawName, "/withdraw/name", `{"value":"Budi"}`},
		{"amount", handler.WithdrawAmount, "/withdraw/amount", `{"amount_rp":30000}`},
	}
	for _, s := range steps {
		w := httptest.NewRecorder()
		s.call(w, userRequest(http.MethodPost, s.url, s.body))
		assert.Equal(t, http.StatusOK, w.Code, s.name)
	}
}

func TestWithdrawAmountErrors(t *testing.T) {
	tests := []struct {
		name         string
		serviceErr   error
		expectedCode int
	}{
		{name: "Insufficient balance", serviceErr: ledger.ErrInsufficientFunds, expectedCode: http.StatusPaymentRequired},
		{name: "Below minimum", serviceErr: fundingservice.ErrBelowMinimum, expectedCode: http.StatusUnprocessableEntity},
		{name: "Internal server error", serviceErr: errors.New("error"), expectedCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service, _, g := NewMock(t)

			g.EXPECT().Allow(gomock.Any(), "").Return(nil)
			service.EXPECT().
				SubmitWithdraw(gomock.Any(), "user-1", int64(30000), "BCA", "1234567890", "Budi").
				Return(nil, tt.serviceErr)

			for _, s := range []struct {
				call func(w http.ResponseWriter, r *http.Request)
				body string
			}{
				{handler.StartWithdraw, ""},
				{handler.WithdrawMethod, `{"value":"BCA"}`},
				{handler.WithdrawTarget, `{"value":"1234567890"}`},
				{handler.WithdrawName, `{"value":"Budi"}`},
			} {
				w := httptest.NewRecorder()
				s.call(w, userRequest(http.MethodPost, "/withdraw", s.body))
				assert.Equal(t, http.StatusOK, w.Code)
			}

			w := httptest.NewRecorder()
			handler.WithdrawAmount(w, userRequest(http.MethodPost, "/withdraw/amount", `{"amount_rp":30000}`))
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
