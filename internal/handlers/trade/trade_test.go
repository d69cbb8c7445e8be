package trade

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/tukarid/tukarbot/internal/config"
	"github.com/tukarid/tukarbot/internal/conversation"
	"github.com/tukarid/tukarbot/internal/dto"
	"github.com/tukarid/tukarbot/internal/gate"
	"github.com/tukarid/tukarbot/internal/ledger"
	"github.com/tukarid/tukarbot/internal/rates"
	buyservice "github.com/tukarid/tukarbot/internal/service/buyservice"
	sellservice "github.com/tukarid/tukarbot/internal/service/sellservice"
	gomock "go.uber.org/mock/gomock"
)

const (
	testWallet  = "0x7193c21Ca1960b92FdCc92CFb918F337C7bd165e"
	testHotAddr = "0x52908400098527886E0F7030069857D2E4169EE7"
)

func NewMock(t *testing.T) (*TradeHandler, *MockBuyService, *MockSellService, *MockGate, *MockOracle, *conversation.Manager) {
	ctrl := gomock.NewController(t)
	buy := NewMockBuyService(ctrl)
	sell := NewMockSellService(ctrl)
	g := NewMockGate(ctrl)
	oracle := NewMockOracle(ctrl)
	conv := conversation.NewManager()
	handler := New(&config.Config{MinBuyRp: 15000}, buy, sell, g, oracle, conv, testHotAddr)
	t.Cleanup(ctrl.Finish)
	return handler, buy, sell, g, oracle, conv
}

func userRequest(method, target, body string) *http.Request {
	r := httptest.NewRequest(method, target, bytes.NewBufferString(body))

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("userID", "user-1")
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestStartBuyHandler(t *testing.T) {
	t.Run("Rates preview included", func(t *testing.T) {
		handler, _, _, g, oracle, _ := NewMock(t)
		g.EXPECT().Allow(gomock.Any(), gate.FeatureBuy).Return(nil)
		oracle.EXPECT().Rates(gomock.Any(), gomock.Any()).Return(map[string]float64{"USDT": 16000}, nil)

		w := httptest.NewRecorder()
		handler.StartBuy(w, userRequest(http.MethodPost, "/buy/start", ""))

		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.BuyStartResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Equal(t, string(conversation.StepBuyToken), body.Step)
		assert.Equal(t, 16000.0, body.RatesRp["USDT"])
	})

	t.Run("Oracle failure does not block the flow", func(t *testing.T) {
		handler, _, _, g, oracle, conv := NewMock(t)
		g.EXPECT().Allow(gomock.Any(), gate.FeatureBuy).Return(nil)
		oracle.EXPECT().Rates(gomock.Any(), gomock.Any()).Return(nil, rates.ErrRateUnavailable)

		w := httptest.NewRecorder()
		handler.StartBuy(w, userRequest(http.MethodPost, "/buy/start", ""))

		assert.Equal(t, http.StatusOK, w.Code)
		st, ok := conv.Peek("user-1")
		assert.True(t, ok)
		assert.Equal(t, conversation.StepBuyToken, st.Step)
	})

	t.Run("Feature disabled", func(t *testing.T) {
		handler, _, _, g, _, _ := NewMock(t)
		g.EXPECT().Allow(gomock.Any(), gate.FeatureBuy).Return(gate.ErrFeatureDisabled)

		w := httptest.NewRecorder()
		handler.StartBuy(w, userRequest(http.MethodPost, "/buy/start", ""))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestBuyFlow(t *testing.T) {
	handler, buy, _, g, oracle, _ := NewMock(t)

	g.EXPECT().Allow(gomock.Any(), gate.FeatureBuy).Return(nil)
	oracle.EXPECT().Rates(gomock.Any(), gomock.Any()).Return(nil, nil)
	buy.EXPECT().Quote(int64(50000)).Return(buyservice.Quote{AmountRp: 50000, FeeRp: 5000, NetRp: 45000}, nil)
	buy.EXPECT().
		Execute(gomock.Any(), "user-1", buyservice.Order{Token: "USDT", Network: "BEP20", AmountRp: 50000, Wallet: testWallet}).
		Return(&buyservice.Result{
			Quote:       buyservice.Quote{AmountRp: 50000, FeeRp: 5000, NetRp: 45000},
			Token:       "USDT",
			Network:     "BEP20",
			TokenAmount: 3,
			TxHash:      "0xsent",
			Balance:     50000,
		}, nil)

	steps := []struct {
		name string
		call func(w http.ResponseWriter, r *http.Request)
		url  string
		body string
	}{
		{"start", handler.StartBuy, "/buy/start", ""},
		{"token", handler.BuyToken, "/buy/token", `{"value":"USDT"}`},
		{"network", handler.BuyNetwork, "/buy/network", `{"value":"BEP20"}`},
		{"amount", handler.BuyAmount, "/buy/amount", `{"amount_rp":50000}`},
		{"wallet", handler.BuyWallet, "/buy/wallet", `{"value":"` + testWallet + `"}`},
		{"confirm", handler.BuyConfirm, "/buy/confirm", `{"confirm":true}`},
	}

	for _, s := range steps {
		w := httptest.NewRecorder()
		s.call(w, userRequest(http.MethodPost, s.url, s.body))
		assert.Equal(t, http.StatusOK, w.Code, s.name)

		if s.name == "confirm" {
			var body dto.BuyResultResponseDTO
			_ = json.NewDecoder(w.Body).Decode(&body)
			assert.Equal(t, "0xsent", body.TxHash)
			assert.Equal(t, 3.0, body.TokenAmount)
			assert.Equal(t, int64(50000), body.BalanceRp)
		}
	}
}

func TestBuyConfirmDeclineCancels(t *testing.T) {
	handler, _, _, _, _, conv := NewMock(t)

	conv.Begin("user-1", conversation.FlowBuy, conversation.StepBuyConfirm)

	w := httptest.NewRecorder()
	handler.BuyConfirm(w, userRequest(http.MethodPost, "/buy/confirm", `{"confirm":false}`))

	assert.Equal(t, http.StatusOK, w.Code)
	_, ok := conv.Peek("user-1")
	assert.False(t, ok)
}

func TestBuyTokenUnknown(t *testing.T) {
	handler, _, _, _, _, _ := NewMock(t)

	w := httptest.NewRecorder()
	handler.BuyToken(w, userRequest(http.MethodPost, "/buy/token", `{"value":"DOGE"}`))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestBuyAmountQuoteError(t *testing.T) {
	handler, buy, _, _, _, _ := NewMock(t)

	buy.EXPECT().Quote(int64(10000)).Return(buyservice.Quote{}, buyservice.ErrBelowMinimum)

	w := httptest.NewRecorder()
	handler.BuyAmount(w, userRequest(http.MethodPost, "/buy/amount", `{"amount_rp":10000}`))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestBuyConfirmErrors(t *testing.T) {
	tests := []struct {
		name         string
		serviceErr   error
		expectedCode int
	}{
		{name: "Insufficient balance", serviceErr: ledger.ErrInsufficientFunds, expectedCode: http.StatusPaymentRequired},
		{name: "Insufficient hot wallet liquidity", serviceErr: buyservice.ErrInsufficientLiquidity, expectedCode: http.StatusConflict},
		{name: "Oracle unavailable", serviceErr: rates.ErrRateUnavailable, expectedCode: http.StatusBadGateway},
		{name: "Broadcast failed", serviceErr: buyservice.ErrSendFailed, expectedCode: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, buy, _, _, _, conv := NewMock(t)

			conv.Begin("user-1", conversation.FlowBuy, conversation.StepBuyConfirm)
			buy.EXPECT().Execute(gomock.Any(), "user-1", gomock.Any()).Return(nil, tt.serviceErr)

			w := httptest.NewRecorder()
			handler.BuyConfirm(w, userRequest(http.MethodPost, "/buy/confirm", `{"confirm":true}`))

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestBuyStepsOutOfOrderAreIgnored(t *testing.T) {
	handler, _, _, _, _, _ := NewMock(t)

	// No flow was started; valid inputs at any step are dropped silently.
	w := httptest.NewRecorder()
	handler.BuyToken(w, userRequest(http.MethodPost, "/buy/token", `{"value":"USDT"}`))

	assert.Equal(t, http.StatusOK, w.Code)
	var body dto.FlowStepResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.True(t, body.Ignored)
}

func TestSellAmountQuotesFromDraftToken(t *testing.T) {
	handler, _, sell, _, _, conv := NewMock(t)

	conv.Begin("user-1", conversation.FlowSell, conversation.StepSellAmount)
	conv.Transition("user-1", conversation.StepSellAmount, conversation.StepSellAmount, func(s *conversation.State) {
		s.Sell.Token = "USDT"
	})
	sell.EXPECT().
		Quote(gomock.Any(), "USDT", 10.0).
		Return(sellservice.Quote{GrossRp: 160000, FeeRp: 5000, NetRp: 155000, Rate: 16000}, nil)

	w := httptest.NewRecorder()
	handler.SellAmount(w, userRequest(http.MethodPost, "/sell/amount", `{"quantity":10}`))

	assert.Equal(t, http.StatusOK, w.Code)
	var body dto.SellQuoteResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Equal(t, int64(155000), body.NetRp)
	assert.Equal(t, testHotAddr, body.HotWallet)
}

func TestSellTxHandler(t *testing.T) {
	txHash := "0x" + strings.Repeat("a", 64)

	seedSellDraft := func(conv *conversation.Manager) {
		conv.Begin("user-1", conversation.FlowSell, conversation.StepSellTx)
		conv.Transition("user-1", conversation.StepSellTx, conversation.StepSellTx, func(s *conversation.State) {
			s.Sell.Token = "USDT"
			s.Sell.Network = "BEP20"
			s.Sell.Sender = testWallet
			s.Sell.Quantity = 10
		})
	}

	t.Run("Successful settlement", func(t *testing.T) {
		handler, _, sell, _, _, conv := NewMock(t)
		seedSellDraft(conv)

		sell.EXPECT().
			Submit(gomock.Any(), "user-1", sellservice.Deposit{Token: "USDT", Network: "BEP20", Sender: testWallet, Quantity: 10, TxHash: txHash}).
			Return(&sellservice.Result{TokenAmount: 10, GrossRp: 160000, FeeRp: 5000, NetRp: 155000, Before: 0, After: 155000, TxHash: txHash}, nil)

		w := httptest.NewRecorder()
		handler.SellTx(w, userRequest(http.MethodPost, "/sell/tx", `{"value":"`+txHash+`"}`))

		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.SellResultResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Equal(t, int64(155000), body.AfterRp)

		// The flow is consumed.
		_, ok := conv.Peek("user-1")
		assert.False(t, ok)
	})

	t.Run("Malformed hash", func(t *testing.T) {
		handler, _, _, _, _, _ := NewMock(t)

		w := httptest.NewRecorder()
		handler.SellTx(w, userRequest(http.MethodPost, "/sell/tx", `{"value":"0x123"}`))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Duplicate hash", func(t *testing.T) {
		handler, _, sell, _, _, conv := NewMock(t)
		seedSellDraft(conv)

		sell.EXPECT().Submit(gomock.Any(), "user-1", gomock.Any()).Return(nil, ledger.ErrDuplicateTx)

		w := httptest.NewRecorder()
		handler.SellTx(w, userRequest(http.MethodPost, "/sell/tx", `{"value":"`+txHash+`"}`))

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Receipt mismatch allows a retry", func(t *testing.T) {
		handler, _, sell, _, _, conv := NewMock(t)
		seedSellDraft(conv)

		sell.EXPECT().Submit(gomock.Any(), "user-1", gomock.Any()).Return(nil, sellservice.ErrReceiptMismatch)

		w := httptest.NewRecorder()
		handler.SellTx(w, userRequest(http.MethodPost, "/sell/tx", `{"value":"`+txHash+`"}`))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		// The draft is restored at the same step so a corrected hash can be
		// submitted without restarting the flow.
		st, ok := conv.Peek("user-1")
		assert.True(t, ok)
		assert.Equal(t, conversation.StepSellTx, st.Step)
		assert.Equal(t, "USDT", st.Sell.Token)
	})
}

func TestCancelHandler(t *testing.T) {
	handler, _, _, _, _, conv := NewMock(t)

	conv.Begin("user-1", conversation.FlowBuy, conversation.StepBuyToken)

	w := httptest.NewRecorder()
	handler.Cancel(w, userRequest(http.MethodPost, "/cancel", ""))
	assert.Equal(t, http.StatusOK, w.Code)

	_, ok := conv.Peek("user-1")
	assert.False(t, ok)

	// Cancelling again is harmless.
	w = httptest.NewRecorder()
	handler.Cancel(w, userRequest(http.MethodPost, "/cancel", ""))
	assert.Equal(t, http.StatusOK, w.Code)
}
