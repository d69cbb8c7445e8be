package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/tukarid/tukarbot/pkg/auth"
	gomock "go.uber.org/mock/gomock"
)

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTradeHandler := NewMockTradeHandler(ctrl)
	mockFundingHandler := NewMockFundingHandler(ctrl)
	mockAdminHandler := NewMockAdminHandler(ctrl)

	mockTradeHandler.EXPECT().StartBuy(gomock.Any(), gomock.Any()).AnyTimes()
	mockTradeHandler.EXPECT().BuyToken(gomock.Any(), gomock.Any()).AnyTimes()
	mockTradeHandler.EXPECT().BuyConfirm(gomock.Any(), gomock.Any()).AnyTimes()
	mockTradeHandler.EXPECT().StartSell(gomock.Any(), gomock.Any()).AnyTimes()
	mockTradeHandler.EXPECT().SellTx(gomock.Any(), gomock.Any()).AnyTimes()
	mockTradeHandler.EXPECT().Cancel(gomock.Any(), gomock.Any()).AnyTimes()
	mockFundingHandler.EXPECT().Balance(gomock.Any(), gomock.Any()).AnyTimes()
	mockFundingHandler.EXPECT().StartTopUp(gomock.Any(), gomock.Any()).AnyTimes()
	mockFundingHandler.EXPECT().TopUpProof(gomock.Any(), gomock.Any()).AnyTimes()
	mockFundingHandler.EXPECT().StartWithdraw(gomock.Any(), gomock.Any()).AnyTimes()
	mockFundingHandler.EXPECT().WithdrawAmount(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		TradeHandler:   mockTradeHandler,
		FundingHandler: mockFundingHandler,
		AdminHandler:   mockAdminHandler,
		jwt:            auth.NewJWTService("test-secret", []string{"admin-1"}),
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"GET", "/api/users/user-1/balance", http.StatusOK},
		{"POST", "/api/flows/user-1/cancel", http.StatusOK},
		{"POST", "/api/flows/user-1/buy/start", http.StatusOK},
		{"POST", "/api/flows/user-1/buy/token", http.StatusOK},
		{"POST", "/api/flows/user-1/buy/confirm", http.StatusOK},
		{"POST", "/api/flows/user-1/sell/start", http.StatusOK},
		{"POST", "/api/flows/user-1/sell/tx", http.StatusOK},
		{"POST", "/api/flows/user-1/topup/start", http.StatusOK},
		{"POST", "/api/flows/user-1/topup/proof", http.StatusOK},
		{"POST", "/api/flows/user-1/withdraw/start", http.StatusOK},
		{"POST", "/api/flows/user-1/withdraw/amount", http.StatusOK},
		// Admin routes reject requests without a bearer token.
		{"POST", "/api/admin/topups/id-1/decision", http.StatusUnauthorized},
		{"POST", "/api/admin/withdraws/id-1/decision", http.StatusUnauthorized},
		{"POST", "/api/admin/features/buy", http.StatusUnauthorized},
		{"GET", "/api/admin/maintenance/", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
