package sellservice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tukarid/tukarbot/internal/chain"
	"github.com/tukarid/tukarbot/internal/config"
	"github.com/tukarid/tukarbot/internal/domain"
	"github.com/tukarid/tukarbot/internal/ledger"
	gomock "go.uber.org/mock/gomock"
)

func newTestConfig() *config.Config {
	return &config.Config{
		MinSellFeeRp:  5000,
		OracleTimeout: time.Second,
		ChainTimeout:  time.Second,
	}
}

type mocks struct {
	ledger   *MockLedger
	gateway  *MockGateway
	oracle   *MockOracle
	gate     *MockGate
	notifier *MockNotifier
}

func NewMock(t *testing.T) (*Service, *mocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &mocks{
		ledger:   NewMockLedger(ctrl),
		gateway:  NewMockGateway(ctrl),
		oracle:   NewMockOracle(ctrl),
		gate:     NewMockGate(ctrl),
		notifier: NewMockNotifier(ctrl),
	}
	service := New(newTestConfig(), m.ledger, m.gateway, m.oracle, m.gate, m.notifier)
	t.Cleanup(ctrl.Finish)
	return service, m
}

func TestQuote(t *testing.T) {
	tests := []struct {
		name          string
		quantity      float64
		rate          float64
		rateErr       error
		expected      Quote
		expectedError error
	}{
		{
			name:     "Payout above fee",
			quantity: 10,
			rate:     16000,
			expected: Quote{GrossRp: 160000, FeeRp: 5000, NetRp: 155000, Rate: 16000},
		},
		{
			name:          "Value does not cover fee",
			quantity:      0.1,
			rate:          16000,
			expectedError: ErrTooSmall,
		},
		{
			name:          "Non-positive quantity",
			quantity:      0,
			expectedError: ErrTooSmall,
		},
		{
			name:          "Oracle failure",
			quantity:      10,
			rateErr:       assert.AnError,
			expectedError: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)

			m.gate.EXPECT().Allow(gomock.Any(), "sell").Return(nil)
			if tt.quantity > 0 {
				m.oracle.EXPECT().Rate(gomock.Any(), "USDT").Return(tt.rate, tt.rateErr)
			}

			q, err := service.Quote(context.Background(), "USDT", tt.quantity)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, q)
		})
	}
}

func deposit(quantity float64) Deposit {
	return Deposit{
		Token:    "USDT",
		Network:  "BEP20",
		Sender:   "0x2222222222222222222222222222222222222222",
		Quantity: quantity,
		TxHash:   "0xdeposit",
	}
}

func TestSubmitCreditsDeliveredValue(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()

	// Declared 10, delivered 9.96875: inside the 0.5% tolerance, and the
	// credit is computed from the delivered amount, not the declaration.
	delivered := chain.ToWei(9.96875, 18)

	m.gate.EXPECT().Allow(gomock.Any(), "sell").Return(nil)
	m.ledger.EXPECT().IsUsedTx(gomock.Any(), "0xdeposit").Return(false, nil)
	m.gateway.EXPECT().DeliveredAmount(gomock.Any(), gomock.Any(), "0xdeposit", gomock.Any()).
		Return(delivered, nil)
	m.oracle.EXPECT().Rate(gomock.Any(), "USDT").Return(16000.0, nil)
	m.ledger.EXPECT().Lock("user-1").Return(func() {})
	m.ledger.EXPECT().ConsumeDeposit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec domain.DepositRecord) (int64, int64, error) {
			assert.Equal(t, "0xdeposit", rec.TxHash)
			assert.Equal(t, "user-1", rec.UserID)
			assert.Equal(t, int64(159500), rec.GrossRp)
			assert.Equal(t, int64(5000), rec.FeeRp)
			assert.Equal(t, int64(154500), rec.NetRp)
			return 20000, 174500, nil
		})
	m.notifier.EXPECT().NotifyUser("user-1", gomock.Any())
	m.notifier.EXPECT().Audit(gomock.Any())

	res, err := service.Submit(ctx, "user-1", deposit(10))
	assert.NoError(t, err)
	assert.InDelta(t, 9.96875, res.TokenAmount, 1e-9)
	assert.Equal(t, int64(159500), res.GrossRp)
	assert.Equal(t, int64(154500), res.NetRp)
	assert.Equal(t, int64(20000), res.Before)
	assert.Equal(t, int64(174500), res.After)
}

func TestSubmitShortDeliveryRejected(t *testing.T) {
	service, m := NewMock(t)

	// Declared 10, delivered 9.0: past the 0.5% tolerance.
	m.gate.EXPECT().Allow(gomock.Any(), "sell").Return(nil)
	m.ledger.EXPECT().IsUsedTx(gomock.Any(), "0xdeposit").Return(false, nil)
	m.gateway.EXPECT().DeliveredAmount(gomock.Any(), gomock.Any(), "0xdeposit", gomock.Any()).
		Return(chain.ToWei(9.0, 18), nil)

	_, err := service.Submit(context.Background(), "user-1", deposit(10))
	assert.ErrorIs(t, err, ErrShortDelivery)
}

func TestSubmitOverDeliveryAccepted(t *testing.T) {
	service, m := NewMock(t)

	m.gate.EXPECT().Allow(gomock.Any(), "sell").Return(nil)
	m.ledger.EXPECT().IsUsedTx(gomock.Any(), "0xdeposit").Return(false, nil)
	m.gateway.EXPECT().DeliveredAmount(gomock.Any(), gomock.Any(), "0xdeposit", gomock.Any()).
		Return(chain.ToWei(12.0, 18), nil)
	m.oracle.EXPECT().Rate(gomock.Any(), "USDT").Return(16000.0, nil)
	m.ledger.EXPECT().Lock("user-1").Return(func() {})
	m.ledger.EXPECT().ConsumeDeposit(gomock.Any(), gomock.Any()).Return(int64(0), int64(187000), nil)
	m.notifier.EXPECT().NotifyUser("user-1", gomock.Any())
	m.notifier.EXPECT().Audit(gomock.Any())

	res, err := service.Submit(context.Background(), "user-1", deposit(10))
	assert.NoError(t, err)
	// Credited for the 12 actually delivered.
	assert.Equal(t, int64(192000), res.GrossRp)
}

func TestSubmitDuplicateHash(t *testing.T) {
	service, m := NewMock(t)

	m.gate.EXPECT().Allow(gomock.Any(), "sell").Return(nil)
	m.ledger.EXPECT().IsUsedTx(gomock.Any(), "0xdeposit").Return(true, nil)

	_, err := service.Submit(context.Background(), "user-1", deposit(10))
	assert.ErrorIs(t, err, ledger.ErrDuplicateTx)
}

func TestSubmitDuplicateRaceCaughtAtCredit(t *testing.T) {
	service, m := NewMock(t)

	// The early check passes but a racing submission consumed the hash first;
	// the atomic credit-time check still rejects.
	m.gate.EXPECT().Allow(gomock.Any(), "sell").Return(nil)
	m.ledger.EXPECT().IsUsedTx(gomock.Any(), "0xdeposit").Return(false, nil)
	m.gateway.EXPECT().DeliveredAmount(gomock.Any(), gomock.Any(), "0xdeposit", gomock.Any()).
		Return(chain.ToWei(10, 18), nil)
	m.oracle.EXPECT().Rate(gomock.Any(), "USDT").Return(16000.0, nil)
	m.ledger.EXPECT().Lock("user-1").Return(func() {})
	m.ledger.EXPECT().ConsumeDeposit(gomock.Any(), gomock.Any()).
		Return(int64(0), int64(0), ledger.ErrDuplicateTx)

	_, err := service.Submit(context.Background(), "user-1", deposit(10))
	assert.ErrorIs(t, err, ledger.ErrDuplicateTx)
}

func TestSubmitReceiptMismatch(t *testing.T) {
	tests := []struct {
		name     string
		chainErr error
	}{
		{name: "Transaction not found", chainErr: chain.ErrTxNotFound},
		{name: "Wrong sender", chainErr: chain.ErrWrongSender},
		{name: "Wrong recipient", chainErr: chain.ErrWrongRecipient},
		{name: "Reverted", chainErr: chain.ErrTxReverted},
		{name: "No matching transfer", chainErr: chain.ErrNoTransfer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)

			m.gate.EXPECT().Allow(gomock.Any(), "sell").Return(nil)
			m.ledger.EXPECT().IsUsedTx(gomock.Any(), "0xdeposit").Return(false, nil)
			m.gateway.EXPECT().DeliveredAmount(gomock.Any(), gomock.Any(), "0xdeposit", gomock.Any()).
				Return(nil, tt.chainErr)

			_, err := service.Submit(context.Background(), "user-1", deposit(10))
			assert.ErrorIs(t, err, ErrReceiptMismatch)
		})
	}
}

func TestSubmitUnknownAsset(t *testing.T) {
	service, m := NewMock(t)

	m.gate.EXPECT().Allow(gomock.Any(), "sell").Return(nil)

	dep := deposit(10)
	dep.Network = "TRC20"
	_, err := service.Submit(context.Background(), "user-1", dep)
	assert.ErrorIs(t, err, ErrUnknownAsset)
}
