package buyservice

import (
	"context"
	"math/big"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tukarid/tukarbot/internal/config"
	"github.com/tukarid/tukarbot/internal/domain"
	"github.com/tukarid/tukarbot/internal/ledger"
	"github.com/tukarid/tukarbot/internal/store/filestore"
	gomock "go.uber.org/mock/gomock"
)

func newTestConfig() *config.Config {
	return &config.Config{
		MinBuyRp:      15000,
		BuyFeePercent: 2,
		BuyFeeMinRp:   5000,
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

func NewMock(t *testing.T, cfg *config.Config) (*Service, *mocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &mocks{
		ledger:   NewMockLedger(ctrl),
		gateway:  NewMockGateway(ctrl),
		oracle:   NewMockOracle(ctrl),
		gate:     NewMockGate(ctrl),
		notifier: NewMockNotifier(ctrl),
	}
	st := filestore.New(filepath.Join(t.TempDir(), "db.json"))
	service := New(cfg, m.ledger, m.gateway, m.oracle, m.gate, m.notifier, st)
	service.sleep = func(time.Duration) {}
	t.Cleanup(ctrl.Finish)
	return service, m
}

func TestQuote(t *testing.T) {
	tests := []struct {
		name          string
		cfg           *config.Config
		amountRp      int64
		expected      Quote
		expectedError error
	}{
		{
			name:     "Minimum fee dominates small amount",
			cfg:      newTestConfig(),
			amountRp: 50000,
			expected: Quote{AmountRp: 50000, FeeRp: 5000, NetRp: 45000},
		},
		{
			name:     "Percent fee dominates large amount",
			cfg:      newTestConfig(),
			amountRp: 1000000,
			expected: Quote{AmountRp: 1000000, FeeRp: 20000, NetRp: 980000},
		},
		{
			name:     "Exactly at minimum",
			cfg:      newTestConfig(),
			amountRp: 15000,
			expected: Quote{AmountRp: 15000, FeeRp: 5000, NetRp: 10000},
		},
		{
			name:          "Below minimum",
			cfg:           newTestConfig(),
			amountRp:      14999,
			expectedError: ErrBelowMinimum,
		},
		{
			name:          "Fee swallows the amount",
			cfg:           &config.Config{MinBuyRp: 1000, BuyFeePercent: 2, BuyFeeMinRp: 5000},
			amountRp:      3000,
			expectedError: ErrFeeExceedsAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := NewMock(t, tt.cfg)

			q, err := service.Quote(tt.amountRp)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, q)
		})
	}
}

func TestExecuteSettlesBuy(t *testing.T) {
	service, m := NewMock(t, newTestConfig())
	ctx := context.Background()

	ord := Order{Token: "USDT", Network: "BEP20", AmountRp: 50000, Wallet: "0x1111111111111111111111111111111111111111"}

	m.gate.EXPECT().Allow(gomock.Any(), "buy").Return(nil)
	m.oracle.EXPECT().Rate(gomock.Any(), "USDT").Return(15000.0, nil)
	// net 45000 / 15000 = 3 tokens; hot wallet holds plenty.
	m.gateway.EXPECT().HotBalance(gomock.Any(), gomock.Any()).
		Return(new(big.Int).Mul(big.NewInt(100), big.NewInt(1e18)), nil)
	m.ledger.EXPECT().Lock("user-1").Return(func() {})
	m.ledger.EXPECT().Debit(gomock.Any(), "user-1", int64(50000)).
		Return(domain.Undo{UserID: "user-1", AmountRp: 50000, Before: 100000}, nil)
	m.gateway.EXPECT().Send(gomock.Any(), gomock.Any(), ord.Wallet, gomock.Any()).
		Return("0xsent", nil)
	m.notifier.EXPECT().NotifyUser("user-1", gomock.Any())
	m.notifier.EXPECT().Audit(gomock.Any())

	res, err := service.Execute(ctx, "user-1", ord)
	assert.NoError(t, err)
	assert.Equal(t, int64(50000), res.AmountRp)
	assert.Equal(t, int64(5000), res.FeeRp)
	assert.Equal(t, int64(45000), res.NetRp)
	assert.InDelta(t, 3.0, res.TokenAmount, 1e-9)
	assert.Equal(t, "0xsent", res.TxHash)
	assert.Equal(t, int64(50000), res.Balance)

	// The transfer intent is recorded and marked sent.
	err = service.store.View(ctx, func(doc *domain.Document) error {
		assert.Len(t, doc.Orders, 1)
		for _, intent := range doc.Orders {
			assert.Equal(t, domain.OrderSent, intent.Status)
			assert.Equal(t, "0xsent", intent.TxHash)
			assert.Equal(t, "user-1", intent.UserID)
		}
		return nil
	})
	assert.NoError(t, err)
}

func TestExecuteRollsBackWhenSendFails(t *testing.T) {
	service, m := NewMock(t, newTestConfig())
	ctx := context.Background()

	ord := Order{Token: "USDT", Network: "BEP20", AmountRp: 50000, Wallet: "0x1111111111111111111111111111111111111111"}
	undo := domain.Undo{UserID: "user-1", AmountRp: 50000, Before: 100000}

	m.gate.EXPECT().Allow(gomock.Any(), "buy").Return(nil)
	m.oracle.EXPECT().Rate(gomock.Any(), "USDT").Return(15000.0, nil)
	m.gateway.EXPECT().HotBalance(gomock.Any(), gomock.Any()).
		Return(new(big.Int).Mul(big.NewInt(100), big.NewInt(1e18)), nil)
	m.ledger.EXPECT().Lock("user-1").Return(func() {})
	m.ledger.EXPECT().Debit(gomock.Any(), "user-1", int64(50000)).Return(undo, nil)
	m.gateway.EXPECT().Send(gomock.Any(), gomock.Any(), ord.Wallet, gomock.Any()).
		Return("0xmaybe", assert.AnError)
	// Receipt polling confirms the transfer never landed.
	m.gateway.EXPECT().Mined(gomock.Any(), gomock.Any(), "0xmaybe").
		Return(false, nil).Times(confirmAttempts)
	m.ledger.EXPECT().Rollback(gomock.Any(), undo).Return(nil)

	_, err := service.Execute(ctx, "user-1", ord)
	assert.ErrorIs(t, err, ErrSendFailed)

	err = service.store.View(ctx, func(doc *domain.Document) error {
		for _, intent := range doc.Orders {
			assert.Equal(t, domain.OrderFailed, intent.Status)
		}
		return nil
	})
	assert.NoError(t, err)
}

func TestExecuteKeepsDebitWhenBroadcastErrorButMined(t *testing.T) {
	service, m := NewMock(t, newTestConfig())
	ctx := context.Background()

	ord := Order{Token: "USDT", Network: "BEP20", AmountRp: 50000, Wallet: "0x1111111111111111111111111111111111111111"}

	m.gate.EXPECT().Allow(gomock.Any(), "buy").Return(nil)
	m.oracle.EXPECT().Rate(gomock.Any(), "USDT").Return(15000.0, nil)
	m.gateway.EXPECT().HotBalance(gomock.Any(), gomock.Any()).
		Return(new(big.Int).Mul(big.NewInt(100), big.NewInt(1e18)), nil)
	m.ledger.EXPECT().Lock("user-1").Return(func() {})
	m.ledger.EXPECT().Debit(gomock.Any(), "user-1", int64(50000)).
		Return(domain.Undo{UserID: "user-1", AmountRp: 50000, Before: 100000}, nil)
	m.gateway.EXPECT().Send(gomock.Any(), gomock.Any(), ord.Wallet, gomock.Any()).
		Return("0xlanded", assert.AnError)
	m.gateway.EXPECT().Mined(gomock.Any(), gomock.Any(), "0xlanded").Return(true, nil)
	m.notifier.EXPECT().NotifyUser("user-1", gomock.Any())
	m.notifier.EXPECT().Audit(gomock.Any())

	res, err := service.Execute(ctx, "user-1", ord)
	assert.NoError(t, err)
	assert.Equal(t, "0xlanded", res.TxHash)
}

func TestExecuteLiquidityCheckedBeforeDebit(t *testing.T) {
	service, m := NewMock(t, newTestConfig())

	ord := Order{Token: "USDT", Network: "BEP20", AmountRp: 50000, Wallet: "0x1111111111111111111111111111111111111111"}

	m.gate.EXPECT().Allow(gomock.Any(), "buy").Return(nil)
	m.oracle.EXPECT().Rate(gomock.Any(), "USDT").Return(15000.0, nil)
	// Hot wallet holds one token; three are needed. No Debit expectation: a
	// debit here would fail the test.
	m.gateway.EXPECT().HotBalance(gomock.Any(), gomock.Any()).
		Return(big.NewInt(1e18), nil)

	_, err := service.Execute(context.Background(), "user-1", ord)
	assert.ErrorIs(t, err, ErrInsufficientLiquidity)
}

func TestExecuteInsufficientFunds(t *testing.T) {
	service, m := NewMock(t, newTestConfig())

	ord := Order{Token: "USDT", Network: "BEP20", AmountRp: 50000, Wallet: "0x1111111111111111111111111111111111111111"}

	m.gate.EXPECT().Allow(gomock.Any(), "buy").Return(nil)
	m.oracle.EXPECT().Rate(gomock.Any(), "USDT").Return(15000.0, nil)
	m.gateway.EXPECT().HotBalance(gomock.Any(), gomock.Any()).
		Return(new(big.Int).Mul(big.NewInt(100), big.NewInt(1e18)), nil)
	m.ledger.EXPECT().Lock("user-1").Return(func() {})
	m.ledger.EXPECT().Debit(gomock.Any(), "user-1", int64(50000)).
		Return(domain.Undo{}, ledger.ErrInsufficientFunds)

	_, err := service.Execute(context.Background(), "user-1", ord)
	assert.ErrorIs(t, err, ledger.ErrInsufficientFunds)
}

func TestExecuteUnknownAsset(t *testing.T) {
	service, m := NewMock(t, newTestConfig())

	m.gate.EXPECT().Allow(gomock.Any(), "buy").Return(nil)

	_, err := service.Execute(context.Background(), "user-1", Order{
		Token: "DOGE", Network: "BEP20", AmountRp: 50000,
	})
	assert.ErrorIs(t, err, ErrUnknownAsset)
}

func TestExecuteGateRejects(t *testing.T) {
	service, m := NewMock(t, newTestConfig())

	m.gate.EXPECT().Allow(gomock.Any(), "buy").Return(assert.AnError)

	_, err := service.Execute(context.Background(), "user-1", Order{
		Token: "USDT", Network: "BEP20", AmountRp: 50000,
	})
	assert.ErrorIs(t, err, assert.AnError)
}

func TestExecuteOracleFailureBlocksSettlement(t *testing.T) {
	service, m := NewMock(t, newTestConfig())

	m.gate.EXPECT().Allow(gomock.Any(), "buy").Return(nil)
	m.oracle.EXPECT().Rate(gomock.Any(), "USDT").Return(0.0, assert.AnError)

	_, err := service.Execute(context.Background(), "user-1", Order{
		Token: "USDT", Network: "BEP20", AmountRp: 50000,
	})
	assert.ErrorIs(t, err, assert.AnError)
}
