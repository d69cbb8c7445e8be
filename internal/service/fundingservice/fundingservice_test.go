package fundingservice

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tukarid/tukarbot/internal/config"
	"github.com/tukarid/tukarbot/internal/domain"
	"github.com/tukarid/tukarbot/internal/gate"
	"github.com/tukarid/tukarbot/internal/ledger"
	"github.com/tukarid/tukarbot/internal/store"
	"github.com/tukarid/tukarbot/internal/store/filestore"
	gomock "go.uber.org/mock/gomock"
)

func newTestConfig() *config.Config {
	return &config.Config{
		MinTopUpRp:    15000,
		MinWithdrawRp: 15000,
	}
}

// The tests run against a real document store and ledger so the two-phase
// invariants are exercised end to end; only the notifier is mocked.
func NewMock(t *testing.T) (*Service, store.Store, *ledger.Ledger, *MockNotifier) {
	t.Helper()
	ctrl := gomock.NewController(t)
	notifier := NewMockNotifier(ctrl)
	notifier.EXPECT().NotifyUser(gomock.Any(), gomock.Any()).AnyTimes()
	notifier.EXPECT().NotifyAdmins(gomock.Any()).AnyTimes()
	notifier.EXPECT().Audit(gomock.Any()).AnyTimes()

	st := filestore.New(filepath.Join(t.TempDir(), "db.json"))
	l := ledger.New(st)
	service := New(newTestConfig(), st, l, gate.New(st), notifier)
	t.Cleanup(ctrl.Finish)
	return service, st, l, notifier
}

func TestSubmitTopUp(t *testing.T) {
	tests := []struct {
		name          string
		amountRp      int64
		method        string
		proof         string
		expectedError error
	}{
		{name: "Valid request", amountRp: 20000, method: "DANA", proof: "receipt-1"},
		{name: "Below minimum", amountRp: 14999, method: "DANA", proof: "receipt-1", expectedError: ErrBelowMinimum},
		{name: "Unknown method", amountRp: 20000, method: "PAYPAL", proof: "receipt-1", expectedError: ErrUnknownMethod},
		{name: "Missing proof", amountRp: 20000, method: "DANA", expectedError: ErrMissingProof},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, st, _, _ := NewMock(t)

			req, err := service.SubmitTopUp(context.Background(), "user-1", tt.amountRp, tt.method, "Budi", tt.proof)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, domain.StatusPending, req.Status)

			err = st.View(context.Background(), func(doc *domain.Document) error {
				stored := doc.TopUps[req.ID]
				assert.NotNil(t, stored)
				assert.Equal(t, tt.amountRp, stored.AmountRp)
				return nil
			})
			assert.NoError(t, err)
		})
	}
}

func TestDecideTopUpApproveCreditsOnce(t *testing.T) {
	service, _, l, _ := NewMock(t)
	ctx := context.Background()

	req, err := service.SubmitTopUp(ctx, "user-1", 20000, "DANA", "Budi", "receipt-1")
	assert.NoError(t, err)

	out, err := service.DecideTopUp(ctx, "admin-1", req.ID, true)
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, out.Status)
	assert.Equal(t, "admin-1", out.DecidedBy)
	assert.NotNil(t, out.DecidedAt)

	balance, err := l.Balance(ctx, "user-1")
	assert.NoError(t, err)
	assert.Equal(t, int64(20000), balance)

	// A second decision on the same request never pays out again.
	_, err = service.DecideTopUp(ctx, "admin-2", req.ID, true)
	assert.ErrorIs(t, err, ErrAlreadyDecided)

	balance, err = l.Balance(ctx, "user-1")
	assert.NoError(t, err)
	assert.Equal(t, int64(20000), balance)
}

func TestDecideTopUpRejectLeavesBalanceAlone(t *testing.T) {
	service, _, l, _ := NewMock(t)
	ctx := context.Background()

	req, err := service.SubmitTopUp(ctx, "user-1", 20000, "DANA", "Budi", "receipt-1")
	assert.NoError(t, err)

	out, err := service.DecideTopUp(ctx, "admin-1", req.ID, false)
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, out.Status)

	balance, err := l.Balance(ctx, "user-1")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), balance)

	// Rejection is terminal too.
	_, err = service.DecideTopUp(ctx, "admin-1", req.ID, true)
	assert.ErrorIs(t, err, ErrAlreadyDecided)
}

func TestDecideTopUpNotFound(t *testing.T) {
	service, _, _, _ := NewMock(t)

	_, err := service.DecideTopUp(context.Background(), "admin-1", "missing", true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubmitWithdraw(t *testing.T) {
	tests := []struct {
		name          string
		balance       int64
		amountRp      int64
		method        string
		expectedError error
	}{
		{name: "Valid request", balance: 50000, amountRp: 20000, method: "BCA"},
		{name: "Below minimum", balance: 50000, amountRp: 14999, method: "BCA", expectedError: ErrBelowMinimum},
		{name: "Unknown method", balance: 50000, amountRp: 20000, method: "WISE", expectedError: ErrUnknownMethod},
		{name: "Insufficient balance", balance: 10000, amountRp: 20000, method: "BCA", expectedError: ledger.ErrInsufficientFunds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, l, _ := NewMock(t)
			ctx := context.Background()

			if tt.balance > 0 {
				_, _, err := l.Credit(ctx, "user-1", tt.balance)
				assert.NoError(t, err)
			}

			req, err := service.SubmitWithdraw(ctx, "user-1", tt.amountRp, tt.method, "1234567890", "Budi")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, domain.StatusPending, req.Status)

			// Submission places no hold.
			balance, err := l.Balance(ctx, "user-1")
			assert.NoError(t, err)
			assert.Equal(t, tt.balance, balance)
		})
	}
}

func TestWithdrawApprovalRechecksBalance(t *testing.T) {
	service, _, l, _ := NewMock(t)
	ctx := context.Background()

	// Two pending withdrawals against a balance that covers only one.
	_, _, err := l.Credit(ctx, "user-1", 20000)
	assert.NoError(t, err)

	first, err := service.SubmitWithdraw(ctx, "user-1", 15000, "BCA", "1234567890", "Budi")
	assert.NoError(t, err)
	second, err := service.SubmitWithdraw(ctx, "user-1", 15000, "OVO", "0812xxxx", "Budi")
	assert.NoError(t, err)

	out, err := service.DecideWithdraw(ctx, "admin-1", first.ID, true)
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, out.Status)

	balance, err := l.Balance(ctx, "user-1")
	assert.NoError(t, err)
	assert.Equal(t, int64(5000), balance)

	// The second approval fails at decision time; the request stays pending
	// and the balance is untouched.
	_, err = service.DecideWithdraw(ctx, "admin-1", second.ID, true)
	assert.ErrorIs(t, err, ledger.ErrInsufficientFunds)

	balance, err = l.Balance(ctx, "user-1")
	assert.NoError(t, err)
	assert.Equal(t, int64(5000), balance)

	// Rejecting it afterwards still works.
	out2, err := service.DecideWithdraw(ctx, "admin-1", second.ID, false)
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, out2.Status)
}

func TestDecideWithdrawTerminalExactlyOnce(t *testing.T) {
	service, _, l, _ := NewMock(t)
	ctx := context.Background()

	_, _, err := l.Credit(ctx, "user-1", 100000)
	assert.NoError(t, err)

	req, err := service.SubmitWithdraw(ctx, "user-1", 30000, "BCA", "1234567890", "Budi")
	assert.NoError(t, err)

	_, err = service.DecideWithdraw(ctx, "admin-1", req.ID, true)
	assert.NoError(t, err)

	_, err = service.DecideWithdraw(ctx, "admin-2", req.ID, true)
	assert.ErrorIs(t, err, ErrAlreadyDecided)

	// Debited exactly once.
	balance, err := l.Balance(ctx, "user-1")
	assert.NoError(t, err)
	assert.Equal(t, int64(70000), balance)
}
