// Package buyservice settles crypto purchases against the internal ledger:
// quote the fee, verify hot-wallet liquidity, lock the user's funds, then
// broadcast the payout and roll the debit back if the transfer never lands.
package buyservice

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/tukarid/tukarbot/internal/chain"
	"github.com/tukarid/tukarbot/internal/config"
	"github.com/tukarid/tukarbot/internal/domain"
	"github.com/tukarid/tukarbot/internal/gate"
	"github.com/tukarid/tukarbot/internal/store"
	"go.uber.org/zap"
)

var (
	ErrBelowMinimum          = errors.New("amount below minimum")
	ErrFeeExceedsAmount      = errors.New("amount too small after fee")
	ErrUnknownAsset          = errors.New("unknown token or network")
	ErrInsufficientLiquidity = errors.New("insufficient hot wallet liquidity")
	ErrSendFailed            = errors.New("transfer failed")
)

const (
	confirmAttempts = 3
	confirmInterval = time.Second * 2
)

type Ledger interface {
	Lock(userID string) func()
	Debit(ctx context.Context, userID string, amount int64) (domain.Undo, error)
	Rollback(ctx context.Context, undo domain.Undo) error
}

type Gateway interface {
	HotBalance(ctx context.Context, asset chain.Asset) (*big.Int, error)
	Send(ctx context.Context, asset chain.Asset, to string, amountWei *big.Int) (string, error)
	Mined(ctx context.Context, asset chain.Asset, txHash string) (bool, error)
}

type Oracle interface {
	Rate(ctx context.Context, token string) (float64, error)
}

type Gate interface {
	Allow(ctx context.Context, feature string) error
}

type Notifier interface {
	NotifyUser(userID, text string)
	Audit(text string)
}

type Quote struct {
	AmountRp int64
	FeeRp    int64
	NetRp    int64
}

type Order struct {
	Token    string
	Network  string
	AmountRp int64
	Wallet   string
}

type Result struct {
	Quote
	Token       string
	Network     string
	TokenAmount float64
	TxHash      string
	Balance     int64
}

type Service struct {
	cfg      *config.Config
	ledger   Ledger
	gateway  Gateway
	oracle   Oracle
	gate     Gate
	notifier Notifier
	store    store.Store
	now      func() time.Time
	sleep    func(time.Duration)
}

func New(cfg *config.Config, ledger Ledger, gateway Gateway, oracle Oracle, g Gate, notifier Notifier, st store.Store) *Service {
	return &Service{
		cfg:      cfg,
		ledger:   ledger,
		gateway:  gateway,
		oracle:   oracle,
		gate:     g,
		notifier: notifier,
		store:    st,
		now:      time.Now,
		sleep:    time.Sleep,
	}
}

// Quote validates the nominal amount and computes the fee breakdown:
// fee = max(amount * fee_percent, fee_minimum), net = amount - fee.
func (s *Service) Quote(amountRp int64) (Quote, error) {
	if amountRp < s.cfg.MinBuyRp {
		return Quote{}, fmt.Errorf("%w: minimum is Rp %d", ErrBelowMinimum, s.cfg.MinBuyRp)
	}

	fee := int64(float64(amountRp) * s.cfg.BuyFeePercent / 100)
	if fee < s.cfg.BuyFeeMinRp {
		fee = s.cfg.BuyFeeMinRp
	}
	net := amountRp - fee
	if net <= 0 {
		return Quote{}, ErrFeeExceedsAmount
	}
	return Quote{AmountRp: amountRp, FeeRp: fee, NetRp: net}, nil
}

// Execute runs the whole settlement. The liquidity check happens before the
// debit so a predictable liquidity failure never locks funds, and the debit
// is persisted before the broadcast so a crash can only leave funds locked,
// never double-spent.
func (s *Service) Execute(ctx context.Context, userID string, ord Order) (*Result, error) {
	if err := s.gate.Allow(ctx, gate.FeatureBuy); err != nil {
		return nil, err
	}

	q, err := s.Quote(ord.AmountRp)
	if err != nil {
		return nil, err
	}

	tn, ok := s.cfg.Token(ord.Token, ord.Network)
	if !ok {
		return nil, fmt.Errorf("%w: %s on %s", ErrUnknownAsset, ord.Token, ord.Network)
	}
	asset := chain.Asset{Token: ord.Token, Network: ord.Network, Contract: tn.Contract, Decimals: tn.Decimals}

	rateCtx, cancel := context.WithTimeout(ctx, s.cfg.OracleTimeout)
	rate, err := s.oracle.Rate(rateCtx, ord.Token)
	cancel()
	if err != nil {
		return nil, err
	}

	tokenAmount := float64(q.NetRp) / rate
	tokenWei := chain.ToWei(tokenAmount, asset.Decimals)

	liqCtx, cancel := context.WithTimeout(ctx, s.cfg.ChainTimeout)
	hot, err := s.gateway.HotBalance(liqCtx, asset)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("liquidity check failed: %w", err)
	}
	if hot.Cmp(tokenWei) < 0 {
		return nil, fmt.Errorf("%w: need %s, have %s %s wei",
			ErrInsufficientLiquidity, tokenWei, hot, ord.Token)
	}

	unlock := s.ledger.Lock(userID)
	defer unlock()

	undo, err := s.ledger.Debit(ctx, userID, q.AmountRp)
	if err != nil {
		return nil, err
	}

	intentID := uuid.NewString()
	intent := &domain.TransferOrder{
		ID:        intentID,
		UserID:    userID,
		Token:     ord.Token,
		Network:   ord.Network,
		Wallet:    ord.Wallet,
		AmountRp:  q.AmountRp,
		FeeRp:     q.FeeRp,
		NetRp:     q.NetRp,
		TokenWei:  tokenWei.String(),
		Status:    domain.OrderBroadcasting,
		CreatedAt: s.now(),
	}
	if err := s.store.Update(ctx, func(doc *domain.Document) error {
		doc.Orders[intentID] = intent
		return nil
	}); err != nil {
		if rbErr := s.ledger.Rollback(ctx, undo); rbErr != nil {
			zap.L().Error("rollback after intent write failure failed", zap.Error(rbErr))
		}
		return nil, fmt.Errorf("can't record transfer intent: %w", err)
	}

	sendCtx, cancel := context.WithTimeout(ctx, s.cfg.ChainTimeout)
	txHash, sendErr := s.gateway.Send(sendCtx, asset, ord.Wallet, tokenWei)
	cancel()

	if sendErr != nil {
		// Unknown delivery outcome: the signed tx may still have landed.
		// Only roll back once receipt polling confirms it never did.
		if txHash != "" && s.landed(ctx, asset, txHash) {
			zap.L().Warn("broadcast errored but transfer landed", zap.String("txHash", txHash))
			sendErr = nil
		}
	}

	if sendErr != nil {
		if rbErr := s.ledger.Rollback(ctx, undo); rbErr != nil {
			zap.L().Error("rollback after send failure failed",
				zap.String("userID", userID), zap.Error(rbErr))
		}
		s.markIntent(ctx, intentID, domain.OrderFailed, txHash)
		zap.L().Error("buy settlement failed", zap.String("userID", userID), zap.Error(sendErr))
		return nil, fmt.Errorf("%w: %s", ErrSendFailed, sendErr)
	}

	s.markIntent(ctx, intentID, domain.OrderSent, txHash)

	res := &Result{
		Quote:       q,
		Token:       ord.Token,
		Network:     ord.Network,
		TokenAmount: tokenAmount,
		TxHash:      txHash,
		Balance:     undo.Before - q.AmountRp,
	}

	s.notifier.NotifyUser(userID, fmt.Sprintf(
		"Buy settled: %.6f %s on %s for Rp %d (fee Rp %d)\nTX: %s",
		tokenAmount, ord.Token, ord.Network, q.AmountRp, q.FeeRp, txHash))
	s.notifier.Audit(fmt.Sprintf(
		"BUY user=%s amount=Rp%d fee=Rp%d net=Rp%d tx=%s",
		userID, q.AmountRp, q.FeeRp, q.NetRp, txHash))

	return res, nil
}

// landed polls for a mined receipt a few times before giving up.
func (s *Service) landed(ctx context.Context, asset chain.Asset, txHash string) bool {
	for attempt := 0; attempt < confirmAttempts; attempt++ {
		if attempt > 0 {
			s.sleep(confirmInterval)
		}
		checkCtx, cancel := context.WithTimeout(ctx, s.cfg.ChainTimeout)
		mined, err := s.gateway.Mined(checkCtx, asset, txHash)
		cancel()
		if err != nil {
			continue
		}
		if mined {
			return true
		}
	}
	return false
}

func (s *Service) markIntent(ctx context.Context, id string, status domain.OrderStatus, txHash string) {
	err := s.store.Update(ctx, func(doc *domain.Document) error {
		if ord, ok := doc.Orders[id]; ok {
			ord.Status = status
			ord.TxHash = txHash
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't update transfer intent", zap.String("id", id), zap.Error(err))
	}
}
