// Package sellservice settles crypto deposits: verify the user's on-chain
// transfer against the receipt, enforce the one-shot used-hash rule, and
// credit the rupiah value of what was actually delivered.
package sellservice

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/tukarid/tukarbot/internal/chain"
	"github.com/tukarid/tukarbot/internal/config"
	"github.com/tukarid/tukarbot/internal/domain"
	"github.com/tukarid/tukarbot/internal/gate"
	"github.com/tukarid/tukarbot/internal/ledger"
	"go.uber.org/zap"
)

var (
	ErrUnknownAsset    = errors.New("unknown token or network")
	ErrTooSmall        = errors.New("sell value does not cover the fee")
	ErrReceiptMismatch = errors.New("transaction does not match the declared deposit")
	ErrShortDelivery   = errors.New("delivered amount below declared quantity")
)

type Ledger interface {
	Lock(userID string) func()
	IsUsedTx(ctx context.Context, txHash string) (bool, error)
	ConsumeDeposit(ctx context.Context, rec domain.DepositRecord) (before, after int64, err error)
}

type Gateway interface {
	DeliveredAmount(ctx context.Context, asset chain.Asset, txHash, sender string) (*big.Int, error)
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
	GrossRp int64
	FeeRp   int64
	NetRp   int64
	Rate    float64
}

type Deposit struct {
	Token    string
	Network  string
	Sender   string
	Quantity float64
	TxHash   string
}

type Result struct {
	TokenAmount float64
	GrossRp     int64
	FeeRp       int64
	NetRp       int64
	Before      int64
	After       int64
	TxHash      string
}

type Service struct {
	cfg      *config.Config
	ledger   Ledger
	gateway  Gateway
	oracle   Oracle
	gate     Gate
	notifier Notifier
	now      func() time.Time
}

func New(cfg *config.Config, l Ledger, gateway Gateway, oracle Oracle, g Gate, notifier Notifier) *Service {
	return &Service{
		cfg:      cfg,
		ledger:   l,
		gateway:  gateway,
		oracle:   oracle,
		gate:     g,
		notifier: notifier,
		now:      time.Now,
	}
}

// Quote estimates the payout for a declared quantity. The estimate is
// non-binding: settlement recomputes from the delivered amount.
func (s *Service) Quote(ctx context.Context, token string, quantity float64) (Quote, error) {
	if err := s.gate.Allow(ctx, gate.FeatureSell); err != nil {
		return Quote{}, err
	}
	if quantity <= 0 {
		return Quote{}, fmt.Errorf("%w: non-positive quantity", ErrTooSmall)
	}

	rateCtx, cancel := context.WithTimeout(ctx, s.cfg.OracleTimeout)
	rate, err := s.oracle.Rate(rateCtx, token)
	cancel()
	if err != nil {
		return Quote{}, err
	}

	gross := int64(quantity * rate)
	fee := s.cfg.MinSellFeeRp
	net := gross - fee
	if net <= 0 {
		return Quote{}, fmt.Errorf("%w: fee is Rp %d", ErrTooSmall, fee)
	}
	return Quote{GrossRp: gross, FeeRp: fee, NetRp: net, Rate: rate}, nil
}

// Submit verifies the deposit transaction and credits the user. The hash is
// checked against the used set up front and again atomically at credit time,
// so a deposit can be credited at most once no matter how it is resubmitted.
func (s *Service) Submit(ctx context.Context, userID string, dep Deposit) (*Result, error) {
	if err := s.gate.Allow(ctx, gate.FeatureSell); err != nil {
		return nil, err
	}

	tn, ok := s.cfg.Token(dep.Token, dep.Network)
	if !ok {
		return nil, fmt.Errorf("%w: %s on %s", ErrUnknownAsset, dep.Token, dep.Network)
	}
	asset := chain.Asset{Token: dep.Token, Network: dep.Network, Contract: tn.Contract, Decimals: tn.Decimals}

	used, err := s.ledger.IsUsedTx(ctx, dep.TxHash)
	if err != nil {
		return nil, err
	}
	if used {
		return nil, ledger.ErrDuplicateTx
	}

	chainCtx, cancel := context.WithTimeout(ctx, s.cfg.ChainTimeout)
	delivered, err := s.gateway.DeliveredAmount(chainCtx, asset, dep.TxHash, dep.Sender)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrReceiptMismatch, err)
	}

	// Tolerance-based matching in integer minor units: short delivery beyond
	// 0.5% rejects, over-delivery is accepted without bound.
	expectedWei := chain.ToWei(dep.Quantity, asset.Decimals)
	tolerance := chain.Tolerance(expectedWei)
	if new(big.Int).Add(delivered, tolerance).Cmp(expectedWei) < 0 {
		return nil, fmt.Errorf("%w: delivered %s, declared %s wei",
			ErrShortDelivery, delivered, expectedWei)
	}

	// Value is recomputed from the delivered amount at the current rate, not
	// the earlier estimate.
	deliveredTokens := chain.FromWei(delivered, asset.Decimals)
	rateCtx, cancel := context.WithTimeout(ctx, s.cfg.OracleTimeout)
	rate, err := s.oracle.Rate(rateCtx, dep.Token)
	cancel()
	if err != nil {
		return nil, err
	}

	gross := int64(deliveredTokens * rate)
	fee := s.cfg.MinSellFeeRp
	net := gross - fee
	if net <= 0 {
		return nil, fmt.Errorf("%w: fee is Rp %d", ErrTooSmall, fee)
	}

	unlock := s.ledger.Lock(userID)
	defer unlock()

	rec := domain.DepositRecord{
		TxHash:      dep.TxHash,
		UserID:      userID,
		Token:       dep.Token,
		Network:     dep.Network,
		TokenAmount: strconv.FormatFloat(deliveredTokens, 'f', -1, 64),
		GrossRp:     gross,
		FeeRp:       fee,
		NetRp:       net,
		CreatedAt:   s.now(),
	}
	before, after, err := s.ledger.ConsumeDeposit(ctx, rec)
	if err != nil {
		return nil, err
	}

	zap.L().Info("sell settled",
		zap.String("userID", userID),
		zap.String("txHash", dep.TxHash),
		zap.Int64("net", net))

	s.notifier.NotifyUser(userID, fmt.Sprintf(
		"Sell settled: %.6f %s for Rp %d (fee Rp %d)\nBalance: Rp %d -> Rp %d\nTX: %s",
		deliveredTokens, dep.Token, gross, fee, before, after, dep.TxHash))
	s.notifier.Audit(fmt.Sprintf(
		"SELL user=%s token=%s qty=%.6f gross=Rp%d fee=Rp%d net=Rp%d tx=%s",
		userID, dep.Token, deliveredTokens, gross, fee, net, dep.TxHash))

	return &Result{
		TokenAmount: deliveredTokens,
		GrossRp:     gross,
		FeeRp:       fee,
		NetRp:       net,
		Before:      before,
		After:       after,
		TxHash:      dep.TxHash,
	}, nil
}
