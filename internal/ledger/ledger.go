// Package ledger is the balance guard over the document store. Every balance
// mutation is persisted before the caller proceeds, balances can never go
// negative, and a deposit transaction hash is consumed at most once globally.
package ledger

import (
	"context"
	"errors"
	"sync"

	"github.com/tukarid/tukarbot/internal/domain"
	"github.com/tukarid/tukarbot/internal/store"
	"go.uber.org/zap"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNegativeAmount    = errors.New("amount must not be negative")
	ErrDuplicateTx       = errors.New("transaction hash already used")
)

type Ledger struct {
	store store.Store

	mu       sync.Mutex
	accounts map[string]*sync.Mutex
}

func New(st store.Store) *Ledger {
	return &Ledger{
		store:    st,
		accounts: make(map[string]*sync.Mutex),
	}
}

// Lock takes the per-account mutex and returns its unlock func. Callers must
// hold it across every read-modify-persist sequence touching the account,
// including the external calls made while a debit is pending.
func (l *Ledger) Lock(userID string) func() {
	l.mu.Lock()
	m, ok := l.accounts[userID]
	if !ok {
		m = &sync.Mutex{}
		l.accounts[userID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}

// Account returns the account for userID, creating and persisting a
// zero-balance default if absent.
func (l *Ledger) Account(ctx context.Context, userID string) (domain.Account, error) {
	var acc domain.Account
	created := false
	err := l.store.Update(ctx, func(doc *domain.Document) error {
		if _, ok := doc.Users[userID]; !ok {
			created = true
		}
		acc = *doc.User(userID)
		return nil
	})
	if err != nil {
		return domain.Account{}, err
	}
	if created {
		zap.L().Info("account created", zap.String("userID", userID))
	}
	return acc, nil
}

func (l *Ledger) Balance(ctx context.Context, userID string) (int64, error) {
	acc, err := l.Account(ctx, userID)
	if err != nil {
		return 0, err
	}
	return acc.Balance, nil
}

// Debit subtracts amount from the account and persists, returning an undo
// token recording the pre-debit balance.
func (l *Ledger) Debit(ctx context.Context, userID string, amount int64) (domain.Undo, error) {
	if amount < 0 {
		return domain.Undo{}, ErrNegativeAmount
	}

	var undo domain.Undo
	err := l.store.Update(ctx, func(doc *domain.Document) error {
		acc := doc.User(userID)
		if acc.Balance < amount {
			return ErrInsufficientFunds
		}
		undo = domain.Undo{UserID: userID, AmountRp: amount, Before: acc.Balance}
		acc.Balance -= amount
		return nil
	})
	if err != nil {
		return domain.Undo{}, err
	}
	return undo, nil
}

// Credit adds amount to the account unconditionally and persists.
func (l *Ledger) Credit(ctx context.Context, userID string, amount int64) (before, after int64, err error) {
	if amount < 0 {
		return 0, 0, ErrNegativeAmount
	}

	err = l.store.Update(ctx, func(doc *domain.Document) error {
		acc := doc.User(userID)
		before = acc.Balance
		acc.Balance += amount
		after = acc.Balance
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return before, after, nil
}

// Rollback reverses a prior debit, restoring the exact pre-debit balance.
func (l *Ledger) Rollback(ctx context.Context, undo domain.Undo) error {
	return l.store.Update(ctx, func(doc *domain.Document) error {
		acc := doc.User(undo.UserID)
		acc.Balance += undo.AmountRp
		return nil
	})
}

// IsUsedTx reports whether the hash is already in the used-hash set.
func (l *Ledger) IsUsedTx(ctx context.Context, txHash string) (bool, error) {
	used := false
	err := l.store.View(ctx, func(doc *domain.Document) error {
		_, used = doc.UsedTx[txHash]
		return nil
	})
	return used, err
}

// ConsumeDeposit records the deposit hash and credits its net value in one
// atomic step. The hash check and insert happen under the same update, so a
// hash can never be consumed twice even across racing submissions.
func (l *Ledger) ConsumeDeposit(ctx context.Context, rec domain.DepositRecord) (before, after int64, err error) {
	if rec.NetRp < 0 {
		return 0, 0, ErrNegativeAmount
	}

	err = l.store.Update(ctx, func(doc *domain.Document) error {
		if _, ok := doc.UsedTx[rec.TxHash]; ok {
			return ErrDuplicateTx
		}
		r := rec
		doc.UsedTx[rec.TxHash] = &r

		acc := doc.User(rec.UserID)
		before = acc.Balance
		acc.Balance += rec.NetRp
		after = acc.Balance
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return before, after, nil
}
