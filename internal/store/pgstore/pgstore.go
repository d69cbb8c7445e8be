// Package pgstore keeps the ledger document in a single JSONB row. Updates
// lock the row inside a transaction, so concurrent writers serialize on the
// database instead of clobbering each other.
package pgstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/tukarid/tukarbot/internal/domain"
	"github.com/tukarid/tukarbot/internal/pg"
	"go.uber.org/zap"
)

const (
	documentID    = 1
	updateRetries = 3
	retryInterval = time.Millisecond * 100
)

type Store struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Store {
	return &Store{
		db:        db,
		txManager: txManager,
	}
}

func (s *Store) View(ctx context.Context, fn func(doc *domain.Document) error) error {
	query := `
        SELECT payload
        FROM ledger_document
        WHERE id = $1
    `
	var payload []byte
	if err := s.db.QueryRow(ctx, query, documentID).Scan(&payload); err != nil {
		zap.L().Error("failed to read ledger document", zap.Error(err))
		return err
	}

	doc, err := decode(payload)
	if err != nil {
		return err
	}
	return fn(doc)
}

// retryableError marks infrastructure failures; errors returned by the
// caller's fn are never retried.
type retryableError struct{ err error }

func (e *retryableError) Error() string { return e.err.Error() }
func (e *retryableError) Unwrap() error { return e.err }

func (s *Store) Update(ctx context.Context, fn func(doc *domain.Document) error) error {
	var err error
	for attempt := 1; attempt <= updateRetries; attempt++ {
		err = s.update(ctx, fn)
		var re *retryableError
		if !errors.As(err, &re) || ctx.Err() != nil {
			return err
		}
		zap.L().Warn("ledger document update failed, retrying", zap.Int("attempt", attempt), zap.Error(err))
		time.Sleep(retryInterval * time.Duration(attempt))
	}
	var re *retryableError
	if errors.As(err, &re) {
		return re.err
	}
	return err
}

func (s *Store) update(ctx context.Context, fn func(doc *domain.Document) error) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		query := `
        SELECT payload
        FROM ledger_document
        WHERE id = $1
        FOR UPDATE
    `
		var payload []byte
		if err := s.db.QueryRow(ctx, query, documentID).Scan(&payload); err != nil {
			return &retryableError{err: fmt.Errorf("can't lock ledger document: %w", err)}
		}

		doc, err := decode(payload)
		if err != nil {
			return err
		}
		if err := fn(doc); err != nil {
			return err
		}

		updated, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("can't marshal ledger document: %w", err)
		}

		updateQuery := `
        UPDATE ledger_document
        SET payload = $1
        WHERE id = $2
    `
		if _, err := s.db.Exec(ctx, updateQuery, updated, documentID); err != nil {
			return &retryableError{err: fmt.Errorf("can't write ledger document: %w", err)}
		}
		return nil
	})
}

func decode(payload []byte) (*domain.Document, error) {
	doc := domain.NewDocument()
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, doc); err != nil {
			return nil, fmt.Errorf("can't decode ledger document: %w", err)
		}
	}
	doc.Normalize()
	return doc, nil
}
