// Package store defines the document store behind the ledger: one document
// holding every persisted map, read and mutated atomically as a whole.
package store

import (
	"context"

	"github.com/tukarid/tukarbot/internal/domain"
)

type Store interface {
	// View runs fn against a read-only snapshot of the document.
	View(ctx context.Context, fn func(doc *domain.Document) error) error
	// Update loads the document, applies fn and persists the result as one
	// atomic step. If fn returns an error nothing is written.
	Update(ctx context.Context, fn func(doc *domain.Document) error) error
}
