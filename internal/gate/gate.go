// Package gate guards every workflow entry point: per-feature enable flags
// (admin-toggled, process-wide) and the persisted maintenance window.
package gate

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/tukarid/tukarbot/internal/domain"
	"github.com/tukarid/tukarbot/internal/store"
)

const (
	FeatureBuy  = "buy"
	FeatureSell = "sell"
)

var (
	ErrFeatureDisabled = errors.New("feature temporarily unavailable")
	ErrUnknownFeature  = errors.New("unknown feature")
	ErrBadWindow       = errors.New("maintenance window end must be after start")
)

// MaintenanceError carries the active window so the rejection can show its
// timestamps and reason.
type MaintenanceError struct {
	Window domain.MaintenanceWindow
}

func (e *MaintenanceError) Error() string {
	return fmt.Sprintf("maintenance from %s until %s: %s",
		e.Window.Start.Format(time.RFC3339), e.Window.End.Format(time.RFC3339), e.Window.Reason)
}

type Gate struct {
	store store.Store
	now   func() time.Time

	mu       sync.RWMutex
	features map[string]bool
}

func New(st store.Store) *Gate {
	return &Gate{
		store: st,
		now:   time.Now,
		features: map[string]bool{
			FeatureBuy:  true,
			FeatureSell: true,
		},
	}
}

// Allow rejects when an active maintenance window covers now, or when the
// named feature is toggled off. An empty feature checks maintenance only.
func (g *Gate) Allow(ctx context.Context, feature string) error {
	var window *domain.MaintenanceWindow
	err := g.store.View(ctx, func(doc *domain.Document) error {
		if doc.Maintenance != nil {
			w := *doc.Maintenance
			window = &w
		}
		return nil
	})
	if err != nil {
		return err
	}
	if window != nil && window.Active(g.now()) {
		return &MaintenanceError{Window: *window}
	}

	if feature == "" {
		return nil
	}

	g.mu.RLock()
	enabled, known := g.features[feature]
	g.mu.RUnlock()
	if !known {
		return fmt.Errorf("%w: %s", ErrUnknownFeature, feature)
	}
	if !enabled {
		return fmt.Errorf("%w: %s", ErrFeatureDisabled, feature)
	}
	return nil
}

func (g *Gate) Feature(name string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.features[name]
}

func (g *Gate) SetFeature(name string, enabled bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.features[name]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownFeature, name)
	}
	g.features[name] = enabled
	return nil
}

func (g *Gate) SetMaintenance(ctx context.Context, w domain.MaintenanceWindow) error {
	if !w.End.After(w.Start) {
		return ErrBadWindow
	}
	return g.store.Update(ctx, func(doc *domain.Document) error {
		doc.Maintenance = &w
		return nil
	})
}

func (g *Gate) ClearMaintenance(ctx context.Context) error {
	return g.store.Update(ctx, func(doc *domain.Document) error {
		doc.Maintenance = nil
		return nil
	})
}

func (g *Gate) Maintenance(ctx context.Context) (*domain.MaintenanceWindow, error) {
	var window *domain.MaintenanceWindow
	err := g.store.View(ctx, func(doc *domain.Document) error {
		if doc.Maintenance != nil {
			w := *doc.Maintenance
			window = &w
		}
		return nil
	})
	return window, err
}
