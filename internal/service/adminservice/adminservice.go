// Package adminservice exposes the admin-only controls: feature toggles and
// the maintenance window.
package adminservice

import (
	"context"
	"fmt"
	"time"

	"github.com/tukarid/tukarbot/internal/domain"
	"go.uber.org/zap"
)

// WindowLayout is the admin input format for maintenance windows.
const WindowLayout = "2006-01-02_15:04"

type Gate interface {
	SetFeature(name string, enabled bool) error
	Feature(name string) bool
	SetMaintenance(ctx context.Context, w domain.MaintenanceWindow) error
	ClearMaintenance(ctx context.Context) error
	Maintenance(ctx context.Context) (*domain.MaintenanceWindow, error)
}

type Notifier interface {
	Audit(text string)
}

type Service struct {
	gate     Gate
	notifier Notifier
}

func New(g Gate, notifier Notifier) *Service {
	return &Service{gate: g, notifier: notifier}
}

func (s *Service) ToggleFeature(adminID, feature string, enabled bool) error {
	if err := s.gate.SetFeature(feature, enabled); err != nil {
		return err
	}
	zap.L().Info("feature toggled",
		zap.String("feature", feature),
		zap.Bool("enabled", enabled),
		zap.String("adminID", adminID))
	s.notifier.Audit(fmt.Sprintf("FEATURE %s enabled=%t admin=%s", feature, enabled, adminID))
	return nil
}

func (s *Service) SetMaintenance(ctx context.Context, adminID string, start, end time.Time, reason string) error {
	if reason == "" {
		reason = "-"
	}
	w := domain.MaintenanceWindow{Start: start, End: end, Reason: reason}
	if err := s.gate.SetMaintenance(ctx, w); err != nil {
		return err
	}
	s.notifier.Audit(fmt.Sprintf("MAINTENANCE set %s..%s reason=%s admin=%s",
		start.Format(WindowLayout), end.Format(WindowLayout), reason, adminID))
	return nil
}

func (s *Service) ClearMaintenance(ctx context.Context, adminID string) error {
	if err := s.gate.ClearMaintenance(ctx); err != nil {
		return err
	}
	s.notifier.Audit(fmt.Sprintf("MAINTENANCE cleared admin=%s", adminID))
	return nil
}

func (s *Service) Maintenance(ctx context.Context) (*domain.MaintenanceWindow, error) {
	return s.gate.Maintenance(ctx)
}

// ParseWindow parses the admin-supplied start/end pair.
func ParseWindow(start, end string) (time.Time, time.Time, error) {
	from, err := time.Parse(WindowLayout, start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("bad start time, use %s: %w", WindowLayout, err)
	}
	until, err := time.Parse(WindowLayout, end)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("bad end time, use %s: %w", WindowLayout, err)
	}
	return from, until, nil
}
