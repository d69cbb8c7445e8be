// Package fundingservice handles the two-phase fiat workflows: a user
// submission creates a pending record, an admin decision finalizes it
// exactly once. Withdraw approval re-checks the balance at decision time
// because submission places no hold.
package fundingservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tukarid/tukarbot/internal/config"
	"github.com/tukarid/tukarbot/internal/domain"
	"github.com/tukarid/tukarbot/internal/ledger"
	"github.com/tukarid/tukarbot/internal/store"
	"go.uber.org/zap"
)

var (
	ErrBelowMinimum   = errors.New("amount below minimum")
	ErrUnknownMethod  = errors.New("unknown method")
	ErrNotFound       = errors.New("request not found")
	ErrAlreadyDecided = errors.New("request already decided")
	ErrMissingProof   = errors.New("transfer proof required")
)

type Ledger interface {
	Lock(userID string) func()
	Balance(ctx context.Context, userID string) (int64, error)
}

type Gate interface {
	Allow(ctx context.Context, feature string) error
}

type Notifier interface {
	NotifyUser(userID, text string)
	NotifyAdmins(text string)
	Audit(text string)
}

type Service struct {
	cfg      *config.Config
	store    store.Store
	ledger   Ledger
	gate     Gate
	notifier Notifier
	now      func() time.Time
}

func New(cfg *config.Config, st store.Store, l Ledger, g Gate, notifier Notifier) *Service {
	return &Service{
		cfg:      cfg,
		store:    st,
		ledger:   l,
		gate:     g,
		notifier: notifier,
		now:      time.Now,
	}
}

// SubmitTopUp creates a pending top-up after the off-chain transfer proof is
// collected. No balance changes until an admin approves.
func (s *Service) SubmitTopUp(ctx context.Context, userID string, amountRp int64, method, senderName, proofRef string) (*domain.TopUpRequest, error) {
	if err := s.gate.Allow(ctx, ""); err != nil {
		return nil, err
	}
	if amountRp < s.cfg.MinTopUpRp {
		return nil, fmt.Errorf("%w: minimum is Rp %d", ErrBelowMinimum, s.cfg.MinTopUpRp)
	}
	if _, ok := config.PaymentMethods[method]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, method)
	}
	if proofRef == "" {
		return nil, ErrMissingProof
	}

	req := &domain.TopUpRequest{
		ID:         uuid.NewString(),
		UserID:     userID,
		AmountRp:   amountRp,
		Method:     method,
		SenderName: senderName,
		ProofRef:   proofRef,
		Status:     domain.StatusPending,
		CreatedAt:  s.now(),
	}
	if err := s.store.Update(ctx, func(doc *domain.Document) error {
		doc.TopUps[req.ID] = req
		return nil
	}); err != nil {
		return nil, err
	}

	s.notifier.NotifyAdmins(fmt.Sprintf(
		"TOPUP REQUEST %s\nuser=%s amount=Rp%d method=%s sender=%s proof=%s",
		req.ID, userID, amountRp, method, senderName, proofRef))
	return req, nil
}

// SubmitWithdraw creates a pending withdrawal. The balance is checked now
// but not reserved; approval re-checks it.
func (s *Service) SubmitWithdraw(ctx context.Context, userID string, amountRp int64, method, target, recipient string) (*domain.WithdrawRequest, error) {
	if err := s.gate.Allow(ctx, ""); err != nil {
		return nil, err
	}
	if amountRp < s.cfg.MinWithdrawRp {
		return nil, fmt.Errorf("%w: minimum is Rp %d", ErrBelowMinimum, s.cfg.MinWithdrawRp)
	}
	if !withdrawMethodKnown(method) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, method)
	}

	balance, err := s.ledger.Balance(ctx, userID)
	if err != nil {
		return nil, err
	}
	if balance < amountRp {
		return nil, ledger.ErrInsufficientFunds
	}

	req := &domain.WithdrawRequest{
		ID:        uuid.NewString(),
		UserID:    userID,
		AmountRp:  amountRp,
		Method:    method,
		Target:    target,
		Recipient: recipient,
		Status:    domain.StatusPending,
		CreatedAt: s.now(),
	}
	if err := s.store.Update(ctx, func(doc *domain.Document) error {
		doc.Withdraws[req.ID] = req
		return nil
	}); err != nil {
		return nil, err
	}

	s.notifier.NotifyAdmins(fmt.Sprintf(
		"WITHDRAW REQUEST %s\nuser=%s amount=Rp%d method=%s target=%s recipient=%s",
		req.ID, userID, amountRp, method, target, recipient))
	s.notifier.Audit(fmt.Sprintf("WITHDRAW REQUEST id=%s user=%s amount=Rp%d", req.ID, userID, amountRp))
	return req, nil
}

// DecideTopUp finalizes a pending top-up. The terminal transition and the
// credit happen in one atomic document update, so a record can never pay out
// twice.
func (s *Service) DecideTopUp(ctx context.Context, adminID, id string, approve bool) (*domain.TopUpRequest, error) {
	var userID string
	if err := s.store.View(ctx, func(doc *domain.Document) error {
		req, ok := doc.TopUps[id]
		if !ok {
			return ErrNotFound
		}
		userID = req.UserID
		return nil
	}); err != nil {
		return nil, err
	}

	unlock := s.ledger.Lock(userID)
	defer unlock()

	var out domain.TopUpRequest
	decidedAt := s.now()
	err := s.store.Update(ctx, func(doc *domain.Document) error {
		req, ok := doc.TopUps[id]
		if !ok {
			return ErrNotFound
		}
		if req.Status != domain.StatusPending {
			return ErrAlreadyDecided
		}
		if approve {
			doc.User(req.UserID).Balance += req.AmountRp
			req.Status = domain.StatusApproved
		} else {
			req.Status = domain.StatusRejected
		}
		req.DecidedBy = adminID
		req.DecidedAt = &decidedAt
		out = *req
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.report("TOPUP", out.UserID, out.AmountRp, out.Status, adminID)
	return &out, nil
}

// DecideWithdraw finalizes a pending withdrawal. Approval re-checks the
// balance at this moment and fails visibly if the funds are gone.
func (s *Service) DecideWithdraw(ctx context.Context, adminID, id string, approve bool) (*domain.WithdrawRequest, error) {
	var userID string
	if err := s.store.View(ctx, func(doc *domain.Document) error {
		req, ok := doc.Withdraws[id]
		if !ok {
			return ErrNotFound
		}
		userID = req.UserID
		return nil
	}); err != nil {
		return nil, err
	}

	unlock := s.ledger.Lock(userID)
	defer unlock()

	var out domain.WithdrawRequest
	decidedAt := s.now()
	err := s.store.Update(ctx, func(doc *domain.Document) error {
		req, ok := doc.Withdraws[id]
		if !ok {
			return ErrNotFound
		}
		if req.Status != domain.StatusPending {
			return ErrAlreadyDecided
		}
		if approve {
			acc := doc.User(req.UserID)
			if acc.Balance < req.AmountRp {
				return ledger.ErrInsufficientFunds
			}
			acc.Balance -= req.AmountRp
			req.Status = domain.StatusApproved
		} else {
			req.Status = domain.StatusRejected
		}
		req.DecidedBy = adminID
		req.DecidedAt = &decidedAt
		out = *req
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.report("WITHDRAW", out.UserID, out.AmountRp, out.Status, adminID)
	return &out, nil
}

func (s *Service) report(kind, userID string, amountRp int64, status domain.RequestStatus, adminID string) {
	zap.L().Info("funding request decided",
		zap.String("kind", kind),
		zap.String("userID", userID),
		zap.String("status", string(status)),
		zap.String("adminID", adminID))

	verdict := "approved"
	if status == domain.StatusRejected {
		verdict = "rejected"
	}
	s.notifier.NotifyUser(userID, fmt.Sprintf("%s of Rp %d was %s by admin.", kind, amountRp, verdict))
	s.notifier.Audit(fmt.Sprintf("%s %s user=%s amount=Rp%d admin=%s", kind, verdict, userID, amountRp, adminID))
}

func withdrawMethodKnown(method string) bool {
	for _, m := range config.WithdrawMethods {
		if m == method {
			return true
		}
	}
	return false
}
