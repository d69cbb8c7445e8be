// Package funding exposes the fiat top-up and withdrawal flows plus the
// balance query. Both flows end with a pending request that waits for an
// admin decision; nothing here moves money.
package funding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/tukarid/tukarbot/internal/config"
	"github.com/tukarid/tukarbot/internal/conversation"
	"github.com/tukarid/tukarbot/internal/domain"
	"github.com/tukarid/tukarbot/internal/dto"
	"github.com/tukarid/tukarbot/internal/gate"
	"github.com/tukarid/tukarbot/internal/ledger"
	fundingservice "github.com/tukarid/tukarbot/internal/service/fundingservice"
	"github.com/tukarid/tukarbot/pkg/utils"
	"go.uber.org/zap"
)

type FundingService interface {
	SubmitTopUp(ctx context.Context, userID string, amountRp int64, method, senderName, proofRef string) (*domain.TopUpRequest, error)
	SubmitWithdraw(ctx context.Context, userID string, amountRp int64, method, target, recipient string) (*domain.WithdrawRequest, error)
}

type Ledger interface {
	Account(ctx context.Context, userID string) (domain.Account, error)
}

type Gate interface {
	Allow(ctx context.Context, feature string) error
}

type FundingHandler struct {
	cfg     *config.Config
	funding FundingService
	ledger  Ledger
	gate    Gate
	conv    *conversation.Manager
}

func New(cfg *config.Config, funding FundingService, l Ledger, g Gate, conv *conversation.Manager) *FundingHandler {
	return &FundingHandler{cfg: cfg, funding: funding, ledger: l, gate: g, conv: conv}
}

// Balance godoc
//
//	@Summary	Current rupiah balance
//	@Tags		Funding
//	@Produce	json
//	@Param		userID	path		string	true	"User ID"
//	@Success	200		{object}	dto.BalanceResponseDTO
//	@Router		/api/users/{userID}/balance [get]
func (h *FundingHandler) Balance(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	acc, err := h.ledger.Account(r.Context(), userID)
	if err != nil {
		zap.L().Error("balance lookup failed", zap.String("userID", userID), zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{BalanceRp: acc.Balance, Wallet: acc.Wallet})
}

// StartTopUp godoc
//
//	@Summary	Start a top-up flow
//	@Tags		Funding
//	@Produce	json
//	@Param		userID	path		string	true	"User ID"
//	@Success	200		{object}	dto.FlowStepResponseDTO
//	@Failure	503		{object}	dto.MaintenanceNoticeDTO
//	@Router		/api/flows/{userID}/topup/start [post]
func (h *FundingHandler) StartTopUp(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	if err := h.gate.Allow(r.Context(), ""); err != nil {
		respondGateError(w, err)
		return
	}

	h.conv.Begin(userID, conversation.FlowTopUp, conversation.StepTopUpAmount)
	utils.RespondWithJSON(w, http.StatusOK, dto.FlowStepResponseDTO{
		Flow:    string(conversation.FlowTopUp),
		Step:    string(conversation.StepTopUpAmount),
		Message: fmt.Sprintf("enter amount, minimum Rp %d", h.cfg.MinTopUpRp),
	})
}

func (h *FundingHandler) TopUpAmount(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var req dto.AmountInputDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.AmountRp <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid amount")
		return
	}
	if req.AmountRp < h.cfg.MinTopUpRp {
		utils.RespondWithError(w, http.StatusUnprocessableEntity,
			fmt.Sprintf("minimum top-up is Rp %d", h.cfg.MinTopUpRp))
		return
	}

	st, ok := h.conv.Transition(userID, conversation.StepTopUpAmount, conversation.StepTopUpMethod, func(s *conversation.State) {
		s.TopUp.AmountRp = req.AmountRp
	})
	if !ok {
		respondIgnored(w)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FlowStepResponseDTO{Flow: string(st.Flow), Step: string(st.Step)})
}

// TopUpMethod picks the payment method and returns the transfer instruction
// for it.
func (h *FundingHandler) TopUpMethod(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var req dto.TextInputDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	instruction, known := config.PaymentMethods[req.Value]
	if !known {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "unknown payment method")
		return
	}

	st, ok := h.conv.Transition(userID, conversation.StepTopUpMethod, conversation.StepTopUpName, func(s *conversation.State) {
		s.TopUp.Method = req.Value
	})
	if !ok {
		respondIgnored(w)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TopUpMethodResponseDTO{
		Step:        string(st.Step),
		Method:      req.Value,
		Instruction: instruction,
	})
}

func (h *FundingHandler) TopUpName(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var req dto.TextInputDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Value == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "sender name required")
		return
	}

	st, ok := h.conv.Transition(userID, conversation.StepTopUpName, conversation.StepTopUpProof, func(s *conversation.State) {
		s.TopUp.SenderName = req.Value
	})
	if !ok {
		respondIgnored(w)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FlowStepResponseDTO{Flow: string(st.Flow), Step: string(st.Step)})
}

// TopUpProof godoc
//
//	@Summary	Attach the transfer proof and file the top-up request
//	@Tags		Funding
//	@Accept		json
//	@Produce	json
//	@Param		userID	path		string				true	"User ID"
//	@Param		request	body		dto.TextInputDTO	true	"Proof reference"
//	@Success	200		{object}	dto.FundingRequestResponseDTO
//	@Router		/api/flows/{userID}/topup/proof [post]
func (h *FundingHandler) TopUpProof(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var req dto.TextInputDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	st, ok := h.conv.Finish(userID, conversation.StepTopUpProof, nil)
	if !ok {
		respondIgnored(w)
		return
	}

	out, err := h.funding.SubmitTopUp(r.Context(), userID, st.TopUp.AmountRp, st.TopUp.Method, st.TopUp.SenderName, req.Value)
	if err != nil {
		respondFundingError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.FundingRequestResponseDTO{
		ID:       out.ID,
		Status:   string(out.Status),
		AmountRp: out.AmountRp,
		Message:  "top-up submitted, waiting for admin approval",
	})
}

// StartWithdraw godoc
//
//	@Summary	Start a withdrawal flow
//	@Tags		Funding
//	@Produce	json
//	@Param		userID	path		string	true	"User ID"
//	@Success	200		{object}	dto.WithdrawStartResponseDTO
//	@Router		/api/flows/{userID}/withdraw/start [post]
func (h *FundingHandler) StartWithdraw(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	if err := h.gate.Allow(r.Context(), ""); err != nil {
		respondGateError(w, err)
		return
	}

	h.conv.Begin(userID, conversation.FlowWithdraw, conversation.StepWithdrawMethod)
	utils.RespondWithJSON(w, http.StatusOK, dto.WithdrawStartResponseDTO{
		Step:    string(conversation.StepWithdrawMethod),
		Methods: config.WithdrawMethods,
	})
}

func (h *FundingHandler) WithdrawMethod(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var req dto.TextInputDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	st, ok := h.conv.Transition(userID, conversation.StepWithdrawMethod, conversation.StepWithdrawTarget, func(s *conversation.State) {
		s.Withdraw.Method = req.Value
	})
	if !ok {
		respondIgnored(w)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FlowStepResponseDTO{Flow: string(st.Flow), Step: string(st.Step)})
}

func (h *FundingHandler) WithdrawTarget(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var req dto.TextInputDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Value == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "target account required")
		return
	}

	st, ok := h.conv.Transition(userID, conversation.StepWithdrawTarget, conversation.StepWithdrawName, func(s *conversation.State) {
		s.Withdraw.Target = req.Value
	})
	if !ok {
		respondIgnored(w)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FlowStepResponseDTO{Flow: string(st.Flow), Step: string(st.Step)})
}

func (h *FundingHandler) WithdrawName(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var req dto.TextInputDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Value == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "recipient name required")
		return
	}

	st, ok := h.conv.Transition(userID, conversation.StepWithdrawName, conversation.StepWithdrawAmount, func(s *conversation.State) {
		s.Withdraw.Name = req.Value
	})
	if !ok {
		respondIgnored(w)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FlowStepResponseDTO{Flow: string(st.Flow), Step: string(st.Step)})
}

// WithdrawAmount godoc
//
//	@Summary	Enter the amount and file the withdrawal request
//	@Tags		Funding
//	@Accept		json
//	@Produce	json
//	@Param		userID	path		string				true	"User ID"
//	@Param		request	body		dto.AmountInputDTO	true	"Amount in rupiah"
//	@Success	200		{object}	dto.FundingRequestResponseDTO
//	@Failure	402		{object}	utils.Response	"Insufficient balance"
//	@Router		/api/flows/{userID}/withdraw/amount [post]
func (h *FundingHandler) WithdrawAmount(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var req dto.AmountInputDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.AmountRp <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid amount")
		return
	}

	st, ok := h.conv.Finish(userID, conversation.StepWithdrawAmount, nil)
	if !ok {
		respondIgnored(w)
		return
	}

	out, err := h.funding.SubmitWithdraw(r.Context(), userID, req.AmountRp, st.Withdraw.Method, st.Withdraw.Target, st.Withdraw.Name)
	if err != nil {
		respondFundingError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.FundingRequestResponseDTO{
		ID:       out.ID,
		Status:   string(out.Status),
		AmountRp: out.AmountRp,
		Message:  "withdrawal submitted, waiting for admin approval",
	})
}

func respondIgnored(w http.ResponseWriter) {
	utils.RespondWithJSON(w, http.StatusOK, dto.FlowStepResponseDTO{Ignored: true})
}

func respondGateError(w http.ResponseWriter, err error) {
	var maint *gate.MaintenanceError
	if errors.As(err, &maint) {
		utils.RespondWithJSON(w, http.StatusServiceUnavailable, dto.MaintenanceNoticeDTO{
			Message: "bot is under maintenance, try again later",
			Start:   maint.Window.Start.Format(time.RFC3339),
			End:     maint.Window.End.Format(time.RFC3339),
			Reason:  maint.Window.Reason,
		})
		return
	}
	if errors.Is(err, gate.ErrFeatureDisabled) {
		utils.RespondWithError(w, http.StatusServiceUnavailable, "feature temporarily unavailable")
		return
	}
	zap.L().Error("gate check failed", zap.Error(err))
	utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
}

func respondFundingError(w http.ResponseWriter, err error) {
	var maint *gate.MaintenanceError
	switch {
	case errors.As(err, &maint), errors.Is(err, gate.ErrFeatureDisabled):
		respondGateError(w, err)
	case errors.Is(err, fundingservice.ErrBelowMinimum),
		errors.Is(err, fundingservice.ErrUnknownMethod),
		errors.Is(err, fundingservice.ErrMissingProof):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, ledger.ErrInsufficientFunds):
		utils.RespondWithError(w, http.StatusPaymentRequired, "insufficient balance")
	default:
		zap.L().Error("funding request failed", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
