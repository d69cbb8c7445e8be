// Package trade exposes the buy and sell conversation steps. Each endpoint
// advances the per-user state machine by exactly one step; an input arriving
// at the wrong step is ignored rather than failing the flow.
package trade

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/tukarid/tukarbot/internal/config"
	"github.com/tukarid/tukarbot/internal/conversation"
	"github.com/tukarid/tukarbot/internal/dto"
	"github.com/tukarid/tukarbot/internal/gate"
	"github.com/tukarid/tukarbot/internal/ledger"
	"github.com/tukarid/tukarbot/internal/rates"
	buyservice "github.com/tukarid/tukarbot/internal/service/buyservice"
	sellservice "github.com/tukarid/tukarbot/internal/service/sellservice"
	"github.com/tukarid/tukarbot/pkg/utils"
	"github.com/tukarid/tukarbot/pkg/validate"
	"go.uber.org/zap"
)

type BuyService interface {
	Quote(amountRp int64) (buyservice.Quote, error)
	Execute(ctx context.Context, userID string, ord buyservice.Order) (*buyservice.Result, error)
}

type SellService interface {
	Quote(ctx context.Context, token string, quantity float64) (sellservice.Quote, error)
	Submit(ctx context.Context, userID string, dep sellservice.Deposit) (*sellservice.Result, error)
}

type Gate interface {
	Allow(ctx context.Context, feature string) error
}

type Oracle interface {
	Rates(ctx context.Context, tokens []string) (map[string]float64, error)
}

type TradeHandler struct {
	cfg       *config.Config
	buy       BuyService
	sell      SellService
	gate      Gate
	oracle    Oracle
	conv      *conversation.Manager
	hotWallet string
}

func New(cfg *config.Config, buy BuyService, sell SellService, g Gate, oracle Oracle, conv *conversation.Manager, hotWallet string) *TradeHandler {
	return &TradeHandler{
		cfg:       cfg,
		buy:       buy,
		sell:      sell,
		gate:      g,
		oracle:    oracle,
		conv:      conv,
		hotWallet: hotWallet,
	}
}

// StartBuy godoc
//
//	@Summary	Start a buy flow
//	@Tags		Trade
//	@Produce	json
//	@Param		userID	path		string	true	"User ID"
//	@Success	200		{object}	dto.BuyStartResponseDTO
//	@Failure	503		{object}	dto.MaintenanceNoticeDTO	"Maintenance or feature disabled"
//	@Router		/api/flows/{userID}/buy/start [post]
func (h *TradeHandler) StartBuy(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	if err := h.gate.Allow(r.Context(), gate.FeatureBuy); err != nil {
		respondGateError(w, err)
		return
	}

	h.conv.Begin(userID, conversation.FlowBuy, conversation.StepBuyToken)

	// Rate preview is best effort: a failed lookup must not block the flow.
	ratesRp, err := h.oracle.Rates(r.Context(), h.cfg.Tokens())
	if err != nil {
		zap.L().Warn("rate preview failed", zap.Error(err))
		ratesRp = nil
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.BuyStartResponseDTO{
		Step:    string(conversation.StepBuyToken),
		Tokens:  h.cfg.Tokens(),
		RatesRp: ratesRp,
	})
}

func (h *TradeHandler) BuyToken(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var req dto.TextInputDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(h.cfg.NetworksFor(req.Value)) == 0 {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "unknown token")
		return
	}

	st, ok := h.conv.Transition(userID, conversation.StepBuyToken, conversation.StepBuyNetwork, func(s *conversation.State) {
		s.Buy.Token = req.Value
	})
	if !ok {
		respondIgnored(w)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FlowStepResponseDTO{Flow: string(st.Flow), Step: string(st.Step)})
}

func (h *TradeHandler) BuyNetwork(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var req dto.TextInputDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cur, ok := h.conv.Peek(userID)
	if !ok || cur.Step != conversation.StepBuyNetwork {
		respondIgnored(w)
		return
	}
	if _, found := h.cfg.Token(cur.Buy.Token, req.Value); !found {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "unknown network for token")
		return
	}

	st, ok := h.conv.Transition(userID, conversation.StepBuyNetwork, conversation.StepBuyAmount, func(s *conversation.State) {
		s.Buy.Network = req.Value
	})
	if !ok {
		respondIgnored(w)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FlowStepResponseDTO{Flow: string(st.Flow), Step: string(st.Step)})
}

func (h *TradeHandler) BuyAmount(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var req dto.AmountInputDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.AmountRp <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid amount")
		return
	}

	quote, err := h.buy.Quote(req.AmountRp)
	if err != nil {
		respondTradeError(w, err)
		return
	}

	st, ok := h.conv.Transition(userID, conversation.StepBuyAmount, conversation.StepBuyWallet, func(s *conversation.State) {
		s.Buy.AmountRp = quote.AmountRp
		s.Buy.FeeRp = quote.FeeRp
		s.Buy.NetRp = quote.NetRp
	})
	if !ok {
		respondIgnored(w)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BuyQuoteResponseDTO{
		Step:     string(st.Step),
		AmountRp: quote.AmountRp,
		FeeRp:    quote.FeeRp,
		NetRp:    quote.NetRp,
	})
}

func (h *TradeHandler) BuyWallet(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var req dto.TextInputDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !validate.IsEVMAddress(req.Value) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "invalid wallet address")
		return
	}

	st, ok := h.conv.Transition(userID, conversation.StepBuyWallet, conversation.StepBuyConfirm, func(s *conversation.State) {
		s.Buy.Wallet = validate.ChecksumAddress(req.Value)
	})
	if !ok {
		respondIgnored(w)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FlowStepResponseDTO{Flow: string(st.Flow), Step: string(st.Step)})
}

// BuyConfirm godoc
//
//	@Summary	Confirm and settle a buy
//	@Tags		Trade
//	@Accept		json
//	@Produce	json
//	@Param		userID	path		string					true	"User ID"
//	@Param		request	body		dto.ConfirmInputDTO		true	"Confirmation"
//	@Success	200		{object}	dto.BuyResultResponseDTO
//	@Failure	402		{object}	utils.Response	"Insufficient balance"
//	@Failure	409		{object}	utils.Response	"Insufficient hot wallet liquidity"
//	@Failure	502		{object}	utils.Response	"Broadcast or oracle failure"
//	@Router		/api/flows/{userID}/buy/confirm [post]
func (h *TradeHandler) BuyConfirm(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var req dto.ConfirmInputDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !req.Confirm {
		h.conv.Cancel(userID)
		utils.RespondWithJSON(w, http.StatusOK, dto.FlowStepResponseDTO{Message: "buy cancelled"})
		return
	}

	st, ok := h.conv.Finish(userID, conversation.StepBuyConfirm, nil)
	if !ok {
		respondIgnored(w)
		return
	}

	res, err := h.buy.Execute(r.Context(), userID, buyservice.Order{
		Token:    st.Buy.Token,
		Network:  st.Buy.Network,
		AmountRp: st.Buy.AmountRp,
		Wallet:   st.Buy.Wallet,
	})
	if err != nil {
		respondTradeError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.BuyResultResponseDTO{
		Token:       res.Token,
		Network:     res.Network,
		AmountRp:    res.AmountRp,
		FeeRp:       res.FeeRp,
		NetRp:       res.NetRp,
		TokenAmount: res.TokenAmount,
		TxHash:      res.TxHash,
		BalanceRp:   res.Balance,
	})
}

// StartSell godoc
//
//	@Summary	Start a sell flow
//	@Tags		Trade
//	@Produce	json
//	@Param		userID	path		string	true	"User ID"
//	@Success	200		{object}	dto.BuyStartResponseDTO
//	@Router		/api/flows/{userID}/sell/start [post]
func (h *TradeHandler) StartSell(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	if err := h.gate.Allow(r.Context(), gate.FeatureSell); err != nil {
		respondGateError(w, err)
		return
	}

	h.conv.Begin(userID, conversation.FlowSell, conversation.StepSellToken)

	ratesRp, err := h.oracle.Rates(r.Context(), h.cfg.Tokens())
	if err != nil {
		zap.L().Warn("rate preview failed", zap.Error(err))
		ratesRp = nil
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.BuyStartResponseDTO{
		Step:    string(conversation.StepSellToken),
		Tokens:  h.cfg.Tokens(),
		RatesRp: ratesRp,
	})
}

func (h *TradeHandler) SellToken(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var req dto.TextInputDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(h.cfg.NetworksFor(req.Value)) == 0 {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "unknown token")
		return
	}

	st, ok := h.conv.Transition(userID, conversation.StepSellToken, conversation.StepSellNetwork, func(s *conversation.State) {
		s.Sell.Token = req.Value
	})
	if !ok {
		respondIgnored(w)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FlowStepResponseDTO{Flow: string(st.Flow), Step: string(st.Step)})
}

func (h *TradeHandler) SellNetwork(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var req dto.TextInputDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cur, ok := h.conv.Peek(userID)
	if !ok || cur.Step != conversation.StepSellNetwork {
		respondIgnored(w)
		return
	}
	if _, found := h.cfg.Token(cur.Sell.Token, req.Value); !found {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "unknown network for token")
		return
	}

	st, ok := h.conv.Transition(userID, conversation.StepSellNetwork, conversation.StepSellSender, func(s *conversation.State) {
		s.Sell.Network = req.Value
	})
	if !ok {
		respondIgnored(w)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FlowStepResponseDTO{Flow: string(st.Flow), Step: string(st.Step)})
}

func (h *TradeHandler) SellSender(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var req dto.TextInputDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !validate.IsEVMAddress(req.Value) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "invalid sender address")
		return
	}

	st, ok := h.conv.Transition(userID, conversation.StepSellSender, conversation.StepSellAmount, func(s *conversation.State) {
		s.Sell.Sender = validate.ChecksumAddress(req.Value)
	})
	if !ok {
		respondIgnored(w)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FlowStepResponseDTO{Flow: string(st.Flow), Step: string(st.Step)})
}

func (h *TradeHandler) SellAmount(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var req dto.QuantityInputDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Quantity <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid quantity")
		return
	}

	cur, ok := h.conv.Peek(userID)
	if !ok || cur.Step != conversation.StepSellAmount {
		respondIgnored(w)
		return
	}

	quote, err := h.sell.Quote(r.Context(), cur.Sell.Token, req.Quantity)
	if err != nil {
		respondTradeError(w, err)
		return
	}

	st, ok := h.conv.Transition(userID, conversation.StepSellAmount, conversation.StepSellTx, func(s *conversation.State) {
		s.Sell.Quantity = req.Quantity
		s.Sell.GrossRp = quote.GrossRp
		s.Sell.FeeRp = quote.FeeRp
		s.Sell.NetRp = quote.NetRp
	})
	if !ok {
		respondIgnored(w)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SellQuoteResponseDTO{
		Step:      string(st.Step),
		GrossRp:   quote.GrossRp,
		FeeRp:     quote.FeeRp,
		NetRp:     quote.NetRp,
		RateRp:    quote.Rate,
		HotWallet: h.hotWallet,
	})
}

// SellTx godoc
//
//	@Summary	Submit the deposit transaction hash and settle the sell
//	@Tags		Trade
//	@Accept		json
//	@Produce	json
//	@Param		userID	path		string				true	"User ID"
//	@Param		request	body		dto.TextInputDTO	true	"Transaction hash"
//	@Success	200		{object}	dto.SellResultResponseDTO
//	@Failure	409		{object}	utils.Response	"Hash already used"
//	@Failure	422		{object}	utils.Response	"Receipt verification failed"
//	@Router		/api/flows/{userID}/sell/tx [post]
func (h *TradeHandler) SellTx(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var req dto.TextInputDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !validate.IsTxHash(req.Value) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "invalid transaction hash")
		return
	}

	st, ok := h.conv.Finish(userID, conversation.StepSellTx, nil)
	if !ok {
		respondIgnored(w)
		return
	}

	res, err := h.sell.Submit(r.Context(), userID, sellservice.Deposit{
		Token:    st.Sell.Token,
		Network:  st.Sell.Network,
		Sender:   st.Sell.Sender,
		Quantity: st.Sell.Quantity,
		TxHash:   req.Value,
	})
	if err != nil {
		// A mismatched receipt leaves the hash unconsumed; let the user
		// retry with a corrected hash from the same step.
		if errors.Is(err, sellservice.ErrReceiptMismatch) || errors.Is(err, sellservice.ErrShortDelivery) {
			h.conv.Begin(userID, conversation.FlowSell, conversation.StepSellTx)
			h.conv.Transition(userID, conversation.StepSellTx, conversation.StepSellTx, func(s *conversation.State) {
				s.Sell = st.Sell
			})
		}
		respondTradeError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.SellResultResponseDTO{
		TokenAmount: res.TokenAmount,
		GrossRp:     res.GrossRp,
		FeeRp:       res.FeeRp,
		NetRp:       res.NetRp,
		BeforeRp:    res.Before,
		AfterRp:     res.After,
		TxHash:      res.TxHash,
	})
}

// Cancel discards the user's in-progress flow, whatever step it is at.
func (h *TradeHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	if h.conv.Cancel(userID) {
		utils.RespondWithJSON(w, http.StatusOK, dto.FlowStepResponseDTO{Message: "flow cancelled"})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FlowStepResponseDTO{Message: "nothing to cancel"})
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

func respondTradeError(w http.ResponseWriter, err error) {
	var maint *gate.MaintenanceError
	switch {
	case errors.As(err, &maint), errors.Is(err, gate.ErrFeatureDisabled):
		respondGateError(w, err)
	case errors.Is(err, buyservice.ErrBelowMinimum),
		errors.Is(err, buyservice.ErrFeeExceedsAmount),
		errors.Is(err, buyservice.ErrUnknownAsset),
		errors.Is(err, sellservice.ErrUnknownAsset),
		errors.Is(err, sellservice.ErrTooSmall),
		errors.Is(err, sellservice.ErrShortDelivery),
		errors.Is(err, sellservice.ErrReceiptMismatch):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, ledger.ErrInsufficientFunds):
		utils.RespondWithError(w, http.StatusPaymentRequired, "insufficient balance")
	case errors.Is(err, ledger.ErrDuplicateTx):
		utils.RespondWithError(w, http.StatusConflict, "transaction hash already used")
	case errors.Is(err, buyservice.ErrInsufficientLiquidity):
		utils.RespondWithError(w, http.StatusConflict, "hot wallet liquidity is insufficient, try a smaller amount")
	case errors.Is(err, rates.ErrRateUnavailable):
		utils.RespondWithError(w, http.StatusBadGateway, "price oracle unavailable, try again later")
	case errors.Is(err, buyservice.ErrSendFailed):
		utils.RespondWithError(w, http.StatusBadGateway, "transfer failed, balance was restored")
	default:
		zap.L().Error("trade request failed", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
