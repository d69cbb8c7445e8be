// Package admin exposes the operator endpoints: funding decisions, feature
// toggles, and maintenance control. Every route sits behind the admin JWT
// middleware; the acting admin ID is taken from the request context.
package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/tukarid/tukarbot/internal/domain"
	"github.com/tukarid/tukarbot/internal/dto"
	"github.com/tukarid/tukarbot/internal/gate"
	"github.com/tukarid/tukarbot/internal/ledger"
	adminservice "github.com/tukarid/tukarbot/internal/service/adminservice"
	fundingservice "github.com/tukarid/tukarbot/internal/service/fundingservice"
	"github.com/tukarid/tukarbot/pkg/auth"
	"github.com/tukarid/tukarbot/pkg/utils"
	"go.uber.org/zap"
)

type FundingService interface {
	DecideTopUp(ctx context.Context, adminID, id string, approve bool) (*domain.TopUpRequest, error)
	DecideWithdraw(ctx context.Context, adminID, id string, approve bool) (*domain.WithdrawRequest, error)
}

type AdminService interface {
	ToggleFeature(adminID, feature string, enabled bool) error
	SetMaintenance(ctx context.Context, adminID string, start, end time.Time, reason string) error
	ClearMaintenance(ctx context.Context, adminID string) error
	Maintenance(ctx context.Context) (*domain.MaintenanceWindow, error)
}

type AdminHandler struct {
	funding FundingService
	admin   AdminService
}

func New(funding FundingService, admin AdminService) *AdminHandler {
	return &AdminHandler{funding: funding, admin: admin}
}

// DecideTopUp godoc
//
//	@Summary	Approve or reject a pending top-up
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Request ID"
//	@Param		request	body		dto.DecisionRequestDTO	true	"approve or reject"
//	@Success	200		{object}	dto.DecisionResponseDTO
//	@Failure	404		{object}	utils.Response	"Request not found"
//	@Failure	409		{object}	utils.Response	"Already decided"
//	@Router		/api/admin/topups/{id}/decision [post]
func (h *AdminHandler) DecideTopUp(w http.ResponseWriter, r *http.Request) {
	adminID, ok := adminFromContext(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	approve, ok := parseDecision(w, r)
	if !ok {
		return
	}

	out, err := h.funding.DecideTopUp(r.Context(), adminID, chi.URLParam(r, "id"), approve)
	if err != nil {
		respondDecisionError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DecisionResponseDTO{
		ID:       out.ID,
		UserID:   out.UserID,
		AmountRp: out.AmountRp,
		Status:   string(out.Status),
	})
}

// DecideWithdraw godoc
//
//	@Summary	Approve or reject a pending withdrawal
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Request ID"
//	@Param		request	body		dto.DecisionRequestDTO	true	"approve or reject"
//	@Success	200		{object}	dto.DecisionResponseDTO
//	@Failure	402		{object}	utils.Response	"Balance no longer covers the amount"
//	@Failure	409		{object}	utils.Response	"Already decided"
//	@Router		/api/admin/withdraws/{id}/decision [post]
func (h *AdminHandler) DecideWithdraw(w http.ResponseWriter, r *http.Request) {
	adminID, ok := adminFromContext(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	approve, ok := parseDecision(w, r)
	if !ok {
		return
	}

	out, err := h.funding.DecideWithdraw(r.Context(), adminID, chi.URLParam(r, "id"), approve)
	if err != nil {
		respondDecisionError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DecisionResponseDTO{
		ID:       out.ID,
		UserID:   out.UserID,
		AmountRp: out.AmountRp,
		Status:   string(out.Status),
	})
}

// ToggleFeature godoc
//
//	@Summary	Enable or disable a workflow feature
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		name	path		string						true	"Feature name (buy, sell)"
//	@Param		request	body		dto.FeatureToggleRequestDTO	true	"Desired state"
//	@Success	200		{object}	dto.FeatureToggleResponseDTO
//	@Router		/api/admin/features/{name} [post]
func (h *AdminHandler) ToggleFeature(w http.ResponseWriter, r *http.Request) {
	adminID, ok := adminFromContext(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.FeatureToggleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Enabled == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "enabled flag required")
		return
	}

	name := chi.URLParam(r, "name")
	if err := h.admin.ToggleFeature(adminID, name, *req.Enabled); err != nil {
		if errors.Is(err, gate.ErrUnknownFeature) {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		zap.L().Error("feature toggle failed", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FeatureToggleResponseDTO{Feature: name, Enabled: *req.Enabled})
}

// SetMaintenance godoc
//
//	@Summary	Schedule a maintenance window
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.MaintenanceRequestDTO	true	"Window bounds, format 2006-01-02_15:04"
//	@Success	200		{object}	dto.MaintenanceResponseDTO
//	@Router		/api/admin/maintenance [post]
func (h *AdminHandler) SetMaintenance(w http.ResponseWriter, r *http.Request) {
	adminID, ok := adminFromContext(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.MaintenanceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	start, end, err := adminservice.ParseWindow(req.Start, req.End)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := h.admin.SetMaintenance(r.Context(), adminID, start, end, req.Reason); err != nil {
		if errors.Is(err, gate.ErrBadWindow) {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		zap.L().Error("set maintenance failed", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MaintenanceResponseDTO{
		Active: true,
		Start:  start.Format(adminservice.WindowLayout),
		End:    end.Format(adminservice.WindowLayout),
		Reason: req.Reason,
	})
}

func (h *AdminHandler) ClearMaintenance(w http.ResponseWriter, r *http.Request) {
	adminID, ok := adminFromContext(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.admin.ClearMaintenance(r.Context(), adminID); err != nil {
		zap.L().Error("clear maintenance failed", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MaintenanceResponseDTO{Active: false})
}

func (h *AdminHandler) Maintenance(w http.ResponseWriter, r *http.Request) {
	window, err := h.admin.Maintenance(r.Context())
	if err != nil {
		zap.L().Error("maintenance lookup failed", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if window == nil {
		utils.RespondWithJSON(w, http.StatusOK, dto.MaintenanceResponseDTO{Active: false})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MaintenanceResponseDTO{
		Active: true,
		Start:  window.Start.Format(adminservice.WindowLayout),
		End:    window.End.Format(adminservice.WindowLayout),
		Reason: window.Reason,
	})
}

func adminFromContext(r *http.Request) (string, bool) {
	adminID, ok := r.Context().Value(auth.AdminIDKey).(string)
	return adminID, ok && adminID != ""
}

func parseDecision(w http.ResponseWriter, r *http.Request) (approve, ok bool) {
	var req dto.DecisionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return false, false
	}
	switch req.Action {
	case "approve":
		return true, true
	case "reject":
		return false, true
	default:
		utils.RespondWithError(w, http.StatusBadRequest, "action must be approve or reject")
		return false, false
	}
}

func respondDecisionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, fundingservice.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "request not found")
	case errors.Is(err, fundingservice.ErrAlreadyDecided):
		utils.RespondWithError(w, http.StatusConflict, "request already decided")
	case errors.Is(err, ledger.ErrInsufficientFunds):
		utils.RespondWithError(w, http.StatusPaymentRequired, "balance no longer covers the amount")
	default:
		zap.L().Error("funding decision failed", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
