package withdrawals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/battlearena/battlearena/internal/domain"
	"github.com/battlearena/battlearena/internal/dto"
	"github.com/battlearena/battlearena/internal/service/withdrawalservice"
	"github.com/battlearena/battlearena/pkg/auth"
	"github.com/battlearena/battlearena/pkg/utils"
)

type Service interface {
	Request(ctx context.Context, userID int, amount int64, upiID string) (*domain.Withdrawal, error)
	Handle(ctx context.Context, adminID, id int, approve bool, reason, ip string) (*domain.Withdrawal, error)
	GetByUser(ctx context.Context, userID int) ([]domain.Withdrawal, error)
	GetPending(ctx context.Context) ([]domain.Withdrawal, error)
}

type WithdrawalHandler struct {
	withdrawalService Service
}

func New(withdrawalService Service) *WithdrawalHandler {
	return &WithdrawalHandler{
		withdrawalService: withdrawalService,
	}
}

// Request godoc
//
//	@Summary		Request a withdrawal
//	@Description	Open a pending withdrawal to a UPI ID; funds stay in the wallet until approval
//	@Tags			Withdrawals
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.WithdrawalRequestDTO	true	"Amount and UPI ID"
//	@Success		200		{object}	dto.WithdrawalResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request or amount out of bounds"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		403		{object}	utils.Response	"Banned or KYC required"
//	@Failure		409		{object}	utils.Response	"A pending request already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/withdrawals [post]
func (h *WithdrawalHandler) Request(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.WithdrawalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	withdrawal, err := h.withdrawalService.Request(r.Context(), userID, req.Amount, req.UpiID)
	if err != nil {
		switch {
		case errors.Is(err, withdrawalservice.ErrAmountTooLow),
			errors.Is(err, withdrawalservice.ErrAmountTooHigh):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, withdrawalservice.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, withdrawalservice.ErrKycRequired),
			errors.Is(err, withdrawalservice.ErrBanned):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, withdrawalservice.ErrPendingExists):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toWithdrawalDTO(withdrawal))
}

// GetMy godoc
//
//	@Summary		List own withdrawal requests
//	@Tags			Withdrawals
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.WithdrawalResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/withdrawals [get]
func (h *WithdrawalHandler) GetMy(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	list, err := h.withdrawalService.GetByUser(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.WithdrawalResponseDTO, 0, len(list))
	for i := range list {
		response = append(response, toWithdrawalDTO(&list[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetPending godoc
//
//	@Summary		List pending withdrawals
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.WithdrawalResponseDTO
//	@Failure		403	{object}	utils.Response	"Access denied"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals [get]
func (h *WithdrawalHandler) GetPending(w http.ResponseWriter, r *http.Request) {
	list, err := h.withdrawalService.GetPending(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.WithdrawalResponseDTO, 0, len(list))
	for i := range list {
		response = append(response, toWithdrawalDTO(&list[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Handle godoc
//
//	@Summary		Approve or reject a withdrawal
//	@Description	Approval debits the wallet; rejection leaves the balance untouched and records the reason
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int								true	"Withdrawal ID"
//	@Param			request	body		dto.HandleWithdrawalRequestDTO	true	"Resolution"
//	@Success		200		{object}	dto.WithdrawalResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		402		{object}	utils.Response	"Insufficient balance at approval time"
//	@Failure		403		{object}	utils.Response	"Access denied"
//	@Failure		404		{object}	utils.Response	"Withdrawal not found"
//	@Failure		409		{object}	utils.Response	"Already processed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals/{id} [post]
func (h *WithdrawalHandler) Handle(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid withdrawal id")
		return
	}

	var req dto.HandleWithdrawalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	withdrawal, err := h.withdrawalService.Handle(r.Context(), adminID, id, req.Action == "approve", req.Reason, utils.ClientIP(r))
	if err != nil {
		switch {
		case errors.Is(err, withdrawalservice.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, withdrawalservice.ErrAlreadyProcessed):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, withdrawalservice.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toWithdrawalDTO(withdrawal))
}

func toWithdrawalDTO(wd *domain.Withdrawal) dto.WithdrawalResponseDTO {
	return dto.WithdrawalResponseDTO{
		ID:              wd.ID,
		Amount:          wd.Amount,
		UpiID:           wd.UpiID,
		Status:          wd.Status,
		RejectionReason: wd.RejectionReason,
		RequestedAt:     wd.RequestedAt,
		ProcessedAt:     wd.ProcessedAt,
	}
}
