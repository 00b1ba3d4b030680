package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/battlearena/battlearena/internal/domain"
	"github.com/battlearena/battlearena/internal/dto"
	"github.com/battlearena/battlearena/internal/service/walletservice"
	"github.com/battlearena/battlearena/pkg/auth"
	"github.com/battlearena/battlearena/pkg/utils"
)

type Service interface {
	GetBalance(ctx context.Context, userID int) (int64, error)
	GetHistory(ctx context.Context, userID int) ([]domain.Transaction, error)
	InitiateDeposit(ctx context.Context, userID int, amount int64) (*domain.Transaction, error)
	SubmitUTR(ctx context.Context, transactionID int, utr string) error
	ResolveDeposit(ctx context.Context, adminID, transactionID int, approve bool, reason, ip string) (*domain.Transaction, error)
	GetPendingDeposits(ctx context.Context) ([]domain.Transaction, error)
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// GetBalance godoc
//
//	@Summary		Get wallet balance
//	@Description	Current wallet balance of the authenticated player
//	@Tags			Wallet
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.WalletBalanceResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/balance [get]
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	balance, err := h.walletService.GetBalance(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WalletBalanceResponseDTO{Balance: balance})
}

// GetHistory godoc
//
//	@Summary		Get transaction history
//	@Description	Ledger entries of the authenticated player, newest first
//	@Tags			Wallet
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.TransactionResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/transactions [get]
func (h *WalletHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	transactions, err := h.walletService.GetHistory(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.TransactionResponseDTO, 0, len(transactions))
	for _, t := range transactions {
		response = append(response, toTransactionDTO(&t))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// InitiateDeposit godoc
//
//	@Summary		Initiate a deposit
//	@Description	Open a pending deposit with a payment reference and expiry
//	@Tags			Wallet
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.InitiateDepositRequestDTO	true	"Deposit amount"
//	@Success		200		{object}	dto.InitiateDepositResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Account banned"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/deposit [post]
func (h *WalletHandler) InitiateDeposit(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.InitiateDepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	tx, err := h.walletService.InitiateDeposit(r.Context(), userID, req.Amount)
	if err != nil {
		if errors.Is(err, walletservice.ErrBanned) {
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.InitiateDepositResponseDTO{
		TransactionID: tx.ID,
		Reference:     tx.Reference,
		ExpiresAt:     *tx.ExpiresAt,
	})
}

// SubmitUTR godoc
//
//	@Summary		Submit a UTR for a pending deposit
//	@Description	Attach the 12-digit bank UTR to a pending deposit for review
//	@Tags			Wallet
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.SubmitUTRRequestDTO	true	"Transaction and UTR"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Transaction not found"
//	@Failure		409		{object}	utils.Response	"UTR already used or transaction processed"
//	@Failure		410		{object}	utils.Response	"Deposit expired"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/deposit/utr [post]
func (h *WalletHandler) SubmitUTR(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmitUTRRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	err := h.walletService.SubmitUTR(r.Context(), req.TransactionID, req.UTR)
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, walletservice.ErrDuplicateUTR), errors.Is(err, walletservice.ErrAlreadyProcessed):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, walletservice.ErrExpired):
			utils.RespondWithError(w, http.StatusGone, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "UTR submitted for verification"})
}

// GetPendingDeposits godoc
//
//	@Summary		List pending deposits
//	@Description	Deposits awaiting manual verification
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.TransactionResponseDTO
//	@Failure		403	{object}	utils.Response	"Access denied"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/deposits [get]
func (h *WalletHandler) GetPendingDeposits(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.walletService.GetPendingDeposits(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.TransactionResponseDTO, 0, len(transactions))
	for _, t := range transactions {
		response = append(response, toTransactionDTO(&t))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ResolveDeposit godoc
//
//	@Summary		Approve or reject a pending deposit
//	@Description	Approving credits the player's wallet; rejecting records the reason
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int							true	"Transaction ID"
//	@Param			request	body		dto.ResolveDepositRequestDTO	true	"Resolution"
//	@Success		200		{object}	dto.TransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		403		{object}	utils.Response	"Access denied"
//	@Failure		404		{object}	utils.Response	"Transaction not found"
//	@Failure		409		{object}	utils.Response	"Transaction already processed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/deposits/{id} [post]
func (h *WalletHandler) ResolveDeposit(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int)

	txID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid transaction id")
		return
	}

	var req dto.ResolveDepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	tx, err := h.walletService.ResolveDeposit(r.Context(), adminID, txID, req.Action == "approve", req.Reason, utils.ClientIP(r))
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, walletservice.ErrAlreadyProcessed):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toTransactionDTO(tx))
}

func toTransactionDTO(t *domain.Transaction) dto.TransactionResponseDTO {
	return dto.TransactionResponseDTO{
		ID:           t.ID,
		Type:         t.Type,
		Status:       t.Status,
		Amount:       t.Amount,
		BalanceAfter: t.BalanceAfter,
		TournamentID: t.TournamentID,
		Description:  t.Description,
		CreatedAt:    t.CreatedAt,
	}
}
