package dto

import (
	"errors"
	"time"

	"github.com/battlearena/battlearena/pkg/validate"
)

type WalletBalanceResponseDTO struct {
	Balance int64 `json:"balance" example:"500"`
}

type InitiateDepositRequestDTO struct {
	Amount int64 `json:"amount" example:"200"`
}

func (r *InitiateDepositRequestDTO) Validate() error {
	if r.Amount <= 0 {
		return errors.New("amount must be positive")
	}
	return nil
}

type InitiateDepositResponseDTO struct {
	TransactionID int       `json:"transaction_id"`
	Reference     string    `json:"reference"`
	ExpiresAt     time.Time `json:"expires_at"`
}

type SubmitUTRRequestDTO struct {
	TransactionID int    `json:"transaction_id" example:"17"`
	UTR           string `json:"utr" example:"123456789012"`
}

func (r *SubmitUTRRequestDTO) Validate() error {
	if r.TransactionID <= 0 {
		return errors.New("transaction id is required")
	}
	if !validate.IsUTR(r.UTR) {
		return errors.New("invalid UTR format, must be 12 digits")
	}
	return nil
}

type ResolveDepositRequestDTO struct {
	Action string `json:"action" example:"approve"`
	Reason string `json:"reason,omitempty" example:"UTR mismatch"`
}

func (r *ResolveDepositRequestDTO) Validate() error {
	if r.Action != "approve" && r.Action != "reject" {
		return errors.New("action must be approve or reject")
	}
	return nil
}

type TransactionResponseDTO struct {
	ID           int       `json:"id"`
	Type         string    `json:"type" example:"entry_fee"`
	Status       string    `json:"status" example:"success"`
	Amount       int64     `json:"amount" example:"100"`
	BalanceAfter int64     `json:"balance_after" example:"400"`
	TournamentID *int      `json:"tournament_id,omitempty"`
	Description  string    `json:"description,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
