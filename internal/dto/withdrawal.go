package dto

import (
	"errors"
	"time"

	"github.com/battlearena/battlearena/pkg/validate"
)

type WithdrawalRequestDTO struct {
	Amount int64  `json:"amount" example:"500"`
	UpiID  string `json:"upi_id" example:"player1@upi"`
}

func (r *WithdrawalRequestDTO) Validate() error {
	if r.Amount <= 0 {
		return errors.New("amount must be positive")
	}
	if !validate.IsUPI(r.UpiID) {
		return errors.New("invalid UPI ID format")
	}
	return nil
}

type HandleWithdrawalRequestDTO struct {
	Action string `json:"action" example:"approve"`
	Reason string `json:"reason,omitempty" example:"suspicious activity"`
}

func (r *HandleWithdrawalRequestDTO) Validate() error {
	switch r.Action {
	case "approve":
		return nil
	case "reject":
		if r.Reason == "" {
			return errors.New("reason is required for rejection")
		}
		return nil
	default:
		return errors.New("action must be approve or reject")
	}
}

type WithdrawalResponseDTO struct {
	ID              int        `json:"id"`
	Amount          int64      `json:"amount"`
	UpiID           string     `json:"upi_id"`
	Status          string     `json:"status"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	RequestedAt     time.Time  `json:"requested_at"`
	ProcessedAt     *time.Time `json:"processed_at,omitempty"`
}
