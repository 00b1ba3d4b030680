package dto

import (
	"errors"
	"time"
)

type DisputeRequestDTO struct {
	TournamentID  int    `json:"tournament_id" example:"3"`
	TransactionID *int   `json:"transaction_id,omitempty"`
	Claim         string `json:"claim" example:"winner screenshot does not match the lobby result"`
}

func (r *DisputeRequestDTO) Validate() error {
	if r.TournamentID <= 0 {
		return errors.New("tournament id is required")
	}
	if r.Claim == "" {
		return errors.New("claim text is required")
	}
	if len(r.Claim) > 2000 {
		return errors.New("claim text is too long")
	}
	return nil
}

type ResolveDisputeRequestDTO struct {
	Action   string `json:"action" example:"resolve"`
	Response string `json:"response" example:"payout corrected after replay review"`
}

func (r *ResolveDisputeRequestDTO) Validate() error {
	if r.Action != "resolve" && r.Action != "reject" {
		return errors.New("action must be resolve or reject")
	}
	if r.Response == "" {
		return errors.New("a written response is required")
	}
	return nil
}

type DisputeResponseDTO struct {
	ID            int        `json:"id"`
	TournamentID  int        `json:"tournament_id"`
	TransactionID *int       `json:"transaction_id,omitempty"`
	Claim         string     `json:"claim"`
	Status        string     `json:"status"`
	AdminResponse string     `json:"admin_response,omitempty"`
	ResolvedAt    *time.Time `json:"resolved_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}
