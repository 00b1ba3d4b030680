package dto

import "errors"

type BanRequestDTO struct {
	Action string `json:"action" example:"ban"`
	Reason string `json:"reason,omitempty" example:"multi-accounting"`
}

func (r *BanRequestDTO) Validate() error {
	if r.Action != "ban" && r.Action != "unban" {
		return errors.New("action must be ban or unban")
	}
	return nil
}

type AdminUserResponseDTO struct {
	ID                int                      `json:"id"`
	Phone             string                   `json:"phone"`
	Username          string                   `json:"username"`
	GameName          string                   `json:"game_name"`
	Role              string                   `json:"role"`
	WalletBalance     int64                    `json:"wallet_balance"`
	LifetimeWithdrawn int64                    `json:"lifetime_withdrawn"`
	KycStatus         string                   `json:"kyc_status"`
	IsBanned          bool                     `json:"is_banned"`
	BanReason         string                   `json:"ban_reason,omitempty"`
	Transactions      []TransactionResponseDTO `json:"transactions"`
}

type DashboardResponseDTO struct {
	TotalUsers         int   `json:"total_users"`
	ActiveTournaments  int   `json:"active_tournaments"`
	PendingDeposits    int   `json:"pending_deposits"`
	PendingWithdrawals int   `json:"pending_withdrawals"`
	Revenue            int64 `json:"revenue"`
}
