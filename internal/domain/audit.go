package domain

// Audit action codes. COMMISSION_LOG doubles as the platform revenue ledger:
// dashboard revenue is the sum of its details.houseEarnings values.
const (
	AuditApproveDeposit    = "APPROVE_DEPOSIT"
	AuditRejectDeposit     = "REJECT_DEPOSIT"
	AuditSubmitResults     = "SUBMIT_RESULTS"
	AuditCommissionLog     = "COMMISSION_LOG"
	AuditApproveWithdrawal = "APPROVE_WITHDRAWAL"
	AuditRejectWithdrawal  = "REJECT_WITHDRAWAL"
	AuditBanUser           = "BAN_USER"
	AuditUnbanUser         = "UNBAN_USER"
	AuditCreateTournament  = "CREATE_TOURNAMENT"
	AuditUpdateTournament  = "UPDATE_TOURNAMENT"
	AuditCancelTournament  = "CANCEL_TOURNAMENT"
	AuditDeleteTournament  = "DELETE_TOURNAMENT"
	AuditResolveDispute    = "RESOLVE_DISPUTE"
)
