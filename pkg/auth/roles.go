package auth

// Platform roles. super_admin holds every capability; the scoped admin roles
// hold only their slice of the table.
const (
	RoleUser         = "user"
	RoleAdmin        = "admin"
	RoleSuperAdmin   = "super_admin"
	RoleMatchAdmin   = "match_admin"
	RoleFinanceAdmin = "finance_admin"
)

// Capabilities gate privileged operations. The table is consulted once at
// the authorization boundary instead of re-checking role strings per handler.
const (
	CapTournamentManage = "tournament:manage"
	CapResultsSubmit    = "results:submit"
	CapDepositHandle    = "deposit:handle"
	CapWithdrawalHandle = "withdrawal:handle"
	CapDisputeHandle    = "dispute:handle"
	CapUserManage       = "user:manage"
	CapDashboardView    = "dashboard:view"
)

var capabilityTable = map[string]map[string]bool{
	CapTournamentManage: {RoleAdmin: true, RoleSuperAdmin: true, RoleMatchAdmin: true},
	CapResultsSubmit:    {RoleAdmin: true, RoleSuperAdmin: true, RoleMatchAdmin: true},
	CapDepositHandle:    {RoleAdmin: true, RoleSuperAdmin: true, RoleFinanceAdmin: true},
	CapWithdrawalHandle: {RoleAdmin: true, RoleSuperAdmin: true, RoleFinanceAdmin: true},
	CapDisputeHandle:    {RoleAdmin: true, RoleSuperAdmin: true, RoleMatchAdmin: true},
	CapUserManage:       {RoleAdmin: true, RoleSuperAdmin: true},
	CapDashboardView:    {RoleAdmin: true, RoleSuperAdmin: true, RoleMatchAdmin: true, RoleFinanceAdmin: true},
}

// HasCapability reports whether role may perform the given action.
func HasCapability(role, capability string) bool {
	if role == RoleSuperAdmin {
		return true
	}
	allowed, ok := capabilityTable[capability]
	if !ok {
		return false
	}
	return allowed[role]
}
