package domain

import "time"

// Tournament lifecycle. COMPLETED and CANCELLED are terminal.
const (
	TournamentCreated   = "CREATED"
	TournamentOpen      = "OPEN"
	TournamentVoting    = "VOTING"
	TournamentConfirmed = "CONFIRMED"
	TournamentLive      = "LIVE"
	TournamentCompleted = "COMPLETED"
	TournamentCancelled = "CANCELLED"
)

const (
	TxDeposit       = "deposit"
	TxWithdrawal    = "withdrawal"
	TxEntryFee      = "entry_fee"
	TxPrizeWinnings = "prize_winnings"
)

const (
	TxPending = "pending"
	TxSuccess = "success"
	TxFailed  = "failed"
)

const (
	KycNone     = "none"
	KycPending  = "pending"
	KycVerified = "verified"
	KycRejected = "rejected"
)

const (
	WithdrawalPending  = "pending"
	WithdrawalApproved = "approved"
	WithdrawalRejected = "rejected"
)

const (
	VoteYes = "YES"
	VoteNo  = "NO"
)

type User struct {
	ID                int       `db:"id"`
	Phone             string    `db:"phone"`
	Username          string    `db:"username"`
	GameName          string    `db:"game_name"`
	PasswordHash      string    `db:"password_hash"`
	Role              string    `db:"role"`
	WalletBalance     int64     `db:"wallet_balance"`
	LifetimeWithdrawn int64     `db:"lifetime_withdrawn"`
	KycStatus         string    `db:"kyc_status"`
	IsBanned          bool      `db:"is_banned"`
	BanReason         string    `db:"ban_reason"`
	CreatedAt         time.Time `db:"created_at"`
}

// Transaction is an immutable ledger entry. Amount is always a positive
// magnitude; Type carries the sign intent. BalanceAfter snapshots the wallet
// right after the mutation so the ledger can be replayed.
type Transaction struct {
	ID           int        `db:"id"`
	UserID       int        `db:"user_id"`
	Type         string     `db:"type"`
	Status       string     `db:"status"`
	Amount       int64      `db:"amount"`
	BalanceAfter int64      `db:"balance_after"`
	TournamentID *int       `db:"tournament_id"`
	Reference    string     `db:"reference"`
	UTR          string     `db:"utr"`
	Description  string     `db:"description"`
	ExpiresAt    *time.Time `db:"expires_at"`
	CreatedAt    time.Time  `db:"created_at"`
}

// TransactionEvent is one entry of a transaction's append-only sub-event log.
type TransactionEvent struct {
	ID            int       `db:"id"`
	TransactionID int       `db:"transaction_id"`
	Action        string    `db:"action"`
	Actor         string    `db:"actor"`
	Details       string    `db:"details"`
	CreatedAt     time.Time `db:"created_at"`
}

type Tournament struct {
	ID             int        `db:"id"`
	Title          string     `db:"title"`
	Map            string     `db:"map"`
	Mode           string     `db:"mode"`
	Type           string     `db:"type"`
	MatchTime      time.Time  `db:"match_time"`
	EntryFee       int64      `db:"entry_fee"`
	PrizePool      int64      `db:"prize_pool"`
	CommissionRate int        `db:"commission_rate"`
	PrizeSplit     []int      `db:"prize_split"`
	MaxPlayers     int        `db:"max_players"`
	MinPlayers     int        `db:"min_players"`
	RoomID         string     `db:"room_id"`
	RoomPassword   string     `db:"room_password"`
	Status         string     `db:"status"`
	VotingEndsAt   *time.Time `db:"voting_ends_at"`
	CreatedAt      time.Time  `db:"created_at"`
}

type Player struct {
	ID           int       `db:"id"`
	TournamentID int       `db:"tournament_id"`
	UserID       int       `db:"user_id"`
	GameName     string    `db:"game_name"`
	Slot         int       `db:"slot"`
	JoinedAt     time.Time `db:"joined_at"`
}

type Winner struct {
	TournamentID int   `db:"tournament_id"`
	UserID       int   `db:"user_id"`
	Rank         int   `db:"rank"`
	Prize        int64 `db:"prize"`
}

// Vote is last-vote-wins: casting again before the deadline overwrites.
type Vote struct {
	TournamentID int       `db:"tournament_id"`
	UserID       int       `db:"user_id"`
	Choice       string    `db:"choice"`
	CastAt       time.Time `db:"cast_at"`
}

type Withdrawal struct {
	ID              int        `db:"id"`
	UserID          int        `db:"user_id"`
	Amount          int64      `db:"amount"`
	UpiID           string     `db:"upi_id"`
	Status          string     `db:"status"`
	AdminID         *int       `db:"admin_id"`
	RejectionReason string     `db:"rejection_reason"`
	RequestedAt     time.Time  `db:"requested_at"`
	ProcessedAt     *time.Time `db:"processed_at"`
}

// AuditEntry rows are never updated or deleted.
type AuditEntry struct {
	ID         int       `db:"id"`
	AdminID    int       `db:"admin_id"`
	Action     string    `db:"action"`
	TargetType string    `db:"target_type"`
	TargetID   int       `db:"target_id"`
	Details    string    `db:"details"`
	IPAddress  string    `db:"ip_address"`
	CreatedAt  time.Time `db:"created_at"`
}

// Dispute statuses.
const (
	DisputePending  = "pending"
	DisputeResolved = "resolved"
	DisputeRejected = "rejected"
)

// Dispute is a player's claim against a match outcome or a payout.
type Dispute struct {
	ID            int        `db:"id"`
	UserID        int        `db:"user_id"`
	TournamentID  int        `db:"tournament_id"`
	TransactionID *int       `db:"transaction_id"`
	ClaimText     string     `db:"claim_text"`
	Status        string     `db:"status"`
	AdminResponse string     `db:"admin_response"`
	ResolvedBy    *int       `db:"resolved_by"`
	ResolvedAt    *time.Time `db:"resolved_at"`
	CreatedAt     time.Time  `db:"created_at"`
}
