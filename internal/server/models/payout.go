package models

import "time"

// Payout kinds.
const (
	// PayoutTransfer is an outbound payment produced by a wallet transfer:
	// the sender's ledger is debited and the amount leaves the system.
	PayoutTransfer = "transfer"
	// PayoutSettlement is a pool disbursement to a challenge winner.
	PayoutSettlement = "settlement"
)

// Payout is one row of the outbound-payment journal. The journal keeps the
// distinction between "move within the ledger" and "pay out of the system"
// explicit and auditable.
type Payout struct {
	ID          string
	AccountID   string
	Amount      int64
	Kind        string
	ChallengeID *int64
	CreatedAt   time.Time
}
