package models

import "time"

// Challenge statuses. A challenge past its end time that has not been
// settled stays StatusOpen: closed for joining, open for settlement.
const (
	StatusOpen    = "open"
	StatusSettled = "settled"
)

// Challenge is a single pooled-stake competition. The pool starts at
// EntryFee (the creator's own stake) and grows by EntryFee on every join.
// Records are never deleted; a settled challenge is the historical record.
type Challenge struct {
	ID        int64
	Name      string
	CreatorID string
	EntryFee  int64
	StartTime time.Time
	EndTime   time.Time
	Pool      int64
	Status    string
	CreatedAt time.Time
	SettledAt *time.Time

	// Loaded on demand by GetChallenge; usernames, not account ids.
	Whitelist    []string
	Participants []string
	Winners      []Winner
}

// Participant is one join event. The same account may appear more than once;
// the reference behavior does not deduplicate joins.
type Participant struct {
	ID          int64
	ChallengeID int64
	AccountID   string
	Paid        int64
}

// Winner is one settlement beneficiary with its pool share. Position
// preserves the order the settler declared; any non-divisible remainder is
// folded into position 0. Username is filled on reads only.
type Winner struct {
	ChallengeID int64
	Position    int
	AccountID   string
	Username    string
	Share       int64
}
