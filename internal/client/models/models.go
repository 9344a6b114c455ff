// Package models holds the client-side view of server objects as they are
// shown in the CLI.
package models

import "time"

type Winner struct {
	Username string
	Share    int64
}

type Challenge struct {
	ID           int64
	Name         string
	EntryFee     int64
	Pool         int64
	Status       string
	StartTime    time.Time
	EndTime      time.Time
	SettledAt    *time.Time
	Whitelist    []string
	Participants []string
	Winners      []Winner
}

type Payout struct {
	ID          string
	Amount      int64
	Kind        string
	ChallengeID int64
	CreatedAt   time.Time
}

// ChallengeDraft is the user's input for a new challenge before it is sent
// to the server.
type ChallengeDraft struct {
	Name            string
	EntryFee        int64
	StartTime       time.Time
	EndTime         time.Time
	Whitelist       []string
	AttachedDeposit int64
}
