// Package models defines the server-side persistence records: accounts,
// wallets, challenges and the outbound payout journal.
package models

import "time"

// Account is a registered caller identity. The administrator (settler) is an
// ordinary account whose id is handed to the challenge service at startup.
type Account struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// RefreshToken is a server-stored, rotating refresh token.
type RefreshToken struct {
	Token     string
	AccountID string
	Expires   time.Time
}
