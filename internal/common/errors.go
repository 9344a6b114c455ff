package common

import "errors"

// Sentinel errors shared by services, repositories and transport layers.
// Callers match them with errors.Is; the gRPC layer translates them into
// status codes at the boundary.
var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Generic service-level errors.
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")

	// Wallet ledger errors.
	ErrInvalidAmount     = errors.New("amount must be greater than 0")
	ErrInsufficientFunds = errors.New("not enough funds")
	ErrAccountNotFound   = errors.New("account not found")
	ErrUsernameTaken     = errors.New("username already taken")

	// Challenge engine errors. Every one is a precondition violation
	// detected before any mutation; the enclosing transaction rolls back.
	ErrInvalidEntryFee              = errors.New("entry fee must be greater than 0")
	ErrInsufficientFundsForEntryFee = errors.New("insufficient funds for entry fee")
	ErrNotWhitelisted               = errors.New("not whitelisted")
	ErrNotAuthorized                = errors.New("not authorized")
	ErrChallengeNotEnded            = errors.New("challenge has not ended yet")
	ErrChallengeEnded               = errors.New("challenge has already ended")
	ErrAlreadySettled               = errors.New("challenge already settled")
	ErrNoWinners                    = errors.New("winners list is empty")

	// Auth errors.
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)
