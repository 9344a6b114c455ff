// Package client contains the gRPC client for the challenge pool backend.
// GRPCClient manages the connection, injects the access token via an
// interceptor, transparently refreshes expired tokens, and maps gRPC status
// codes to sentinel errors callers can match with errors.Is.
package client

import (
	"context"

	"github.com/dmitrijs2005/challengepool/internal/client/models"
)

type Client interface {
	Close() error
	Register(ctx context.Context, username string, password []byte) error
	Login(ctx context.Context, username string, password []byte) error
	Ping(ctx context.Context) error

	Deposit(ctx context.Context, amount int64) (int64, error)
	Transfer(ctx context.Context, toUsername string, amount int64) (int64, error)
	GetBalance(ctx context.Context, username string) (int64, error)
	ListPayouts(ctx context.Context) ([]*models.Payout, error)

	CreateChallenge(ctx context.Context, draft models.ChallengeDraft) (*models.Challenge, error)
	JoinChallenge(ctx context.Context, id int64) error
	SettleChallenge(ctx context.Context, id int64, winners []string) (*models.Challenge, error)
	GetChallenge(ctx context.Context, id int64) (*models.Challenge, error)
	ListChallenges(ctx context.Context) ([]*models.Challenge, error)
}
