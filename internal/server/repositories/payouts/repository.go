package payouts

import (
	"context"

	"github.com/dmitrijs2005/challengepool/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, payout *models.Payout) error
	ListByAccount(ctx context.Context, accountID string) ([]*models.Payout, error)
}
