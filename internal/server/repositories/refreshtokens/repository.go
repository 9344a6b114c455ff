package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/challengepool/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, accountID string, token string, validity time.Duration) error
	Find(ctx context.Context, token string) (*models.RefreshToken, error)
	Delete(ctx context.Context, token string) error
}
