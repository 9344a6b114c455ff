package challenges

import (
	"context"
	"time"

	"github.com/dmitrijs2005/challengepool/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, ch *models.Challenge) (*models.Challenge, error)
	Get(ctx context.Context, id int64) (*models.Challenge, error)
	GetForUpdate(ctx context.Context, id int64) (*models.Challenge, error)
	List(ctx context.Context) ([]*models.Challenge, error)
	IncrementPool(ctx context.Context, id int64, amount int64) error
	AddWhitelist(ctx context.Context, id int64, accountIDs []string) error
	Whitelist(ctx context.Context, id int64) ([]string, error)
	AddParticipant(ctx context.Context, p *models.Participant) error
	Participants(ctx context.Context, id int64) ([]string, error)
	AddWinner(ctx context.Context, w *models.Winner) error
	Winners(ctx context.Context, id int64) ([]models.Winner, error)
	MarkSettled(ctx context.Context, id int64, settledAt time.Time) error
}
