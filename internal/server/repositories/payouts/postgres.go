// Package payouts is the outbound-payment journal. Every amount that leaves
// the system (wallet transfers, settlement disbursements) gets a row here.
package payouts

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/challengepool/internal/dbx"
	"github.com/dmitrijs2005/challengepool/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, payout *models.Payout) error {
	query := `
		INSERT INTO payouts (id, account_id, amount, kind, challenge_id)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query,
		payout.ID, payout.AccountID, payout.Amount, payout.Kind, payout.ChallengeID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListByAccount(ctx context.Context, accountID string) ([]*models.Payout, error) {
	query := `
		SELECT id, account_id, amount, kind, challenge_id, created_at FROM payouts
		WHERE account_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to select payouts: %w", err)
	}
	defer rows.Close()

	var result []*models.Payout
	for rows.Next() {
		var p models.Payout
		if err := rows.Scan(&p.ID, &p.AccountID, &p.Amount, &p.Kind, &p.ChallengeID, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
