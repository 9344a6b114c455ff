// Package wallets is the custodial balance table: one row per funded
// account, balance always non-negative (also enforced by a CHECK
// constraint in the schema).
package wallets

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/challengepool/internal/common"
	"github.com/dmitrijs2005/challengepool/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Balance returns the account's current balance, 0 for accounts that never
// held funds.
func (r *PostgresRepository) Balance(ctx context.Context, accountID string) (int64, error) {
	query := `SELECT balance FROM wallets WHERE account_id = $1`

	var balance int64
	err := r.db.QueryRowContext(ctx, query, accountID).Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	return balance, nil
}

// Credit adds amount to the account's balance, creating the wallet row on
// first use.
func (r *PostgresRepository) Credit(ctx context.Context, accountID string, amount int64) error {
	query := `
		INSERT INTO wallets (account_id, balance)
		VALUES ($1, $2)
		ON CONFLICT (account_id)
		DO UPDATE SET balance = wallets.balance + EXCLUDED.balance
	`
	if _, err := r.db.ExecContext(ctx, query, accountID, amount); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Debit subtracts amount from the account's balance. The guard in the WHERE
// clause makes the check and the update one atomic statement: zero rows
// affected means the balance was too low and common.ErrInsufficientFunds is
// returned.
func (r *PostgresRepository) Debit(ctx context.Context, accountID string, amount int64) error {
	query := `
		UPDATE wallets SET balance = balance - $2
		WHERE account_id = $1 AND balance >= $2
	`
	res, err := r.db.ExecContext(ctx, query, accountID, amount)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrInsufficientFunds
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}
