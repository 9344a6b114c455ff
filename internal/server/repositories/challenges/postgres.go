// Package challenges persists the challenge catalog: the challenge rows
// themselves plus their whitelist, ordered participants and winners.
package challenges

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/challengepool/internal/common"
	"github.com/dmitrijs2005/challengepool/internal/dbx"
	"github.com/dmitrijs2005/challengepool/internal/server/models"
)

const challengeColumns = `id, name, creator_id, entry_fee, start_time, end_time, pool, status, created_at, settled_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a challenge row and returns it with the assigned
// sequential id.
func (r *PostgresRepository) Create(ctx context.Context, ch *models.Challenge) (*models.Challenge, error) {
	query := `
		INSERT INTO challenges (name, creator_id, entry_fee, start_time, end_time, pool, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		ch.Name, ch.CreatorID, ch.EntryFee, ch.StartTime, ch.EndTime, ch.Pool, ch.Status).
		Scan(&ch.ID, &ch.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return ch, nil
}

func (r *PostgresRepository) scanChallenge(row *sql.Row) (*models.Challenge, error) {
	ch := &models.Challenge{}
	err := row.Scan(&ch.ID, &ch.Name, &ch.CreatorID, &ch.EntryFee,
		&ch.StartTime, &ch.EndTime, &ch.Pool, &ch.Status, &ch.CreatedAt, &ch.SettledAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return ch, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.Challenge, error) {
	query := `SELECT ` + challengeColumns + ` FROM challenges WHERE id = $1`
	return r.scanChallenge(r.db.QueryRowContext(ctx, query, id))
}

// GetForUpdate locks the challenge row for the rest of the transaction so
// concurrent joins/settlements against the same challenge serialize.
func (r *PostgresRepository) GetForUpdate(ctx context.Context, id int64) (*models.Challenge, error) {
	query := `SELECT ` + challengeColumns + ` FROM challenges WHERE id = $1 FOR UPDATE`
	return r.scanChallenge(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Challenge, error) {
	query := `SELECT ` + challengeColumns + ` FROM challenges ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select challenges: %w", err)
	}
	defer rows.Close()

	var result []*models.Challenge
	for rows.Next() {
		ch := &models.Challenge{}
		if err := rows.Scan(&ch.ID, &ch.Name, &ch.CreatorID, &ch.EntryFee,
			&ch.StartTime, &ch.EndTime, &ch.Pool, &ch.Status, &ch.CreatedAt, &ch.SettledAt); err != nil {
			return nil, err
		}
		result = append(result, ch)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) IncrementPool(ctx context.Context, id int64, amount int64) error {
	query := `UPDATE challenges SET pool = pool + $2 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id, amount)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) AddWhitelist(ctx context.Context, id int64, accountIDs []string) error {
	query := `INSERT INTO challenge_whitelist (challenge_id, account_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	for _, accountID := range accountIDs {
		if _, err := r.db.ExecContext(ctx, query, id, accountID); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
	}
	return nil
}

// Whitelist returns the usernames allowed to join, empty for an open
// challenge.
func (r *PostgresRepository) Whitelist(ctx context.Context, id int64) ([]string, error) {
	query := `
		SELECT a.username FROM challenge_whitelist w
		JOIN accounts a ON a.id = w.account_id
		WHERE w.challenge_id = $1
	`
	return r.selectStrings(ctx, query, id)
}

func (r *PostgresRepository) AddParticipant(ctx context.Context, p *models.Participant) error {
	query := `
		INSERT INTO challenge_participants (challenge_id, account_id, paid)
		VALUES ($1, $2, $3)
	`
	if _, err := r.db.ExecContext(ctx, query, p.ChallengeID, p.AccountID, p.Paid); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Participants returns participant usernames in join order. Duplicates are
// preserved.
func (r *PostgresRepository) Participants(ctx context.Context, id int64) ([]string, error) {
	query := `
		SELECT a.username FROM challenge_participants p
		JOIN accounts a ON a.id = p.account_id
		WHERE p.challenge_id = $1
		ORDER BY p.id
	`
	return r.selectStrings(ctx, query, id)
}

func (r *PostgresRepository) AddWinner(ctx context.Context, w *models.Winner) error {
	query := `
		INSERT INTO challenge_winners (challenge_id, position, account_id, share)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := r.db.ExecContext(ctx, query, w.ChallengeID, w.Position, w.AccountID, w.Share); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Winners(ctx context.Context, id int64) ([]models.Winner, error) {
	query := `
		SELECT w.challenge_id, w.position, w.account_id, a.username, w.share
		FROM challenge_winners w
		JOIN accounts a ON a.id = w.account_id
		WHERE w.challenge_id = $1
		ORDER BY w.position
	`
	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to select winners: %w", err)
	}
	defer rows.Close()

	var result []models.Winner
	for rows.Next() {
		var w models.Winner
		if err := rows.Scan(&w.ChallengeID, &w.Position, &w.AccountID, &w.Username, &w.Share); err != nil {
			return nil, err
		}
		result = append(result, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// MarkSettled flips an open challenge to settled. Zero rows affected means
// the challenge was already settled (or never existed): the status guard in
// the WHERE clause is the terminal-state check.
func (r *PostgresRepository) MarkSettled(ctx context.Context, id int64, settledAt time.Time) error {
	query := `
		UPDATE challenges SET status = $2, settled_at = $3
		WHERE id = $1 AND status = $4
	`
	res, err := r.db.ExecContext(ctx, query, id, models.StatusSettled, settledAt, models.StatusOpen)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrAlreadySettled
	}
	return nil
}

func (r *PostgresRepository) selectStrings(ctx context.Context, query string, id int64) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
