package wallets

import "context"

type Repository interface {
	Balance(ctx context.Context, accountID string) (int64, error)
	Credit(ctx context.Context, accountID string, amount int64) error
	Debit(ctx context.Context, accountID string, amount int64) error
}
