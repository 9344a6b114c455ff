package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/challengepool/internal/common"
	"github.com/dmitrijs2005/challengepool/internal/dbx"
	"github.com/dmitrijs2005/challengepool/internal/server/models"
	"github.com/dmitrijs2005/challengepool/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// WalletService is the custodial ledger: deposits, withdraw-style transfers
// and balance reads. The challenge engine draws entry fees through the same
// wallets repository inside its own transactions.
type WalletService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewWalletService(db *sql.DB, m repomanager.RepositoryManager) *WalletService {
	return &WalletService{db: db, repomanager: m}
}

// Deposit credits amount to the caller's balance. The amount is attached to
// the call by the caller, not drawn from any existing balance.
func (s *WalletService) Deposit(ctx context.Context, accountID string, amount int64) error {
	if amount <= 0 {
		return common.ErrInvalidAmount
	}

	repo := s.repomanager.Wallets(s.db)
	if err := repo.Credit(ctx, accountID, amount); err != nil {
		return fmt.Errorf("error crediting wallet: %w", err)
	}
	return nil
}

// Transfer debits the caller's ledger balance and pays the amount out of the
// system to the named recipient. This is withdraw-to semantics: the
// recipient's internal balance is not credited; the outbound payment is
// recorded in the payout journal. The recipient may be the caller, which is
// how an account withdraws its own funds. Fails with ErrInsufficientFunds
// leaving both sides untouched.
func (s *WalletService) Transfer(ctx context.Context, fromID string, toUsername string, amount int64) error {
	if amount <= 0 {
		return common.ErrInvalidAmount
	}

	recipient, err := s.repomanager.Accounts(s.db).GetByUsername(ctx, toUsername)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrAccountNotFound
		}
		return fmt.Errorf("error resolving recipient: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Wallets(tx).Debit(ctx, fromID, amount); err != nil {
			return err
		}
		payout := &models.Payout{
			ID:        uuid.NewString(),
			AccountID: recipient.ID,
			Amount:    amount,
			Kind:      models.PayoutTransfer,
		}
		return s.repomanager.Payouts(tx).Create(ctx, payout)
	})
}

// BalanceOf returns the named account's balance, 0 for accounts that never
// held funds. Fails with ErrAccountNotFound for unregistered usernames.
func (s *WalletService) BalanceOf(ctx context.Context, username string) (int64, error) {
	account, err := s.repomanager.Accounts(s.db).GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return 0, common.ErrAccountNotFound
		}
		return 0, fmt.Errorf("error resolving account: %w", err)
	}
	return s.repomanager.Wallets(s.db).Balance(ctx, account.ID)
}

// Balance returns the balance for an account id (the authenticated caller).
func (s *WalletService) Balance(ctx context.Context, accountID string) (int64, error) {
	return s.repomanager.Wallets(s.db).Balance(ctx, accountID)
}

// ListPayouts returns the caller's outbound-payment journal, newest first.
func (s *WalletService) ListPayouts(ctx context.Context, accountID string) ([]*models.Payout, error) {
	return s.repomanager.Payouts(s.db).ListByAccount(ctx, accountID)
}
