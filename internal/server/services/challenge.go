package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/challengepool/internal/common"
	"github.com/dmitrijs2005/challengepool/internal/dbx"
	"github.com/dmitrijs2005/challengepool/internal/logging"
	"github.com/dmitrijs2005/challengepool/internal/server/models"
	"github.com/dmitrijs2005/challengepool/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// timeNow is a seam for the settlement clock.
var timeNow = time.Now

// receiptArchiver persists settlement receipts outside the system of record.
// Archiving is best-effort and runs after the settlement transaction commits.
type receiptArchiver interface {
	Archive(ctx context.Context, receipt *SettlementReceipt) error
}

// CreateChallengeParams are the caller-supplied attributes of a new
// challenge. Whitelist holds usernames; an empty whitelist means anyone may
// join. AttachedDeposit is credited to the creator's wallet before the entry
// fee is debited, so both funding paths go through the same debit.
type CreateChallengeParams struct {
	Name            string
	EntryFee        int64
	StartTime       time.Time
	EndTime         time.Time
	Whitelist       []string
	AttachedDeposit int64
}

// ChallengeService is the challenge engine: catalog of pooled-stake
// competitions plus the create/join/settle state machine. Every mutating
// operation runs inside a single transaction; a violated precondition rolls
// the whole operation back.
type ChallengeService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	adminID     string
	receipts    receiptArchiver
	logger      logging.Logger
}

// NewChallengeService constructs the engine. adminID is the account id of
// the privileged settler; receipts may be nil to disable archiving.
func NewChallengeService(db *sql.DB, m repomanager.RepositoryManager, adminID string, receipts receiptArchiver, l logging.Logger) *ChallengeService {
	return &ChallengeService{
		db:          db,
		repomanager: m,
		adminID:     adminID,
		receipts:    receipts,
		logger:      l.With("module", "challenge_service"),
	}
}

// Create validates the entry fee, funds it from the attached deposit and/or
// the creator's existing balance, and appends a new challenge to the
// catalog with pool = entryFee and no participants.
func (s *ChallengeService) Create(ctx context.Context, creatorID string, p CreateChallengeParams) (*models.Challenge, error) {
	if p.EntryFee <= 0 {
		return nil, common.ErrInvalidEntryFee
	}
	if p.AttachedDeposit < 0 {
		return nil, common.ErrInvalidAmount
	}

	whitelistIDs, err := s.resolveUsernames(ctx, p.Whitelist)
	if err != nil {
		return nil, err
	}

	ch := &models.Challenge{
		Name:      p.Name,
		CreatorID: creatorID,
		EntryFee:  p.EntryFee,
		StartTime: p.StartTime,
		EndTime:   p.EndTime,
		Pool:      p.EntryFee,
		Status:    models.StatusOpen,
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		wallets := s.repomanager.Wallets(tx)
		if p.AttachedDeposit > 0 {
			if err := wallets.Credit(ctx, creatorID, p.AttachedDeposit); err != nil {
				return err
			}
		}
		if err := wallets.Debit(ctx, creatorID, p.EntryFee); err != nil {
			return err
		}

		repo := s.repomanager.Challenges(tx)
		if _, err := repo.Create(ctx, ch); err != nil {
			return err
		}
		return repo.AddWhitelist(ctx, ch.ID, whitelistIDs)
	})
	if err != nil {
		return nil, err
	}

	ch.Whitelist = p.Whitelist
	return ch, nil
}

// Join debits the entry fee from the caller's balance, grows the pool and
// appends the caller to the participants. Joining is allowed until endTime;
// the reference behavior neither blocks joins after startTime nor duplicate
// joins by the same account, and neither does this implementation.
func (s *ChallengeService) Join(ctx context.Context, callerID string, id int64) error {
	caller, err := s.repomanager.Accounts(s.db).GetByID(ctx, callerID)
	if err != nil {
		return fmt.Errorf("error resolving caller: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Challenges(tx)

		ch, err := repo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if ch.Status == models.StatusSettled || !timeNow().Before(ch.EndTime) {
			return common.ErrChallengeEnded
		}

		whitelist, err := repo.Whitelist(ctx, id)
		if err != nil {
			return err
		}
		if len(whitelist) > 0 && !contains(whitelist, caller.Username) {
			return common.ErrNotWhitelisted
		}

		if err := s.repomanager.Wallets(tx).Debit(ctx, callerID, ch.EntryFee); err != nil {
			if errors.Is(err, common.ErrInsufficientFunds) {
				return common.ErrInsufficientFundsForEntryFee
			}
			return err
		}
		if err := repo.IncrementPool(ctx, id, ch.EntryFee); err != nil {
			return err
		}
		return repo.AddParticipant(ctx, &models.Participant{
			ChallengeID: id,
			AccountID:   callerID,
			Paid:        ch.EntryFee,
		})
	})
}

// Settle distributes the pool across the declared winners and closes the
// challenge. Only the settler may call it, only after endTime, and only
// once. The pool splits by integer division; the remainder goes to the
// first winner so no funds are created or destroyed.
func (s *ChallengeService) Settle(ctx context.Context, callerID string, id int64, winnerUsernames []string) (*models.Challenge, error) {
	if callerID != s.adminID {
		return nil, common.ErrNotAuthorized
	}
	if len(winnerUsernames) == 0 {
		return nil, common.ErrNoWinners
	}

	winnerIDs, err := s.resolveUsernames(ctx, winnerUsernames)
	if err != nil {
		return nil, err
	}

	var settled *models.Challenge

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Challenges(tx)

		ch, err := repo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if ch.Status == models.StatusSettled {
			return common.ErrAlreadySettled
		}
		now := timeNow()
		if now.Before(ch.EndTime) {
			return common.ErrChallengeNotEnded
		}

		wallets := s.repomanager.Wallets(tx)
		payoutRepo := s.repomanager.Payouts(tx)

		share := ch.Pool / int64(len(winnerIDs))
		remainder := ch.Pool % int64(len(winnerIDs))

		for i, winnerID := range winnerIDs {
			amount := share
			if i == 0 {
				amount += remainder
			}
			if err := repo.AddWinner(ctx, &models.Winner{
				ChallengeID: id,
				Position:    i,
				AccountID:   winnerID,
				Share:       amount,
			}); err != nil {
				return err
			}
			if amount == 0 {
				continue
			}
			if err := wallets.Credit(ctx, winnerID, amount); err != nil {
				return err
			}
			if err := payoutRepo.Create(ctx, &models.Payout{
				ID:          uuid.NewString(),
				AccountID:   winnerID,
				Amount:      amount,
				Kind:        models.PayoutSettlement,
				ChallengeID: &id,
			}); err != nil {
				return err
			}
		}

		if err := repo.MarkSettled(ctx, id, now); err != nil {
			return err
		}

		ch.Status = models.StatusSettled
		ch.SettledAt = &now
		settled = ch
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.archiveReceipt(ctx, settled, winnerUsernames)

	return s.Get(ctx, id)
}

// Get returns the full challenge record: row plus whitelist, participants
// and winners. Unknown ids fail with ErrNotFound.
func (s *ChallengeService) Get(ctx context.Context, id int64) (*models.Challenge, error) {
	repo := s.repomanager.Challenges(s.db)

	ch, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if ch.Whitelist, err = repo.Whitelist(ctx, id); err != nil {
		return nil, err
	}
	if ch.Participants, err = repo.Participants(ctx, id); err != nil {
		return nil, err
	}
	if ch.Winners, err = repo.Winners(ctx, id); err != nil {
		return nil, err
	}
	return ch, nil
}

// List returns catalog summaries, newest first.
func (s *ChallengeService) List(ctx context.Context) ([]*models.Challenge, error) {
	return s.repomanager.Challenges(s.db).List(ctx)
}

func (s *ChallengeService) archiveReceipt(ctx context.Context, ch *models.Challenge, winnerUsernames []string) {
	if s.receipts == nil || ch == nil {
		return
	}

	receipt := NewSettlementReceipt(ch, winnerUsernames)
	if err := s.receipts.Archive(ctx, receipt); err != nil {
		// The settlement itself is already committed; a lost receipt is
		// an operational issue, not a ledger one.
		s.logger.Error(ctx, "failed to archive settlement receipt", "challenge_id", ch.ID, "error", err.Error())
	}
}

func (s *ChallengeService) resolveUsernames(ctx context.Context, usernames []string) ([]string, error) {
	repo := s.repomanager.Accounts(s.db)

	ids := make([]string, 0, len(usernames))
	for _, username := range usernames {
		account, err := repo.GetByUsername(ctx, username)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", common.ErrAccountNotFound, username)
			}
			return nil, err
		}
		ids = append(ids, account.ID)
	}
	return ids, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
