package services

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/challengepool/internal/common"
	"github.com/dmitrijs2005/challengepool/internal/dbx"
	"github.com/dmitrijs2005/challengepool/internal/logging"
	"github.com/dmitrijs2005/challengepool/internal/server/models"
	"github.com/dmitrijs2005/challengepool/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/challengepool/internal/server/repositories/challenges"
	"github.com/dmitrijs2005/challengepool/internal/server/repositories/payouts"
	"github.com/dmitrijs2005/challengepool/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/challengepool/internal/server/repositories/wallets"
)

// In-memory repositories backing the service tests. The sqlmock *sql.DB only
// provides Begin/Commit/Rollback; all data lives here.

type fakeAccounts struct {
	byUsername map[string]*models.Account
	byID       map[string]*models.Account
	nextID     int
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{
		byUsername: map[string]*models.Account{},
		byID:       map[string]*models.Account{},
	}
}

func (f *fakeAccounts) Create(ctx context.Context, account *models.Account) (*models.Account, error) {
	if _, ok := f.byUsername[account.Username]; ok {
		return nil, common.ErrUsernameTaken
	}
	f.nextID++
	account.ID = fmt.Sprintf("u-%d", f.nextID)
	account.CreatedAt = time.Now()
	f.byUsername[account.Username] = account
	f.byID[account.ID] = account
	return account, nil
}

func (f *fakeAccounts) GetByUsername(ctx context.Context, username string) (*models.Account, error) {
	account, ok := f.byUsername[username]
	if !ok {
		return nil, common.ErrNotFound
	}
	return account, nil
}

func (f *fakeAccounts) GetByID(ctx context.Context, id string) (*models.Account, error) {
	account, ok := f.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return account, nil
}

type fakeRefreshTokens struct {
	tokens map[string]*models.RefreshToken
}

func newFakeRefreshTokens() *fakeRefreshTokens {
	return &fakeRefreshTokens{tokens: map[string]*models.RefreshToken{}}
}

func (f *fakeRefreshTokens) Create(ctx context.Context, accountID string, token string, validity time.Duration) error {
	f.tokens[token] = &models.RefreshToken{
		Token:     token,
		AccountID: accountID,
		Expires:   time.Now().Add(validity),
	}
	return nil
}

func (f *fakeRefreshTokens) Find(ctx context.Context, token string) (*models.RefreshToken, error) {
	rt, ok := f.tokens[token]
	if !ok {
		return nil, common.ErrNotFound
	}
	return rt, nil
}

func (f *fakeRefreshTokens) Delete(ctx context.Context, token string) error {
	delete(f.tokens, token)
	return nil
}

type fakeWallets struct {
	balances map[string]int64
}

func newFakeWallets() *fakeWallets {
	return &fakeWallets{balances: map[string]int64{}}
}

func (f *fakeWallets) Balance(ctx context.Context, accountID string) (int64, error) {
	return f.balances[accountID], nil
}

func (f *fakeWallets) Credit(ctx context.Context, accountID string, amount int64) error {
	f.balances[accountID] += amount
	return nil
}

func (f *fakeWallets) Debit(ctx context.Context, accountID string, amount int64) error {
	if f.balances[accountID] < amount {
		return common.ErrInsufficientFunds
	}
	f.balances[accountID] -= amount
	return nil
}

type fakeChallenges struct {
	accounts     *fakeAccounts
	byID         map[int64]*models.Challenge
	whitelist    map[int64][]string // account ids
	participants map[int64][]models.Participant
	winners      map[int64][]models.Winner
	nextID       int64
}

func newFakeChallenges(a *fakeAccounts) *fakeChallenges {
	return &fakeChallenges{
		accounts:     a,
		byID:         map[int64]*models.Challenge{},
		whitelist:    map[int64][]string{},
		participants: map[int64][]models.Participant{},
		winners:      map[int64][]models.Winner{},
	}
}

func (f *fakeChallenges) Create(ctx context.Context, ch *models.Challenge) (*models.Challenge, error) {
	f.nextID++
	ch.ID = f.nextID
	ch.CreatedAt = time.Now()
	stored := *ch
	f.byID[ch.ID] = &stored
	return ch, nil
}

func (f *fakeChallenges) Get(ctx context.Context, id int64) (*models.Challenge, error) {
	ch, ok := f.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	c := *ch
	return &c, nil
}

func (f *fakeChallenges) GetForUpdate(ctx context.Context, id int64) (*models.Challenge, error) {
	return f.Get(ctx, id)
}

func (f *fakeChallenges) List(ctx context.Context) ([]*models.Challenge, error) {
	var result []*models.Challenge
	for id := f.nextID; id >= 1; id-- {
		if ch, ok := f.byID[id]; ok {
			c := *ch
			result = append(result, &c)
		}
	}
	return result, nil
}

func (f *fakeChallenges) IncrementPool(ctx context.Context, id int64, amount int64) error {
	ch, ok := f.byID[id]
	if !ok {
		return common.ErrNotFound
	}
	ch.Pool += amount
	return nil
}

func (f *fakeChallenges) AddWhitelist(ctx context.Context, id int64, accountIDs []string) error {
	f.whitelist[id] = append(f.whitelist[id], accountIDs...)
	return nil
}

func (f *fakeChallenges) Whitelist(ctx context.Context, id int64) ([]string, error) {
	var usernames []string
	for _, accountID := range f.whitelist[id] {
		usernames = append(usernames, f.accounts.byID[accountID].Username)
	}
	return usernames, nil
}

func (f *fakeChallenges) AddParticipant(ctx context.Context, p *models.Participant) error {
	f.participants[p.ChallengeID] = append(f.participants[p.ChallengeID], *p)
	return nil
}

func (f *fakeChallenges) Participants(ctx context.Context, id int64) ([]string, error) {
	var usernames []string
	for _, p := range f.participants[id] {
		usernames = append(usernames, f.accounts.byID[p.AccountID].Username)
	}
	return usernames, nil
}

func (f *fakeChallenges) AddWinner(ctx context.Context, w *models.Winner) error {
	f.winners[w.ChallengeID] = append(f.winners[w.ChallengeID], *w)
	return nil
}

func (f *fakeChallenges) Winners(ctx context.Context, id int64) ([]models.Winner, error) {
	var result []models.Winner
	for _, w := range f.winners[id] {
		w.Username = f.accounts.byID[w.AccountID].Username
		result = append(result, w)
	}
	return result, nil
}

func (f *fakeChallenges) MarkSettled(ctx context.Context, id int64, settledAt time.Time) error {
	ch, ok := f.byID[id]
	if !ok || ch.Status != models.StatusOpen {
		return common.ErrAlreadySettled
	}
	ch.Status = models.StatusSettled
	ch.SettledAt = &settledAt
	return nil
}

type fakePayouts struct {
	created []*models.Payout
}

func (f *fakePayouts) Create(ctx context.Context, payout *models.Payout) error {
	payout.CreatedAt = time.Now()
	f.created = append(f.created, payout)
	return nil
}

func (f *fakePayouts) ListByAccount(ctx context.Context, accountID string) ([]*models.Payout, error) {
	var result []*models.Payout
	for i := len(f.created) - 1; i >= 0; i-- {
		if f.created[i].AccountID == accountID {
			result = append(result, f.created[i])
		}
	}
	return result, nil
}

// fakeRepoManager returns the same in-memory repositories for any DBTX, so
// code running inside dbx.WithTx sees the same state as code outside it.
type fakeRepoManager struct {
	accounts      *fakeAccounts
	refreshTokens *fakeRefreshTokens
	wallets       *fakeWallets
	challenges    *fakeChallenges
	payouts       *fakePayouts
}

func newFakeRepoManager() *fakeRepoManager {
	a := newFakeAccounts()
	return &fakeRepoManager{
		accounts:      a,
		refreshTokens: newFakeRefreshTokens(),
		wallets:       newFakeWallets(),
		challenges:    newFakeChallenges(a),
		payouts:       &fakePayouts{},
	}
}

func (m *fakeRepoManager) RunMigrations(ctx context.Context, db *sql.DB) error { return nil }
func (m *fakeRepoManager) Accounts(db dbx.DBTX) accounts.Repository           { return m.accounts }
func (m *fakeRepoManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	return m.refreshTokens
}
func (m *fakeRepoManager) Wallets(db dbx.DBTX) wallets.Repository       { return m.wallets }
func (m *fakeRepoManager) Challenges(db dbx.DBTX) challenges.Repository { return m.challenges }
func (m *fakeRepoManager) Payouts(db dbx.DBTX) payouts.Repository       { return m.payouts }

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, msg string, args ...any) {}
func (nopLogger) Info(ctx context.Context, msg string, args ...any)  {}
func (nopLogger) Warn(ctx context.Context, msg string, args ...any)  {}
func (nopLogger) Error(ctx context.Context, msg string, args ...any) {}
func (l nopLogger) With(args ...any) logging.Logger                  { return l }

// newMockDB returns a *sql.DB whose Begin/Commit/Rollback always succeed,
// for exercising the dbx.WithTx paths.
func newMockDB(t *testing.T) *sql.DB {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	mock.MatchExpectationsInOrder(false)
	for i := 0; i < 16; i++ {
		mock.ExpectBegin()
		mock.ExpectCommit()
		mock.ExpectRollback()
	}
	t.Cleanup(func() { db.Close() })
	return db
}
