package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/challengepool/internal/dbx"
	"github.com/dmitrijs2005/challengepool/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/challengepool/internal/server/repositories/challenges"
	"github.com/dmitrijs2005/challengepool/internal/server/repositories/payouts"
	"github.com/dmitrijs2005/challengepool/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/challengepool/internal/server/repositories/wallets"
)

// RepositoryManager vends repositories bound to a DBTX, so a service can use
// the same repository code against the pooled connection or inside a
// transaction opened with dbx.WithTx.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Accounts(db dbx.DBTX) accounts.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Wallets(db dbx.DBTX) wallets.Repository
	Challenges(db dbx.DBTX) challenges.Repository
	Payouts(db dbx.DBTX) payouts.Repository
}
