// Package server initializes and runs the application server: it opens the
// database, applies migrations, bootstraps the settler account and starts
// the gRPC endpoint with graceful shutdown on OS signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/challengepool/internal/logging"
	"github.com/dmitrijs2005/challengepool/internal/server/config"
	"github.com/dmitrijs2005/challengepool/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/challengepool/internal/server/services"

	gs "github.com/dmitrijs2005/challengepool/internal/server/grpc"
	_ "github.com/jackc/pgx/v5/stdlib"
)

type App struct {
	config           *config.Config
	logger           logging.Logger
	db               *sql.DB
	userService      *services.UserService
	walletService    *services.WalletService
	challengeService *services.ChallengeService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	m := repomanager.NewPostgresRepositoryManager()
	if err := m.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	us := services.NewUserService(db, m, c)

	admin, err := us.EnsureAccount(ctx, c.AdminUsername, []byte(c.AdminPassword))
	if err != nil {
		return nil, fmt.Errorf("settler account bootstrap error: %w", err)
	}
	ws := services.NewWalletService(db, m)

	var cs *services.ChallengeService
	if receipts := services.NewReceiptService(c); receipts.Enabled() {
		cs = services.NewChallengeService(db, m, admin.ID, receipts, logger)
	} else {
		cs = services.NewChallengeService(db, m, admin.ID, nil, logger)
	}

	return &App{
		config:           c,
		logger:           logger,
		db:               db,
		userService:      us,
		walletService:    ws,
		challengeService: cs,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger,
		app.userService, app.walletService, app.challengeService, app.config.SecretKey)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	} else {
		if err := s.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
