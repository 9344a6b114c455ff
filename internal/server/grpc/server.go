package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/challengepool/internal/logging"
	pb "github.com/dmitrijs2005/challengepool/internal/proto"
	"github.com/dmitrijs2005/challengepool/internal/server/models"
	"github.com/dmitrijs2005/challengepool/internal/server/services"
	"google.golang.org/grpc"
)

// Service interfaces consumed by the handlers. The concrete implementations
// live in the services package; tests substitute fakes.

type userSvc interface {
	Register(ctx context.Context, username string, password []byte) (*models.Account, error)
	Login(ctx context.Context, username string, password []byte) (*services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
}

type walletSvc interface {
	Deposit(ctx context.Context, accountID string, amount int64) error
	Transfer(ctx context.Context, fromID string, toUsername string, amount int64) error
	Balance(ctx context.Context, accountID string) (int64, error)
	BalanceOf(ctx context.Context, username string) (int64, error)
	ListPayouts(ctx context.Context, accountID string) ([]*models.Payout, error)
}

type challengeSvc interface {
	Create(ctx context.Context, creatorID string, p services.CreateChallengeParams) (*models.Challenge, error)
	Join(ctx context.Context, callerID string, id int64) error
	Settle(ctx context.Context, callerID string, id int64, winnerUsernames []string) (*models.Challenge, error)
	Get(ctx context.Context, id int64) (*models.Challenge, error)
	List(ctx context.Context) ([]*models.Challenge, error)
}

type GRPCServer struct {
	pb.UnimplementedChallengePoolServiceServer
	address    string
	users      userSvc
	wallets    walletSvc
	challenges challengeSvc
	logger     logging.Logger
	jwtSecret  []byte
}

func NewGRPCServer(a string, l logging.Logger, us userSvc, ws walletSvc, cs challengeSvc, secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:    a,
		logger:     l.With("module", "grpc_server"),
		users:      us,
		wallets:    ws,
		challenges: cs,
		jwtSecret:  []byte(secretKey),
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))

	pb.RegisterChallengePoolServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
