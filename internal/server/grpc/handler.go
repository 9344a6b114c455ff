package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/challengepool/internal/common"
	pb "github.com/dmitrijs2005/challengepool/internal/proto"
	"github.com/dmitrijs2005/challengepool/internal/server/models"
	"github.com/dmitrijs2005/challengepool/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// mapError converts service-level sentinel errors to gRPC statuses.
func mapError(err error) error {
	switch {
	case errors.Is(err, common.ErrUnauthorized):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, common.ErrUsernameTaken):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, common.ErrNotFound),
		errors.Is(err, common.ErrAccountNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrInvalidAmount),
		errors.Is(err, common.ErrInvalidEntryFee),
		errors.Is(err, common.ErrNoWinners):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrInsufficientFunds),
		errors.Is(err, common.ErrInsufficientFundsForEntryFee),
		errors.Is(err, common.ErrChallengeEnded),
		errors.Is(err, common.ErrChallengeNotEnded),
		errors.Is(err, common.ErrAlreadySettled):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, common.ErrNotWhitelisted),
		errors.Is(err, common.ErrNotAuthorized):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, common.ErrRefreshTokenExpired):
		return status.Error(codes.Unauthenticated, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func toProtoChallenge(ch *models.Challenge) *pb.Challenge {
	out := &pb.Challenge{
		Id:           ch.ID,
		Name:         ch.Name,
		CreatorId:    ch.CreatorID,
		EntryFee:     ch.EntryFee,
		StartTime:    ch.StartTime.Unix(),
		EndTime:      ch.EndTime.Unix(),
		Pool:         ch.Pool,
		Status:       string(ch.Status),
		Whitelist:    ch.Whitelist,
		Participants: ch.Participants,
	}
	if ch.SettledAt != nil {
		out.SettledAt = ch.SettledAt.Unix()
	}
	for _, w := range ch.Winners {
		out.Winners = append(out.Winners, &pb.Winner{Username: w.Username, Share: w.Share})
	}
	return out
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {

	s.logger.Info(ctx, "Registration request")

	account, err := s.users.Register(ctx, req.Username, []byte(req.Password))
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, mapError(err)
	}

	s.logger.Info(ctx, "Registered", "username", account.Username)
	return &pb.RegisterResponse{AccountId: account.ID, Username: account.Username}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	tokens, err := s.users.Login(ctx, req.Username, []byte(req.Password))
	if err != nil {
		return nil, mapError(err)
	}

	return &pb.LoginResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {

	tokens, err := s.users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, mapError(err)
	}

	return &pb.RefreshTokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) Deposit(ctx context.Context, req *pb.DepositRequest) (*pb.DepositResponse, error) {

	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	if err := s.wallets.Deposit(ctx, accountID, req.Amount); err != nil {
		return nil, mapError(err)
	}

	balance, err := s.wallets.Balance(ctx, accountID)
	if err != nil {
		return nil, mapError(err)
	}

	return &pb.DepositResponse{Balance: balance}, nil
}

func (s *GRPCServer) Transfer(ctx context.Context, req *pb.TransferRequest) (*pb.TransferResponse, error) {

	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	if err := s.wallets.Transfer(ctx, accountID, req.ToUsername, req.Amount); err != nil {
		return nil, mapError(err)
	}

	balance, err := s.wallets.Balance(ctx, accountID)
	if err != nil {
		return nil, mapError(err)
	}

	return &pb.TransferResponse{Balance: balance}, nil
}

func (s *GRPCServer) GetBalance(ctx context.Context, req *pb.GetBalanceRequest) (*pb.GetBalanceResponse, error) {

	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	var balance int64
	if req.Username == "" {
		balance, err = s.wallets.Balance(ctx, accountID)
	} else {
		balance, err = s.wallets.BalanceOf(ctx, req.Username)
	}
	if err != nil {
		return nil, mapError(err)
	}

	return &pb.GetBalanceResponse{Balance: balance}, nil
}

func (s *GRPCServer) ListPayouts(ctx context.Context, req *pb.ListPayoutsRequest) (*pb.ListPayoutsResponse, error) {

	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	payouts, err := s.wallets.ListPayouts(ctx, accountID)
	if err != nil {
		return nil, mapError(err)
	}

	resp := &pb.ListPayoutsResponse{}
	for _, p := range payouts {
		out := &pb.Payout{
			Id:        p.ID,
			Amount:    p.Amount,
			Kind:      string(p.Kind),
			CreatedAt: p.CreatedAt.Unix(),
		}
		if p.ChallengeID != nil {
			out.ChallengeId = *p.ChallengeID
		}
		resp.Payouts = append(resp.Payouts, out)
	}
	return resp, nil
}

func (s *GRPCServer) CreateChallenge(ctx context.Context, req *pb.CreateChallengeRequest) (*pb.CreateChallengeResponse, error) {

	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	ch, err := s.challenges.Create(ctx, accountID, services.CreateChallengeParams{
		Name:            req.Name,
		EntryFee:        req.EntryFee,
		StartTime:       time.Unix(req.StartTime, 0),
		EndTime:         time.Unix(req.EndTime, 0),
		Whitelist:       req.Whitelist,
		AttachedDeposit: req.AttachedDeposit,
	})
	if err != nil {
		s.logger.Error(ctx, "create challenge failed", "error", err.Error())
		return nil, mapError(err)
	}

	s.logger.Info(ctx, "Challenge created", "id", ch.ID, "name", ch.Name)
	return &pb.CreateChallengeResponse{Challenge: toProtoChallenge(ch)}, nil
}

func (s *GRPCServer) JoinChallenge(ctx context.Context, req *pb.JoinChallengeRequest) (*pb.JoinChallengeResponse, error) {

	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	if err := s.challenges.Join(ctx, accountID, req.ChallengeId); err != nil {
		return nil, mapError(err)
	}

	return &pb.JoinChallengeResponse{}, nil
}

func (s *GRPCServer) SettleChallenge(ctx context.Context, req *pb.SettleChallengeRequest) (*pb.SettleChallengeResponse, error) {

	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	ch, err := s.challenges.Settle(ctx, accountID, req.ChallengeId, req.Winners)
	if err != nil {
		s.logger.Error(ctx, "settle failed", "challenge_id", req.ChallengeId, "error", err.Error())
		return nil, mapError(err)
	}

	s.logger.Info(ctx, "Challenge settled", "id", ch.ID)
	return &pb.SettleChallengeResponse{Challenge: toProtoChallenge(ch)}, nil
}

func (s *GRPCServer) GetChallenge(ctx context.Context, req *pb.GetChallengeRequest) (*pb.GetChallengeResponse, error) {

	if _, err := accountIDFromContext(ctx); err != nil {
		return nil, mapError(err)
	}

	ch, err := s.challenges.Get(ctx, req.ChallengeId)
	if err != nil {
		return nil, mapError(err)
	}

	return &pb.GetChallengeResponse{Challenge: toProtoChallenge(ch)}, nil
}

func (s *GRPCServer) ListChallenges(ctx context.Context, req *pb.ListChallengesRequest) (*pb.ListChallengesResponse, error) {

	if _, err := accountIDFromContext(ctx); err != nil {
		return nil, mapError(err)
	}

	list, err := s.challenges.List(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	resp := &pb.ListChallengesResponse{}
	for _, ch := range list {
		resp.Challenges = append(resp.Challenges, toProtoChallenge(ch))
	}
	return resp, nil
}
