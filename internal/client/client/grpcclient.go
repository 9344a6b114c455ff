package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/challengepool/internal/client/models"
	"github.com/dmitrijs2005/challengepool/internal/common"
	pb "github.com/dmitrijs2005/challengepool/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL  string
	conn         *grpc.ClientConn
	client       pb.ChallengePoolServiceClient
	accessToken  string
	refreshToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, ok := metadata.FromOutgoingContext(ctx)
	if !ok {
		md = metadata.MD{}
	} else {
		md = md.Copy()
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	ctx = withAccessToken(ctx, s.accessToken)

	err := invoker(ctx, method, req, reply, cc, opts...)

	if err != nil {

		st, ok := status.FromError(err)
		if !ok {
			return err
		}

		if st.Code() != codes.Unauthenticated {
			return err
		}
		if st.Message() != common.ErrTokenExpired.Error() {
			return err
		}

		if s.refreshToken == "" {
			return err
		}

		refreshTokenResponse, err := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: s.refreshToken})
		if err != nil {
			return err
		}

		s.accessToken = refreshTokenResponse.AccessToken
		s.refreshToken = refreshTokenResponse.RefreshToken

		ctx = withAccessToken(ctx, s.accessToken)
		return invoker(ctx, method, req, reply, cc, opts...)

	}

	return err
}

func NewChallengePoolClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()), grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewChallengePoolServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("rpc error: %w", err)
	}
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound, codes.InvalidArgument, codes.FailedPrecondition, codes.AlreadyExists:
		// Domain rejections carry a readable message from the server.
		return errors.New(st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func (s *GRPCClient) Register(ctx context.Context, username string, password []byte) error {

	req := &pb.RegisterRequest{Username: username, Password: string(password)}

	_, err := s.client.Register(ctx, req)
	if err != nil {
		return s.mapError(err)
	}

	return nil
}

func (s *GRPCClient) Login(ctx context.Context, username string, password []byte) error {

	req := &pb.LoginRequest{Username: username, Password: string(password)}

	resp, err := s.client.Login(ctx, req)
	if err != nil {
		return s.mapError(err)
	}

	s.accessToken = resp.AccessToken
	s.refreshToken = resp.RefreshToken

	return nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	req := &pb.PingRequest{}

	resp, err := s.client.Ping(ctx, req)
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) Deposit(ctx context.Context, amount int64) (int64, error) {

	resp, err := s.client.Deposit(ctx, &pb.DepositRequest{Amount: amount})
	if err != nil {
		return 0, s.mapError(err)
	}
	return resp.Balance, nil
}

func (s *GRPCClient) Transfer(ctx context.Context, toUsername string, amount int64) (int64, error) {

	resp, err := s.client.Transfer(ctx, &pb.TransferRequest{ToUsername: toUsername, Amount: amount})
	if err != nil {
		return 0, s.mapError(err)
	}
	return resp.Balance, nil
}

func (s *GRPCClient) GetBalance(ctx context.Context, username string) (int64, error) {

	resp, err := s.client.GetBalance(ctx, &pb.GetBalanceRequest{Username: username})
	if err != nil {
		return 0, s.mapError(err)
	}
	return resp.Balance, nil
}

func (s *GRPCClient) ListPayouts(ctx context.Context) ([]*models.Payout, error) {

	resp, err := s.client.ListPayouts(ctx, &pb.ListPayoutsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	var result []*models.Payout
	for _, p := range resp.Payouts {
		result = append(result, &models.Payout{
			ID:          p.Id,
			Amount:      p.Amount,
			Kind:        p.Kind,
			ChallengeID: p.ChallengeId,
			CreatedAt:   time.Unix(p.CreatedAt, 0),
		})
	}
	return result, nil
}

func (s *GRPCClient) CreateChallenge(ctx context.Context, draft models.ChallengeDraft) (*models.Challenge, error) {

	req := &pb.CreateChallengeRequest{
		Name:            draft.Name,
		EntryFee:        draft.EntryFee,
		StartTime:       draft.StartTime.Unix(),
		EndTime:         draft.EndTime.Unix(),
		Whitelist:       draft.Whitelist,
		AttachedDeposit: draft.AttachedDeposit,
	}

	resp, err := s.client.CreateChallenge(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromProtoChallenge(resp.Challenge), nil
}

func (s *GRPCClient) JoinChallenge(ctx context.Context, id int64) error {

	_, err := s.client.JoinChallenge(ctx, &pb.JoinChallengeRequest{ChallengeId: id})
	if err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) SettleChallenge(ctx context.Context, id int64, winners []string) (*models.Challenge, error) {

	resp, err := s.client.SettleChallenge(ctx, &pb.SettleChallengeRequest{ChallengeId: id, Winners: winners})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromProtoChallenge(resp.Challenge), nil
}

func (s *GRPCClient) GetChallenge(ctx context.Context, id int64) (*models.Challenge, error) {

	resp, err := s.client.GetChallenge(ctx, &pb.GetChallengeRequest{ChallengeId: id})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromProtoChallenge(resp.Challenge), nil
}

func (s *GRPCClient) ListChallenges(ctx context.Context) ([]*models.Challenge, error) {

	resp, err := s.client.ListChallenges(ctx, &pb.ListChallengesRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	var result []*models.Challenge
	for _, ch := range resp.Challenges {
		result = append(result, fromProtoChallenge(ch))
	}
	return result, nil
}

func fromProtoChallenge(ch *pb.Challenge) *models.Challenge {
	if ch == nil {
		return nil
	}
	out := &models.Challenge{
		ID:           ch.Id,
		Name:         ch.Name,
		EntryFee:     ch.EntryFee,
		Pool:         ch.Pool,
		Status:       ch.Status,
		StartTime:    time.Unix(ch.StartTime, 0),
		EndTime:      time.Unix(ch.EndTime, 0),
		Whitelist:    ch.Whitelist,
		Participants: ch.Participants,
	}
	if ch.SettledAt != 0 {
		t := time.Unix(ch.SettledAt, 0)
		out.SettledAt = &t
	}
	for _, w := range ch.Winners {
		out.Winners = append(out.Winners, models.Winner{Username: w.Username, Share: w.Share})
	}
	return out
}
