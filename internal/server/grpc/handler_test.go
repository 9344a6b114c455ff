package grpc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/challengepool/internal/common"
	pb "github.com/dmitrijs2005/challengepool/internal/proto"
	"github.com/dmitrijs2005/challengepool/internal/server/models"
	"github.com/dmitrijs2005/challengepool/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ---- fakes ----

type fakeUser struct {
	regResp *models.Account
	regErr  error

	loginResp *services.TokenPair
	loginErr  error

	refreshResp *services.TokenPair
	refreshErr  error
}

func (f *fakeUser) Register(ctx context.Context, username string, password []byte) (*models.Account, error) {
	return f.regResp, f.regErr
}
func (f *fakeUser) Login(ctx context.Context, username string, password []byte) (*services.TokenPair, error) {
	return f.loginResp, f.loginErr
}
func (f *fakeUser) RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error) {
	return f.refreshResp, f.refreshErr
}

type fakeWallet struct {
	depositErr  error
	transferErr error
	balance     int64
	balanceErr  error
	payouts     []*models.Payout
	payoutsErr  error

	lastTransferTo     string
	lastTransferAmount int64
}

func (f *fakeWallet) Deposit(ctx context.Context, accountID string, amount int64) error {
	return f.depositErr
}
func (f *fakeWallet) Transfer(ctx context.Context, fromID string, toUsername string, amount int64) error {
	f.lastTransferTo = toUsername
	f.lastTransferAmount = amount
	return f.transferErr
}
func (f *fakeWallet) Balance(ctx context.Context, accountID string) (int64, error) {
	return f.balance, f.balanceErr
}
func (f *fakeWallet) BalanceOf(ctx context.Context, username string) (int64, error) {
	return f.balance, f.balanceErr
}
func (f *fakeWallet) ListPayouts(ctx context.Context, accountID string) ([]*models.Payout, error) {
	return f.payouts, f.payoutsErr
}

type fakeChallenge struct {
	createResp *models.Challenge
	createErr  error
	joinErr    error
	settleResp *models.Challenge
	settleErr  error
	getResp    *models.Challenge
	getErr     error
	listResp   []*models.Challenge
	listErr    error

	lastCreateParams services.CreateChallengeParams
	lastSettleWinner []string
}

func (f *fakeChallenge) Create(ctx context.Context, creatorID string, p services.CreateChallengeParams) (*models.Challenge, error) {
	f.lastCreateParams = p
	return f.createResp, f.createErr
}
func (f *fakeChallenge) Join(ctx context.Context, callerID string, id int64) error {
	return f.joinErr
}
func (f *fakeChallenge) Settle(ctx context.Context, callerID string, id int64, winnerUsernames []string) (*models.Challenge, error) {
	f.lastSettleWinner = winnerUsernames
	return f.settleResp, f.settleErr
}
func (f *fakeChallenge) Get(ctx context.Context, id int64) (*models.Challenge, error) {
	return f.getResp, f.getErr
}
func (f *fakeChallenge) List(ctx context.Context) ([]*models.Challenge, error) {
	return f.listResp, f.listErr
}

// ---- helpers ----

func newServer(u userSvc, w walletSvc, c challengeSvc) *GRPCServer {
	return &GRPCServer{
		address:    "127.0.0.1:0",
		users:      u,
		wallets:    w,
		challenges: c,
		logger:     nopLogger{},
		jwtSecret:  []byte("k"),
	}
}

func authedCtx(accountID string) context.Context {
	return context.WithValue(context.Background(), accountIDKey, accountID)
}

// ---- tests ----

func TestPing_OK(t *testing.T) {
	s := newServer(&fakeUser{}, &fakeWallet{}, &fakeChallenge{})
	resp, err := s.Ping(context.Background(), &pb.PingRequest{})
	if err != nil {
		t.Fatalf("Ping error: %v", err)
	}
	if resp.GetStatus() != "OK" {
		t.Fatalf("unexpected status: %q", resp.GetStatus())
	}
}

func TestRegister_OK(t *testing.T) {
	u := &fakeUser{regResp: &models.Account{ID: "42", Username: "alice"}}
	s := newServer(u, &fakeWallet{}, &fakeChallenge{})
	resp, err := s.Register(context.Background(), &pb.RegisterRequest{Username: "alice", Password: "pw"})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if resp.GetAccountId() != "42" || resp.GetUsername() != "alice" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestRegister_UsernameTaken(t *testing.T) {
	u := &fakeUser{regErr: common.ErrUsernameTaken}
	s := newServer(u, &fakeWallet{}, &fakeChallenge{})
	_, err := s.Register(context.Background(), &pb.RegisterRequest{Username: "alice", Password: "pw"})
	if status.Code(err) != codes.AlreadyExists {
		t.Fatalf("want AlreadyExists, got %v", status.Code(err))
	}
}

func TestLogin_OK_Unauthorized_Internal(t *testing.T) {
	u := &fakeUser{loginResp: &services.TokenPair{AccessToken: "A", RefreshToken: "R"}}
	s := newServer(u, &fakeWallet{}, &fakeChallenge{})
	resp, err := s.Login(context.Background(), &pb.LoginRequest{Username: "u", Password: "p"})
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if resp.GetAccessToken() != "A" || resp.GetRefreshToken() != "R" {
		t.Fatalf("unexpected tokens: %+v", resp)
	}

	s2 := newServer(&fakeUser{loginErr: common.ErrUnauthorized}, &fakeWallet{}, &fakeChallenge{})
	_, err = s2.Login(context.Background(), &pb.LoginRequest{Username: "u", Password: "x"})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", status.Code(err))
	}

	s3 := newServer(&fakeUser{loginErr: errors.New("boom")}, &fakeWallet{}, &fakeChallenge{})
	_, err = s3.Login(context.Background(), &pb.LoginRequest{Username: "u", Password: "x"})
	if status.Code(err) != codes.Internal {
		t.Fatalf("want Internal, got %v", status.Code(err))
	}
}

func TestRefreshToken_OK_and_Expired(t *testing.T) {
	u := &fakeUser{refreshResp: &services.TokenPair{AccessToken: "a", RefreshToken: "r"}}
	s := newServer(u, &fakeWallet{}, &fakeChallenge{})
	resp, err := s.RefreshToken(context.Background(), &pb.RefreshTokenRequest{RefreshToken: "r0"})
	if err != nil {
		t.Fatalf("RefreshToken error: %v", err)
	}
	if resp.GetAccessToken() != "a" || resp.GetRefreshToken() != "r" {
		t.Fatalf("unexpected tokens: %+v", resp)
	}

	s2 := newServer(&fakeUser{refreshErr: common.ErrRefreshTokenExpired}, &fakeWallet{}, &fakeChallenge{})
	_, err = s2.RefreshToken(context.Background(), &pb.RefreshTokenRequest{RefreshToken: "r0"})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", status.Code(err))
	}
}

func TestDeposit_OK(t *testing.T) {
	w := &fakeWallet{balance: 150}
	s := newServer(&fakeUser{}, w, &fakeChallenge{})
	resp, err := s.Deposit(authedCtx("acc-1"), &pb.DepositRequest{Amount: 150})
	if err != nil {
		t.Fatalf("Deposit error: %v", err)
	}
	if resp.GetBalance() != 150 {
		t.Fatalf("unexpected balance: %d", resp.GetBalance())
	}
}

func TestDeposit_RequiresAuth(t *testing.T) {
	s := newServer(&fakeUser{}, &fakeWallet{}, &fakeChallenge{})
	_, err := s.Deposit(context.Background(), &pb.DepositRequest{Amount: 1})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", status.Code(err))
	}
}

func TestDeposit_InvalidAmount(t *testing.T) {
	w := &fakeWallet{depositErr: common.ErrInvalidAmount}
	s := newServer(&fakeUser{}, w, &fakeChallenge{})
	_, err := s.Deposit(authedCtx("acc-1"), &pb.DepositRequest{Amount: 0})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("want InvalidArgument, got %v", status.Code(err))
	}
}

func TestTransfer_OK_and_Errors(t *testing.T) {
	w := &fakeWallet{balance: 60}
	s := newServer(&fakeUser{}, w, &fakeChallenge{})
	resp, err := s.Transfer(authedCtx("acc-1"), &pb.TransferRequest{ToUsername: "bob", Amount: 40})
	if err != nil {
		t.Fatalf("Transfer error: %v", err)
	}
	if resp.GetBalance() != 60 {
		t.Fatalf("unexpected balance: %d", resp.GetBalance())
	}
	if w.lastTransferTo != "bob" || w.lastTransferAmount != 40 {
		t.Fatalf("unexpected transfer args: %q %d", w.lastTransferTo, w.lastTransferAmount)
	}

	cases := []struct {
		err  error
		code codes.Code
	}{
		{common.ErrInsufficientFunds, codes.FailedPrecondition},
		{common.ErrAccountNotFound, codes.NotFound},
		{common.ErrInvalidAmount, codes.InvalidArgument},
	}
	for _, tc := range cases {
		s2 := newServer(&fakeUser{}, &fakeWallet{transferErr: tc.err}, &fakeChallenge{})
		_, err := s2.Transfer(authedCtx("acc-1"), &pb.TransferRequest{ToUsername: "bob", Amount: 40})
		if status.Code(err) != tc.code {
			t.Fatalf("err %v: want %v, got %v", tc.err, tc.code, status.Code(err))
		}
	}
}

func TestGetBalance_SelfAndOther(t *testing.T) {
	w := &fakeWallet{balance: 77}
	s := newServer(&fakeUser{}, w, &fakeChallenge{})

	resp, err := s.GetBalance(authedCtx("acc-1"), &pb.GetBalanceRequest{})
	if err != nil {
		t.Fatalf("GetBalance error: %v", err)
	}
	if resp.GetBalance() != 77 {
		t.Fatalf("unexpected balance: %d", resp.GetBalance())
	}

	resp, err = s.GetBalance(authedCtx("acc-1"), &pb.GetBalanceRequest{Username: "bob"})
	if err != nil {
		t.Fatalf("GetBalance error: %v", err)
	}
	if resp.GetBalance() != 77 {
		t.Fatalf("unexpected balance: %d", resp.GetBalance())
	}
}

func TestListPayouts_OK(t *testing.T) {
	chID := int64(7)
	w := &fakeWallet{payouts: []*models.Payout{
		{ID: "p1", Amount: 40, Kind: models.PayoutTransfer, CreatedAt: time.Now()},
		{ID: "p2", Amount: 100, Kind: models.PayoutSettlement, ChallengeID: &chID, CreatedAt: time.Now()},
	}}
	s := newServer(&fakeUser{}, w, &fakeChallenge{})

	resp, err := s.ListPayouts(authedCtx("acc-1"), &pb.ListPayoutsRequest{})
	if err != nil {
		t.Fatalf("ListPayouts error: %v", err)
	}
	if len(resp.GetPayouts()) != 2 {
		t.Fatalf("unexpected payouts: %+v", resp.GetPayouts())
	}
	if resp.GetPayouts()[1].GetChallengeId() != 7 {
		t.Fatalf("challenge id not mapped: %+v", resp.GetPayouts()[1])
	}
	if resp.GetPayouts()[0].GetKind() != "transfer" {
		t.Fatalf("unexpected kind: %q", resp.GetPayouts()[0].GetKind())
	}
}

func TestCreateChallenge_OK(t *testing.T) {
	start := time.Now().Unix()
	end := time.Now().Add(time.Hour).Unix()
	c := &fakeChallenge{createResp: &models.Challenge{
		ID: 1, Name: "pushups", EntryFee: 100, Pool: 100, Status: models.StatusOpen,
		StartTime: time.Unix(start, 0), EndTime: time.Unix(end, 0),
	}}
	s := newServer(&fakeUser{}, &fakeWallet{}, c)

	resp, err := s.CreateChallenge(authedCtx("acc-1"), &pb.CreateChallengeRequest{
		Name: "pushups", EntryFee: 100, StartTime: start, EndTime: end,
		Whitelist: []string{"bob"}, AttachedDeposit: 100,
	})
	if err != nil {
		t.Fatalf("CreateChallenge error: %v", err)
	}
	if resp.GetChallenge().GetId() != 1 || resp.GetChallenge().GetPool() != 100 {
		t.Fatalf("unexpected challenge: %+v", resp.GetChallenge())
	}
	if c.lastCreateParams.EntryFee != 100 || c.lastCreateParams.AttachedDeposit != 100 {
		t.Fatalf("params not passed through: %+v", c.lastCreateParams)
	}
	if !c.lastCreateParams.EndTime.Equal(time.Unix(end, 0)) {
		t.Fatalf("end time not mapped: %v", c.lastCreateParams.EndTime)
	}
}

func TestCreateChallenge_InvalidFee(t *testing.T) {
	c := &fakeChallenge{createErr: common.ErrInvalidEntryFee}
	s := newServer(&fakeUser{}, &fakeWallet{}, c)
	_, err := s.CreateChallenge(authedCtx("acc-1"), &pb.CreateChallengeRequest{Name: "x"})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("want InvalidArgument, got %v", status.Code(err))
	}
}

func TestJoinChallenge_ErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code codes.Code
	}{
		{nil, codes.OK},
		{common.ErrNotFound, codes.NotFound},
		{common.ErrChallengeEnded, codes.FailedPrecondition},
		{common.ErrNotWhitelisted, codes.PermissionDenied},
		{common.ErrInsufficientFundsForEntryFee, codes.FailedPrecondition},
	}
	for _, tc := range cases {
		s := newServer(&fakeUser{}, &fakeWallet{}, &fakeChallenge{joinErr: tc.err})
		_, err := s.JoinChallenge(authedCtx("acc-1"), &pb.JoinChallengeRequest{ChallengeId: 1})
		if status.Code(err) != tc.code {
			t.Fatalf("err %v: want %v, got %v", tc.err, tc.code, status.Code(err))
		}
	}
}

func TestSettleChallenge_OK(t *testing.T) {
	now := time.Now()
	c := &fakeChallenge{settleResp: &models.Challenge{
		ID: 3, Name: "plank", Pool: 300, Status: models.StatusSettled,
		StartTime: now.Add(-2 * time.Hour), EndTime: now.Add(-time.Hour), SettledAt: &now,
		Winners: []models.Winner{
			{ChallengeID: 3, Position: 0, Username: "alice", Share: 150},
			{ChallengeID: 3, Position: 1, Username: "bob", Share: 150},
		},
	}}
	s := newServer(&fakeUser{}, &fakeWallet{}, c)

	resp, err := s.SettleChallenge(authedCtx("admin"), &pb.SettleChallengeRequest{
		ChallengeId: 3, Winners: []string{"alice", "bob"},
	})
	if err != nil {
		t.Fatalf("SettleChallenge error: %v", err)
	}
	ch := resp.GetChallenge()
	if ch.GetStatus() != "settled" || ch.GetSettledAt() == 0 {
		t.Fatalf("unexpected challenge: %+v", ch)
	}
	if len(ch.GetWinners()) != 2 || ch.GetWinners()[0].GetShare() != 150 {
		t.Fatalf("winners not mapped: %+v", ch.GetWinners())
	}
	if len(c.lastSettleWinner) != 2 {
		t.Fatalf("winners not passed through: %+v", c.lastSettleWinner)
	}
}

func TestSettleChallenge_ErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code codes.Code
	}{
		{common.ErrNotAuthorized, codes.PermissionDenied},
		{common.ErrChallengeNotEnded, codes.FailedPrecondition},
		{common.ErrAlreadySettled, codes.FailedPrecondition},
		{common.ErrNoWinners, codes.InvalidArgument},
	}
	for _, tc := range cases {
		s := newServer(&fakeUser{}, &fakeWallet{}, &fakeChallenge{settleErr: tc.err})
		_, err := s.SettleChallenge(authedCtx("acc-1"), &pb.SettleChallengeRequest{ChallengeId: 1, Winners: []string{"a"}})
		if status.Code(err) != tc.code {
			t.Fatalf("err %v: want %v, got %v", tc.err, tc.code, status.Code(err))
		}
	}
}

func TestGetChallenge_OK_and_NotFound(t *testing.T) {
	c := &fakeChallenge{getResp: &models.Challenge{
		ID: 5, Name: "squats", Status: models.StatusOpen,
		StartTime: time.Now(), EndTime: time.Now().Add(time.Hour),
		Whitelist: []string{"alice"}, Participants: []string{"alice", "alice"},
	}}
	s := newServer(&fakeUser{}, &fakeWallet{}, c)

	resp, err := s.GetChallenge(authedCtx("acc-1"), &pb.GetChallengeRequest{ChallengeId: 5})
	if err != nil {
		t.Fatalf("GetChallenge error: %v", err)
	}
	if len(resp.GetChallenge().GetParticipants()) != 2 {
		t.Fatalf("participants not mapped: %+v", resp.GetChallenge())
	}

	s2 := newServer(&fakeUser{}, &fakeWallet{}, &fakeChallenge{getErr: common.ErrNotFound})
	_, err = s2.GetChallenge(authedCtx("acc-1"), &pb.GetChallengeRequest{ChallengeId: 404})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("want NotFound, got %v", status.Code(err))
	}
}

func TestListChallenges_OK(t *testing.T) {
	c := &fakeChallenge{listResp: []*models.Challenge{
		{ID: 2, Name: "b", StartTime: time.Now(), EndTime: time.Now().Add(time.Hour)},
		{ID: 1, Name: "a", StartTime: time.Now(), EndTime: time.Now().Add(time.Hour)},
	}}
	s := newServer(&fakeUser{}, &fakeWallet{}, c)

	resp, err := s.ListChallenges(authedCtx("acc-1"), &pb.ListChallengesRequest{})
	if err != nil {
		t.Fatalf("ListChallenges error: %v", err)
	}
	if len(resp.GetChallenges()) != 2 || resp.GetChallenges()[0].GetId() != 2 {
		t.Fatalf("unexpected challenges: %+v", resp.GetChallenges())
	}
}
