// Hand-maintained message bindings for challengepool.proto, kept in the
// legacy protoc-gen-go layout. Keep field numbers in sync with the .proto
// file when editing.

package proto

import (
	proto "github.com/golang/protobuf/proto"
)

type RegisterRequest struct {
	Username string `protobuf:"bytes,1,opt,name=username,proto3" json:"username,omitempty"`
	Password string `protobuf:"bytes,2,opt,name=password,proto3" json:"password,omitempty"`
}

func (m *RegisterRequest) Reset()         { *m = RegisterRequest{} }
func (m *RegisterRequest) String() string { return proto.CompactTextString(m) }
func (*RegisterRequest) ProtoMessage()    {}

func (m *RegisterRequest) GetUsername() string {
	if m != nil {
		return m.Username
	}
	return ""
}

func (m *RegisterRequest) GetPassword() string {
	if m != nil {
		return m.Password
	}
	return ""
}

type RegisterResponse struct {
	AccountId string `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	Username  string `protobuf:"bytes,2,opt,name=username,proto3" json:"username,omitempty"`
}

func (m *RegisterResponse) Reset()         { *m = RegisterResponse{} }
func (m *RegisterResponse) String() string { return proto.CompactTextString(m) }
func (*RegisterResponse) ProtoMessage()    {}

func (m *RegisterResponse) GetAccountId() string {
	if m != nil {
		return m.AccountId
	}
	return ""
}

func (m *RegisterResponse) GetUsername() string {
	if m != nil {
		return m.Username
	}
	return ""
}

type LoginRequest struct {
	Username string `protobuf:"bytes,1,opt,name=username,proto3" json:"username,omitempty"`
	Password string `protobuf:"bytes,2,opt,name=password,proto3" json:"password,omitempty"`
}

func (m *LoginRequest) Reset()         { *m = LoginRequest{} }
func (m *LoginRequest) String() string { return proto.CompactTextString(m) }
func (*LoginRequest) ProtoMessage()    {}

func (m *LoginRequest) GetUsername() string {
	if m != nil {
		return m.Username
	}
	return ""
}

func (m *LoginRequest) GetPassword() string {
	if m != nil {
		return m.Password
	}
	return ""
}

type LoginResponse struct {
	AccessToken  string `protobuf:"bytes,1,opt,name=access_token,json=accessToken,proto3" json:"access_token,omitempty"`
	RefreshToken string `protobuf:"bytes,2,opt,name=refresh_token,json=refreshToken,proto3" json:"refresh_token,omitempty"`
}

func (m *LoginResponse) Reset()         { *m = LoginResponse{} }
func (m *LoginResponse) String() string { return proto.CompactTextString(m) }
func (*LoginResponse) ProtoMessage()    {}

func (m *LoginResponse) GetAccessToken() string {
	if m != nil {
		return m.AccessToken
	}
	return ""
}

func (m *LoginResponse) GetRefreshToken() string {
	if m != nil {
		return m.RefreshToken
	}
	return ""
}

type RefreshTokenRequest struct {
	RefreshToken string `protobuf:"bytes,1,opt,name=refresh_token,json=refreshToken,proto3" json:"refresh_token,omitempty"`
}

func (m *RefreshTokenRequest) Reset()         { *m = RefreshTokenRequest{} }
func (m *RefreshTokenRequest) String() string { return proto.CompactTextString(m) }
func (*RefreshTokenRequest) ProtoMessage()    {}

func (m *RefreshTokenRequest) GetRefreshToken() string {
	if m != nil {
		return m.RefreshToken
	}
	return ""
}

type RefreshTokenResponse struct {
	AccessToken  string `protobuf:"bytes,1,opt,name=access_token,json=accessToken,proto3" json:"access_token,omitempty"`
	RefreshToken string `protobuf:"bytes,2,opt,name=refresh_token,json=refreshToken,proto3" json:"refresh_token,omitempty"`
}

func (m *RefreshTokenResponse) Reset()         { *m = RefreshTokenResponse{} }
func (m *RefreshTokenResponse) String() string { return proto.CompactTextString(m) }
func (*RefreshTokenResponse) ProtoMessage()    {}

func (m *RefreshTokenResponse) GetAccessToken() string {
	if m != nil {
		return m.AccessToken
	}
	return ""
}

func (m *RefreshTokenResponse) GetRefreshToken() string {
	if m != nil {
		return m.RefreshToken
	}
	return ""
}

type PingRequest struct {
}

func (m *PingRequest) Reset()         { *m = PingRequest{} }
func (m *PingRequest) String() string { return proto.CompactTextString(m) }
func (*PingRequest) ProtoMessage()    {}

type PingResponse struct {
	Status string `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
}

func (m *PingResponse) Reset()         { *m = PingResponse{} }
func (m *PingResponse) String() string { return proto.CompactTextString(m) }
func (*PingResponse) ProtoMessage()    {}

func (m *PingResponse) GetStatus() string {
	if m != nil {
		return m.Status
	}
	return ""
}

type DepositRequest struct {
	Amount int64 `protobuf:"varint,1,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *DepositRequest) Reset()         { *m = DepositRequest{} }
func (m *DepositRequest) String() string { return proto.CompactTextString(m) }
func (*DepositRequest) ProtoMessage()    {}

func (m *DepositRequest) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

type DepositResponse struct {
	Balance int64 `protobuf:"varint,1,opt,name=balance,proto3" json:"balance,omitempty"`
}

func (m *DepositResponse) Reset()         { *m = DepositResponse{} }
func (m *DepositResponse) String() string { return proto.CompactTextString(m) }
func (*DepositResponse) ProtoMessage()    {}

func (m *DepositResponse) GetBalance() int64 {
	if m != nil {
		return m.Balance
	}
	return 0
}

type TransferRequest struct {
	ToUsername string `protobuf:"bytes,1,opt,name=to_username,json=toUsername,proto3" json:"to_username,omitempty"`
	Amount     int64  `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *TransferRequest) Reset()         { *m = TransferRequest{} }
func (m *TransferRequest) String() string { return proto.CompactTextString(m) }
func (*TransferRequest) ProtoMessage()    {}

func (m *TransferRequest) GetToUsername() string {
	if m != nil {
		return m.ToUsername
	}
	return ""
}

func (m *TransferRequest) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

type TransferResponse struct {
	Balance int64 `protobuf:"varint,1,opt,name=balance,proto3" json:"balance,omitempty"`
}

func (m *TransferResponse) Reset()         { *m = TransferResponse{} }
func (m *TransferResponse) String() string { return proto.CompactTextString(m) }
func (*TransferResponse) ProtoMessage()    {}

func (m *TransferResponse) GetBalance() int64 {
	if m != nil {
		return m.Balance
	}
	return 0
}

type GetBalanceRequest struct {
	Username string `protobuf:"bytes,1,opt,name=username,proto3" json:"username,omitempty"`
}

func (m *GetBalanceRequest) Reset()         { *m = GetBalanceRequest{} }
func (m *GetBalanceRequest) String() string { return proto.CompactTextString(m) }
func (*GetBalanceRequest) ProtoMessage()    {}

func (m *GetBalanceRequest) GetUsername() string {
	if m != nil {
		return m.Username
	}
	return ""
}

type GetBalanceResponse struct {
	Balance int64 `protobuf:"varint,1,opt,name=balance,proto3" json:"balance,omitempty"`
}

func (m *GetBalanceResponse) Reset()         { *m = GetBalanceResponse{} }
func (m *GetBalanceResponse) String() string { return proto.CompactTextString(m) }
func (*GetBalanceResponse) ProtoMessage()    {}

func (m *GetBalanceResponse) GetBalance() int64 {
	if m != nil {
		return m.Balance
	}
	return 0
}

type Winner struct {
	Username string `protobuf:"bytes,1,opt,name=username,proto3" json:"username,omitempty"`
	Share    int64  `protobuf:"varint,2,opt,name=share,proto3" json:"share,omitempty"`
}

func (m *Winner) Reset()         { *m = Winner{} }
func (m *Winner) String() string { return proto.CompactTextString(m) }
func (*Winner) ProtoMessage()    {}

func (m *Winner) GetUsername() string {
	if m != nil {
		return m.Username
	}
	return ""
}

func (m *Winner) GetShare() int64 {
	if m != nil {
		return m.Share
	}
	return 0
}

type Challenge struct {
	Id           int64     `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Name         string    `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	CreatorId    string    `protobuf:"bytes,3,opt,name=creator_id,json=creatorId,proto3" json:"creator_id,omitempty"`
	EntryFee     int64     `protobuf:"varint,4,opt,name=entry_fee,json=entryFee,proto3" json:"entry_fee,omitempty"`
	StartTime    int64     `protobuf:"varint,5,opt,name=start_time,json=startTime,proto3" json:"start_time,omitempty"`
	EndTime      int64     `protobuf:"varint,6,opt,name=end_time,json=endTime,proto3" json:"end_time,omitempty"`
	Pool         int64     `protobuf:"varint,7,opt,name=pool,proto3" json:"pool,omitempty"`
	Status       string    `protobuf:"bytes,8,opt,name=status,proto3" json:"status,omitempty"`
	SettledAt    int64     `protobuf:"varint,9,opt,name=settled_at,json=settledAt,proto3" json:"settled_at,omitempty"`
	Whitelist    []string  `protobuf:"bytes,10,rep,name=whitelist,proto3" json:"whitelist,omitempty"`
	Participants []string  `protobuf:"bytes,11,rep,name=participants,proto3" json:"participants,omitempty"`
	Winners      []*Winner `protobuf:"bytes,12,rep,name=winners,proto3" json:"winners,omitempty"`
}

func (m *Challenge) Reset()         { *m = Challenge{} }
func (m *Challenge) String() string { return proto.CompactTextString(m) }
func (*Challenge) ProtoMessage()    {}

func (m *Challenge) GetId() int64 {
	if m != nil {
		return m.Id
	}
	return 0
}

func (m *Challenge) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *Challenge) GetCreatorId() string {
	if m != nil {
		return m.CreatorId
	}
	return ""
}

func (m *Challenge) GetEntryFee() int64 {
	if m != nil {
		return m.EntryFee
	}
	return 0
}

func (m *Challenge) GetStartTime() int64 {
	if m != nil {
		return m.StartTime
	}
	return 0
}

func (m *Challenge) GetEndTime() int64 {
	if m != nil {
		return m.EndTime
	}
	return 0
}

func (m *Challenge) GetPool() int64 {
	if m != nil {
		return m.Pool
	}
	return 0
}

func (m *Challenge) GetStatus() string {
	if m != nil {
		return m.Status
	}
	return ""
}

func (m *Challenge) GetSettledAt() int64 {
	if m != nil {
		return m.SettledAt
	}
	return 0
}

func (m *Challenge) GetWhitelist() []string {
	if m != nil {
		return m.Whitelist
	}
	return nil
}

func (m *Challenge) GetParticipants() []string {
	if m != nil {
		return m.Participants
	}
	return nil
}

func (m *Challenge) GetWinners() []*Winner {
	if m != nil {
		return m.Winners
	}
	return nil
}

type Payout struct {
	Id          string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Amount      int64  `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
	Kind        string `protobuf:"bytes,3,opt,name=kind,proto3" json:"kind,omitempty"`
	ChallengeId int64  `protobuf:"varint,4,opt,name=challenge_id,json=challengeId,proto3" json:"challenge_id,omitempty"`
	CreatedAt   int64  `protobuf:"varint,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
}

func (m *Payout) Reset()         { *m = Payout{} }
func (m *Payout) String() string { return proto.CompactTextString(m) }
func (*Payout) ProtoMessage()    {}

func (m *Payout) GetId() string {
	if m != nil {
		return m.Id
	}
	return ""
}

func (m *Payout) GetAmount() int64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

func (m *Payout) GetKind() string {
	if m != nil {
		return m.Kind
	}
	return ""
}

func (m *Payout) GetChallengeId() int64 {
	if m != nil {
		return m.ChallengeId
	}
	return 0
}

func (m *Payout) GetCreatedAt() int64 {
	if m != nil {
		return m.CreatedAt
	}
	return 0
}

type CreateChallengeRequest struct {
	Name            string   `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	EntryFee        int64    `protobuf:"varint,2,opt,name=entry_fee,json=entryFee,proto3" json:"entry_fee,omitempty"`
	StartTime       int64    `protobuf:"varint,3,opt,name=start_time,json=startTime,proto3" json:"start_time,omitempty"`
	EndTime         int64    `protobuf:"varint,4,opt,name=end_time,json=endTime,proto3" json:"end_time,omitempty"`
	Whitelist       []string `protobuf:"bytes,5,rep,name=whitelist,proto3" json:"whitelist,omitempty"`
	AttachedDeposit int64    `protobuf:"varint,6,opt,name=attached_deposit,json=attachedDeposit,proto3" json:"attached_deposit,omitempty"`
}

func (m *CreateChallengeRequest) Reset()         { *m = CreateChallengeRequest{} }
func (m *CreateChallengeRequest) String() string { return proto.CompactTextString(m) }
func (*CreateChallengeRequest) ProtoMessage()    {}

func (m *CreateChallengeRequest) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *CreateChallengeRequest) GetEntryFee() int64 {
	if m != nil {
		return m.EntryFee
	}
	return 0
}

func (m *CreateChallengeRequest) GetStartTime() int64 {
	if m != nil {
		return m.StartTime
	}
	return 0
}

func (m *CreateChallengeRequest) GetEndTime() int64 {
	if m != nil {
		return m.EndTime
	}
	return 0
}

func (m *CreateChallengeRequest) GetWhitelist() []string {
	if m != nil {
		return m.Whitelist
	}
	return nil
}

func (m *CreateChallengeRequest) GetAttachedDeposit() int64 {
	if m != nil {
		return m.AttachedDeposit
	}
	return 0
}

type CreateChallengeResponse struct {
	Challenge *Challenge `protobuf:"bytes,1,opt,name=challenge,proto3" json:"challenge,omitempty"`
}

func (m *CreateChallengeResponse) Reset()         { *m = CreateChallengeResponse{} }
func (m *CreateChallengeResponse) String() string { return proto.CompactTextString(m) }
func (*CreateChallengeResponse) ProtoMessage()    {}

func (m *CreateChallengeResponse) GetChallenge() *Challenge {
	if m != nil {
		return m.Challenge
	}
	return nil
}

type JoinChallengeRequest struct {
	ChallengeId int64 `protobuf:"varint,1,opt,name=challenge_id,json=challengeId,proto3" json:"challenge_id,omitempty"`
}

func (m *JoinChallengeRequest) Reset()         { *m = JoinChallengeRequest{} }
func (m *JoinChallengeRequest) String() string { return proto.CompactTextString(m) }
func (*JoinChallengeRequest) ProtoMessage()    {}

func (m *JoinChallengeRequest) GetChallengeId() int64 {
	if m != nil {
		return m.ChallengeId
	}
	return 0
}

type JoinChallengeResponse struct {
}

func (m *JoinChallengeResponse) Reset()         { *m = JoinChallengeResponse{} }
func (m *JoinChallengeResponse) String() string { return proto.CompactTextString(m) }
func (*JoinChallengeResponse) ProtoMessage()    {}

type SettleChallengeRequest struct {
	ChallengeId int64    `protobuf:"varint,1,opt,name=challenge_id,json=challengeId,proto3" json:"challenge_id,omitempty"`
	Winners     []string `protobuf:"bytes,2,rep,name=winners,proto3" json:"winners,omitempty"`
}

func (m *SettleChallengeRequest) Reset()         { *m = SettleChallengeRequest{} }
func (m *SettleChallengeRequest) String() string { return proto.CompactTextString(m) }
func (*SettleChallengeRequest) ProtoMessage()    {}

func (m *SettleChallengeRequest) GetChallengeId() int64 {
	if m != nil {
		return m.ChallengeId
	}
	return 0
}

func (m *SettleChallengeRequest) GetWinners() []string {
	if m != nil {
		return m.Winners
	}
	return nil
}

type SettleChallengeResponse struct {
	Challenge *Challenge `protobuf:"bytes,1,opt,name=challenge,proto3" json:"challenge,omitempty"`
}

func (m *SettleChallengeResponse) Reset()         { *m = SettleChallengeResponse{} }
func (m *SettleChallengeResponse) String() string { return proto.CompactTextString(m) }
func (*SettleChallengeResponse) ProtoMessage()    {}

func (m *SettleChallengeResponse) GetChallenge() *Challenge {
	if m != nil {
		return m.Challenge
	}
	return nil
}

type GetChallengeRequest struct {
	ChallengeId int64 `protobuf:"varint,1,opt,name=challenge_id,json=challengeId,proto3" json:"challenge_id,omitempty"`
}

func (m *GetChallengeRequest) Reset()         { *m = GetChallengeRequest{} }
func (m *GetChallengeRequest) String() string { return proto.CompactTextString(m) }
func (*GetChallengeRequest) ProtoMessage()    {}

func (m *GetChallengeRequest) GetChallengeId() int64 {
	if m != nil {
		return m.ChallengeId
	}
	return 0
}

type GetChallengeResponse struct {
	Challenge *Challenge `protobuf:"bytes,1,opt,name=challenge,proto3" json:"challenge,omitempty"`
}

func (m *GetChallengeResponse) Reset()         { *m = GetChallengeResponse{} }
func (m *GetChallengeResponse) String() string { return proto.CompactTextString(m) }
func (*GetChallengeResponse) ProtoMessage()    {}

func (m *GetChallengeResponse) GetChallenge() *Challenge {
	if m != nil {
		return m.Challenge
	}
	return nil
}

type ListChallengesRequest struct {
}

func (m *ListChallengesRequest) Reset()         { *m = ListChallengesRequest{} }
func (m *ListChallengesRequest) String() string { return proto.CompactTextString(m) }
func (*ListChallengesRequest) ProtoMessage()    {}

type ListChallengesResponse struct {
	Challenges []*Challenge `protobuf:"bytes,1,rep,name=challenges,proto3" json:"challenges,omitempty"`
}

func (m *ListChallengesResponse) Reset()         { *m = ListChallengesResponse{} }
func (m *ListChallengesResponse) String() string { return proto.CompactTextString(m) }
func (*ListChallengesResponse) ProtoMessage()    {}

func (m *ListChallengesResponse) GetChallenges() []*Challenge {
	if m != nil {
		return m.Challenges
	}
	return nil
}

type ListPayoutsRequest struct {
}

func (m *ListPayoutsRequest) Reset()         { *m = ListPayoutsRequest{} }
func (m *ListPayoutsRequest) String() string { return proto.CompactTextString(m) }
func (*ListPayoutsRequest) ProtoMessage()    {}

type ListPayoutsResponse struct {
	Payouts []*Payout `protobuf:"bytes,1,rep,name=payouts,proto3" json:"payouts,omitempty"`
}

func (m *ListPayoutsResponse) Reset()         { *m = ListPayoutsResponse{} }
func (m *ListPayoutsResponse) String() string { return proto.CompactTextString(m) }
func (*ListPayoutsResponse) ProtoMessage()    {}

func (m *ListPayoutsResponse) GetPayouts() []*Payout {
	if m != nil {
		return m.Payouts
	}
	return nil
}
