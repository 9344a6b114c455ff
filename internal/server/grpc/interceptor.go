package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/challengepool/internal/common"
	"github.com/dmitrijs2005/challengepool/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const accountIDKey ctxKey = "accountID"

// publicMethods are callable without an access token.
var publicMethods = map[string]bool{
	"/challengepool.service.ChallengePoolService/Register":     true,
	"/challengepool.service.ChallengePoolService/Login":        true,
	"/challengepool.service.ChallengePoolService/RefreshToken": true,
	"/challengepool.service.ChallengePoolService/Ping":         true,
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if !publicMethods[info.FullMethod] {

		var accessToken string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			values := md.Get(common.AccessTokenHeaderName)
			if len(values) > 0 {
				accessToken = values[0]
			}
		}
		if len(accessToken) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}

		accountID, err := auth.GetAccountIDFromToken(accessToken, s.jwtSecret)
		if err != nil {
			// The client retries with a refreshed token on this exact
			// message, so expiry must stay distinguishable.
			if errors.Is(err, common.ErrTokenExpired) {
				return nil, status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
			}
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}

		ctx = context.WithValue(ctx, accountIDKey, accountID)

	}

	return handler(ctx, req)
}

func accountIDFromContext(ctx context.Context) (string, error) {
	id, ok := ctx.Value(accountIDKey).(string)
	if !ok || id == "" {
		return "", common.ErrUnauthorized
	}
	return id, nil
}
