package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/vivault/internal/auth"
	"github.com/dmitrijs2005/vivault/internal/common"
	pb "github.com/dmitrijs2005/vivault/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// accessTokenInterceptor requires a valid caller token on every method but
// Ping. It is a no-op when no secret is configured.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if len(s.jwtSecret) == 0 || info.FullMethod == pb.Vault_Ping_FullMethodName {
		return handler(ctx, req)
	}

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

	if _, err := auth.ValidateToken(accessToken, s.jwtSecret); err != nil {
		s.logger.Warn(ctx, "rejected caller token", "method", info.FullMethod)
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	return handler(ctx, req)
}

// loggingInterceptor records method, status code and duration. Requests
// and responses are never logged since they carry secrets.
func (s *GRPCServer) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	s.logger.Debug(ctx, "request",
		"method", info.FullMethod,
		"code", status.Code(err).String(),
		"duration", time.Since(start),
	)
	return resp, err
}
