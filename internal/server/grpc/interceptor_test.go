package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/vivault/internal/auth"
	"github.com/dmitrijs2005/vivault/internal/common"
	"github.com/dmitrijs2005/vivault/internal/logging"
	pb "github.com/dmitrijs2005/vivault/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func newTestServer(secret string) *GRPCServer {
	return NewGRPCServer("", logging.Nop(), &fakeVault{}, secret)
}

var unlockInfo = &grpc.UnaryServerInfo{FullMethod: pb.Vault_Unlock_FullMethodName}

func TestInterceptor_NoSecret_AllowsWithoutToken(t *testing.T) {
	s := newTestServer("")

	handlerCalled := false
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		handlerCalled = true
		return "ok", nil
	}

	resp, err := s.accessTokenInterceptor(context.Background(), nil, unlockInfo, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !handlerCalled {
		t.Fatal("handler was not called")
	}
	if resp != "ok" {
		t.Fatalf("unexpected handler resp: %v", resp)
	}
}

func TestInterceptor_Ping_AllowsWithoutToken(t *testing.T) {
	s := newTestServer("secret")

	info := &grpc.UnaryServerInfo{FullMethod: pb.Vault_Ping_FullMethodName}
	h := func(ctx context.Context, req interface{}) (interface{}, error) { return "ok", nil }

	if _, err := s.accessTokenInterceptor(context.Background(), nil, info, h); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestInterceptor_MissingToken(t *testing.T) {
	s := newTestServer("secret")

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called when token missing")
		return nil, nil
	}

	_, err := s.accessTokenInterceptor(context.Background(), nil, unlockInfo, h)
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
	if status.Convert(err).Message() != "missing token" {
		t.Fatalf("expected 'missing token', got %q", status.Convert(err).Message())
	}
}

func TestInterceptor_InvalidToken(t *testing.T) {
	s := newTestServer("secret")

	md := metadata.New(map[string]string{
		common.AccessTokenHeaderName: "not-a-valid-jwt",
	})
	ctx := metadata.NewIncomingContext(context.Background(), md)

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called for invalid token")
		return nil, nil
	}

	_, err := s.accessTokenInterceptor(ctx, nil, unlockInfo, h)
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
}

func TestInterceptor_ValidToken(t *testing.T) {
	secret := "super-secret"
	s := newTestServer(secret)

	token, err := auth.GenerateToken(auth.CallerSubject, []byte(secret), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	md := metadata.New(map[string]string{
		common.AccessTokenHeaderName: token,
	})
	ctx := metadata.NewIncomingContext(context.Background(), md)

	h := func(ctx context.Context, req interface{}) (interface{}, error) { return "ok", nil }

	resp, err := s.accessTokenInterceptor(ctx, nil, unlockInfo, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp != "ok" {
		t.Fatalf("unexpected handler resp: %v", resp)
	}
}

func TestLoggingInterceptor_PassesThrough(t *testing.T) {
	s := newTestServer("")

	wantErr := status.Error(codes.NotFound, "x")
	h := func(ctx context.Context, req interface{}) (interface{}, error) { return "resp", wantErr }

	resp, err := s.loggingInterceptor(context.Background(), "req", unlockInfo, h)
	if resp != "resp" || err != wantErr {
		t.Fatalf("interceptor changed the result: %v, %v", resp, err)
	}
}
