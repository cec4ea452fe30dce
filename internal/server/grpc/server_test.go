package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/vivault/internal/auth"
	"github.com/dmitrijs2005/vivault/internal/common"
	"github.com/dmitrijs2005/vivault/internal/cryptox"
	"github.com/dmitrijs2005/vivault/internal/dbx"
	"github.com/dmitrijs2005/vivault/internal/logging"
	pb "github.com/dmitrijs2005/vivault/internal/proto"
	"github.com/dmitrijs2005/vivault/internal/vault/repositories/kv"
	"github.com/dmitrijs2005/vivault/internal/vault/services"
	"github.com/dmitrijs2005/vivault/internal/vault/session"
	"github.com/dmitrijs2005/vivault/internal/vault/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:0", logging.Nop(), &fakeVault{}, "secret")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error on graceful stop: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:99999", logging.Nop(), &fakeVault{}, "secret")

	if err := srv.Run(context.Background()); err == nil {
		t.Fatal("expected error from Run on bad address, got nil")
	}
}

// startBufconn serves a real vault stack over an in-memory listener.
func startBufconn(t *testing.T, secret string) pb.VaultClient {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())

	db, err := dbx.Open(ctx, dbx.DriverSQLite, ":memory:")
	require.NoError(t, err)

	st := store.New(db, kv.FactoryFor(dbx.DriverSQLite))
	guard := session.NewGuard(st, session.WithKDFParams(cryptox.KDFParams{Algorithm: cryptox.AlgorithmPBKDF2, Iterations: 1000}))
	vault := services.NewVaultService(st, guard, cryptox.NewCipher(1000), logging.Nop())

	lis := bufconn.Listen(1 << 20)
	srv := NewGRPCServer("bufconn", logging.Nop(), vault, secret)
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufconn",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		<-done
		_ = guard.Lock(context.Background())
		_ = db.Close()
	})
	return pb.NewVaultClient(conn)
}

func TestBufconn_EndToEnd(t *testing.T) {
	c := startBufconn(t, "")
	ctx := context.Background()
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	unlock, err := c.Unlock(ctx, &pb.UnlockRequest{MasterPassword: "Tr0ub4dor"})
	require.NoError(t, err)
	assert.Equal(t, services.MessageInitialized, unlock.GetMessage())

	saved, err := c.SaveCredential(ctx, &pb.SaveCredentialRequest{
		SiteName: "Example", SiteUrl: "https://example.com/login", Username: "alice", Secret: "p@ss",
		CreatedAt: timestamppb.New(created),
	})
	require.NoError(t, err)
	require.NotEmpty(t, saved.GetId())

	list, err := c.ListCredentials(ctx, &pb.ListCredentialsRequest{})
	require.NoError(t, err)
	require.Len(t, list.GetCredentials(), 1)
	assert.Equal(t, "alice", list.GetCredentials()[0].GetUsername())
	assert.Equal(t, created, list.GetCredentials()[0].GetCreatedAt().AsTime())

	secret, err := c.GetSecretById(ctx, &pb.GetSecretByIdRequest{CredentialId: saved.GetId()})
	require.NoError(t, err)
	assert.Equal(t, "p@ss", secret.GetSecret())

	found, err := c.FindForHost(ctx, &pb.FindForHostRequest{Hostname: "example.com"})
	require.NoError(t, err)
	assert.True(t, found.GetFound())
	assert.Equal(t, saved.GetId(), found.GetCredentialId())

	missing, err := c.FindForHost(ctx, &pb.FindForHostRequest{Hostname: "other.org"})
	require.NoError(t, err)
	assert.False(t, missing.GetFound())

	_, err = c.Lock(ctx, &pb.LockRequest{})
	require.NoError(t, err)

	_, err = c.GetSecretById(ctx, &pb.GetSecretByIdRequest{CredentialId: saved.GetId()})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	_, err = c.Unlock(ctx, &pb.UnlockRequest{MasterPassword: "wrong"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	st, err := c.Status(ctx, &pb.StatusRequest{})
	require.NoError(t, err)
	assert.False(t, st.GetUnlocked())
	assert.True(t, st.GetInitialized())
}

func TestBufconn_CallerToken(t *testing.T) {
	c := startBufconn(t, "shared")
	ctx := context.Background()

	ping, err := c.Ping(ctx, &pb.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", ping.GetStatus())

	_, err = c.Status(ctx, &pb.StatusRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	token, err := auth.GenerateToken(auth.CallerSubject, []byte("shared"), time.Minute)
	require.NoError(t, err)
	authed := metadata.AppendToOutgoingContext(ctx, common.AccessTokenHeaderName, token)

	_, err = c.Status(authed, &pb.StatusRequest{})
	require.NoError(t, err)
}
