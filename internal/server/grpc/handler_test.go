package grpc

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/dmitrijs2005/vivault/internal/common"
	"github.com/dmitrijs2005/vivault/internal/logging"
	pb "github.com/dmitrijs2005/vivault/internal/proto"
	"github.com/dmitrijs2005/vivault/internal/vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// ---- fakes ----

type fakeVault struct {
	err error

	list   []models.CredentialSummary
	secret []byte
	match  models.HostMatch
	status models.Status
	id     string

	LastPassword []byte
	LastID       string
	LastSave     models.NewCredential
	LastHost     string
	LastQuery    string
	LastLength   int
}

func (f *fakeVault) Unlock(_ context.Context, password []byte) (string, error) {
	f.LastPassword = password
	return "vault unlocked", f.err
}

func (f *fakeVault) Lock(context.Context) (string, error) { return "vault locked", f.err }

func (f *fakeVault) ListCredentials(context.Context) ([]models.CredentialSummary, error) {
	return f.list, f.err
}

func (f *fakeVault) RevealSecret(_ context.Context, id string) ([]byte, error) {
	f.LastID = id
	return f.secret, f.err
}

func (f *fakeVault) Save(_ context.Context, in models.NewCredential) (string, error) {
	f.LastSave = in
	return f.id, f.err
}

func (f *fakeVault) FindForHost(_ context.Context, host string) (models.HostMatch, error) {
	f.LastHost = host
	return f.match, f.err
}

func (f *fakeVault) Search(_ context.Context, q string) ([]models.CredentialSummary, error) {
	f.LastQuery = q
	return f.list, f.err
}

func (f *fakeVault) Status(context.Context) (models.Status, error) { return f.status, f.err }

func (f *fakeVault) GeneratePassword(length int) (string, error) {
	f.LastLength = length
	return "Zx8!Zx8!Zx8!Zx8!", f.err
}

func newHandlerServer(v *fakeVault) *GRPCServer {
	return NewGRPCServer("", logging.Nop(), v, "")
}

func TestHandlers_Success(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	v := &fakeVault{
		list:   []models.CredentialSummary{{ID: "1", SiteName: "Example", SiteURL: "https://example.com", Username: "alice", CreatedAt: created}},
		secret: []byte("p@ss"),
		match:  models.HostMatch{ID: "1", Username: "alice", Secret: []byte("p@ss")},
		id:     "new-id",
	}
	s := newHandlerServer(v)

	unlock, err := s.Unlock(ctx, &pb.UnlockRequest{MasterPassword: "Tr0ub4dor"})
	require.NoError(t, err)
	assert.Equal(t, "vault unlocked", unlock.Message)
	assert.Equal(t, []byte("Tr0ub4dor"), v.LastPassword)

	list, err := s.ListCredentials(ctx, &pb.ListCredentialsRequest{})
	require.NoError(t, err)
	require.Len(t, list.GetCredentials(), 1)
	assert.True(t, proto.Equal(&pb.Credential{
		Id: "1", SiteName: "Example", SiteUrl: "https://example.com", Username: "alice", CreatedAt: timestamppb.New(created),
	}, list.GetCredentials()[0]))

	secret, err := s.GetSecretById(ctx, &pb.GetSecretByIdRequest{CredentialId: "1"})
	require.NoError(t, err)
	assert.Equal(t, "p@ss", secret.Secret)
	assert.Equal(t, "1", v.LastID)

	saved, err := s.SaveCredential(ctx, &pb.SaveCredentialRequest{
		SiteName: "Example", SiteUrl: "https://example.com", Username: "alice", Secret: "p@ss", CreatedAt: timestamppb.New(created),
	})
	require.NoError(t, err)
	assert.Equal(t, "new-id", saved.Id)
	assert.Equal(t, models.NewCredential{
		SiteName: "Example", SiteURL: "https://example.com", Username: "alice", Secret: []byte("p@ss"), CreatedAt: created,
	}, v.LastSave)

	found, err := s.FindForHost(ctx, &pb.FindForHostRequest{Hostname: "example.com"})
	require.NoError(t, err)
	assert.True(t, proto.Equal(&pb.FindForHostResponse{Found: true, Username: "alice", Secret: "p@ss", CredentialId: "1"}, found))

	_, err = s.Search(ctx, &pb.SearchRequest{Query: "exa"})
	require.NoError(t, err)
	assert.Equal(t, "exa", v.LastQuery)

	pw, err := s.GeneratePassword(ctx, &pb.GeneratePasswordRequest{Length: 16})
	require.NoError(t, err)
	assert.Len(t, pw.Password, 16)
	assert.Equal(t, 16, v.LastLength)

	lock, err := s.Lock(ctx, &pb.LockRequest{})
	require.NoError(t, err)
	assert.Equal(t, "vault locked", lock.Message)

	ping, err := s.Ping(ctx, &pb.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", ping.Status)
}

func TestFindForHost_NotFoundIsNotAnError(t *testing.T) {
	v := &fakeVault{err: fmt.Errorf("host other.org: %w", common.ErrNotFound)}
	s := newHandlerServer(v)

	resp, err := s.FindForHost(context.Background(), &pb.FindForHostRequest{Hostname: "other.org"})
	require.NoError(t, err)
	assert.False(t, resp.Found)
	assert.Empty(t, resp.Secret)
}

func TestStatus_OmitsZeroTimes(t *testing.T) {
	at := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	s := newHandlerServer(&fakeVault{status: models.Status{Initialized: true}})
	resp, err := s.Status(context.Background(), &pb.StatusRequest{})
	require.NoError(t, err)
	assert.True(t, resp.Initialized)
	assert.Nil(t, resp.UnlockedAt)
	assert.Nil(t, resp.ExpiresAt)

	s = newHandlerServer(&fakeVault{status: models.Status{Unlocked: true, Initialized: true, UnlockedAt: at, ExpiresAt: at.Add(time.Hour)}})
	resp, err = s.Status(context.Background(), &pb.StatusRequest{})
	require.NoError(t, err)
	require.NotNil(t, resp.UnlockedAt)
	assert.Equal(t, at, resp.GetUnlockedAt().AsTime())
	assert.Equal(t, at.Add(time.Hour), resp.GetExpiresAt().AsTime())
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code codes.Code
		msg  string
	}{
		{"authentication", common.ErrAuthentication, codes.Unauthenticated, "invalid master password"},
		{"locked", common.ErrVaultLocked, codes.FailedPrecondition, "vault is locked"},
		{"not found", fmt.Errorf("credential x: %w", common.ErrNotFound), codes.NotFound, "credential x: not found"},
		{"decryption", fmt.Errorf("open: %w", common.ErrDecryption), codes.DataLoss, "decryption failed"},
		{"validation", fmt.Errorf("%w: missing siteName", common.ErrValidation), codes.InvalidArgument, "validation error: missing siteName"},
		{"other", errors.New("sqlite: disk I/O error"), codes.Internal, "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newHandlerServer(&fakeVault{err: tt.err})

			_, err := s.GetSecretById(context.Background(), &pb.GetSecretByIdRequest{CredentialId: "x"})
			require.Error(t, err)
			st, ok := status.FromError(err)
			require.True(t, ok)
			assert.Equal(t, tt.code, st.Code())
			assert.Equal(t, tt.msg, st.Message())
		})
	}
}
