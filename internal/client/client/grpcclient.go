package client

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/vivault/internal/auth"
	"github.com/dmitrijs2005/vivault/internal/client/config"
	"github.com/dmitrijs2005/vivault/internal/common"
	pb "github.com/dmitrijs2005/vivault/internal/proto"
	"github.com/dmitrijs2005/vivault/internal/vault/models"
	"github.com/sethvargo/go-retry"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const retryBase = 100 * time.Millisecond

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.VaultClient
	secretKey   []byte
	timeout     time.Duration
	attempts    int
}

var _ Client = (*GRPCClient)(nil)

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

// accessTokenInterceptor signs a short-lived token for every call. Without
// a shared secret calls go out unauthenticated.
func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if len(s.secretKey) > 0 {
		token, err := auth.GenerateToken(auth.CallerSubject, s.secretKey, auth.DefaultTokenValidity)
		if err != nil {
			return err
		}
		ctx = withAccessToken(ctx, token)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewVaultClient builds a client for cfg. No connection is made until the
// first call.
func NewVaultClient(cfg *config.Config, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{
		endpointURL: cfg.ServerEndpointAddr,
		secretKey:   []byte(cfg.SecretKey),
		timeout:     cfg.RequestTimeout,
		attempts:    cfg.RetryAttempts,
	}
	if c.attempts < 1 {
		c.attempts = 1
	}

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(c.endpointURL, opts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewVaultClient(conn)
	return c, nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

// call runs one RPC with a per-attempt timeout. Transport failures are
// retried with exponential backoff; every other error is returned at once.
// A call that is not idempotent is retried only when vaultd was never
// reached, since a timed out attempt may already have been applied.
func call[Resp any](ctx context.Context, s *GRPCClient, idempotent bool, rpc func(ctx context.Context) (*Resp, error)) (*Resp, error) {
	var out *Resp

	backoff := retry.WithMaxRetries(uint64(s.attempts-1), retry.NewExponential(retryBase))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if s.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.timeout)
			defer cancel()
		}

		resp, err := rpc(ctx)
		if err != nil {
			mapped := mapError(err)
			if errors.Is(mapped, common.ErrTransport) && (idempotent || status.Code(err) == codes.Unavailable) {
				return retry.RetryableError(mapped)
			}
			return mapped
		}
		out = resp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := call(ctx, s, true, func(ctx context.Context) (*pb.PingResponse, error) {
		return s.client.Ping(ctx, &pb.PingRequest{})
	})
	if err != nil {
		return err
	}
	if resp.GetStatus() != "OK" {
		return common.ErrTransport
	}
	return nil
}

func (s *GRPCClient) Unlock(ctx context.Context, masterPassword string) (string, error) {
	resp, err := call(ctx, s, true, func(ctx context.Context) (*pb.UnlockResponse, error) {
		return s.client.Unlock(ctx, &pb.UnlockRequest{MasterPassword: masterPassword})
	})
	if err != nil {
		return "", err
	}
	return resp.GetMessage(), nil
}

func (s *GRPCClient) Lock(ctx context.Context) (string, error) {
	resp, err := call(ctx, s, true, func(ctx context.Context) (*pb.LockResponse, error) {
		return s.client.Lock(ctx, &pb.LockRequest{})
	})
	if err != nil {
		return "", err
	}
	return resp.GetMessage(), nil
}

func (s *GRPCClient) ListCredentials(ctx context.Context) ([]models.CredentialSummary, error) {
	resp, err := call(ctx, s, true, func(ctx context.Context) (*pb.CredentialsResponse, error) {
		return s.client.ListCredentials(ctx, &pb.ListCredentialsRequest{})
	})
	if err != nil {
		return nil, err
	}
	return fromPBCredentials(resp.GetCredentials()), nil
}

func (s *GRPCClient) Search(ctx context.Context, query string) ([]models.CredentialSummary, error) {
	resp, err := call(ctx, s, true, func(ctx context.Context) (*pb.CredentialsResponse, error) {
		return s.client.Search(ctx, &pb.SearchRequest{Query: query})
	})
	if err != nil {
		return nil, err
	}
	return fromPBCredentials(resp.GetCredentials()), nil
}

func (s *GRPCClient) GetSecret(ctx context.Context, id string) (string, error) {
	resp, err := call(ctx, s, true, func(ctx context.Context) (*pb.GetSecretByIdResponse, error) {
		return s.client.GetSecretById(ctx, &pb.GetSecretByIdRequest{CredentialId: id})
	})
	if err != nil {
		return "", err
	}
	return resp.GetSecret(), nil
}

func (s *GRPCClient) SaveCredential(ctx context.Context, in models.NewCredential) (string, error) {
	req := &pb.SaveCredentialRequest{
		SiteName: in.SiteName,
		SiteUrl:  in.SiteURL,
		Username: in.Username,
		Secret:   string(in.Secret),
	}
	if !in.CreatedAt.IsZero() {
		req.CreatedAt = timestamppb.New(in.CreatedAt)
	}

	resp, err := call(ctx, s, false, func(ctx context.Context) (*pb.SaveCredentialResponse, error) {
		return s.client.SaveCredential(ctx, req)
	})
	if err != nil {
		return "", err
	}
	return resp.GetId(), nil
}

func (s *GRPCClient) FindForHost(ctx context.Context, host string) (models.HostMatch, error) {
	resp, err := call(ctx, s, true, func(ctx context.Context) (*pb.FindForHostResponse, error) {
		return s.client.FindForHost(ctx, &pb.FindForHostRequest{Hostname: host})
	})
	if err != nil {
		return models.HostMatch{}, err
	}
	if !resp.GetFound() {
		return models.HostMatch{}, common.ErrNotFound
	}
	return models.HostMatch{
		ID:       resp.GetCredentialId(),
		Username: resp.GetUsername(),
		Secret:   []byte(resp.GetSecret()),
	}, nil
}

func (s *GRPCClient) Status(ctx context.Context) (models.Status, error) {
	resp, err := call(ctx, s, true, func(ctx context.Context) (*pb.StatusResponse, error) {
		return s.client.Status(ctx, &pb.StatusRequest{})
	})
	if err != nil {
		return models.Status{}, err
	}
	return models.Status{
		Unlocked:         resp.GetUnlocked(),
		Initialized:      resp.GetInitialized(),
		RecentlyUnlocked: resp.GetRecentlyUnlocked(),
		UnlockedAt:       fromTimestamp(resp.GetUnlockedAt()),
		ExpiresAt:        fromTimestamp(resp.GetExpiresAt()),
	}, nil
}

func (s *GRPCClient) GeneratePassword(ctx context.Context, length int) (string, error) {
	resp, err := call(ctx, s, true, func(ctx context.Context) (*pb.GeneratePasswordResponse, error) {
		return s.client.GeneratePassword(ctx, &pb.GeneratePasswordRequest{Length: int32(length)})
	})
	if err != nil {
		return "", err
	}
	return resp.GetPassword(), nil
}

func fromPBCredentials(list []*pb.Credential) []models.CredentialSummary {
	out := make([]models.CredentialSummary, 0, len(list))
	for _, c := range list {
		out = append(out, models.CredentialSummary{
			ID:        c.GetId(),
			SiteName:  c.GetSiteName(),
			SiteURL:   c.GetSiteUrl(),
			Username:  c.GetUsername(),
			CreatedAt: fromTimestamp(c.GetCreatedAt()),
		})
	}
	return out
}

// fromTimestamp maps an unset timestamp to the zero time.
func fromTimestamp(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}
