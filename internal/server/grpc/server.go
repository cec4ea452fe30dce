// Package grpc exposes the vault over gRPC using the contract generated in
// internal/proto.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/vivault/internal/logging"
	pb "github.com/dmitrijs2005/vivault/internal/proto"
	"github.com/dmitrijs2005/vivault/internal/vault/models"
	"google.golang.org/grpc"
)

// Vault is the service the handlers delegate to.
type Vault interface {
	Unlock(ctx context.Context, password []byte) (string, error)
	Lock(ctx context.Context) (string, error)
	ListCredentials(ctx context.Context) ([]models.CredentialSummary, error)
	RevealSecret(ctx context.Context, id string) ([]byte, error)
	Save(ctx context.Context, in models.NewCredential) (string, error)
	FindForHost(ctx context.Context, host string) (models.HostMatch, error)
	Search(ctx context.Context, query string) ([]models.CredentialSummary, error)
	Status(ctx context.Context) (models.Status, error)
	GeneratePassword(length int) (string, error)
}

type GRPCServer struct {
	pb.UnimplementedVaultServer
	address   string
	vault     Vault
	logger    logging.Logger
	jwtSecret []byte
}

var _ pb.VaultServer = (*GRPCServer)(nil)

// NewGRPCServer builds the server. An empty secretKey disables caller
// token checks.
func NewGRPCServer(a string, l logging.Logger, v Vault, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		vault:     v,
		jwtSecret: []byte(secretKey),
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))
	pb.RegisterVaultServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops
// gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info(context.Background(), "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}

	<-stopped
	return nil
}
