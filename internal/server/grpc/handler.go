package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/vivault/internal/common"
	pb "github.com/dmitrijs2005/vivault/internal/proto"
	"github.com/dmitrijs2005/vivault/internal/vault/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// toStatus maps vault errors to gRPC statuses. Known errors keep their
// message; anything else becomes a bare Internal so storage details never
// reach the caller.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrAuthentication):
		return status.Error(codes.Unauthenticated, common.ErrAuthentication.Error())
	case errors.Is(err, common.ErrVaultLocked):
		return status.Error(codes.FailedPrecondition, common.ErrVaultLocked.Error())
	case errors.Is(err, common.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrDecryption):
		return status.Error(codes.DataLoss, common.ErrDecryption.Error())
	case errors.Is(err, common.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		s.logger.Error(ctx, "request failed", "error", err)
		return status.Error(codes.Internal, common.ErrInternal.Error())
	}
}

func (s *GRPCServer) Unlock(ctx context.Context, req *pb.UnlockRequest) (*pb.UnlockResponse, error) {
	msg, err := s.vault.Unlock(ctx, []byte(req.GetMasterPassword()))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.UnlockResponse{Message: msg}, nil
}

func (s *GRPCServer) Lock(ctx context.Context, _ *pb.LockRequest) (*pb.LockResponse, error) {
	msg, err := s.vault.Lock(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.LockResponse{Message: msg}, nil
}

func (s *GRPCServer) ListCredentials(ctx context.Context, _ *pb.ListCredentialsRequest) (*pb.CredentialsResponse, error) {
	list, err := s.vault.ListCredentials(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.CredentialsResponse{Credentials: toPBCredentials(list)}, nil
}

func (s *GRPCServer) GetSecretById(ctx context.Context, req *pb.GetSecretByIdRequest) (*pb.GetSecretByIdResponse, error) {
	secret, err := s.vault.RevealSecret(ctx, req.GetCredentialId())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.GetSecretByIdResponse{Secret: string(secret)}, nil
}

func (s *GRPCServer) SaveCredential(ctx context.Context, req *pb.SaveCredentialRequest) (*pb.SaveCredentialResponse, error) {
	in := models.NewCredential{
		SiteName: req.GetSiteName(),
		SiteURL:  req.GetSiteUrl(),
		Username: req.GetUsername(),
		Secret:   []byte(req.GetSecret()),
	}
	if req.GetCreatedAt() != nil {
		in.CreatedAt = req.GetCreatedAt().AsTime()
	}

	id, err := s.vault.Save(ctx, in)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.SaveCredentialResponse{Id: id}, nil
}

// FindForHost answers a miss with Found false instead of an error status.
func (s *GRPCServer) FindForHost(ctx context.Context, req *pb.FindForHostRequest) (*pb.FindForHostResponse, error) {
	m, err := s.vault.FindForHost(ctx, req.GetHostname())
	if errors.Is(err, common.ErrNotFound) {
		return &pb.FindForHostResponse{Found: false}, nil
	}
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.FindForHostResponse{
		Found:        true,
		Username:     m.Username,
		Secret:       string(m.Secret),
		CredentialId: m.ID,
	}, nil
}

func (s *GRPCServer) Search(ctx context.Context, req *pb.SearchRequest) (*pb.CredentialsResponse, error) {
	list, err := s.vault.Search(ctx, req.GetQuery())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.CredentialsResponse{Credentials: toPBCredentials(list)}, nil
}

func (s *GRPCServer) Status(ctx context.Context, _ *pb.StatusRequest) (*pb.StatusResponse, error) {
	st, err := s.vault.Status(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.StatusResponse{
		Unlocked:         st.Unlocked,
		Initialized:      st.Initialized,
		RecentlyUnlocked: st.RecentlyUnlocked,
		UnlockedAt:       toTimestamp(st.UnlockedAt),
		ExpiresAt:        toTimestamp(st.ExpiresAt),
	}, nil
}

func (s *GRPCServer) GeneratePassword(ctx context.Context, req *pb.GeneratePasswordRequest) (*pb.GeneratePasswordResponse, error) {
	pw, err := s.vault.GeneratePassword(int(req.GetLength()))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.GeneratePasswordResponse{Password: pw}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, _ *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func toPBCredentials(list []models.CredentialSummary) []*pb.Credential {
	out := make([]*pb.Credential, 0, len(list))
	for _, c := range list {
		out = append(out, &pb.Credential{
			Id:        c.ID,
			SiteName:  c.SiteName,
			SiteUrl:   c.SiteURL,
			Username:  c.Username,
			CreatedAt: toTimestamp(c.CreatedAt),
		})
	}
	return out
}

// toTimestamp leaves unset times out of the message.
func toTimestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}
