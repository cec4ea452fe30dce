package client

import (
	"context"

	"github.com/dmitrijs2005/vivault/internal/vault/models"
)

// Client is what the CLI needs from vaultd.
type Client interface {
	Close() error
	Ping(ctx context.Context) error
	Unlock(ctx context.Context, masterPassword string) (string, error)
	Lock(ctx context.Context) (string, error)
	ListCredentials(ctx context.Context) ([]models.CredentialSummary, error)
	Search(ctx context.Context, query string) ([]models.CredentialSummary, error)
	GetSecret(ctx context.Context, id string) (string, error)
	SaveCredential(ctx context.Context, in models.NewCredential) (string, error)
	// FindForHost returns common.ErrNotFound when no login matches host.
	FindForHost(ctx context.Context, host string) (models.HostMatch, error)
	Status(ctx context.Context) (models.Status, error)
	GeneratePassword(ctx context.Context, length int) (string, error)
}
