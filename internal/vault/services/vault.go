// Package services exposes the vault operations used by the transport
// layer. Every operation that touches a secret runs only while the session
// is unlocked and wipes its copy of the master password afterwards.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/vivault/internal/common"
	"github.com/dmitrijs2005/vivault/internal/cryptox"
	"github.com/dmitrijs2005/vivault/internal/logging"
	"github.com/dmitrijs2005/vivault/internal/vault/models"
)

const (
	MessageInitialized = "vault initialized with a new master password"
	MessageUnlocked    = "vault unlocked"
	MessageLocked      = "vault locked"
)

type Store interface {
	Credentials(ctx context.Context) ([]models.CredentialRecord, error)
	AppendCredential(ctx context.Context, record models.CredentialRecord) (models.CredentialRecord, error)
	FindByID(ctx context.Context, id string) (models.CredentialRecord, error)
	FindBestMatchForURL(ctx context.Context, host string) (models.CredentialRecord, error)
	Search(ctx context.Context, query string) ([]models.CredentialRecord, error)
}

type Session interface {
	Unlock(ctx context.Context, password []byte) (bool, error)
	Lock(ctx context.Context) error
	Key(ctx context.Context) ([]byte, error)
	Status(ctx context.Context) (models.Status, error)
}

type VaultService struct {
	store   Store
	session Session
	cipher  *cryptox.Cipher
	log     logging.Logger
	now     func() time.Time
}

func NewVaultService(store Store, session Session, cipher *cryptox.Cipher, log logging.Logger) *VaultService {
	if log == nil {
		log = logging.Nop()
	}
	return &VaultService{
		store:   store,
		session: session,
		cipher:  cipher,
		log:     log.With("module", "vault"),
		now:     time.Now,
	}
}

// Unlock opens the session. The returned message tells a first unlock,
// which sets the master password, from a regular one.
func (s *VaultService) Unlock(ctx context.Context, password []byte) (string, error) {
	created, err := s.session.Unlock(ctx, password)
	if err != nil {
		if errors.Is(err, common.ErrAuthentication) {
			s.log.Warn(ctx, "unlock rejected")
		} else {
			s.log.Error(ctx, "unlock failed", "error", err)
		}
		return "", err
	}
	if created {
		s.log.Info(ctx, "vault unlocked", "initialized", true)
		return MessageInitialized, nil
	}
	s.log.Info(ctx, "vault unlocked")
	return MessageUnlocked, nil
}

func (s *VaultService) Lock(ctx context.Context) (string, error) {
	if err := s.session.Lock(ctx); err != nil {
		s.log.Error(ctx, "lock failed", "error", err)
		return "", err
	}
	s.log.Info(ctx, "vault locked")
	return MessageLocked, nil
}

// ListCredentials returns every saved login without any secret material.
func (s *VaultService) ListCredentials(ctx context.Context) ([]models.CredentialSummary, error) {
	if err := s.requireUnlocked(ctx); err != nil {
		return nil, err
	}
	creds, err := s.store.Credentials(ctx)
	if err != nil {
		return nil, err
	}
	return summaries(creds), nil
}

// Search filters the list by a case-insensitive substring.
func (s *VaultService) Search(ctx context.Context, query string) ([]models.CredentialSummary, error) {
	if err := s.requireUnlocked(ctx); err != nil {
		return nil, err
	}
	creds, err := s.store.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	return summaries(creds), nil
}

// RevealSecret decrypts the secret of one record.
func (s *VaultService) RevealSecret(ctx context.Context, id string) ([]byte, error) {
	key, err := s.session.Key(ctx)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(key)

	rec, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.decrypt(ctx, rec, key)
}

// Save encrypts the secret and appends a new record, returning its id.
func (s *VaultService) Save(ctx context.Context, in models.NewCredential) (string, error) {
	key, err := s.session.Key(ctx)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(key)

	if err := in.Validate(); err != nil {
		return "", err
	}

	bundle, err := s.cipher.Encrypt(in.Secret, key)
	if err != nil {
		s.log.Error(ctx, "encrypt failed", "error", err)
		return "", fmt.Errorf("encrypt secret: %w", err)
	}

	createdAt := in.CreatedAt
	if createdAt.IsZero() {
		createdAt = s.now()
	}

	rec, err := s.store.AppendCredential(ctx, models.CredentialRecord{
		SiteName:  in.SiteName,
		SiteURL:   in.SiteURL,
		Username:  in.Username,
		Secret:    bundle,
		CreatedAt: createdAt.UTC(),
	})
	if err != nil {
		s.log.Error(ctx, "save failed", "error", err)
		return "", err
	}
	s.log.Info(ctx, "credential saved", "id", rec.ID, "site", rec.SiteName)
	return rec.ID, nil
}

// FindForHost returns the login for the first record matching host.
func (s *VaultService) FindForHost(ctx context.Context, host string) (models.HostMatch, error) {
	key, err := s.session.Key(ctx)
	if err != nil {
		return models.HostMatch{}, err
	}
	defer common.WipeByteArray(key)

	rec, err := s.store.FindBestMatchForURL(ctx, host)
	if err != nil {
		return models.HostMatch{}, err
	}
	secret, err := s.decrypt(ctx, rec, key)
	if err != nil {
		return models.HostMatch{}, err
	}
	return models.HostMatch{ID: rec.ID, Username: rec.Username, Secret: secret}, nil
}

func (s *VaultService) Status(ctx context.Context) (models.Status, error) {
	return s.session.Status(ctx)
}

// GeneratePassword does not need an unlocked session.
// Zero length means the default length.
func (s *VaultService) GeneratePassword(length int) (string, error) {
	return cryptox.GeneratePassword(length)
}

func (s *VaultService) decrypt(ctx context.Context, rec models.CredentialRecord, key []byte) ([]byte, error) {
	plain, err := s.cipher.Decrypt(rec.Secret, key)
	if err != nil {
		s.log.Error(ctx, "decrypt failed", "id", rec.ID, "error", err)
		return nil, err
	}
	return plain, nil
}

func (s *VaultService) requireUnlocked(ctx context.Context) error {
	key, err := s.session.Key(ctx)
	if err != nil {
		return err
	}
	common.WipeByteArray(key)
	return nil
}

func summaries(creds []models.CredentialRecord) []models.CredentialSummary {
	out := make([]models.CredentialSummary, 0, len(creds))
	for _, c := range creds {
		out = append(out, c.Summary())
	}
	return out
}
