// Package store is the durable side of the vault: the credential collection
// and the master key verification record, kept as JSON documents in the
// key-value tables. It owns no cryptographic material.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/vivault/internal/common"
	"github.com/dmitrijs2005/vivault/internal/dbx"
	"github.com/dmitrijs2005/vivault/internal/vault/models"
	"github.com/dmitrijs2005/vivault/internal/vault/repositories/kv"
	"github.com/google/uuid"
)

const (
	KeyCredentials           = "credentials"
	KeyMasterKeyVerification = "masterKeyVerification"
)

// Store reads and writes the vault documents.
//
// Appends are read-modify-write cycles over one key; mu plus a transaction
// keeps concurrent saves in this process from losing records.
type Store struct {
	db    *sql.DB
	repos kv.Factory
	mu    sync.Mutex
}

func New(db *sql.DB, repos kv.Factory) *Store {
	return &Store{db: db, repos: repos}
}

func (s *Store) vault(db dbx.DBTX) kv.Repository {
	return s.repos(db, kv.TableMetadata)
}

// Load returns the verification record and all credentials, read in one
// pass over the metadata table. An empty vault yields a zero record
// (Initialized false) and an empty, non-nil slice.
func (s *Store) Load(ctx context.Context) (models.MasterKeyRecord, []models.CredentialRecord, error) {
	docs, err := s.vault(s.db).List(ctx)
	if err != nil {
		return models.MasterKeyRecord{}, nil, err
	}

	master, err := decodeMasterKeyRecord(docs[KeyMasterKeyVerification])
	if err != nil {
		return models.MasterKeyRecord{}, nil, err
	}
	creds, err := decodeCredentials(docs[KeyCredentials])
	if err != nil {
		return models.MasterKeyRecord{}, nil, err
	}
	return master, creds, nil
}

// MasterKeyRecord returns only the verification record.
func (s *Store) MasterKeyRecord(ctx context.Context) (models.MasterKeyRecord, error) {
	return readMasterKeyRecord(ctx, s.vault(s.db))
}

// SetMasterKeyRecord persists the verification record.
func (s *Store) SetMasterKeyRecord(ctx context.Context, record models.MasterKeyRecord) error {
	b, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode master key record: %w", err)
	}
	return s.vault(s.db).Set(ctx, KeyMasterKeyVerification, b)
}

// AppendCredential adds record to the collection and returns it with its id.
// A missing id is filled with a random UUID; an id already present is
// rejected, existing records are never overwritten.
func (s *Store) AppendCredential(ctx context.Context, record models.CredentialRecord) (models.CredentialRecord, error) {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.vault(tx)

		creds, err := readCredentials(ctx, repo)
		if err != nil {
			return err
		}
		for _, c := range creds {
			if c.ID == record.ID {
				return fmt.Errorf("%w: credential %s already exists", common.ErrValidation, record.ID)
			}
		}

		b, err := json.Marshal(append(creds, record))
		if err != nil {
			return fmt.Errorf("encode credentials: %w", err)
		}
		return repo.Set(ctx, KeyCredentials, b)
	})
	if err != nil {
		return models.CredentialRecord{}, err
	}
	return record, nil
}

// Credentials returns every record in insertion order.
func (s *Store) Credentials(ctx context.Context) ([]models.CredentialRecord, error) {
	return readCredentials(ctx, s.vault(s.db))
}

// FindByID returns the record with id or common.ErrNotFound.
func (s *Store) FindByID(ctx context.Context, id string) (models.CredentialRecord, error) {
	creds, err := s.Credentials(ctx)
	if err != nil {
		return models.CredentialRecord{}, err
	}
	for _, c := range creds {
		if c.ID == id {
			return c, nil
		}
	}
	return models.CredentialRecord{}, fmt.Errorf("credential %s: %w", id, common.ErrNotFound)
}

// FindBestMatchForURL returns the first record whose site URL contains host
// or is contained in it. There is no scoring, so hosts that merely share a
// substring with a stored URL also match; empty values never match.
func (s *Store) FindBestMatchForURL(ctx context.Context, host string) (models.CredentialRecord, error) {
	creds, err := s.Credentials(ctx)
	if err != nil {
		return models.CredentialRecord{}, err
	}
	if rec, ok := MatchURL(creds, host); ok {
		return rec, nil
	}
	return models.CredentialRecord{}, fmt.Errorf("host %s: %w", host, common.ErrNotFound)
}

// MatchURL applies the bidirectional substring rule to creds in order.
func MatchURL(creds []models.CredentialRecord, host string) (models.CredentialRecord, bool) {
	if host == "" {
		return models.CredentialRecord{}, false
	}
	for _, c := range creds {
		if c.SiteURL == "" {
			continue
		}
		if strings.Contains(c.SiteURL, host) || strings.Contains(host, c.SiteURL) {
			return c, true
		}
	}
	return models.CredentialRecord{}, false
}

// Search returns records whose site name, username or site URL contains
// query, ignoring case. An empty query returns everything.
func (s *Store) Search(ctx context.Context, query string) ([]models.CredentialRecord, error) {
	creds, err := s.Credentials(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return creds, nil
	}

	result := make([]models.CredentialRecord, 0, len(creds))
	for _, c := range creds {
		if strings.Contains(strings.ToLower(c.SiteName), q) ||
			strings.Contains(strings.ToLower(c.Username), q) ||
			strings.Contains(strings.ToLower(c.SiteURL), q) {
			result = append(result, c)
		}
	}
	return result, nil
}

func readMasterKeyRecord(ctx context.Context, repo kv.Repository) (models.MasterKeyRecord, error) {
	b, err := repo.Get(ctx, KeyMasterKeyVerification)
	if err != nil {
		return models.MasterKeyRecord{}, err
	}
	return decodeMasterKeyRecord(b)
}

func readCredentials(ctx context.Context, repo kv.Repository) ([]models.CredentialRecord, error) {
	b, err := repo.Get(ctx, KeyCredentials)
	if err != nil {
		return nil, err
	}
	return decodeCredentials(b)
}

// decodeMasterKeyRecord treats a missing document as an empty vault.
func decodeMasterKeyRecord(b []byte) (models.MasterKeyRecord, error) {
	var record models.MasterKeyRecord
	if b == nil {
		return record, nil
	}
	if err := json.Unmarshal(b, &record); err != nil {
		return record, fmt.Errorf("decode master key record: %w", err)
	}
	return record, nil
}

func decodeCredentials(b []byte) ([]models.CredentialRecord, error) {
	creds := []models.CredentialRecord{}
	if b == nil {
		return creds, nil
	}
	if err := json.Unmarshal(b, &creds); err != nil {
		return nil, fmt.Errorf("decode credentials: %w", err)
	}
	return creds, nil
}
