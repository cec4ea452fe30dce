// Package models defines the vault's persisted records and the values the
// service hands back to callers.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/vivault/internal/common"
	"github.com/dmitrijs2005/vivault/internal/cryptox"
)

// MasterKeyRecord is the per-vault verification material for the master
// password. It never contains the password or any key derived for
// encryption.
type MasterKeyRecord struct {
	Hash        []byte `json:"hash"`
	Salt        []byte `json:"salt"`
	Algorithm   string `json:"algorithm"`
	Iterations  uint32 `json:"iterations"`
	Initialized bool   `json:"initialized"`
}

// KDFParams returns the derivation parameters the hash was produced with.
func (r MasterKeyRecord) KDFParams() cryptox.KDFParams {
	return cryptox.KDFParams{Algorithm: r.Algorithm, Iterations: r.Iterations}
}

// CredentialRecord is one saved site login. Only Secret is encrypted.
type CredentialRecord struct {
	ID        string               `json:"id"`
	SiteName  string               `json:"siteName"`
	SiteURL   string               `json:"siteUrl"`
	Username  string               `json:"username"`
	Secret    cryptox.SecretBundle `json:"secret"`
	CreatedAt time.Time            `json:"createdAt"`
}

// Summary drops the secret bundle.
func (r CredentialRecord) Summary() CredentialSummary {
	return CredentialSummary{
		ID:        r.ID,
		SiteName:  r.SiteName,
		SiteURL:   r.SiteURL,
		Username:  r.Username,
		CreatedAt: r.CreatedAt,
	}
}

// CredentialSummary is what listing operations expose: no secret material,
// neither plaintext nor ciphertext.
type CredentialSummary struct {
	ID        string    `json:"id"`
	SiteName  string    `json:"siteName"`
	SiteURL   string    `json:"siteUrl"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewCredential is a save request with the secret still in plaintext.
type NewCredential struct {
	SiteName  string
	SiteURL   string
	Username  string
	Secret    []byte
	CreatedAt time.Time
}

// Validate checks the fields a login needs to be useful for autofill.
func (n NewCredential) Validate() error {
	var missing []string
	if strings.TrimSpace(n.SiteName) == "" {
		missing = append(missing, "siteName")
	}
	if strings.TrimSpace(n.Username) == "" {
		missing = append(missing, "username")
	}
	if len(n.Secret) == 0 {
		missing = append(missing, "secret")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", common.ErrValidation, strings.Join(missing, ", "))
	}
	return nil
}

// HostMatch is the autofill answer for a hostname.
type HostMatch struct {
	ID       string
	Username string
	Secret   []byte
}

// SessionFlag is the only session state that may be persisted. It never
// carries key material and never restores a session by itself.
type SessionFlag struct {
	Unlocked   bool      `json:"unlocked"`
	UnlockedAt time.Time `json:"unlockedAt"`
}

// Status describes the session as seen by callers.
type Status struct {
	Unlocked    bool
	Initialized bool
	// RecentlyUnlocked is set when a persisted flag from an earlier process
	// is still within its lifetime; the user has to unlock again anyway.
	RecentlyUnlocked bool
	UnlockedAt       time.Time
	ExpiresAt        time.Time
}
