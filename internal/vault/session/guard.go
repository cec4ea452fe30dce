// Package session implements the lock/unlock state machine that guards the
// master password in memory.
//
// On the very first unlock of an empty vault, whatever password is supplied
// becomes the master password. There is no separate setup step.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/awnumar/memguard"
	"github.com/dmitrijs2005/vivault/internal/common"
	"github.com/dmitrijs2005/vivault/internal/cryptox"
	"github.com/dmitrijs2005/vivault/internal/logging"
	"github.com/dmitrijs2005/vivault/internal/vault/models"
)

const DefaultTTL = time.Hour

// Store is the persistence the guard needs: the verification record and
// the session flag.
type Store interface {
	MasterKeyRecord(ctx context.Context) (models.MasterKeyRecord, error)
	SetMasterKeyRecord(ctx context.Context, record models.MasterKeyRecord) error
	SessionFlag(ctx context.Context) (models.SessionFlag, bool, error)
	SetSessionFlag(ctx context.Context, flag models.SessionFlag) error
	ClearSession(ctx context.Context) error
}

// Guard holds the session state. The zero state is Locked; a guard never
// starts Unlocked, whatever was persisted by an earlier process.
type Guard struct {
	store  Store
	log    logging.Logger
	now    func() time.Time
	ttl    time.Duration
	params cryptox.KDFParams

	mu         sync.Mutex
	key        *memguard.LockedBuffer
	unlockedAt time.Time
}

type Option func(*Guard)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(g *Guard) { g.now = now }
}

// WithTTL sets how long an unlock stays valid. Non-positive values keep the
// default.
func WithTTL(ttl time.Duration) Option {
	return func(g *Guard) {
		if ttl > 0 {
			g.ttl = ttl
		}
	}
}

// WithKDFParams sets the derivation used when a new vault is initialized.
// Existing vaults keep the parameters stored in their record.
func WithKDFParams(p cryptox.KDFParams) Option {
	return func(g *Guard) { g.params = p }
}

func WithLogger(l logging.Logger) Option {
	return func(g *Guard) { g.log = l }
}

func NewGuard(store Store, opts ...Option) *Guard {
	g := &Guard{
		store:  store,
		log:    logging.Nop(),
		now:    time.Now,
		ttl:    DefaultTTL,
		params: cryptox.DefaultKDFParams(),
	}
	for _, o := range opts {
		o(g)
	}
	g.log = g.log.With("module", "session")
	return g
}

// Restore runs once at startup. It drops a persisted flag that is stale or
// expired; a fresh one is left for Status to report. The guard stays Locked
// either way.
func (g *Guard) Restore(ctx context.Context) error {
	flag, ok, err := g.store.SessionFlag(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if flag.Unlocked && !g.expired(flag.UnlockedAt, g.now()) {
		g.log.Info(ctx, "previous session still fresh, unlock required", "unlockedAt", flag.UnlockedAt)
		return nil
	}
	g.log.Info(ctx, "clearing stale session state")
	return g.store.ClearSession(ctx)
}

// Unlock verifies password against the stored record, or initializes the
// vault with it when no record exists. created reports the latter.
//
// A wrong password leaves the state as it was: an Unlocked session stays
// Unlocked. A correct one while already Unlocked refreshes the unlock time.
func (g *Guard) Unlock(ctx context.Context, password []byte) (created bool, err error) {
	if len(password) == 0 {
		return false, common.ErrAuthentication
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	record, err := g.store.MasterKeyRecord(ctx)
	if err != nil {
		return false, err
	}

	if !record.Initialized {
		if record, err = g.initialize(ctx, password); err != nil {
			return false, err
		}
		created = true
	} else {
		ok, err := cryptox.Verify(password, record.Salt, record.Hash, record.KDFParams())
		if err != nil {
			return false, err
		}
		if !ok {
			return false, common.ErrAuthentication
		}
	}

	g.setKey(password)
	g.unlockedAt = g.now()

	if err := g.store.SetSessionFlag(ctx, models.SessionFlag{Unlocked: true, UnlockedAt: g.unlockedAt}); err != nil {
		g.log.Warn(ctx, "failed to persist session flag", "error", err)
	}
	return created, nil
}

func (g *Guard) initialize(ctx context.Context, password []byte) (models.MasterKeyRecord, error) {
	salt := common.GenerateRandByteArray(cryptox.SaltLen)
	hash, err := cryptox.HashMasterPassword(password, salt, g.params)
	if err != nil {
		return models.MasterKeyRecord{}, err
	}
	record := models.MasterKeyRecord{
		Hash:        hash,
		Salt:        salt,
		Algorithm:   g.params.Algorithm,
		Iterations:  g.params.Iterations,
		Initialized: true,
	}
	if err := g.store.SetMasterKeyRecord(ctx, record); err != nil {
		return models.MasterKeyRecord{}, err
	}
	g.log.Info(ctx, "vault initialized", "algorithm", record.Algorithm)
	return record, nil
}

// Lock wipes the in-memory password and clears the persisted flag.
func (g *Guard) Lock(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lock(ctx)
}

func (g *Guard) lock(ctx context.Context) error {
	g.destroyKey()
	g.unlockedAt = time.Time{}
	return g.store.ClearSession(ctx)
}

// Key returns a private copy of the master password for one guarded
// operation. The caller should wipe it when done. A concurrent Lock does
// not affect a copy already handed out.
func (g *Guard) Key(ctx context.Context) ([]byte, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkUnlocked(ctx); err != nil {
		return nil, err
	}
	src := g.key.Bytes()
	key := make([]byte, len(src))
	copy(key, src)
	return key, nil
}

// Status reports the session without changing it, except for locking an
// expired session.
func (g *Guard) Status(ctx context.Context) (models.Status, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	var st models.Status
	record, err := g.store.MasterKeyRecord(ctx)
	if err != nil {
		return st, err
	}
	st.Initialized = record.Initialized

	if err := g.checkUnlocked(ctx); err == nil {
		st.Unlocked = true
		st.UnlockedAt = g.unlockedAt
		st.ExpiresAt = g.unlockedAt.Add(g.ttl)
		return st, nil
	}

	flag, ok, err := g.store.SessionFlag(ctx)
	if err != nil {
		return st, err
	}
	if ok && flag.Unlocked && !g.expired(flag.UnlockedAt, g.now()) {
		st.RecentlyUnlocked = true
		st.UnlockedAt = flag.UnlockedAt
	}
	return st, nil
}

// checkUnlocked must be called with mu held. Expiry is evaluated here, on
// access, rather than by a timer.
func (g *Guard) checkUnlocked(ctx context.Context) error {
	if g.key == nil {
		return common.ErrVaultLocked
	}
	if g.expired(g.unlockedAt, g.now()) {
		g.log.Info(ctx, "session expired")
		if err := g.lock(ctx); err != nil {
			g.log.Warn(ctx, "failed to clear session state", "error", err)
		}
		return common.ErrVaultLocked
	}
	return nil
}

func (g *Guard) expired(unlockedAt, now time.Time) bool {
	return now.Sub(unlockedAt) > g.ttl
}

func (g *Guard) setKey(password []byte) {
	g.destroyKey()
	buf := make([]byte, len(password))
	copy(buf, password)
	// NewBufferFromBytes wipes buf.
	g.key = memguard.NewBufferFromBytes(buf)
}

func (g *Guard) destroyKey() {
	if g.key != nil {
		g.key.Destroy()
		g.key = nil
	}
}
