// Package server wires the vault host process: storage with migrations, the
// process lock, the session guard and the gRPC endpoint, plus graceful
// shutdown on SIGINT/SIGTERM.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/vivault/internal/cryptox"
	"github.com/dmitrijs2005/vivault/internal/dbx"
	"github.com/dmitrijs2005/vivault/internal/filex"
	"github.com/dmitrijs2005/vivault/internal/logging"
	"github.com/dmitrijs2005/vivault/internal/server/config"
	"github.com/dmitrijs2005/vivault/internal/vault/repositories/kv"
	"github.com/dmitrijs2005/vivault/internal/vault/services"
	"github.com/dmitrijs2005/vivault/internal/vault/session"
	"github.com/dmitrijs2005/vivault/internal/vault/store"
	"github.com/gofrs/flock"

	gs "github.com/dmitrijs2005/vivault/internal/server/grpc"
)

// ErrVaultInUse is returned when another process holds the vault lock.
var ErrVaultInUse = errors.New("vault is in use by another process")

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	lock   *flock.Flock
	guard  *session.Guard
	server *gs.GRPCServer
}

// NewApp opens the vault described by c. Log output goes to w.
func NewApp(ctx context.Context, c *config.Config, w io.Writer) (*App, error) {
	logger, err := logging.NewJSONLogger(w, c.LogLevel)
	if err != nil {
		return nil, err
	}

	driver, err := dbx.ParseDriver(c.DatabaseDriver)
	if err != nil {
		return nil, err
	}

	params, err := cryptox.ParamsFor(c.KDFAlgorithm, c.KDFIterations)
	if err != nil {
		return nil, err
	}

	app := &App{config: c, logger: logger}

	if path, ok := lockPath(driver, c.DatabaseDSN); ok {
		if _, err := filex.EnsureParentDir(path); err != nil {
			return nil, err
		}
		app.lock = flock.New(path)
		locked, err := app.lock.TryLock()
		if err != nil {
			return nil, fmt.Errorf("lock %s: %w", path, err)
		}
		if !locked {
			return nil, fmt.Errorf("%w: %s", ErrVaultInUse, path)
		}
	}

	app.db, err = dbx.Open(ctx, driver, c.DatabaseDSN)
	if err != nil {
		app.release(ctx)
		return nil, fmt.Errorf("db init error: %w", err)
	}

	st := store.New(app.db, kv.FactoryFor(driver))
	app.guard = session.NewGuard(st,
		session.WithTTL(c.SessionTTL),
		session.WithKDFParams(params),
		session.WithLogger(logger),
	)
	if err := app.guard.Restore(ctx); err != nil {
		app.release(ctx)
		return nil, fmt.Errorf("session restore: %w", err)
	}

	// Undecodable vault documents stop startup here rather than on the
	// first unlock.
	master, creds, err := st.Load(ctx)
	if err != nil {
		app.release(ctx)
		return nil, fmt.Errorf("vault load: %w", err)
	}
	logger.Info(ctx, "vault opened", "initialized", master.Initialized, "credentials", len(creds))

	vault := services.NewVaultService(st, app.guard, cryptox.NewCipher(cryptox.DefaultIterations), logger)
	app.server = gs.NewGRPCServer(c.EndpointAddrGRPC, logger, vault, c.SecretKey)

	if c.SecretKey == "" {
		logger.Warn(ctx, "caller authentication disabled, any local process can reach the vault")
	}

	return app, nil
}

// lockPath returns the lock file for file-backed SQLite vaults. Other
// backends and in-memory databases are not locked.
func lockPath(driver dbx.Driver, dsn string) (string, bool) {
	if driver != dbx.DriverSQLite {
		return "", false
	}
	path, ok := filex.SQLitePath(dsn)
	if !ok {
		return "", false
	}
	return path + ".lock", true
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until ctx is cancelled or a termination signal arrives, then
// locks the vault and releases every resource.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	err := app.server.Run(ctx)
	if err != nil {
		app.logger.Error(ctx, "gRPC server failed", "error", err)
	}

	app.release(context.Background())
	app.logger.Info(context.Background(), "Stopped")
	return err
}

func (app *App) release(ctx context.Context) {
	if app.guard != nil {
		if err := app.guard.Lock(ctx); err != nil {
			app.logger.Warn(ctx, "failed to lock vault on shutdown", "error", err)
		}
	}
	if app.db != nil {
		_ = app.db.Close()
	}
	if app.lock != nil {
		_ = app.lock.Unlock()
	}
}
