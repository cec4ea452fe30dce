package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/vivault/internal/client/client"
	"github.com/dmitrijs2005/vivault/internal/client/config"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

const onlineCheckInterval = 3 * time.Second

type App struct {
	client client.Client
	reader *bufio.Reader
	out    io.Writer

	mu       sync.Mutex
	mode     Mode
	unlocked bool
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewVaultClient(c)
	if err != nil {
		return nil, err
	}
	return newApp(apiClient, os.Stdin, os.Stdout), nil
}

func newApp(c client.Client, in io.Reader, out io.Writer) *App {
	return &App{client: c, reader: bufio.NewReader(in), out: out}
}

// Run starts the watcher and the REPL and closes the connection on return.
func (a *App) Run(ctx context.Context) {
	defer a.client.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fmt.Fprintln(a.out, "ViVault CLI (type 'help' for commands)")

	a.checkOnline(ctx)
	a.refreshStatus(ctx)
	go a.StartOnlineStatusWatcher(ctx, onlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.mode != mode {
		a.mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) setUnlocked(v bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.unlocked = v
}

func (a *App) isUnlocked() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.unlocked
}

func (a *App) getStatus() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	state := "locked"
	if a.unlocked {
		state = "unlocked"
	}
	if a.mode != "" {
		return fmt.Sprintf("(%s %s)", state, a.mode)
	}
	return fmt.Sprintf("(%s)", state)
}

func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := a.client.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

// StartOnlineStatusWatcher pings vaultd every interval until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}
