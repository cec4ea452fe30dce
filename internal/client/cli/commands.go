package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/atotto/clipboard"
	"github.com/dmitrijs2005/vivault/internal/common"
	"github.com/dmitrijs2005/vivault/internal/vault/models"
)

// clipboardWrite is a test seam for the system clipboard.
var clipboardWrite = clipboard.WriteAll

// report prints err in user terms. A locked answer from vaultd also resets
// the local unlocked flag, since the session may have expired there.
func (a *App) report(err error) error {
	switch {
	case errors.Is(err, common.ErrVaultLocked):
		a.setUnlocked(false)
		fmt.Fprintln(a.out, "Vault is locked, run 'unlock' first")
	case errors.Is(err, common.ErrAuthentication):
		fmt.Fprintln(a.out, "Invalid master password")
	case errors.Is(err, common.ErrTransport):
		a.setMode(ModeOffline)
		fmt.Fprintln(a.out, "vaultd is not reachable")
	case errors.Is(err, common.ErrInvalidToken):
		fmt.Fprintln(a.out, "vaultd rejected this client, check the shared secret")
	default:
		fmt.Fprintln(a.out, "Error:", err)
	}
	return err
}

func (a *App) refreshStatus(ctx context.Context) {
	st, err := a.client.Status(ctx)
	if err != nil {
		return
	}
	a.setUnlocked(st.Unlocked)
}

func (a *App) Unlock(ctx context.Context) error {
	pw, err := GetPassword("Master password", a.out)
	if err != nil {
		return a.report(err)
	}
	defer common.WipeByteArray(pw)

	msg, err := a.client.Unlock(ctx, string(pw))
	if err != nil {
		return a.report(err)
	}
	a.setUnlocked(true)
	fmt.Fprintln(a.out, msg)
	return nil
}

func (a *App) Lock(ctx context.Context) error {
	msg, err := a.client.Lock(ctx)
	if err != nil {
		return a.report(err)
	}
	a.setUnlocked(false)
	fmt.Fprintln(a.out, msg)
	return nil
}

func (a *App) List(ctx context.Context) error {
	creds, err := a.client.ListCredentials(ctx)
	if err != nil {
		return a.report(err)
	}
	a.printCredentials(creds)
	return nil
}

func (a *App) Search(ctx context.Context, query string) error {
	creds, err := a.client.Search(ctx, query)
	if err != nil {
		return a.report(err)
	}
	a.printCredentials(creds)
	return nil
}

func (a *App) printCredentials(creds []models.CredentialSummary) {
	if len(creds) == 0 {
		fmt.Fprintln(a.out, "No saved logins")
		return
	}
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSITE\tUSERNAME\tURL\tCREATED")
	for _, c := range creds {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", c.ID, c.SiteName, c.Username, c.SiteURL, c.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	_ = w.Flush()
}

func (a *App) Show(ctx context.Context, id string) error {
	secret, err := a.client.GetSecret(ctx, id)
	if err != nil {
		return a.report(err)
	}
	fmt.Fprintln(a.out, secret)
	return nil
}

func (a *App) Copy(ctx context.Context, id string) error {
	secret, err := a.client.GetSecret(ctx, id)
	if err != nil {
		return a.report(err)
	}
	if err := clipboardWrite(secret); err != nil {
		return a.report(fmt.Errorf("clipboard: %w", err))
	}
	fmt.Fprintln(a.out, "Secret copied to clipboard")
	return nil
}

// Add prompts for a new login. An empty password is replaced by a
// generated one.
func (a *App) Add(ctx context.Context) error {
	var in models.NewCredential

	var err error
	if in.SiteName, err = GetSimpleText(a.reader, "Site name", a.out); err != nil {
		return a.report(err)
	}
	if in.SiteURL, err = GetSimpleText(a.reader, "Site URL", a.out); err != nil {
		return a.report(err)
	}
	if in.Username, err = GetSimpleText(a.reader, "Username", a.out); err != nil {
		return a.report(err)
	}

	pw, err := GetPassword("Password (empty to generate)", a.out)
	if err != nil {
		return a.report(err)
	}
	defer common.WipeByteArray(pw)

	generated := len(pw) == 0
	if generated {
		s, err := a.client.GeneratePassword(ctx, 0)
		if err != nil {
			return a.report(err)
		}
		in.Secret = []byte(s)
	} else {
		in.Secret = pw
	}

	id, err := a.client.SaveCredential(ctx, in)
	if err != nil {
		return a.report(err)
	}
	fmt.Fprintln(a.out, "Saved with id", id)
	if generated {
		fmt.Fprintf(a.out, "Generated password, use 'copy %s' to copy it\n", id)
	}
	return nil
}

func (a *App) Find(ctx context.Context, host string) error {
	m, err := a.client.FindForHost(ctx, host)
	if errors.Is(err, common.ErrNotFound) {
		fmt.Fprintln(a.out, "No login saved for", host)
		return nil
	}
	if err != nil {
		return a.report(err)
	}
	defer common.WipeByteArray(m.Secret)

	fmt.Fprintln(a.out, "Username:", m.Username)
	// The password is never printed here; showing it takes an explicit 'show'.
	if err := clipboardWrite(string(m.Secret)); err != nil {
		fmt.Fprintf(a.out, "Could not copy password to clipboard, use 'show %s' to display it\n", m.ID)
		return nil
	}
	fmt.Fprintln(a.out, "Password copied to clipboard")
	return nil
}

func (a *App) Generate(ctx context.Context, length string) error {
	n := 0
	if length != "" {
		var err error
		if n, err = strconv.Atoi(length); err != nil {
			fmt.Fprintln(a.out, "Usage: gen [length]")
			return err
		}
	}
	pw, err := a.client.GeneratePassword(ctx, n)
	if err != nil {
		return a.report(err)
	}
	fmt.Fprintln(a.out, pw)
	return nil
}

func (a *App) Status(ctx context.Context) error {
	st, err := a.client.Status(ctx)
	if err != nil {
		return a.report(err)
	}
	a.setUnlocked(st.Unlocked)

	switch {
	case !st.Initialized:
		fmt.Fprintln(a.out, "Vault is empty, the first unlock sets the master password")
	case st.Unlocked && !st.UnlockedAt.IsZero() && !st.ExpiresAt.IsZero():
		fmt.Fprintf(a.out, "Unlocked since %s, locks at %s\n",
			st.UnlockedAt.Local().Format("15:04:05"), st.ExpiresAt.Local().Format("15:04:05"))
	case st.Unlocked:
		fmt.Fprintln(a.out, "Unlocked")
	case st.RecentlyUnlocked:
		fmt.Fprintln(a.out, "Locked (vaultd restarted, unlock again)")
	default:
		fmt.Fprintln(a.out, "Locked")
	}
	return nil
}
