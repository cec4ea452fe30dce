package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	unlocked bool

	calls []string
	args  []string
}

func (f *fakeExec) record(name, arg string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, arg)
	return nil
}

func (f *fakeExec) isUnlocked() bool { return f.unlocked }
func (f *fakeExec) Unlock(ctx context.Context) error {
	f.unlocked = true
	return f.record("unlock", "")
}
func (f *fakeExec) Lock(ctx context.Context) error {
	f.unlocked = false
	return f.record("lock", "")
}
func (f *fakeExec) List(ctx context.Context) error { return f.record("list", "") }
func (f *fakeExec) Search(ctx context.Context, q string) error { return f.record("search", q) }
func (f *fakeExec) Show(ctx context.Context, id string) error { return f.record("show", id) }
func (f *fakeExec) Copy(ctx context.Context, id string) error { return f.record("copy", id) }
func (f *fakeExec) Add(ctx context.Context) error { return f.record("add", "") }
func (f *fakeExec) Find(ctx context.Context, host string) error { return f.record("find", host) }
func (f *fakeExec) Generate(ctx context.Context, n string) error { return f.record("gen", n) }
func (f *fakeExec) Status(ctx context.Context) error { return f.record("status", "") }

func silence(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		parts := make([]string, 0, len(a))
		for _, v := range a {
			if s, ok := v.(string); ok {
				parts = append(parts, s)
			}
		}
		lines = append(lines, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	silence(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"unlock",
		"l",
		"search git hub",
		"show 123",
		"copy 123",
		"add",
		"find example.com",
		"gen 24",
		"gen",
		"status",
		"lock",
		"foobar",
		"exit",
		"list",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewReader(input))

	wantCalls := []string{"unlock", "list", "search", "show", "copy", "add", "find", "gen", "gen", "status", "lock"}
	wantArgs := []string{"", "", "git hub", "123", "123", "", "example.com", "24", "", "", ""}

	if strings.Join(exec.calls, ",") != strings.Join(wantCalls, ",") {
		t.Fatalf("calls mismatch: got %v, want %v", exec.calls, wantCalls)
	}
	if strings.Join(exec.args, ",") != strings.Join(wantArgs, ",") {
		t.Fatalf("args mismatch: got %q, want %q", exec.args, wantArgs)
	}
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	lines := silence(t)

	input := strings.NewReader("show\ncopy\nfind\nquit\n")
	exec := &fakeExec{unlocked: true}

	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(input))

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
	joined := strings.Join(*lines, "\n")
	for _, want := range []string{"Usage: show <id>", "Usage: copy <id>", "Usage: find <host>", "Bye!"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("output %q misses %q", joined, want)
		}
	}
}

func TestRunREPL_LastLineWithoutNewline(t *testing.T) {
	silence(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("status")))

	if len(exec.calls) != 1 || exec.calls[0] != "status" {
		t.Fatalf("expected status to run, got %v", exec.calls)
	}
}
