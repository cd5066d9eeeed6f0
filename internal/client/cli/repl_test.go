package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	calls []string
	err   error
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, strings.TrimSpace(name+" "+strings.Join(args, " ")))
	return f.err
}

func (f *fakeExec) Home(context.Context) error { return f.record("home", nil) }
func (f *fakeExec) Scan(_ context.Context, args []string) error {
	return f.record("scan", args)
}
func (f *fakeExec) History(_ context.Context, args []string) error {
	return f.record("history", args)
}
func (f *fakeExec) Settings(_ context.Context, args []string) error {
	return f.record("settings", args)
}
func (f *fakeExec) Premium(_ context.Context, args []string) error {
	return f.record("premium", args)
}
func (f *fakeExec) Backup(_ context.Context, args []string) error {
	return f.record("backup", args)
}

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprint(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	out := captureOutput(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"home",
		"",
		"scan a.png b.png",
		"h fav",
		"history delete 3",
		"settings sound off",
		"premium buy qr_scanner_lifetime",
		"backup list",
		"foobar",
		"exit",
		"home",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "(connected)" }, bufio.NewReader(input))

	assert.Equal(t, []string{
		"home",
		"scan a.png b.png",
		"history fav",
		"history delete 3",
		"settings sound off",
		"premium buy qr_scanner_lifetime",
		"backup list",
	}, exec.calls)

	joined := strings.Join(*out, "\n")
	assert.Contains(t, joined, "qr (connected) > ")
	assert.Contains(t, joined, "Available commands:")
	assert.Contains(t, joined, "Unknown command:foobar")
	assert.Contains(t, joined, "Bye!")
}

func TestRunREPL_ErrorsAreNotFatal(t *testing.T) {
	out := captureOutput(t)

	exec := &fakeExec{err: errors.New("kaput")}
	input := strings.NewReader("home\nhome")
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(input))

	assert.Len(t, exec.calls, 2)
	assert.Contains(t, strings.Join(*out, "\n"), "Error:kaput")
}

func TestRunREPL_StopsOnCancelledContext(t *testing.T) {
	captureOutput(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	runREPL(ctx, exec, func() string { return "" }, bufio.NewReader(strings.NewReader("home\n")))
	assert.Empty(t, exec.calls)
}
