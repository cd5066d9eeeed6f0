package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Home(ctx context.Context) error
	Scan(ctx context.Context, args []string) error
	History(ctx context.Context, args []string) error
	Settings(ctx context.Context, args []string) error
	Premium(ctx context.Context, args []string) error
	Backup(ctx context.Context, args []string) error
}

const helpText = `Available commands:
  home                                     premium status and number of scans
  scan [files...]                          decode image files, or watch the frame directory
  scan torch | sound | save | clear        scanner controls
  history [all|fav]                        list scans
  history star|delete <id> | clear         edit history
  settings [show]                          show preferences
  settings <name> <value>                  vibration, intensity, sound, tone, autosave, theme, brightness
  settings support                         support contact link
  premium [status] | products | buy <id> | clear
  backup push | pull <key> | list
  exit | quit`

// runREPL starts a simple read–eval–print loop for the scanner CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a' with the remaining tokens as arguments. Unknown
// commands are reported back to the user. The loop exits on EOF, when ctx is
// done, or when the user types "exit" or "quit".
//
// Command errors are printed and the loop continues; no error is fatal.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("qr %s > ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			printlnFn(helpText)

		case "home":
			cmdErr = a.Home(ctx)

		case "scan":
			cmdErr = a.Scan(ctx, args)

		case "h", "history":
			cmdErr = a.History(ctx, args)

		case "settings":
			cmdErr = a.Settings(ctx, args)

		case "premium":
			cmdErr = a.Premium(ctx, args)

		case "backup":
			cmdErr = a.Backup(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", cmdErr)
		}
	}
}
