package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// execIface is the command surface the REPL dispatches to. *App satisfies
// it; tests can provide a lightweight stub.
type execIface interface {
	exec(ctx context.Context, name string, args []string) error
	PrintError(err error)
}

// runREPL reads commands line by line and dispatches them to a.
//
// The first token of a line is the command name, the rest are its
// arguments. "help" lists the commands and "exit" or "quit" leaves the
// loop, as does EOF. Command errors are reported and the loop continues.
// Loop output goes to out; the prompt is written only when showPrompt is set.
func runREPL(ctx context.Context, a execIface, out io.Writer, showPrompt bool, scanner *bufio.Scanner) {
	for {
		if showPrompt {
			fmt.Fprint(out, "tagctl> ")
		}
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			fmt.Fprintln(out, "Available commands:", strings.Join(append(commandNames(), "help", "exit"), ", "))

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			if err := a.exec(ctx, cmd, parts[1:]); err != nil {
				a.PrintError(err)
			}
		}

		if ctx.Err() != nil {
			return
		}
	}
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r any) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func replCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Run commands interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			interactive := isTerminal(a.in)
			if interactive {
				fmt.Fprintln(a.out, "usertags CLI (type 'help' for commands)")
			}
			runREPL(cmd.Context(), a, a.out, interactive, bufio.NewScanner(a.in))
			return nil
		},
	}
}
