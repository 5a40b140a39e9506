package cli

import (
	"context"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the tagctl command tree around a.
func NewRootCmd(a *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "tagctl",
		Short:         "Command-line client for the usertags server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.noColor {
				color.NoColor = true
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.addr, "addr", "localhost:50051", "gRPC address of the usertags server")
	root.PersistentFlags().DurationVar(&a.timeout, "timeout", 5*time.Second, "per-request timeout")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	root.SetOut(a.out)
	root.SetErr(a.out)

	for _, c := range commands {
		root.AddCommand(subCmd(a, c))
	}
	root.AddCommand(replCmd(a))

	return root
}

func subCmd(a *App, c command) *cobra.Command {
	use := c.name
	if c.usage != "" {
		use = strings.Join([]string{c.name, c.usage}, " ")
	}
	return &cobra.Command{
		Use:   use,
		Short: c.short,
		Args:  c.args,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.exec(cmd.Context(), c.name, args)
		},
	}
}

// Execute runs tagctl with args and returns the process exit code.
func Execute(ctx context.Context, a *App, args []string) int {
	root := NewRootCmd(a)
	root.SetArgs(args)
	defer func() { _ = a.close() }()

	if err := root.ExecuteContext(ctx); err != nil {
		a.PrintError(err)
		return 1
	}
	return 0
}
