package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var (
	okColor   = color.New(color.FgGreen)
	warnColor = color.New(color.FgYellow)
	errColor  = color.New(color.FgRed, color.Bold)
	itemColor = color.New(color.FgCyan)
)

func (a *App) ok(format string, args ...any) {
	okColor.Fprintf(a.out, format+"\n", args...)
}

func (a *App) warn(format string, args ...any) {
	warnColor.Fprintf(a.out, format+"\n", args...)
}

// PrintError writes err to the app's output in red.
func (a *App) PrintError(err error) {
	errColor.Fprintf(a.out, "error: %v\n", err)
}

func (a *App) list(items []string, empty string) {
	if len(items) == 0 {
		a.warn("%s", empty)
		return
	}
	for _, item := range items {
		itemColor.Fprintln(a.out, item)
	}
}

func joinTags(tags []string) string {
	if len(tags) == 0 {
		return "(none)"
	}
	return strings.Join(tags, ", ")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
