package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	calls  []string
	errs   []error
	failOn string
}

func (f *fakeExec) exec(ctx context.Context, name string, args []string) error {
	f.calls = append(f.calls, strings.TrimSpace(name+" "+strings.Join(args, " ")))
	if name == f.failOn {
		return errors.New("boom")
	}
	return nil
}

func (f *fakeExec) PrintError(err error) { f.errs = append(f.errs, err) }

func TestRunREPL_DispatchesCommands(t *testing.T) {
	out := &bytes.Buffer{}

	input := strings.NewReader(strings.Join([]string{
		"add u1 rock jazz",
		"",
		"   ",
		"tags u1",
		"remove u1 rock",
		"exit",
		"ping",
	}, "\n"))

	f := &fakeExec{}
	runREPL(context.Background(), f, out, false, bufio.NewScanner(input))

	assert.Equal(t, []string{"add u1 rock jazz", "tags u1", "remove u1 rock"}, f.calls)
	assert.Equal(t, "Bye!\n", out.String())
}

func TestRunREPL_ReportsErrorsAndContinues(t *testing.T) {
	input := strings.NewReader("clear\nstats\n")
	f := &fakeExec{failOn: "clear"}
	runREPL(context.Background(), f, &bytes.Buffer{}, false, bufio.NewScanner(input))

	assert.Equal(t, []string{"clear", "stats"}, f.calls)
	require.Len(t, f.errs, 1)
	assert.EqualError(t, f.errs[0], "boom")
}

func TestRunREPL_HelpAndPrompt(t *testing.T) {
	out := &bytes.Buffer{}

	input := strings.NewReader("help\nquit\n")
	runREPL(context.Background(), &fakeExec{}, out, true, bufio.NewScanner(input))

	got := out.String()
	assert.True(t, strings.HasPrefix(got, "tagctl> Available commands: "), "got %q", got)
	assert.Contains(t, got, "add")
	assert.Contains(t, got, "all-tags")
	assert.Contains(t, got, "exit")
	assert.True(t, strings.HasSuffix(got, "\ntagctl> Bye!\n"), "prompt has no newline, got %q", got)
}

func TestRunREPL_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := &fakeExec{}
	runREPL(ctx, f, &bytes.Buffer{}, false, bufio.NewScanner(strings.NewReader("ping\nping\n")))

	assert.Equal(t, []string{"ping"}, f.calls)
}

func TestReplCmd_WritesEverythingToAppOutput(t *testing.T) {
	fc := newFakeClient()
	a, out := newTestApp(fc)
	a.in = strings.NewReader("add u1 rock\nhas u1 rock\nexit\n")

	code := Execute(context.Background(), a, []string{"--no-color", "repl"})
	assert.Equal(t, 0, code)
	assert.Equal(t, "user u1 has 1 tag: rock\nyes\nBye!\n", out.String())
	assert.Equal(t, []string{"add", "has"}, fc.calls)
	assert.True(t, fc.closed)
	assert.False(t, isTerminal(a.in))
}
