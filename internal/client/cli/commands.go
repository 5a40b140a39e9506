package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

// command is one tagctl operation. The same table drives the cobra
// subcommands and the REPL.
type command struct {
	name  string
	usage string
	short string
	args  cobra.PositionalArgs
	run   func(a *App, ctx context.Context, args []string) error
}

var commands = []command{
	{name: "ping", short: "Check that the server is up", args: cobra.NoArgs, run: (*App).ping},
	{name: "add", usage: "<user> <tag>...", short: "Add tags to a user (no tags just creates the user)", args: cobra.MinimumNArgs(1), run: (*App).add},
	{name: "create", usage: "<user>", short: "Create a user without tags", args: cobra.ExactArgs(1), run: (*App).create},
	{name: "remove", usage: "<user> <tag>", short: "Remove a tag from a user", args: cobra.ExactArgs(2), run: (*App).remove},
	{name: "tags", usage: "<user>", short: "List a user's tags", args: cobra.ExactArgs(1), run: (*App).tags},
	{name: "users", usage: "[tag]", short: "List all users, or the users with a tag", args: cobra.MaximumNArgs(1), run: (*App).users},
	{name: "all-tags", short: "List every tag in use", args: cobra.NoArgs, run: (*App).allTags},
	{name: "has", usage: "<user> <tag>", short: "Check whether a user has a tag", args: cobra.ExactArgs(2), run: (*App).has},
	{name: "clear", short: "Delete all users and tags", args: cobra.NoArgs, run: (*App).clear},
	{name: "stats", short: "Show store counters", args: cobra.NoArgs, run: (*App).stats},
}

func lookup(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func commandNames() []string {
	names := make([]string, 0, len(commands))
	for _, c := range commands {
		names = append(names, c.name)
	}
	sort.Strings(names)
	return names
}

// exec runs the named command with its arguments, checking arity first.
func (a *App) exec(ctx context.Context, name string, args []string) error {
	c, ok := lookup(name)
	if !ok {
		return fmt.Errorf("unknown command %q", name)
	}
	if err := c.args(&cobra.Command{Use: name}, args); err != nil {
		return err
	}
	if err := a.connect(); err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	return c.run(a, ctx, args)
}

func (a *App) ping(ctx context.Context, _ []string) error {
	if err := a.client.Ping(ctx); err != nil {
		return err
	}
	a.ok("OK")
	return nil
}

func (a *App) add(ctx context.Context, args []string) error {
	user := args[0]
	tags, err := a.client.AddTags(ctx, user, args[1:]...)
	if err != nil {
		return err
	}
	a.ok("user %s has %s: %s", user, plural(len(tags), "tag"), joinTags(tags))
	return nil
}

func (a *App) create(ctx context.Context, args []string) error {
	created, err := a.client.CreateUser(ctx, args[0])
	if err != nil {
		return err
	}
	if !created {
		a.warn("user %s already exists", args[0])
		return nil
	}
	a.ok("user %s created", args[0])
	return nil
}

func (a *App) remove(ctx context.Context, args []string) error {
	if err := a.client.RemoveTag(ctx, args[0], args[1]); err != nil {
		return err
	}
	a.ok("tag '%s' removed from %s", args[1], args[0])
	return nil
}

func (a *App) tags(ctx context.Context, args []string) error {
	tags, exists, err := a.client.UserTags(ctx, args[0])
	if err != nil {
		return err
	}
	if !exists {
		a.warn("user %s not found", args[0])
		return nil
	}
	a.list(tags, "user has no tags")
	return nil
}

func (a *App) users(ctx context.Context, args []string) error {
	var (
		users []string
		err   error
	)
	if len(args) == 1 {
		users, err = a.client.UsersWithTag(ctx, args[0])
	} else {
		users, err = a.client.AllUsers(ctx)
	}
	if err != nil {
		return err
	}
	a.list(users, "no users")
	return nil
}

func (a *App) allTags(ctx context.Context, _ []string) error {
	tags, err := a.client.AllTags(ctx)
	if err != nil {
		return err
	}
	a.list(tags, "no tags")
	return nil
}

func (a *App) has(ctx context.Context, args []string) error {
	has, err := a.client.HasTag(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	if has {
		a.ok("%s", yesNo(has))
	} else {
		a.warn("%s", yesNo(has))
	}
	return nil
}

func (a *App) clear(ctx context.Context, _ []string) error {
	if err := a.client.Clear(ctx); err != nil {
		return err
	}
	a.ok("store cleared")
	return nil
}

func (a *App) stats(ctx context.Context, _ []string) error {
	st, err := a.client.Stats(ctx)
	if err != nil {
		return err
	}
	a.ok("users: %d", st.Users)
	a.ok("tags:  %d", st.Tags)
	a.ok("pairs: %d", st.Pairs)
	return nil
}
