package cli

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/usertags/internal/client/client"
)

// TagClient is the client surface the commands use. *client.GRPCClient
// satisfies it.
type TagClient interface {
	Ping(ctx context.Context) error
	AddTags(ctx context.Context, user string, tags ...string) ([]string, error)
	CreateUser(ctx context.Context, user string) (bool, error)
	RemoveTag(ctx context.Context, user, tag string) error
	UserTags(ctx context.Context, user string) ([]string, bool, error)
	UsersWithTag(ctx context.Context, tag string) ([]string, error)
	HasTag(ctx context.Context, user, tag string) (bool, error)
	AllUsers(ctx context.Context) ([]string, error)
	AllTags(ctx context.Context) ([]string, error)
	Clear(ctx context.Context) error
	Stats(ctx context.Context) (client.Stats, error)
	Close() error
}

var _ TagClient = (*client.GRPCClient)(nil)

// App holds the state shared by all tagctl commands.
type App struct {
	addr    string
	timeout time.Duration
	noColor bool

	in  io.Reader
	out io.Writer

	dial   func(addr string) (TagClient, error)
	client TagClient
}

func NewApp() *App {
	return &App{
		in:  os.Stdin,
		out: os.Stdout,
		dial: func(addr string) (TagClient, error) {
			return client.NewTagClient(addr)
		},
	}
}

func (a *App) connect() error {
	if a.client != nil {
		return nil
	}
	c, err := a.dial(a.addr)
	if err != nil {
		return err
	}
	a.client = c
	return nil
}

func (a *App) close() error {
	if a.client == nil {
		return nil
	}
	err := a.client.Close()
	a.client = nil
	return err
}

// withTimeout bounds a single request by the --timeout flag.
func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.timeout)
}
