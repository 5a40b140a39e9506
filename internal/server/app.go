// Package server wires the usertags server together: it opens the tag
// store, starts the HTTP and gRPC APIs over it, handles OS signals and
// flushes the store on shutdown.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/usertags/internal/logging"
	"github.com/dmitrijs2005/usertags/internal/server/config"
	"github.com/dmitrijs2005/usertags/internal/server/httpapi"
	"github.com/dmitrijs2005/usertags/internal/server/services"
	"github.com/dmitrijs2005/usertags/internal/server/tagstore"

	gs "github.com/dmitrijs2005/usertags/internal/server/grpc"
)

type App struct {
	config     *config.Config
	logger     logging.Logger
	store      *tagstore.Store
	tagService *services.TagService
}

func NewApp(c *config.Config) (*App, error) {

	logger, err := logging.New(os.Stdout, c.LogFormat, c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	store := tagstore.New(context.Background(), c.DataFile, logger)
	ts := services.NewTagService(store, logger)

	return &App{config: c, logger: logger, store: store, tagService: ts}, nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case s := <-sigs:
			app.logger.Info(ctx, "Signal received", "signal", s.String())
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

// Run serves the HTTP and gRPC APIs until ctx is cancelled, a signal
// arrives or either server fails. The store is closed, and so saved, on the
// way out.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "data_file", app.store.Path())

	app.initSignalHandler(ctx, cancelFunc)

	httpServer := httpapi.NewServer(app.config.HTTPAddr, app.logger, app.tagService, app.config.ShutdownTimeout)
	grpcServer := gs.NewGRPCServer(app.config.GRPCAddr, app.logger, app.tagService)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := httpServer.Run(gctx); err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := grpcServer.Run(gctx); err != nil {
			return fmt.Errorf("grpc server: %w", err)
		}
		return nil
	})

	err := g.Wait()
	if err != nil {
		app.logger.Error(ctx, err.Error())
	}

	if cerr := app.store.Close(context.Background()); cerr != nil {
		app.logger.Error(ctx, cerr.Error())
	}

	app.logger.Info(ctx, "App stopped")

	return err
}
