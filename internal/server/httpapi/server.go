package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/usertags/internal/logging"
	"github.com/dmitrijs2005/usertags/internal/server/services"
)

const (
	maxBodyBytes      = 1 << 20
	readHeaderTimeout = 5 * time.Second
)

type Server struct {
	address         string
	tags            *services.TagService
	logger          logging.Logger
	shutdownTimeout time.Duration
}

func NewServer(a string, l logging.Logger, ts *services.TagService, shutdownTimeout time.Duration) *Server {
	return &Server{
		address:         a,
		tags:            ts,
		logger:          l.With("module", "http_server"),
		shutdownTimeout: shutdownTimeout,
	}
}

// Handler returns the routed handler wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /ping", s.handlePing)
	mux.HandleFunc("GET /users", s.handleAllUsers)
	mux.HandleFunc("POST /users/{user_id}", s.handleCreateUser)
	mux.HandleFunc("GET /users/{user_id}/tags", s.handleUserTags)
	mux.HandleFunc("POST /users/{user_id}/tags", s.handleAddTags)
	mux.HandleFunc("GET /users/{user_id}/tags/{tag}", s.handleHasTag)
	mux.HandleFunc("DELETE /users/{user_id}/tags/{tag}", s.handleRemoveTag)
	mux.HandleFunc("GET /tags", s.handleAllTags)
	mux.HandleFunc("GET /tags/{tag}/users", s.handleUsersWithTag)
	mux.HandleFunc("GET /stats", s.handleStats)
	mux.HandleFunc("DELETE /store", s.handleClear)

	return withRequestID(s.withAccessLog(withCORS(mux)))
}

// Run serves until ctx is cancelled, then shuts down gracefully within the
// configured timeout.
func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(listen)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "Stopping HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
