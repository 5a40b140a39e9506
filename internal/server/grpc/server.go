package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/dmitrijs2005/usertags/internal/logging"
	"github.com/dmitrijs2005/usertags/internal/server/services"
	"github.com/dmitrijs2005/usertags/internal/tagrpc"
)

type GRPCServer struct {
	tagrpc.UnimplementedTagServiceServer
	address string
	tags    *services.TagService
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, ts *services.TagService) *GRPCServer {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		tags:    ts,
	}
}

// NewServer builds a grpc.Server with the interceptor chain and the tag
// service registered. Run uses it; tests can serve it on a bufconn listener.
func (s *GRPCServer) NewServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.requestIDInterceptor, s.loggingInterceptor))
	tagrpc.RegisterTagServiceServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := s.NewServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
