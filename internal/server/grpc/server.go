package grpcserver

import (
	"context"
	"net"

	"github.com/rzbill/snowid/internal/runtime"
	idsvc "github.com/rzbill/snowid/internal/services/ids"
	snowidv1 "github.com/rzbill/snowid/proto/gen/go/snowid/v1"
	"google.golang.org/grpc"
)

// Server owns the gRPC server instance and runtime.
type Server struct {
	rt    *runtime.Runtime
	idsvc *idsvc.Service
	grpc  *grpc.Server
	lis   net.Listener
}

// New constructs a gRPC server and registers services.
func New(rt *runtime.Runtime, opts ...grpc.ServerOption) *Server {
	s := &Server{rt: rt, idsvc: idsvc.New(rt), grpc: grpc.NewServer(opts...)}
	snowidv1.RegisterHealthServiceServer(s.grpc, &healthSvc{rt: rt})
	snowidv1.RegisterIdServiceServer(s.grpc, &idsSvc{svc: s.idsvc})
	return s
}

// ListenAndServe binds to addr and serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.lis = l
	errCh := make(chan error, 1)
	go func() { errCh <- s.grpc.Serve(l) }()
	select {
	case <-ctx.Done():
		s.grpc.GracefulStop()
		return nil
	case err := <-errCh:
		return err
	}
}

// Close stops the server and closes the listener.
func (s *Server) Close() {
	if s.grpc != nil {
		s.grpc.GracefulStop()
	}
	if s.lis != nil {
		_ = s.lis.Close()
	}
}
