package rpc

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	pb "imagegen-dispatch/proto"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

// Config holds gRPC server configuration.
type Config struct {
	Addr string
	// RateLimit is calls per second; zero disables throttling.
	RateLimit float64
	RateBurst int
	// MaxMessageBytes bounds request and response sizes. Generated images
	// easily exceed the gRPC default of 4MiB.
	MaxMessageBytes int
	Build           BuildInfo
}

// Server is the gRPC front end.
type Server struct {
	config     Config
	grpcServer *grpc.Server
	logger     *slog.Logger
}

// NewServer builds the gRPC server and registers the image generation
// service and reflection on it.
func NewServer(cfg Config, service GenerationService, logger *slog.Logger) *Server {
	logger = logger.With("component", "grpc-server")

	interceptors := []grpc.UnaryServerInterceptor{
		metricsInterceptor,
		recoveryInterceptor(logger),
	}
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst <= 0 {
			burst = 1
		}
		interceptors = append(interceptors, throttleInterceptor(rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)))
	}

	opts := []grpc.ServerOption{
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(interceptors...),
	}
	if cfg.MaxMessageBytes > 0 {
		opts = append(opts,
			grpc.MaxRecvMsgSize(cfg.MaxMessageBytes),
			grpc.MaxSendMsgSize(cfg.MaxMessageBytes),
		)
	}

	grpcServer := grpc.NewServer(opts...)
	pb.RegisterImageGenServiceServer(grpcServer, NewImageGenServer(service, cfg.Build, logger))
	reflection.Register(grpcServer)

	return &Server{
		config:     cfg,
		grpcServer: grpcServer,
		logger:     logger,
	}
}

// Start listens on the configured address and serves until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return fmt.Errorf("grpc listen on %s: %w", s.config.Addr, err)
	}
	return s.Serve(ctx, lis)
}

// Serve serves on lis until ctx is cancelled, then stops gracefully. Calls
// still waiting on a job after the grace period are cut off.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	s.logger.Info("gRPC server listening", "addr", lis.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.grpcServer.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("gRPC server shutting down")
		stopped := make(chan struct{})
		go func() {
			s.grpcServer.GracefulStop()
			close(stopped)
		}()
		select {
		case <-stopped:
		case <-time.After(5 * time.Second):
			s.logger.Warn("graceful stop timed out, forcing")
			s.grpcServer.Stop()
		}
		return nil
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("grpc server error: %w", err)
		}
		return nil
	}
}
