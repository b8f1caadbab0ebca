// internal/api/rpc/server.go
package rpc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"imagegen-dispatch/internal/domain"
	"imagegen-dispatch/internal/usecase"
	pb "imagegen-dispatch/proto"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// GenerationService is what the gRPC service needs from the use case layer.
type GenerationService interface {
	Submit(ctx context.Context, req domain.GenerateRequest) (*usecase.Submission, error)
	Status(ctx context.Context, jobID string) (domain.JobStatus, error)
	Health(ctx context.Context) usecase.Health
}

// BuildInfo is reported in HealthCheck system info.
type BuildInfo struct {
	Version string
	Device  string
}

// ImageGenServer implements the proto.ImageGenServiceServer interface.
type ImageGenServer struct {
	pb.UnimplementedImageGenServiceServer
	service GenerationService
	build   BuildInfo
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewImageGenServer creates the gRPC service implementation.
func NewImageGenServer(service GenerationService, build BuildInfo, logger *slog.Logger) *ImageGenServer {
	return &ImageGenServer{
		service: service,
		build:   build,
		logger:  logger.With("component", "grpc-server"),
		tracer:  otel.Tracer("imagegen-rpc"),
	}
}

// GenerateImage admits the request and blocks until its job finishes.
func (s *ImageGenServer) GenerateImage(ctx context.Context, req *pb.GenerateImageRequest) (*pb.GenerateImageResponse, error) {
	ctx, span := s.tracer.Start(ctx, "rpc.GenerateImage")
	defer span.End()

	s.logger.Info("received generation request", "prompt_length", len(req.Prompt))

	sub, err := s.service.Submit(ctx, protoToDomain(req))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "generation request failed")
		return nil, toStatus(err)
	}

	span.SetAttributes(attribute.String("job.id", sub.JobID))
	return domainToProto(sub.JobID, sub.Result), nil
}

// GetJobStatus reports the current status of a job.
func (s *ImageGenServer) GetJobStatus(ctx context.Context, req *pb.JobStatusRequest) (*pb.JobStatusResponse, error) {
	st, err := s.service.Status(ctx, req.JobId)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.JobStatusResponse{JobId: req.JobId, Status: st.String()}, nil
}

// HealthCheck reports queue length and worker count. It does not probe
// worker liveness.
func (s *ImageGenServer) HealthCheck(ctx context.Context, _ *pb.HealthCheckRequest) (*pb.HealthCheckResponse, error) {
	h := s.service.Health(ctx)
	return &pb.HealthCheckResponse{
		Status:        h.Status,
		ModelLoaded:   h.ModelLoaded,
		QueueLength:   int32(h.QueueLength),
		ActiveWorkers: int32(h.WorkerCount),
		QueueCapacity: int32(h.QueueCapacity),
		SystemInfo: map[string]string{
			"version":    s.build.Version,
			"device":     s.build.Device,
			"model":      h.ModelName,
			"go_version": runtime.Version(),
		},
	}, nil
}

// toStatus maps domain errors to gRPC status codes.
func toStatus(err error) error {
	switch {
	case errors.Is(err, domain.ErrQueueFull):
		return status.Errorf(codes.ResourceExhausted, "Queue full: %v", err)
	case errors.Is(err, domain.ErrThrottled):
		return status.Error(codes.ResourceExhausted, err.Error())
	case errors.Is(err, domain.ErrInvalidParameters):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrJobNotFound):
		return status.Error(codes.NotFound, "Job not found")
	case errors.Is(err, domain.ErrSenderAbandoned):
		return status.Error(codes.Internal, "Worker dropped response")
	case errors.Is(err, domain.ErrGenerationFailed):
		return status.Errorf(codes.Internal, "Generation failed: %v", err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	default:
		return status.Error(codes.Internal, fmt.Sprintf("internal error: %v", err))
	}
}

func protoToDomain(req *pb.GenerateImageRequest) domain.GenerateRequest {
	out := domain.GenerateRequest{
		Prompt:         req.Prompt,
		NegativePrompt: req.NegativePrompt,
		GuidanceScale:  req.GuidanceScale,
		Seed:           req.Seed,
		Steps:          intPtr(req.NumInferenceSteps),
		Width:          intPtr(req.Width),
		Height:         intPtr(req.Height),
	}
	return out
}

func domainToProto(jobID string, res *domain.GenerationResult) *pb.GenerateImageResponse {
	return &pb.GenerateImageResponse{
		JobId:  jobID,
		Images: res.Images,
		Status: domain.JobStatusCompleted.String(),
		Metadata: &pb.GenerationMetadata{
			GenerationTimeSeconds: res.ElapsedSeconds,
			ModelUsed:             res.ModelUsed,
			Seed:                  res.SeedUsed,
			ActualSteps:           int32(res.StepsUsed),
		},
	}
}

func intPtr(v *int32) *int {
	if v == nil {
		return nil
	}
	i := int(*v)
	return &i
}
