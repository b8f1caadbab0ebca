// internal/api/http/generation_handler.go
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"imagegen-dispatch/internal/domain"
	"imagegen-dispatch/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const maxBodyBytes = 1 << 20

// GenerationService is what the handlers need from the use case layer.
type GenerationService interface {
	Submit(ctx context.Context, req domain.GenerateRequest) (*usecase.Submission, error)
	Status(ctx context.Context, jobID string) (domain.JobStatus, error)
	Health(ctx context.Context) usecase.Health
}

// BuildInfo is reported by the health route.
type BuildInfo struct {
	Version string
	Device  string
}

// GenerationHandler serves the REST routes for image generation.
type GenerationHandler struct {
	service  GenerationService
	build    BuildInfo
	logger   *slog.Logger
	validate *validator.Validate
	tracer   trace.Tracer
}

func NewGenerationHandler(service GenerationService, build BuildInfo, logger *slog.Logger) *GenerationHandler {
	return &GenerationHandler{
		service:  service,
		build:    build,
		logger:   logger.With("component", "generation-handler"),
		validate: validator.New(),
		tracer:   otel.Tracer("imagegen-api"),
	}
}

// RegisterRoutes mounts the generation routes on r.
func (h *GenerationHandler) RegisterRoutes(r chi.Router) {
	r.Post("/v1/generate", h.handleGenerate)
	r.Post("/v1/generate/binary", h.handleGenerateBinary)
	r.Get("/v1/jobs/{jobID}", h.handleGetJob)
}

// handleGenerate answers with base64 encoded images in JSON.
func (h *GenerationHandler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "handler.Generate")
	defer span.End()

	req, ok := h.decodeRequest(w, r, span)
	if !ok {
		return
	}

	sub, err := h.service.Submit(ctx, req)
	if err != nil {
		h.recordFailure(span, err)
		if r.Context().Err() != nil {
			return
		}
		code, msg := errorStatus(err)
		resp := ErrorResponse{Status: "error", Error: msg}
		if sub != nil {
			resp.JobID = sub.JobID
		}
		respondJSON(w, code, resp)
		return
	}

	span.SetAttributes(attribute.String("job.id", sub.JobID))
	respondJSON(w, http.StatusOK, newGenerateResponse(sub.JobID, sub.Result))
}

// handleGenerateBinary answers with the first image as image/png.
func (h *GenerationHandler) handleGenerateBinary(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "handler.GenerateBinary")
	defer span.End()

	req, ok := h.decodeRequest(w, r, span)
	if !ok {
		return
	}

	sub, err := h.service.Submit(ctx, req)
	if err != nil {
		h.recordFailure(span, err)
		if r.Context().Err() != nil {
			return
		}
		code, msg := errorStatus(err)
		http.Error(w, msg, code)
		return
	}
	if len(sub.Result.Images) == 0 {
		span.SetStatus(codes.Error, "no image generated")
		http.Error(w, "no image generated", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("X-Job-ID", sub.JobID)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(sub.Result.Images[0])
}

func (h *GenerationHandler) handleGetJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "handler.GetJob")
	defer span.End()

	jobID := chi.URLParam(r, "jobID")
	span.SetAttributes(attribute.String("job.id", jobID))

	status, err := h.service.Status(ctx, jobID)
	if err != nil {
		span.SetStatus(codes.Error, "failed to get job status")
		span.RecordError(err)
		if errors.Is(err, domain.ErrJobNotFound) {
			respondJSON(w, http.StatusNotFound, ErrorResponse{JobID: jobID, Status: "error", Error: err.Error()})
			return
		}
		h.logger.Error("error getting job status", "job_id", jobID, "error", err)
		respondJSON(w, http.StatusInternalServerError, ErrorResponse{JobID: jobID, Status: "error", Error: "internal server error"})
		return
	}

	respondJSON(w, http.StatusOK, JobStatusResponse{JobID: jobID, Status: status.String()})
}

func (h *GenerationHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	health := h.service.Health(r.Context())
	respondJSON(w, http.StatusOK, HealthResponse{
		Status:        health.Status,
		ModelLoaded:   health.ModelLoaded,
		ModelUsed:     health.ModelName,
		Version:       h.build.Version,
		Device:        h.build.Device,
		QueueLength:   health.QueueLength,
		QueueCapacity: health.QueueCapacity,
		WorkerCount:   health.WorkerCount,
	})
}

// decodeRequest parses and structurally validates the request body. On
// failure it has already written a 400 response.
func (h *GenerationHandler) decodeRequest(w http.ResponseWriter, r *http.Request, span trace.Span) (domain.GenerateRequest, bool) {
	var req GenerateRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		span.SetStatus(codes.Error, "failed to decode request body")
		span.RecordError(err)
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Status: "error", Error: "invalid JSON body"})
		return domain.GenerateRequest{}, false
	}

	if err := h.validate.Struct(req); err != nil {
		span.SetStatus(codes.Error, "validation failed")
		span.RecordError(err)
		var details []string
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				details = append(details, "Field '"+fe.Field()+"' failed on the '"+fe.Tag()+"' tag.")
			}
		}
		respondJSON(w, http.StatusBadRequest, GenerateResponse{Status: "error", Error: "validation failed", Details: details})
		return domain.GenerateRequest{}, false
	}

	span.SetAttributes(attribute.Int("prompt.length", len(req.Prompt)))
	return req.ToDomainRequest(), true
}

func (h *GenerationHandler) recordFailure(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, "generation request failed")
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		h.logger.Info("request ended before the job finished", "error", err)
		return
	}
	h.logger.Warn("generation request failed", "error", err)
}

// errorStatus maps a submission error to an HTTP status and message.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidParameters):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrQueueFull), errors.Is(err, domain.ErrThrottled):
		return http.StatusTooManyRequests, err.Error()
	case errors.Is(err, domain.ErrSenderAbandoned):
		return http.StatusInternalServerError, "worker dropped response"
	case errors.Is(err, domain.ErrGenerationFailed):
		return http.StatusInternalServerError, err.Error()
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "request timed out"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func respondJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
