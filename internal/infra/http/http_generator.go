package http

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"imagegen-dispatch/internal/domain"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// errServer marks a 5xx answer, which is worth retrying.
var errServer = errors.New("inference server error")

// Options configures an HTTPGenerator.
type Options struct {
	Endpoint   string
	Timeout    time.Duration
	MaxRetries int
	Backoff    time.Duration
}

// HTTPGenerator implements domain.Generator by posting requests to a remote
// inference service. The service speaks the same JSON shape as this
// server's POST /v1/generate.
type HTTPGenerator struct {
	opts   Options
	client *http.Client
	logger *slog.Logger
	tracer trace.Tracer
}

func NewHTTPGenerator(opts Options, logger *slog.Logger) *HTTPGenerator {
	return &HTTPGenerator{
		opts: opts,
		client: &http.Client{
			Timeout: opts.Timeout,
		},
		logger: logger.With("component", "http-generator"),
		tracer: otel.Tracer("imagegen-inference"),
	}
}

type remoteRequest struct {
	Prompt            string  `json:"prompt"`
	NegativePrompt    string  `json:"negative_prompt,omitempty"`
	NumInferenceSteps int     `json:"num_inference_steps"`
	GuidanceScale     float64 `json:"guidance_scale"`
	Width             int     `json:"width"`
	Height            int     `json:"height"`
	Seed              *int64  `json:"seed,omitempty"`
}

type remoteResponse struct {
	ImagesBase64 []string `json:"images_base64"`
	Metadata     *struct {
		GenerationTimeSeconds float64 `json:"generation_time_seconds"`
		ModelUsed             string  `json:"model_used"`
		Seed                  int64   `json:"seed"`
		ActualSteps           int     `json:"actual_steps"`
	} `json:"metadata"`
	Error string `json:"error"`
}

// Generate calls the remote service, retrying timeouts and 5xx answers.
func (g *HTTPGenerator) Generate(ctx context.Context, params domain.GenerationParams) (*domain.GenerationResult, error) {
	ctx, span := g.tracer.Start(ctx, "inference.http.Generate",
		trace.WithAttributes(attribute.String("inference.endpoint", g.opts.Endpoint)))
	defer span.End()

	body, err := json.Marshal(remoteRequest{
		Prompt:            params.Prompt,
		NegativePrompt:    params.NegativePrompt,
		NumInferenceSteps: params.Steps,
		GuidanceScale:     params.GuidanceScale,
		Width:             params.Width,
		Height:            params.Height,
		Seed:              params.Seed,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode inference request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= g.opts.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(g.opts.Backoff):
			}
		}

		res, err := g.doGenerate(ctx, body)
		if err == nil {
			span.SetAttributes(attribute.Int("inference.attempts", attempt+1))
			return res, nil
		}
		lastErr = err

		if !retriable(err) {
			span.RecordError(err)
			span.SetStatus(codes.Error, "inference request failed")
			return nil, err
		}
		g.logger.Warn("inference attempt failed, will retry", "attempt", attempt+1, "error", err)
	}

	span.RecordError(lastErr)
	span.SetStatus(codes.Error, "inference retries exhausted")
	return nil, fmt.Errorf("inference failed after %d retries: %w", g.opts.MaxRetries, lastErr)
}

func retriable(err error) bool {
	var netErr net.Error
	return errors.Is(err, errServer) || (errors.As(err, &netErr) && netErr.Timeout())
}

// doGenerate performs a single request.
func (g *HTTPGenerator) doGenerate(ctx context.Context, body []byte) (*domain.GenerationResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.opts.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	start := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("%w: %s: %s", errServer, resp.Status, bytes.TrimSpace(snippet))
	}

	var out remoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode inference response (%s): %w", resp.Status, err)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("inference request rejected: %s: %s", resp.Status, out.Error)
	}
	if len(out.ImagesBase64) == 0 {
		return nil, errors.New("inference response has no images")
	}

	res := &domain.GenerationResult{ElapsedSeconds: time.Since(start).Seconds()}
	for i, enc := range out.ImagesBase64 {
		img, err := base64.StdEncoding.DecodeString(enc)
		if err != nil {
			return nil, fmt.Errorf("image %d is not valid base64: %w", i, err)
		}
		res.Images = append(res.Images, img)
	}
	if md := out.Metadata; md != nil {
		res.ElapsedSeconds = md.GenerationTimeSeconds
		res.ModelUsed = md.ModelUsed
		res.SeedUsed = md.Seed
		res.StepsUsed = md.ActualSteps
	}
	return res, nil
}
