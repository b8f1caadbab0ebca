package inference

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"time"

	"imagegen-dispatch/internal/domain"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// PlaceholderGenerator implements domain.Generator by rendering a gradient
// whose color depends on the prompt and seed. It stands in for a real
// diffusion model and is safe for concurrent use.
type PlaceholderGenerator struct {
	modelName string
	logger    *slog.Logger
	tracer    trace.Tracer
	now       func() time.Time
}

// NewPlaceholderGenerator creates a placeholder generator reporting modelName.
func NewPlaceholderGenerator(modelName string, logger *slog.Logger) *PlaceholderGenerator {
	return &PlaceholderGenerator{
		modelName: modelName,
		logger:    logger.With("component", "placeholder-generator"),
		tracer:    otel.Tracer("imagegen-inference"),
		now:       time.Now,
	}
}

// Generate renders one PNG image for params.
func (g *PlaceholderGenerator) Generate(ctx context.Context, params domain.GenerationParams) (*domain.GenerationResult, error) {
	ctx, span := g.tracer.Start(ctx, "inference.placeholder.Generate",
		trace.WithAttributes(
			attribute.Int("image.width", params.Width),
			attribute.Int("image.height", params.Height),
			attribute.Int("inference.steps", params.Steps),
		))
	defer span.End()

	start := time.Now()

	if params.Width <= 0 || params.Height <= 0 {
		err := fmt.Errorf("invalid image size %dx%d", params.Width, params.Height)
		span.SetStatus(codes.Error, "invalid image size")
		return nil, err
	}

	seed := g.now().Unix()
	if params.Seed != nil {
		seed = *params.Seed
	}

	g.logger.Info("starting generation",
		"steps", params.Steps,
		"guidance_scale", params.GuidanceScale,
		"size", fmt.Sprintf("%dx%d", params.Width, params.Height),
		"seed", seed,
	)

	img, err := renderGradient(ctx, params.Width, params.Height, promptHash(params.Prompt)^uint64(seed))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render failed")
		return nil, err
	}

	elapsed := time.Since(start).Seconds()
	g.logger.Info("generation completed", "elapsed_seconds", elapsed)

	return &domain.GenerationResult{
		Images:         [][]byte{img},
		ElapsedSeconds: elapsed,
		SeedUsed:       seed,
		StepsUsed:      params.Steps,
		ModelUsed:      g.modelName,
	}, nil
}

func renderGradient(ctx context.Context, width, height int, hash uint64) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	blue := uint8(hash % 256)

	for y := 0; y < height; y++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		g := uint8(float64(y) / float64(height) * 255)
		for x := 0; x < width; x++ {
			r := uint8(float64(x) / float64(width) * 255)
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: blue, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("png encoding failed: %w", err)
	}
	return buf.Bytes(), nil
}

func promptHash(s string) uint64 {
	var h uint64
	for i := 0; i < len(s); i++ {
		h = h*31 + uint64(s[i])
	}
	return h
}
