package inference

import (
	"bytes"
	"context"
	"image/png"
	"io"
	"log/slog"
	"testing"

	"imagegen-dispatch/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator() *PlaceholderGenerator {
	return NewPlaceholderGenerator("stable-diffusion-v1-5", slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestPlaceholderGenerator_RendersRequestedSize(t *testing.T) {
	g := newTestGenerator()
	seed := int64(1234)

	res, err := g.Generate(context.Background(), domain.GenerationParams{
		Prompt: "a castle", Steps: 20, GuidanceScale: 7.5, Width: 96, Height: 64, Seed: &seed,
	})
	require.NoError(t, err)
	require.Len(t, res.Images, 1)

	img, err := png.Decode(bytes.NewReader(res.Images[0]))
	require.NoError(t, err)
	assert.Equal(t, 96, img.Bounds().Dx())
	assert.Equal(t, 64, img.Bounds().Dy())
	assert.Equal(t, int64(1234), res.SeedUsed)
	assert.Equal(t, 20, res.StepsUsed)
	assert.Equal(t, "stable-diffusion-v1-5", res.ModelUsed)
}

func TestPlaceholderGenerator_DeterministicForSeed(t *testing.T) {
	g := newTestGenerator()
	seed := int64(7)
	params := domain.GenerationParams{Prompt: "fox", Steps: 1, GuidanceScale: 1, Width: 64, Height: 64, Seed: &seed}

	a, err := g.Generate(context.Background(), params)
	require.NoError(t, err)
	b, err := g.Generate(context.Background(), params)
	require.NoError(t, err)

	assert.Equal(t, a.Images[0], b.Images[0])
}

func TestPlaceholderGenerator_UsesClockSeedWhenUnset(t *testing.T) {
	g := newTestGenerator()
	params := domain.GenerationParams{Prompt: "fox", Steps: 1, GuidanceScale: 1, Width: 64, Height: 64}

	res, err := g.Generate(context.Background(), params)
	require.NoError(t, err)
	assert.Positive(t, res.SeedUsed)
}

func TestPlaceholderGenerator_HonorsCancellation(t *testing.T) {
	g := newTestGenerator()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Generate(ctx, domain.GenerationParams{Prompt: "x", Steps: 1, GuidanceScale: 1, Width: 64, Height: 64})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPlaceholderGenerator_RejectsEmptyImage(t *testing.T) {
	g := newTestGenerator()

	_, err := g.Generate(context.Background(), domain.GenerationParams{Prompt: "x", Width: 0, Height: 64})
	assert.Error(t, err)
}
