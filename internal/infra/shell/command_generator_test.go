package shell

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"imagegen-dispatch/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quietLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func params(seed *int64) domain.GenerationParams {
	return domain.GenerationParams{
		Prompt:        "a red fox",
		Steps:         25,
		GuidanceScale: 7.5,
		Width:         64,
		Height:        64,
		Seed:          seed,
	}
}

func TestCommandGenerator_ReadsPNGFromStdout(t *testing.T) {
	// Echo the PNG magic, then the stdin JSON, so the test can see both.
	gen := NewCommandGenerator(`printf '\211PNG\r\n\032\n'; cat`, "cmd-model", time.Second, quietLogger)

	seed := int64(42)
	res, err := gen.Generate(context.Background(), params(&seed))
	require.NoError(t, err)

	require.Len(t, res.Images, 1)
	assert.True(t, bytes.HasPrefix(res.Images[0], pngMagic))
	assert.Contains(t, string(res.Images[0]), `"prompt":"a red fox"`)
	assert.Contains(t, string(res.Images[0]), `"seed":42`)
	assert.Equal(t, int64(42), res.SeedUsed)
	assert.Equal(t, 25, res.StepsUsed)
	assert.Equal(t, "cmd-model", res.ModelUsed)
}

func TestCommandGenerator_PicksSeedWhenMissing(t *testing.T) {
	g := NewCommandGenerator(`printf '\211PNG\r\n\032\n'`, "cmd-model", time.Second, quietLogger).(*commandGenerator)
	g.now = func() time.Time { return time.Unix(1700000000, 0) }

	res, err := g.Generate(context.Background(), params(nil))
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000), res.SeedUsed)
}

func TestCommandGenerator_Failures(t *testing.T) {
	tests := []struct {
		name    string
		command string
		timeout time.Duration
		wantErr string
	}{
		{name: "non-zero exit", command: "echo boom >&2; exit 3", timeout: time.Second, wantErr: "boom"},
		{name: "not a png", command: "echo hello", timeout: time.Second, wantErr: "did not write a PNG"},
		{name: "timeout", command: "sleep 5", timeout: 50 * time.Millisecond, wantErr: "aborted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := NewCommandGenerator(tt.command, "cmd-model", tt.timeout, quietLogger)
			_, err := gen.Generate(context.Background(), params(nil))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
