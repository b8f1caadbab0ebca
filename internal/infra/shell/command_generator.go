// internal/infra/shell/command_generator.go
package shell

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"imagegen-dispatch/internal/domain"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

// commandGenerator implements domain.Generator by running an external
// command. The defaulted parameters are written to the command's stdin as a
// JSON object and a single PNG is expected on stdout.
type commandGenerator struct {
	command   string
	modelName string
	timeout   time.Duration
	logger    *slog.Logger
	tracer    trace.Tracer
	now       func() time.Time
}

// NewCommandGenerator creates a generator that runs command through sh -c.
// A zero timeout leaves the command bounded only by the caller's context.
func NewCommandGenerator(command, modelName string, timeout time.Duration, logger *slog.Logger) domain.Generator {
	return &commandGenerator{
		command:   command,
		modelName: modelName,
		timeout:   timeout,
		logger:    logger.With("generator_type", "command"),
		tracer:    otel.Tracer("imagegen-command-generator"),
		now:       time.Now,
	}
}

type commandInput struct {
	Prompt            string  `json:"prompt"`
	NegativePrompt    string  `json:"negative_prompt"`
	NumInferenceSteps int     `json:"num_inference_steps"`
	GuidanceScale     float64 `json:"guidance_scale"`
	Width             int     `json:"width"`
	Height            int     `json:"height"`
	Seed              int64   `json:"seed"`
}

func (g *commandGenerator) Generate(ctx context.Context, params domain.GenerationParams) (*domain.GenerationResult, error) {
	ctx, span := g.tracer.Start(ctx, "generator.command.Generate",
		trace.WithAttributes(attribute.String("generator.command", g.command)))
	defer span.End()

	seed := g.now().Unix()
	if params.Seed != nil {
		seed = *params.Seed
	}
	input, err := json.Marshal(commandInput{
		Prompt:            params.Prompt,
		NegativePrompt:    params.NegativePrompt,
		NumInferenceSteps: params.Steps,
		GuidanceScale:     params.GuidanceScale,
		Width:             params.Width,
		Height:            params.Height,
		Seed:              seed,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode command input: %w", err)
	}

	execCtx := ctx
	if g.timeout > 0 {
		var cancel context.CancelFunc
		execCtx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(execCtx, "sh", "-c", g.command)
	cmd.Stdin = bytes.NewReader(input)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = 100 * time.Millisecond

	start := time.Now()
	err = cmd.Run()
	elapsed := time.Since(start)

	errOutput := strings.TrimSpace(stderr.String())
	if errOutput != "" {
		span.SetAttributes(attribute.String("command.stderr", errOutput))
	}

	if err != nil {
		span.SetStatus(codes.Error, "generator command failed")
		span.RecordError(err)
		if ctxErr := execCtx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("generator command aborted: %w", ctxErr)
		}
		if errOutput != "" {
			return nil, fmt.Errorf("generator command failed: %w: %s", err, errOutput)
		}
		return nil, fmt.Errorf("generator command failed: %w", err)
	}

	img := stdout.Bytes()
	if !bytes.HasPrefix(img, pngMagic) {
		err := errors.New("generator command did not write a PNG to stdout")
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	g.logger.Debug("generator command finished", "bytes", len(img), "elapsed", elapsed)
	return &domain.GenerationResult{
		Images:         [][]byte{img},
		ElapsedSeconds: elapsed.Seconds(),
		SeedUsed:       seed,
		StepsUsed:      params.Steps,
		ModelUsed:      g.modelName,
	}, nil
}
