package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPolicy() *ParamPolicy {
	return NewParamPolicy(DefaultParamDefaults, ParamLimits{MaxWidth: 1024, MaxHeight: 1024, MaxSteps: 150})
}

func intPtr(v int) *int { return &v }

func TestParamPolicy_NormalizeAppliesDefaults(t *testing.T) {
	p := testPolicy()

	params := p.Normalize(GenerateRequest{Prompt: "a lighthouse"})

	assert.Equal(t, "a lighthouse", params.Prompt)
	assert.Equal(t, 50, params.Steps)
	assert.Equal(t, 7.5, params.GuidanceScale)
	assert.Equal(t, 512, params.Width)
	assert.Equal(t, 512, params.Height)
	assert.Nil(t, params.Seed)
}

func TestParamPolicy_NormalizeKeepsExplicitValues(t *testing.T) {
	p := testPolicy()
	guidance := 3.0
	seed := int64(42)
	req := GenerateRequest{
		Prompt:        "fox",
		Steps:         intPtr(0),
		GuidanceScale: &guidance,
		Width:         intPtr(768),
		Height:        intPtr(640),
		Seed:          &seed,
	}

	params := p.Normalize(req)

	assert.Equal(t, 0, params.Steps, "explicit zero is not an omitted field")
	assert.Equal(t, 3.0, params.GuidanceScale)
	assert.Equal(t, 768, params.Width)
	assert.Equal(t, 640, params.Height)
	require.NotNil(t, params.Seed)
	assert.Equal(t, int64(42), *params.Seed)

	// The request must not be aliased by the normalized params.
	*params.Seed = 7
	assert.Equal(t, int64(42), seed)
}

func TestParamPolicy_Validate(t *testing.T) {
	p := testPolicy()
	valid := p.Normalize(GenerateRequest{Prompt: "ok"})

	tests := []struct {
		name    string
		mutate  func(*GenerationParams)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*GenerationParams) {}},
		{name: "empty prompt", mutate: func(g *GenerationParams) { g.Prompt = "" }, wantErr: "prompt cannot be empty"},
		{name: "width below minimum", mutate: func(g *GenerationParams) { g.Width = 32 }, wantErr: "width must be between 64 and 1024"},
		{name: "width above maximum", mutate: func(g *GenerationParams) { g.Width = 2048 }, wantErr: "width must be between 64 and 1024"},
		{name: "height below minimum", mutate: func(g *GenerationParams) { g.Height = 63 }, wantErr: "height must be between 64 and 1024"},
		{name: "zero steps", mutate: func(g *GenerationParams) { g.Steps = 0 }, wantErr: "steps must be between 1 and 150"},
		{name: "too many steps", mutate: func(g *GenerationParams) { g.Steps = 151 }, wantErr: "steps must be between 1 and 150"},
		{name: "guidance too high", mutate: func(g *GenerationParams) { g.GuidanceScale = 25.0 }, wantErr: "guidance scale must be between 1.0 and 20.0"},
		{name: "guidance too low", mutate: func(g *GenerationParams) { g.GuidanceScale = 0.5 }, wantErr: "guidance scale must be between 1.0 and 20.0"},
		{name: "bounds are inclusive", mutate: func(g *GenerationParams) {
			g.Width, g.Height, g.Steps, g.GuidanceScale = 64, 1024, 150, 20.0
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := valid
			tt.mutate(&params)

			err := p.Validate(params)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidParameters)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestJobStatus_IsTerminal(t *testing.T) {
	assert.False(t, JobStatusQueued.IsTerminal())
	assert.False(t, JobStatusProcessing.IsTerminal())
	assert.True(t, JobStatusCompleted.IsTerminal())
	assert.True(t, JobStatusFailed.IsTerminal())
	assert.True(t, JobStatusCancelled.IsTerminal())
}
