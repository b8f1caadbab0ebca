package domain

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

const (
	minDimension     = 64
	minGuidanceScale = 1.0
	maxGuidanceScale = 20.0
)

// ParamDefaults are applied to fields a caller omitted.
type ParamDefaults struct {
	Steps         int
	GuidanceScale float64
	Width         int
	Height        int
}

// ParamLimits are the configured upper bounds for generation parameters.
type ParamLimits struct {
	MaxWidth  int
	MaxHeight int
	MaxSteps  int
}

// DefaultParamDefaults mirrors the documented request defaults.
var DefaultParamDefaults = ParamDefaults{
	Steps:         50,
	GuidanceScale: 7.5,
	Width:         512,
	Height:        512,
}

// ParamPolicy normalizes and validates generation parameters.
// It holds no mutable state and is safe for concurrent use.
type ParamPolicy struct {
	defaults ParamDefaults
	limits   ParamLimits
	validate *validator.Validate
}

// NewParamPolicy creates a policy with the given defaults and limits.
func NewParamPolicy(defaults ParamDefaults, limits ParamLimits) *ParamPolicy {
	return &ParamPolicy{
		defaults: defaults,
		limits:   limits,
		validate: validator.New(),
	}
}

// Limits returns the configured limits.
func (p *ParamPolicy) Limits() ParamLimits {
	return p.limits
}

// Normalize fills omitted fields with defaults. It does not validate.
func (p *ParamPolicy) Normalize(req GenerateRequest) GenerationParams {
	params := GenerationParams{
		Prompt:         req.Prompt,
		NegativePrompt: req.NegativePrompt,
		Steps:          p.defaults.Steps,
		GuidanceScale:  p.defaults.GuidanceScale,
		Width:          p.defaults.Width,
		Height:         p.defaults.Height,
	}
	if req.Steps != nil {
		params.Steps = *req.Steps
	}
	if req.GuidanceScale != nil {
		params.GuidanceScale = *req.GuidanceScale
	}
	if req.Width != nil {
		params.Width = *req.Width
	}
	if req.Height != nil {
		params.Height = *req.Height
	}
	if req.Seed != nil {
		seed := *req.Seed
		params.Seed = &seed
	}
	return params
}

// Validate checks params against the policy limits. Violations are reported
// as ErrInvalidParameters.
func (p *ParamPolicy) Validate(params GenerationParams) error {
	checks := []struct {
		value any
		tag   string
		msg   string
	}{
		{params.Prompt, "required", "prompt cannot be empty"},
		{
			params.Width,
			fmt.Sprintf("gte=%d,lte=%d", minDimension, p.limits.MaxWidth),
			fmt.Sprintf("width must be between %d and %d", minDimension, p.limits.MaxWidth),
		},
		{
			params.Height,
			fmt.Sprintf("gte=%d,lte=%d", minDimension, p.limits.MaxHeight),
			fmt.Sprintf("height must be between %d and %d", minDimension, p.limits.MaxHeight),
		},
		{
			params.Steps,
			fmt.Sprintf("gte=1,lte=%d", p.limits.MaxSteps),
			fmt.Sprintf("steps must be between 1 and %d", p.limits.MaxSteps),
		},
		{
			params.GuidanceScale,
			fmt.Sprintf("gte=%g,lte=%g", minGuidanceScale, maxGuidanceScale),
			fmt.Sprintf("guidance scale must be between %.1f and %.1f", minGuidanceScale, maxGuidanceScale),
		},
	}

	for _, c := range checks {
		if err := p.validate.Var(c.value, c.tag); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidParameters, c.msg)
		}
	}
	return nil
}
