package domain

import "context"

// GenerateRequest is the protocol-neutral form of a generation request.
// Nil numeric fields were omitted by the caller and get defaults.
type GenerateRequest struct {
	Prompt         string
	NegativePrompt string
	Steps          *int
	GuidanceScale  *float64
	Width          *int
	Height         *int
	Seed           *int64
}

// GenerationParams are the fully defaulted parameters handed to a Generator.
type GenerationParams struct {
	Prompt         string
	NegativePrompt string
	Steps          int
	GuidanceScale  float64
	Width          int
	Height         int
	Seed           *int64
}

// GenerationResult is what a Generator produces for one job.
type GenerationResult struct {
	Images         [][]byte // PNG encoded
	ElapsedSeconds float64
	SeedUsed       int64
	StepsUsed      int
	ModelUsed      string
}

//go:generate mockgen -destination=mocks/mock_generator.go -package=mocks imagegen-dispatch/internal/domain Generator

// Generator performs the actual image synthesis. Implementations must be safe
// for concurrent use; every worker calls Generate independently.
type Generator interface {
	Generate(ctx context.Context, params GenerationParams) (*GenerationResult, error)
}
