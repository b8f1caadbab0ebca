package http

import (
	"encoding/base64"

	"imagegen-dispatch/internal/domain"
)

// GenerateRequest is the JSON body of the generate routes. Omitted numeric
// fields take server defaults; an explicit 0 is passed on and rejected by
// parameter validation.
type GenerateRequest struct {
	Prompt            string   `json:"prompt" validate:"required"`
	NegativePrompt    string   `json:"negative_prompt,omitempty"`
	NumInferenceSteps *int     `json:"num_inference_steps,omitempty"`
	GuidanceScale     *float64 `json:"guidance_scale,omitempty"`
	Width             *int     `json:"width,omitempty"`
	Height            *int     `json:"height,omitempty"`
	Seed              *int64   `json:"seed,omitempty" validate:"omitnil,gte=0"`
}

// ToDomainRequest converts the DTO to the protocol-neutral request.
func (r *GenerateRequest) ToDomainRequest() domain.GenerateRequest {
	return domain.GenerateRequest{
		Prompt:         r.Prompt,
		NegativePrompt: r.NegativePrompt,
		Steps:          r.NumInferenceSteps,
		GuidanceScale:  r.GuidanceScale,
		Width:          r.Width,
		Height:         r.Height,
		Seed:           r.Seed,
	}
}

type ResponseMetadata struct {
	GenerationTimeSeconds float64 `json:"generation_time_seconds"`
	ModelUsed             string  `json:"model_used"`
	Seed                  int64   `json:"seed"`
	ActualSteps           int     `json:"actual_steps"`
}

// GenerateResponse is returned by POST /v1/generate, on success and on error.
type GenerateResponse struct {
	JobID        string            `json:"job_id,omitempty"`
	Status       string            `json:"status"`
	ImagesBase64 []string          `json:"images_base64,omitempty"`
	Metadata     *ResponseMetadata `json:"metadata,omitempty"`
	Error        string            `json:"error,omitempty"`
	Details      []string          `json:"details,omitempty"`
}

func newGenerateResponse(jobID string, res *domain.GenerationResult) GenerateResponse {
	images := make([]string, 0, len(res.Images))
	for _, img := range res.Images {
		images = append(images, base64.StdEncoding.EncodeToString(img))
	}
	return GenerateResponse{
		JobID:        jobID,
		Status:       "completed",
		ImagesBase64: images,
		Metadata: &ResponseMetadata{
			GenerationTimeSeconds: res.ElapsedSeconds,
			ModelUsed:             res.ModelUsed,
			Seed:                  res.SeedUsed,
			ActualSteps:           res.StepsUsed,
		},
	}
}

type JobStatusResponse struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"`
}

type HealthResponse struct {
	Status        string `json:"status"`
	ModelLoaded   bool   `json:"model_loaded"`
	ModelUsed     string `json:"model_used"`
	Version       string `json:"version"`
	Device        string `json:"device"`
	QueueLength   int    `json:"queue_length"`
	QueueCapacity int    `json:"queue_capacity"`
	WorkerCount   int    `json:"worker_count"`
}

type ErrorResponse struct {
	JobID  string `json:"job_id,omitempty"`
	Status string `json:"status"`
	Error  string `json:"error"`
}
