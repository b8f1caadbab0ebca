package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir moves into an empty directory so no stray config.yaml is picked up.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":50051", cfg.Server.GRPCAddr)
	assert.Equal(t, ":8080", cfg.Server.RESTAddr)
	assert.Equal(t, 300*time.Second, cfg.Server.RequestTimeout)
	assert.Zero(t, cfg.Server.MaxConcurrentRequests)
	assert.Equal(t, 1000, cfg.Queue.MaxQueueSize)
	assert.Equal(t, 2, cfg.Queue.WorkerCount)
	assert.Equal(t, 100*time.Millisecond, cfg.Queue.PollInterval)
	assert.Equal(t, time.Hour, cfg.Queue.StatusTTL)
	assert.Equal(t, 50, cfg.Inference.DefaultSteps)
	assert.Equal(t, 7.5, cfg.Inference.DefaultGuidanceScale)
	assert.Equal(t, 1024, cfg.Inference.MaxWidth)
	assert.Equal(t, 150, cfg.Inference.ParamLimits().MaxSteps)
	assert.Equal(t, 512, cfg.Inference.ParamDefaults().Height)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "placeholder", cfg.Inference.Backend)
	assert.Equal(t, 2, cfg.Inference.MaxRetries)
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	dir := chdir(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	yaml := []byte(`
server:
  rest_addr: ":9090"
queue:
  max_queue_size: 5
  worker_count: 3
inference:
  max_steps: 80
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "config.yaml"), yaml, 0o644))
	t.Setenv("IMAGEGEN_QUEUE_WORKER_COUNT", "6")
	t.Setenv("IMAGEGEN_SERVER_REQUEST_TIMEOUT", "45s")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.RESTAddr)
	assert.Equal(t, 5, cfg.Queue.MaxQueueSize)
	assert.Equal(t, 6, cfg.Queue.WorkerCount)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 80, cfg.Inference.MaxSteps)
}

func TestLoad_ExplicitPathMustExist(t *testing.T) {
	dir := chdir(t)

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"IMAGEGEN_QUEUE_WORKER_COUNT":      "0",
		"IMAGEGEN_QUEUE_MAX_QUEUE_SIZE":    "0",
		"IMAGEGEN_INFERENCE_DEFAULT_WIDTH": "2048",
		"IMAGEGEN_LOG_LEVEL":               "verbose",
		"IMAGEGEN_QUEUE_BACKEND":           "redis",
		"IMAGEGEN_INFERENCE_DEFAULT_STEPS": "500",
		"IMAGEGEN_INFERENCE_BACKEND":       "onnx",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			chdir(t)
			t.Setenv(key, value)

			_, err := Load("")
			assert.ErrorContains(t, err, "invalid config")
		})
	}
}

func TestLoad_BackendRequirements(t *testing.T) {
	t.Run("http without endpoint", func(t *testing.T) {
		chdir(t)
		t.Setenv("IMAGEGEN_INFERENCE_BACKEND", "http")

		_, err := Load("")
		assert.ErrorContains(t, err, "Endpoint")
	})

	t.Run("http with endpoint", func(t *testing.T) {
		chdir(t)
		t.Setenv("IMAGEGEN_INFERENCE_BACKEND", "http")
		t.Setenv("IMAGEGEN_INFERENCE_ENDPOINT", "http://inference.local:7860/v1/generate")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "http://inference.local:7860/v1/generate", cfg.Inference.Endpoint)
	})

	t.Run("command without command", func(t *testing.T) {
		chdir(t)
		t.Setenv("IMAGEGEN_INFERENCE_BACKEND", "command")

		_, err := Load("")
		assert.ErrorContains(t, err, "Command")
	})
}
