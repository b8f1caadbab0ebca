package http

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"imagegen-dispatch/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator(url string, retries int) *HTTPGenerator {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHTTPGenerator(Options{
		Endpoint:   url,
		Timeout:    2 * time.Second,
		MaxRetries: retries,
		Backoff:    time.Millisecond,
	}, logger)
}

func testParams() domain.GenerationParams {
	seed := int64(7)
	return domain.GenerationParams{
		Prompt:        "a lighthouse",
		Steps:         20,
		GuidanceScale: 7.5,
		Width:         64,
		Height:        64,
		Seed:          &seed,
	}
}

func writeImage(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"images_base64": []string{base64.StdEncoding.EncodeToString([]byte("png-bytes"))},
		"metadata": map[string]any{
			"generation_time_seconds": 1.5,
			"model_used":              "remote-model",
			"seed":                    7,
			"actual_steps":            20,
		},
	})
}

func TestHTTPGenerator_Success(t *testing.T) {
	var got remoteRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeImage(w)
	}))
	defer srv.Close()

	res, err := newTestGenerator(srv.URL, 0).Generate(context.Background(), testParams())
	require.NoError(t, err)

	assert.Equal(t, "a lighthouse", got.Prompt)
	assert.Equal(t, 20, got.NumInferenceSteps)
	require.NotNil(t, got.Seed)
	assert.Equal(t, int64(7), *got.Seed)

	require.Len(t, res.Images, 1)
	assert.Equal(t, []byte("png-bytes"), res.Images[0])
	assert.Equal(t, "remote-model", res.ModelUsed)
	assert.Equal(t, int64(7), res.SeedUsed)
	assert.Equal(t, 20, res.StepsUsed)
	assert.InDelta(t, 1.5, res.ElapsedSeconds, 1e-9)
}

func TestHTTPGenerator_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "model warming up", http.StatusServiceUnavailable)
			return
		}
		writeImage(w)
	}))
	defer srv.Close()

	res, err := newTestGenerator(srv.URL, 2).Generate(context.Background(), testParams())
	require.NoError(t, err)
	assert.Len(t, res.Images, 1)
	assert.Equal(t, int32(3), calls.Load())
}

func TestHTTPGenerator_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "width too large"})
	}))
	defer srv.Close()

	_, err := newTestGenerator(srv.URL, 3).Generate(context.Background(), testParams())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "width too large")
	assert.Equal(t, int32(1), calls.Load())
}

func TestHTTPGenerator_RetriesExhausted(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestGenerator(srv.URL, 2).Generate(context.Background(), testParams())
	require.Error(t, err)
	assert.ErrorIs(t, err, errServer)
	assert.Contains(t, err.Error(), "after 2 retries")
	assert.Equal(t, int32(3), calls.Load())
}

func TestHTTPGenerator_EmptyImages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"images_base64":[]}`)
	}))
	defer srv.Close()

	_, err := newTestGenerator(srv.URL, 0).Generate(context.Background(), testParams())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no images")
}
