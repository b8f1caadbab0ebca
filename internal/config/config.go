// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"imagegen-dispatch/internal/domain"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. IMAGEGEN_QUEUE_WORKER_COUNT.
const EnvPrefix = "IMAGEGEN"

// Config holds all configuration for the server.
// The mapstructure tags are used by Viper to unmarshal the data.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Inference InferenceConfig `mapstructure:"inference"`
	Queue     QueueConfig     `mapstructure:"queue"`
	Log       LogConfig       `mapstructure:"log"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
}

type ServerConfig struct {
	GRPCAddr string `mapstructure:"grpc_addr" validate:"required"`
	RESTAddr string `mapstructure:"rest_addr" validate:"required"`
	// MaxConcurrentRequests caps callers waiting on a result; 0 is unlimited.
	MaxConcurrentRequests int `mapstructure:"max_concurrent_requests" validate:"gte=0"`
	// RequestTimeout is enforced by the REST transport only.
	RequestTimeout  time.Duration `mapstructure:"request_timeout" validate:"gte=0"`
	RateLimit       float64       `mapstructure:"rate_limit" validate:"gte=0"`
	RateBurst       int           `mapstructure:"rate_burst" validate:"gte=0"`
	MaxMessageBytes int           `mapstructure:"max_message_bytes" validate:"gte=0"`
}

type InferenceConfig struct {
	ModelName            string  `mapstructure:"model_name" validate:"required"`
	Device               string  `mapstructure:"device"`
	DefaultSteps         int     `mapstructure:"default_steps" validate:"gte=1,ltefield=MaxSteps"`
	DefaultGuidanceScale float64 `mapstructure:"default_guidance_scale" validate:"gte=1,lte=20"`
	DefaultWidth         int     `mapstructure:"default_width" validate:"gte=64,ltefield=MaxWidth"`
	DefaultHeight        int     `mapstructure:"default_height" validate:"gte=64,ltefield=MaxHeight"`
	MaxWidth             int     `mapstructure:"max_width" validate:"gte=64"`
	MaxHeight            int     `mapstructure:"max_height" validate:"gte=64"`
	MaxSteps             int     `mapstructure:"max_steps" validate:"gte=1"`

	// Backend selects the Generator: the built-in placeholder renderer, a
	// remote HTTP inference service or an external command.
	Backend        string        `mapstructure:"backend" validate:"oneof=placeholder http command"`
	Endpoint       string        `mapstructure:"endpoint" validate:"required_if=Backend http"`
	HTTPTimeout    time.Duration `mapstructure:"http_timeout" validate:"gte=0"`
	MaxRetries     int           `mapstructure:"max_retries" validate:"gte=0"`
	RetryBackoff   time.Duration `mapstructure:"retry_backoff" validate:"gte=0"`
	Command        string        `mapstructure:"command" validate:"required_if=Backend command"`
	CommandTimeout time.Duration `mapstructure:"command_timeout" validate:"gte=0"`
}

type QueueConfig struct {
	Backend      string        `mapstructure:"backend" validate:"oneof=memory"`
	MaxQueueSize int           `mapstructure:"max_queue_size" validate:"gte=1"`
	WorkerCount  int           `mapstructure:"worker_count" validate:"gte=1"`
	PollInterval time.Duration `mapstructure:"poll_interval" validate:"gt=0"`
	// Retention of terminal job statuses. Zero disables each bound.
	StatusTTL        time.Duration `mapstructure:"status_ttl" validate:"gte=0"`
	MaxStatusEntries int           `mapstructure:"max_status_entries" validate:"gte=0"`
	SweepInterval    time.Duration `mapstructure:"sweep_interval" validate:"gte=0"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json text"`
}

type TracingConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	ServiceName string `mapstructure:"service_name" validate:"required_if=Enabled true"`
}

// ParamDefaults returns the request defaults for the parameter policy.
func (c InferenceConfig) ParamDefaults() domain.ParamDefaults {
	return domain.ParamDefaults{
		Steps:         c.DefaultSteps,
		GuidanceScale: c.DefaultGuidanceScale,
		Width:         c.DefaultWidth,
		Height:        c.DefaultHeight,
	}
}

// ParamLimits returns the upper bounds for the parameter policy.
func (c InferenceConfig) ParamLimits() domain.ParamLimits {
	return domain.ParamLimits{
		MaxWidth:  c.MaxWidth,
		MaxHeight: c.MaxHeight,
		MaxSteps:  c.MaxSteps,
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.grpc_addr", ":50051")
	v.SetDefault("server.rest_addr", ":8080")
	v.SetDefault("server.max_concurrent_requests", 0)
	v.SetDefault("server.request_timeout", "300s")
	v.SetDefault("server.rate_limit", 0)
	v.SetDefault("server.rate_burst", 0)
	v.SetDefault("server.max_message_bytes", 64<<20)

	v.SetDefault("inference.model_name", "stable-diffusion-v1-5")
	v.SetDefault("inference.device", "cpu")
	v.SetDefault("inference.default_steps", domain.DefaultParamDefaults.Steps)
	v.SetDefault("inference.default_guidance_scale", domain.DefaultParamDefaults.GuidanceScale)
	v.SetDefault("inference.default_width", domain.DefaultParamDefaults.Width)
	v.SetDefault("inference.default_height", domain.DefaultParamDefaults.Height)
	v.SetDefault("inference.max_width", 1024)
	v.SetDefault("inference.max_height", 1024)
	v.SetDefault("inference.max_steps", 150)
	v.SetDefault("inference.backend", "placeholder")
	v.SetDefault("inference.endpoint", "")
	v.SetDefault("inference.http_timeout", "120s")
	v.SetDefault("inference.max_retries", 2)
	v.SetDefault("inference.retry_backoff", "1s")
	v.SetDefault("inference.command", "")
	v.SetDefault("inference.command_timeout", "120s")

	v.SetDefault("queue.backend", "memory")
	v.SetDefault("queue.max_queue_size", 1000)
	v.SetDefault("queue.worker_count", 2)
	v.SetDefault("queue.poll_interval", "100ms")
	v.SetDefault("queue.status_ttl", "1h")
	v.SetDefault("queue.max_status_entries", 10000)
	v.SetDefault("queue.sweep_interval", "1m")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.service_name", "imagegen-dispatch")
}

// Load loads configuration from defaults, an optional config file and
// environment variables, in increasing precedence. An empty path searches
// for config.yaml in ./configs and the working directory; a non-empty path
// must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// No config file; defaults and env vars are enough.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
