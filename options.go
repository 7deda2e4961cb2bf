package fist

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/zoobzio/clockz"
	"go.uber.org/zap"
)

// validate is the shared validator instance.
var validate = validator.New()

// config holds configuration options for a Runtime.
type config struct {
	name         string
	strictReturn bool
	manualStart  bool
	errorHistory int
	clock        clockz.Clock
	logger       *zap.Logger
	metrics      MetricsProvider
	ctx          context.Context
}

func defaultConfig() *config {
	return &config{
		name:    "fist",
		clock:   clockz.RealClock,
		logger:  zap.NewNop(),
		metrics: NoOpMetricsProvider{},
		ctx:     context.Background(),
	}
}

// Option configures a Runtime.
type Option func(*config)

// StrictReturn stops plain values returned by actions from replacing the
// state. Only Enter commands change state.
func StrictReturn() Option {
	return func(c *config) {
		c.strictReturn = true
	}
}

// ManualStart suppresses the enter hook that Bind otherwise fires for the
// initial state. The first Reenter fires it instead.
func ManualStart() Option {
	return func(c *config) {
		c.manualStart = true
	}
}

// WithName sets the name reported in signals and logs.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithErrorHistory sets the number of recent raised errors to retain.
// Use 0 (default) to only retain the most recent error via LastError().
func WithErrorHistory(n int) Option {
	return func(c *config) {
		c.errorHistory = n
	}
}

// WithClock sets a custom clock for time operations.
// Use this with clockz.FakeClock for deterministic tests.
func WithClock(clock clockz.Clock) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// WithLogger sets the logger used for debug output. Default: zap.NewNop().
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithMetrics sets a metrics provider for observability integration.
func WithMetrics(provider MetricsProvider) Option {
	return func(c *config) {
		c.metrics = provider
	}
}

// WithContext sets the context passed to capitan when emitting signals from
// Bind and Dispatch. Step, Settle and Run use their own context.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		c.ctx = ctx
	}
}

// WithConfig applies a loaded Config.
func WithConfig(cfg Config) Option {
	return func(c *config) {
		if cfg.Name != "" {
			c.name = cfg.Name
		}
		c.strictReturn = cfg.StrictReturn
		c.manualStart = cfg.ManualStart
		c.errorHistory = cfg.ErrorHistory
	}
}

// Config is the serializable subset of Runtime options.
type Config struct {
	Name         string `json:"name" yaml:"name" validate:"max=128"`
	StrictReturn bool   `json:"strict_return" yaml:"strict_return"`
	ManualStart  bool   `json:"manual_start" yaml:"manual_start"`
	ErrorHistory int    `json:"error_history" yaml:"error_history" validate:"gte=0,lte=4096"`
}

// Validate checks the config's field constraints.
func (c Config) Validate() error {
	return validate.Struct(c)
}

// LoadConfig decodes and validates a Config. A nil codec is chosen with
// DetectCodec.
//
// Example:
//
//	cfg, err := fist.LoadConfig(fist.YAMLCodec{}, data)
//	if err != nil {
//	    return err
//	}
//	rt := fist.Bind(initial, effects, fist.WithConfig(cfg))
func LoadConfig(codec Codec, data []byte) (Config, error) {
	if codec == nil {
		codec = DetectCodec(data)
	}
	var cfg Config
	if err := codec.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal failed: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validation failed: %w", err)
	}
	return cfg, nil
}
