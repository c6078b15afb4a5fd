// Package logger builds the zap loggers used by the command line tools
// and the I/O helpers.
package logger

import (
	"fmt"
	"strings"

	"github.com/blendle/zapdriver"
	"github.com/eagleviewent/go-utilities/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Supported output formats.
const (
	FormatJSON        = "json"
	FormatConsole     = "console"
	FormatStackdriver = "stackdriver"
)

// Config selects the level and the output format of a logger.
type Config struct {
	Level   string `mapstructure:"level" default:"info" validate:"omitempty,oneof=debug info warn error dpanic panic fatal"`
	Format  string `mapstructure:"format" default:"console" validate:"omitempty,oneof=console json stackdriver"`
	Service string `mapstructure:"service" default:"eveutil"`
}

// New creates a new *zap.Logger from cfg. An empty level means info
// and an empty format means console.
func New(cfg Config) (*zap.Logger, error) {
	level := zapcore.InfoLevel

	if cfg.Level != "" {
		l, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, errors.NewInvalidArgument("log level %q: %s", cfg.Level, err)
		}

		level = l
	}

	var config zap.Config

	switch strings.ToLower(cfg.Format) {
	case "", FormatConsole:
		config = zap.NewDevelopmentConfig()
		config.Encoding = FormatConsole
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.DisableStacktrace = true

	case FormatJSON:
		config = zap.NewProductionConfig()
		config.Encoding = FormatJSON
		config.EncoderConfig.LevelKey = "level"
		config.EncoderConfig.TimeKey = "time"
		config.EncoderConfig.MessageKey = "message"

	case FormatStackdriver:
		config = zapdriver.NewProductionConfig()

		return newLoggerFromConfig(config, cfg.Service, level)

	default:
		return nil, errors.NewInvalidArgument("log format %q", cfg.Format)
	}

	config.Level = zap.NewAtomicLevelAt(level)
	config.OutputPaths = []string{"stderr"}

	log, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("config build: %w", err)
	}

	return log, nil
}

// NewStackdriverDevelopment returns a new *zap.Logger that supports
// Google Stackdriver's structured logging.
// Logging is enabled at DebugLevel and above.
func NewStackdriverDevelopment(service string) (*zap.Logger, error) {
	return newLoggerFromConfig(zapdriver.NewDevelopmentConfig(), service, zapcore.DebugLevel)
}

// NewStackdriverProduction returns a new *zap.Logger that supports
// Google Stackdriver's structured logging.
// Logging is enabled at InfoLevel and above.
func NewStackdriverProduction(service string) (*zap.Logger, error) {
	return newLoggerFromConfig(zapdriver.NewProductionConfig(), service, zapcore.InfoLevel)
}

func newLoggerFromConfig(cfg zap.Config, service string, level zapcore.Level) (*zap.Logger, error) {
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stdout"}
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.InitialFields = map[string]interface{}{
		"service": service,
	}

	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("config build: %w", err)
	}

	return log, nil
}

// WithCallingContext returns log annotated with the component and the
// operation it is logging for.
func WithCallingContext(log *zap.Logger, component, operation string) *zap.Logger {
	return log.With(
		zap.String("class_name", component),
		zap.String("method_name", operation),
	)
}
