package observe

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ib-77/fallible/pkg/fallible"
)

const (
	FieldFailureID = "failure_id"
	FieldErrorType = "error_type"
)

var (
	validate *validator.Validate
	once     sync.Once
)

func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// LogConfig configures Log.
type LogConfig struct {
	Level   string `yaml:"level" mapstructure:"level" validate:"required,oneof=trace debug info warn error fatal panic"`
	Message string `yaml:"message" mapstructure:"message" validate:"required,max=256"`
	// Component is added as a field when set
	Component string `yaml:"component" mapstructure:"component" validate:"omitempty,max=64"`
}

// ApplyDefaults applies default values to the log configuration.
func (c *LogConfig) ApplyDefaults() {
	if c.Level == "" {
		c.Level = "warn"
	}
	if c.Message == "" {
		c.Message = "failure replaced"
	}
}

// Validate validates the log configuration.
func (c *LogConfig) Validate() error {
	if err := getValidator().Struct(c); err != nil {
		return fmt.Errorf("observe: invalid log config: %w", err)
	}
	return nil
}

// Log returns an Observer writing one event per failure to logger.
func Log(logger zerolog.Logger, cfg LogConfig) (fallible.Observer, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("observe.level: %w", err)
	}

	if cfg.Component != "" {
		logger = logger.With().Str("component", cfg.Component).Logger()
	}

	return func(err error) {
		logger.WithLevel(level).
			Str(FieldFailureID, uuid.NewString()).
			Str(FieldErrorType, fmt.Sprintf("%T", err)).
			Err(err).
			Msg(cfg.Message)
	}, nil
}
