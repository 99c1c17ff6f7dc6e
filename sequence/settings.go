package sequence

import (
	"sync/atomic"

	"github.com/kbukum/seqkit/config"
	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/validation"
)

// ComponentName is the logger registry name and config name of the engine.
const ComponentName = "sequence"

// Settings configures engine tracing and metrics.
type Settings struct {
	// Trace logs fusion decisions and terminal fast paths at debug level.
	Trace bool `yaml:"trace" mapstructure:"trace"`
	// Metrics counts the same events on the global OpenTelemetry meter
	// provider.
	Metrics bool          `yaml:"metrics" mapstructure:"metrics"`
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
}

// ApplyDefaults fills in logging defaults; tracing implies debug level.
func (s *Settings) ApplyDefaults() {
	if s.Trace && s.Logging.Level == "" {
		s.Logging.Level = "debug"
	}
	s.Logging.ApplyDefaults()
}

// Validate checks the settings.
func (s *Settings) Validate() error {
	if err := validation.Validate(s); err != nil {
		return err
	}
	v := validation.New()
	if s.Trace {
		v.OneOf("logging.level", s.Logging.Level, []string{"debug", "trace"})
	}
	return v.Err()
}

// LoadSettings reads Settings for name (config.yml, .env, NAME_* env vars).
func LoadSettings(name string, opts ...config.LoaderOption) (*Settings, error) {
	return config.Load[Settings](name, opts...)
}

var (
	tracing atomic.Bool
	tracer  atomic.Pointer[logger.Logger]
)

// Configure installs s. With tracing on, the engine logger is registered
// under ComponentName; with tracing off it is removed.
func Configure(s Settings) error {
	s.ApplyDefaults()
	if err := s.Validate(); err != nil {
		return err
	}
	meter := globalMeter()
	if !s.Metrics {
		meter = nil
	}
	if err := SetMeter(meter); err != nil {
		return err
	}
	if !s.Trace {
		SetTracer(nil)
		return nil
	}
	SetTracer(logger.New(&s.Logging, "seqkit").WithComponent(ComponentName))
	return nil
}

// Setup loads settings for name and configures the engine with them.
func Setup(name string, opts ...config.LoaderOption) error {
	s, err := LoadSettings(name, opts...)
	if err != nil {
		return err
	}
	return Configure(*s)
}

// SetTracer routes engine trace events to l; nil turns tracing off.
func SetTracer(l *logger.Logger) {
	if l == nil {
		tracing.Store(false)
		tracer.Store(nil)
		logger.Unregister(ComponentName)
		return
	}
	logger.Register(ComponentName, l)
	tracer.Store(l)
	tracing.Store(true)
}

func tracef(msg, op string, kvs ...any) {
	record(msg, op)
	if !tracing.Load() {
		return
	}
	if l := tracer.Load(); l != nil {
		l.Debug(msg, logger.OperationFields(op, kvs...))
	}
}
