package logger

import (
	"github.com/kbukum/seqkit/validation"
)

// Config contains logging configuration.
type Config struct {
	Level     string `yaml:"level" mapstructure:"level" validate:"oneof=trace debug info warn error disabled"`
	Format    string `yaml:"format" mapstructure:"format" validate:"oneof=json console pretty"`
	Output    string `yaml:"output" mapstructure:"output" validate:"oneof=stdout stderr discard"`
	NoColor   bool   `yaml:"no_color" mapstructure:"no_color"`
	Timestamp bool   `yaml:"timestamp" mapstructure:"timestamp"`
	Caller    bool   `yaml:"caller" mapstructure:"caller"`
}

// ApplyDefaults applies default values to logging configuration.
func (c *Config) ApplyDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = FormatConsole
	}
	if c.Output == "" {
		c.Output = "stdout"
	}
}

// Validate validates logging configuration.
func (c *Config) Validate() error {
	return validation.Validate(c)
}
