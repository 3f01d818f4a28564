package config

import (
	"time"

	"notesgraph/internal/widget"
)

// Config is the root configuration structure
type Config struct {
	Version int            `yaml:"version" toml:"version"`
	Server  ServerConfig   `yaml:"server" toml:"server"`
	Data    DataConfig     `yaml:"data" toml:"data"`
	Canvas  CanvasConfig   `yaml:"canvas" toml:"canvas"`
	Log     LogConfig      `yaml:"log" toml:"log"`
	Widget  widget.Options `yaml:"widget" toml:"widget"`
}

// ServerConfig configures the HTTP server
type ServerConfig struct {
	Addr            string   `yaml:"addr" toml:"addr" validate:"required,hostname_port"`
	ReadTimeout     Duration `yaml:"read_timeout" toml:"read_timeout"`
	ShutdownTimeout Duration `yaml:"shutdown_timeout" toml:"shutdown_timeout"`
	CORSOrigins     []string `yaml:"cors_origins,omitempty" toml:"cors_origins,omitempty"`
}

// DataConfig names the dataset shown at startup
type DataConfig struct {
	Source string `yaml:"source,omitempty" toml:"source,omitempty"`
	// Watch reloads a file source when it changes
	Watch bool `yaml:"watch" toml:"watch"`
}

// CanvasConfig is the container size the server renders into
type CanvasConfig struct {
	Width  float64 `yaml:"width" toml:"width" validate:"gt=0"`
	Height float64 `yaml:"height" toml:"height" validate:"gt=0"`
}

// LogConfig configures zap
type LogConfig struct {
	Level       string `yaml:"level" toml:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development" toml:"development"`
}

// Duration wraps time.Duration for YAML and TOML unmarshaling
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

// MarshalYAML implements yaml.Marshaler
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, which toml uses
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Duration returns the underlying time.Duration
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}
