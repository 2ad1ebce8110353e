package config

import (
	"io"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"

	"uintvar/uintvar"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

type Config struct {
	LogLevel  string       `mapstructure:"log_level"`
	LogFormat string       `mapstructure:"log_format"`
	Codec     CodecConfig  `mapstructure:"codec"`
	Output    OutputConfig `mapstructure:"output"`
}

type CodecConfig struct {
	MaxBytes int  `mapstructure:"max_bytes"`
	Fixed32  bool `mapstructure:"fixed32"`
}

type OutputConfig struct {
	Format       string `mapstructure:"format"`
	UppercaseHex bool   `mapstructure:"uppercase_hex"`
}

func ReadConfig(r io.Reader) (*Config, error) {
	decoder := toml.NewDecoder(r)
	decoder.SetTagName("mapstructure")
	config := &Config{}
	if err := decoder.Decode(config); err != nil {
		return nil, errors.Wrap(err, "error decoding config file")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) Validate() error {
	if c.Codec.MaxBytes < 0 {
		return errors.Errorf("codec.max_bytes must not be negative, got %d", c.Codec.MaxBytes)
	}
	switch c.Output.Format {
	case FormatText, FormatJSON:
	default:
		return errors.Errorf("invalid output format %q", c.Output.Format)
	}
	switch c.LogFormat {
	case FormatText, FormatJSON:
	default:
		return errors.Errorf("invalid log format %q", c.LogFormat)
	}
	return nil
}

// Bound returns the codec bound described by the config. fixed32 takes
// precedence over max_bytes, and a max_bytes of 0 means unbounded.
func (c *Config) Bound() uintvar.Bound {
	if c.Codec.Fixed32 {
		return uintvar.MaxBytes(uintvar.MaxLen32)
	}
	if c.Codec.MaxBytes == 0 {
		return uintvar.Unbounded
	}
	return uintvar.MaxBytes(c.Codec.MaxBytes)
}
