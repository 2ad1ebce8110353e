package config

import (
	"bytes"
	"io"
	"os"
	"text/template"

	"github.com/pkg/errors"

	"uintvar/log"
)

var DefaultConfig = Config{
	LogLevel:  log.LevelWarn.String(),
	LogFormat: FormatText,
	Codec: CodecConfig{
		MaxBytes: 0,
		Fixed32:  false,
	},
	Output: OutputConfig{
		Format:       FormatText,
		UppercaseHex: false,
	},
}

var defaultConfigTemplateText = `
# Sets the log level. Can be one of: trace, debug, info, warn, error, fatal.
log_level = "{{.LogLevel}}"
# Sets the log format. Can be one of: text, json.
log_format = "{{.LogFormat}}"

# Configures the default bound applied when encoding and decoding.
# The --max and --32 flags override these values.
[codec]
  # Sets the maximum number of bytes a single value may occupy.
  # 0 means unbounded.
  max_bytes = {{.Codec.MaxBytes}}
  # Limits every value to 5 bytes, enough for any 32-bit integer.
  # Takes precedence over max_bytes.
  fixed32 = {{.Codec.Fixed32}}

# Configures how results are printed.
[output]
  # Can be one of: text, json.
  format = "{{.Output.Format}}"
  # Prints encoded bytes as upper-case hex.
  uppercase_hex = {{.Output.UppercaseHex}}
`

var defaultConfigTemplate *template.Template

func GenerateDefaultConfigFile() []byte {
	buf := new(bytes.Buffer)
	if err := defaultConfigTemplate.Execute(buf, DefaultConfig); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// LoadConfig reads the config file in homeDir, falling back to DefaultConfig
// when the file does not exist.
func LoadConfig(homeDir string) (*Config, error) {
	_, err := os.Stat(ExpandConfigPath(homeDir))
	if os.IsNotExist(err) {
		cfg := DefaultConfig
		return &cfg, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "error checking config file")
	}
	return ReadConfigFile(homeDir)
}

func ReadConfigFile(homeDir string) (*Config, error) {
	f, err := os.OpenFile(ExpandConfigPath(homeDir), os.O_RDONLY, 0600)
	if err != nil {
		return nil, errors.Wrap(err, "error opening config file for reading")
	}
	defer f.Close()
	cfg, err := ReadConfig(f)
	if err != nil {
		return nil, errors.Wrap(err, "error reading config file")
	}
	return cfg, nil
}

func WriteDefaultConfigFile(homeDir string) error {
	f, err := os.OpenFile(ExpandConfigPath(homeDir), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return errors.Wrap(err, "error opening config file for writing")
	}
	defer f.Close()
	rd := bytes.NewReader(GenerateDefaultConfigFile())
	if _, err := io.Copy(f, rd); err != nil {
		return errors.Wrap(err, "error writing config file")
	}
	return nil
}

func init() {
	tmpl := template.New("defaultConfig")
	t, err := tmpl.Parse(defaultConfigTemplateText)
	if err != nil {
		panic(err)
	}
	defaultConfigTemplate = t
}
