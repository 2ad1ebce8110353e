package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"uintvar/config"
	"uintvar/log"
	"uintvar/uintvar"
)

// Settings is the effective configuration of one CLI invocation: the config
// file in the home directory, overridden by any flags set on the command line.
type Settings struct {
	Bound        uintvar.Bound
	Format       string
	UppercaseHex bool
}

func (s *Settings) Codec() *uintvar.Codec {
	return uintvar.NewCodec(s.Bound)
}

// LoadSettings reads the config for cmd's home directory, applies flag
// overrides and configures logging.
func LoadSettings(cmd *cobra.Command) (*Settings, error) {
	cfg, err := config.LoadConfig(GetHomeDir(cmd))
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed(FlagLogLevel) {
		cfg.LogLevel, _ = flags.GetString(FlagLogLevel)
	}
	if flags.Changed(FlagFormat) {
		cfg.Output.Format, _ = flags.GetString(FlagFormat)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := configureLogging(cfg); err != nil {
		return nil, err
	}

	bound := cfg.Bound()
	if flags.Changed(FlagMax) {
		raw, _ := flags.GetString(FlagMax)
		if bound, err = uintvar.ParseBound(raw); err != nil {
			return nil, errors.Wrap(err, "invalid --max")
		}
	}
	if use32, _ := flags.GetBool(Flag32); use32 {
		bound = uintvar.MaxBytes(uintvar.MaxLen32)
	}

	log.WithModule("cli").Debug("loaded settings", "bound", bound.String(), "format", cfg.Output.Format)
	return &Settings{
		Bound:        bound,
		Format:       cfg.Output.Format,
		UppercaseHex: cfg.Output.UppercaseHex,
	}, nil
}

func configureLogging(cfg *config.Config) error {
	level, err := log.NewLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	log.SetJSON(cfg.LogFormat == config.FormatJSON)
	return nil
}
