package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"uintvar/cli"
	"uintvar/config"
)

var rootCmd = &cobra.Command{
	Use:           "uintvar",
	Short:         "Encodes and decodes uintvar variable-length integers.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String(cli.FlagHome, "~/.uintvar", "Home directory for the CLI's configuration.")
	rootCmd.PersistentFlags().String(cli.FlagFormat, config.FormatText, "Output format (text or json).")
	rootCmd.PersistentFlags().String(cli.FlagLogLevel, config.DefaultConfig.LogLevel, "Log level.")
	rootCmd.PersistentFlags().String(cli.FlagMax, "", "Maximum bytes per value, or \"unbounded\". Overrides the config file.")
	rootCmd.PersistentFlags().Bool(cli.Flag32, false, "Limit values to 5 bytes, enough for any 32-bit integer.")
}
