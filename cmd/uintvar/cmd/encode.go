package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"uintvar/cli"
)

var encodeCmd = &cobra.Command{
	Use:   "encode <values...>",
	Short: "Encodes integers as uintvars.",
	Long: `Encodes each value as a uintvar and prints the encoded bytes in hex.
Values may be decimal or prefixed with 0x, 0o or 0b. When no values are given
they are read from stdin.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := cli.LoadSettings(cmd)
		if err != nil {
			return err
		}
		values, err := readArgs(args)
		if err != nil {
			return err
		}
		rows, err := settings.Encode(values)
		if err != nil {
			return err
		}
		return cli.Print(os.Stdout, settings.Format, rows)
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
}
