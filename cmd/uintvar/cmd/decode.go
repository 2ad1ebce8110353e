package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"uintvar/cli"
)

const (
	SingleFlag = "single"
)

var (
	single bool
)

var decodeCmd = &cobra.Command{
	Use:   "decode <hex>",
	Short: "Decodes hex-encoded uintvars.",
	Long: `Decodes every uintvar in the hex input. With --single only the first
value is decoded and the remaining bytes are printed alongside it. When no
input is given it is read from stdin.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := cli.LoadSettings(cmd)
		if err != nil {
			return err
		}
		input, err := readArgs(args)
		if err != nil {
			return err
		}
		rows, err := settings.Decode(strings.Join(input, ""), single)
		if err != nil {
			return err
		}
		return cli.Print(os.Stdout, settings.Format, rows)
	},
}

func init() {
	decodeCmd.Flags().BoolVar(&single, SingleFlag, false, "Decode only the first value and print the rest")
	rootCmd.AddCommand(decodeCmd)
}
