package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"uintvar/cli"
)

var sizeCmd = &cobra.Command{
	Use:   "size <values...>",
	Short: "Prints the encoded length of integers.",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := cli.LoadSettings(cmd)
		if err != nil {
			return err
		}
		values, err := readArgs(args)
		if err != nil {
			return err
		}
		rows, err := settings.Size(values)
		if err != nil {
			return err
		}
		return cli.Print(os.Stdout, settings.Format, rows)
	},
}

func init() {
	rootCmd.AddCommand(sizeCmd)
}
