package cmd

import (
	"bufio"
	"bytes"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"uintvar/cli"
)

// readArgs returns args, or the whitespace-separated fields on stdin when no
// args were given.
func readArgs(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if isatty.IsTerminal(os.Stdin.Fd()) {
		return cli.ReadFields(bytes.NewReader(readDataTTY()))
	}
	return cli.ReadFields(bufio.NewReader(os.Stdin))
}

func readDataTTY() []byte {
	fmt.Println("Enter the values you would like to process below.")
	fmt.Println("When you are finished, press Ctrl+D.")

	var buf bytes.Buffer
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		buf.WriteString(scanner.Text())
		buf.WriteByte('\n')
	}

	return buf.Bytes()
}
