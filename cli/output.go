package cli

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"

	"uintvar/config"
)

// Row is one line of command output.
type Row interface {
	Header() []string
	Columns() []string
}

// Print writes rows to w as a table or as JSON lines.
func Print(w io.Writer, format string, rows []Row) error {
	switch format {
	case config.FormatJSON:
		encoder := json.NewEncoder(w)
		for _, row := range rows {
			if err := encoder.Encode(row); err != nil {
				return errors.Wrap(err, "error writing output")
			}
		}
		return nil
	case config.FormatText:
		if len(rows) == 0 {
			return nil
		}
		table := tablewriter.NewWriter(w)
		table.SetHeader(rows[0].Header())
		for _, row := range rows {
			table.Append(row.Columns())
		}
		table.Render()
		return nil
	default:
		return errors.Errorf("invalid output format %q", format)
	}
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
