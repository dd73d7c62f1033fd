package commands

import (
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
)

const floatDigits = 4

// newTable returns a go-pretty writer in the style used by every command.
func newTable(out io.Writer) table.Writer {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(out)
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	return tbl
}

// num formats a float with at most four decimals, trailing zeros trimmed.
func num(v float64) string {
	return humanize.FtoaWithDigits(v, floatDigits)
}

// count formats an integer with thousands separators.
func count(n int) string {
	return humanize.Comma(int64(n))
}

func heading(out io.Writer, format string, args ...any) {
	color.New(color.FgCyan, color.Bold).Fprintf(out, format+"\n", args...)
}

func success(out io.Writer, format string, args ...any) {
	color.New(color.FgGreen).Fprintf(out, format+"\n", args...)
}

func highlight(v string) string {
	return color.New(color.FgRed).Sprint(v)
}

func keyValues(out io.Writer, rows [][2]string) {
	tbl := newTable(out)
	for _, r := range rows {
		tbl.AppendRow(table.Row{r[0], r[1]})
	}
	tbl.Render()
}
