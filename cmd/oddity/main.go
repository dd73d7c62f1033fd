// Command oddity analyses univariate time series read from CSV.
//
// Usage:
//
//	oddity [global flags] <command> [flags]
//
// Examples:
//
//	oddity describe -i sales.csv --column units
//	oddity decompose -i sales.csv --period 12
//	oddity outliers -i sales.csv
//	oddity gpr -i sales.csv --noise 0.5 --kernel periodic --period 7
//	oddity detect -i sales.csv --log-level debug
//	oddity spectrum -i sales.csv --limit 16
//	oddity config --config oddity.yaml
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/cwbudde/algo-oddity/cmd/oddity/commands"
)

func main() {
	rootCmd := commands.NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
