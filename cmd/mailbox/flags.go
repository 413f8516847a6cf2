// flags.go - Command-line flags of the mailbox tool
package main

import (
	"flag"
	"io"
)

// options holds the parsed command line.
type options struct {
	showTables bool
	showDeltas bool
	placement  string
	check      bool
	verbose    bool
	version    bool
	help       bool
}

// newFlagSet binds every flag to opts.
func newFlagSet(opts *options, output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("mailbox", flag.ContinueOnError)
	fs.SetOutput(output)

	// Tables
	fs.BoolVar(&opts.showTables, "tables", false, "Print the 10x12 padded-to-compact table")
	fs.BoolVar(&opts.showDeltas, "deltas", false, "Print the movement delta table")

	// Board
	fs.StringVar(&opts.placement, "fen", "", "FEN piece placement to load (default: starting position)")
	fs.BoolVar(&opts.check, "check", false, "Verify the mapping tables and the loaded board")

	// Other
	fs.BoolVar(&opts.verbose, "v", false, "Verbose logging")
	fs.BoolVar(&opts.version, "version", false, "Show version information")
	fs.BoolVar(&opts.help, "h", false, "Show help")

	fs.Usage = func() { usage(fs, output) }
	return fs
}
