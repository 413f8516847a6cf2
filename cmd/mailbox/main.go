// mailbox prints the board core's mapping and movement tables and checks a
// board against its invariants.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/lgbarn/mailbox-go/internal/chess"
)

const programVersion = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	var opts options
	fs := newFlagSet(&opts, stderr)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if opts.help {
		fs.SetOutput(stdout)
		usage(fs, stdout)
		return 0
	}
	if opts.version {
		fmt.Fprintf(stdout, "mailbox version %s\n", programVersion)
		return 0
	}

	logger := newLogger(stderr, opts.verbose)

	board, err := loadBoard(opts.placement)
	if err != nil {
		logger.Error().Err(err).Str("fen", opts.placement).Msg("Failed to load board")
		return 1
	}
	logger.Debug().Str("placement", board.Placement()).Uint64("hash", board.Hash()).Msg("Board loaded")

	if opts.showTables {
		writePaddedTable(stdout)
	}
	if opts.showDeltas {
		writeDeltaTable(stdout)
	}
	fmt.Fprint(stdout, board)

	if opts.check {
		results := selfCheck(board)
		failed := 0
		for _, r := range results {
			if r.err != nil {
				failed++
				logger.Error().Err(r.err).Str("check", r.name).Msg("Check failed")
				continue
			}
			logger.Debug().Str("check", r.name).Msg("Check passed")
		}
		if failed > 0 {
			fmt.Fprintf(stdout, "%d of %d checks failed\n", failed, len(results))
			return 1
		}
		fmt.Fprintf(stdout, "all %d checks passed\n", len(results))
	}
	return 0
}

// newLogger writes human-readable log lines to w.
func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(level).
		With().Timestamp().Logger()
}

// loadBoard returns the starting position, or the given placement if set.
func loadBoard(placement string) (*chess.Board, error) {
	if placement == "" {
		b := chess.NewBoard()
		b.SetupInitialPosition()
		return b, nil
	}
	return chess.ParsePlacement(placement)
}

// usage prints the help text.
func usage(fs interface{ PrintDefaults() }, w io.Writer) {
	fmt.Fprintf(w, "mailbox version %s\n\n", programVersion)
	fmt.Fprintf(w, "Usage: mailbox [options]\n\n")
	fmt.Fprintf(w, "Options:\n")
	fs.PrintDefaults()
}
