package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lgbarn/mailbox-go/internal/chess"
	"github.com/lgbarn/mailbox-go/internal/testutil"
)

func runCapture(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRunDefaultPrintsStartingPosition(t *testing.T) {
	code, out, _ := runCapture(t)
	testutil.AssertEqual(t, code, 0)
	testutil.AssertContains(t, out, "8 r n b q k b n r")
	testutil.AssertContains(t, out, "1 R N B Q K B N R")
}

func TestRunVersion(t *testing.T) {
	code, out, _ := runCapture(t, "-version")
	testutil.AssertEqual(t, code, 0)
	testutil.AssertContains(t, out, "mailbox version "+programVersion)
}

func TestRunHelp(t *testing.T) {
	code, out, _ := runCapture(t, "-h")
	testutil.AssertEqual(t, code, 0)
	testutil.AssertContains(t, out, "Usage: mailbox")
	testutil.AssertContains(t, out, "-tables")
}

func TestRunUnknownFlag(t *testing.T) {
	code, _, _ := runCapture(t, "-nosuchflag")
	testutil.AssertEqual(t, code, 2)
}

func TestRunTables(t *testing.T) {
	code, out, _ := runCapture(t, "-tables", "-deltas")
	testutil.AssertEqual(t, code, 0)

	lines := strings.Split(out, "\n")
	// Third line of the grid is rank 8: sentinel, a8 (56) ... h8 (63), sentinel.
	testutil.AssertEqual(t, strings.Fields(lines[2]), []string{"-1", "56", "57", "58", "59", "60", "61", "62", "63", "-1"})
	testutil.AssertEqual(t, strings.Fields(lines[9]), []string{"-1", "0", "1", "2", "3", "4", "5", "6", "7", "-1"})
	testutil.AssertContains(t, out, "Knight  Leaper  [21 19 -19 -21 12 8 -8 -12]")
	testutil.AssertContains(t, out, "Rook    Slider  [10 -10 1 -1]")
}

func TestRunCheck(t *testing.T) {
	code, out, errOut := runCapture(t, "-check", "-v")
	testutil.AssertEqual(t, code, 0, "stderr: %s", errOut)
	testutil.AssertContains(t, out, "all 4 checks passed")
	testutil.AssertContains(t, errOut, "Check passed")
}

func TestRunCheckCustomPlacement(t *testing.T) {
	code, out, _ := runCapture(t, "-check", "-fen", "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1")
	testutil.AssertEqual(t, code, 0)
	testutil.AssertContains(t, out, "2 . . . . . K . .")
}

func TestRunBadPlacement(t *testing.T) {
	code, _, errOut := runCapture(t, "-fen", "8/8/8/8/8/8/8/8")
	testutil.AssertEqual(t, code, 1)
	testutil.AssertContains(t, errOut, "Failed to load board")
	testutil.AssertContains(t, errOut, "missing king")
}

func TestSelfCheckReportsInvalidBoard(t *testing.T) {
	b := chess.NewBoard()
	results := selfCheck(b)
	testutil.AssertEqual(t, len(results), 4)
	for _, r := range results {
		if r.name == "board" {
			testutil.AssertError(t, r.err)
		} else {
			testutil.AssertNoError(t, r.err, r.name)
		}
	}
}
