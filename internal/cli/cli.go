package cli

import (
	"flag"
	"fmt"
	"strings"
)

// CLIArgs are the command-line arguments that control a single run.
// Keep this small for now — add fields as modules need them.
type CLIArgs struct {
	// CSVPath is an upload-format CSV to evaluate as a batch. Empty runs
	// the built-in demo instead.
	CSVPath string

	// OutPath optionally receives the batch results as CSV.
	OutPath string

	// ChartPath optionally receives the batch MAE chart as HTML.
	ChartPath string

	// RawArgs is the original args slice (useful for debugging/tests).
	RawArgs []string
}

// ParseArgs parses a slice of args and returns CLIArgs. Use in tests by passing
// arbitrary slices. The function is deterministic and does not read os.Args.
func ParseArgs(args []string) (*CLIArgs, error) {
	fs := flag.NewFlagSet("concord-cli", flag.ContinueOnError)
	var (
		csvPath   = fs.String("csv", "", "Upload-format CSV file to evaluate (empty = built-in demo)")
		outPath   = fs.String("out", "", "Write batch results CSV to this path")
		chartPath = fs.String("chart", "", "Write batch MAE chart HTML to this path")
	)

	// Ensure Parse doesn't write to stdout/stderr in tests
	fs.SetOutput(nil)

	if err := fs.Parse(args); err != nil {
		// Flag parsing errors are useful to return to caller
		return nil, err
	}

	if strings.TrimSpace(*csvPath) == "" && (*outPath != "" || *chartPath != "") {
		return nil, fmt.Errorf("-out and -chart require -csv")
	}

	return &CLIArgs{
		CSVPath:   *csvPath,
		OutPath:   *outPath,
		ChartPath: *chartPath,
		RawArgs:   args,
	}, nil
}
