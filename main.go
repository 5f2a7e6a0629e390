// Command concord evaluates agreement between AI and human QA scores.
// Without arguments it runs the built-in demo (the worked single-chat
// example plus a two-chat batch); with -csv it evaluates an upload-format
// CSV file and prints the batch report.
package main

import (
	"fmt"
	"os"

	"github.com/superanalyst/concord/internal/app"
	"github.com/superanalyst/concord/internal/cli"
	"github.com/superanalyst/concord/internal/csvio"
	"github.com/superanalyst/concord/internal/dashboard"
	"github.com/superanalyst/concord/internal/logging"
	"github.com/superanalyst/concord/internal/report"
	"github.com/superanalyst/concord/internal/sample"
)

func main() {
	args, err := cli.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	evaluator := app.NewEvaluator(app.DefaultConfig(), logging.NewStdoutLogger("CLI"))

	if args.CSVPath == "" {
		if err := runDemo(evaluator); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runCSV(evaluator, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runDemo(evaluator *app.Evaluator) error {
	fmt.Println("EXAMPLE 1: Single Chat Evaluation")
	rec, res, err := evaluator.QuickTest()
	if err != nil {
		return err
	}
	if err := report.WriteRecord(os.Stdout, rec, res); err != nil {
		return err
	}

	fmt.Println("\nEXAMPLE 2: Batch Evaluation")
	batch, err := evaluator.EvaluateBatch(sample.DemoBatch())
	if err != nil {
		return err
	}
	return report.WriteBatch(os.Stdout, batch)
}

func runCSV(evaluator *app.Evaluator, args *cli.CLIArgs) error {
	f, err := os.Open(args.CSVPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", args.CSVPath, err)
	}
	defer f.Close()

	batch, err := evaluator.EvaluateCSV(f)
	if err != nil {
		return err
	}

	if err := report.WriteBatch(os.Stdout, batch); err != nil {
		return err
	}
	if args.OutPath != "" {
		if err := writeFile(args.OutPath, func(w *os.File) error {
			return csvio.WriteResults(w, batch)
		}); err != nil {
			return err
		}
		fmt.Printf("Results written to %s\n", args.OutPath)
	}
	if args.ChartPath != "" {
		if err := writeFile(args.ChartPath, func(w *os.File) error {
			return dashboard.RenderBatchChart(w, batch)
		}); err != nil {
			return err
		}
		fmt.Printf("Chart written to %s\n", args.ChartPath)
	}
	return nil
}

func writeFile(path string, fn func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
