// Package report renders agreement results as formatted console reports,
// the plain-terminal counterpart of the dashboard.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/superanalyst/concord/internal/agreement"
	"github.com/superanalyst/concord/internal/kpi"
)

const ruleWidth = 70

func rule(c byte) string { return strings.Repeat(string(c), ruleWidth) }

// kpiOrder returns the KPIs of a result in report order: vocabulary order
// first, then any out-of-vocabulary names sorted alphabetically.
func kpiOrder(diffs map[string]float64) []string {
	order := make([]string, 0, len(diffs))
	for _, n := range kpi.Names {
		if _, ok := diffs[n]; ok {
			order = append(order, n)
		}
	}
	var extra []string
	for n := range diffs {
		if !kpi.IsKnown(n) {
			extra = append(extra, n)
		}
	}
	sort.Strings(extra)
	return append(order, extra...)
}

// WriteRecord writes the per-KPI breakdown for a single compared record.
func WriteRecord(w io.Writer, rec agreement.Record, res *agreement.Result) error {
	fmt.Fprintf(w, "\n%s\n", rule('='))
	fmt.Fprintf(w, "MAE REPORT - ChatID: %s\n", rec.ID)
	fmt.Fprintf(w, "%s\n\n", rule('='))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KPI\tAI\tHuman\t|Diff|")
	for _, name := range kpiOrder(res.KPIDifferences) {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.0f\n", name, rec.AI[name], rec.Human[name], res.KPIDifferences[name])
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing KPI table: %w", err)
	}

	fmt.Fprintf(w, "%s\n", rule('-'))
	fmt.Fprintf(w, "Sum of differences: %.0f\n", res.TotalDifference)
	fmt.Fprintf(w, "Number of KPIs:     %d\n", res.KPICount)
	fmt.Fprintf(w, "\nMAE:                %.2f\n", res.MAE)
	fmt.Fprintf(w, "Interpretation:     %s\n", res.Interpretation)
	fmt.Fprintf(w, "%s\n", rule('='))
	return nil
}

// WriteBatch writes the per-record summary plus the average MAE row,
// interpreted through the same bands as individual results.
func WriteBatch(w io.Writer, batch *agreement.BatchResult) error {
	fmt.Fprintf(w, "\n%s\n", rule('='))
	fmt.Fprintf(w, "BATCH MAE REPORT - %d Chats\n", len(batch.Results))
	fmt.Fprintf(w, "%s\n\n", rule('='))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ChatID\tMAE\tInterpretation")
	for _, rr := range batch.Results {
		fmt.Fprintf(tw, "%s\t%.2f\t%s\n", rr.ID, rr.MAE, rr.Interpretation)
	}
	fmt.Fprintf(tw, "AVERAGE\t%.2f\t%s\n", batch.AverageMAE, agreement.Interpret(batch.AverageMAE))
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing batch table: %w", err)
	}

	fmt.Fprintf(w, "%s\n", rule('='))
	return nil
}
