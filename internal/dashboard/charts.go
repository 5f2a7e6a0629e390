// Package dashboard renders agreement results as self-contained go-echarts
// HTML pages, the browser counterpart of the console reports.
package dashboard

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/floats"

	"github.com/superanalyst/concord/internal/agreement"
	"github.com/superanalyst/concord/internal/kpi"
)

// RenderRecordChart writes a grouped bar chart of AI vs human scores per
// KPI for one record, with the absolute difference as a third series.
func RenderRecordChart(w io.Writer, rec agreement.Record, res *agreement.Result) error {
	names := make([]string, 0, len(kpi.Names))
	ai := make([]opts.BarData, 0, len(kpi.Names))
	human := make([]opts.BarData, 0, len(kpi.Names))
	diffs := make([]opts.BarData, 0, len(kpi.Names))
	for _, n := range kpi.Names {
		if _, ok := res.KPIDifferences[n]; !ok {
			continue
		}
		names = append(names, n)
		ai = append(ai, opts.BarData{Value: rec.AI[n]})
		human = append(human, opts.BarData{Value: rec.Human[n]})
		diffs = append(diffs, opts.BarData{Value: res.KPIDifferences[n]})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "KPI Agreement", Width: "900px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Chat %s: AI vs Human", rec.ID),
			Subtitle: fmt.Sprintf("MAE %.2f | %s", res.MAE, res.Interpretation),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Min: kpi.MinScore, Max: kpi.MaxScore, Name: "score"}),
	)
	bar.SetXAxis(names).
		AddSeries("AI", ai).
		AddSeries("Human", human).
		AddSeries("|Diff|", diffs)

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("rendering record chart: %w", err)
	}
	return nil
}

// RenderBatchChart writes a bar chart of per-record MAE values with the
// batch average and its interpretation in the subtitle.
func RenderBatchChart(w io.Writer, batch *agreement.BatchResult) error {
	ids := make([]string, 0, len(batch.Results))
	maes := make([]float64, 0, len(batch.Results))
	data := make([]opts.BarData, 0, len(batch.Results))
	for _, rr := range batch.Results {
		ids = append(ids, rr.ID)
		maes = append(maes, rr.MAE)
		data = append(data, opts.BarData{Value: rr.MAE})
	}

	subtitle := "no records"
	if len(maes) > 0 {
		subtitle = fmt.Sprintf("average MAE %.2f (%s) | min %.2f max %.2f",
			batch.AverageMAE, agreement.Interpret(batch.AverageMAE),
			floats.Min(maes), floats.Max(maes))
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Batch MAE", Width: "900px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Batch MAE: %d chats", len(batch.Results)),
			Subtitle: subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "MAE"}),
	)
	bar.SetXAxis(ids).AddSeries("MAE", data)

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("rendering batch chart: %w", err)
	}
	return nil
}
