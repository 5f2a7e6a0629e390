package report_test

import (
	"strings"
	"testing"

	"github.com/superanalyst/concord/internal/agreement"
	"github.com/superanalyst/concord/internal/report"
	"github.com/superanalyst/concord/internal/sample"
)

func TestWriteRecord(t *testing.T) {
	t.Parallel()

	rec := sample.QuickTestRecord()
	res, err := agreement.Compare(rec.AI, rec.Human)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}

	var buf strings.Builder
	if err := report.WriteRecord(&buf, rec, res); err != nil {
		t.Fatalf("WriteRecord: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"MAE REPORT - ChatID: 27811316",
		"Sentiment",
		"CustomerCentricity",
		"Sum of differences: 2",
		"Number of KPIs:     6",
		"MAE:                0.33",
		agreement.InterpretationExcellent,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}

	// KPI rows keep vocabulary order.
	if strings.Index(out, "IssueIdentification") > strings.Index(out, "CustomerCentricity") {
		t.Errorf("expected IssueIdentification before CustomerCentricity:\n%s", out)
	}
}

func TestWriteBatch(t *testing.T) {
	t.Parallel()

	batch, err := agreement.CompareBatch(sample.DemoBatch())
	if err != nil {
		t.Fatalf("CompareBatch: %v", err)
	}

	var buf strings.Builder
	if err := report.WriteBatch(&buf, batch); err != nil {
		t.Fatalf("WriteBatch: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"BATCH MAE REPORT - 2 Chats",
		"27811316",
		"27811317",
		"0.33",
		"0.67",
		"AVERAGE",
		"0.50",
		"Good (production-ready)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("batch report missing %q:\n%s", want, out)
		}
	}
}

func TestWriteBatch_Empty(t *testing.T) {
	t.Parallel()

	batch, err := agreement.CompareBatch(nil)
	if err != nil {
		t.Fatalf("CompareBatch: %v", err)
	}

	var buf strings.Builder
	if err := report.WriteBatch(&buf, batch); err != nil {
		t.Fatalf("WriteBatch: %v", err)
	}
	if !strings.Contains(buf.String(), "BATCH MAE REPORT - 0 Chats") {
		t.Errorf("unexpected empty-batch header:\n%s", buf.String())
	}
}
