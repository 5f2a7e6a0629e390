package csvio_test

import (
	"math"
	"strings"
	"testing"

	"github.com/superanalyst/concord/internal/agreement"
	"github.com/superanalyst/concord/internal/csvio"
	"github.com/superanalyst/concord/internal/sample"
)

func TestTemplateRoundTrip(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	if err := csvio.WriteTemplate(&buf); err != nil {
		t.Fatalf("WriteTemplate: %v", err)
	}

	records, err := csvio.ParseRecords(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("ParseRecords: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 template records, got %d", len(records))
	}
	if records[0].ID != "27811316" || records[1].ID != "27811317" {
		t.Errorf("unexpected chat IDs: %q, %q", records[0].ID, records[1].ID)
	}

	batch, err := agreement.CompareBatch(records)
	if err != nil {
		t.Fatalf("CompareBatch: %v", err)
	}
	if math.Abs(batch.AverageMAE-0.5) > 1e-9 {
		t.Errorf("expected template average MAE 0.5, got %v", batch.AverageMAE)
	}
}

func TestParseRecords_ColumnOrderFree(t *testing.T) {
	t.Parallel()

	// Same columns as the template but shuffled, with human columns first.
	in := "human_IssueIdentification,human_ResolutionCompliance,human_Clarity,human_Retention,human_Sentiment,human_CustomerCentricity," +
		"chat_id,ai_IssueIdentification,ai_ResolutionCompliance,ai_Clarity,ai_Retention,ai_Sentiment,ai_CustomerCentricity\n" +
		"4,3,2,2,4,3,27811316,4,3,2,2,3,4\n"

	records, err := csvio.ParseRecords(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseRecords: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].AI["Sentiment"] != 3 || records[0].Human["Sentiment"] != 4 {
		t.Errorf("columns mapped wrong: AI Sentiment=%d Human Sentiment=%d",
			records[0].AI["Sentiment"], records[0].Human["Sentiment"])
	}
}

func TestParseRecords_MissingColumn(t *testing.T) {
	t.Parallel()

	in := "chat_id,ai_Clarity\n1,3\n"
	_, err := csvio.ParseRecords(strings.NewReader(in))
	if err == nil || !strings.Contains(err.Error(), "missing CSV column") {
		t.Errorf("expected missing-column error, got %v", err)
	}
}

func TestParseRecords_BadScoreReportsRow(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	if err := csvio.WriteTemplate(&buf); err != nil {
		t.Fatalf("WriteTemplate: %v", err)
	}
	broken := strings.Replace(buf.String(), "27811317,3", "27811317,notanumber", 1)

	_, err := csvio.ParseRecords(strings.NewReader(broken))
	if err == nil || !strings.Contains(err.Error(), "row 3") {
		t.Errorf("expected error naming row 3, got %v", err)
	}
}

func TestParseRecords_Empty(t *testing.T) {
	t.Parallel()

	_, err := csvio.ParseRecords(strings.NewReader(""))
	if err == nil {
		t.Error("expected error for empty input")
	}
}

func TestWriteResults(t *testing.T) {
	t.Parallel()

	batch, err := agreement.CompareBatch(sample.DemoBatch())
	if err != nil {
		t.Fatalf("CompareBatch: %v", err)
	}

	var buf strings.Builder
	if err := csvio.WriteResults(&buf, batch); err != nil {
		t.Fatalf("WriteResults: %v", err)
	}
	out := buf.String()

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "Chat ID,MAE,Total Diff,Interpretation") {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "27811316,0.33,2,") {
		t.Errorf("unexpected first row: %q", lines[1])
	}
}
