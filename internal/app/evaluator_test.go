package app_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/superanalyst/concord/internal/agreement"
	"github.com/superanalyst/concord/internal/app"
	"github.com/superanalyst/concord/internal/csvio"
	"github.com/superanalyst/concord/internal/sample"
	"github.com/superanalyst/concord/internal/testutil"
)

func newEvaluator(cfg *app.Config) (*app.Evaluator, *testutil.DummyLogger) {
	logger := &testutil.DummyLogger{}
	return app.NewEvaluator(cfg, logger), logger
}

func TestEvaluatePair(t *testing.T) {
	t.Parallel()

	e, logger := newEvaluator(nil)
	rec := sample.QuickTestRecord()

	res, err := e.EvaluatePair(rec.ID, rec.AI, rec.Human)
	if err != nil {
		t.Fatalf("EvaluatePair: %v", err)
	}
	if math.Abs(res.MAE-2.0/6.0) > 1e-9 {
		t.Errorf("expected MAE 2/6, got %v", res.MAE)
	}
	if len(logger.Infos) == 0 {
		t.Error("expected an info log entry")
	}
}

func TestEvaluatePair_RejectsUnknownKPI(t *testing.T) {
	t.Parallel()

	e, _ := newEvaluator(nil)
	ai := agreement.ScoreSet{"Latency": 3}
	human := agreement.ScoreSet{"Latency": 3}

	_, err := e.EvaluatePair("x", ai, human)
	if err == nil || !strings.Contains(err.Error(), "Latency") {
		t.Errorf("expected vocabulary error, got %v", err)
	}
}

func TestEvaluatePair_VocabularyOptional(t *testing.T) {
	t.Parallel()

	cfg := app.DefaultConfig()
	cfg.EnforceKPIs = false
	e, _ := newEvaluator(cfg)

	res, err := e.EvaluatePair("x", agreement.ScoreSet{"Latency": 3}, agreement.ScoreSet{"Latency": 5})
	if err != nil {
		t.Fatalf("EvaluatePair without enforcement: %v", err)
	}
	if res.MAE != 2 {
		t.Errorf("expected MAE 2, got %v", res.MAE)
	}
}

func TestEvaluateBatch_Limit(t *testing.T) {
	t.Parallel()

	cfg := app.DefaultConfig()
	cfg.MaxBatchRecords = 1
	e, _ := newEvaluator(cfg)

	_, err := e.EvaluateBatch(sample.DemoBatch())
	if err == nil || !strings.Contains(err.Error(), "limit") {
		t.Errorf("expected batch limit error, got %v", err)
	}
}

func TestEvaluateBatch_MismatchSurfacesInvalidInput(t *testing.T) {
	t.Parallel()

	cfg := app.DefaultConfig()
	cfg.EnforceKPIs = false
	e, _ := newEvaluator(cfg)

	records := []agreement.Record{
		{ID: "bad", AI: agreement.ScoreSet{"A": 1}, Human: agreement.ScoreSet{"B": 1}},
	}
	_, err := e.EvaluateBatch(records)
	var iie *agreement.InvalidInputError
	if !errors.As(err, &iie) {
		t.Fatalf("expected *InvalidInputError, got %v", err)
	}
	if iie.RecordID != "bad" {
		t.Errorf("expected record ID in error, got %q", iie.RecordID)
	}
}

func TestEvaluateCSV_Template(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	if err := csvio.WriteTemplate(&buf); err != nil {
		t.Fatalf("WriteTemplate: %v", err)
	}

	e, _ := newEvaluator(nil)
	batch, err := e.EvaluateCSV(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("EvaluateCSV: %v", err)
	}
	if len(batch.Results) != 2 {
		t.Errorf("expected 2 results, got %d", len(batch.Results))
	}
	if math.Abs(batch.AverageMAE-0.5) > 1e-9 {
		t.Errorf("expected average MAE 0.5, got %v", batch.AverageMAE)
	}
}

func TestQuickTest(t *testing.T) {
	t.Parallel()

	e, _ := newEvaluator(nil)
	rec, res, err := e.QuickTest()
	if err != nil {
		t.Fatalf("QuickTest: %v", err)
	}
	if rec.ID != "27811316" {
		t.Errorf("expected fixture chat ID, got %q", rec.ID)
	}
	if res.Interpretation != agreement.InterpretationExcellent {
		t.Errorf("expected excellent interpretation, got %q", res.Interpretation)
	}
}

func TestSampleBatch(t *testing.T) {
	t.Parallel()

	cfg := app.DefaultConfig()
	cfg.SampleSeed = 7
	e, _ := newEvaluator(cfg)

	records := e.SampleBatch(0)
	if len(records) != cfg.SampleBatchSize {
		t.Fatalf("expected default size %d, got %d", cfg.SampleBatchSize, len(records))
	}
	if _, err := e.EvaluateBatch(records); err != nil {
		t.Errorf("sample batch should evaluate cleanly: %v", err)
	}
}
