// Package app wires the agreement core, KPI validation, CSV parsing and
// sample generation into the operations the CLI and HTTP server expose.
package app

import (
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/superanalyst/concord/internal/agreement"
	"github.com/superanalyst/concord/internal/csvio"
	"github.com/superanalyst/concord/internal/kpi"
	"github.com/superanalyst/concord/internal/logging"
	"github.com/superanalyst/concord/internal/sample"
)

// Evaluator ties together config, the agreement core and a logger.
type Evaluator struct {
	cfg    *Config
	logger logging.Logger

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewEvaluator creates an Evaluator. A nil config gets defaults, a nil
// logger gets a stdout logger.
func NewEvaluator(cfg *Config, logger logging.Logger) *Evaluator {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = logging.NewStdoutLogger("Evaluator")
	}
	seed := cfg.SampleSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Evaluator{
		cfg:    cfg,
		logger: logger,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// EvaluatePair compares one AI/human score pair. id is carried through for
// logging only.
func (e *Evaluator) EvaluatePair(id string, ai, human agreement.ScoreSet) (*agreement.Result, error) {
	if e.cfg.EnforceKPIs {
		if err := kpi.Validate(ai); err != nil {
			return nil, fmt.Errorf("ai scores: %w", err)
		}
		if err := kpi.Validate(human); err != nil {
			return nil, fmt.Errorf("human scores: %w", err)
		}
	}

	res, err := agreement.Compare(ai, human)
	if err != nil {
		return nil, err
	}
	e.logger.Info("compared chat",
		logging.Field{Key: "chat_id", Value: id},
		logging.Field{Key: "mae", Value: res.MAE},
		logging.Field{Key: "interpretation", Value: res.Interpretation})
	return res, nil
}

// EvaluateBatch compares a batch of records. All-or-nothing: validation or
// comparison failure of any record aborts the whole batch with the record's
// position in the error.
func (e *Evaluator) EvaluateBatch(records []agreement.Record) (*agreement.BatchResult, error) {
	if e.cfg.MaxBatchRecords > 0 && len(records) > e.cfg.MaxBatchRecords {
		return nil, fmt.Errorf("batch of %d records exceeds limit of %d", len(records), e.cfg.MaxBatchRecords)
	}

	if e.cfg.EnforceKPIs {
		for i, rec := range records {
			if err := kpi.Validate(rec.AI); err != nil {
				return nil, fmt.Errorf("record %d (chat %s): ai scores: %w", i, rec.ID, err)
			}
			if err := kpi.Validate(rec.Human); err != nil {
				return nil, fmt.Errorf("record %d (chat %s): human scores: %w", i, rec.ID, err)
			}
		}
	}

	batch, err := agreement.CompareBatch(records)
	if err != nil {
		return nil, err
	}
	e.logger.Info("compared batch",
		logging.Field{Key: "records", Value: len(batch.Results)},
		logging.Field{Key: "average_mae", Value: batch.AverageMAE})
	return batch, nil
}

// EvaluateCSV parses upload-format CSV and evaluates it as a batch.
func (e *Evaluator) EvaluateCSV(r io.Reader) (*agreement.BatchResult, error) {
	records, err := csvio.ParseRecords(r)
	if err != nil {
		return nil, fmt.Errorf("parsing CSV: %w", err)
	}
	return e.EvaluateBatch(records)
}

// QuickTest runs the built-in worked example and returns both the record
// and its result.
func (e *Evaluator) QuickTest() (agreement.Record, *agreement.Result, error) {
	rec := sample.QuickTestRecord()
	res, err := e.EvaluatePair(rec.ID, rec.AI, rec.Human)
	return rec, res, err
}

// SampleBatch generates n random records (config default when n <= 0).
func (e *Evaluator) SampleBatch(n int) []agreement.Record {
	if n <= 0 {
		n = e.cfg.SampleBatchSize
	}
	e.rngMu.Lock()
	defer e.rngMu.Unlock()
	return sample.Batch(e.rng, n)
}
