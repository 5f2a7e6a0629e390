// Package agreement computes agreement metrics between two raters scoring
// the same record: in the Super Analyst QA workflow, the automated scorer
// on one side and a human reviewer on the other. The package is
// KPI-agnostic: it operates on whatever dimension names the caller
// supplies, validated only for set equality between the two sides.
package agreement

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// ScoreSet maps a KPI name to the integer score one rater assigned for a
// single record. Scores are domain-bounded (0–5 in practice) but range
// enforcement is a caller concern; see the kpi package.
type ScoreSet map[string]int

// Result holds the agreement metrics produced by comparing two ScoreSets.
// It is constructed once per comparison and never mutated.
type Result struct {
	// MAE is the mean absolute error: TotalDifference / KPICount,
	// or 0 when no KPIs were compared.
	MAE float64 `json:"mae"`

	// TotalDifference is the sum of per-KPI absolute differences.
	TotalDifference float64 `json:"total_difference"`

	// KPICount is the number of KPIs compared.
	KPICount int `json:"kpi_count"`

	// KPIDifferences maps each KPI name to its absolute difference.
	KPIDifferences map[string]float64 `json:"kpi_differences"`

	// Interpretation is the qualitative band Interpret assigned to MAE.
	Interpretation string `json:"interpretation"`
}

// Record is one comparable unit (e.g. a chat transcript) with the two
// ScoreSets to compare. ID is opaque to this package and carried through
// unchanged for the caller's use.
type Record struct {
	ID    string   `json:"chat_id"`
	AI    ScoreSet `json:"ai_scores"`
	Human ScoreSet `json:"human_scores"`
}

// RecordResult pairs a Result with the identifier of the record it was
// computed for.
type RecordResult struct {
	ID string `json:"chat_id"`
	Result
}

// BatchResult holds per-record results in input order plus the arithmetic
// mean of their MAE values.
type BatchResult struct {
	AverageMAE float64        `json:"average_mae"`
	Results    []RecordResult `json:"results"`
}

// Interpretation bands, boundaries belonging to the better tier.
const (
	InterpretationExcellent  = "Excellent (matches human analyst very closely)"
	InterpretationGood       = "Good (production-ready)"
	InterpretationAcceptable = "Acceptable (needs minor calibration)"
	InterpretationPoor       = "Poor (needs major fixes)"
)

// Compare computes agreement metrics between the AI and human ScoreSets for
// a single record. The two sets must cover exactly the same KPIs; a
// mismatch fails with *InvalidInputError rather than zero-filling or
// dropping KPIs. An empty pair is accepted and yields MAE 0.
func Compare(ai, human ScoreSet) (*Result, error) {
	if err := checkSameKPIs(ai, human); err != nil {
		return nil, err
	}

	diffs := make(map[string]float64, len(ai))
	total := 0.0
	for k, score := range ai {
		d := math.Abs(float64(score - human[k]))
		diffs[k] = d
		total += d
	}

	mae := 0.0
	if len(ai) > 0 {
		mae = total / float64(len(ai))
	}

	return &Result{
		MAE:             mae,
		TotalDifference: total,
		KPICount:        len(ai),
		KPIDifferences:  diffs,
		Interpretation:  Interpret(mae),
	}, nil
}

// Interpret maps an MAE value to its qualitative band. Values are not
// clamped; anything below 0.50 (including a hypothetical negative MAE)
// reads as excellent.
func Interpret(mae float64) string {
	switch {
	case mae < 0.50:
		return InterpretationExcellent
	case mae < 0.75:
		return InterpretationGood
	case mae < 1.00:
		return InterpretationAcceptable
	default:
		return InterpretationPoor
	}
}

// CompareBatch runs Compare over records in input order and aggregates the
// per-record MAE values into an arithmetic mean (0 for an empty batch).
// The operation is all-or-nothing: the first record whose ScoreSets fail
// the same-KPIs precondition aborts the batch, and the returned
// *InvalidInputError identifies that record by index and ID.
func CompareBatch(records []Record) (*BatchResult, error) {
	out := &BatchResult{Results: make([]RecordResult, 0, len(records))}
	maes := make([]float64, 0, len(records))

	for i, rec := range records {
		res, err := Compare(rec.AI, rec.Human)
		if err != nil {
			if iie, ok := err.(*InvalidInputError); ok {
				iie.RecordIndex = i
				iie.RecordID = rec.ID
			}
			return nil, err
		}
		out.Results = append(out.Results, RecordResult{ID: rec.ID, Result: *res})
		maes = append(maes, res.MAE)
	}

	if len(maes) > 0 {
		out.AverageMAE = stat.Mean(maes, nil)
	}
	return out, nil
}

func checkSameKPIs(ai, human ScoreSet) error {
	if len(ai) == len(human) {
		same := true
		for k := range ai {
			if _, ok := human[k]; !ok {
				same = false
				break
			}
		}
		if same {
			return nil
		}
	}
	return &InvalidInputError{
		Reason:      "ai and human scores must cover the same KPIs",
		RecordIndex: -1,
	}
}
