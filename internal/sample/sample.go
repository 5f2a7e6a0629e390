// Package sample produces fixture and randomly generated score records for
// the quick-test mode of the dashboard and for exercising the API without
// real QA data.
package sample

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/superanalyst/concord/internal/agreement"
	"github.com/superanalyst/concord/internal/kpi"
)

// QuickTestRecord returns the worked example from the QA workflow
// documentation (chat 27811316, MAE 2/6).
func QuickTestRecord() agreement.Record {
	return agreement.Record{
		ID: "27811316",
		AI: agreement.ScoreSet{
			"IssueIdentification":  4,
			"ResolutionCompliance": 3,
			"Clarity":              2,
			"Retention":            2,
			"Sentiment":            3,
			"CustomerCentricity":   4,
		},
		Human: agreement.ScoreSet{
			"IssueIdentification":  4,
			"ResolutionCompliance": 3,
			"Clarity":              2,
			"Retention":            2,
			"Sentiment":            4,
			"CustomerCentricity":   3,
		},
	}
}

// DemoBatch returns the two-chat demo batch used by the CSV template and
// the built-in CLI demo.
func DemoBatch() []agreement.Record {
	return []agreement.Record{
		QuickTestRecord(),
		{
			ID: "27811317",
			AI: agreement.ScoreSet{
				"IssueIdentification":  3,
				"ResolutionCompliance": 2,
				"Clarity":              3,
				"Retention":            3,
				"Sentiment":            4,
				"CustomerCentricity":   3,
			},
			Human: agreement.ScoreSet{
				"IssueIdentification":  4,
				"ResolutionCompliance": 3,
				"Clarity":              2,
				"Retention":            3,
				"Sentiment":            4,
				"CustomerCentricity":   4,
			},
		},
	}
}

// Batch generates n random records over the full KPI vocabulary. Each
// record gets a fresh UUID chat ID; human scores are drawn near the AI
// score so generated batches land in realistic MAE bands.
func Batch(rng *rand.Rand, n int) []agreement.Record {
	records := make([]agreement.Record, 0, n)
	for i := 0; i < n; i++ {
		ai := make(agreement.ScoreSet, len(kpi.Names))
		human := make(agreement.ScoreSet, len(kpi.Names))
		for _, name := range kpi.Names {
			score := kpi.MinScore + rng.Intn(kpi.MaxScore-kpi.MinScore+1)
			ai[name] = score
			human[name] = clampScore(score + rng.Intn(3) - 1)
		}
		records = append(records, agreement.Record{
			ID:    uuid.New().String(),
			AI:    ai,
			Human: human,
		})
	}
	return records
}

func clampScore(s int) int {
	if s < kpi.MinScore {
		return kpi.MinScore
	}
	if s > kpi.MaxScore {
		return kpi.MaxScore
	}
	return s
}
