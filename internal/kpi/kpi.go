// Package kpi defines the fixed KPI vocabulary of the Super Analyst QA
// workflow. The agreement core is KPI-agnostic; this package is where the
// presentation layers (CSV, API, reports) agree on dimension names and the
// 0–5 score range.
package kpi

import (
	"fmt"

	"github.com/superanalyst/concord/internal/agreement"
)

// Score bounds used by every rater in the workflow.
const (
	MinScore = 0
	MaxScore = 5
)

// Names lists the KPIs in report order.
var Names = []string{
	"IssueIdentification",
	"ResolutionCompliance",
	"Clarity",
	"Retention",
	"Sentiment",
	"CustomerCentricity",
}

var known = func() map[string]struct{} {
	m := make(map[string]struct{}, len(Names))
	for _, n := range Names {
		m[n] = struct{}{}
	}
	return m
}()

// IsKnown reports whether name is part of the vocabulary.
func IsKnown(name string) bool {
	_, ok := known[name]
	return ok
}

// Validate checks that set covers exactly the vocabulary and that every
// score lies within [MinScore, MaxScore]. The agreement core deliberately
// performs neither check; callers that accept external input run this
// first.
func Validate(set agreement.ScoreSet) error {
	for name, score := range set {
		if !IsKnown(name) {
			return fmt.Errorf("unknown KPI %q", name)
		}
		if score < MinScore || score > MaxScore {
			return fmt.Errorf("KPI %s: score %d out of range %d–%d", name, score, MinScore, MaxScore)
		}
	}
	if len(set) != len(Names) {
		return fmt.Errorf("expected scores for all %d KPIs, got %d", len(Names), len(set))
	}
	return nil
}
