package kpi_test

import (
	"strings"
	"testing"

	"github.com/superanalyst/concord/internal/agreement"
	"github.com/superanalyst/concord/internal/kpi"
)

func fullSet() agreement.ScoreSet {
	set := make(agreement.ScoreSet, len(kpi.Names))
	for _, n := range kpi.Names {
		set[n] = 3
	}
	return set
}

func TestNames_Fixed(t *testing.T) {
	t.Parallel()

	want := []string{
		"IssueIdentification",
		"ResolutionCompliance",
		"Clarity",
		"Retention",
		"Sentiment",
		"CustomerCentricity",
	}
	if len(kpi.Names) != len(want) {
		t.Fatalf("expected %d KPIs, got %d", len(want), len(kpi.Names))
	}
	for i, n := range want {
		if kpi.Names[i] != n {
			t.Errorf("Names[%d] = %q, want %q", i, kpi.Names[i], n)
		}
	}
}

func TestIsKnown(t *testing.T) {
	t.Parallel()

	if !kpi.IsKnown("Clarity") {
		t.Error("expected Clarity to be known")
	}
	if kpi.IsKnown("clarity") {
		t.Error("KPI names are case-sensitive; 'clarity' should be unknown")
	}
	if kpi.IsKnown("Latency") {
		t.Error("expected Latency to be unknown")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	if err := kpi.Validate(fullSet()); err != nil {
		t.Errorf("expected full in-range set to validate, got %v", err)
	}

	t.Run("unknown KPI", func(t *testing.T) {
		t.Parallel()
		set := fullSet()
		delete(set, "Clarity")
		set["Latency"] = 3
		err := kpi.Validate(set)
		if err == nil || !strings.Contains(err.Error(), "Latency") {
			t.Errorf("expected unknown-KPI error naming Latency, got %v", err)
		}
	})

	t.Run("score out of range", func(t *testing.T) {
		t.Parallel()
		set := fullSet()
		set["Sentiment"] = 6
		err := kpi.Validate(set)
		if err == nil || !strings.Contains(err.Error(), "Sentiment") {
			t.Errorf("expected range error naming Sentiment, got %v", err)
		}
	})

	t.Run("negative score", func(t *testing.T) {
		t.Parallel()
		set := fullSet()
		set["Retention"] = -1
		if err := kpi.Validate(set); err == nil {
			t.Error("expected range error for negative score")
		}
	})

	t.Run("missing KPI", func(t *testing.T) {
		t.Parallel()
		set := fullSet()
		delete(set, "Retention")
		if err := kpi.Validate(set); err == nil {
			t.Error("expected error for incomplete set")
		}
	})
}
