package server

import "github.com/superanalyst/concord/internal/agreement"

// CompareRequest is the payload for a single AI/human comparison.
type CompareRequest struct {
	ChatID      string         `json:"chat_id" example:"27811316"`
	AIScores    map[string]int `json:"ai_scores"`
	HumanScores map[string]int `json:"human_scores"`
}

// BatchCompareRequest carries the ordered records of a batch evaluation.
type BatchCompareRequest struct {
	Records []agreement.Record `json:"records"`
}

// QuickTestResponse pairs the built-in fixture record with its result.
type QuickTestResponse struct {
	Record agreement.Record  `json:"record"`
	Result *agreement.Result `json:"result"`
}

// SampleResponse returns generated records for the quick-test mode.
type SampleResponse struct {
	Records []agreement.Record `json:"records"`
}

// ErrorResponse is a uniform error payload returned by the API.
type ErrorResponse struct {
	Error string `json:"error" example:"ai and human scores must cover the same KPIs"`
}

// EvalEventType tags the messages streamed over /ws/evaluate.
type EvalEventType string

const (
	EvalEventResult  EvalEventType = "result"
	EvalEventSummary EvalEventType = "summary"
	EvalEventError   EvalEventType = "error"
)

// EvalEvent is one message of the websocket evaluation stream: one per
// record in input order, then a summary.
type EvalEvent struct {
	Type EvalEventType `json:"type"`

	// For per-record results
	Index  int                     `json:"index"`
	Result *agreement.RecordResult `json:"result,omitempty"`

	// For the summary
	AverageMAE     float64 `json:"average_mae,omitempty"`
	Records        int     `json:"records,omitempty"`
	Interpretation string  `json:"interpretation,omitempty"`

	// For failures
	Error string `json:"error,omitempty"`
}
