package agreement

import "fmt"

// InvalidInputError reports a pair of ScoreSets that cannot be compared
// because their KPI sets differ. It is the only failure this package
// produces; the arithmetic itself is always well defined.
type InvalidInputError struct {
	// Reason is a human-readable description of the mismatch.
	Reason string

	// RecordID identifies the offending record when the failure happened
	// inside CompareBatch. Empty for direct Compare calls.
	RecordID string

	// RecordIndex is the zero-based position of the offending record in
	// the batch input, or -1 outside batch context.
	RecordIndex int
}

func (e *InvalidInputError) Error() string {
	if e.RecordIndex < 0 {
		return e.Reason
	}
	if e.RecordID != "" {
		return fmt.Sprintf("record %d (chat %s): %s", e.RecordIndex, e.RecordID, e.Reason)
	}
	return fmt.Sprintf("record %d: %s", e.RecordIndex, e.Reason)
}
