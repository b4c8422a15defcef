package report

// Outcome classifies the overall result of a batch operation.
type Outcome string

const (
	// OutcomeCommitted means every entry was renamed and an undo entry was recorded.
	OutcomeCommitted Outcome = "committed"
	// OutcomeRolledBack means a failure occurred and the filesystem was restored.
	OutcomeRolledBack Outcome = "rolled_back"
	// OutcomeNoOp means the batch reduced to zero effective entries.
	OutcomeNoOp Outcome = "no_op"
	// OutcomeRestored means an undo pass reversed every pair.
	OutcomeRestored Outcome = "restored"
	// OutcomePartial means an undo pass completed but some pairs could not be reversed.
	OutcomePartial Outcome = "partial"
)

// EntryStatus classifies the per-file result inside a report.
type EntryStatus string

const (
	EntryRenamed  EntryStatus = "renamed"
	EntrySkipped  EntryStatus = "skipped"
	EntryRestored EntryStatus = "restored"
	EntryMissing  EntryStatus = "missing"
	EntryFailed   EntryStatus = "failed"
)

// Entry is the per-file line of a report.
type Entry struct {
	Origin  string      `json:"origin"`
	Final   string      `json:"final,omitempty"`
	Status  EntryStatus `json:"status"`
	Message string      `json:"message,omitempty"`
}

// Report is the structured outcome of execute or undo.
type Report struct {
	Outcome Outcome `json:"outcome"`
	BatchID string  `json:"batch_id,omitempty"`
	Message string  `json:"message,omitempty"`
	Entries []Entry `json:"entries,omitempty"`
}

// Renamed counts entries that were actually moved.
func (r *Report) Renamed() int {
	return r.count(EntryRenamed)
}

// Restored counts entries reversed by an undo pass.
func (r *Report) Restored() int {
	return r.count(EntryRestored)
}

func (r *Report) count(status EntryStatus) int {
	n := 0
	for _, entry := range r.Entries {
		if entry.Status == status {
			n++
		}
	}
	return n
}

// NoOp builds the benign "nothing to do" report.
func NoOp(message string) *Report {
	return &Report{Outcome: OutcomeNoOp, Message: message}
}
