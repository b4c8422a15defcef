package batch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"bulkrename/internal/logging"
	"bulkrename/internal/report"
	"bulkrename/internal/services"
	"bulkrename/internal/undo"
)

// UndoSink receives the reverse mapping of a committed batch.
type UndoSink interface {
	Push(ctx context.Context, entry undo.Entry) error
}

// Executor runs plans through the two rename phases. It is synchronous and
// assumes exclusive, single-caller use; a batch runs to commit or rollback
// before Execute returns.
type Executor struct {
	sink   UndoSink
	logger *slog.Logger
}

// NewExecutor constructs an executor pushing committed batches into sink.
func NewExecutor(sink UndoSink, logger *slog.Logger) *Executor {
	return &Executor{
		sink:   sink,
		logger: logging.NewComponentLogger(logger, "executor"),
	}
}

// Execute stages every entry to its temp path, then commits temps to final
// names. Any failure rolls the filesystem back to the pre-batch state and the
// returned error carries the offending pair; the report is populated either
// way. An empty plan yields a benign no-op report and pushes nothing.
func (e *Executor) Execute(ctx context.Context, plan *Plan) (*report.Report, error) {
	if plan == nil || len(plan.Entries) == 0 {
		rep := report.NoOp("nothing to do")
		if plan != nil {
			rep.Entries = append(rep.Entries, plan.Dropped...)
		}
		e.logger.Info("batch reduced to zero entries")
		return rep, nil
	}

	batchID := uuid.NewString()
	logger := e.logger.With(logging.String(logging.FieldBatchID, batchID))
	logger.Info("starting batch",
		logging.Int("entries", len(plan.Entries)),
		logging.Int("dropped", len(plan.Dropped)))

	// Phase 1: vacate every origin name.
	for i, entry := range plan.Entries {
		if err := os.Rename(entry.Origin, entry.Temp); err != nil {
			logger.Warn("staging failed, rolling back",
				logging.String("origin", entry.Origin),
				logging.String("temp", entry.Temp),
				logging.Error(err))
			e.unstage(logger, plan.Entries[:i])
			plan.state = StateRolledBack
			rep := e.rolledBackReport(plan, batchID, entry.Origin, fmt.Sprintf("stage %s: %v", entry.Origin, err))
			return rep, services.Wrap(services.ErrIO, "executor", "stage",
				fmt.Sprintf("rename %s -> %s", entry.Origin, entry.Temp), err)
		}
	}
	plan.state = StateStaged

	// Phase 2: claim final names.
	for i, entry := range plan.Entries {
		if err := os.Rename(entry.Temp, entry.Final); err != nil {
			logger.Warn("commit failed, rolling back",
				logging.String("temp", entry.Temp),
				logging.String("final", entry.Final),
				logging.Error(err))
			e.uncommit(logger, plan.Entries[:i])
			e.unstage(logger, plan.Entries[i:])
			plan.state = StateRolledBack
			rep := e.rolledBackReport(plan, batchID, entry.Origin, fmt.Sprintf("commit %s: %v", entry.Final, err))
			return rep, services.Wrap(services.ErrIO, "executor", "commit",
				fmt.Sprintf("rename %s -> %s", entry.Temp, entry.Final), err)
		}
	}
	plan.state = StateCommitted

	undoEntry := undo.Entry{
		ID:        batchID,
		CreatedAt: time.Now().UTC(),
		Pairs:     make([]undo.Pair, 0, len(plan.Entries)),
	}
	for _, entry := range plan.Entries {
		undoEntry.Pairs = append(undoEntry.Pairs, undo.Pair{Origin: entry.Origin, Final: entry.Final})
	}

	rep := &report.Report{
		Outcome: report.OutcomeCommitted,
		BatchID: batchID,
		Message: fmt.Sprintf("renamed %d files", len(plan.Entries)),
	}
	for _, entry := range plan.Entries {
		rep.Entries = append(rep.Entries, report.Entry{
			Origin: entry.Origin,
			Final:  entry.Final,
			Status: report.EntryRenamed,
		})
	}
	rep.Entries = append(rep.Entries, plan.Dropped...)

	if e.sink != nil {
		if err := e.sink.Push(ctx, undoEntry); err != nil {
			// The renames are already committed; losing the undo record is
			// worth surfacing but not worth reversing the batch.
			logger.Warn("recording undo entry failed", logging.Error(err))
			rep.Message += " (undo history could not be recorded)"
		}
	}

	logger.Info("batch committed", logging.Int("renamed", len(plan.Entries)))
	return rep, nil
}

// unstage returns staged entries to their origins, newest first.
func (e *Executor) unstage(logger *slog.Logger, entries []Entry) {
	for i := len(entries) - 1; i >= 0; i-- {
		entry := entries[i]
		if _, err := os.Lstat(entry.Temp); err != nil {
			continue
		}
		if err := os.Rename(entry.Temp, entry.Origin); err != nil {
			logger.Error("rollback rename failed",
				logging.String("temp", entry.Temp),
				logging.String("origin", entry.Origin),
				logging.Error(err))
		}
	}
}

// uncommit returns committed entries from their final names to their origins,
// newest first.
func (e *Executor) uncommit(logger *slog.Logger, entries []Entry) {
	for i := len(entries) - 1; i >= 0; i-- {
		entry := entries[i]
		if _, err := os.Lstat(entry.Final); err != nil {
			continue
		}
		if err := os.Rename(entry.Final, entry.Origin); err != nil {
			logger.Error("rollback rename failed",
				logging.String("final", entry.Final),
				logging.String("origin", entry.Origin),
				logging.Error(err))
		}
	}
}

func (e *Executor) rolledBackReport(plan *Plan, batchID, failedOrigin, message string) *report.Report {
	rep := &report.Report{
		Outcome: report.OutcomeRolledBack,
		BatchID: batchID,
		Message: "batch failed, filesystem restored",
	}
	for _, entry := range plan.Entries {
		status := report.EntrySkipped
		msg := "rolled back"
		if entry.Origin == failedOrigin {
			status = report.EntryFailed
			msg = message
		}
		rep.Entries = append(rep.Entries, report.Entry{
			Origin:  entry.Origin,
			Final:   entry.Final,
			Status:  status,
			Message: msg,
		})
	}
	rep.Entries = append(rep.Entries, plan.Dropped...)
	return rep
}
