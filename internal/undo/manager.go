package undo

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"bulkrename/internal/logging"
	"bulkrename/internal/report"
)

// Manager reverses committed batches popped from a Stack.
type Manager struct {
	stack  Stack
	logger *slog.Logger
}

// NewManager constructs an undo manager over the given stack.
func NewManager(stack Stack, logger *slog.Logger) *Manager {
	return &Manager{
		stack:  stack,
		logger: logging.NewComponentLogger(logger, "undo"),
	}
}

// Undo pops the most recent batch and renames each final path back to its
// origin. A missing final is reported per entry and does not block the rest
// of the pass. An empty stack yields a benign "nothing to undo" report.
func (m *Manager) Undo(ctx context.Context) (*report.Report, error) {
	entry, ok, err := m.stack.Pop(ctx)
	if err != nil {
		return nil, fmt.Errorf("pop undo stack: %w", err)
	}
	if !ok {
		m.logger.Info("undo requested with empty history")
		return report.NoOp("nothing to undo"), nil
	}

	rep := &report.Report{Outcome: report.OutcomeRestored, BatchID: entry.ID}
	for _, pair := range entry.Pairs {
		if _, statErr := os.Lstat(pair.Final); statErr != nil {
			if errors.Is(statErr, fs.ErrNotExist) {
				rep.Entries = append(rep.Entries, report.Entry{
					Origin:  pair.Origin,
					Final:   pair.Final,
					Status:  report.EntryMissing,
					Message: "cannot undo: renamed file no longer exists",
				})
				continue
			}
			rep.Entries = append(rep.Entries, report.Entry{
				Origin:  pair.Origin,
				Final:   pair.Final,
				Status:  report.EntryFailed,
				Message: fmt.Sprintf("cannot undo: %v", statErr),
			})
			continue
		}
		if renameErr := os.Rename(pair.Final, pair.Origin); renameErr != nil {
			m.logger.Warn("undo rename failed",
				logging.String("final", pair.Final),
				logging.String("origin", pair.Origin),
				logging.Error(renameErr))
			rep.Entries = append(rep.Entries, report.Entry{
				Origin:  pair.Origin,
				Final:   pair.Final,
				Status:  report.EntryFailed,
				Message: fmt.Sprintf("cannot undo: %v", renameErr),
			})
			continue
		}
		rep.Entries = append(rep.Entries, report.Entry{
			Origin: pair.Origin,
			Final:  pair.Final,
			Status: report.EntryRestored,
		})
	}

	restored := rep.Restored()
	if restored < len(entry.Pairs) {
		rep.Outcome = report.OutcomePartial
		rep.Message = fmt.Sprintf("restored %d of %d files", restored, len(entry.Pairs))
	} else {
		rep.Message = fmt.Sprintf("restored %d files", restored)
	}
	m.logger.Info("undo pass finished",
		logging.String(logging.FieldBatchID, entry.ID),
		logging.Int("restored", restored),
		logging.Int("total", len(entry.Pairs)))
	return rep, nil
}

// Depth reports how many batches remain undoable.
func (m *Manager) Depth(ctx context.Context) (int, error) {
	return m.stack.Depth(ctx)
}
