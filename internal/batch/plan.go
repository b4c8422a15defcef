package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"bulkrename/internal/collision"
	"bulkrename/internal/report"
	"bulkrename/internal/services"
)

// State tracks a plan through the two-phase executor.
type State string

const (
	StatePending    State = "pending"
	StateStaged     State = "staged"
	StateCommitted  State = "committed"
	StateRolledBack State = "rolled_back"
)

// Entry is one (origin, temp, final) triple of a plan. Temp lives in the same
// directory as origin so every move is a metadata-only rename.
type Entry struct {
	Origin string
	Temp   string
	Final  string
}

// Plan is the filtered set of renames for one batch, plus the entries dropped
// during planning. Plans are built fresh per run and never persisted.
type Plan struct {
	Entries []Entry
	Dropped []report.Entry
	state   State
}

// State returns the plan's current lifecycle state.
func (p *Plan) State() State {
	if p.state == "" {
		return StatePending
	}
	return p.state
}

// PlanOptions configures plan construction.
type PlanOptions struct {
	Strategy collision.Strategy
	// MaxProbes bounds suffix probing; zero uses the resolver default.
	MaxProbes int
	// TempExtension marks staged temp files. Defaults to ".bulktmp".
	TempExtension string
	// Exists overrides filesystem existence checks (used in tests).
	Exists func(path string) bool
}

// BuildPlan resolves desired targets against the filesystem and filters
// no-ops. Targets claimed by earlier entries in the same batch count as
// existing, so suffix numbering never reuses a number within a run.
func BuildPlan(origins, targets []string, opts PlanOptions) (*Plan, error) {
	if len(origins) != len(targets) {
		return nil, services.Wrap(services.ErrValidation, "batch", "plan",
			fmt.Sprintf("%d files but %d targets", len(origins), len(targets)), nil)
	}

	exists := opts.Exists
	if exists == nil {
		exists = func(path string) bool {
			_, err := os.Lstat(path)
			return err == nil
		}
	}

	claimed := make(map[string]struct{}, len(origins))
	resolver := collision.Resolver{
		MaxProbes: opts.MaxProbes,
		Exists: func(path string) bool {
			if _, ok := claimed[path]; ok {
				return true
			}
			return exists(path)
		},
	}

	tempExt := opts.TempExtension
	if tempExt == "" {
		tempExt = ".bulktmp"
	}
	stamp := time.Now().UnixNano()

	plan := &Plan{state: StatePending}
	for i, origin := range origins {
		dir := filepath.Dir(origin)
		desired := filepath.Join(dir, targets[i])

		final, ok, err := resolver.Resolve(desired, origin, opts.Strategy)
		if err != nil {
			return nil, err
		}
		if !ok {
			plan.Dropped = append(plan.Dropped, report.Entry{
				Origin:  origin,
				Final:   desired,
				Status:  report.EntrySkipped,
				Message: "target exists, skipped",
			})
			continue
		}
		if final == origin {
			plan.Dropped = append(plan.Dropped, report.Entry{
				Origin:  origin,
				Final:   final,
				Status:  report.EntrySkipped,
				Message: "name unchanged",
			})
			continue
		}

		claimed[final] = struct{}{}
		plan.Entries = append(plan.Entries, Entry{
			Origin: origin,
			Temp:   tempPath(dir, stamp, i, tempExt, exists),
			Final:  final,
		})
	}
	return plan, nil
}

// tempPath derives a hidden, unique staging name inside dir from the batch
// timestamp and the entry index.
func tempPath(dir string, stamp int64, index int, ext string, exists func(string) bool) string {
	candidate := filepath.Join(dir, fmt.Sprintf(".bulkrename-%d-%d%s", stamp, index, ext))
	for round := 1; exists(candidate); round++ {
		candidate = filepath.Join(dir, fmt.Sprintf(".bulkrename-%d-%d-%d%s", stamp, index, round, ext))
	}
	return candidate
}
