package undo

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"bulkrename/internal/logging"
	"bulkrename/internal/report"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestMemoryStackLIFO(t *testing.T) {
	ctx := context.Background()
	stack := NewMemoryStack()

	for _, id := range []string{"first", "second"} {
		if err := stack.Push(ctx, Entry{ID: id, CreatedAt: time.Now()}); err != nil {
			t.Fatal(err)
		}
	}
	if depth, _ := stack.Depth(ctx); depth != 2 {
		t.Fatalf("unexpected depth %d", depth)
	}

	entry, ok, err := stack.Pop(ctx)
	if err != nil || !ok {
		t.Fatalf("pop failed ok=%v err=%v", ok, err)
	}
	if entry.ID != "second" {
		t.Fatalf("expected newest entry, got %q", entry.ID)
	}

	entry, ok, _ = stack.Pop(ctx)
	if !ok || entry.ID != "first" {
		t.Fatalf("expected oldest entry, got %q ok=%v", entry.ID, ok)
	}

	if _, ok, _ := stack.Pop(ctx); ok {
		t.Fatal("expected empty stack")
	}
}

func TestUndoEmptyStack(t *testing.T) {
	manager := NewManager(NewMemoryStack(), logging.NewNop())
	rep, err := manager.Undo(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if rep.Outcome != report.OutcomeNoOp {
		t.Fatalf("unexpected outcome %q", rep.Outcome)
	}
}

func TestUndoRestoresPairs(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	final := filepath.Join(dir, "new.txt")
	origin := filepath.Join(dir, "old.txt")
	writeFile(t, final)

	stack := NewMemoryStack()
	if err := stack.Push(ctx, Entry{ID: "b1", Pairs: []Pair{{Origin: origin, Final: final}}}); err != nil {
		t.Fatal(err)
	}

	manager := NewManager(stack, logging.NewNop())
	rep, err := manager.Undo(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if rep.Outcome != report.OutcomeRestored {
		t.Fatalf("unexpected outcome %q", rep.Outcome)
	}
	if _, statErr := os.Stat(origin); statErr != nil {
		t.Fatalf("origin not restored: %v", statErr)
	}
	if _, statErr := os.Stat(final); statErr == nil {
		t.Fatal("final still present after undo")
	}
}

func TestUndoMissingFinalIsNonFatal(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	present := filepath.Join(dir, "present.txt")
	writeFile(t, present)

	stack := NewMemoryStack()
	entry := Entry{ID: "b1", Pairs: []Pair{
		{Origin: filepath.Join(dir, "gone-origin.txt"), Final: filepath.Join(dir, "gone.txt")},
		{Origin: filepath.Join(dir, "present-origin.txt"), Final: present},
	}}
	if err := stack.Push(ctx, entry); err != nil {
		t.Fatal(err)
	}

	manager := NewManager(stack, logging.NewNop())
	rep, err := manager.Undo(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if rep.Outcome != report.OutcomePartial {
		t.Fatalf("unexpected outcome %q", rep.Outcome)
	}
	if rep.Restored() != 1 {
		t.Fatalf("expected one restored entry, got %d", rep.Restored())
	}
	var sawMissing bool
	for _, e := range rep.Entries {
		if e.Status == report.EntryMissing {
			sawMissing = true
		}
	}
	if !sawMissing {
		t.Fatalf("expected a missing entry in %+v", rep.Entries)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "present-origin.txt")); statErr != nil {
		t.Fatalf("present pair not restored: %v", statErr)
	}
}

func TestUndoPopsProgressivelyOlderBatches(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	stack := NewMemoryStack()
	manager := NewManager(stack, logging.NewNop())

	oldFinal := filepath.Join(dir, "old-final.txt")
	newFinal := filepath.Join(dir, "new-final.txt")
	writeFile(t, oldFinal)
	writeFile(t, newFinal)

	_ = stack.Push(ctx, Entry{ID: "older", Pairs: []Pair{{Origin: filepath.Join(dir, "old-origin.txt"), Final: oldFinal}}})
	_ = stack.Push(ctx, Entry{ID: "newer", Pairs: []Pair{{Origin: filepath.Join(dir, "new-origin.txt"), Final: newFinal}}})

	rep, err := manager.Undo(ctx)
	if err != nil || rep.BatchID != "newer" {
		t.Fatalf("expected newest batch first, got %q err=%v", rep.BatchID, err)
	}
	rep, err = manager.Undo(ctx)
	if err != nil || rep.BatchID != "older" {
		t.Fatalf("expected older batch second, got %q err=%v", rep.BatchID, err)
	}
	rep, err = manager.Undo(ctx)
	if err != nil || rep.Outcome != report.OutcomeNoOp {
		t.Fatalf("expected empty-stack report, got %q err=%v", rep.Outcome, err)
	}
}
