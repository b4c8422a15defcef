package batch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bulkrename/internal/collision"
	"bulkrename/internal/logging"
	"bulkrename/internal/report"
	"bulkrename/internal/services"
	"bulkrename/internal/undo"
)

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}

func assertNoTemps(t *testing.T, dir string) {
	t.Helper()
	for _, name := range listDir(t, dir) {
		if strings.HasPrefix(name, ".bulkrename-") {
			t.Fatalf("residual temp file %q", name)
		}
	}
}

func readContent(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestExecuteCommitsAndPushesUndo(t *testing.T) {
	dir := t.TempDir()
	origins := writeFiles(t, dir, "b.txt", "a.txt")
	stack := undo.NewMemoryStack()
	executor := NewExecutor(stack, logging.NewNop())

	plan, err := BuildPlan(origins, []string{"0001_b.txt", "0002_a.txt"}, PlanOptions{Strategy: collision.Suffix})
	if err != nil {
		t.Fatal(err)
	}

	rep, err := executor.Execute(context.Background(), plan)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if rep.Outcome != report.OutcomeCommitted {
		t.Fatalf("unexpected outcome %q", rep.Outcome)
	}
	if rep.BatchID == "" {
		t.Fatal("expected batch id")
	}
	if plan.State() != StateCommitted {
		t.Fatalf("unexpected state %q", plan.State())
	}
	if readContent(t, filepath.Join(dir, "0001_b.txt")) != "b.txt" {
		t.Fatal("renamed file has wrong content")
	}
	assertNoTemps(t, dir)

	depth, err := stack.Depth(context.Background())
	if err != nil || depth != 1 {
		t.Fatalf("expected one undo entry, got %d (err %v)", depth, err)
	}
}

func TestExecuteSwapsNamesSafely(t *testing.T) {
	dir := t.TempDir()
	origins := writeFiles(t, dir, "a.txt", "b.txt")
	executor := NewExecutor(undo.NewMemoryStack(), logging.NewNop())

	plan, err := BuildPlan(origins, []string{"b.txt", "a.txt"}, PlanOptions{Strategy: collision.Overwrite})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := executor.Execute(context.Background(), plan); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if readContent(t, filepath.Join(dir, "b.txt")) != "a.txt" {
		t.Fatal("swap lost a.txt content")
	}
	if readContent(t, filepath.Join(dir, "a.txt")) != "b.txt" {
		t.Fatal("swap lost b.txt content")
	}
	assertNoTemps(t, dir)
}

func TestExecuteEmptyPlanIsNoOp(t *testing.T) {
	dir := t.TempDir()
	origins := writeFiles(t, dir, "a.txt")
	stack := undo.NewMemoryStack()
	executor := NewExecutor(stack, logging.NewNop())

	plan, err := BuildPlan(origins, []string{"a.txt"}, PlanOptions{Strategy: collision.Suffix})
	if err != nil {
		t.Fatal(err)
	}

	rep, err := executor.Execute(context.Background(), plan)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if rep.Outcome != report.OutcomeNoOp {
		t.Fatalf("unexpected outcome %q", rep.Outcome)
	}
	if depth, _ := stack.Depth(context.Background()); depth != 0 {
		t.Fatalf("no-op must not push undo entries, depth=%d", depth)
	}
	if names := listDir(t, dir); len(names) != 1 || names[0] != "a.txt" {
		t.Fatalf("filesystem changed: %v", names)
	}
}

func TestExecuteStageFailureRollsBack(t *testing.T) {
	dir := t.TempDir()
	origins := writeFiles(t, dir, "a.txt", "b.txt", "c.txt")
	stack := undo.NewMemoryStack()
	executor := NewExecutor(stack, logging.NewNop())

	plan, err := BuildPlan(origins, []string{"x.txt", "y.txt", "z.txt"}, PlanOptions{Strategy: collision.Suffix})
	if err != nil {
		t.Fatal(err)
	}
	// Make the second entry fail during staging.
	if err := os.Remove(origins[1]); err != nil {
		t.Fatal(err)
	}

	rep, err := executor.Execute(context.Background(), plan)
	if err == nil {
		t.Fatal("expected stage failure")
	}
	if !errors.Is(err, services.ErrIO) {
		t.Fatalf("expected io marker, got %v", err)
	}
	if rep.Outcome != report.OutcomeRolledBack {
		t.Fatalf("unexpected outcome %q", rep.Outcome)
	}
	if plan.State() != StateRolledBack {
		t.Fatalf("unexpected state %q", plan.State())
	}
	if _, statErr := os.Stat(origins[0]); statErr != nil {
		t.Fatalf("first origin not restored: %v", statErr)
	}
	if _, statErr := os.Stat(origins[2]); statErr != nil {
		t.Fatalf("third origin untouched by phase 1 should remain: %v", statErr)
	}
	assertNoTemps(t, dir)
	if depth, _ := stack.Depth(context.Background()); depth != 0 {
		t.Fatalf("failed batch must not push undo entries, depth=%d", depth)
	}
}

func TestExecuteCommitFailureRollsBack(t *testing.T) {
	dir := t.TempDir()
	origins := writeFiles(t, dir, "a.txt", "b.txt")
	executor := NewExecutor(undo.NewMemoryStack(), logging.NewNop())

	// The second target points into a directory that does not exist, so
	// staging succeeds but the commit rename fails.
	plan, err := BuildPlan(origins, []string{"x.txt", filepath.Join("missing", "y.txt")},
		PlanOptions{Strategy: collision.Overwrite})
	if err != nil {
		t.Fatal(err)
	}

	rep, err := executor.Execute(context.Background(), plan)
	if err == nil {
		t.Fatal("expected commit failure")
	}
	if rep.Outcome != report.OutcomeRolledBack {
		t.Fatalf("unexpected outcome %q", rep.Outcome)
	}
	for _, origin := range origins {
		if _, statErr := os.Stat(origin); statErr != nil {
			t.Fatalf("origin %s not restored: %v", origin, statErr)
		}
	}
	assertNoTemps(t, dir)
}

func TestExecuteRoundTripWithUndo(t *testing.T) {
	dir := t.TempDir()
	origins := writeFiles(t, dir, "one.txt", "two.txt")
	stack := undo.NewMemoryStack()
	executor := NewExecutor(stack, logging.NewNop())
	manager := undo.NewManager(stack, logging.NewNop())

	plan, err := BuildPlan(origins, []string{"renamed-1.txt", "renamed-2.txt"}, PlanOptions{Strategy: collision.Suffix})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := executor.Execute(context.Background(), plan); err != nil {
		t.Fatal(err)
	}

	rep, err := manager.Undo(context.Background())
	if err != nil {
		t.Fatalf("undo: %v", err)
	}
	if rep.Outcome != report.OutcomeRestored {
		t.Fatalf("unexpected outcome %q", rep.Outcome)
	}

	names := listDir(t, dir)
	if len(names) != 2 {
		t.Fatalf("unexpected dir contents %v", names)
	}
	for _, origin := range origins {
		if _, statErr := os.Stat(origin); statErr != nil {
			t.Fatalf("origin %s not restored: %v", origin, statErr)
		}
	}
	assertNoTemps(t, dir)
}
