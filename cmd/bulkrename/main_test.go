package main

import (
	"path/filepath"
	"testing"
)

func TestPreviewDoesNotTouchFiles(t *testing.T) {
	env := setupCLITestEnv(t)
	paths := env.seedFiles(t, "b.txt", "a.txt")

	out, _, err := runCLI(t, env, "preview", paths[0], paths[1])
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	requireContains(t, out, "0001_b.txt")
	requireContains(t, out, "0002_a.txt")
	requireContains(t, out, "2 to rename")

	for _, path := range paths {
		requireExists(t, path)
	}
}

func TestApplyThenUndoRoundTrip(t *testing.T) {
	env := setupCLITestEnv(t)
	paths := env.seedFiles(t, "x.txt", "y.txt")

	out, _, err := runCLI(t, env, "apply", paths[0], paths[1])
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	requireContains(t, out, "renamed 2 files")
	requireExists(t, filepath.Join(env.workDir, "0001_x.txt"))
	requireExists(t, filepath.Join(env.workDir, "0002_y.txt"))
	requireMissing(t, paths[0])
	requireMissing(t, paths[1])

	out, _, err = runCLI(t, env, "history")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	requireContains(t, out, "1 batches can be undone")

	out, _, err = runCLI(t, env, "undo")
	if err != nil {
		t.Fatalf("undo: %v", err)
	}
	requireContains(t, out, "restored 2 files")
	requireExists(t, paths[0])
	requireExists(t, paths[1])

	out, _, err = runCLI(t, env, "undo")
	if err != nil {
		t.Fatalf("second undo: %v", err)
	}
	requireContains(t, out, "nothing to undo")
}

func TestApplyWithBlocksAndSort(t *testing.T) {
	env := setupCLITestEnv(t)
	paths := env.seedFiles(t, "file10.txt", "file2.txt")

	_, _, err := runCLI(t, env, "apply", "--sort",
		"--block", "literal:img-",
		"--block", "number:2:1:1",
		paths[0], paths[1])
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	// Natural sort puts file2 first, so it takes the lower number.
	requireExists(t, filepath.Join(env.workDir, "img-01.txt"))
	requireExists(t, filepath.Join(env.workDir, "img-02.txt"))
}

func TestApplySkipsUnchangedNames(t *testing.T) {
	env := setupCLITestEnv(t)
	paths := env.seedFiles(t, "same.txt")

	out, _, err := runCLI(t, env, "apply", "--block", "original", paths[0])
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	requireContains(t, out, "nothing to do")
	requireExists(t, paths[0])

	// No undo entry is recorded for a no-op batch.
	out, _, err = runCLI(t, env, "history")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	requireContains(t, out, "Undo history is empty")
}

func TestTemplateLifecycle(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "template", "save", "dated",
		"--block", "date:%Y-%m-%d",
		"--block", "literal:_",
		"--block", "original",
		"--collision", "skip")
	if err != nil {
		t.Fatalf("template save: %v", err)
	}
	requireContains(t, out, `Saved template "dated"`)

	out, _, err = runCLI(t, env, "template", "list")
	if err != nil {
		t.Fatalf("template list: %v", err)
	}
	requireContains(t, out, "dated")
	requireContains(t, out, "skip")

	out, _, err = runCLI(t, env, "template", "show", "dated")
	if err != nil {
		t.Fatalf("template show: %v", err)
	}
	requireContains(t, out, "Collision strategy: skip")

	if _, _, err := runCLI(t, env, "template", "delete", "dated"); err != nil {
		t.Fatalf("template delete: %v", err)
	}
	if _, _, err := runCLI(t, env, "template", "show", "dated"); err == nil {
		t.Fatal("expected show of deleted template to fail")
	}
}

func TestApplyWithSavedTemplate(t *testing.T) {
	env := setupCLITestEnv(t)
	paths := env.seedFiles(t, "note.txt")

	_, _, err := runCLI(t, env, "template", "save", "numbered",
		"--block", "number:3:7:1",
		"--block", "literal:-",
		"--block", "original")
	if err != nil {
		t.Fatalf("template save: %v", err)
	}

	if _, _, err := runCLI(t, env, "apply", "--template", "numbered", paths[0]); err != nil {
		t.Fatalf("apply: %v", err)
	}
	requireExists(t, filepath.Join(env.workDir, "007-note.txt"))
}

func TestApplySanitizesTargets(t *testing.T) {
	env := setupCLITestEnv(t)
	paths := env.seedFiles(t, "clip.txt")

	_, _, err := runCLI(t, env, "apply", "--sanitize",
		"--block", "literal:12:30/take",
		paths[0])
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	requireExists(t, filepath.Join(env.workDir, "12-30-take.txt"))
}

func TestPreviewJSON(t *testing.T) {
	env := setupCLITestEnv(t)
	paths := env.seedFiles(t, "a.txt")

	out, _, err := runCLI(t, env, "preview", "--json", paths[0])
	if err != nil {
		t.Fatalf("preview --json: %v", err)
	}
	requireContains(t, out, `"target"`)
	requireContains(t, out, "0001_a.txt")
}
