package filelist_test

import (
	"errors"
	"path/filepath"
	"testing"

	"bulkrename/internal/filelist"
	"bulkrename/internal/services"
	"bulkrename/internal/testsupport"
)

func TestAddRejectsMissingAndIrregular(t *testing.T) {
	dir := t.TempDir()
	list := &filelist.List{}

	if err := list.Add(filepath.Join(dir, "ghost.txt")); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("missing file err = %v, want services.ErrNotFound", err)
	}
	if err := list.Add(dir); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("directory err = %v, want services.ErrValidation", err)
	}
	if list.Len() != 0 {
		t.Fatalf("len = %d, want 0", list.Len())
	}
}

func TestAddDeduplicates(t *testing.T) {
	dir := t.TempDir()
	paths := testsupport.SeedFiles(t, dir, "a.txt")
	list := &filelist.List{}

	for i := 0; i < 3; i++ {
		if err := list.Add(paths[0]); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	if list.Len() != 1 {
		t.Fatalf("len = %d, want 1 after duplicate adds", list.Len())
	}
}

func TestReorder(t *testing.T) {
	dir := t.TempDir()
	paths := testsupport.SeedFiles(t, dir, "a.txt", "b.txt", "c.txt")
	list, err := filelist.New(paths...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := list.MoveDown(0); err != nil {
		t.Fatalf("MoveDown: %v", err)
	}
	if err := list.MoveUp(2); err != nil {
		t.Fatalf("MoveUp: %v", err)
	}
	got := list.Paths()
	want := []string{paths[1], paths[2], paths[0]}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", basenames(got), basenames(want))
		}
	}

	if err := list.MoveUp(0); err != nil {
		t.Fatalf("MoveUp at top: %v", err)
	}
	if err := list.MoveDown(2); err != nil {
		t.Fatalf("MoveDown at bottom: %v", err)
	}
	if err := list.MoveUp(7); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("out-of-range err = %v, want services.ErrValidation", err)
	}
}

func TestRemoveAllowsReAdd(t *testing.T) {
	dir := t.TempDir()
	paths := testsupport.SeedFiles(t, dir, "a.txt", "b.txt")
	list, err := filelist.New(paths...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := list.Remove(0); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if list.Len() != 1 {
		t.Fatalf("len = %d, want 1", list.Len())
	}
	if err := list.Add(paths[0]); err != nil {
		t.Fatalf("re-Add: %v", err)
	}
	if list.Len() != 2 {
		t.Fatalf("len = %d, want 2 after re-add", list.Len())
	}
}

func TestSortNatural(t *testing.T) {
	dir := t.TempDir()
	paths := testsupport.SeedFiles(t, dir, "file10.txt", "file2.txt", "file1.txt")
	list, err := filelist.New(paths...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	list.SortNatural()
	got := basenames(list.Paths())
	want := []string{"file1.txt", "file2.txt", "file10.txt"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func basenames(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, path := range paths {
		out = append(out, filepath.Base(path))
	}
	return out
}
