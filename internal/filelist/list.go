package filelist

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"bulkrename/internal/services"
)

// List is an ordered collection of absolute file paths with no duplicates.
// The zero value is ready to use.
type List struct {
	paths []string
	seen  map[string]struct{}
}

// New builds a list from the given paths, applying the same checks as Add.
func New(paths ...string) (*List, error) {
	list := &List{}
	for _, path := range paths {
		if err := list.Add(path); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// Add appends one path after verifying it names an existing regular file.
// Duplicates are ignored.
func (l *List) Add(path string) error {
	absolute, err := filepath.Abs(path)
	if err != nil {
		return services.Wrap(services.ErrValidation, "filelist", "add",
			fmt.Sprintf("resolve %q", path), err)
	}

	info, err := os.Stat(absolute)
	if err != nil {
		return services.Wrap(services.ErrNotFound, "filelist", "add",
			fmt.Sprintf("stat %q", absolute), err)
	}
	if !info.Mode().IsRegular() {
		return services.Wrap(services.ErrValidation, "filelist", "add",
			fmt.Sprintf("%q is not a regular file", absolute), nil)
	}

	if l.seen == nil {
		l.seen = make(map[string]struct{})
	}
	if _, dup := l.seen[absolute]; dup {
		return nil
	}
	l.seen[absolute] = struct{}{}
	l.paths = append(l.paths, absolute)
	return nil
}

// Remove deletes the entry at index, preserving order of the rest.
func (l *List) Remove(index int) error {
	if err := l.checkIndex(index, "remove"); err != nil {
		return err
	}
	delete(l.seen, l.paths[index])
	l.paths = append(l.paths[:index], l.paths[index+1:]...)
	return nil
}

// MoveUp swaps the entry at index with its predecessor.
func (l *List) MoveUp(index int) error {
	if err := l.checkIndex(index, "move"); err != nil {
		return err
	}
	if index == 0 {
		return nil
	}
	l.paths[index-1], l.paths[index] = l.paths[index], l.paths[index-1]
	return nil
}

// MoveDown swaps the entry at index with its successor.
func (l *List) MoveDown(index int) error {
	if err := l.checkIndex(index, "move"); err != nil {
		return err
	}
	if index == len(l.paths)-1 {
		return nil
	}
	l.paths[index], l.paths[index+1] = l.paths[index+1], l.paths[index]
	return nil
}

// Clear empties the list.
func (l *List) Clear() {
	l.paths = nil
	l.seen = nil
}

// SortNatural orders entries by base name with numeric runs compared as
// numbers, so report2.txt sorts before report10.txt.
func (l *List) SortNatural() {
	collator := collate.New(language.Und, collate.Numeric)
	sort.SliceStable(l.paths, func(i, j int) bool {
		return collator.CompareString(filepath.Base(l.paths[i]), filepath.Base(l.paths[j])) < 0
	})
}

// Paths returns a copy of the ordered paths.
func (l *List) Paths() []string {
	out := make([]string, len(l.paths))
	copy(out, l.paths)
	return out
}

// Len reports the number of entries.
func (l *List) Len() int {
	return len(l.paths)
}

func (l *List) checkIndex(index int, operation string) error {
	if index < 0 || index >= len(l.paths) {
		return services.Wrap(services.ErrValidation, "filelist", operation,
			fmt.Sprintf("index %d out of range (%d files)", index, len(l.paths)), nil)
	}
	return nil
}
