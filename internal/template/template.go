package template

import (
	"fmt"
	"strings"

	"bulkrename/internal/collision"
	"bulkrename/internal/services"
)

// Template is a named, ordered block sequence plus rename policy. Templates
// are read-only during a rename pass; the editing methods below are the only
// mutation surface.
type Template struct {
	Name            string             `json:"name"`
	Blocks          []Block            `json:"blocks"`
	Collision       collision.Strategy `json:"collision"`
	UseMTimeForDate bool               `json:"use_mtime_for_date"`
}

// Default returns the starter template: a four-digit counter, an underscore,
// and the original stem, with suffix collision handling.
func Default() Template {
	return Template{
		Blocks: []Block{
			Number(4, 1, 1),
			Literal("_"),
			Original(),
		},
		Collision:       collision.Suffix,
		UseMTimeForDate: true,
	}
}

// Clone returns a deep copy so edits never alias a stored template.
func (t Template) Clone() Template {
	cp := t
	cp.Blocks = make([]Block, len(t.Blocks))
	copy(cp.Blocks, t.Blocks)
	return cp
}

// Validate checks the template shape before persistence or execution.
func (t Template) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return services.Wrap(services.ErrValidation, "template", "validate", "template name is required", nil)
	}
	for i, block := range t.Blocks {
		if !block.Valid() {
			return services.Wrap(services.ErrValidation, "template", "validate",
				fmt.Sprintf("block %d has unknown kind %q", i, block.Kind), nil)
		}
	}
	if _, err := collision.ParseStrategy(string(t.Collision)); err != nil {
		return err
	}
	return nil
}

// AppendBlock adds a block at the end of the sequence.
func (t *Template) AppendBlock(block Block) {
	t.Blocks = append(t.Blocks, block)
}

// ReplaceBlockAt swaps the block at index for a new value.
func (t *Template) ReplaceBlockAt(index int, block Block) error {
	if err := t.checkIndex(index, "replace block"); err != nil {
		return err
	}
	t.Blocks[index] = block
	return nil
}

// RemoveBlockAt deletes the block at index, preserving order.
func (t *Template) RemoveBlockAt(index int) error {
	if err := t.checkIndex(index, "remove block"); err != nil {
		return err
	}
	t.Blocks = append(t.Blocks[:index], t.Blocks[index+1:]...)
	return nil
}

// MoveBlockUp swaps the block at index with its predecessor.
func (t *Template) MoveBlockUp(index int) error {
	if err := t.checkIndex(index, "move block"); err != nil {
		return err
	}
	if index == 0 {
		return nil
	}
	t.Blocks[index-1], t.Blocks[index] = t.Blocks[index], t.Blocks[index-1]
	return nil
}

// MoveBlockDown swaps the block at index with its successor.
func (t *Template) MoveBlockDown(index int) error {
	if err := t.checkIndex(index, "move block"); err != nil {
		return err
	}
	if index == len(t.Blocks)-1 {
		return nil
	}
	t.Blocks[index], t.Blocks[index+1] = t.Blocks[index+1], t.Blocks[index]
	return nil
}

func (t *Template) checkIndex(index int, operation string) error {
	if index < 0 || index >= len(t.Blocks) {
		return services.Wrap(services.ErrValidation, "template", operation,
			fmt.Sprintf("index %d out of range (%d blocks)", index, len(t.Blocks)), nil)
	}
	return nil
}
