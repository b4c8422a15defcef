package template

import (
	"errors"
	"testing"

	"bulkrename/internal/collision"
	"bulkrename/internal/services"
)

func TestDefaultTemplateShape(t *testing.T) {
	tpl := Default()
	if len(tpl.Blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(tpl.Blocks))
	}
	if tpl.Blocks[0].Kind != KindNumber || tpl.Blocks[1].Kind != KindLiteral || tpl.Blocks[2].Kind != KindOriginal {
		t.Fatalf("unexpected block order: %s", DescribeBlocks(tpl.Blocks))
	}
	if tpl.Collision != collision.Suffix {
		t.Fatalf("unexpected strategy %q", tpl.Collision)
	}
}

func TestValidateRequiresName(t *testing.T) {
	tpl := Default()
	err := tpl.Validate()
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error for empty name, got %v", err)
	}
	tpl.Name = "photos"
	if err := tpl.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRejectsUnknownBlock(t *testing.T) {
	tpl := Template{Name: "x", Blocks: []Block{{Kind: "glob"}}, Collision: collision.Skip}
	if err := tpl.Validate(); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCloneDoesNotAliasBlocks(t *testing.T) {
	tpl := Default()
	cp := tpl.Clone()
	if err := cp.ReplaceBlockAt(1, Literal("-")); err != nil {
		t.Fatal(err)
	}
	if tpl.Blocks[1].Text != "_" {
		t.Fatal("edit leaked into the source template")
	}
}

func TestEditOperations(t *testing.T) {
	tpl := Default()

	tpl.AppendBlock(Date("%Y"))
	if len(tpl.Blocks) != 4 {
		t.Fatalf("expected 4 blocks, got %d", len(tpl.Blocks))
	}

	if err := tpl.MoveBlockUp(3); err != nil {
		t.Fatal(err)
	}
	if tpl.Blocks[2].Kind != KindDate {
		t.Fatalf("expected date block at index 2, got %s", tpl.Blocks[2].Kind)
	}

	if err := tpl.MoveBlockDown(2); err != nil {
		t.Fatal(err)
	}
	if tpl.Blocks[3].Kind != KindDate {
		t.Fatalf("expected date block back at tail, got %s", tpl.Blocks[3].Kind)
	}

	if err := tpl.RemoveBlockAt(3); err != nil {
		t.Fatal(err)
	}
	if len(tpl.Blocks) != 3 {
		t.Fatalf("expected 3 blocks after removal, got %d", len(tpl.Blocks))
	}

	if err := tpl.MoveBlockUp(0); err != nil {
		t.Fatal(err)
	}
	if err := tpl.MoveBlockDown(2); err != nil {
		t.Fatal(err)
	}
}

func TestEditOperationsRejectBadIndex(t *testing.T) {
	tpl := Default()
	for _, err := range []error{
		tpl.ReplaceBlockAt(-1, Original()),
		tpl.ReplaceBlockAt(3, Original()),
		tpl.RemoveBlockAt(9),
		tpl.MoveBlockUp(-2),
		tpl.MoveBlockDown(3),
	} {
		if !errors.Is(err, services.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	}
}
