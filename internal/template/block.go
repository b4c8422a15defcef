package template

import (
	"fmt"
	"strings"
)

// BlockKind discriminates the block variants.
type BlockKind string

const (
	KindLiteral  BlockKind = "literal"
	KindNumber   BlockKind = "number"
	KindDate     BlockKind = "date"
	KindOriginal BlockKind = "original"
)

// Block is one unit of a naming template. Blocks are immutable values; edits
// replace whole blocks through the Template editing API.
type Block struct {
	Kind BlockKind `json:"kind"`
	// Text is the verbatim content of a literal block.
	Text string `json:"text,omitempty"`
	// Width, Start, and Step configure a number block. Width is the minimum
	// rendered length; values shorter than Width are left-padded with zeros.
	Width int   `json:"width,omitempty"`
	Start int64 `json:"start,omitempty"`
	Step  int64 `json:"step,omitempty"`
	// Format is the strftime pattern of a date block.
	Format string `json:"format,omitempty"`
}

// Literal builds a block that contributes text verbatim.
func Literal(text string) Block {
	return Block{Kind: KindLiteral, Text: text}
}

// Number builds a zero-padded counter block.
func Number(width int, start, step int64) Block {
	if width < 0 {
		width = 0
	}
	return Block{Kind: KindNumber, Width: width, Start: start, Step: step}
}

// Date builds a block formatting a timestamp with a strftime pattern.
func Date(format string) Block {
	return Block{Kind: KindDate, Format: format}
}

// Original builds a block that contributes the file's stem.
func Original() Block {
	return Block{Kind: KindOriginal}
}

// Spec renders the block in the compact form accepted by ParseBlockSpec.
func (b Block) Spec() string {
	switch b.Kind {
	case KindLiteral:
		return "literal:" + b.Text
	case KindNumber:
		return fmt.Sprintf("number:%d:%d:%d", b.Width, b.Start, b.Step)
	case KindDate:
		return "date:" + b.Format
	case KindOriginal:
		return "original"
	default:
		return string(b.Kind)
	}
}

// Describe renders a human-readable label for tables and logs.
func (b Block) Describe() string {
	switch b.Kind {
	case KindLiteral:
		return fmt.Sprintf("literal %q", b.Text)
	case KindNumber:
		return fmt.Sprintf("number width=%d start=%d step=%d", b.Width, b.Start, b.Step)
	case KindDate:
		return fmt.Sprintf("date %q", b.Format)
	case KindOriginal:
		return "original stem"
	default:
		return string(b.Kind)
	}
}

// Valid reports whether the block carries a known kind.
func (b Block) Valid() bool {
	switch b.Kind {
	case KindLiteral, KindNumber, KindDate, KindOriginal:
		return true
	default:
		return false
	}
}

// DescribeBlocks joins block descriptions for display.
func DescribeBlocks(blocks []Block) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		parts = append(parts, b.Spec())
	}
	return strings.Join(parts, " + ")
}
