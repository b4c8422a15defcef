package template

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
)

// ExpandOptions configures target generation for one batch.
type ExpandOptions struct {
	// Now is the invocation timestamp used by date blocks.
	Now time.Time
	// UseModTime makes date blocks format each file's modification time
	// instead of Now. Files that cannot be stat'ed fall back to Now.
	UseModTime bool
	// ModTime overrides modification time lookup (used in tests). When nil,
	// os.Stat is consulted.
	ModTime func(path string) (time.Time, error)
}

// GenerateTargets expands blocks into one filename per input path, preserving
// order. The original extension, when present, is reattached after the
// concatenated blocks. No name validation happens here; unusable names fail
// per entry at rename time.
func GenerateTargets(paths []string, blocks []Block, opts ExpandOptions) []string {
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}

	targets := make([]string, 0, len(paths))
	for i, path := range paths {
		base := filepath.Base(path)
		ext := filepath.Ext(base)
		stem := strings.TrimSuffix(base, ext)

		var builder strings.Builder
		for _, block := range blocks {
			switch block.Kind {
			case KindLiteral:
				builder.WriteString(block.Text)
			case KindNumber:
				builder.WriteString(formatNumber(i, block))
			case KindDate:
				builder.WriteString(strftime.Format(block.Format, opts.timestampFor(path)))
			case KindOriginal:
				builder.WriteString(stem)
			}
		}
		builder.WriteString(ext)
		targets = append(targets, builder.String())
	}
	return targets
}

// formatNumber renders start + i*step as signed decimal, left-padded with
// zeros only when the natural representation is shorter than width. The sign
// stays in front of the padding.
func formatNumber(index int, block Block) string {
	value := block.Start + int64(index)*block.Step
	natural := strconv.FormatInt(value, 10)
	if block.Width <= 0 || len(natural) >= block.Width {
		return natural
	}
	negative := strings.HasPrefix(natural, "-")
	digits := strings.TrimPrefix(natural, "-")
	pad := block.Width - len(natural)
	if negative {
		return "-" + strings.Repeat("0", pad) + digits
	}
	return strings.Repeat("0", pad) + digits
}

func (o ExpandOptions) timestampFor(path string) time.Time {
	if !o.UseModTime {
		return o.Now
	}
	modTime := o.ModTime
	if modTime == nil {
		modTime = statModTime
	}
	ts, err := modTime(path)
	if err != nil {
		return o.Now
	}
	return ts
}

func statModTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}
