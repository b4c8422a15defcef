package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"bulkrename/internal/report"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
)

// renderReport prints a batch or undo report as one summary line plus one
// line per file.
func renderReport(out io.Writer, rep *report.Report) {
	colorize := shouldColorize(out)

	summary := summaryLine(rep)
	if colorize {
		if color := outcomeColor(rep.Outcome); color != "" {
			summary = color + summary + ansiReset
		}
	}
	fmt.Fprintln(out, summary)

	for _, entry := range rep.Entries {
		fmt.Fprintln(out, renderEntryLine(entry, colorize))
	}
}

func summaryLine(rep *report.Report) string {
	label := string(rep.Outcome)
	if rep.Message != "" {
		return fmt.Sprintf("[%s] %s", label, rep.Message)
	}
	return fmt.Sprintf("[%s]", label)
}

func renderEntryLine(entry report.Entry, colorize bool) string {
	var line string
	switch entry.Status {
	case report.EntryRenamed:
		line = fmt.Sprintf("  %s -> %s", filepath.Base(entry.Origin), filepath.Base(entry.Final))
	case report.EntryRestored:
		line = fmt.Sprintf("  %s -> %s", filepath.Base(entry.Final), filepath.Base(entry.Origin))
	default:
		line = fmt.Sprintf("  %s: %s", filepath.Base(entry.Origin), entry.Message)
	}
	if colorize {
		if color := statusColor(entry.Status); color != "" {
			return color + line + ansiReset
		}
	}
	return line
}

func outcomeColor(outcome report.Outcome) string {
	switch outcome {
	case report.OutcomeCommitted, report.OutcomeRestored:
		return ansiGreen
	case report.OutcomeRolledBack:
		return ansiRed
	case report.OutcomePartial:
		return ansiYellow
	default:
		return ""
	}
}

func statusColor(status report.EntryStatus) string {
	switch status {
	case report.EntryRenamed, report.EntryRestored:
		return ansiGreen
	case report.EntryFailed:
		return ansiRed
	case report.EntrySkipped, report.EntryMissing:
		return ansiYellow
	default:
		return ""
	}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
