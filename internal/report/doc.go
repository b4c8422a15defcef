// Package report defines the structured result types returned by engine
// operations. Apply and undo share one report shape so callers render both
// the same way.
package report
