package collision

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"bulkrename/internal/services"
)

// Strategy names the policy for resolving a conflict with an existing file.
type Strategy string

const (
	// Overwrite keeps the desired path regardless of existence.
	Overwrite Strategy = "overwrite"
	// Skip drops the entry when the desired path is taken by another file.
	Skip Strategy = "skip"
	// Suffix probes " (1)", " (2)", … before the extension until a free name is found.
	Suffix Strategy = "suffix"
)

// DefaultMaxProbes bounds suffix probing when the resolver is zero-valued.
const DefaultMaxProbes = 10000

// ParseStrategy converts a user-supplied string into a Strategy.
func ParseStrategy(value string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(value))) {
	case Overwrite:
		return Overwrite, nil
	case Skip:
		return Skip, nil
	case Suffix:
		return Suffix, nil
	default:
		return "", services.Wrap(services.ErrValidation, "collision", "parse strategy",
			fmt.Sprintf("unknown strategy %q (expected overwrite, skip, or suffix)", value), nil)
	}
}

// Resolver decides final paths for desired rename targets. Exists may be
// replaced to make the resolver aware of names claimed earlier in a batch;
// when nil the filesystem is consulted directly.
type Resolver struct {
	Exists    func(path string) bool
	MaxProbes int
}

// Resolve maps a desired path to the final path the batch should claim.
// The boolean is false when the entry must be dropped (skip strategy).
// Callers treat final == origin as a no-op and filter the entry out.
func (r Resolver) Resolve(desired, origin string, strategy Strategy) (string, bool, error) {
	exists := r.Exists
	if exists == nil {
		exists = pathExists
	}

	if !exists(desired) || strategy == Overwrite {
		return desired, true, nil
	}

	switch strategy {
	case Skip:
		if desired != origin {
			return "", false, nil
		}
		return desired, true, nil
	case Suffix:
		return r.probe(desired, exists)
	default:
		return "", false, services.Wrap(services.ErrValidation, "collision", "resolve",
			fmt.Sprintf("unknown strategy %q", strategy), nil)
	}
}

// probe inserts " (n)" immediately before the extension, incrementing n until
// a free candidate turns up. Numbers are never reused within a run.
func (r Resolver) probe(desired string, exists func(string) bool) (string, bool, error) {
	maxProbes := r.MaxProbes
	if maxProbes <= 0 {
		maxProbes = DefaultMaxProbes
	}

	dir := filepath.Dir(desired)
	ext := filepath.Ext(desired)
	stem := strings.TrimSuffix(filepath.Base(desired), ext)

	for n := 1; n <= maxProbes; n++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s (%d)%s", stem, n, ext))
		if !exists(candidate) {
			return candidate, true, nil
		}
	}
	return "", false, services.Wrap(services.ErrCollisionUnresolved, "collision", "probe",
		fmt.Sprintf("no free name for %q after %d probes", desired, maxProbes), nil)
}

func pathExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
