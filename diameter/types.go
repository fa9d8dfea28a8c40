// Package diameter defines the types, policies and options of the weighted
// diameter extractor.
//
// Errors (sentinel):
//
//	– ErrNilMatrix             if a nil distance or predecessor matrix is passed.
//	– ErrNoReachablePair       if no pair qualifies as a farthest pair (n = 1, or
//	                           every off-diagonal pair unreachable).
//	– ErrDisconnected          under PolicyStrict, if any pair is unreachable.
//	– ErrVertexOutOfRange      if a path endpoint lies outside [1, n].
//	– ErrUnreachable           if Path is asked for an unreachable pair.
//	– ErrCorruptPredecessors   if the predecessor walk does not reach the source
//	                           within n steps (cyclic data).
//	– ErrUnknownPolicy         if ParsePolicy gets an unknown name.
package diameter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/wdiam/matrix"
)

// LegacySentinel is the historical "no edge" weight; under
// PolicySentinel unreachable pairs compare and print as this value.
const LegacySentinel int64 = 9999

// Sentinel errors returned by the extractor.
var (
	ErrNilMatrix           = errors.New("diameter: nil matrix")
	ErrNoReachablePair     = errors.New("diameter: no reachable pair of distinct vertices")
	ErrDisconnected        = errors.New("diameter: graph is disconnected")
	ErrVertexOutOfRange    = errors.New("diameter: vertex out of range")
	ErrUnreachable         = errors.New("diameter: no path between vertices")
	ErrCorruptPredecessors = errors.New("diameter: predecessor walk does not terminate")
	ErrUnknownPolicy       = errors.New("diameter: unknown policy")
)

// Policy selects how unreachable pairs take part in the farthest-pair scan.
type Policy int

const (
	// PolicyExclude ignores unreachable pairs and i == j; the true finite
	// maximum wins. No candidate ⇒ ErrNoReachablePair.
	PolicyExclude Policy = iota

	// PolicyStrict fails with ErrDisconnected as soon as an unreachable pair
	// is met; otherwise behaves like PolicyExclude.
	PolicyStrict

	// PolicySentinel keeps the 9999 output format: unreachable pairs count
	// as LegacySentinel, every cell is scanned from a running maximum of 0.
	// A disconnected graph therefore reports an unreachable "farthest" pair.
	PolicySentinel
)

var policyNames = map[Policy]string{
	PolicyExclude:  "exclude",
	PolicyStrict:   "strict",
	PolicySentinel: "sentinel",
}

// String returns the configuration name of p.
func (p Policy) String() string {
	if s, ok := policyNames[p]; ok {
		return s
	}

	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy maps a configuration name (case-insensitive) to a Policy.
func ParsePolicy(s string) (Policy, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for p, n := range policyNames {
		if n == name {
			return p, nil
		}
	}

	return PolicyExclude, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// Options configures the extractor.
type Options struct {
	Policy Policy // how unreachable pairs are treated
}

// Option represents a functional option for configuring the extractor.
type Option func(*Options)

// WithPolicy sets the disconnected-graph policy (default PolicyExclude).
func WithPolicy(p Policy) Option {
	return func(o *Options) { o.Policy = p }
}

// DefaultOptions returns the defaults: PolicyExclude.
func DefaultOptions() Options {
	return Options{Policy: PolicyExclude}
}

// Pair is the outcome of the farthest-pair scan. From and To are 1-based
// vertex IDs in scan order (row, column).
type Pair struct {
	From     int
	To       int
	Distance matrix.Distance
}

// Length returns the reported distance: the value itself, or
// LegacySentinel when the pair is unreachable.
func (p Pair) Length() int64 {
	if !p.Distance.Reachable {
		return LegacySentinel
	}

	return p.Distance.Value
}

// Result is a farthest pair together with the vertex sequence realizing it.
// Path is nil when the pair is unreachable (PolicySentinel only).
type Result struct {
	Pair
	Path []int
}

// Unreachable reports whether the reported pair has no path.
func (r *Result) Unreachable() bool {
	return !r.Distance.Reachable
}
