// Package align_test provides scoring schemes and fixtures shared across the
// *_test.go files of this package.
package align_test

import (
	"fmt"
	"sync/atomic"

	"github.com/katalvlaran/seqalign/align"
)

// gapInt is the gap symbol used by integer alignments in tests; no test
// sequence contains it.
const gapInt = -1

// stringTags uses two-character tags so tags never collide with symbols.
var stringTags = align.Tags[string]{
	Match:            "==",
	ApproximateMatch: "~~",
	Mismatch:         "!=",
	Gap:              "__",
}

// unitScheme scores equal symbols with match, different ones with mismatch
// and every gap with gap.
type unitScheme struct {
	match, mismatch, gap int
}

var _ align.ScoringScheme[int] = unitScheme{}

func (s unitScheme) Substitution(a, b int) (int, error) {
	if a == b {
		return s.match, nil
	}

	return s.mismatch, nil
}
func (s unitScheme) Insertion(int) (int, error) { return s.gap, nil }
func (s unitScheme) Deletion(int) (int, error)  { return s.gap, nil }
func (s unitScheme) PartialMatch() bool         { return false }

// nearScheme rewards neighbouring integers, so it supports partial matches.
type nearScheme struct{}

func (nearScheme) Substitution(a, b int) (int, error) {
	switch a - b {
	case 0:
		return 2, nil
	case 1, -1:
		return 1, nil
	default:
		return -1, nil
	}
}
func (nearScheme) Insertion(int) (int, error) { return -2, nil }
func (nearScheme) Deletion(int) (int, error)  { return -2, nil }
func (nearScheme) PartialMatch() bool         { return true }

// skewScheme has asymmetric gap costs so that swapping the axes of the
// linear-space sweep would change the result if it were done wrong.
type skewScheme struct{}

func (skewScheme) Substitution(a, b int) (int, error) {
	if a == b {
		return 3, nil
	}

	return -(a + b) % 4, nil
}
func (skewScheme) Insertion(a int) (int, error) { return -1 - a%3, nil }
func (skewScheme) Deletion(a int) (int, error)  { return -2 + a%2, nil }
func (skewScheme) PartialMatch() bool           { return false }

// strictScheme wraps unitScheme but refuses to score the symbol bad.
type strictScheme struct {
	unitScheme
	bad int
}

func (s strictScheme) check(a int) error {
	if a == s.bad {
		return fmt.Errorf("%w: symbol %d", align.ErrIncompatibleScoringScheme, a)
	}

	return nil
}

func (s strictScheme) Substitution(a, b int) (int, error) {
	if err := s.check(a); err != nil {
		return 0, err
	}
	if err := s.check(b); err != nil {
		return 0, err
	}

	return s.unitScheme.Substitution(a, b)
}

func (s strictScheme) Insertion(a int) (int, error) {
	if err := s.check(a); err != nil {
		return 0, err
	}

	return s.gap, nil
}

func (s strictScheme) Deletion(a int) (int, error) {
	if err := s.check(a); err != nil {
		return 0, err
	}

	return s.gap, nil
}

// countingScheme counts every call, to observe whether a result came from
// the cache.
type countingScheme struct {
	unitScheme
	calls atomic.Int64
}

func (s *countingScheme) Substitution(a, b int) (int, error) {
	s.calls.Add(1)
	return s.unitScheme.Substitution(a, b)
}

func (s *countingScheme) Insertion(a int) (int, error) {
	s.calls.Add(1)
	return s.unitScheme.Insertion(a)
}

func (s *countingScheme) Deletion(a int) (int, error) {
	s.calls.Add(1)
	return s.unitScheme.Deletion(a)
}

// newIntAligner returns an int/string Aligner with the test presentation,
// bound to scheme and loaded with a and b.
func newIntAligner(method align.Method, scheme align.ScoringScheme[int], a, b []int) (*align.Aligner[int, string], error) {
	al := align.New[int, string](method)
	al.SetTags(stringTags)
	al.SetGap(gapInt)
	if err := al.SetScoringScheme(scheme); err != nil {
		return nil, err
	}
	al.LoadSequences(a, b)

	return al, nil
}

// stripGaps returns s without gap symbols.
func stripGaps(s []int) []int {
	out := make([]int, 0, len(s))
	for _, v := range s {
		if v != gapInt {
			out = append(out, v)
		}
	}

	return out
}

// isContiguous reports whether sub occurs as a contiguous run inside s.
func isContiguous(s, sub []int) bool {
	if len(sub) == 0 {
		return true
	}
	for i := 0; i+len(sub) <= len(s); i++ {
		match := true
		for j := range sub {
			if s[i+j] != sub[j] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}

	return false
}
