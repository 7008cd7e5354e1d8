package scoring

import "github.com/katalvlaran/seqalign/align"

// Basic scores equal symbols with Match, different symbols with Mismatch and
// every gap with Gap. It never fails and does not support partial matches.
//
// Equal overrides symbol equality (for example FoldASCII); nil means ==.
type Basic[T comparable] struct {
	Match    int
	Mismatch int
	Gap      int
	Equal    func(a, b T) bool
}

var _ align.ScoringScheme[byte] = Basic[byte]{}

// NewBasic returns a Basic scheme using == for equality.
func NewBasic[T comparable](match, mismatch, gap int) Basic[T] {
	return Basic[T]{Match: match, Mismatch: mismatch, Gap: gap}
}

// Substitution returns Match when a equals b, Mismatch otherwise.
func (s Basic[T]) Substitution(a, b T) (int, error) {
	if s.equal(a, b) {
		return s.Match, nil
	}

	return s.Mismatch, nil
}

// Insertion returns Gap.
func (s Basic[T]) Insertion(T) (int, error) { return s.Gap, nil }

// Deletion returns Gap.
func (s Basic[T]) Deletion(T) (int, error) { return s.Gap, nil }

// PartialMatch is always false.
func (s Basic[T]) PartialMatch() bool { return false }

func (s Basic[T]) equal(a, b T) bool {
	if s.Equal != nil {
		return s.Equal(a, b)
	}

	return a == b
}

// FoldASCII compares two bytes ignoring ASCII case.
func FoldASCII(a, b byte) bool {
	return toUpper(a) == toUpper(b)
}

func toUpper(b byte) byte {
	if 'a' <= b && b <= 'z' {
		return b - 'a' + 'A'
	}

	return b
}
