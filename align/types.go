package align

import (
	"fmt"
	"strings"
)

// Method selects the alignment semantics.
//
//   - Global — Needleman–Wunsch: both sequences are aligned end to end and
//     leading/trailing unmatched symbols are scored as gaps.
//   - Local  — Smith–Waterman: only the best-scoring pair of contiguous
//     substrings is aligned; unmatched flanks cost nothing.
type Method int

const (
	// Global aligns whole sequences (Needleman–Wunsch).
	Global Method = iota

	// Local aligns the best-scoring substrings (Smith–Waterman).
	Local
)

// String returns "global" or "local".
func (m Method) String() string {
	switch m {
	case Global:
		return "global"
	case Local:
		return "local"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ScoringScheme is the capability an Aligner consumes: it scores every
// substitution, insertion and deletion the dynamic program considers.
//
// Scores may be negative (penalty) or positive (reward). Any method may fail
// with an error wrapping ErrIncompatibleScoringScheme when it cannot score a
// symbol (for example, a symbol outside its alphabet).
type ScoringScheme[T comparable] interface {
	// Substitution scores aligning a (from the first sequence) against b.
	Substitution(a, b T) (int, error)

	// Insertion scores aligning a gap in the first sequence against a.
	Insertion(a T) (int, error)

	// Deletion scores aligning a against a gap in the second sequence.
	Deletion(a T) (int, error)

	// PartialMatch reports whether differing symbols may score positively.
	// When true, equal symbols are tagged with the symbol itself rather than
	// the Match tag.
	PartialMatch() bool
}

// Tags are the values written to the tag line of an Alignment.
type Tags[S comparable] struct {
	// Match marks a column of two equal symbols.
	Match S

	// ApproximateMatch marks differing symbols whose substitution scores > 0.
	ApproximateMatch S

	// Mismatch marks differing symbols whose substitution scores ≤ 0.
	Mismatch S

	// Gap marks a column where one side is a gap.
	Gap S
}

// Alignment is the result of a full-matrix computation.
//
// Gapped1, Tags and Gapped2 always have the same length. At every column at
// most one of Gapped1[i], Gapped2[i] is the gap symbol.
type Alignment[T, S comparable] struct {
	// Gapped1 is the first sequence with gap symbols inserted.
	Gapped1 []T

	// Tags annotates every column (match, approximate, mismatch or gap).
	Tags []S

	// Gapped2 is the second sequence with gap symbols inserted.
	Gapped2 []T

	// Score is the optimal alignment score.
	Score int
}

// Len returns the number of aligned columns.
func (a *Alignment[T, S]) Len() int {
	return len(a.Gapped1)
}

// String renders the three aligned lines followed by the score.
// Byte and rune symbols are written as characters, anything else with %v
// separated by single spaces.
func (a *Alignment[T, S]) String() string {
	var sb strings.Builder
	writeLine(&sb, a.Gapped1)
	writeLine(&sb, a.Tags)
	writeLine(&sb, a.Gapped2)
	fmt.Fprintf(&sb, "Score: %d", a.Score)

	return sb.String()
}

func writeLine[E any](sb *strings.Builder, line []E) {
	for i, e := range line {
		switch v := any(e).(type) {
		case byte:
			sb.WriteByte(v)
		case rune:
			sb.WriteRune(v)
		default:
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(sb, "%v", v)
		}
	}
	sb.WriteByte('\n')
}
