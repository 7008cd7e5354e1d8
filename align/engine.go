package align

import (
	"fmt"
	"reflect"
	"slices"
	"sync"
)

// cacheState is the tri-state result cache of an Aligner.
type cacheState int

const (
	// cacheEmpty: nothing computed since the last rebind.
	cacheEmpty cacheState = iota

	// cacheScore: only the score is known (linear-space run, or an alignment
	// dropped after a presentation change).
	cacheScore

	// cacheAlignment: the alignment and its score are known.
	cacheAlignment
)

// Aligner binds a scoring scheme and a pair of sequences, then lazily
// computes and caches the optimal alignment or score under its Method.
//
// T is the symbol type of the sequences, S the type of the tag line.
//
// All methods are serialized by an internal mutex: a SetScoringScheme issued
// while another goroutine is computing waits for the computation to finish
// and then invalidates its result.
type Aligner[T, S comparable] struct {
	mu sync.Mutex

	method Method
	scheme ScoringScheme[T]

	seq1, seq2 []T
	loaded     bool

	useMatchTag bool
	tags        Tags[S]
	gap         T
	symbolTag   func(T) S

	state     cacheState
	alignment *Alignment[T, S]
	score     int
}

// New returns an Aligner for method with zero-valued tags and gap symbol.
// Use SetTags, SetGap and SetSymbolTag to configure the output symbols.
func New[T, S comparable](method Method) *Aligner[T, S] {
	return &Aligner[T, S]{method: method, useMatchTag: true}
}

// Default presentation of byte alignments.
const (
	DefaultGap                 byte = '-'
	DefaultMatchTag            byte = '|'
	DefaultApproximateMatchTag byte = '+'
	DefaultMismatchTag         byte = ' '
	DefaultGapTag              byte = ' '
)

// NewBytes returns a byte Aligner using the default presentation: '-' for
// gaps, '|' for matches, '+' for approximate matches, blanks otherwise, and
// the symbol itself as the tag of equal symbols under partial-match schemes.
//
// Example:
//
//	GAT-TACA
//	| | || |
//	GCTATA-A
func NewBytes(method Method) *Aligner[byte, byte] {
	a := New[byte, byte](method)
	a.gap = DefaultGap
	a.tags = Tags[byte]{
		Match:            DefaultMatchTag,
		ApproximateMatch: DefaultApproximateMatchTag,
		Mismatch:         DefaultMismatchTag,
		Gap:              DefaultGapTag,
	}
	a.symbolTag = func(b byte) byte { return b }

	return a
}

// Method reports the alignment semantics of a.
func (a *Aligner[T, S]) Method() Method {
	return a.method
}

// SetScoringScheme binds s and invalidates any cached result.
// A nil s, including a typed nil pointer, returns ErrInvalidArgument and
// leaves a unchanged.
func (a *Aligner[T, S]) SetScoringScheme(s ScoringScheme[T]) error {
	if isNil(s) {
		return fmt.Errorf("%w: nil scoring scheme", ErrInvalidArgument)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.scheme = s
	a.useMatchTag = !s.PartialMatch()
	a.invalidate()

	return nil
}

// LoadSequences binds copies of seq1 and seq2 and invalidates any cached
// result. Either sequence may be empty.
func (a *Aligner[T, S]) LoadSequences(seq1, seq2 []T) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.seq1 = slices.Clone(seq1)
	a.seq2 = slices.Clone(seq2)
	a.loaded = true
	a.invalidate()
}

// SetTags replaces the tag values. A cached alignment is dropped; its score
// stays cached.
func (a *Aligner[T, S]) SetTags(tags Tags[S]) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.tags = tags
	a.dropAlignment()
}

// Tags returns the current tag values.
func (a *Aligner[T, S]) Tags() Tags[S] {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.tags
}

// SetGap replaces the gap symbol. A cached alignment is dropped; its score
// stays cached.
func (a *Aligner[T, S]) SetGap(gap T) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.gap = gap
	a.dropAlignment()
}

// Gap returns the current gap symbol.
func (a *Aligner[T, S]) Gap() T {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.gap
}

// SetSymbolTag sets the conversion used to tag equal symbols when the bound
// scheme supports partial matches. With a nil f such columns get the Match
// tag. A cached alignment is dropped; its score stays cached.
func (a *Aligner[T, S]) SetSymbolTag(f func(T) S) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.symbolTag = f
	a.dropAlignment()
}

// Reset drops any cached result without rebinding.
func (a *Aligner[T, S]) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.invalidate()
}

// Alignment returns the optimal alignment, computing it with the full DP
// matrix on first use. Repeated calls return the same cached pointer until
// the next rebind; callers must not mutate it.
//
// Errors:
//   - ErrIllegalState              — sequences not loaded or no scheme bound.
//   - ErrIncompatibleScoringScheme — returned unchanged from the scheme;
//     nothing is cached.
func (a *Aligner[T, S]) Alignment() (*Alignment[T, S], error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state == cacheAlignment {
		return a.alignment, nil
	}
	p, err := a.problem()
	if err != nil {
		return nil, err
	}

	var res *Alignment[T, S]
	switch a.method {
	case Local:
		res, err = p.localAlignment()
	default:
		res, err = p.globalAlignment()
	}
	if err != nil {
		return nil, err
	}

	a.alignment, a.score, a.state = res, res.Score, cacheAlignment

	return res, nil
}

// Score returns the optimal score. A score cached by Alignment is reused;
// otherwise it is computed in linear space and cached on its own.
//
// Errors are the same as for Alignment.
func (a *Aligner[T, S]) Score() (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state != cacheEmpty {
		return a.score, nil
	}
	p, err := a.problem()
	if err != nil {
		return 0, err
	}

	var score int
	switch a.method {
	case Local:
		score, err = p.localScore()
	default:
		score, err = p.globalScore()
	}
	if err != nil {
		return 0, err
	}

	a.score, a.state = score, cacheScore

	return score, nil
}

// problem snapshots the bound state. Caller holds a.mu.
func (a *Aligner[T, S]) problem() (*problem[T, S], error) {
	if !a.loaded {
		return nil, fmt.Errorf("%w: sequences have not been loaded", ErrIllegalState)
	}
	if a.scheme == nil {
		return nil, fmt.Errorf("%w: scoring scheme has not been set", ErrIllegalState)
	}

	return &problem[T, S]{
		seq1:        a.seq1,
		seq2:        a.seq2,
		scheme:      a.scheme,
		tags:        a.tags,
		gap:         a.gap,
		useMatchTag: a.useMatchTag,
		symbolTag:   a.symbolTag,
	}, nil
}

func (a *Aligner[T, S]) invalidate() {
	a.state, a.alignment, a.score = cacheEmpty, nil, 0
}

func (a *Aligner[T, S]) dropAlignment() {
	if a.state == cacheAlignment {
		a.state, a.alignment = cacheScore, nil
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
