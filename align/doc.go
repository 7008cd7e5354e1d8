// Package align computes optimal pairwise alignments between two sequences
// of comparable symbols using dynamic programming.
//
// 🚀 What is pairwise alignment?
//
//	Given two sequences A and B, an alignment inserts gaps into both so that
//	they have equal length, then scores every column with a pluggable
//	ScoringScheme. The optimal alignment maximizes the total score.
//	Typical uses:
//	  • DNA / protein similarity
//	  • diffing token streams
//	  • fuzzy matching of identifiers and records
//
// ✨ Key features:
//   - Global (Needleman–Wunsch) and Local (Smith–Waterman) semantics
//   - full-matrix mode: alignment + score, O(n·m) time & memory
//   - linear-space mode: score only, O(min(n,m)) memory
//   - deterministic tie-break: insertion, then substitution, then deletion
//   - lazy, cached results that are invalidated on every rebind
//   - generic symbols (T) and tags (S)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqalign/align"
//
//	a := align.NewBytes(align.Global)
//	if err := a.SetScoringScheme(scheme); err != nil {
//	  // ErrInvalidArgument
//	}
//	a.LoadSequences([]byte("GATTACA"), []byte("GCATGCU"))
//
//	res, err := a.Alignment() // full matrix + traceback
//	score, err := a.Score()   // cached, or linear-space if not yet aligned
//
// Concurrency:
//
//	An Aligner serializes its own methods with a mutex, so rebinding a scheme
//	never interleaves with a running computation. There is no parallelism
//	inside one computation; align many pairs in parallel with one Aligner
//	per pair.
//
// Performance:
//
//   - Time:   O(n·m), one ScoringScheme call per operation per cell
//   - Memory: O(n·m) (Alignment) or O(min(n,m)) (Score)
package align
