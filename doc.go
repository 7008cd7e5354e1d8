// Package seqalign is a small toolkit for pairwise sequence alignment:
// Needleman–Wunsch (global) and Smith–Waterman (local) over any comparable
// symbol type, with pluggable scoring schemes.
//
// 🚀 What is inside?
//
//	A generic, thread-safe alignment engine plus the pieces around it:
//		• Global and local alignment with deterministic traceback
//		• Linear-space score computation when only the similarity is needed
//		• Scoring schemes: match/mismatch/gap and substitution matrices (BLOSUM62)
//		• FASTA input and concurrent batch alignment
//
// ✨ Why choose seqalign?
//
//   - Generic – align bytes, runes, ints or your own comparable tokens
//   - Predictable – ties always resolve the same way, results are cached
//   - Small – a handful of well-known dependencies, no cgo
//
// Packages:
//
//	align/         — the Aligner engine, Alignment result and ScoringScheme contract
//	scoring/       — Basic and Matrix schemes, YAML scheme configuration
//	fasta/         — FASTA reader
//	batch/         — bounded-concurrency alignment of many pairs
//	cmd/pairalign/ — command-line front end
//
// Quick example:
//
//	G-ATTACA
//	| | | ||
//	GCA-TGCA
//	Score: 2
//
//	go get github.com/katalvlaran/seqalign/align
package seqalign
