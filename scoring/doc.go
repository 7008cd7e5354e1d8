// Package scoring provides ready-made align.ScoringScheme implementations.
//
//   - Basic[T]  — match / mismatch / gap constants for any comparable symbol.
//   - Matrix    — byte substitution matrix in NCBI text format (BLOSUM62 is
//     embedded), with partial-match support and a '*' gap row/column.
//   - Config    — YAML description of either scheme, validated on load.
//
// Schemes are immutable after construction and safe for concurrent use.
package scoring
