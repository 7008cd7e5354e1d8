package align

import "errors"

// Sentinel errors. Every message is prefixed with "align:"; callers match
// them with errors.Is.
var (
	// ErrInvalidArgument indicates a nil scoring scheme was passed to
	// SetScoringScheme. The Aligner is left untouched.
	ErrInvalidArgument = errors.New("align: invalid argument")

	// ErrIllegalState indicates a query was made before the sequences were
	// loaded or before a scoring scheme was bound.
	ErrIllegalState = errors.New("align: illegal state")

	// ErrIncompatibleScoringScheme indicates the bound scheme cannot score a
	// symbol found in one of the sequences. ScoringScheme implementations
	// wrap it with the offending symbol; the Aligner returns it unchanged.
	ErrIncompatibleScoringScheme = errors.New("align: incompatible scoring scheme")
)
