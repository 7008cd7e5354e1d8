package scoring

import "errors"

var (
	// ErrMalformedMatrix indicates substitution-matrix text that cannot be
	// parsed (missing header, ragged rows, misordered labels, no '*' symbol).
	ErrMalformedMatrix = errors.New("scoring: malformed substitution matrix")

	// ErrInvalidConfig indicates a scoring configuration that fails validation.
	ErrInvalidConfig = errors.New("scoring: invalid configuration")
)
