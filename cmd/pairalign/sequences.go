package main

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/seqalign/fasta"
)

// errEmptyFASTA is returned when a FASTA file holds no record.
var errEmptyFASTA = errors.New("no FASTA record")

// readPair resolves the two positional arguments to sequences. With fromFASTA
// each argument is a file path and its first record is used.
func readPair(args []string, fromFASTA bool) (seq1, seq2 []byte, err error) {
	if !fromFASTA {
		return []byte(args[0]), []byte(args[1]), nil
	}
	if seq1, err = firstRecord(args[0]); err != nil {
		return nil, nil, err
	}
	if seq2, err = firstRecord(args[1]); err != nil {
		return nil, nil, err
	}

	return seq1, seq2, nil
}

func firstRecord(path string) ([]byte, error) {
	recs, err := fasta.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("%s: %w", path, errEmptyFASTA)
	}

	return recs[0].Sequence, nil
}
