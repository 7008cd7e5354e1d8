// Package fasta reads FASTA formatted sequence files.
//
// A record starts with a '>' header line; the following lines up to the next
// header are concatenated into its sequence with surrounding whitespace
// removed. Blank lines and ';' comment lines are ignored.
package fasta

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrNoHeader indicates sequence data before the first '>' header.
var ErrNoHeader = errors.New("fasta: sequence data before first header")

// maxLine bounds a single input line (16MB); long unwrapped genomes fit.
const maxLine = 16 << 20

// Record is a single FASTA entry.
type Record struct {
	// Header is the text after '>', trimmed.
	Header string

	// Sequence is the concatenated residue data.
	Sequence []byte
}

// ID returns the first word of the header.
func (r Record) ID() string {
	if i := strings.IndexAny(r.Header, " \t"); i >= 0 {
		return r.Header[:i]
	}

	return r.Header
}

// Read parses every record from r. Empty input yields no records.
func Read(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	var (
		records []Record
		cur     *Record
		line    int
	)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		switch {
		case text == "" || text[0] == ';':
			continue
		case text[0] == '>':
			records = append(records, Record{Header: strings.TrimSpace(text[1:])})
			cur = &records[len(records)-1]
		case cur == nil:
			return nil, fmt.Errorf("line %d: %w", line, ErrNoHeader)
		default:
			cur.Sequence = append(cur.Sequence, text...)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// ReadFile parses the FASTA file at path.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}
