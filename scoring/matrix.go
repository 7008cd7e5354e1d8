package scoring

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/seqalign/align"
)

// GapSymbol labels the row and column of a Matrix holding gap scores.
const GapSymbol = '*'

//go:embed data/blosum62.txt
var blosum62 []byte

// Matrix is a substitution matrix over byte symbols.
//
// Text format (NCBI):
//
//	# comment lines start with '#'
//	   A  R  N  ...  *
//	A  4 -1 -2  ... -4
//	R -1  5  0  ... -4
//	...
//	* -4 -4 -4  ...  1
//
// The header lists the alphabet; each following line is labelled with the
// symbol of the same position. The '*' symbol is mandatory: Insertion(a) is
// read from row '*' column a, Deletion(a) from row a column '*'.
//
// A Matrix supports partial matches: different symbols may score > 0.
type Matrix struct {
	symbols []byte
	index   [256]int
	scores  [][]int
	gap     int
}

var _ align.ScoringScheme[byte] = (*Matrix)(nil)

// ParseMatrix reads a matrix in NCBI text format. Unless caseSensitive is
// set, letters are looked up regardless of case.
func ParseMatrix(r io.Reader, caseSensitive bool) (*Matrix, error) {
	m := &Matrix{gap: -1}
	for i := range m.index {
		m.index[i] = -1
	}

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || text[0] == '#' {
			continue
		}
		fields := strings.Fields(text)

		if m.symbols == nil {
			if err := m.setHeader(fields, caseSensitive); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			continue
		}
		if err := m.addRow(fields); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	switch {
	case m.symbols == nil:
		return nil, fmt.Errorf("%w: no header", ErrMalformedMatrix)
	case len(m.scores) != len(m.symbols):
		return nil, fmt.Errorf("%w: %d rows for %d symbols", ErrMalformedMatrix, len(m.scores), len(m.symbols))
	case m.gap < 0:
		return nil, fmt.Errorf("%w: missing %q symbol", ErrMalformedMatrix, GapSymbol)
	}

	return m, nil
}

func (m *Matrix) setHeader(fields []string, caseSensitive bool) error {
	m.symbols = make([]byte, 0, len(fields))
	for i, f := range fields {
		if len(f) != 1 {
			return fmt.Errorf("%w: header symbol %q is not a single byte", ErrMalformedMatrix, f)
		}
		s := f[0]
		if m.index[s] >= 0 {
			return fmt.Errorf("%w: duplicate symbol %q", ErrMalformedMatrix, s)
		}
		m.symbols = append(m.symbols, s)
		m.index[s] = i
		if s == GapSymbol {
			m.gap = i
		}
	}
	if caseSensitive {
		return nil
	}
	for i, s := range m.symbols {
		for _, alt := range []byte{toUpper(s), toLower(s)} {
			if m.index[alt] < 0 {
				m.index[alt] = i
			}
		}
	}

	return nil
}

func (m *Matrix) addRow(fields []string) error {
	row := len(m.scores)
	if row >= len(m.symbols) {
		return fmt.Errorf("%w: more rows than symbols", ErrMalformedMatrix)
	}
	if len(fields) != len(m.symbols)+1 {
		return fmt.Errorf("%w: row has %d fields, want %d", ErrMalformedMatrix, len(fields), len(m.symbols)+1)
	}
	if len(fields[0]) != 1 || fields[0][0] != m.symbols[row] {
		return fmt.Errorf("%w: row %q out of order, want %q", ErrMalformedMatrix, fields[0], m.symbols[row])
	}

	scores := make([]int, len(m.symbols))
	for i, f := range fields[1:] {
		v, err := strconv.Atoi(f)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedMatrix, err)
		}
		scores[i] = v
	}
	m.scores = append(m.scores, scores)

	return nil
}

// LoadMatrix parses the matrix file at path.
func LoadMatrix(path string, caseSensitive bool) (*Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseMatrix(f, caseSensitive)
}

// BLOSUM62 returns the embedded BLOSUM62 amino-acid matrix.
func BLOSUM62(caseSensitive bool) (*Matrix, error) {
	return ParseMatrix(bytes.NewReader(blosum62), caseSensitive)
}

// Substitution returns the score of row a, column b.
func (m *Matrix) Substitution(a, b byte) (int, error) {
	i, err := m.lookup(a)
	if err != nil {
		return 0, err
	}
	j, err := m.lookup(b)
	if err != nil {
		return 0, err
	}

	return m.scores[i][j], nil
}

// Insertion returns the score of row '*', column a.
func (m *Matrix) Insertion(a byte) (int, error) {
	j, err := m.lookup(a)
	if err != nil {
		return 0, err
	}

	return m.scores[m.gap][j], nil
}

// Deletion returns the score of row a, column '*'.
func (m *Matrix) Deletion(a byte) (int, error) {
	i, err := m.lookup(a)
	if err != nil {
		return 0, err
	}

	return m.scores[i][m.gap], nil
}

// PartialMatch is always true.
func (m *Matrix) PartialMatch() bool { return true }

// Symbols returns the alphabet in header order.
func (m *Matrix) Symbols() []byte {
	return bytes.Clone(m.symbols)
}

// MaxAbsoluteScore returns the greatest |score| in the matrix.
func (m *Matrix) MaxAbsoluteScore() int {
	best := 0
	for _, row := range m.scores {
		for _, v := range row {
			if v < 0 {
				v = -v
			}
			best = max(best, v)
		}
	}

	return best
}

func (m *Matrix) lookup(s byte) (int, error) {
	if i := m.index[s]; i >= 0 {
		return i, nil
	}

	return 0, fmt.Errorf("%w: symbol %q not in matrix", align.ErrIncompatibleScoringScheme, s)
}

func toLower(b byte) byte {
	if 'A' <= b && b <= 'Z' {
		return b - 'A' + 'a'
	}

	return b
}
