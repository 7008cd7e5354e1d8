package batch

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/seqalign/align"
)

var (
	// ErrBadLine indicates an input line that is not "[id] seq1 seq2".
	ErrBadLine = errors.New("batch: malformed pair line")

	// ErrNoScheme indicates Options.Scheme was not set.
	ErrNoScheme = errors.New("batch: scoring scheme factory is nil")
)

// Pair is one alignment job.
type Pair struct {
	ID   string
	Seq1 []byte
	Seq2 []byte
}

// Result is the outcome of one Pair.
type Result struct {
	ID    string
	Score int

	// Alignment is set only when Options.Full is true.
	Alignment *align.Alignment[byte, byte]
}

// Options configures Run.
type Options struct {
	// Method selects global or local alignment.
	Method align.Method

	// Scheme returns the scoring scheme for one pair. It is called once per
	// pair, so stateful schemes are never shared.
	Scheme func() (align.ScoringScheme[byte], error)

	// Workers bounds concurrent alignments; ≤ 0 means runtime.GOMAXPROCS(0).
	Workers int

	// Full requests the alignment itself instead of the linear-space score.
	Full bool
}

// Run aligns every pair and returns the results in input order.
func Run(ctx context.Context, pairs []Pair, opts Options) ([]Result, error) {
	if opts.Scheme == nil {
		return nil, ErrNoScheme
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(pairs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, p := range pairs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := runPair(p, opts)
			if err != nil {
				return fmt.Errorf("pair %s: %w", p.ID, err)
			}
			results[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

func runPair(p Pair, opts Options) (Result, error) {
	scheme, err := opts.Scheme()
	if err != nil {
		return Result{}, err
	}
	al := align.NewBytes(opts.Method)
	if err := al.SetScoringScheme(scheme); err != nil {
		return Result{}, err
	}
	al.LoadSequences(p.Seq1, p.Seq2)

	if opts.Full {
		res, err := al.Alignment()
		if err != nil {
			return Result{}, err
		}
		return Result{ID: p.ID, Score: res.Score, Alignment: res}, nil
	}

	score, err := al.Score()
	if err != nil {
		return Result{}, err
	}

	return Result{ID: p.ID, Score: score}, nil
}

// ReadPairs parses one pair per line: "seq1 seq2" or "id seq1 seq2",
// whitespace separated. Blank lines and lines starting with '#' are skipped.
func ReadPairs(r io.Reader) ([]Pair, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16<<20)

	var pairs []Pair
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || text[0] == '#' {
			continue
		}
		fields := strings.Fields(text)
		switch len(fields) {
		case 2:
			pairs = append(pairs, Pair{ID: strconv.Itoa(line), Seq1: []byte(fields[0]), Seq2: []byte(fields[1])})
		case 3:
			pairs = append(pairs, Pair{ID: fields[0], Seq1: []byte(fields[1]), Seq2: []byte(fields[2])})
		default:
			return nil, fmt.Errorf("line %d: %w: %d fields", line, ErrBadLine, len(fields))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return pairs, nil
}
