package align

import "slices"

// problem is an immutable snapshot of everything one computation needs.
// The DP matrix it builds is owned by the computation and dropped on return.
type problem[T, S comparable] struct {
	seq1, seq2  []T
	scheme      ScoringScheme[T]
	tags        Tags[S]
	gap         T
	useMatchTag bool
	symbolTag   func(T) S
}

// moves returns the candidate scores for cell (r, c), 1-based on both axes:
// left is the insertion from (r, c-1), diag the substitution from
// (r-1, c-1) and up the deletion from (r-1, c).
func (p *problem[T, S]) moves(left, diag, up, r, c int) (ins, sub, del int, err error) {
	a, b := p.seq1[r-1], p.seq2[c-1]
	if ins, err = p.scheme.Insertion(b); err != nil {
		return 0, 0, 0, err
	}
	if sub, err = p.scheme.Substitution(a, b); err != nil {
		return 0, 0, 0, err
	}
	if del, err = p.scheme.Deletion(a); err != nil {
		return 0, 0, 0, err
	}

	return left + ins, diag + sub, up + del, nil
}

// substitutionTag picks the tag for a diagonal column a/b scored sub.
func (p *problem[T, S]) substitutionTag(a, b T, sub int) S {
	switch {
	case a == b && (p.useMatchTag || p.symbolTag == nil):
		return p.tags.Match
	case a == b:
		return p.symbolTag(a)
	case sub > 0:
		return p.tags.ApproximateMatch
	default:
		return p.tags.Mismatch
	}
}

// traceback walks m backwards from (r, c) and rebuilds the alignment.
//
// At each cell the predecessor is chosen in strict priority order:
// insertion, substitution, then deletion as the unverified fallback. Global
// tracebacks run until (0, 0); local ones also stop on the first zero cell.
func (p *problem[T, S]) traceback(m *scoreMatrix, r, c int, local bool) (*Alignment[T, S], error) {
	score := m.at(r, c)
	capHint := r + c
	res := &Alignment[T, S]{
		Gapped1: make([]T, 0, capHint),
		Tags:    make([]S, 0, capHint),
		Gapped2: make([]T, 0, capHint),
		Score:   score,
	}
	push := func(x T, tag S, y T) {
		res.Gapped1 = append(res.Gapped1, x)
		res.Tags = append(res.Tags, tag)
		res.Gapped2 = append(res.Gapped2, y)
	}

	for r > 0 || c > 0 {
		cur := m.at(r, c)
		if local && cur == 0 {
			break
		}

		if c > 0 {
			ins, err := p.scheme.Insertion(p.seq2[c-1])
			if err != nil {
				return nil, err
			}
			if cur == m.at(r, c-1)+ins {
				push(p.gap, p.tags.Gap, p.seq2[c-1])
				c--
				continue
			}
		}

		if r > 0 && c > 0 {
			a, b := p.seq1[r-1], p.seq2[c-1]
			sub, err := p.scheme.Substitution(a, b)
			if err != nil {
				return nil, err
			}
			if cur == m.at(r-1, c-1)+sub {
				push(a, p.substitutionTag(a, b, sub), b)
				r--
				c--
				continue
			}
		}

		push(p.seq1[r-1], p.tags.Gap, p.gap)
		r--
	}

	slices.Reverse(res.Gapped1)
	slices.Reverse(res.Tags)
	slices.Reverse(res.Gapped2)

	return res, nil
}
