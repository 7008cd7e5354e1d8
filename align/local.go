package align

// Smith–Waterman local alignment.
//
// Differs from Needleman–Wunsch in three places:
//   - row 0 and column 0 are pinned to 0, so an alignment may start anywhere;
//   - every cell is clipped with max(ins, sub, del, 0), a zero marking a
//     fresh start;
//   - the score is the highest cell seen during the fill, not M[n][m]. Ties
//     keep the first such cell in row-major order.
//
// Traceback starts at the highest cell and stops at (0, 0) or on the first
// cell whose value is 0.

// localAlignment fills the full matrix and rebuilds an optimal local alignment.
func (p *problem[T, S]) localAlignment() (*Alignment[T, S], error) {
	m, maxRow, maxCol, err := p.localMatrix()
	if err != nil {
		return nil, err
	}

	return p.traceback(m, maxRow, maxCol, true)
}

func (p *problem[T, S]) localMatrix() (m *scoreMatrix, maxRow, maxCol int, err error) {
	rows, cols := len(p.seq1)+1, len(p.seq2)+1
	m = newScoreMatrix(rows, cols)
	best := 0

	for r := 1; r < rows; r++ {
		for c := 1; c < cols; c++ {
			ins, sub, del, err := p.moves(m.at(r, c-1), m.at(r-1, c-1), m.at(r-1, c), r, c)
			if err != nil {
				return nil, 0, 0, err
			}
			v := max(max3(ins, sub, del), 0)
			m.set(r, c, v)

			if v > best {
				best, maxRow, maxCol = v, r, c
			}
		}
	}

	return m, maxRow, maxCol, nil
}

// localScore returns the highest clipped cell in O(min(n,m)) memory.
func (p *problem[T, S]) localScore() (int, error) {
	rows, cols := len(p.seq1)+1, len(p.seq2)+1
	best := 0

	if rows <= cols {
		vec := make([]int, rows)
		for c := 1; c < cols; c++ {
			tmp := 0
			for r := 1; r < rows; r++ {
				ins, sub, del, err := p.moves(vec[r], vec[r-1], tmp, r, c)
				if err != nil {
					return 0, err
				}
				vec[r-1] = tmp
				tmp = max(max3(ins, sub, del), 0)
				best = max(best, tmp)
			}
			vec[rows-1] = tmp
		}

		return best, nil
	}

	vec := make([]int, cols)
	for r := 1; r < rows; r++ {
		tmp := 0
		for c := 1; c < cols; c++ {
			ins, sub, del, err := p.moves(tmp, vec[c-1], vec[c], r, c)
			if err != nil {
				return 0, err
			}
			vec[c-1] = tmp
			tmp = max(max3(ins, sub, del), 0)
			best = max(best, tmp)
		}
		vec[cols-1] = tmp
	}

	return best, nil
}
