package align

// Needleman–Wunsch global alignment.
//
// Algorithm Outline (full matrix):
//  1. Let n = len(A), m = len(B). Allocate an (n+1)x(m+1) matrix M.
//  2. Initialize:
//     M[0][0] = 0
//     M[0][j] = M[0][j-1] + ins(B[j-1])   for j = 1..m
//     M[i][0] = M[i-1][0] + del(A[i-1])   for i = 1..n
//  3. For i = 1..n, j = 1..m (row-major):
//     M[i][j] = max(M[i][j-1]   + ins(B[j-1]),
//     M[i-1][j-1] + sub(A[i-1], B[j-1]),
//     M[i-1][j]   + del(A[i-1]))
//  4. score = M[n][m]; traceback from (n, m) to (0, 0).
//
// The linear-space variant keeps one column (or row) of the smaller
// dimension plus one scratch scalar, and can only report the score.

// globalAlignment fills the full matrix and rebuilds an optimal alignment.
func (p *problem[T, S]) globalAlignment() (*Alignment[T, S], error) {
	m, err := p.globalMatrix()
	if err != nil {
		return nil, err
	}

	return p.traceback(m, len(p.seq1), len(p.seq2), false)
}

func (p *problem[T, S]) globalMatrix() (*scoreMatrix, error) {
	rows, cols := len(p.seq1)+1, len(p.seq2)+1
	m := newScoreMatrix(rows, cols)

	for c := 1; c < cols; c++ {
		ins, err := p.scheme.Insertion(p.seq2[c-1])
		if err != nil {
			return nil, err
		}
		m.set(0, c, m.at(0, c-1)+ins)
	}

	for r := 1; r < rows; r++ {
		edge, err := p.scheme.Deletion(p.seq1[r-1])
		if err != nil {
			return nil, err
		}
		m.set(r, 0, m.at(r-1, 0)+edge)

		for c := 1; c < cols; c++ {
			ins, sub, del, err := p.moves(m.at(r, c-1), m.at(r-1, c-1), m.at(r-1, c), r, c)
			if err != nil {
				return nil, err
			}
			m.set(r, c, max3(ins, sub, del))
		}
	}

	return m, nil
}

// globalScore computes M[n][m] in O(min(n,m)) memory.
func (p *problem[T, S]) globalScore() (int, error) {
	rows, cols := len(p.seq1)+1, len(p.seq2)+1

	if rows <= cols {
		// column by column: vec holds the previous column, tmp the cell
		// above the one being computed in the current column.
		vec := make([]int, rows)
		for r := 1; r < rows; r++ {
			del, err := p.scheme.Deletion(p.seq1[r-1])
			if err != nil {
				return 0, err
			}
			vec[r] = vec[r-1] + del
		}

		for c := 1; c < cols; c++ {
			edge, err := p.scheme.Insertion(p.seq2[c-1])
			if err != nil {
				return 0, err
			}
			tmp := vec[0] + edge

			for r := 1; r < rows; r++ {
				ins, sub, del, err := p.moves(vec[r], vec[r-1], tmp, r, c)
				if err != nil {
					return 0, err
				}
				vec[r-1] = tmp
				tmp = max3(ins, sub, del)
			}
			vec[rows-1] = tmp
		}

		return vec[rows-1], nil
	}

	// row by row: vec holds the previous row, tmp the cell to the left.
	vec := make([]int, cols)
	for c := 1; c < cols; c++ {
		ins, err := p.scheme.Insertion(p.seq2[c-1])
		if err != nil {
			return 0, err
		}
		vec[c] = vec[c-1] + ins
	}

	for r := 1; r < rows; r++ {
		edge, err := p.scheme.Deletion(p.seq1[r-1])
		if err != nil {
			return 0, err
		}
		tmp := vec[0] + edge

		for c := 1; c < cols; c++ {
			ins, sub, del, err := p.moves(tmp, vec[c-1], vec[c], r, c)
			if err != nil {
				return 0, err
			}
			vec[c-1] = tmp
			tmp = max3(ins, sub, del)
		}
		vec[cols-1] = tmp
	}

	return vec[cols-1], nil
}
