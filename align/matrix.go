package align

// scoreMatrix is a dense row-major (rows × cols) grid of DP scores backed by
// a single slice.
type scoreMatrix struct {
	cols  int
	cells []int
}

func newScoreMatrix(rows, cols int) *scoreMatrix {
	return &scoreMatrix{cols: cols, cells: make([]int, rows*cols)}
}

func (m *scoreMatrix) at(r, c int) int {
	return m.cells[r*m.cols+c]
}

func (m *scoreMatrix) set(r, c, v int) {
	m.cells[r*m.cols+c] = v
}

// max3 returns the greatest of three scores.
func max3(a, b, c int) int {
	if a >= b {
		if a >= c {
			return a
		}
		return c
	}
	if b >= c {
		return b
	}
	return c
}
