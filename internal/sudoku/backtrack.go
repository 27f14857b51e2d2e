package sudoku

// canPlace reports whether v may be written at (row, col) without clashing
// with the cell's row, column or containing box. Empty cells never conflict,
// so the check works on partial grids.
func canPlace(g *Grid, row, col int, v uint8) bool {
	for i := range gridSize {
		if g[row][i] == v || g[i][col] == v {
			return false
		}
	}
	br, bc := row/boxSize*boxSize, col/boxSize*boxSize
	for i := range boxSize {
		for j := range boxSize {
			if g[br+i][bc+j] == v {
				return false
			}
		}
	}
	return true
}

// firstEmpty finds the lowest row-major empty cell.
func firstEmpty(g *Grid) (row, col int, ok bool) {
	for r := range gridSize {
		for c := range gridSize {
			if g[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}
