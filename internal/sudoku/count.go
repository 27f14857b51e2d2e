package sudoku

// CountSolutions counts the completions of a partially filled grid, giving up
// as soon as limit is reached, and returns min(actual, limit). Unlike the
// filler it must not miss any solution, so it always branches on the lowest
// row-major empty cell and tries candidates in fixed order.
//
// A cleared grid passed with limit 2 answers the only question the remover
// cares about: is the solution still unique?
func CountSolutions(g Grid, limit int) int {
	if limit <= 0 || !consistent(&g) {
		return 0
	}
	count := 0
	var dfs func() bool // true aborts the whole search
	dfs = func() bool {
		r, c, ok := firstEmpty(&g)
		if !ok {
			count++
			return count >= limit
		}
		for v := uint8(1); v <= gridSize; v++ {
			if canPlace(&g, r, c, v) {
				g[r][c] = v
				done := dfs()
				g[r][c] = 0
				if done {
					return true
				}
			}
		}
		return false
	}
	dfs()
	return count
}

// consistent reports whether the filled cells of g respect the constraints.
// An inconsistent grid admits no completion no matter what goes into its
// empty cells, and the search below only ever checks the cells it places.
func consistent(g *Grid) bool {
	for r := range gridSize {
		for c := range gridSize {
			v := g[r][c]
			if v == 0 {
				continue
			}
			g[r][c] = 0
			ok := canPlace(g, r, c, v)
			g[r][c] = v
			if !ok {
				return false
			}
		}
	}
	return true
}
