package sudoku

// fullSet has bits 1-9 set, the mask of a complete row, column or box.
const fullSet = 0x3fe

// Validate reports whether candidate solves puzzle: every clue of the puzzle
// must be preserved, and the candidate itself must hold each of 1-9 exactly
// once per row, column and box. Neither grid is mutated.
func Validate(puzzle, candidate Grid) bool {
	for r := range gridSize {
		for c := range gridSize {
			if puzzle[r][c] != 0 && puzzle[r][c] != candidate[r][c] {
				return false
			}
		}
	}
	for i := range gridSize {
		var rowSeen, colSeen uint16
		for j := range gridSize {
			rowSeen |= 1 << candidate[i][j]
			colSeen |= 1 << candidate[j][i]
		}
		if rowSeen != fullSet || colSeen != fullSet {
			return false
		}
	}
	for br := 0; br < gridSize; br += boxSize {
		for bc := 0; bc < gridSize; bc += boxSize {
			var seen uint16
			for i := range boxSize {
				for j := range boxSize {
					seen |= 1 << candidate[br+i][bc+j]
				}
			}
			if seen != fullSet {
				return false
			}
		}
	}
	return true
}
