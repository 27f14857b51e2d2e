package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dailysudoku/server/internal/sudoku"
)

// DailyPuzzle is a persisted puzzle-of-the-day together with its solution.
// The pair is stored and fetched as one row so the checker always sees the
// grids it was generated with.
type DailyPuzzle struct {
	PuzzleDate string
	Difficulty sudoku.Difficulty
	Seed       int64
	Puzzle     sudoku.Grid
	Solution   sudoku.Grid
	Removed    int
	CreatedAt  time.Time
}

func (q Queries) CreateDailyPuzzle(
	ctx context.Context, date string, game *sudoku.Game,
) error {
	puzzle, err := json.Marshal(game.Puzzle)
	if err != nil {
		return err
	}
	solution, err := json.Marshal(game.Solution)
	if err != nil {
		return err
	}

	query := `
	INSERT INTO daily_puzzle
		(puzzle_date, difficulty, seed, puzzle, solution, removed)
	VALUES
		(@puzzle_date, @difficulty, @seed, @puzzle, @solution, @removed);
	`
	args := pgx.NamedArgs{
		"puzzle_date": date,
		"difficulty":  game.Difficulty.String(),
		"seed":        int64(game.Seed),
		"puzzle":      puzzle,
		"solution":    solution,
		"removed":     game.Removed,
	}

	_, err = q.db.Exec(ctx, query, args)
	return err
}

func (q Queries) GetDailyPuzzle(
	ctx context.Context, date string, difficulty sudoku.Difficulty,
) (*DailyPuzzle, error) {
	query := `
	SELECT
		puzzle_date::text,
		seed,
		puzzle,
		solution,
		removed,
		created_at
	FROM daily_puzzle
	WHERE puzzle_date = @puzzle_date AND difficulty = @difficulty;
	`
	args := pgx.NamedArgs{
		"puzzle_date": date,
		"difficulty":  difficulty.String(),
	}

	var (
		row              = q.db.QueryRow(ctx, query, args)
		p                = DailyPuzzle{Difficulty: difficulty}
		puzzle, solution []byte
	)
	err := row.Scan(
		&p.PuzzleDate, &p.Seed, &puzzle, &solution, &p.Removed, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(puzzle, &p.Puzzle); err != nil {
		return nil, fmt.Errorf("db returned invalid daily_puzzle.puzzle: %w", err)
	}
	if err := json.Unmarshal(solution, &p.Solution); err != nil {
		return nil, fmt.Errorf("db returned invalid daily_puzzle.solution: %w", err)
	}
	return &p, nil
}
