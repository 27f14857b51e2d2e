package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/dailysudoku/server/internal/sudoku"
)

type Score struct {
	PlayerName string `json:"name"`
	PlaytimeMs int64  `json:"playtime_ms"`
}

func (q Queries) CreateScore(
	ctx context.Context,
	date string,
	difficulty sudoku.Difficulty,
	playerName string,
	playtimeMs int64,
) error {
	query := `
	INSERT INTO daily_score
		(puzzle_date, difficulty, player_name, playtime_ms)
	VALUES
		(@puzzle_date, @difficulty, @player_name, @playtime_ms);
	`
	args := pgx.NamedArgs{
		"puzzle_date": date,
		"difficulty":  difficulty.String(),
		"player_name": playerName,
		"playtime_ms": playtimeMs,
	}

	_, err := q.db.Exec(ctx, query, args)
	return err
}

// GetTopScores lists the fastest solves for one day's puzzle, best first.
func (q Queries) GetTopScores(
	ctx context.Context,
	date string,
	difficulty sudoku.Difficulty,
	limit int,
) ([]Score, error) {
	query := `
	SELECT
		player_name,
		playtime_ms
	FROM daily_score
	WHERE puzzle_date = @puzzle_date AND difficulty = @difficulty
	ORDER BY playtime_ms, created_at
	LIMIT @limit;
	`
	args := pgx.NamedArgs{
		"puzzle_date": date,
		"difficulty":  difficulty.String(),
		"limit":       limit,
	}

	rows, err := q.db.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Score])
}
