package handlers

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/gorilla/schema"

	"github.com/dailysudoku/server/internal/sudoku"
)

type GenerateDTO struct {
	Difficulty string  `schema:"difficulty,required"`
	Seed       *uint64 `schema:"seed"`
}

func ParseGenerateDTO(query url.Values) (GenerateDTO, error) {
	var dto GenerateDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, query)
	return dto, err
}

type GenerateBatchDTO struct {
	Difficulty string  `schema:"difficulty,required"`
	Count      int     `schema:"count,required"`
	Seed       *uint64 `schema:"seed"`
}

// batchLimit caps how many puzzles one batch request may ask for.
const batchLimit = 20

func ParseGenerateBatchDTO(query url.Values) (GenerateBatchDTO, error) {
	var dto GenerateBatchDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	if err := dec.Decode(&dto, query); err != nil {
		return dto, err
	}
	if dto.Count < 1 || dto.Count > batchLimit {
		return dto, fmt.Errorf("count must be between 1 and %d", batchLimit)
	}
	return dto, nil
}

type DailyQueryDTO struct {
	Difficulty string `schema:"difficulty"`
	Date       string `schema:"date"`
}

func ParseDailyQueryDTO(query url.Values) (DailyQueryDTO, error) {
	var dto DailyQueryDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, query)
	return dto, err
}

// dailyKey resolves optional date/difficulty tokens to the lookup key of a
// daily puzzle. An empty date means today (UTC); an empty difficulty means
// medium, matching the posting default of the original site.
func dailyKey(date, difficulty string) (string, sudoku.Difficulty, error) {
	if date == "" {
		date = time.Now().UTC().Format(time.DateOnly)
	} else if _, err := time.Parse(time.DateOnly, date); err != nil {
		return "", 0, fmt.Errorf("invalid date %q", date)
	}
	d := sudoku.Medium
	if difficulty != "" {
		var err error
		if d, err = sudoku.ParseDifficulty(difficulty); err != nil {
			return "", 0, err
		}
	}
	return date, d, nil
}

type GameDTO struct {
	Puzzle          sudoku.Grid       `json:"puzzle"`
	Solution        sudoku.Grid       `json:"solution"`
	Difficulty      sudoku.Difficulty `json:"difficulty"`
	Removed         int               `json:"removed"`
	Seed            string            `json:"seed"`
	DifficultyUnmet bool              `json:"difficulty_unmet,omitempty"`
}

func NewGameDTO(game *sudoku.Game, unmet bool) *GameDTO {
	return &GameDTO{
		Puzzle:          game.Puzzle,
		Solution:        game.Solution,
		Difficulty:      game.Difficulty,
		Removed:         game.Removed,
		Seed:            strconv.FormatUint(game.Seed, 10),
		DifficultyUnmet: unmet,
	}
}

// DailyPuzzleDTO is the public view of a daily puzzle; the solution never
// leaves the server.
type DailyPuzzleDTO struct {
	Date       string            `json:"date"`
	Difficulty sudoku.Difficulty `json:"difficulty"`
	Puzzle     sudoku.Grid       `json:"puzzle"`
	Removed    int               `json:"removed"`
}

type CheckSolutionDTO struct {
	Date       string  `json:"date,omitempty"`
	Difficulty string  `json:"difficulty,omitempty"`
	Solution   [][]int `json:"solution"`
}

type SubmitScoreDTO struct {
	Date       string `json:"date,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
	Name       string `json:"name"`
	PlaytimeMs int64  `json:"playtime_ms"`
}
