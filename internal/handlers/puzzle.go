package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"hash/maphash"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/dailysudoku/server/internal/repository"
	"github.com/dailysudoku/server/internal/sudoku"
)

type PuzzleHandler struct {
	logger *logrus.Logger
	repo   *repository.Queries
}

func NewPuzzleHandler(logger *logrus.Logger, db *pgxpool.Pool) *PuzzleHandler {
	return &PuzzleHandler{
		logger: logger,
		repo:   repository.New(db),
	}
}

// randomSeed draws a fresh seed per request; each generation owns its RNG, so
// concurrent requests never share random state.
func randomSeed() uint64 {
	return new(maphash.Hash).Sum64()
}

// Generate handles POST /puzzle: a one-off puzzle/solution pair for preview
// and test flows.
func (h PuzzleHandler) Generate(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseGenerateDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	difficulty, err := sudoku.ParseDifficulty(dto.Difficulty)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	seed := randomSeed()
	if dto.Seed != nil {
		seed = *dto.Seed
	}

	game, err := sudoku.Generate(difficulty, seed)
	unmet := errors.Is(err, sudoku.ErrDifficultyUnmet)
	if err != nil && !unmet {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.WithError(err).Error("unable to generate puzzle")
		return
	}
	if unmet {
		h.logger.WithFields(logrus.Fields{
			"difficulty": difficulty.String(),
			"removed":    game.Removed,
		}).Warn("puzzle generated below removal target")
	}

	sendJSONOrLog(w, h.logger, NewGameDTO(game, unmet))
}

// GenerateBatch handles POST /puzzle/batch: up to batchLimit pairs generated
// in parallel, one worker and one RNG per puzzle.
func (h PuzzleHandler) GenerateBatch(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseGenerateBatchDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	difficulty, err := sudoku.ParseDifficulty(dto.Difficulty)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	games := make([]*GameDTO, dto.Count)
	var g errgroup.Group
	for i := range games {
		seed := randomSeed()
		if dto.Seed != nil {
			seed = *dto.Seed + uint64(i)
		}
		g.Go(func() error {
			game, err := sudoku.Generate(difficulty, seed)
			unmet := errors.Is(err, sudoku.ErrDifficultyUnmet)
			if err != nil && !unmet {
				return err
			}
			games[i] = NewGameDTO(game, unmet)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.WithError(err).Error("unable to generate puzzle batch")
		return
	}

	sendJSONOrLog(w, h.logger, map[string]any{"puzzles": games})
}

// Daily handles GET /puzzle/daily: the deterministic puzzle for a date
// (today by default), created and persisted on first request, solution
// withheld.
func (h PuzzleHandler) Daily(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseDailyQueryDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	date, difficulty, err := dailyKey(dto.Date, dto.Difficulty)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	daily, err := h.dailyPuzzle(r.Context(), date, difficulty)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.WithError(err).Error("unable to load daily puzzle")
		return
	}

	sendJSONOrLog(w, h.logger, DailyPuzzleDTO{
		Date:       daily.PuzzleDate,
		Difficulty: daily.Difficulty,
		Puzzle:     daily.Puzzle,
		Removed:    daily.Removed,
	})
}

// dailyPuzzle fetches the stored pair for (date, difficulty), generating and
// persisting it when absent. The seed is a hash of the date and difficulty,
// so two instances racing here produce identical puzzles; the insert's
// unique violation just tells the loser to refetch.
func (h PuzzleHandler) dailyPuzzle(
	ctx context.Context, date string, difficulty sudoku.Difficulty,
) (*repository.DailyPuzzle, error) {
	daily, err := h.repo.GetDailyPuzzle(ctx, date, difficulty)
	if err == nil {
		return daily, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	game, err := sudoku.Generate(difficulty, sudoku.DailySeed(date, difficulty.String()))
	if errors.Is(err, sudoku.ErrDifficultyUnmet) {
		h.logger.WithFields(logrus.Fields{
			"date":       date,
			"difficulty": difficulty.String(),
			"removed":    game.Removed,
		}).Warn("daily puzzle generated below removal target")
	} else if err != nil {
		return nil, err
	}

	if err := h.repo.CreateDailyPuzzle(ctx, date, game); err != nil {
		if isUniqueViolation(err) {
			return h.repo.GetDailyPuzzle(ctx, date, difficulty)
		}
		return nil, err
	}
	return h.repo.GetDailyPuzzle(ctx, date, difficulty)
}

// CheckDaily handles POST /puzzle/daily/check: validates a candidate grid
// against the stored daily pair. A malformed grid is a client error; a wrong
// answer is a regular response.
func (h PuzzleHandler) CheckDaily(w http.ResponseWriter, r *http.Request) {
	var dto CheckSolutionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	date, difficulty, err := dailyKey(dto.Date, dto.Difficulty)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	candidate, err := sudoku.ParseGrid(dto.Solution)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	daily, err := h.repo.GetDailyPuzzle(r.Context(), date, difficulty)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.WithError(err).Error("unable to fetch daily puzzle")
		return
	}

	sendJSONOrLog(w, h.logger, map[string]bool{
		"correct": sudoku.Validate(daily.Puzzle, candidate),
	})
}
