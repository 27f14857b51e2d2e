package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// scoreboardSize caps the leaderboard returned for a daily puzzle.
const scoreboardSize = 10

// SubmitScore handles POST /puzzle/daily/score and responds with the updated
// leaderboard for that day.
func (h PuzzleHandler) SubmitScore(w http.ResponseWriter, r *http.Request) {
	var dto SubmitScoreDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	if dto.Name == "" || dto.PlaytimeMs <= 0 {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(
			fmt.Errorf("name and a positive playtime_ms are required"),
		))
		return
	}

	date, difficulty, err := dailyKey(dto.Date, dto.Difficulty)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	err = h.repo.CreateScore(r.Context(), date, difficulty, dto.Name, dto.PlaytimeMs)
	if isForeignKeyViolation(err) {
		// No puzzle was ever generated for that day.
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.WithError(err).Error("unable to store score")
		return
	}

	scores, err := h.repo.GetTopScores(r.Context(), date, difficulty, scoreboardSize)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.WithError(err).Error("unable to fetch leaderboard")
		return
	}

	sendJSONOrLog(w, h.logger, map[string]any{"leaderboard": scores})
}

// TopScores handles GET /puzzle/daily/scores.
func (h PuzzleHandler) TopScores(w http.ResponseWriter, r *http.Request) {
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

	scores, err := h.repo.GetTopScores(r.Context(), date, difficulty, scoreboardSize)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.WithError(err).Error("unable to fetch leaderboard")
		return
	}

	sendJSONOrLog(w, h.logger, map[string]any{"leaderboard": scores})
}
