package app

import (
	"net/http"

	"github.com/dailysudoku/server/internal/handlers"
)

func (a *App) loadRoutes() {
	puzzle := handlers.NewPuzzleHandler(a.logger, a.db)

	a.router.HandleFunc("POST /puzzle", puzzle.Generate)
	a.router.HandleFunc("POST /puzzle/batch", puzzle.GenerateBatch)
	a.router.HandleFunc("GET /puzzle/daily", puzzle.Daily)
	a.router.HandleFunc("POST /puzzle/daily/check", puzzle.CheckDaily)
	a.router.HandleFunc("POST /puzzle/daily/score", puzzle.SubmitScore)
	a.router.HandleFunc("GET /puzzle/daily/scores", puzzle.TopScores)

	a.router.HandleFunc("GET /status", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
}
