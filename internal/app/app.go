package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/dailysudoku/server/internal/config"
	"github.com/dailysudoku/server/internal/database"
	"github.com/dailysudoku/server/internal/middleware"
)

type App struct {
	logger *logrus.Logger
	router *http.ServeMux
	db     *pgxpool.Pool
}

func New(logger *logrus.Logger) *App {
	return &App{
		logger: logger,
		router: http.NewServeMux(),
	}
}

// Start connects to the database, runs migrations, and serves until ctx is
// canceled.
func (a *App) Start(ctx context.Context) error {
	db, err := database.ConnectAndMigrate(ctx)
	if err != nil {
		return fmt.Errorf("unable to connect to db: %w", err)
	}
	defer db.Close()

	a.db = db
	a.loadRoutes()

	server := &http.Server{
		Addr: config.Addr(),
		Handler: middleware.Wrap(
			a.router,
			middleware.Logging(a.logger),
			middleware.Cors(),
		),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	a.logger.WithField("addr", server.Addr).Info("server listening")

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gCtx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return server.Shutdown(sCtx)
	})

	return g.Wait()
}
