package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/dailysudoku/server/internal/app"
	"github.com/dailysudoku/server/internal/config"
)

var log = logrus.New()

func setupLogging() {
	if config.Development() {
		log.SetLevel(logrus.DebugLevel)
		log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	if path := config.LogFile(); path != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   path,
			MaxSize:    50, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Level:      log.Level,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			log.WithError(err).Fatal("unable to set up file logging")
		}
		log.AddHook(hook)
	}
}

func main() {
	// Optional in production; the container sets env variables directly.
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file loaded")
	}

	setupLogging()

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	if err := app.New(log).Start(ctx); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
	log.Info("shut down")
}
