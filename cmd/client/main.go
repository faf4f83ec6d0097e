package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"taskpurse/internal/client/cli"
	"taskpurse/internal/client/config"
	"taskpurse/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	logFile, err := os.OpenFile("taskpurse.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer logFile.Close()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(logFile, nil)))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
