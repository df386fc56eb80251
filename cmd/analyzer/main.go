package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"datacli/internal/app"
	"datacli/internal/config"
	"datacli/internal/infrastructure"
)

func main() {
	baseDir := flag.String("base", "", "base directory for data and logs (defaults to the executable directory)")
	datasetDir := flag.String("datasets", "", "directory containing dataset files (overrides config)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	if *baseDir != "" {
		cfg.Paths.BaseDir = *baseDir
	}
	if *datasetDir != "" {
		cfg.Paths.DatasetDir = *datasetDir
	}

	paths, err := config.GetPaths(cfg.Paths)
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}
	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}

	if cfg.Logging.Output != "console" {
		cfg.Logging.FilePath = paths.GetLogPath("analyzer.log")
	}
	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.ContextWithSessionID(context.Background())
	logger.InfoContext(ctx, "starting analyzer",
		slog.String("dataset_dir", paths.DatasetDir),
		slog.String("charts_dir", paths.ChartsDir))

	session := app.NewSession(cfg, paths, os.Stdin, os.Stdout, logger)
	if err := session.Run(ctx); err != nil {
		logger.ErrorContext(ctx, "session failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
