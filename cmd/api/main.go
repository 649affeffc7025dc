package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/wzkoh/finsight/internal/config"
	finsightHttp "github.com/wzkoh/finsight/internal/http"
	"github.com/wzkoh/finsight/internal/http/insights"
	"github.com/wzkoh/finsight/internal/source"
	"github.com/wzkoh/finsight/internal/source/csvfile"
	"github.com/wzkoh/finsight/internal/source/demo"
	"github.com/wzkoh/finsight/internal/source/sheets"
)

func main() {
	// Missing .env is fine; config falls back to process env and defaults.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	src, err := buildSource(ctx, cfg)
	if err != nil {
		slog.Error("failed to build source", "source", cfg.Source.Kind, "error", err)
		os.Exit(1)
	}

	svc := source.NewService(src)

	refreshCtx, cancel := context.WithTimeout(ctx, cfg.Server.Timeout)
	defer cancel()

	snap, err := svc.Refresh(refreshCtx)
	if err != nil {
		slog.Error("initial refresh failed", "error", err)
		os.Exit(1)
	}

	slog.Info("loaded transactions", "source", cfg.Source.Kind, "count", snap.Count)

	router := finsightHttp.New(insights.NewHandler(svc))

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func buildSource(ctx context.Context, cfg *config.Config) (source.RowSource, error) {
	switch cfg.Source.Kind {
	case string(source.NameSheets):
		return sheets.New(ctx, cfg.Sheets.SpreadsheetID, cfg.Sheets.APIKey, cfg.Sheets.ReadRange)
	case string(source.NameCSV):
		return csvfile.New(cfg.CSV.Path)
	case string(source.NameDemo):
		return demo.New(), nil
	}

	return nil, fmt.Errorf("unknown source %q", cfg.Source.Kind)
}
