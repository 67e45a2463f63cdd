package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"noticelens/internal/api"
	"noticelens/internal/config"
	"noticelens/internal/document"
	"noticelens/internal/logging"
	"noticelens/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logClose, err := logging.Setup(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer logClose.Close()

	client := api.New(cfg.API.BaseURL, api.WithTimeouts(
		time.Duration(cfg.API.AuthTimeoutSecs)*time.Second,
		time.Duration(cfg.API.AnalyzeTimeoutSecs)*time.Second,
	))

	docs, err := document.NewStore()
	if err != nil {
		log.Fatalf("document store: %v", err)
	}
	defer docs.Close()

	slog.Info("starting", "base_url", cfg.API.BaseURL)

	p := tea.NewProgram(tui.New(ctx, client, docs), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
}
