package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"kanun/internal/config"
	"kanun/internal/history"
	"kanun/internal/logging"
	"kanun/internal/search"
	"kanun/internal/ui"
)

func main() {
	// .env is optional; real environment variables win either way.
	_ = godotenv.Load()

	if err := logging.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "kanun: logging setup failed: %v\n", err)
		os.Exit(1)
	}
	defer logging.Close()

	cfg, err := config.Load()
	if err != nil {
		logging.Error("config load failed", "error", err)
		fmt.Fprintf(os.Stderr, "kanun: config load failed: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(config.DataDir(), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "kanun: data directory: %v\n", err)
		os.Exit(1)
	}

	store, err := history.Open(config.HistoryPath())
	if err != nil {
		logging.Error("history store open failed", "error", err)
		fmt.Fprintf(os.Stderr, "kanun: history store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	client := search.NewClient(cfg.SearchURL, time.Duration(cfg.TimeoutSeconds)*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	appCfg := ui.AppConfig{
		Search: func(query string, seq int) tea.Cmd {
			return func() tea.Msg {
				logging.Info("search", "query", query, "seq", seq)
				results, err := client.Search(ctx, query)
				if err != nil {
					logging.Error("search failed", "query", query, "error", err)
					return ui.SearchComplete{Seq: seq, Query: query, Err: err}
				}
				logging.Info("search done", "query", query, "results", len(results))
				return ui.SearchComplete{Seq: seq, Query: query, Results: results}
			}
		},
		LoadHistory: func() tea.Cmd {
			return func() tea.Msg {
				queries, err := store.RecentQueries(cfg.HistoryLimit)
				return ui.HistoryLoaded{Queries: queries, Err: err}
			}
		},
		RecordQuery: func(query string, resultCount int) tea.Cmd {
			return func() tea.Msg {
				if err := store.Record(query, resultCount); err != nil {
					logging.Warn("history record failed", "query", query, "error", err)
					return ui.QueryRecorded{Err: err}
				}
				return ui.QueryRecorded{}
			}
		},
		Suggested:  cfg.SuggestedSearches,
		DocBaseURL: cfg.FullDocumentBaseURL,
	}

	app := ui.NewApp(appCfg)
	program := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := program.Run(); err != nil {
		logging.Error("program exited with error", "error", err)
		fmt.Fprintf(os.Stderr, "kanun: %v\n", err)
		os.Exit(1)
	}
}
