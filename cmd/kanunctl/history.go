package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"kanun/internal/config"
	"kanun/internal/history"
)

func runHistory() {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	limit := fs.Int("limit", 20, "Maximum entries to print")
	clear := fs.Bool("clear", false, "Delete all history")
	fs.Parse(os.Args[1:])

	store, err := history.Open(config.HistoryPath())
	if err != nil {
		log.Fatalf("open history: %v", err)
	}
	defer store.Close()

	if *clear {
		if err := store.Clear(); err != nil {
			log.Fatalf("clear history: %v", err)
		}
		fmt.Println("history cleared")
		return
	}

	entries, err := store.Recent(*limit)
	if err != nil {
		log.Fatalf("read history: %v", err)
	}
	if len(entries) == 0 {
		fmt.Println("no history yet")
		return
	}

	for _, e := range entries {
		fmt.Printf("%s  %3d results  %s\n", e.SearchedAt.Format("2006-01-02 15:04"), e.ResultCount, e.Query)
	}
}

func runConfig() {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	fs.Parse(os.Args[1:])

	cfg := loadConfig()
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		log.Fatalf("encode config: %v", err)
	}
	fmt.Println(string(data))
}
