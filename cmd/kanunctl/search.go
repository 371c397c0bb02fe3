package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"kanun/internal/caselaw"
	"kanun/internal/config"
	"kanun/internal/search"
)

// loadConfig loads .env and the config file the same way the TUI does.
func loadConfig() *config.Config {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	return cfg
}

func newClient(cfg *config.Config) *search.Client {
	return search.NewClient(cfg.SearchURL, time.Duration(cfg.TimeoutSeconds)*time.Second)
}

func runSearch() {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	limit := fs.Int("limit", 10, "Maximum results to print")
	fs.Parse(os.Args[1:])

	query := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if query == "" {
		fmt.Fprintln(os.Stderr, "usage: kanunctl search [--limit N] <query>")
		os.Exit(1)
	}

	cfg := loadConfig()
	client := newClient(cfg)

	results, err := client.Search(context.Background(), query)
	if err != nil {
		log.Fatalf("search: %v", err)
	}

	fmt.Printf("%d results for %q\n", len(results), query)
	fmt.Println(strings.Repeat("=", 72))
	for i, r := range results {
		if i >= *limit {
			fmt.Printf("... and %d more\n", len(results)-*limit)
			break
		}
		printCard(i+1, r, cfg.FullDocumentBaseURL)
	}
}

func runDoc() {
	fs := flag.NewFlagSet("doc", flag.ExitOnError)
	fs.Parse(os.Args[1:])

	args := fs.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: kanunctl doc <query> [result-number]")
		os.Exit(1)
	}

	n := 1
	query := strings.TrimSpace(strings.Join(args, " "))
	if len(args) > 1 {
		if parsed, err := strconv.Atoi(args[len(args)-1]); err == nil {
			n = parsed
			query = strings.TrimSpace(strings.Join(args[:len(args)-1], " "))
		}
	}

	cfg := loadConfig()
	client := newClient(cfg)

	results, err := client.Search(context.Background(), query)
	if err != nil {
		log.Fatalf("search: %v", err)
	}
	if n < 1 || n > len(results) {
		log.Fatalf("result %d out of range, got %d results", n, len(results))
	}

	doc := caselaw.Normalize(results[n-1])
	printDocument(doc, cfg.FullDocumentBaseURL)
}

func printCard(n int, r caselaw.CaseRecord, docBase string) {
	subject := r.Subject
	if strings.TrimSpace(subject) == "" {
		subject = caselaw.NotAvailable
	}
	fmt.Printf("%2d. %s\n", n, subject)
	if strings.TrimSpace(r.Parties) != "" {
		fmt.Printf("    %s vs %s\n", r.Parties, r.Opponents)
	}
	meta := []string{}
	if strings.TrimSpace(r.Similarity) != "" {
		meta = append(meta, r.Similarity+"%")
	}
	if strings.TrimSpace(r.JudgementDate) != "" {
		meta = append(meta, r.JudgementDate)
	}
	if r.Index != "" {
		meta = append(meta, search.FullDocumentURL(docBase, r.Index))
	}
	if len(meta) > 0 {
		fmt.Printf("    %s\n", strings.Join(meta, "  "))
	}
	fmt.Println()
}

func printDocument(doc caselaw.NormalizedDocument, docBase string) {
	field := func(label, value string) {
		fmt.Printf("%-18s %s\n", label+":", value)
	}

	fmt.Println(doc.Subject)
	fmt.Println(strings.Repeat("=", 72))
	field("Parties", doc.Parties)
	field("Opponents", doc.Opponents)
	field("Case Number", doc.CaseNumber)
	field("Decision Number", doc.DecisionNumber)
	field("Judgement Date", doc.JudgementDate)
	field("Judgement Type", doc.JudgementType)
	field("Bench", doc.BenchName)
	field("Judges", caselaw.FormatList(doc.Judges))
	fmt.Println()
	field("Summary", doc.Summary)
	field("Facts", doc.Facts)
	field("Petitioner", doc.PetitionersArgument)
	field("Respondent", doc.RespondentsArgument)
	field("Analysis", doc.CourtsAnalysis)
	field("Judgment", doc.Judgment)
	field("Ratio", doc.RatioDecidendi)
	field("Significance", doc.Significance)
	fmt.Println()
	field("Related Laws", caselaw.FormatList(doc.RelatedLaws))
	field("Keywords", caselaw.FormatList(doc.Keywords))
	field("Precedents", caselaw.FormatList(doc.Precedents))
	for _, p := range doc.Provisions {
		field("Provision", fmt.Sprintf("%s, %s (%s)", p.Law, p.SectionNumber, p.Relevance))
	}
	for _, c := range doc.CitedPrecedents {
		field("Cited", fmt.Sprintf("%s / %s: %s", c.CaseNumber, c.DecisionNumber, c.Explanation))
	}
	if doc.DisregardedCount > 0 {
		field("Disregarded", strconv.Itoa(doc.DisregardedCount)+" precedent(s)")
	}
	fmt.Println()
	field("NKP Year", doc.Citation.Year)
	field("NKP Volume", doc.Citation.Volume)
	field("NKP Issue", doc.Citation.Issue)
	if doc.Index != "" {
		field("Full Document", search.FullDocumentURL(docBase, doc.Index))
	}
}
