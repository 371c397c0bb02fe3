// Command kanunctl is the CLI companion to the kanun TUI, for scripted
// searches and history maintenance.
//
// Usage:
//
//	kanunctl                     Show help
//	kanunctl search <query>      Run a search and print result cards
//	kanunctl doc <query> [n]     Search and print the n-th result in full
//	kanunctl history             Show recent queries
//	kanunctl config              Print the effective configuration
package main

import (
	"fmt"
	"os"
)

const usage = `kanunctl — case-law search CLI

Usage:
  kanunctl <command> [flags]

Commands:
  search     Run a search and print result cards
  doc        Search and print one result as a full document
  history    Show recent queries from the history store
  config     Print the effective configuration as JSON

Environment:
  KANUN_SEARCH_URL        Search service endpoint (default http://localhost:8000/search)
  KANUN_DOC_BASE_URL      Full-document viewer base URL
  KANUN_TIMEOUT_SECONDS   Request timeout

Run 'kanunctl <command> -h' for command-specific help.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(0)
	}

	cmd := os.Args[1]
	// Strip the program name + subcommand so flag sets see only their flags
	os.Args = os.Args[1:]

	switch cmd {
	case "search":
		runSearch()
	case "doc":
		runDoc()
	case "history":
		runHistory()
	case "config":
		runConfig()
	case "-h", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "kanunctl: unknown command %q\n\n", cmd)
		fmt.Print(usage)
		os.Exit(1)
	}
}
