// Package ui provides the Bubble Tea TUI for kanun.
package ui

import "kanun/internal/caselaw"

// SearchComplete is sent when a search request finishes, successfully
// or not. Seq is the request-generation token stamped at submission; a
// completion whose Seq is not the latest issued is stale and dropped.
type SearchComplete struct {
	Seq     int
	Query   string
	Results []caselaw.CaseRecord
	Err     error
}

// HistoryLoaded is sent when recent queries are read from the store.
type HistoryLoaded struct {
	Queries []string
	Err     error
}

// QueryRecorded is sent after a submitted query has been saved to the
// history store.
type QueryRecorded struct {
	Err error
}
