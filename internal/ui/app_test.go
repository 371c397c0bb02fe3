package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"kanun/internal/caselaw"
)

// mockCmds tracks which command factories were invoked and with what.
type mockCmds struct {
	searchQuery   string
	searchSeq     int
	searchCalls   int
	historyCalls  int
	recordedQuery string
	recordedCount int
}

func (m *mockCmds) search(query string, seq int) tea.Cmd {
	m.searchQuery = query
	m.searchSeq = seq
	m.searchCalls++
	return func() tea.Msg {
		return SearchComplete{Seq: seq, Query: query}
	}
}

func (m *mockCmds) loadHistory() tea.Cmd {
	m.historyCalls++
	return func() tea.Msg {
		return HistoryLoaded{Queries: []string{"previous query"}}
	}
}

func (m *mockCmds) recordQuery(query string, count int) tea.Cmd {
	m.recordedQuery = query
	m.recordedCount = count
	return func() tea.Msg {
		return QueryRecorded{}
	}
}

func newTestApp(mock *mockCmds) App {
	app := NewApp(AppConfig{
		Search:      mock.search,
		LoadHistory: mock.loadHistory,
		RecordQuery: mock.recordQuery,
		Suggested:   []string{"starter one", "starter two"},
		DocBaseURL:  "https://example.test/full_detail/",
	})
	model, _ := app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return model.(App)
}

func sampleResults() []caselaw.CaseRecord {
	return []caselaw.CaseRecord{
		{ID: "1", Index: "9001", Subject: "First case", Quote: "a quote"},
		{ID: "2", Index: "9002", Subject: "Second case"},
		{ID: "3", Index: "9003", Subject: "Third case"},
	}
}

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestAppInitLoadsHistory(t *testing.T) {
	mock := &mockCmds{}
	app := NewApp(AppConfig{LoadHistory: mock.loadHistory})

	if cmd := app.Init(); cmd == nil {
		t.Fatal("Init should return a command")
	}
	if mock.historyCalls != 1 {
		t.Errorf("Init should request history once, got %d", mock.historyCalls)
	}
}

func TestAppSubmitStartsSearch(t *testing.T) {
	mock := &mockCmds{}
	app := newTestApp(mock)

	app.input.SetValue("land dispute")
	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	updated := model.(App)

	if !updated.searching {
		t.Error("submit should set searching")
	}
	if updated.query != "land dispute" {
		t.Errorf("query = %q, want %q", updated.query, "land dispute")
	}
	if updated.seq != 1 {
		t.Errorf("seq = %d, want 1", updated.seq)
	}
	if mock.searchQuery != "land dispute" || mock.searchSeq != 1 {
		t.Errorf("search called with (%q, %d)", mock.searchQuery, mock.searchSeq)
	}
	if cmd == nil {
		t.Error("submit should return a command batch")
	}
}

func TestAppSubmitIgnoresBlankQuery(t *testing.T) {
	mock := &mockCmds{}
	app := newTestApp(mock)

	app.input.SetValue("   ")
	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	updated := model.(App)

	if updated.searching {
		t.Error("blank query should not start a search")
	}
	if mock.searchCalls != 0 {
		t.Errorf("search called %d times, want 0", mock.searchCalls)
	}
}

func TestAppSearchCompletePopulatesResults(t *testing.T) {
	mock := &mockCmds{}
	app := newTestApp(mock)

	app.input.SetValue("query")
	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app = model.(App)

	model, _ = app.Update(SearchComplete{Seq: app.seq, Query: "query", Results: sampleResults()})
	updated := model.(App)

	if updated.searching {
		t.Error("completion should clear searching")
	}
	if len(updated.results) != 3 {
		t.Fatalf("results = %d, want 3", len(updated.results))
	}
	if updated.cursor != 0 {
		t.Errorf("cursor = %d, want 0", updated.cursor)
	}
	if mock.recordedQuery != "query" || mock.recordedCount != 3 {
		t.Errorf("recorded (%q, %d), want (query, 3)", mock.recordedQuery, mock.recordedCount)
	}
}

func TestAppDropsStaleCompletion(t *testing.T) {
	mock := &mockCmds{}
	app := newTestApp(mock)

	app.input.SetValue("first")
	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app = model.(App)

	app.input.Focus()
	app.input.SetValue("second")
	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app = model.(App)

	// The first request finishes late. Its seq is old, so its results
	// must not land.
	model, _ = app.Update(SearchComplete{Seq: 1, Query: "first", Results: sampleResults()})
	updated := model.(App)

	if len(updated.results) != 0 {
		t.Error("stale completion should be dropped")
	}
	if !updated.searching {
		t.Error("the newer request is still in flight")
	}

	model, _ = updated.Update(SearchComplete{Seq: 2, Query: "second", Results: sampleResults()[:1]})
	updated = model.(App)
	if len(updated.results) != 1 {
		t.Errorf("current completion should land, got %d results", len(updated.results))
	}
}

func TestAppSearchFailureKeepsResults(t *testing.T) {
	mock := &mockCmds{}
	app := newTestApp(mock)
	app.results = sampleResults()
	app.query = "old"

	app.input.Focus()
	app.input.SetValue("new")
	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app = model.(App)

	model, _ = app.Update(SearchComplete{Seq: app.seq, Query: "new", Err: errors.New("boom")})
	updated := model.(App)

	if updated.err == nil {
		t.Error("failure should surface the error")
	}
	if len(updated.results) != 3 {
		t.Error("failure should keep the previous results")
	}
	if updated.searching {
		t.Error("failure should clear searching")
	}
}

func TestAppNavigationAndSelect(t *testing.T) {
	mock := &mockCmds{}
	app := newTestApp(mock)
	app.results = sampleResults()
	app.query = "query"
	app.input.Blur()

	model, _ := app.Update(keyRunes('j'))
	updated := model.(App)
	if updated.cursor != 1 {
		t.Errorf("j should move cursor to 1, got %d", updated.cursor)
	}

	model, _ = updated.Update(keyRunes('G'))
	updated = model.(App)
	if updated.cursor != 2 {
		t.Errorf("G should move cursor to 2, got %d", updated.cursor)
	}

	model, _ = updated.Update(keyRunes('j'))
	updated = model.(App)
	if updated.cursor != 2 {
		t.Errorf("cursor should clamp at 2, got %d", updated.cursor)
	}

	model, _ = updated.Update(keyRunes('g'))
	updated = model.(App)
	if updated.cursor != 0 {
		t.Errorf("g should move cursor to 0, got %d", updated.cursor)
	}

	model, _ = updated.Update(tea.KeyMsg{Type: tea.KeyEnter})
	updated = model.(App)
	if updated.view != viewDocument {
		t.Fatal("enter should open the document view")
	}
	if updated.doc == nil {
		t.Fatal("opening a result should normalize it")
	}
	if updated.doc.Subject != "First case" {
		t.Errorf("doc subject = %q", updated.doc.Subject)
	}
}

func TestAppBackPreservesResults(t *testing.T) {
	mock := &mockCmds{}
	app := newTestApp(mock)
	app.results = sampleResults()
	app.query = "query"
	app.input.Blur()

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app = model.(App)
	if app.view != viewDocument {
		t.Fatal("expected document view")
	}

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	updated := model.(App)

	if updated.view != viewSearch {
		t.Error("esc should return to the search view")
	}
	if updated.doc != nil || updated.selected != nil {
		t.Error("back should drop the open document")
	}
	if len(updated.results) != 3 || updated.query != "query" {
		t.Error("back should preserve the result list and query")
	}
}

func TestAppClearResets(t *testing.T) {
	mock := &mockCmds{}
	app := newTestApp(mock)
	app.results = sampleResults()
	app.query = "query"
	app.err = errors.New("stale error")
	app.input.Blur()

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	updated := model.(App)

	if len(updated.results) != 0 || updated.query != "" || updated.err != nil {
		t.Error("clear should reset results, query and error")
	}
	if !updated.input.Focused() {
		t.Error("clear should refocus the input")
	}
}

func TestAppSuggestionPoolMergesHistoryFirst(t *testing.T) {
	mock := &mockCmds{}
	app := newTestApp(mock)
	app.history = []string{"recent", "starter one"}

	pool := app.suggestionPool()
	want := []string{"recent", "starter one", "starter two"}
	if len(pool) != len(want) {
		t.Fatalf("pool = %v, want %v", pool, want)
	}
	for i := range want {
		if pool[i] != want[i] {
			t.Errorf("pool[%d] = %q, want %q", i, pool[i], want[i])
		}
	}
}

func TestAppTabCyclesSuggestions(t *testing.T) {
	mock := &mockCmds{}
	app := newTestApp(mock)

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyTab})
	updated := model.(App)
	if got := updated.input.Value(); got != "starter one" {
		t.Errorf("first tab fills %q, want %q", got, "starter one")
	}

	model, _ = updated.Update(tea.KeyMsg{Type: tea.KeyTab})
	updated = model.(App)
	if got := updated.input.Value(); got != "starter two" {
		t.Errorf("second tab fills %q, want %q", got, "starter two")
	}

	model, _ = updated.Update(tea.KeyMsg{Type: tea.KeyTab})
	updated = model.(App)
	if got := updated.input.Value(); got != "starter one" {
		t.Errorf("tab should wrap around, got %q", got)
	}
}

func TestAppViewShowsResultsHeader(t *testing.T) {
	mock := &mockCmds{}
	app := newTestApp(mock)
	app.results = sampleResults()[:2]
	app.query = "भन्सार"

	view := app.View()
	if !containsAll(view, "2 results for", "भन्सार") {
		t.Errorf("view missing results header:\n%s", view)
	}
}

func TestAppDocumentViewShowsLink(t *testing.T) {
	mock := &mockCmds{}
	app := newTestApp(mock)
	app.results = sampleResults()
	app.query = "query"
	app.input.Blur()

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	updated := model.(App)

	view := updated.View()
	if !containsAll(view, "https://example.test/full_detail/9001") {
		t.Errorf("document view missing full document link:\n%s", view)
	}
}

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
