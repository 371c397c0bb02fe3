package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"kanun/internal/caselaw"
)

// viewState identifies which screen the app is showing.
type viewState int

const (
	viewSearch viewState = iota
	viewDocument
)

// AppConfig carries the command factories and static configuration the
// App needs. The App never touches the network or the store directly;
// it receives results via messages.
type AppConfig struct {
	// Search returns a Cmd that runs the query and delivers a
	// SearchComplete stamped with seq.
	Search func(query string, seq int) tea.Cmd
	// LoadHistory returns a Cmd that reads recent queries.
	LoadHistory func() tea.Cmd
	// RecordQuery returns a Cmd that saves a completed query.
	RecordQuery func(query string, resultCount int) tea.Cmd

	// Suggested queries shown before the user has any history.
	Suggested []string
	// DocBaseURL is the external full-document viewer prefix.
	DocBaseURL string
}

// App is the root Bubble Tea model.
type App struct {
	cfg AppConfig

	view  viewState
	input textinput.Model
	spin  spinner.Model
	vp    viewport.Model

	query     string
	results   []caselaw.CaseRecord
	cursor    int
	searching bool
	// seq is bumped on every submission; completions carrying an older
	// seq are stale and ignored.
	seq int

	selected *caselaw.CaseRecord
	doc      *caselaw.NormalizedDocument

	history    []string
	suggestIdx int

	err    error
	width  int
	height int
	ready  bool
}

// NewApp creates the root model.
func NewApp(cfg AppConfig) App {
	input := textinput.New()
	input.Placeholder = "Search case law..."
	input.CharLimit = 512
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = SearchingStyle

	return App{
		cfg:        cfg,
		view:       viewSearch,
		input:      input,
		spin:       spin,
		suggestIdx: -1,
	}
}

// Init starts the cursor blink and loads query history.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if a.cfg.LoadHistory != nil {
		cmds = append(cmds, a.cfg.LoadHistory())
	}
	return tea.Batch(cmds...)
}

// Update handles messages and returns the updated model and any commands.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.input.Width = msg.Width - 8
		a.vp.Width = msg.Width
		a.vp.Height = msg.Height - 6
		if a.vp.Height < 1 {
			a.vp.Height = 1
		}
		if a.doc != nil {
			a.vp.SetContent(BuildDocument(a.doc, a.selectedQuote(), a.vp.Width-2))
		}
		a.ready = true
		return a, nil

	case spinner.TickMsg:
		if !a.searching {
			return a, nil
		}
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case SearchComplete:
		if msg.Seq != a.seq {
			// A newer query superseded this one.
			return a, nil
		}
		a.searching = false
		if msg.Err != nil {
			a.err = msg.Err
			return a, nil
		}
		a.results = msg.Results
		a.err = nil
		a.cursor = 0
		a.rememberQuery(msg.Query)
		if a.cfg.RecordQuery != nil {
			return a, a.cfg.RecordQuery(msg.Query, len(msg.Results))
		}
		return a, nil

	case HistoryLoaded:
		if msg.Err == nil {
			a.history = msg.Queries
		}
		return a, nil

	case QueryRecorded:
		// History writes are best-effort; failures are already logged.
		return a, nil
	}

	if a.view == viewSearch && a.input.Focused() {
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

// handleKeyMsg routes keyboard input by view.
func (a App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.view {
	case viewDocument:
		return a.handleDocumentKey(msg)
	default:
		return a.handleSearchKey(msg)
	}
}

// handleSearchKey processes keys on the search screen.
func (a App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.input.Focused() {
		switch msg.String() {
		case "enter":
			return a.submit(a.input.Value())
		case "tab":
			a.cycleSuggestion()
			return a, nil
		case "esc":
			a.input.Blur()
			return a, nil
		case "ctrl+l":
			return a.clear()
		}
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "/", "i":
		a.input.Focus()
		return a, textinput.Blink
	case "j", "down":
		if a.cursor < len(a.results)-1 {
			a.cursor++
		}
		return a, nil
	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil
	case "g", "home":
		a.cursor = 0
		return a, nil
	case "G", "end":
		if len(a.results) > 0 {
			a.cursor = len(a.results) - 1
		}
		return a, nil
	case "enter":
		return a.openSelected()
	case "r":
		if a.query != "" {
			return a.submit(a.query)
		}
		return a, nil
	case "ctrl+l":
		return a.clear()
	}
	return a, nil
}

// handleDocumentKey processes keys on the document screen. Scrolling is
// delegated to the viewport, so esc and backspace are the only way back.
func (a App) handleDocumentKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace":
		a.view = viewSearch
		a.selected = nil
		a.doc = nil
		return a, nil
	case "q":
		return a, tea.Quit
	}
	var cmd tea.Cmd
	a.vp, cmd = a.vp.Update(msg)
	return a, cmd
}

// submit launches a search for the given query. Whitespace-only input
// is ignored.
func (a App) submit(query string) (tea.Model, tea.Cmd) {
	query = strings.TrimSpace(query)
	if query == "" {
		return a, nil
	}
	a.query = query
	a.seq++
	a.searching = true
	a.err = nil
	a.suggestIdx = -1
	a.input.SetValue(query)
	a.input.Blur()

	cmds := []tea.Cmd{a.spin.Tick}
	if a.cfg.Search != nil {
		cmds = append(cmds, a.cfg.Search(query, a.seq))
	}
	return a, tea.Batch(cmds...)
}

// openSelected switches to the document view for the cursored result.
func (a App) openSelected() (tea.Model, tea.Cmd) {
	if a.cursor < 0 || a.cursor >= len(a.results) {
		return a, nil
	}
	a.selected = &a.results[a.cursor]
	doc := caselaw.Normalize(*a.selected)
	a.doc = &doc
	a.view = viewDocument

	width := a.vp.Width - 2
	if width < 20 {
		width = 78
	}
	a.vp.SetContent(BuildDocument(a.doc, a.selected.Quote, width))
	a.vp.GotoTop()
	return a, nil
}

// clear resets the search screen to its initial state.
func (a App) clear() (tea.Model, tea.Cmd) {
	a.query = ""
	a.results = nil
	a.cursor = 0
	a.err = nil
	a.searching = false
	a.suggestIdx = -1
	a.input.SetValue("")
	a.input.Focus()
	return a, textinput.Blink
}

// cycleSuggestion tabs through history-then-suggested queries, filling
// the input with each in turn.
func (a *App) cycleSuggestion() {
	pool := a.suggestionPool()
	if len(pool) == 0 {
		return
	}
	a.suggestIdx = (a.suggestIdx + 1) % len(pool)
	a.input.SetValue(pool[a.suggestIdx])
	a.input.CursorEnd()
}

// suggestionPool merges recent history ahead of the configured starter
// queries, deduplicated, history first.
func (a App) suggestionPool() []string {
	seen := make(map[string]bool, len(a.history)+len(a.cfg.Suggested))
	pool := make([]string, 0, len(a.history)+len(a.cfg.Suggested))
	for _, q := range a.history {
		if q == "" || seen[q] {
			continue
		}
		seen[q] = true
		pool = append(pool, q)
	}
	for _, q := range a.cfg.Suggested {
		if q == "" || seen[q] {
			continue
		}
		seen[q] = true
		pool = append(pool, q)
	}
	return pool
}

// rememberQuery prepends a query to the in-memory history, dedupes it,
// and keeps the list short.
func (a *App) rememberQuery(query string) {
	merged := make([]string, 0, len(a.history)+1)
	merged = append(merged, query)
	for _, q := range a.history {
		if q != query {
			merged = append(merged, q)
		}
	}
	if len(merged) > 20 {
		merged = merged[:20]
	}
	a.history = merged
}

// selectedQuote returns the quote for the open document, if any.
func (a App) selectedQuote() string {
	if a.selected == nil {
		return ""
	}
	return a.selected.Quote
}

// View renders the current screen.
func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}
	if a.view == viewDocument {
		return a.renderDocumentView()
	}
	return a.renderSearchView()
}

// renderSearchView renders the search screen: input, results or
// suggestions, and the status bar.
func (a App) renderSearchView() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("What are you looking for?"))
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render("Search Nepali case law by topic, party, or legal question."))
	b.WriteString("\n")
	b.WriteString("  " + a.input.View())
	b.WriteString("\n\n")

	if a.searching {
		b.WriteString(a.spin.View() + SearchingStyle.Render("Searching for "+a.query+"..."))
		b.WriteString("\n")
	}
	if a.err != nil {
		b.WriteString(ErrorStyle.Render("Error: " + a.err.Error()))
		b.WriteString("\n")
	}

	if len(a.results) > 0 {
		b.WriteString(RenderResultsHeader(len(a.results), a.query))
		b.WriteString("\n\n")
		listHeight := a.height - 12
		if listHeight < cardLines {
			listHeight = cardLines
		}
		b.WriteString(RenderResults(a.results, a.cursor, a.width, listHeight))
	} else if !a.searching && a.query == "" {
		b.WriteString(a.renderSuggestions())
	} else if !a.searching && a.err == nil && a.query != "" {
		b.WriteString(HelpStyle.Render("No results for \"" + a.query + "\"."))
		b.WriteString("\n")
	}

	body := b.String()
	bar := RenderStatusBar(a.searchHints(), "kanun", a.width)
	return padToHeight(body, a.height-1) + bar
}

// renderSuggestions shows recent and starter queries.
func (a App) renderSuggestions() string {
	pool := a.suggestionPool()
	if len(pool) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(SuggestionHeader.Render("Suggested searches"))
	b.WriteString("\n")
	limit := len(pool)
	if limit > 10 {
		limit = 10
	}
	for _, q := range pool[:limit] {
		b.WriteString(SuggestionItem.Render("• " + q))
		b.WriteString("\n")
	}
	return b.String()
}

// renderDocumentView renders the document screen: header, scrollable
// body, and the status bar.
func (a App) renderDocumentView() string {
	if a.doc == nil {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(DocTitle.Render(a.doc.Subject))
	b.WriteString("\n")
	b.WriteString(DocMeta.Render(a.doc.JudgementType + " · " + a.doc.Judgment + " · " + a.doc.JudgementDate))
	b.WriteString("\n")
	b.WriteString(DocLink.Render(a.fullDocumentURL()))
	b.WriteString("\n\n")
	b.WriteString(a.vp.View())
	b.WriteString("\n")

	left := fmt.Sprintf("%3.0f%%", a.vp.ScrollPercent()*100)
	b.WriteString(RenderStatusBar(a.documentHints(), left, a.width))
	return b.String()
}

// fullDocumentURL is the external viewer link for the open document.
func (a App) fullDocumentURL() string {
	if a.doc == nil || a.doc.Index == "" {
		return caselaw.NotAvailable
	}
	return a.cfg.DocBaseURL + a.doc.Index
}

func (a App) searchHints() [][2]string {
	if a.input.Focused() {
		return [][2]string{
			{"enter", "search"},
			{"tab", "suggest"},
			{"esc", "browse"},
			{"ctrl+l", "clear"},
			{"ctrl+c", "quit"},
		}
	}
	return [][2]string{
		{"/", "search"},
		{"j/k", "move"},
		{"enter", "open"},
		{"r", "retry"},
		{"q", "quit"},
	}
}

func (a App) documentHints() [][2]string {
	return [][2]string{
		{"j/k", "scroll"},
		{"pgup/pgdn", "page"},
		{"esc", "back"},
		{"q", "quit"},
	}
}

// padToHeight pads body with newlines so the status bar lands on the
// last row.
func padToHeight(body string, height int) string {
	lines := strings.Count(body, "\n") + 1
	if lines >= height {
		return body
	}
	return body + strings.Repeat("\n", height-lines)
}
