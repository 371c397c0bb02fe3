package ui

import "github.com/charmbracelet/lipgloss"

// Colors used in the application.
var (
	colorPrimary   = lipgloss.Color("62")  // Purple
	colorSecondary = lipgloss.Color("241") // Gray
	colorMuted     = lipgloss.Color("240") // Darker gray
	colorHighlight = lipgloss.Color("212") // Pink
	colorAccent    = lipgloss.Color("75")  // Blue
)

// TitleStyle for the main heading on the search screen.
var TitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorPrimary).
	Padding(1, 2, 0, 2)

// SubtitleStyle for the line under the heading.
var SubtitleStyle = lipgloss.NewStyle().
	Foreground(colorSecondary).
	Padding(0, 2, 1, 2)

// SelectedCard style for the highlighted result card's subject line.
var SelectedCard = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorPrimary).
	Padding(0, 1)

// NormalCard style for unselected result subjects.
var NormalCard = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Padding(0, 1)

// CardMeta style for the parties/similarity/date line of a card.
var CardMeta = lipgloss.NewStyle().
	Foreground(colorSecondary).
	Padding(0, 1)

// CardQuote style for the highlighted quote snippet.
var CardQuote = lipgloss.NewStyle().
	Foreground(colorMuted).
	Italic(true).
	Padding(0, 1)

// ResultsHeader style for the "N results for ..." line.
var ResultsHeader = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Padding(0, 1)

// QueryEcho style for the query text inside the results header.
var QueryEcho = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorHighlight)

// SearchingStyle for the in-flight indicator line.
var SearchingStyle = lipgloss.NewStyle().
	Foreground(colorSecondary).
	Padding(0, 1)

// SuggestionHeader style for the suggested-searches label.
var SuggestionHeader = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorAccent).
	Padding(1, 1, 0, 1)

// SuggestionItem style for a suggested query line.
var SuggestionItem = lipgloss.NewStyle().
	Foreground(colorSecondary).
	Padding(0, 2)

// DocTitle style for the document view subject.
var DocTitle = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorPrimary).
	Padding(0, 1)

// DocMeta style for the topic/verdict/date line under the subject.
var DocMeta = lipgloss.NewStyle().
	Foreground(colorSecondary).
	Padding(0, 1)

// DocLink style for the full-document URL.
var DocLink = lipgloss.NewStyle().
	Foreground(colorAccent).
	Underline(true).
	Padding(0, 1)

// SectionHeader style for document section titles.
var SectionHeader = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorAccent).
	MarginTop(1)

// FieldLabel style for field names inside a section.
var FieldLabel = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("252"))

// FieldValue style for field content.
var FieldValue = lipgloss.NewStyle().
	Foreground(lipgloss.Color("250"))

// StatusBar style for the bottom status bar.
var StatusBar = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

// StatusBarKey style for key hints in status bar.
var StatusBarKey = lipgloss.NewStyle().
	Foreground(colorHighlight).
	Bold(true)

// StatusBarText style for descriptive text in status bar.
var StatusBarText = lipgloss.NewStyle().
	Foreground(colorSecondary)

// ErrorStyle for displaying errors.
var ErrorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("196")).
	Bold(true).
	Padding(0, 1)

// HelpStyle for help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(colorMuted).
	Padding(1, 2)
