package ui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"kanun/internal/caselaw"
)

// cardLines is how many terminal lines one result card occupies,
// including the trailing separator line.
const cardLines = 4

// RenderResults renders the result card list. Cards show raw record
// fields directly; normalization only happens when a card is opened.
func RenderResults(results []caselaw.CaseRecord, cursor int, width, height int) string {
	if len(results) == 0 {
		return ""
	}

	var b strings.Builder

	visible := height / cardLines
	if visible < 1 {
		visible = 1
	}
	offset := 0
	if cursor >= visible {
		offset = cursor - visible + 1
	}

	for i := offset; i < len(results) && i < offset+visible; i++ {
		b.WriteString(renderCard(results[i], i == cursor, width))
		b.WriteString("\n")
	}

	return b.String()
}

// renderCard renders one result as a three-line card.
func renderCard(r caselaw.CaseRecord, selected bool, width int) string {
	subjectStyle := NormalCard
	if selected {
		subjectStyle = SelectedCard
	}

	marker := "  "
	if selected {
		marker = "▶ "
	}

	subject := r.Subject
	if strings.TrimSpace(subject) == "" {
		subject = caselaw.NotAvailable
	}
	subject = truncate(subject, width-6)

	meta := cardMetaLine(r, width-6)
	quote := truncate(strings.Join(strings.Fields(r.Quote), " "), width-8)

	lines := []string{
		marker + subjectStyle.Render(subject),
		"  " + CardMeta.Render(meta),
	}
	if quote != "" {
		lines = append(lines, "  "+CardQuote.Render("“"+quote+"”"))
	} else {
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

// cardMetaLine builds the parties/similarity/type/date line from raw
// fields, skipping whatever the record does not carry.
func cardMetaLine(r caselaw.CaseRecord, maxWidth int) string {
	var parts []string
	if strings.TrimSpace(r.Parties) != "" {
		versus := r.Parties
		if strings.TrimSpace(r.Opponents) != "" {
			versus += " vs " + r.Opponents
		}
		parts = append(parts, versus)
	}
	if strings.TrimSpace(r.Similarity) != "" {
		parts = append(parts, r.Similarity+"%")
	}
	if strings.TrimSpace(r.JudgementType) != "" {
		parts = append(parts, r.JudgementType)
	}
	if strings.TrimSpace(r.JudgementDate) != "" {
		parts = append(parts, r.JudgementDate)
	}
	if len(parts) == 0 {
		return caselaw.NotAvailable
	}
	return truncate(strings.Join(parts, " · "), maxWidth)
}

// RenderResultsHeader renders the "N results for <query>" line.
func RenderResultsHeader(count int, query string) string {
	plural := "s"
	if count == 1 {
		plural = ""
	}
	text := fmt.Sprintf("%d result%s for ", count, plural)
	return ResultsHeader.Render(text + QueryEcho.Render(query))
}

// RenderStatusBar renders the bottom status bar with key hints.
func RenderStatusBar(hints [][2]string, left string, width int) string {
	keys := make([]string, 0, len(hints))
	for _, h := range hints {
		keys = append(keys, StatusBarKey.Render(h[0])+StatusBarText.Render(":"+h[1]))
	}
	keyHints := strings.Join(keys, " ")

	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(keyHints)
	padding := width - leftWidth - rightWidth
	if padding < 0 {
		padding = 0
	}

	bar := left + strings.Repeat(" ", padding) + keyHints
	return StatusBar.Width(width).Render(bar)
}

// truncate shortens a string to maxLen runes, adding ".." if truncated.
// Rune-aware so Devanagari text is not split mid-character.
func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	if maxLen <= 2 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-2]) + ".."
}
