package ui

import (
	"strconv"
	"strings"

	"kanun/internal/caselaw"
)

// BuildDocument renders the normalized document body for the viewport.
// Every field of the normalized document is guaranteed present, so the
// renderer is a straight walk over the sections with no nil checks.
func BuildDocument(doc *caselaw.NormalizedDocument, quote string, width int) string {
	var b strings.Builder

	if strings.TrimSpace(quote) != "" {
		b.WriteString(CardQuote.Render("“" + strings.Join(strings.Fields(quote), " ") + "”"))
		b.WriteString("\n")
	}

	b.WriteString(SectionHeader.Render("General Information"))
	b.WriteString("\n")
	writeField(&b, "Subject", doc.Subject, width)
	writeField(&b, "Parties", doc.Parties, width)
	writeField(&b, "Opponents", doc.Opponents, width)
	writeField(&b, "Summary", doc.Summary, width)

	b.WriteString(SectionHeader.Render("Case Details"))
	b.WriteString("\n")
	writeField(&b, "Case Number", doc.CaseNumber, width)
	writeField(&b, "Decision Number", doc.DecisionNumber, width)
	writeField(&b, "Judgement Date", doc.JudgementDate, width)
	writeField(&b, "Judgement Type", doc.JudgementType, width)
	writeField(&b, "Bench", doc.BenchName, width)
	writeField(&b, "Judges", caselaw.FormatList(doc.Judges), width)
	writeField(&b, "Facts", doc.Facts, width)
	writeField(&b, "Judgment", doc.Judgment, width)
	writeField(&b, "Ratio Decidendi", doc.RatioDecidendi, width)
	writeField(&b, "Significance", doc.Significance, width)

	b.WriteString(SectionHeader.Render("Arguments"))
	b.WriteString("\n")
	writeField(&b, "Petitioner", doc.PetitionersArgument, width)
	writeField(&b, "Respondent", doc.RespondentsArgument, width)
	writeField(&b, "Court's Analysis", doc.CourtsAnalysis, width)

	b.WriteString(SectionHeader.Render("Legal Information"))
	b.WriteString("\n")
	writeField(&b, "Related Laws", caselaw.FormatList(doc.RelatedLaws), width)
	writeField(&b, "Keywords", caselaw.FormatList(doc.Keywords), width)
	if len(doc.Provisions) == 0 {
		writeField(&b, "Provisions", caselaw.NotAvailable, width)
	} else {
		for _, p := range doc.Provisions {
			writeField(&b, "Law", p.Law, width)
			writeField(&b, "  Section", p.SectionNumber, width)
			writeField(&b, "  Relevance", p.Relevance, width)
		}
	}

	b.WriteString(SectionHeader.Render("Nepal Kanun Patrika"))
	b.WriteString("\n")
	writeField(&b, "Year", doc.Citation.Year, width)
	writeField(&b, "Volume", doc.Citation.Volume, width)
	writeField(&b, "Issue", doc.Citation.Issue, width)
	writeField(&b, "Month", doc.Citation.Month, width)

	b.WriteString(SectionHeader.Render("Cited Precedents"))
	b.WriteString("\n")
	writeField(&b, "Precedents", caselaw.FormatList(doc.Precedents), width)
	for _, c := range doc.CitedPrecedents {
		writeField(&b, "Case", c.CaseNumber, width)
		writeField(&b, "  Decision", c.DecisionNumber, width)
		writeField(&b, "  Explanation", c.Explanation, width)
		for _, ref := range c.Citations {
			writeField(&b, "  NKP", formatCitation(ref), width)
		}
	}
	if doc.DisregardedCount > 0 {
		writeField(&b, "Disregarded", strconv.Itoa(doc.DisregardedCount)+" precedent(s)", width)
	}

	return b.String()
}

// formatCitation renders a publication citation on one line.
func formatCitation(c caselaw.Citation) string {
	return "साल " + c.Year + ", अंक " + c.Issue + ", भाग " + c.Volume + ", पृष्ठ " + c.Page
}

// writeField renders a "Label: value" line, wrapping the value to the
// given width.
func writeField(b *strings.Builder, label, value string, width int) {
	b.WriteString(FieldLabel.Render(label + ": "))
	b.WriteString(FieldValue.Render(wrap(value, width-runeLen(label)-4)))
	b.WriteString("\n")
}

// wrap breaks text into lines no longer than width runes, preserving
// words. Continuation lines are indented two spaces.
func wrap(s string, width int) string {
	if width < 16 {
		width = 16
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return s
	}

	var lines []string
	line := words[0]
	lineLen := runeLen(words[0])
	for _, w := range words[1:] {
		wl := runeLen(w)
		if lineLen+1+wl > width {
			lines = append(lines, line)
			line = w
			lineLen = wl
			continue
		}
		line += " " + w
		lineLen += 1 + wl
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n  ")
}

func runeLen(s string) int {
	return len([]rune(s))
}
