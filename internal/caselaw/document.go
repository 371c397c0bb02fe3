package caselaw

import "strings"

// NotAvailable is the fixed placeholder rendered for any text field the
// record does not supply. User-facing text is never blank.
const NotAvailable = "N/A"

// listSeparator joins human-readable lists for display.
const listSeparator = ", "

// NormalizedDocument is the canonical shape the document view renders.
// Every text field holds either real content or NotAvailable; every
// list field is a possibly-empty slice, never a meaningful nil; nested
// groups are flattened so no renderer has to nil-check.
type NormalizedDocument struct {
	ID    string
	Index string

	Subject        string
	Parties        string
	Opponents      string
	CaseNumber     string
	BenchName      string
	DecisionNumber string
	JudgementDate  string
	JudgementType  string
	Judgment       string
	Judges         []string

	Summary        string
	Facts          string
	Outcome        string
	RatioDecidendi string
	Significance   string

	PetitionersArgument string
	RespondentsArgument string

	CourtsAnalysis string
	RelatedLaws    []string
	Keywords       []string
	Precedents     []string
	Provisions     []Provision

	CitedPrecedents []CitedReference
	// DisregardedCount is how many disregarded-precedent entries the
	// record carried. The entries themselves are untyped upstream, so
	// only their presence is preserved.
	DisregardedCount int

	Citation Citation
}

// Provision is a normalized legal provision reference.
type Provision struct {
	Law           string
	SectionNumber string
	Relevance     string
}

// CitedReference is a normalized cited precedent.
type CitedReference struct {
	CaseNumber     string
	DecisionNumber string
	Explanation    string
	Citations      []Citation
}

// Citation is the normalized publication citation. Both the string and
// numeric wire variants resolve to this.
type Citation struct {
	Issue  string
	Month  string
	Page   string
	Volume string
	Year   string
}

// Normalize reconciles a raw case record into its canonical form. It is
// total: missing or malformed fields degrade to NotAvailable or an
// empty slice, never an error. It performs no sorting, deduplication or
// filtering; upstream order is preserved as-is.
func Normalize(raw CaseRecord) NormalizedDocument {
	doc := NormalizedDocument{
		ID:    raw.ID,
		Index: raw.Index,

		Subject:        fallback(raw.Subject),
		Parties:        fallback(raw.Parties),
		Opponents:      fallback(raw.Opponents),
		CaseNumber:     fallback(raw.CaseNumber),
		BenchName:      fallback(raw.BenchName),
		DecisionNumber: fallback(numberString(raw.DecisionNumber)),
		JudgementDate:  fallback(raw.JudgementDate, raw.Date),
		JudgementType:  fallback(raw.JudgementType, raw.Topic),
		Judgment:       fallback(raw.Judgment, raw.Outcome),
		Judges:         sequence(raw.Judges),

		Outcome:        fallback(raw.Outcome),
		RatioDecidendi: fallback(raw.RatioDecidendi),
		Significance:   fallback(raw.Significance),
		CourtsAnalysis: fallback(raw.CourtsAnalysis),

		RelatedLaws: sequence(raw.RelatedLaws),
		Keywords:    sequence(raw.Keywords),
		Precedents:  sequence(raw.Precedents),

		DisregardedCount: len(raw.PrecedentsDisregarded),
	}

	// Summary fallback pair: structured inner text wins over the legacy
	// flat string; the placeholder only when neither is present.
	structured := ""
	if raw.Summary != nil {
		structured = raw.Summary.SummaryOfTheIssue
	}
	doc.Summary = fallback(structured, raw.LegacySummary)

	// Nested optional groups resolve field-by-field; an absent group
	// behaves like a group of absent fields.
	if raw.Facts != nil {
		doc.Facts = fallback(raw.Facts.FactsOfTheCase)
	} else {
		doc.Facts = NotAvailable
	}
	if raw.Argument != nil {
		doc.PetitionersArgument = fallback(raw.Argument.PetitionersArgument)
		doc.RespondentsArgument = fallback(raw.Argument.RespondentsArgument)
	} else {
		doc.PetitionersArgument = NotAvailable
		doc.RespondentsArgument = NotAvailable
	}

	if raw.LegalProvisions != nil {
		doc.Provisions = make([]Provision, 0, len(raw.LegalProvisions.RelevantLegalProvisions))
		for _, p := range raw.LegalProvisions.RelevantLegalProvisions {
			doc.Provisions = append(doc.Provisions, Provision{
				Law:           fallback(p.Law),
				SectionNumber: fallback(p.SectionNumber),
				Relevance:     fallback(p.Relevance),
			})
		}
	} else {
		doc.Provisions = []Provision{}
	}

	doc.CitedPrecedents = make([]CitedReference, 0, len(raw.PrecedentsCited))
	for _, c := range raw.PrecedentsCited {
		ref := CitedReference{
			CaseNumber:     fallback(c.CaseNumber),
			DecisionNumber: fallback(numberString(c.DecisionNumber)),
			Explanation:    fallback(c.Explanation),
			Citations:      make([]Citation, 0, len(c.NepalKanunPatrika)),
		}
		for _, n := range c.NepalKanunPatrika {
			ref.Citations = append(ref.Citations, Citation{
				Issue:  fallback(numberString(n.Issue)),
				Month:  fallback(numberString(n.Month)),
				Page:   fallback(numberString(n.Page)),
				Volume: fallback(numberString(n.Volume)),
				Year:   fallback(numberString(n.Year)),
			})
		}
		doc.CitedPrecedents = append(doc.CitedPrecedents, ref)
	}

	if raw.Patrika != nil {
		doc.Citation = Citation{
			Issue:  fallback(raw.Patrika.Issue),
			Month:  fallback(raw.Patrika.Month),
			Page:   NotAvailable,
			Volume: fallback(raw.Patrika.Volume),
			Year:   fallback(raw.Patrika.Year),
		}
	} else {
		doc.Citation = Citation{
			Issue:  NotAvailable,
			Month:  NotAvailable,
			Page:   NotAvailable,
			Volume: NotAvailable,
			Year:   NotAvailable,
		}
	}

	return doc
}

// fallback returns the first candidate with non-whitespace content,
// else NotAvailable. Candidate order is the resolution priority.
func fallback(candidates ...string) string {
	for _, c := range candidates {
		if strings.TrimSpace(c) != "" {
			return c
		}
	}
	return NotAvailable
}

// sequence maps a possibly-nil slice to a non-nil one, preserving order
// and contents exactly.
func sequence(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

// FormatList joins a list for display, substituting the placeholder
// only when the whole list is empty.
func FormatList(items []string) string {
	if len(items) == 0 {
		return NotAvailable
	}
	return strings.Join(items, listSeparator)
}
