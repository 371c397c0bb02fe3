// Package caselaw provides the case record wire types and the
// normalization layer that turns them into a renderable document.
//
// The search service returns records of mixed provenance: snake_case
// legacy fields sit next to PascalCase structured ones, the same concept
// can appear twice (a flat summary string and a structured summary
// object), and any nested object may be missing entirely. CaseRecord
// mirrors that shape faithfully; Normalize resolves it.
package caselaw

import (
	"encoding/json"
	"strconv"
	"strings"
)

// CaseRecord is a single search result exactly as the service sends it.
// Only ID, Index and Similarity are reliably present; every other field
// must be treated as optional.
type CaseRecord struct {
	ID         string `json:"id,omitempty"`
	Index      string `json:"index"`
	Similarity string `json:"similarity"`
	Quote      string `json:"quote"`

	Subject   string `json:"subject"`
	Parties   string `json:"parties"`
	Opponents string `json:"opponents"`
	Date      string `json:"date"`
	Topic     string `json:"topic"`
	Outcome   string `json:"outcome"`

	// LegacySummary is the flat summary string older records carry.
	// Newer records put the summary text in Summary instead; some carry
	// both. Normalize picks the winner.
	LegacySummary string        `json:"case_summary"`
	Summary       *SummaryField `json:"CaseSummary,omitempty"`

	BenchName      string      `json:"bench_name"`
	CaseNumber     string      `json:"case_number"`
	DecisionNumber json.Number `json:"decision_number,omitempty"`
	JudgementDate  string      `json:"judgement_date"`
	JudgementType  string      `json:"judgement_type"`
	Judges         []string    `json:"judges"`

	Patrika *PatrikaCitation `json:"nepal_kanun_patrika,omitempty"`

	Precedents  []string `json:"precedents"`
	RelatedLaws []string `json:"related_laws"`

	Argument       *ArgumentGroup `json:"Argument,omitempty"`
	CourtsAnalysis string         `json:"CourtsAnalysis"`
	Facts          *FactsGroup    `json:"Facts,omitempty"`
	Judgment       string         `json:"Judgment"`
	Keywords       []string       `json:"Keywords"`

	LegalProvisions       *ProvisionGroup   `json:"LegalProvisions,omitempty"`
	PrecedentsCited       []CitedPrecedent  `json:"PrecedentsCited"`
	PrecedentsDisregarded []json.RawMessage `json:"PrecedentsDisregarded"`

	RatioDecidendi string `json:"RatioDecidendi"`
	Significance   string `json:"Significance"`
}

// SummaryField tolerates both shapes the service emits for CaseSummary:
// a bare string in condensed results and an object with
// SummaryOfTheIssue in full records.
type SummaryField struct {
	SummaryOfTheIssue string `json:"SummaryOfTheIssue"`
}

// UnmarshalJSON accepts either a JSON string or an object. Anything
// else is ignored rather than rejected; the record stays usable.
func (s *SummaryField) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return nil
		}
		s.SummaryOfTheIssue = text
		return nil
	}
	type alias SummaryField
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return nil
	}
	*s = SummaryField(a)
	return nil
}

// PatrikaCitation is the top-level, simplified Nepal Kanun Patrika
// citation. All fields arrive as strings here, unlike the numeric
// variant nested inside cited precedents.
type PatrikaCitation struct {
	Issue  string `json:"issue"`
	Month  string `json:"month"`
	Volume string `json:"volume"`
	Year   string `json:"year"`
}

// ArgumentGroup holds the two parties' arguments. Either side may be
// missing independently of the other.
type ArgumentGroup struct {
	PetitionersArgument string `json:"PetitionersArgument"`
	RespondentsArgument string `json:"RespondentsArgument"`
}

// FactsGroup wraps the optional facts-of-the-case text.
type FactsGroup struct {
	FactsOfTheCase string `json:"FactsOfTheCase"`
}

// ProvisionGroup wraps the list of relevant legal provisions.
type ProvisionGroup struct {
	RelevantLegalProvisions []RawProvision `json:"RelevantLegalProvisions"`
}

// RawProvision is one legal provision reference as received.
type RawProvision struct {
	Law           string `json:"Law"`
	Relevance     string `json:"Relevance"`
	SectionNumber string `json:"SectionNumber"`
}

// CitedPrecedent is the richer precedent reference, with its own
// publication citations carried as numbers.
type CitedPrecedent struct {
	CaseNumber        string            `json:"CaseNumber"`
	DecisionNumber    json.Number       `json:"DecisionNumber,omitempty"`
	Explanation       string            `json:"Explanation"`
	NepalKanunPatrika []NumericCitation `json:"NepalKanunPatrika"`
}

// NumericCitation is the publication citation variant used inside
// cited precedents, where the service emits numbers instead of strings.
type NumericCitation struct {
	Issue  json.Number `json:"Issue,omitempty"`
	Month  json.Number `json:"Month,omitempty"`
	Page   json.Number `json:"Page,omitempty"`
	Volume json.Number `json:"Volume,omitempty"`
	Year   json.Number `json:"Year,omitempty"`
}

// numberString renders a json.Number for display, treating a zero-value
// number as absent. The service uses 0 as its own "missing" marker for
// decision numbers.
func numberString(n json.Number) string {
	s := n.String()
	if s == "" || s == "0" {
		return ""
	}
	if f, err := n.Float64(); err == nil && f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return s
}
