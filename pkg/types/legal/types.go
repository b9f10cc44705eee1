// Package legal defines the shared data model of the LegalAid-Assistant
// platform: the closed Domain enumeration, extracted entities, situation
// records, and the reference-table row types.  No behaviour lives here —
// only plain data types and the Domain parser.
package legal

import (
	"fmt"
)

// ─────────────────────────────────────────────────────────────────────────────
// Domain — top-level legal category
// ─────────────────────────────────────────────────────────────────────────────

// Domain is the top-level legal category a piece of text is classified into.
// The value doubles as the display label, which is why the constants carry
// spaces rather than identifiers.
type Domain string

const (
	DomainLabor    Domain = "Labor Law"
	DomainCriminal Domain = "Criminal Law"
	DomainCivil    Domain = "Civil Law"
	DomainFamily   Domain = "Family Law"
	DomainProperty Domain = "Property Law"

	// DomainGeneral is the fallback returned when no domain keyword matches.
	DomainGeneral Domain = "General Law"
)

// classifiedDomains is the fixed iteration order used for classification and
// tie-breaking.  Tie-break behaviour is part of the public contract, so this
// must stay an ordered slice, never a map.
var classifiedDomains = []Domain{
	DomainLabor,
	DomainCriminal,
	DomainCivil,
	DomainFamily,
	DomainProperty,
}

// Domains returns the five classified domains in their canonical order
// (Labor, Criminal, Civil, Family, Property).  DomainGeneral is excluded: it
// is a result label, not a scoring candidate.  The returned slice is a copy.
func Domains() []Domain {
	out := make([]Domain, len(classifiedDomains))
	copy(out, classifiedDomains)
	return out
}

// Valid reports whether d is a member of the closed Domain set, including
// DomainGeneral.
func (d Domain) Valid() bool {
	switch d {
	case DomainLabor, DomainCriminal, DomainCivil, DomainFamily, DomainProperty, DomainGeneral:
		return true
	}
	return false
}

// String implements fmt.Stringer.
func (d Domain) String() string { return string(d) }

// ErrInvalidDomain is returned by ParseDomain for values outside the closed
// set.  Lookups deeper in the pipeline deliberately do NOT produce this
// error — they fall back to Civil Law knowledge instead — but the API
// boundary rejects unknown labels explicitly so that callers cannot silently
// feed garbage through the fallback.
type ErrInvalidDomain struct {
	Value string
}

func (e *ErrInvalidDomain) Error() string {
	return fmt.Sprintf("legal: invalid domain %q", e.Value)
}

// ParseDomain converts a display label into a Domain.  It returns
// *ErrInvalidDomain for any value outside the closed set; the empty string is
// invalid too.
func ParseDomain(s string) (Domain, error) {
	d := Domain(s)
	if !d.Valid() {
		return "", &ErrInvalidDomain{Value: s}
	}
	return d, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Entity — extracted text span
// ─────────────────────────────────────────────────────────────────────────────

// EntityCategory labels an extracted span.  The wire values match the labels
// the reference tables were built with.
type EntityCategory string

const (
	CategoryPerson       EntityCategory = "PERSON"
	CategoryOrganization EntityCategory = "ORGANIZATION"
	CategoryDate         EntityCategory = "DATE"
	CategoryMoney        EntityCategory = "MONEY"
	CategoryLawReference EntityCategory = "LAW_REFERENCE"
	CategoryCourt        EntityCategory = "COURT"
	CategoryCaseNumber   EntityCategory = "CASE_NUMBER"
	CategoryLegalTerm    EntityCategory = "LEGAL_TERM"
)

// Entity is a span of input text tagged with a category.  Start and End are
// byte offsets into the original input; Text preserves the original casing.
// Entities carry no identity beyond the (Text, Start, End) triple.
type Entity struct {
	Text  string         `json:"text"`
	Label EntityCategory `json:"label"`
	Start int            `json:"start"`
	End   int            `json:"end"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Situation — a fact pattern within a domain
// ─────────────────────────────────────────────────────────────────────────────

// SituationKey names a situation inside a domain's knowledge bundle
// (e.g. "fired", "arrested", "eviction").
type SituationKey string

// Situation is the advice bundle for one specific fact pattern.  The three
// lists are ordered and emitted verbatim by the answer composer; the
// immediate actions already carry their "1." style numbering.
type Situation struct {
	Key              SituationKey `json:"key"`
	Title            string       `json:"title"`
	ImmediateActions []string     `json:"immediate_actions"`
	LegalOptions     []string     `json:"legal_options"`
	Resources        []string     `json:"resources"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Reference tables — statutes, cases, forms, resources
// ─────────────────────────────────────────────────────────────────────────────

// Statute is one row of the per-domain statute table.
type Statute struct {
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Section        string  `json:"section"`
	RelevanceScore float64 `json:"relevance_score"`
}

// Case is one row of the per-domain case-law table.
type Case struct {
	Title       string `json:"title"`
	Year        int    `json:"year"`
	Description string `json:"description"`
	Citation    string `json:"citation"`
}

// SearchResult is the payload of a knowledge-base search: the top statutes
// relevant to the query and the domain's leading cases.
type SearchResult struct {
	Statutes []Statute `json:"statutes"`
	Cases    []Case    `json:"cases"`
}

// Form describes a legal form relevant to a domain.
type Form struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Resource describes an external help resource for a domain.
type Resource struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
}
