// Package extract implements pattern-based legal entity extraction.
//
// Two matcher families run over the input: structural regular expressions
// (names, organizations, dates, money, statute references, courts, case
// numbers) and a fixed vocabulary of legal role/procedure terms matched
// case-insensitively as substrings.  All matches are merged, deduplicated on
// the exact (text, start, end) triple, and returned sorted by start offset.
// Overlapping matches with different spans both survive — only byte-identical
// triples collapse.
package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/turtacn/LegalAid-Assistant/pkg/types/legal"
)

// structuralPattern couples an entity category with its compiled expression.
// The slice order is the merge order, which matters for entities that share a
// start offset: the sort below is stable.
type structuralPattern struct {
	label   legal.EntityCategory
	pattern *regexp.Regexp
}

// The person and organization patterns are deliberately case-sensitive —
// capitalization is the signal.  The remaining patterns accept any casing.
var structuralPatterns = []structuralPattern{
	{legal.CategoryPerson, regexp.MustCompile(`\b[A-Z][a-z]+ [A-Z][a-z]+\b`)},
	{legal.CategoryOrganization, regexp.MustCompile(`\b[A-Z][a-zA-Z\s&]+(?:Corp|Inc|LLC|Ltd|Company|Law Firm|Court)\b`)},
	{legal.CategoryDate, regexp.MustCompile(`(?i)\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b|\b(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},?\s+\d{4}\b`)},
	{legal.CategoryMoney, regexp.MustCompile(`(?i)\$\d+(?:,\d{3})*(?:\.\d{2})?|\d+(?:,\d{3})*(?:\.\d{2})?\s*(?:dollars|USD)`)},
	{legal.CategoryLawReference, regexp.MustCompile(`(?i)\b(?:Section|Article|Chapter|Title)\s+\d+[A-Z]?\b`)},
	{legal.CategoryCourt, regexp.MustCompile(`(?i)\b(?:Supreme Court|District Court|Circuit Court|Appeals Court|Federal Court)\b`)},
	{legal.CategoryCaseNumber, regexp.MustCompile(`(?i)\b(?:Case|Docket)\s+(?:No\.?|Number)\s+[A-Z0-9-]+\b`)},
}

// legalTerms is the role/procedure vocabulary matched as case-insensitive
// substrings.  Every occurrence is recorded with its original casing and
// position; no word-boundary check is applied, so "attorneys" yields an
// "attorney" span.
var legalTerms = []string{
	"attorney", "lawyer", "judge", "plaintiff", "defendant", "witness",
	"evidence", "testimony", "verdict", "appeal", "motion", "hearing",
	"trial", "settlement", "damages", "compensation", "liability", "negligence",
}

var legalTermPatterns = func() []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(legalTerms))
	for i, term := range legalTerms {
		out[i] = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(term))
	}
	return out
}()

type entityKey struct {
	text  string
	start int
	end   int
}

// Extract returns every entity found in text, deduplicated and sorted by
// start offset.  Offsets are byte positions into the original input; Text
// preserves the original casing.  Extract is pure and never fails — the
// empty string yields an empty slice.
func Extract(text string) []legal.Entity {
	var entities []legal.Entity

	for _, sp := range structuralPatterns {
		for _, loc := range sp.pattern.FindAllStringIndex(text, -1) {
			entities = append(entities, legal.Entity{
				Text:  text[loc[0]:loc[1]],
				Label: sp.label,
				Start: loc[0],
				End:   loc[1],
			})
		}
	}

	lower := strings.ToLower(text)
	for i, term := range legalTerms {
		// Cheap containment check before the regex scan.
		if !strings.Contains(lower, term) {
			continue
		}
		for _, loc := range legalTermPatterns[i].FindAllStringIndex(text, -1) {
			entities = append(entities, legal.Entity{
				Text:  text[loc[0]:loc[1]],
				Label: legal.CategoryLegalTerm,
				Start: loc[0],
				End:   loc[1],
			})
		}
	}

	// Stable sort keeps the merge order for entities sharing a start offset,
	// then exact-triple dedup.  Overlapping but differently-spanned matches
	// are all legitimate results.
	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].Start < entities[j].Start
	})

	seen := make(map[entityKey]struct{}, len(entities))
	unique := entities[:0]
	for _, e := range entities {
		k := entityKey{e.Text, e.Start, e.End}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		unique = append(unique, e)
	}
	return unique
}

// Texts projects the Text field of each entity, preserving order.  The
// interfaces layer uses this for display lists.
func Texts(entities []legal.Entity) []string {
	out := make([]string, len(entities))
	for i, e := range entities {
		out[i] = e.Text
	}
	return out
}
