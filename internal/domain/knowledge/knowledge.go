// Package knowledge is the in-process legal knowledge base: per-domain
// rights, situation advice bundles, statute and case-law tables, legal
// forms, and external resources.
//
// All data is static and compiled in.  Lookups never fail: a domain with no
// bundle of its own (General Law, or anything unexpected) falls back to the
// Civil Law bundle, which carries the most broadly applicable advice.  The
// reference, form, and resource tables fall back differently — see each
// accessor.
package knowledge

import (
	"sort"
	"strings"

	"github.com/turtacn/LegalAid-Assistant/pkg/types/legal"
)

// Bundle is the knowledge attached to one domain: a narrative context, the
// ordered list of legal rights, and the situation advice records keyed by
// situation.
type Bundle struct {
	Domain     legal.Domain
	Context    string
	Rights     []string
	situations map[legal.SituationKey]legal.Situation
}

// ForDomain returns the knowledge bundle for d.  Domains without a bundle of
// their own resolve to the Civil Law bundle; callers therefore always get
// usable rights and situations back, never a zero Bundle.
func ForDomain(d legal.Domain) Bundle {
	if b, ok := bundles[d]; ok {
		return b
	}
	return bundles[legal.DomainCivil]
}

// Situation returns the advice record for key within the bundle.  The second
// return value reports whether the bundle knows the key.
func (b Bundle) Situation(key legal.SituationKey) (legal.Situation, bool) {
	s, ok := b.situations[key]
	return s, ok
}

// TopRights returns the first n rights of the bundle, or all of them when
// fewer exist.  The answer composer surfaces the top four.
func (b Bundle) TopRights(n int) []string {
	if n > len(b.Rights) {
		n = len(b.Rights)
	}
	out := make([]string, n)
	copy(out, b.Rights[:n])
	return out
}

// References returns the statutory references for d.  Unlike ForDomain this
// does not fall back to Civil Law: an unknown domain gets the generic
// "consult local laws" pointer.
func References(d legal.Domain) []string {
	if refs, ok := references[d]; ok {
		out := make([]string, len(refs))
		copy(out, refs)
		return out
	}
	return []string{"Consult local laws and regulations"}
}

// Forms returns the legal forms relevant to d, or an empty slice for domains
// without a form table.
func Forms(d legal.Domain) []legal.Form {
	forms := formTables[d]
	out := make([]legal.Form, len(forms))
	copy(out, forms)
	return out
}

// Resources returns the external help resources for d, or an empty slice for
// domains without a resource table.
func Resources(d legal.Domain) []legal.Resource {
	resources := resourceTables[d]
	out := make([]legal.Resource, len(resources))
	copy(out, resources)
	return out
}

// Search limits applied to every query.
const (
	maxStatuteResults = 3
	maxCaseResults    = 2
)

// Search matches query against d's statute table and returns the top three
// statutes by relevance score alongside the domain's two leading cases.
//
// Statute matching is token-based: the query is lowercased and split on
// whitespace, and a statute qualifies when at least one token appears as a
// substring of its lowercased title plus description.  An empty query
// matches no statute but still returns the leading cases.  Domains without a
// statute table yield an empty result — Search has no Civil Law fallback.
func Search(d legal.Domain, query string) legal.SearchResult {
	data, ok := searchTables[d]
	if !ok {
		return legal.SearchResult{Statutes: []legal.Statute{}, Cases: []legal.Case{}}
	}

	tokens := strings.Fields(strings.ToLower(query))
	var matched []legal.Statute
	for _, statute := range data.statutes {
		haystack := strings.ToLower(statute.Title + " " + statute.Description)
		for _, token := range tokens {
			if strings.Contains(haystack, token) {
				matched = append(matched, statute)
				break
			}
		}
	}

	// Stable sort: statutes sharing a score keep their table order.
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].RelevanceScore > matched[j].RelevanceScore
	})
	if len(matched) > maxStatuteResults {
		matched = matched[:maxStatuteResults]
	}
	if matched == nil {
		matched = []legal.Statute{}
	}

	cases := data.cases
	if len(cases) > maxCaseResults {
		cases = cases[:maxCaseResults]
	}
	outCases := make([]legal.Case, len(cases))
	copy(outCases, cases)

	return legal.SearchResult{Statutes: matched, Cases: outCases}
}
