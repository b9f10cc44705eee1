// Package classify implements rule-based legal-domain classification.
//
// The operative path is deterministic weighted keyword scoring: each of the
// five classified domains owns a keyword vocabulary, high-signal keywords
// carry extra weight, and the highest-scoring domain wins.  Text that
// matches no keyword at all classifies as General Law.  There is no model
// inference anywhere in this package and no error path — Classify always
// returns a Domain.
package classify

import (
	"strings"

	"github.com/turtacn/LegalAid-Assistant/pkg/types/legal"
)

// Keyword weights.  A handful of terms are near-unambiguous markers of their
// domain and would otherwise be drowned out by generic vocabulary overlap
// ("contract" appears in both Labor and Civil).
const (
	weightStrong   = 3
	weightModerate = 2
	weightGeneric  = 1
)

var strongKeywords = map[string]struct{}{
	"arrested": {}, "fired": {}, "divorce": {}, "eviction": {},
}

var moderateKeywords = map[string]struct{}{
	"discrimination": {}, "harassment": {}, "custody": {}, "landlord": {},
}

// domainKeywords maps each classified domain to its vocabulary.  Matching is
// plain substring containment over the lowercased input, so multi-word
// phrases ("laid off", "hostile work environment") are valid entries.
var domainKeywords = map[legal.Domain][]string{
	legal.DomainLabor: {
		"employment", "work", "job", "fired", "terminated", "laid off", "employer", "employee",
		"boss", "manager", "wage", "salary", "pay", "overtime", "discrimination", "harassment",
		"workplace", "union", "contract", "performance review", "promotion", "demotion",
		"hostile work environment", "retaliation", "whistleblower", "workers compensation",
		"unemployment", "severance", "notice period", "at-will employment", "wrongful termination",
	},
	legal.DomainCriminal: {
		"arrest", "arrested", "police", "crime", "criminal", "charges", "bail", "trial",
		"conviction", "sentence", "prison", "jail", "probation", "parole", "guilty", "innocent",
		"defendant", "prosecutor", "district attorney", "public defender", "plea bargain",
		"misdemeanor", "felony", "indictment", "arraignment", "preliminary hearing",
		"grand jury", "search warrant", "miranda rights", "right to counsel", "due process",
	},
	legal.DomainCivil: {
		"contract", "agreement", "breach", "damages", "compensation", "liability", "negligence",
		"tort", "lawsuit", "settlement", "plaintiff", "defendant", "court", "judge", "jury",
		"evidence", "testimony", "deposition", "discovery", "motion", "appeal", "verdict",
		"judgment", "injunction", "specific performance", "restitution", "punitive damages",
	},
	legal.DomainFamily: {
		"divorce", "divorced", "custody", "child support", "alimony", "spousal support",
		"marriage", "adoption", "prenuptial", "prenup", "visitation", "guardianship",
		"spouse", "ex-spouse", "children", "parenting", "paternity", "maternity",
		"domestic violence", "restraining order", "protective order", "marital property",
		"community property", "separation", "annulment", "paternity test",
	},
	legal.DomainProperty: {
		"real estate", "property", "landlord", "tenant", "lease", "rent", "eviction",
		"evicted", "ownership", "title", "deed", "mortgage", "house", "apartment", "rental",
		"security deposit", "rent increase", "maintenance", "repairs", "habitability",
		"quiet enjoyment", "sublease", "assignment", "rent control", "housing discrimination",
		"fair housing", "zoning", "easement", "adverse possession", "eminent domain",
	},
}

func keywordWeight(keyword string) int {
	if _, ok := strongKeywords[keyword]; ok {
		return weightStrong
	}
	if _, ok := moderateKeywords[keyword]; ok {
		return weightModerate
	}
	return weightGeneric
}

// Scores computes the per-domain keyword score for text.  Exposed so callers
// can explain a classification; Classify is the usual entry point.
func Scores(text string) map[legal.Domain]int {
	lower := strings.ToLower(text)
	scores := make(map[legal.Domain]int, len(domainKeywords))
	for domain, keywords := range domainKeywords {
		score := 0
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				score += keywordWeight(kw)
			}
		}
		scores[domain] = score
	}
	return scores
}

// Classify returns the legal domain with the highest keyword score for text.
// Ties are broken by the canonical domain order (Labor, Criminal, Civil,
// Family, Property) — iteration runs over legal.Domains(), never over a map,
// so the winner is reproducible.  A maximum score of zero returns
// DomainGeneral.  Classify is pure: identical input always yields identical
// output.
func Classify(text string) legal.Domain {
	scores := Scores(text)

	best := legal.DomainGeneral
	bestScore := 0
	for _, domain := range legal.Domains() {
		if scores[domain] > bestScore {
			best = domain
			bestScore = scores[domain]
		}
	}
	return best
}

// ─────────────────────────────────────────────────────────────────────────────
// Situation detection
// ─────────────────────────────────────────────────────────────────────────────

// Situation keys detected by DetectSituations.
const (
	SituationArrest                  legal.SituationKey = "arrest"
	SituationCriminalCharges         legal.SituationKey = "criminal_charges"
	SituationWrongfulTermination     legal.SituationKey = "wrongful_termination"
	SituationWorkplaceDiscrimination legal.SituationKey = "workplace_discrimination"
	SituationWorkplaceHarassment     legal.SituationKey = "workplace_harassment"
	SituationDivorce                 legal.SituationKey = "divorce"
	SituationChildCustody            legal.SituationKey = "child_custody"
	SituationEviction                legal.SituationKey = "eviction"
	SituationLandlordTenantDispute   legal.SituationKey = "landlord_tenant_dispute"
)

// situationTriggers is an ordered rule table: detection order is the
// emission order, so this must stay a slice.
var situationTriggers = []struct {
	key      legal.SituationKey
	triggers []string
}{
	{SituationArrest, []string{"arrested", "arrest"}},
	{SituationCriminalCharges, []string{"charged", "criminal charges"}},
	{SituationWrongfulTermination, []string{"fired", "terminated", "laid off"}},
	{SituationWorkplaceDiscrimination, []string{"discrimination", "discriminated"}},
	{SituationWorkplaceHarassment, []string{"harassment", "harassed"}},
	{SituationDivorce, []string{"divorce", "divorced"}},
	{SituationChildCustody, []string{"custody", "child custody"}},
	{SituationEviction, []string{"eviction", "evicted"}},
	{SituationLandlordTenantDispute, []string{"landlord", "rent dispute"}},
}

// DetectSituations scans text for specific legal situations and returns
// their keys in table order.  Situations are not mutually exclusive: one
// input can surface several, and a term like "harassment" may legitimately
// satisfy more than one trigger set.
func DetectSituations(text string) []legal.SituationKey {
	lower := strings.ToLower(text)
	var found []legal.SituationKey
	for _, rule := range situationTriggers {
		for _, trigger := range rule.triggers {
			if strings.Contains(lower, trigger) {
				found = append(found, rule.key)
				break
			}
		}
	}
	return found
}
