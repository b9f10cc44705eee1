// Package advice assembles the structured advisory response for a single
// analysed query: domain header, the leading legal rights, per-situation
// action/option/resource blocks, and the closing disclaimer.
//
// The output format is a stable contract.  Section order, bullet characters,
// and the disclaimer wording are asserted byte-for-byte by golden tests and
// must not drift.
package advice

import (
	"strings"

	"github.com/turtacn/LegalAid-Assistant/internal/domain/knowledge"
	"github.com/turtacn/LegalAid-Assistant/pkg/types/legal"
)

// rightsShown is how many rights bullets the response surfaces.  The full
// list remains available through the knowledge package.
const rightsShown = 4

// Disclaimer closes every advisory response.
const Disclaimer = "⚠️ IMPORTANT: This information is for guidance only. " +
	"Please consult with a qualified attorney for specific legal advice tailored to your situation."

// situationTriggers maps trigger words onto knowledge-base situation keys.
// Evaluated in order; emission order of situation blocks follows this table.
// Trigger vocabularies deliberately overlap ("harassment" fires both the
// discrimination and harassment rows) — each matching row contributes its
// own block.
var situationTriggers = []struct {
	key      legal.SituationKey
	triggers []string
}{
	{knowledge.KeyFired, []string{"fired", "terminated", "laid off"}},
	{knowledge.KeyDiscrimination, []string{"discrimination", "harassment"}},
	{knowledge.KeyHarassment, []string{"harassment", "harassed"}},
	{knowledge.KeyArrested, []string{"arrested", "arrest"}},
	{knowledge.KeyCharged, []string{"charged", "criminal", "crime"}},
	{knowledge.KeyDivorce, []string{"divorce", "divorced"}},
	{knowledge.KeyCustody, []string{"custody", "child", "children"}},
	{knowledge.KeyEviction, []string{"eviction", "evicted"}},
	{knowledge.KeyLandlordDispute, []string{"landlord", "rent", "lease"}},
}

// DetectSituations returns the situation advice records triggered by text
// that exist in bundle, in trigger-table order.  A trigger firing for a key
// the bundle does not carry is silently skipped: the words "my children"
// under a Labor Law bundle must not derail the response.
func DetectSituations(text string, bundle knowledge.Bundle) []legal.Situation {
	lower := strings.ToLower(text)
	var found []legal.Situation
	for _, rule := range situationTriggers {
		for _, trigger := range rule.triggers {
			if !strings.Contains(lower, trigger) {
				continue
			}
			if s, ok := bundle.Situation(rule.key); ok {
				found = append(found, s)
			}
			break
		}
	}
	return found
}

// Compose renders the full advisory response for text classified into
// domain.  The knowledge bundle resolves through the Civil Law fallback for
// unrecognised domains, but the header always names the domain the caller
// passed.  Compose is pure and never fails; with no detected situation it
// still emits header, rights, and disclaimer.
func Compose(text string, domain legal.Domain) string {
	bundle := knowledge.ForDomain(domain)
	situations := DetectSituations(text, bundle)

	var parts []string
	parts = append(parts,
		"Based on your situation involving "+strings.ToLower(string(domain))+", here's what you need to know:")

	parts = append(parts, "\n📋 YOUR LEGAL RIGHTS:")
	for _, right := range bundle.TopRights(rightsShown) {
		parts = append(parts, "• "+right)
	}

	for _, s := range situations {
		parts = append(parts, "\n🚨 IMMEDIATE ACTIONS - "+s.Title+":")
		// Immediate actions carry their own numbering; emit verbatim.
		parts = append(parts, s.ImmediateActions...)

		parts = append(parts, "\n⚖️ LEGAL OPTIONS:")
		for _, option := range s.LegalOptions {
			parts = append(parts, "• "+option)
		}

		parts = append(parts, "\n📞 HELPFUL RESOURCES:")
		for _, resource := range s.Resources {
			parts = append(parts, "• "+resource)
		}
	}

	parts = append(parts, "\n"+Disclaimer)

	return strings.Join(parts, "\n")
}
