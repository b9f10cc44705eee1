package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/LegalAid-Assistant/pkg/types/legal"
)

func find(t *testing.T, entities []legal.Entity, text string, label legal.EntityCategory) legal.Entity {
	t.Helper()
	for _, e := range entities {
		if e.Text == text && e.Label == label {
			return e
		}
	}
	t.Fatalf("entity %q (%s) not found in %v", text, label, entities)
	return legal.Entity{}
}

func TestExtractFixture(t *testing.T) {
	const input = "John Smith was fired on 01/02/2020 and owed $500."
	entities := Extract(input)

	person := find(t, entities, "John Smith", legal.CategoryPerson)
	assert.Equal(t, 0, person.Start)
	assert.Equal(t, len("John Smith"), person.End)

	date := find(t, entities, "01/02/2020", legal.CategoryDate)
	assert.Equal(t, strings.Index(input, "01/02/2020"), date.Start)

	money := find(t, entities, "$500", legal.CategoryMoney)
	assert.Equal(t, strings.Index(input, "$500"), money.Start)

	for _, e := range entities {
		assert.NotEqual(t, legal.CategoryLegalTerm, e.Label, "no role keyword is present in the fixture")
	}
	assert.Len(t, entities, 3)
}

func TestExtractEmptyInput(t *testing.T) {
	assert.Empty(t, Extract(""))
	assert.Empty(t, Extract("nothing to see"))
}

func TestExtractSortedAndUnique(t *testing.T) {
	entities := Extract("Judge Mary Jones ruled; the attorney called a witness on March 3, 2021 at the District Court over $1,250.50.")
	require.NotEmpty(t, entities)

	seen := map[[2]int]map[string]bool{}
	last := -1
	for _, e := range entities {
		assert.GreaterOrEqual(t, e.Start, last, "entities must be sorted by start")
		last = e.Start
		span := [2]int{e.Start, e.End}
		if seen[span] == nil {
			seen[span] = map[string]bool{}
		}
		assert.False(t, seen[span][e.Text], "duplicate (text, start, end) triple: %+v", e)
		seen[span][e.Text] = true
	}
}

func TestExtractLegalTermsKeepOriginalCasing(t *testing.T) {
	entities := Extract("The ATTORNEY met the Plaintiff.")
	att := find(t, entities, "ATTORNEY", legal.CategoryLegalTerm)
	assert.Equal(t, 4, att.Start)
	find(t, entities, "Plaintiff", legal.CategoryLegalTerm)
}

func TestExtractLegalTermSubstringMatch(t *testing.T) {
	// The vocabulary is matched as a substring: "attorneys" still yields an
	// "attorney" span, exactly as the reference tables behave.
	entities := Extract("the attorneys argued")
	found := false
	for _, e := range entities {
		if e.Label == legal.CategoryLegalTerm && e.Text == "attorney" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestExtractOverlappingSpansBothSurvive(t *testing.T) {
	// "testimony" contains "testimony" (term) and no structural match, but
	// "Supreme Court" matches both the organization and the court patterns
	// with an identical span — the triple-level dedup keeps exactly one.
	entities := Extract("She appealed to the Supreme Court.")
	count := 0
	for _, e := range entities {
		if e.Text == "Supreme Court" {
			count++
		}
	}
	assert.Equal(t, 1, count)

	// Differently-spanned overlaps are preserved: "appeal" (term) sits
	// inside "appealed" and coexists with any wider span.
	find(t, entities, "appeal", legal.CategoryLegalTerm)
}

func TestExtractStructuralCategories(t *testing.T) {
	entities := Extract("Acme Corp cited Section 12 in Case No. A-123 before the Circuit Court on January 5, 2020.")
	find(t, entities, "Acme Corp", legal.CategoryOrganization)
	find(t, entities, "Section 12", legal.CategoryLawReference)
	find(t, entities, "Case No. A-123", legal.CategoryCaseNumber)
	find(t, entities, "Circuit Court", legal.CategoryCourt)
	find(t, entities, "January 5, 2020", legal.CategoryDate)
}

func TestExtractIdempotent(t *testing.T) {
	const input = "Jane Doe sued Acme Corp for $1,000 damages."
	first := Extract(input)
	second := Extract(input)
	assert.Equal(t, first, second)
}

func TestTexts(t *testing.T) {
	entities := []legal.Entity{
		{Text: "John Smith", Label: legal.CategoryPerson},
		{Text: "$500", Label: legal.CategoryMoney},
	}
	assert.Equal(t, []string{"John Smith", "$500"}, Texts(entities))
	assert.Empty(t, Texts(nil))
}
