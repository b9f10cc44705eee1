package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/LegalAid-Assistant/pkg/types/legal"
)

func TestForDomainKnownDomains(t *testing.T) {
	for _, d := range legal.Domains() {
		b := ForDomain(d)
		assert.Equal(t, d, b.Domain)
		assert.NotEmpty(t, b.Context)
		assert.GreaterOrEqual(t, len(b.Rights), 6, "domain %s", d)
	}
}

func TestForDomainFallsBackToCivil(t *testing.T) {
	for _, d := range []legal.Domain{legal.DomainGeneral, legal.Domain("Maritime Law"), ""} {
		b := ForDomain(d)
		assert.Equal(t, legal.DomainCivil, b.Domain, "input %q", d)
	}
}

func TestSituationLookup(t *testing.T) {
	b := ForDomain(legal.DomainLabor)

	s, ok := b.Situation(KeyFired)
	require.True(t, ok)
	assert.Equal(t, "Wrongful Termination", s.Title)
	assert.Len(t, s.ImmediateActions, 5)
	assert.Equal(t, "1. Request a written termination letter explaining the reason", s.ImmediateActions[0])

	_, ok = b.Situation(KeyEviction)
	assert.False(t, ok, "eviction belongs to the property bundle")
}

func TestSituationKeysPerDomain(t *testing.T) {
	cases := []struct {
		domain legal.Domain
		keys   []legal.SituationKey
	}{
		{legal.DomainLabor, []legal.SituationKey{KeyFired, KeyDiscrimination, KeyHarassment}},
		{legal.DomainCriminal, []legal.SituationKey{KeyArrested, KeyCharged}},
		{legal.DomainCivil, []legal.SituationKey{KeyContractDispute, KeyPersonalInjury}},
		{legal.DomainFamily, []legal.SituationKey{KeyDivorce, KeyCustody}},
		{legal.DomainProperty, []legal.SituationKey{KeyEviction, KeyLandlordDispute}},
	}
	for _, tc := range cases {
		b := ForDomain(tc.domain)
		for _, key := range tc.keys {
			_, ok := b.Situation(key)
			assert.True(t, ok, "domain %s missing %s", tc.domain, key)
		}
	}
}

func TestTopRights(t *testing.T) {
	b := ForDomain(legal.DomainCriminal)
	top := b.TopRights(4)
	require.Len(t, top, 4)
	assert.Equal(t, "Right to remain silent (Fifth Amendment)", top[0])

	all := b.TopRights(100)
	assert.Equal(t, b.Rights, all)
}

func TestReferences(t *testing.T) {
	refs := References(legal.DomainLabor)
	require.Len(t, refs, 4)
	assert.Equal(t, "Title VII of the Civil Rights Act of 1964", refs[0])

	assert.Equal(t,
		[]string{"Consult local laws and regulations"},
		References(legal.DomainGeneral))
}

func TestSearchMatchesAndRanks(t *testing.T) {
	result := Search(legal.DomainLabor, "discrimination at work")
	require.NotEmpty(t, result.Statutes)

	// Both Title VII and the ADA mention discrimination; the higher relevance
	// score must come first.
	assert.Equal(t, "Title VII of the Civil Rights Act of 1964", result.Statutes[0].Title)
	for i := 1; i < len(result.Statutes); i++ {
		assert.LessOrEqual(t,
			result.Statutes[i].RelevanceScore,
			result.Statutes[i-1].RelevanceScore)
	}

	require.Len(t, result.Cases, 2)
	assert.Equal(t, "Griggs v. Duke Power Co.", result.Cases[0].Title)
}

func TestSearchStableTieBreak(t *testing.T) {
	// The Fifth and Sixth Amendments share a 0.90 score; table order decides.
	result := Search(legal.DomainCriminal, "right")
	require.GreaterOrEqual(t, len(result.Statutes), 2)
	fifth, sixth := -1, -1
	for i, s := range result.Statutes {
		switch s.Title {
		case "Fifth Amendment":
			fifth = i
		case "Sixth Amendment":
			sixth = i
		}
	}
	require.NotEqual(t, -1, fifth)
	require.NotEqual(t, -1, sixth)
	assert.Less(t, fifth, sixth)
}

func TestSearchEmptyQueryStillReturnsCases(t *testing.T) {
	result := Search(legal.DomainFamily, "")
	assert.Empty(t, result.Statutes)
	require.Len(t, result.Cases, 1)
	assert.Equal(t, "Troxel v. Granville", result.Cases[0].Title)
}

func TestSearchUnknownDomain(t *testing.T) {
	result := Search(legal.DomainGeneral, "anything")
	assert.Empty(t, result.Statutes)
	assert.Empty(t, result.Cases)
	assert.NotNil(t, result.Statutes)
	assert.NotNil(t, result.Cases)
}

func TestSearchCapsStatutesAtThree(t *testing.T) {
	result := Search(legal.DomainLabor, "discrimination wage disabilities labor standards")
	assert.LessOrEqual(t, len(result.Statutes), 3)
}

func TestForms(t *testing.T) {
	forms := Forms(legal.DomainProperty)
	require.Len(t, forms, 3)
	assert.Equal(t, "Eviction Notice", forms[0].Name)
	assert.Empty(t, Forms(legal.DomainGeneral))
}

func TestResources(t *testing.T) {
	resources := Resources(legal.DomainLabor)
	require.Len(t, resources, 3)
	assert.Equal(t, "https://www.dol.gov/", resources[0].URL)
	assert.Empty(t, Resources(legal.DomainFamily), "no resource table for family law")
}
