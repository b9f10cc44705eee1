package advice

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/LegalAid-Assistant/internal/domain/knowledge"
	"github.com/turtacn/LegalAid-Assistant/pkg/types/legal"
)

func TestComposeFiredIncludesWrongfulTermination(t *testing.T) {
	out := Compose("I was fired from my job", legal.DomainLabor)

	assert.Contains(t, out, "Based on your situation involving labor law, here's what you need to know:")
	assert.Contains(t, out, "🚨 IMMEDIATE ACTIONS - Wrongful Termination:")
	assert.Contains(t, out, "Equal Employment Opportunity Commission (EEOC)")
	assert.Contains(t, out, "for guidance only")
	assert.Contains(t, out, "consult with a qualified attorney")
}

func TestComposeRightsSectionListsFour(t *testing.T) {
	for _, d := range legal.Domains() {
		out := Compose("nothing specific", d)
		rights := knowledge.ForDomain(d).TopRights(4)
		require.Len(t, rights, 4)
		for _, right := range rights {
			assert.Contains(t, out, "• "+right, "domain %s", d)
		}
	}
}

func TestComposeSectionOrder(t *testing.T) {
	out := Compose("I was fired", legal.DomainLabor)

	headers := []string{
		"Based on your situation involving labor law",
		"📋 YOUR LEGAL RIGHTS:",
		"🚨 IMMEDIATE ACTIONS - Wrongful Termination:",
		"⚖️ LEGAL OPTIONS:",
		"📞 HELPFUL RESOURCES:",
		"⚠️ IMPORTANT:",
	}
	last := -1
	for _, h := range headers {
		idx := strings.Index(out, h)
		require.NotEqual(t, -1, idx, "missing section %q", h)
		assert.Greater(t, idx, last, "section %q out of order", h)
		last = idx
	}
}

func TestComposeNoSituationStillCompletes(t *testing.T) {
	out := Compose("general question about the law", legal.DomainCivil)
	assert.Contains(t, out, "📋 YOUR LEGAL RIGHTS:")
	assert.NotContains(t, out, "🚨 IMMEDIATE ACTIONS")
	assert.Contains(t, out, Disclaimer)
}

func TestComposeUnknownDomainFallsBackToCivilKnowledge(t *testing.T) {
	out := Compose("hello", legal.DomainGeneral)
	// Header names the caller's domain, knowledge comes from Civil Law.
	assert.Contains(t, out, "involving general law")
	assert.Contains(t, out, "• Right to file a lawsuit")
}

func TestComposeImmediateActionsVerbatim(t *testing.T) {
	out := Compose("they arrested my brother", legal.DomainCriminal)
	assert.Contains(t, out, "1. Stay calm and do not resist arrest")
	assert.Contains(t, out, "5. Remember: 'I want to speak to my lawyer'")
}

func TestComposeMultipleSituationsInTableOrder(t *testing.T) {
	out := Compose("after the harassment I was fired", legal.DomainLabor)
	fired := strings.Index(out, "IMMEDIATE ACTIONS - Wrongful Termination:")
	discrimination := strings.Index(out, "IMMEDIATE ACTIONS - Workplace Discrimination:")
	harassment := strings.Index(out, "IMMEDIATE ACTIONS - Workplace Harassment:")
	require.NotEqual(t, -1, fired)
	require.NotEqual(t, -1, discrimination, "the harassment trigger also fires the discrimination row")
	require.NotEqual(t, -1, harassment)
	assert.Less(t, fired, discrimination)
	assert.Less(t, discrimination, harassment)
}

func TestComposeIdempotent(t *testing.T) {
	const text = "my landlord is evicting me over rent"
	first := Compose(text, legal.DomainProperty)
	assert.Equal(t, first, Compose(text, legal.DomainProperty))
}

func TestDetectSituationsSkipsKeysAbsentFromBundle(t *testing.T) {
	// "children" fires the custody trigger, but the Labor bundle has no
	// custody record, so no block may be produced for it.
	bundle := knowledge.ForDomain(legal.DomainLabor)
	situations := DetectSituations("my children saw me get fired", bundle)
	require.Len(t, situations, 1)
	assert.Equal(t, "Wrongful Termination", situations[0].Title)
}

func TestDetectSituationsEmpty(t *testing.T) {
	bundle := knowledge.ForDomain(legal.DomainCivil)
	assert.Empty(t, DetectSituations("no trigger words here", bundle))
}
