package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/turtacn/LegalAid-Assistant/pkg/types/legal"
)

func TestClassifyNoKeywords(t *testing.T) {
	for _, text := range []string{
		"",
		"the weather is lovely today",
		"12345 !@#$%",
	} {
		assert.Equal(t, legal.DomainGeneral, Classify(text), "input: %q", text)
	}
}

func TestClassifySingleDomain(t *testing.T) {
	cases := []struct {
		text string
		want legal.Domain
	}{
		{"I was fired from my job by my employer", legal.DomainLabor},
		{"I was arrested by the police last night", legal.DomainCriminal},
		{"there was a breach and I want damages for negligence", legal.DomainCivil},
		{"we are getting a divorce and need to sort out alimony", legal.DomainFamily},
		{"my landlord raised the rent and threatened eviction", legal.DomainProperty},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(tc.text), "input: %q", tc.text)
	}
}

func TestClassifyStrongKeywordOutweighsGeneric(t *testing.T) {
	// "contract" scores 1 for both Labor and Civil; "divorce" scores 3 for
	// Family and must dominate.
	assert.Equal(t, legal.DomainFamily, Classify("divorce contract"))
}

func TestClassifyTieBreakUsesDeclaredOrder(t *testing.T) {
	// "defendant" is a generic keyword in both Criminal and Civil; with equal
	// scores the earlier domain in the canonical order wins.
	assert.Equal(t, legal.DomainCriminal, Classify("the defendant appeared"))
}

func TestClassifyCaseInsensitive(t *testing.T) {
	assert.Equal(t, Classify("I WAS ARRESTED"), Classify("i was arrested"))
	assert.Equal(t, legal.DomainCriminal, Classify("I WAS ARRESTED"))
}

func TestClassifyIdempotent(t *testing.T) {
	const text = "my landlord evicted me after I complained about repairs"
	first := Classify(text)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, Classify(text))
	}
}

func TestScores(t *testing.T) {
	scores := Scores("I was fired")
	// "fired" is the only Labor keyword present and carries the strong weight.
	assert.Equal(t, 3, scores[legal.DomainLabor])
	assert.Zero(t, scores[legal.DomainFamily])
}

func TestDetectSituationsOrderAndOverlap(t *testing.T) {
	keys := DetectSituations("I was fired and then arrested; the harassment continues")
	assert.Equal(t, []legal.SituationKey{
		SituationArrest,
		SituationWrongfulTermination,
		SituationWorkplaceHarassment,
	}, keys)
}

func TestDetectSituationsNone(t *testing.T) {
	assert.Empty(t, DetectSituations("nothing legal here"))
}

func TestDetectSituationsSharedTrigger(t *testing.T) {
	// "harassment" does not trip discrimination, but "discriminated" plus
	// "harassed" surfaces both keys in table order.
	keys := DetectSituations("I was discriminated against and harassed at work")
	assert.Equal(t, []legal.SituationKey{
		SituationWorkplaceDiscrimination,
		SituationWorkplaceHarassment,
	}, keys)
}
