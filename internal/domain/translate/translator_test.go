package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/LegalAid-Assistant/pkg/errors"
	"github.com/turtacn/LegalAid-Assistant/pkg/types/legal"
)

func TestTranslateSameLanguage(t *testing.T) {
	out, err := Translate("know your rights", "en", "en")
	require.NoError(t, err)
	assert.Equal(t, "know your rights", out)
}

func TestTranslateVocabulary(t *testing.T) {
	out, err := Translate("the landlord started an eviction", "en", "es")
	require.NoError(t, err)
	assert.Equal(t, "the propietario started an desalojo", out)
}

func TestTranslateTitleCasedWords(t *testing.T) {
	out, err := Translate("Divorce and Custody", "en", "fr")
	require.NoError(t, err)
	assert.Equal(t, "Divorce and Garde", out)
}

func TestTranslateOrderedReplacement(t *testing.T) {
	// "law" is replaced before "lawsuit" can match; the residue is the
	// contract of the ordered vocabulary.
	out, err := Translate("a lawsuit", "en", "es")
	require.NoError(t, err)
	assert.Equal(t, "a leysuit", out)
}

func TestTranslateUnsupportedPair(t *testing.T) {
	_, err := Translate("rights", "en", "zh")
	assert.True(t, errors.IsCode(err, errors.CodeUnsupportedLanguage))

	_, err = Translate("derechos", "es", "en")
	assert.True(t, errors.IsCode(err, errors.CodeUnsupportedLanguage))
}

func TestDetectEnglish(t *testing.T) {
	d, err := Detect("This is a plain English sentence about employment law and workers rights.")
	require.NoError(t, err)
	assert.Equal(t, "en", d.Code)
	assert.Equal(t, "English", d.Language)
}

func TestDetectSpanish(t *testing.T) {
	d, err := Detect("Mi propietario quiere desalojarme de mi apartamento y necesito ayuda legal urgente.")
	require.NoError(t, err)
	assert.Equal(t, "es", d.Code)
}

func TestDetectEmptyInput(t *testing.T) {
	_, err := Detect("   ")
	assert.True(t, errors.IsCode(err, errors.CodeDetectionFailed))
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported("en"))
	assert.True(t, Supported("fi"))
	assert.False(t, Supported("xx"))
}

func TestSupportedLanguagesIsCopy(t *testing.T) {
	langs := SupportedLanguages()
	require.Len(t, langs, 20)
	langs["en"] = "mutated"
	assert.Equal(t, "English", SupportedLanguages()["en"])
}

func TestDomainLabel(t *testing.T) {
	assert.Equal(t, "Arbeitsrecht", DomainLabel(legal.DomainLabor, "de"))
	assert.Equal(t, "Derecho Penal", DomainLabel(legal.DomainCriminal, "es"))
	// Missing localisation falls back to the English label.
	assert.Equal(t, "Labor Law", DomainLabel(legal.DomainLabor, "ja"))
	assert.Equal(t, "General Law", DomainLabel(legal.DomainGeneral, "es"))
}
