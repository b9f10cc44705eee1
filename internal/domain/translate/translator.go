// Package translate provides dictionary-based translation of legal
// vocabulary and language detection for inbound text.
//
// Translation is deliberately shallow: a fixed ordered word list per
// language pair, applied as sequential replacements.  It exists to localize
// key legal terms in responses, not to translate prose.  Detection wraps the
// whatlanggo trigram classifier.
package translate

import (
	"strings"

	"github.com/abadojack/whatlanggo"

	"github.com/turtacn/LegalAid-Assistant/pkg/errors"
	"github.com/turtacn/LegalAid-Assistant/pkg/types/legal"
)

// Detection is the result of language detection: an ISO 639-1 code, a
// human-readable name, and whether the classifier considers the guess
// reliable.
type Detection struct {
	Code     string  `json:"code"`
	Language string  `json:"language"`
	Reliable bool    `json:"reliable"`
	Score    float64 `json:"confidence"`
}

// Detect identifies the language of text.  Empty or undecidable input
// returns CodeDetectionFailed.
func Detect(text string) (Detection, error) {
	if strings.TrimSpace(text) == "" {
		return Detection{}, errors.New(errors.CodeDetectionFailed, "cannot detect language of empty text")
	}

	info := whatlanggo.Detect(text)
	code := info.Lang.Iso6391()
	if code == "" {
		return Detection{}, errors.New(errors.CodeDetectionFailed, "language could not be determined")
	}

	name := supportedLanguages[code]
	if name == "" {
		name = info.Lang.String()
	}
	return Detection{
		Code:     code,
		Language: name,
		Reliable: info.IsReliable(),
		Score:    info.Confidence,
	}, nil
}

// Supported reports whether code names a language the assistant advertises.
func Supported(code string) bool {
	_, ok := supportedLanguages[code]
	return ok
}

// SupportedLanguages returns the code-to-name table of advertised languages.
// The returned map is a copy.
func SupportedLanguages() map[string]string {
	out := make(map[string]string, len(supportedLanguages))
	for code, name := range supportedLanguages {
		out[code] = name
	}
	return out
}

// Translate rewrites the known legal vocabulary of text from sourceLang into
// targetLang.  Identical source and target return text unchanged.  A pair
// without a dictionary returns CodeUnsupportedLanguage.
//
// Replacements are applied in dictionary order, lowercase form first and
// Title form second, each as a plain substring substitution.  Order matters:
// "law" is replaced before "lawsuit" can match, which is the established
// behaviour of this vocabulary.
func Translate(text, sourceLang, targetLang string) (string, error) {
	if sourceLang == targetLang {
		return text, nil
	}

	pairs, ok := dictionaries[sourceLang][targetLang]
	if !ok {
		return "", errors.Newf(errors.CodeUnsupportedLanguage,
			"no translation dictionary for %s -> %s", sourceLang, targetLang)
	}

	out := text
	for _, p := range pairs {
		out = strings.ReplaceAll(out, p.from, p.to)
		out = strings.ReplaceAll(out, titleCase(p.from), titleCase(p.to))
	}
	return out, nil
}

// titleCase uppercases the first letter of each space-separated word.  The
// vocabulary is plain ASCII, so no Unicode-aware casing is needed.
func titleCase(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// DomainLabel returns the display name of a legal domain in targetLang,
// falling back to the English label when no localisation exists.
func DomainLabel(domain legal.Domain, targetLang string) string {
	if labels, ok := domainLabels[domain]; ok {
		if label, ok := labels[targetLang]; ok {
			return label
		}
	}
	return string(domain)
}
