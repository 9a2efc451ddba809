package analyzer

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// dashReplacer turns dash separators into spaces. Single hyphens inside words
// such as "long-haired" are left alone.
var dashReplacer = strings.NewReplacer(
	"--", " ",
	"—", " ", // em dash
	"–", " ", // en dash
)

// Normalize canonicalizes a sentence before tokenization.
// Case folding happens first so the remaining steps see the final case.
func Normalize(sentence string, lowercase bool) string {
	if lowercase {
		sentence = strings.ToLower(sentence)
	}

	// Compose decomposed accents so a letter and its combining mark stay in one token.
	sentence = norm.NFC.String(sentence)

	sentence = dashReplacer.Replace(sentence)

	return strings.Join(strings.Fields(sentence), " ")
}
