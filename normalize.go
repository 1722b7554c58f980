package chandas

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// omReplacer expands the sacred syllable ॐ into long vowel + anusvara so its
// two-mora weight survives syllabification, and folds the double danda ॥
// into the single danda ।.
var omReplacer = strings.NewReplacer(
	"ॐ", "ओं",
	"॥", "।",
)

// reStrip matches runs of characters that are neither letters, digits,
// underscores, Devanagari codepoints (U+0900–U+097F), combining diacritics
// (U+0300–U+036F), whitespace, nor verse delimiters.
var reStrip = regexp.MustCompile(`[^\p{L}\p{N}_\x{0900}-\x{097F}\x{0300}-\x{036F}\s|।॥]+`)

// reSpace collapses whitespace runs.
var reSpace = regexp.MustCompile(`\s+`)

// Normalize rewrites raw verse text into the canonical form the rest of the
// pipeline expects: NFC composition, OM expansion, danda unification,
// replacement of non-verse characters with spaces, and whitespace collapse.
// IAST pasted from PDFs or web pages often arrives with decomposed
// diacritics; NFC brings it into the precomposed forms the scanners expect.
// Normalize is total: empty input yields empty output.
func Normalize(text string) string {
	text = norm.NFC.String(text)
	text = omReplacer.Replace(text)
	text = reStrip.ReplaceAllString(text, " ")
	text = strings.ReplaceAll(text, "_", " ")
	text = reSpace.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
