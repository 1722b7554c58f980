package chandas

import "strings"

// Devanagari codepoint classes used by the scanner.
const (
	devIndepVowels = "अआइईउऊऋॠऌॡएऐओऔ"
	devVowelSigns  = "ािीुूृॄॢॣेैोौ"
	devLongVowels  = "आईऊॠॡएऐओऔ"
	devLongSigns   = "ाीूॄॣेैोौ"
	devConsonants  = "कखगघङचछजझञटठडढणतथदधनपफबभमयरलवशषसहक़ख़ग़ज़ड़ढ़फ़य़ऱऴ"
	// devMarks are the weight-adding trailing marks:
	// anusvara, chandrabindu, visarga.
	devMarks = "ंँः"
)

const (
	devVirama   = '्'
	devAvagraha = 'ऽ'
	// devInherentA is the implicit short vowel of a bare consonant.
	devInherentA = "अ"
)

func isDevConsonant(r rune) bool { return strings.ContainsRune(devConsonants, r) }
func isDevMark(r rune) bool      { return strings.ContainsRune(devMarks, r) }

// syllabifyDevanagari scans one segment of Devanagari text left to right and
// emits its syllables. The scanner is total: unrecognized characters are
// skipped rather than rejected.
//
// An independent vowel opens a zero-onset syllable. A consonant opens an
// onset that extends through consonant+virama+consonant conjunct chains,
// takes its nucleus from a following vowel sign (or the inherent short a),
// and collects trailing marks. A virama right after a completed nucleus is
// a syllable-closing coda: the pending consonant does not start a new
// syllable, the previous syllable is flagged Coda, and virama+consonant
// pairs are absorbed into its surface text. A bare mark with nothing
// pending attaches to the most recent syllable.
func syllabifyDevanagari(text string) []Syllable {
	var sylls []Syllable
	rs := []rune(text)
	n := len(rs)
	i := 0
	for i < n {
		ch := rs[i]

		if ch == ' ' || ch == devAvagraha {
			i++
			continue
		}

		// Independent vowel: a zero-onset syllable.
		if strings.ContainsRune(devIndepVowels, ch) {
			j := i + 1
			hasMark := false
			for j < n && isDevMark(rs[j]) {
				hasMark = true
				j++
			}
			sylls = append(sylls, Syllable{
				OnsetLen:      0,
				Nucleus:       string(ch),
				IntrinsicLong: strings.ContainsRune(devLongVowels, ch),
				HasMark:       hasMark,
				Raw:           string(rs[i:j]),
			})
			i = j
			continue
		}

		if isDevConsonant(ch) {
			onset := 1
			j := i
			// Extend the onset through consonant+virama+consonant chains.
			for j+2 < n && rs[j+1] == devVirama && isDevConsonant(rs[j+2]) {
				j += 2
				onset++
			}
			j++ // past the last onset consonant

			nucleus := devInherentA
			intrinsicLong := false
			if j < n && strings.ContainsRune(devVowelSigns, rs[j]) {
				nucleus = string(rs[j])
				intrinsicLong = strings.ContainsRune(devLongSigns, rs[j])
				j++
			}

			hasMark := false
			for j < n && isDevMark(rs[j]) {
				hasMark = true
				j++
			}

			// A virama here means the consonant we just scanned is a coda,
			// not a new onset: flag the previous syllable closed and absorb
			// the virama+consonant pairs into it.
			if j < n && rs[j] == devVirama {
				for j < n && rs[j] == devVirama {
					j++
					if j < n && isDevConsonant(rs[j]) {
						j++
					}
				}
				if len(sylls) > 0 {
					last := &sylls[len(sylls)-1]
					last.Coda = true
					last.Raw += string(rs[i:j])
				}
				i = j
				continue
			}

			sylls = append(sylls, Syllable{
				OnsetLen:      onset,
				Nucleus:       nucleus,
				IntrinsicLong: intrinsicLong,
				HasMark:       hasMark,
				Raw:           string(rs[i:j]),
			})
			i = j
			continue
		}

		// A bare mark attaches to the most recently emitted syllable.
		if isDevMark(ch) {
			if len(sylls) > 0 {
				last := &sylls[len(sylls)-1]
				last.HasMark = true
				last.Raw += string(ch)
			}
			i++
			continue
		}

		// Danda, digits, stray viramas and anything else: skip.
		i++
	}
	return sylls
}
