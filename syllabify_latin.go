package chandas

import (
	"strings"
	"unicode"
)

// IAST character classes used by the scanner.
const (
	latinVowelChars = "aāiīuūṛṝḷḹeo"
	// latinLongChars are long by nature; e and o are always long in Sanskrit.
	latinLongChars = "āīūṝḹeo"
	// latinAnusvara covers the dot-above and dot-below transliterations.
	latinAnusvara = "ṁṃ"
	latinVisarga  = 'ḥ'
	// latinPunct is skipped between syllables.
	latinPunct = "|/\\,.;:!?'\"“”‘’()[]{}-"
)

// latinDigraphs are aspirated stops written as two characters but counted
// as a single onset unit.
var latinDigraphs = map[string]bool{
	"kh": true, "gh": true, "ch": true, "jh": true, "ṭh": true,
	"ḍh": true, "th": true, "dh": true, "ph": true, "bh": true,
}

// latinChandrabindu holds the combining two-rune chandrabindu spellings.
var latinChandrabindu = map[string]bool{
	"m̐": true,
	"n̐": true,
}

// vowelAt returns the rune length (1 or 2) of a vowel nucleus starting at i,
// or 0 if none starts there. The diphthongs ai/au win over a bare a.
func vowelAt(rs []rune, i int) int {
	if i >= len(rs) {
		return 0
	}
	if i+1 < len(rs) {
		d := strings.ToLower(string(rs[i : i+2]))
		if d == "ai" || d == "au" {
			return 2
		}
	}
	if strings.ContainsRune(latinVowelChars, unicode.ToLower(rs[i])) {
		return 1
	}
	return 0
}

// consonantUnit returns the index just past one onset consonant unit
// starting at i, consuming aspirated-stop digraphs as a single unit.
func consonantUnit(rs []rune, i int) int {
	if i >= len(rs) {
		return i
	}
	if i+1 < len(rs) && latinDigraphs[strings.ToLower(string(rs[i:i+2]))] {
		return i + 2
	}
	return i + 1
}

// syllabifyLatin scans one segment of IAST transliteration left to right
// and emits its syllables. The scanner is total: unrecognized characters
// are skipped rather than rejected.
//
// Consonant letters are consumed one onset unit at a time until a vowel
// nucleus is found (diphthong first, then single vowel). After the nucleus
// the scanner takes an optional chandrabindu (two-rune combining form
// checked first), one anusvara variant, and one visarga, each setting the
// trailing-mark flag.
func syllabifyLatin(text string) []Syllable {
	var sylls []Syllable
	rs := []rune(text)
	n := len(rs)
	i := 0
	for i < n {
		ch := rs[i]

		if unicode.IsSpace(ch) || strings.ContainsRune(latinPunct, ch) {
			i++
			continue
		}

		// Consume the onset cluster up to the next vowel.
		onset := 0
		j := i
		for j < n && vowelAt(rs, j) == 0 {
			if strings.ContainsRune(latinAnusvara, rs[j]) || rs[j] == latinVisarga {
				break
			}
			if !unicode.IsLetter(rs[j]) {
				break
			}
			onset++
			j = consonantUnit(rs, j)
		}

		vlen := vowelAt(rs, j)
		if vlen == 0 {
			// No nucleus reachable: skip without emitting.
			if j == i {
				i = j + 1
			} else {
				i = j
			}
			continue
		}

		nucleus := string(rs[j : j+vlen])
		low := strings.ToLower(nucleus)
		intrinsicLong := low == "ai" || low == "au" || strings.Contains(latinLongChars, low)

		k := j + vlen
		hasMark := false
		if k+1 < n && latinChandrabindu[string(rs[k:k+2])] {
			hasMark = true
			k += 2
		}
		if k < n && strings.ContainsRune(latinAnusvara, rs[k]) {
			hasMark = true
			k++
		}
		if k < n && rs[k] == latinVisarga {
			hasMark = true
			k++
		}

		sylls = append(sylls, Syllable{
			OnsetLen:      onset,
			Nucleus:       nucleus,
			IntrinsicLong: intrinsicLong,
			HasMark:       hasMark,
			Raw:           string(rs[i:k]),
		})
		i = k
	}
	return sylls
}
