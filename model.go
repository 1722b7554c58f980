package chandas

import "strings"

// Syllable is the smallest prosodic unit produced by a syllabifier.
// It is a pure parse result: heaviness is resolved later, per pada,
// and lives on the Pada that owns the syllable.
type Syllable struct {
	// OnsetLen counts consonant units before the vowel nucleus
	// (0 when the syllable opens with a vowel).
	OnsetLen int
	// Nucleus is the vowel grapheme: an independent vowel or vowel sign
	// in Devanagari, a vowel or diphthong in IAST.
	Nucleus string
	// IntrinsicLong reports whether the nucleus is long by nature.
	IntrinsicLong bool
	// HasMark reports a trailing anusvara, chandrabindu or visarga.
	HasMark bool
	// Coda reports that a virama-closed consonant was absorbed into this
	// syllable during parsing, closing it.
	Coda bool
	// Raw is the exact substring consumed, kept for diagnostics.
	Raw string
}

// Pada is one metrical foot (a verse's quarter-line): the parsed syllables
// paired with their resolved weights. Weights is parallel to Syllables and
// holds true for guru (heavy), false for laghu (light).
type Pada struct {
	Syllables []Syllable
	Weights   []bool
}

// Count returns the number of syllables in the pada.
func (p Pada) Count() int { return len(p.Syllables) }

// Pattern renders the pada's weights as a string of 'G' (guru) and 'L' (laghu).
func (p Pada) Pattern() string {
	var b strings.Builder
	b.Grow(len(p.Weights))
	for _, heavy := range p.Weights {
		if heavy {
			b.WriteByte('G')
		} else {
			b.WriteByte('L')
		}
	}
	return b.String()
}

// MeterTemplate describes one canonical meter: its name, how many padas it
// has, and how many syllables each pada carries.
type MeterTemplate struct {
	Name             string
	Padas            int
	SyllablesPerPada int
}

// saptaChandas is the canonical table of the seven classical meters.
// It is read-only for the lifetime of the process.
var saptaChandas = []MeterTemplate{
	{Name: "Gayatri", Padas: 3, SyllablesPerPada: 8},
	{Name: "Ushnih", Padas: 4, SyllablesPerPada: 7},
	{Name: "Anushtubh", Padas: 4, SyllablesPerPada: 8},
	{Name: "Brihati", Padas: 4, SyllablesPerPada: 9},
	{Name: "Pankti", Padas: 4, SyllablesPerPada: 10},
	{Name: "Trishtubh", Padas: 4, SyllablesPerPada: 11},
	{Name: "Jagati", Padas: 4, SyllablesPerPada: 12},
}

// Meters returns a copy of the canonical meter table in table order.
func Meters() []MeterTemplate {
	out := make([]MeterTemplate, len(saptaChandas))
	copy(out, saptaChandas)
	return out
}
