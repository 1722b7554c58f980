package chandas

// splitIntoPadas regroups per-segment syllable sequences into metrical feet.
// Three or four segments already look like padas and pass through; two
// segments are each halved at floor(n/2); a single segment is quartered at
// floor(n/4) with the last pada absorbing the remainder (an empty segment
// stays a single empty pada). Any other count passes through unchanged.
// This is a heuristic that assumes well-formed classical verse, not a
// linguistic guarantee.
func splitIntoPadas(segments [][]Syllable) [][]Syllable {
	switch len(segments) {
	case 3, 4:
		return segments
	case 2:
		out := make([][]Syllable, 0, 4)
		for _, seg := range segments {
			half := len(seg) / 2
			out = append(out, seg[:half], seg[half:])
		}
		return out
	case 1:
		seg := segments[0]
		n := len(seg)
		if n == 0 {
			return segments
		}
		q := max(1, n/4)
		a, b, c := min(q, n), min(2*q, n), min(3*q, n)
		return [][]Syllable{seg[:a], seg[a:b], seg[b:c], seg[c:]}
	default:
		return segments
	}
}

// resolveWeights applies the laghu/guru rules to each pada independently,
// producing final Pada values: a syllable is guru when its nucleus is long
// by nature, when it carries a trailing mark, when a consonant coda closed
// it, when it ends the pada (position-final syllables always scan guru), or
// when the next syllable in the same pada opens with a conjunct of two or
// more consonant units. Otherwise laghu. The lookahead never crosses a pada
// boundary.
func resolveWeights(padas [][]Syllable) []Pada {
	out := make([]Pada, len(padas))
	for pi, syls := range padas {
		weights := make([]bool, len(syls))
		for i, syl := range syls {
			heavy := syl.IntrinsicLong || syl.HasMark || syl.Coda
			if !heavy {
				if i == len(syls)-1 {
					heavy = true
				} else if syls[i+1].OnsetLen >= 2 {
					heavy = true
				}
			}
			weights[i] = heavy
		}
		out[pi] = Pada{Syllables: syls, Weights: weights}
	}
	return out
}
