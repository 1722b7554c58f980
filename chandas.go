// Package chandas analyzes short Sanskrit verses for their classical
// quantitative meter. It accepts Devanagari or IAST transliteration input,
// scans it into syllables, resolves each syllable's laghu/guru weight, and
// matches the resulting pada profile against the seven canonical
// sapta-chandas templates.
package chandas

// Options configures an Analyzer.
type Options struct {
	// ForceConfidence reports every match with confidence 1.0, regardless
	// of how well the verse fits the chosen template. Off by default.
	ForceConfidence bool
}

// Analyzer holds the canonical meter table and analysis options.
// It is immutable after construction and safe for concurrent use.
type Analyzer struct {
	meters          []MeterTemplate
	forceConfidence bool
}

// New returns an Analyzer with default options.
func New() *Analyzer {
	return NewWithOptions(Options{})
}

// NewWithOptions returns an Analyzer configured by opts.
func NewWithOptions(opts Options) *Analyzer {
	return &Analyzer{
		meters:          saptaChandas,
		forceConfidence: opts.ForceConfidence,
	}
}

// Analyze runs the full pipeline over a verse: normalization, script
// detection (honoring prefer when it names a supported script), segment
// splitting, script-specific syllabification, pada segmentation, weight
// resolution, and meter matching.
//
// Analyze is a pure function of its inputs and total over them: any string,
// including empty or garbage input, yields a well-formed result. Degenerate
// input simply falls through to a closest-tier match with low confidence.
func (a *Analyzer) Analyze(text string, prefer Script) AnalysisResult {
	normalized := Normalize(text)
	script := DetectScript(normalized, prefer)

	segments := SplitSegments(normalized)
	segSylls := make([][]Syllable, len(segments))
	for i, seg := range segments {
		if script == ScriptDevanagari {
			segSylls[i] = syllabifyDevanagari(seg)
		} else {
			segSylls[i] = syllabifyLatin(seg)
		}
	}

	padas := resolveWeights(splitIntoPadas(segSylls))

	infos := make([]PadaInfo, len(padas))
	counts := make([]int, len(padas))
	for i, p := range padas {
		infos[i] = PadaInfo{Count: p.Count(), Pattern: p.Pattern()}
		counts[i] = p.Count()
	}

	match, note := a.matchMeter(counts)

	return AnalysisResult{
		Script:        script,
		InputSegments: len(segments),
		Padas:         infos,
		PadaCounts:    counts,
		Match:         match,
		Note:          note,
	}
}
