package chandas

// MatchTier names the resolution tier that produced a meter match.
type MatchTier string

const (
	// TierExact means pada count and every syllable count hit the template.
	TierExact MatchTier = "exact"
	// TierTolerant means pada count matched and every pada was within ±1
	// syllable of the template.
	TierTolerant MatchTier = "tolerant"
	// TierClosest means no template qualified and the lowest-scoring one
	// was chosen regardless of pada count.
	TierClosest MatchTier = "closest"
)

// MatchResult describes the meter chosen for a verse.
type MatchResult struct {
	// Name is the meter's name from the canonical table.
	Name string
	// TargetPadas is the pada count the template requires.
	TargetPadas int
	// TargetLen is the syllables-per-pada the template requires.
	TargetLen int
	// Deviations holds each pada's absolute distance from TargetLen.
	Deviations []int
	// Tier records which resolution tier produced the match.
	Tier MatchTier
	// Confidence is in [0.1, 1.0]; exact matches score exactly 1.0.
	Confidence float64
}

// PadaInfo summarizes one pada of an analyzed verse.
type PadaInfo struct {
	// Count is the pada's syllable count.
	Count int
	// Pattern is the pada's weight pattern over the alphabet 'G'/'L'.
	Pattern string
}

// AnalysisResult is the complete outcome of one Analyze call.
// It is a plain value; callers may retain or serialize it freely.
type AnalysisResult struct {
	// Script is the writing system the verse was parsed as.
	Script Script
	// InputSegments is the number of line/phrase segments found.
	InputSegments int
	// Padas lists syllable count and weight pattern per pada.
	Padas []PadaInfo
	// PadaCounts is the flat list of per-pada syllable counts.
	PadaCounts []int
	// Match is the chosen meter.
	Match MatchResult
	// Note names the tier that produced the match, for display.
	Note string
}
