package chandas

import "math"

// Notes surfaced with each match tier.
const (
	noteExact    = "Exact Sapta-chandas match"
	noteTolerant = "Within ±1 tolerance"
	noteClosest  = "Closest based on counts; may be approximate"
)

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// confidenceFromDeviations maps per-pada deviations from a target length to
// a confidence in [0.1, 1.0], rounded to two decimals. Exactly-matching
// padas weigh most (0.6), padas within one syllable less (0.3), and the
// normalized average deviation least (0.1).
func confidenceFromDeviations(targetLen int, deviations []int) float64 {
	if len(deviations) == 0 {
		return 0.5
	}
	n := float64(len(deviations))
	var exact, within1, sum int
	for _, d := range deviations {
		if d == 0 {
			exact++
		}
		if d <= 1 {
			within1++
		}
		sum += d
	}
	avgDev := float64(sum) / n
	base := 0.6*float64(exact)/n + 0.3*float64(within1)/n +
		0.1*math.Max(0, 1-avgDev/math.Max(1, float64(targetLen)))
	return math.Round(math.Min(1, math.Max(0.1, base))*100) / 100
}

// identifyMeter looks for a template whose pada count equals the verse's
// and whose per-pada deviations all stay within tolerance. Qualifying
// templates are ranked by (max deviation, total deviation) ascending.
// ok is false when no template qualifies.
func (a *Analyzer) identifyMeter(counts []int, tolerance int) (MatchResult, bool) {
	type candidate struct {
		maxDev, sumDev int
		tmpl           MeterTemplate
		deviations     []int
	}
	var best *candidate
	for _, tmpl := range a.meters {
		if len(counts) != tmpl.Padas {
			continue
		}
		deviations := make([]int, len(counts))
		maxDev, sumDev := 0, 0
		for i, c := range counts {
			d := abs(c - tmpl.SyllablesPerPada)
			deviations[i] = d
			sumDev += d
			if d > maxDev {
				maxDev = d
			}
		}
		if maxDev > tolerance {
			continue
		}
		cand := candidate{maxDev: maxDev, sumDev: sumDev, tmpl: tmpl, deviations: deviations}
		if best == nil || cand.maxDev < best.maxDev ||
			(cand.maxDev == best.maxDev && cand.sumDev < best.sumDev) {
			best = &cand
		}
	}
	if best == nil {
		return MatchResult{}, false
	}
	tier := TierTolerant
	conf := confidenceFromDeviations(best.tmpl.SyllablesPerPada, best.deviations)
	if best.maxDev == 0 {
		tier = TierExact
		conf = 1.0
	}
	return MatchResult{
		Name:        best.tmpl.Name,
		TargetPadas: best.tmpl.Padas,
		TargetLen:   best.tmpl.SyllablesPerPada,
		Deviations:  best.deviations,
		Tier:        tier,
		Confidence:  conf,
	}, true
}

// closestMeter scores every template regardless of pada count: four points
// per pada of count mismatch, plus the per-pada distance over the shared
// prefix, plus a full target length for each pada the template expects
// beyond what the verse supplied. The lowest score wins; ties keep the
// first template in table order.
func (a *Analyzer) closestMeter(counts []int) MatchResult {
	var best MatchResult
	bestScore := -1
	for _, tmpl := range a.meters {
		padPenalty := abs(len(counts)-tmpl.Padas) * 4
		k := min(len(counts), tmpl.Padas)
		deviations := make([]int, 0, tmpl.Padas)
		sum := 0
		for i := 0; i < k; i++ {
			d := abs(counts[i] - tmpl.SyllablesPerPada)
			deviations = append(deviations, d)
			sum += d
		}
		// Missing padas count worst-case.
		for i := len(counts); i < tmpl.Padas; i++ {
			deviations = append(deviations, tmpl.SyllablesPerPada)
			sum += tmpl.SyllablesPerPada
		}
		score := padPenalty + sum
		if bestScore < 0 || score < bestScore {
			bestScore = score
			best = MatchResult{
				Name:        tmpl.Name,
				TargetPadas: tmpl.Padas,
				TargetLen:   tmpl.SyllablesPerPada,
				Deviations:  deviations,
				Tier:        TierClosest,
			}
		}
	}
	best.Confidence = confidenceFromDeviations(best.TargetLen, best.Deviations)
	return best
}

// matchMeter runs the three-tier resolution over the verse's per-pada
// syllable counts: exact, then within ±1 tolerance, then closest by score.
// The first tier that succeeds wins.
func (a *Analyzer) matchMeter(counts []int) (MatchResult, string) {
	if m, ok := a.identifyMeter(counts, 0); ok {
		return a.applyForce(m), noteExact
	}
	if m, ok := a.identifyMeter(counts, 1); ok {
		return a.applyForce(m), noteTolerant
	}
	return a.applyForce(a.closestMeter(counts)), noteClosest
}

// applyForce pins confidence to 1.0 when the analyzer was configured to.
func (a *Analyzer) applyForce(m MatchResult) MatchResult {
	if a.forceConfidence {
		m.Confidence = 1.0
	}
	return m
}
