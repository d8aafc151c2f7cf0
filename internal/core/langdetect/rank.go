package langdetect

import "sort"

// Ranked is one candidate with its 1-based position in the ranking
type Ranked struct {
	Language   string
	Confidence float64
	Rank       int
}

// Rank orders candidates by confidence descending, truncated to topN
// the sort is stable so ties keep the order the adapter returned
// output length is min(topN, len(candidates))
func Rank(candidates []Candidate, topN int) []Ranked {
	cs := make([]Candidate, len(candidates))
	copy(cs, candidates)
	sort.SliceStable(cs, func(i, j int) bool { return cs[i].Confidence > cs[j].Confidence })

	if topN < 0 {
		topN = 0
	}
	if topN > len(cs) {
		topN = len(cs)
	}
	out := make([]Ranked, 0, topN)
	for i := 0; i < topN; i++ {
		out = append(out, Ranked{
			Language:   cs[i].Language,
			Confidence: cs[i].Confidence,
			Rank:       i + 1,
		})
	}
	return out
}

// ConfidenceOf resolves the ranked confidence for a specific language
// returns 0.0 when the language fell outside the ranked window; that is an
// explicit fallback policy, not an error
func ConfidenceOf(ranked []Ranked, language string) float64 {
	for _, r := range ranked {
		if r.Language == language {
			return r.Confidence
		}
	}
	return 0.0
}
