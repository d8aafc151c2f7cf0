package langdetect

import (
	"fmt"
	"testing"
)

func TestRank_TruncatesToTopN(t *testing.T) {
	t.Parallel()

	cands := make([]Candidate, 0, 28)
	for i := 0; i < 28; i++ {
		cands = append(cands, Candidate{
			Language:   fmt.Sprintf("LANG%02d", i),
			Confidence: float64(i) / 28.0,
		})
	}

	ranked := Rank(cands, 5)
	if len(ranked) != 5 {
		t.Fatalf("len = %d, want 5", len(ranked))
	}
	for i, r := range ranked {
		if r.Rank != i+1 {
			t.Errorf("ranked[%d].Rank = %d, want %d", i, r.Rank, i+1)
		}
		if i > 0 && r.Confidence > ranked[i-1].Confidence {
			t.Errorf("confidence increases at index %d: %v > %v", i, r.Confidence, ranked[i-1].Confidence)
		}
	}
	if ranked[0].Language != "LANG27" {
		t.Errorf("top language = %q, want LANG27", ranked[0].Language)
	}
}

func TestRank_FewerCandidatesThanTopN(t *testing.T) {
	t.Parallel()

	cands := []Candidate{
		{Language: "FRENCH", Confidence: 0.9},
		{Language: "SPANISH", Confidence: 0.1},
	}
	ranked := Rank(cands, 5)
	if len(ranked) != 2 {
		t.Fatalf("len = %d, want 2", len(ranked))
	}
}

func TestRank_StableOnTies(t *testing.T) {
	t.Parallel()

	cands := []Candidate{
		{Language: "GERMAN", Confidence: 0.5},
		{Language: "DUTCH", Confidence: 0.5},
		{Language: "DANISH", Confidence: 0.5},
	}
	ranked := Rank(cands, 3)
	want := []string{"GERMAN", "DUTCH", "DANISH"}
	for i, w := range want {
		if ranked[i].Language != w {
			t.Errorf("ranked[%d].Language = %q, want %q", i, ranked[i].Language, w)
		}
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	cands := []Candidate{
		{Language: "SPANISH", Confidence: 0.1},
		{Language: "FRENCH", Confidence: 0.9},
	}
	_ = Rank(cands, 2)
	if cands[0].Language != "SPANISH" {
		t.Fatalf("input reordered: %+v", cands)
	}
}

func TestConfidenceOf(t *testing.T) {
	t.Parallel()

	ranked := []Ranked{
		{Language: "FRENCH", Confidence: 0.8, Rank: 1},
		{Language: "SPANISH", Confidence: 0.2, Rank: 2},
	}

	if got := ConfidenceOf(ranked, "FRENCH"); got != 0.8 {
		t.Errorf("ConfidenceOf(FRENCH) = %v, want 0.8", got)
	}
	if got := ConfidenceOf(ranked, "SWAHILI"); got != 0.0 {
		t.Errorf("ConfidenceOf(SWAHILI) = %v, want 0.0 outside window", got)
	}
}
