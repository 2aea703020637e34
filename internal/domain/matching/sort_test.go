package matching

import (
	"testing"

	"logistaff/internal/domain/candidate"

	"github.com/google/uuid"
)

func ranked(idSuffix string, score int, hourlyRate float64, dayOfMonth int) RankedCandidate {
	rc := RankedCandidate{
		Candidate: candidate.Candidate{
			ID:         uuid.MustParse("00000000-0000-0000-0000-00000000000" + idSuffix),
			HourlyRate: hourlyRate,
		},
		Score: score,
	}
	if dayOfMonth > 0 {
		rc.Candidate.AvailableFrom = day(dayOfMonth)
	}
	return rc
}

func TestRank_MatchScoreDescWithIDTieBreak(t *testing.T) {
	items := []RankedCandidate{
		ranked("3", 80, 0, 0),
		ranked("1", 95, 0, 0),
		ranked("4", 80, 0, 0),
		ranked("2", 80, 0, 0),
	}

	got := Rank(items, SortMatchScore)

	wantOrder := []string{"1", "2", "3", "4"}
	for i, suffix := range wantOrder {
		id := got[i].Candidate.ID.String()
		if id[len(id)-1:] != suffix {
			t.Fatalf("position %d: expected id suffix %s, got %s", i, suffix, id)
		}
	}
}

func TestRank_Deterministic(t *testing.T) {
	items := []RankedCandidate{
		ranked("2", 70, 15, 5),
		ranked("1", 70, 15, 5),
		ranked("3", 90, 20, 1),
	}

	first := Rank(items, SortMatchScore)
	second := Rank(items, SortMatchScore)

	if len(first) != len(second) {
		t.Fatalf("length mismatch")
	}
	for i := range first {
		if first[i].Candidate.ID != second[i].Candidate.ID {
			t.Fatalf("ordering not reproducible at %d", i)
		}
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	items := []RankedCandidate{
		ranked("2", 70, 0, 0),
		ranked("1", 90, 0, 0),
	}

	_ = Rank(items, SortMatchScore)

	if items[0].Score != 70 || items[1].Score != 90 {
		t.Fatalf("input slice reordered")
	}
}

func TestRank_RateKeys(t *testing.T) {
	items := []RankedCandidate{
		ranked("1", 0, 12, 0),
		ranked("2", 0, 25, 0),
		ranked("3", 0, 18, 0),
	}

	high := Rank(items, SortRateHigh)
	if high[0].Candidate.HourlyRate != 25 || high[2].Candidate.HourlyRate != 12 {
		t.Fatalf("rateHigh ordering wrong: %v %v %v", high[0].Candidate.HourlyRate, high[1].Candidate.HourlyRate, high[2].Candidate.HourlyRate)
	}

	low := Rank(items, SortRateLow)
	if low[0].Candidate.HourlyRate != 12 || low[2].Candidate.HourlyRate != 25 {
		t.Fatalf("rateLow ordering wrong")
	}
}

func TestRank_DateKeysWithIDTieBreak(t *testing.T) {
	items := []RankedCandidate{
		ranked("2", 0, 0, 5),
		ranked("3", 0, 0, 12),
		ranked("1", 0, 0, 5),
	}

	recent := Rank(items, SortDateRecent)
	id0 := recent[0].Candidate.ID.String()
	if id0[len(id0)-1:] != "3" {
		t.Fatalf("dateRecent should put day 12 first")
	}
	id1 := recent[1].Candidate.ID.String()
	if id1[len(id1)-1:] != "1" {
		t.Fatalf("equal dates should tie-break by id asc")
	}

	oldest := Rank(items, SortDateOldest)
	idLast := oldest[2].Candidate.ID.String()
	if idLast[len(idLast)-1:] != "3" {
		t.Fatalf("dateOldest should put day 12 last")
	}
}

func TestParseSortKey(t *testing.T) {
	if k, ok := ParseSortKey(""); !ok || k != SortMatchScore {
		t.Fatalf("empty sort should default to matchScore")
	}
	if _, ok := ParseSortKey("definitely-not-a-key"); ok {
		t.Fatalf("unknown sort key should fail")
	}
	if k, ok := ParseSortKey("rateHigh"); !ok || k != SortRateHigh {
		t.Fatalf("rateHigh should parse")
	}
}
