package matching

import (
	"testing"
	"time"

	"logistaff/internal/domain/candidate"

	"github.com/google/uuid"
)

func rate(v float64) *float64 {
	return &v
}

func day(d int) *time.Time {
	t := time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func samplePool() []candidate.Candidate {
	return []candidate.Candidate{
		{ID: uuid.MustParse("00000000-0000-0000-0000-000000000001"), Name: "Ada", Location: "Lyon", Skills: []string{"Forklift operation"}, HourlyRate: 18, Status: candidate.StatusAvailable, AvailableFrom: day(3)},
		{ID: uuid.MustParse("00000000-0000-0000-0000-000000000002"), Name: "Bert", Location: "Paris", Skills: []string{"Picking", "Packing"}, HourlyRate: 14, Status: candidate.StatusAssigned, AvailableFrom: day(10)},
		{ID: uuid.MustParse("00000000-0000-0000-0000-000000000003"), Name: "Cleo", Location: "Lyon", Skills: []string{"Inventory management", "Packing"}, HourlyRate: 22, Status: candidate.StatusAvailable, AvailableFrom: day(7)},
	}
}

func idsOf(pool []candidate.Candidate) []string {
	out := make([]string, 0, len(pool))
	for _, c := range pool {
		out = append(out, c.ID.String()[len(c.ID.String())-1:])
	}
	return out
}

func TestFilter_EmptyCriteriaReturnsInputInOrder(t *testing.T) {
	pool := samplePool()
	got := Filter(pool, Criteria{})
	if len(got) != len(pool) {
		t.Fatalf("expected %d candidates, got %d", len(pool), len(got))
	}
	for i := range pool {
		if got[i].ID != pool[i].ID {
			t.Fatalf("order changed at %d", i)
		}
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	pool := samplePool()
	before := idsOf(pool)

	_ = Filter(pool, Criteria{Keyword: "packing"})

	after := idsOf(pool)
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("input pool mutated at %d", i)
		}
	}
}

func TestFilter_KeywordAcrossFields(t *testing.T) {
	pool := samplePool()

	// Matches Ada by skill and Cleo by location, case-insensitive.
	got := Filter(pool, Criteria{Keyword: "FORKLIFT"})
	if len(got) != 1 || got[0].Name != "Ada" {
		t.Fatalf("keyword by skill: got %d results", len(got))
	}

	got = Filter(pool, Criteria{Keyword: "lyon"})
	if len(got) != 2 {
		t.Fatalf("keyword by location: expected 2, got %d", len(got))
	}

	got = Filter(pool, Criteria{Keyword: "bert"})
	if len(got) != 1 || got[0].Name != "Bert" {
		t.Fatalf("keyword by name: got %d results", len(got))
	}
}

func TestFilter_LocationAllIsNoop(t *testing.T) {
	pool := samplePool()
	if got := Filter(pool, Criteria{Location: "all"}); len(got) != 3 {
		t.Fatalf("location=all should keep everyone, got %d", len(got))
	}
	if got := Filter(pool, Criteria{Location: "Paris"}); len(got) != 1 || got[0].Name != "Bert" {
		t.Fatalf("location=Paris: got %d results", len(got))
	}
}

func TestFilter_RateBoundsInclusive(t *testing.T) {
	pool := samplePool()
	got := Filter(pool, Criteria{RateMin: rate(14), RateMax: rate(18)})
	if len(got) != 2 {
		t.Fatalf("expected 2 in [14,18], got %d", len(got))
	}
}

func TestFilter_DateRangeInclusive(t *testing.T) {
	pool := samplePool()
	got := Filter(pool, Criteria{StartDate: day(3), EndDate: day(7)})
	if len(got) != 2 {
		t.Fatalf("expected Ada and Cleo, got %d", len(got))
	}
}

func TestFilter_SkillModeAllVsAny(t *testing.T) {
	pool := samplePool()
	skills := []string{"packing", "inventory"}

	any := Filter(pool, Criteria{Skills: skills, SkillMode: SkillMatchAny})
	if len(any) != 2 {
		t.Fatalf("ANY: expected Bert and Cleo, got %d", len(any))
	}

	all := Filter(pool, Criteria{Skills: skills, SkillMode: SkillMatchAll})
	if len(all) != 1 || all[0].Name != "Cleo" {
		t.Fatalf("ALL: expected only Cleo, got %d", len(all))
	}
}

func TestFilter_StatusSet(t *testing.T) {
	pool := samplePool()
	got := Filter(pool, Criteria{Statuses: []candidate.Status{candidate.StatusAvailable}})
	if len(got) != 2 {
		t.Fatalf("expected 2 available, got %d", len(got))
	}
	for _, c := range got {
		if c.Status != candidate.StatusAvailable {
			t.Fatalf("unexpected status %q", c.Status)
		}
	}
}

func TestFilter_CriteriaCombineWithAND(t *testing.T) {
	pool := samplePool()
	got := Filter(pool, Criteria{
		Location: "Lyon",
		Statuses: []candidate.Status{candidate.StatusAvailable},
		RateMax:  rate(20),
	})
	if len(got) != 1 || got[0].Name != "Ada" {
		t.Fatalf("expected only Ada, got %d", len(got))
	}
}
