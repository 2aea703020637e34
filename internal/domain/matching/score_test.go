package matching

import (
	"testing"

	"logistaff/internal/domain/candidate"
	"logistaff/internal/domain/request"

	"github.com/google/uuid"
)

func ratingOf(v float64) *float64 {
	return &v
}

func TestScore_WarehouseScenario(t *testing.T) {
	c := candidate.Candidate{
		ID:            uuid.New(),
		Skills:        []string{"Forklift operation", "Inventory management"},
		Rating:        ratingOf(4.8),
		Availability:  candidate.AvailabilityImmediate,
		CompletedJobs: 23,
	}
	r := request.Request{
		ID:             uuid.New(),
		RequiredSkills: []string{"forklift", "inventory"},
	}

	// 40 (2/2 skills) + 28.8 (rating) + 20 (immediate) + 10 (experience) = 98.8
	if got := Score(c, r); got != 99 {
		t.Fatalf("expected score 99, got %d", got)
	}
}

func TestScore_Bounds(t *testing.T) {
	cases := []candidate.Candidate{
		{},
		{Skills: []string{"forklift"}, Rating: ratingOf(5), Availability: candidate.AvailabilityImmediate, CompletedJobs: 100},
		{Rating: ratingOf(-3), HourlyRate: -10, CompletedJobs: -5},
		{Rating: ratingOf(99), Availability: candidate.Availability("weird")},
	}
	r := request.Request{RequiredSkills: []string{"forklift"}}

	for i, c := range cases {
		got := Score(c, r)
		if got < 0 || got > 100 {
			t.Fatalf("case %d: score %d out of [0,100]", i, got)
		}
	}
}

func TestScore_Deterministic(t *testing.T) {
	c := candidate.Candidate{
		Skills:        []string{"Picking", "Packing"},
		Rating:        ratingOf(3.7),
		Availability:  candidate.AvailabilityWithinWeek,
		CompletedJobs: 4,
	}
	r := request.Request{RequiredSkills: []string{"packing", "loading"}}

	first := Score(c, r)
	for i := 0; i < 10; i++ {
		if got := Score(c, r); got != first {
			t.Fatalf("score not deterministic: first=%d got=%d", first, got)
		}
	}
}

func TestScore_EmptyRequiredSkills(t *testing.T) {
	c := candidate.Candidate{
		Skills:        []string{"Forklift operation"},
		Rating:        ratingOf(5),
		Availability:  candidate.AvailabilityImmediate,
		CompletedJobs: 10,
	}
	r := request.Request{RequiredSkills: nil}

	// Skill term must be 0, never a division error: 0 + 30 + 20 + 10.
	if got := Score(c, r); got != 60 {
		t.Fatalf("expected 60, got %d", got)
	}
}

func TestScore_ExperienceSaturates(t *testing.T) {
	base := candidate.Candidate{Availability: candidate.AvailabilityWithinMonth}

	ten := base
	ten.CompletedJobs = 10
	twenty := base
	twenty.CompletedJobs = 20

	r := request.Request{}
	if Score(ten, r) != Score(twenty, r) {
		t.Fatalf("experience term should saturate at 10 completed jobs")
	}
}

func TestScore_NoRatingNoExperience(t *testing.T) {
	c := candidate.Candidate{
		Skills:       []string{"forklift"},
		Availability: candidate.AvailabilityImmediate,
	}
	r := request.Request{RequiredSkills: []string{"forklift"}}

	// Skill 40 + availability 20; rating and experience contribute nothing.
	if got := Score(c, r); got != 60 {
		t.Fatalf("expected 60, got %d", got)
	}
}

func TestScore_AvailabilitySteps(t *testing.T) {
	r := request.Request{}
	cases := []struct {
		availability candidate.Availability
		want         int
	}{
		{candidate.AvailabilityImmediate, 20},
		{candidate.AvailabilityWithinWeek, 15},
		{candidate.AvailabilityWithinMonth, 10},
		{candidate.Availability("unknown"), 10},
	}
	for _, tc := range cases {
		c := candidate.Candidate{Availability: tc.availability}
		if got := Score(c, r); got != tc.want {
			t.Fatalf("availability %q: expected %d, got %d", tc.availability, tc.want, got)
		}
	}
}

func TestScore_BidirectionalSkillContainment(t *testing.T) {
	r := request.Request{RequiredSkills: []string{"Forklift operation certificate"}}
	c := candidate.Candidate{Skills: []string{"forklift operation"}}

	// Candidate skill is a substring of the requirement: still a match.
	if got := Score(c, r); got != 50 {
		t.Fatalf("expected 50 (40 skill + 10 default availability), got %d", got)
	}
}
