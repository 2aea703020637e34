package matching

import (
	"math"
	"strings"

	"logistaff/internal/domain/candidate"
	"logistaff/internal/domain/request"
)

// Weight budget: 40 skills + 30 rating + 20 availability + 10 experience = 100.
const (
	skillWeight      = 40.0
	ratingWeight     = 30.0
	experienceWeight = 10.0

	availabilityImmediate = 20.0
	availabilityWeek      = 15.0
	availabilityDefault   = 10.0

	experienceSaturation = 10
)

// Score computes the 0-100 compatibility between a candidate and a staffing
// request. Pure and deterministic: no I/O, no clock, identical inputs yield
// identical output.
func Score(c candidate.Candidate, r request.Request) int {
	c = c.Normalize()

	total := skillTerm(c.Skills, r.RequiredSkills) +
		ratingTerm(c.Rating) +
		availabilityTerm(c.Availability) +
		experienceTerm(c.CompletedJobs)

	score := int(math.Round(total))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// skillTerm counts candidate skills that overlap any required skill by
// case-insensitive substring containment in either direction, so "forklift"
// matches "Forklift operation". The denominator is guarded against an empty
// requirement list.
func skillTerm(skills, required []string) float64 {
	if len(required) == 0 {
		return 0
	}

	matched := 0
	for _, s := range skills {
		if skillOverlaps(s, required) {
			matched++
		}
	}

	denom := len(required)
	if denom < 1 {
		denom = 1
	}
	ratio := float64(matched) / float64(denom)
	if ratio > 1 {
		ratio = 1
	}
	return ratio * skillWeight
}

func skillOverlaps(skill string, required []string) bool {
	s := strings.ToLower(strings.TrimSpace(skill))
	if s == "" {
		return false
	}
	for _, req := range required {
		r := strings.ToLower(strings.TrimSpace(req))
		if r == "" {
			continue
		}
		if strings.Contains(s, r) || strings.Contains(r, s) {
			return true
		}
	}
	return false
}

func ratingTerm(rating *float64) float64 {
	if rating == nil {
		return 0
	}
	return (*rating / 5.0) * ratingWeight
}

func availabilityTerm(a candidate.Availability) float64 {
	switch a {
	case candidate.AvailabilityImmediate:
		return availabilityImmediate
	case candidate.AvailabilityWithinWeek:
		return availabilityWeek
	default:
		return availabilityDefault
	}
}

func experienceTerm(completed int) float64 {
	if completed <= 0 {
		return 0
	}
	ratio := float64(completed) / float64(experienceSaturation)
	if ratio > 1 {
		ratio = 1
	}
	return ratio * experienceWeight
}
