package matching

import (
	"strings"
	"time"

	"logistaff/internal/domain/candidate"
)

type SkillMatchMode int

const (
	// SkillMatchAny is the broad-search semantics: one overlapping skill is
	// enough. Zero value on purpose.
	SkillMatchAny SkillMatchMode = iota
	// SkillMatchAll is the strict profile semantics: every listed skill must
	// be present.
	SkillMatchAll
)

// Criteria is one filter configuration. Every field is optional; an absent or
// empty field excludes nothing. Categories are combined with AND.
type Criteria struct {
	Keyword   string
	Location  string
	RateMin   *float64
	RateMax   *float64
	StartDate *time.Time
	EndDate   *time.Time
	Skills    []string
	SkillMode SkillMatchMode
	Statuses  []candidate.Status
}

// Filter narrows a candidate pool by the given criteria. The input slice is
// never mutated and the result preserves input order.
func Filter(pool []candidate.Candidate, c Criteria) []candidate.Candidate {
	out := make([]candidate.Candidate, 0, len(pool))
	for _, cand := range pool {
		if matches(cand, c) {
			out = append(out, cand)
		}
	}
	return out
}

func matches(cand candidate.Candidate, c Criteria) bool {
	if !matchesKeyword(cand, c.Keyword) {
		return false
	}
	if !matchesLocation(cand, c.Location) {
		return false
	}
	if c.RateMin != nil && cand.HourlyRate < *c.RateMin {
		return false
	}
	if c.RateMax != nil && cand.HourlyRate > *c.RateMax {
		return false
	}
	if !matchesDates(cand, c.StartDate, c.EndDate) {
		return false
	}
	if !matchesSkills(cand, c.Skills, c.SkillMode) {
		return false
	}
	if !matchesStatus(cand, c.Statuses) {
		return false
	}
	return true
}

// matchesKeyword is an OR across name, skills and location, case-insensitive.
func matchesKeyword(cand candidate.Candidate, keyword string) bool {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	if kw == "" {
		return true
	}
	if strings.Contains(strings.ToLower(cand.Name), kw) {
		return true
	}
	if strings.Contains(strings.ToLower(cand.Location), kw) {
		return true
	}
	for _, s := range cand.Skills {
		if strings.Contains(strings.ToLower(s), kw) {
			return true
		}
	}
	return false
}

func matchesLocation(cand candidate.Candidate, location string) bool {
	loc := strings.TrimSpace(location)
	if loc == "" || strings.EqualFold(loc, "all") {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(cand.Location), loc)
}

// matchesDates checks the candidate's available-from date against an
// inclusive range. Candidates without a date are not excluded.
func matchesDates(cand candidate.Candidate, start, end *time.Time) bool {
	if start == nil && end == nil {
		return true
	}
	if cand.AvailableFrom == nil {
		return true
	}
	d := *cand.AvailableFrom
	if start != nil && d.Before(*start) {
		return false
	}
	if end != nil && d.After(*end) {
		return false
	}
	return true
}

func matchesSkills(cand candidate.Candidate, skills []string, mode SkillMatchMode) bool {
	if len(skills) == 0 {
		return true
	}

	for _, want := range skills {
		has := skillOverlaps(want, cand.Skills)
		if mode == SkillMatchAll && !has {
			return false
		}
		if mode == SkillMatchAny && has {
			return true
		}
	}
	return mode == SkillMatchAll
}

func matchesStatus(cand candidate.Candidate, statuses []candidate.Status) bool {
	if len(statuses) == 0 {
		return true
	}
	for _, s := range statuses {
		if cand.Status == s {
			return true
		}
	}
	return false
}
