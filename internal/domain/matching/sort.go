package matching

import (
	"sort"
	"strings"
	"time"

	"logistaff/internal/domain/candidate"
)

type SortKey string

const (
	SortMatchScore SortKey = "matchScore"
	SortRateHigh   SortKey = "rateHigh"
	SortRateLow    SortKey = "rateLow"
	SortDateRecent SortKey = "dateRecent"
	SortDateOldest SortKey = "dateOldest"
)

func ParseSortKey(raw string) (SortKey, bool) {
	switch SortKey(strings.TrimSpace(raw)) {
	case SortMatchScore:
		return SortMatchScore, true
	case SortRateHigh:
		return SortRateHigh, true
	case SortRateLow:
		return SortRateLow, true
	case SortDateRecent:
		return SortDateRecent, true
	case SortDateOldest:
		return SortDateOldest, true
	case "":
		return SortMatchScore, true
	}
	return "", false
}

type RankedCandidate struct {
	Candidate candidate.Candidate
	Score     int
}

// Rank orders ranked candidates by the sort key. Equal primary keys fall back
// to the candidate id ascending, which gives a total order; the stable sort
// keeps the output reproducible either way. The input slice is not mutated.
func Rank(items []RankedCandidate, key SortKey) []RankedCandidate {
	out := make([]RankedCandidate, len(items))
	copy(out, items)

	sort.SliceStable(out, func(i, j int) bool {
		if c := compare(out[i], out[j], key); c != 0 {
			return c < 0
		}
		return out[i].Candidate.ID.String() < out[j].Candidate.ID.String()
	})

	return out
}

func compare(a, b RankedCandidate, key SortKey) int {
	switch key {
	case SortRateHigh:
		return compareFloat(b.Candidate.HourlyRate, a.Candidate.HourlyRate)
	case SortRateLow:
		return compareFloat(a.Candidate.HourlyRate, b.Candidate.HourlyRate)
	case SortDateRecent:
		return compareTime(availableFrom(b), availableFrom(a))
	case SortDateOldest:
		return compareTime(availableFrom(a), availableFrom(b))
	default: // SortMatchScore
		return b.Score - a.Score
	}
}

func availableFrom(rc RankedCandidate) time.Time {
	if rc.Candidate.AvailableFrom == nil {
		return time.Time{}
	}
	return *rc.Candidate.AvailableFrom
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareTime(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	}
	return 0
}
