package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"logistaff/internal/domain/matching"

	"github.com/google/uuid"
)

type rankCacheKeyInput struct {
	RequestID string   `json:"request_id"`
	Keyword   string   `json:"keyword"`
	Location  string   `json:"location"`
	RateMin   *float64 `json:"rate_min"`
	RateMax   *float64 `json:"rate_max"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Skills    []string `json:"skills"`
	SkillMode int      `json:"skill_mode"`
	Statuses  []string `json:"statuses"`
	SortKey   string   `json:"sort_key"`
}

func normalizeCacheValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

func rankCacheKey(requestID uuid.UUID, c matching.Criteria, key matching.SortKey) string {
	skills := make([]string, 0, len(c.Skills))
	for _, s := range c.Skills {
		s = normalizeCacheValue(s)
		if s == "" {
			continue
		}
		skills = append(skills, s)
	}

	statuses := make([]string, 0, len(c.Statuses))
	for _, s := range c.Statuses {
		statuses = append(statuses, string(s))
	}

	in := rankCacheKeyInput{
		RequestID: requestID.String(),
		Keyword:   normalizeCacheValue(c.Keyword),
		Location:  normalizeCacheValue(c.Location),
		RateMin:   c.RateMin,
		RateMax:   c.RateMax,
		StartDate: formatCacheTime(c.StartDate),
		EndDate:   formatCacheTime(c.EndDate),
		Skills:    skills,
		SkillMode: int(c.SkillMode),
		Statuses:  statuses,
		SortKey:   string(key),
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "rank:" + requestID.String() + ":" + hex.EncodeToString(sum[:])
}

func rankCachePattern(requestID uuid.UUID) string {
	return "rank:" + requestID.String() + ":*"
}

func formatCacheTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
