package candidate

import (
	"time"

	"github.com/google/uuid"
)

type Availability string

const (
	AvailabilityImmediate   Availability = "immediate"
	AvailabilityWithinWeek  Availability = "within_week"
	AvailabilityWithinMonth Availability = "within_month"
)

type Status string

const (
	StatusAvailable   Status = "available"
	StatusAssigned    Status = "assigned"
	StatusUnavailable Status = "unavailable"
)

type Candidate struct {
	ID            uuid.UUID
	Name          string
	Location      string
	Skills        []string
	HourlyRate    float64
	Availability  Availability
	Rating        *float64
	CompletedJobs int
	Status        Status
	AvailableFrom *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Normalize clamps fields that arrive out of range from the data layer.
// Ranking is a best-effort signal, so bad values degrade instead of failing.
func (c Candidate) Normalize() Candidate {
	if c.HourlyRate < 0 {
		c.HourlyRate = 0
	}
	if c.Rating != nil {
		r := *c.Rating
		if r < 0 {
			r = 0
		}
		if r > 5 {
			r = 5
		}
		c.Rating = &r
	}
	if c.CompletedJobs < 0 {
		c.CompletedJobs = 0
	}
	return c
}
