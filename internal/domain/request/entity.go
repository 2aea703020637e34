package request

import (
	"time"

	"github.com/google/uuid"
)

type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyNormal Urgency = "normal"
	UrgencyHigh   Urgency = "high"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusFulfilled  Status = "fulfilled"
	StatusCancelled  Status = "cancelled"
)

type Request struct {
	ID             uuid.UUID
	Title          string
	RequiredSkills []string
	Urgency        Urgency
	StaffCount     int
	StartDate      *time.Time
	Duration       string
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (r Request) Normalize() Request {
	if r.StaffCount < 1 {
		r.StaffCount = 1
	}
	return r
}
