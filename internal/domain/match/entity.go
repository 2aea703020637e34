package match

import (
	"time"

	"github.com/google/uuid"
)

type Match struct {
	ID              uuid.UUID
	RequestID       uuid.UUID
	CandidateID     uuid.UUID
	Score           int
	Status          Status
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
