package dto

import (
	"time"

	"github.com/google/uuid"
)

type RankedCandidateResponse struct {
	CandidateID   uuid.UUID `json:"candidate_id"`
	Name          string    `json:"name"`
	Location      string    `json:"location"`
	Skills        []string  `json:"skills"`
	HourlyRate    float64   `json:"hourly_rate"`
	Availability  string    `json:"availability"`
	Rating        *float64  `json:"rating,omitempty"`
	CompletedJobs int       `json:"completed_jobs"`
	Status        string    `json:"status"`
	MatchScore    int       `json:"match_score"`
}

type MatchResponse struct {
	ID              uuid.UUID `json:"id"`
	RequestID       uuid.UUID `json:"request_id"`
	CandidateID     uuid.UUID `json:"candidate_id"`
	Score           int       `json:"score"`
	Status          string    `json:"status"`
	RejectionReason *string   `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type DecisionRequest struct {
	Action string `json:"action"`
	Reason string `json:"reason"`
}
