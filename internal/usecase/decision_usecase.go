package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"logistaff/internal/domain/match"
	"logistaff/internal/domain/matching"
	"logistaff/internal/repository"

	"github.com/google/uuid"
)

type Action string

const (
	ActionAccept   Action = "accept"
	ActionReject   Action = "reject"
	ActionComplete Action = "complete"
)

func ParseAction(raw string) (Action, bool) {
	switch Action(strings.ToLower(strings.TrimSpace(raw))) {
	case ActionAccept:
		return ActionAccept, true
	case ActionReject:
		return ActionReject, true
	case ActionComplete:
		return ActionComplete, true
	}
	return "", false
}

func (a Action) target() match.Status {
	switch a {
	case ActionAccept:
		return match.StatusAccepted
	case ActionReject:
		return match.StatusRejected
	case ActionComplete:
		return match.StatusCompleted
	}
	return ""
}

type DecisionUsecase interface {
	ApplyDecision(ctx context.Context, matchID uuid.UUID, action Action, reason string) (match.Match, error)
	Shortlist(ctx context.Context, requestID, candidateID uuid.UUID) (match.Match, error)
}

type Decision struct {
	matches    repository.MatchRepository
	requests   repository.RequestRepository
	candidates repository.CandidateRepository
	cache      MatchCache
	lockTTL    time.Duration

	locks *keyedMutex
}

func NewDecisionUsecase(matches repository.MatchRepository, requests repository.RequestRepository, candidates repository.CandidateRepository, cache MatchCache, lockTTL time.Duration) *Decision {
	return &Decision{
		matches:    matches,
		requests:   requests,
		candidates: candidates,
		cache:      cache,
		lockTTL:    lockTTL,
		locks:      newKeyedMutex(),
	}
}

// ApplyDecision runs the read-validate-write sequence for one match under a
// per-match-id lock. A concurrent duplicate either observes the updated state
// and gets the idempotent no-op result, or gets ErrInvalidTransition; a lost
// update is impossible because the write is a status compare-and-swap.
func (u *Decision) ApplyDecision(ctx context.Context, matchID uuid.UUID, action Action, reason string) (match.Match, error) {
	if matchID == uuid.Nil {
		return match.Match{}, ErrInvalidInput
	}
	target := action.target()
	if target == "" {
		return match.Match{}, fmt.Errorf("%w: unknown action %q", ErrInvalidInput, action)
	}

	unlock := u.locks.Lock(matchID)
	defer unlock()

	release := u.acquireLease(ctx, matchID)
	defer release()

	current, err := u.matches.FindByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, repository.ErrMatchNotFound) {
			return match.Match{}, fmt.Errorf("%w: match %s", ErrNotFound, matchID)
		}
		return match.Match{}, fmt.Errorf("%w: match %s: %w", ErrPersistence, matchID, err)
	}

	changed, err := match.Transition(current.Status, target)
	if err != nil {
		return match.Match{}, fmt.Errorf("%w: match %s: %s -> %s", ErrInvalidTransition, matchID, current.Status, target)
	}
	if !changed {
		// Idempotent replay: nothing to persist, nothing to notify.
		return current, nil
	}

	var reasonPtr *string
	if target == match.StatusRejected {
		if r := strings.TrimSpace(reason); r != "" {
			reasonPtr = &r
		}
	}

	swapped, err := u.matches.UpdateStatus(ctx, matchID, current.Status, target, reasonPtr)
	if err != nil {
		return match.Match{}, fmt.Errorf("%w: match %s: %w", ErrPersistence, matchID, err)
	}
	if !swapped {
		// A concurrent writer moved the status first. Re-read and decide
		// between their result being ours (no-op) and a now-illegal move.
		latest, err := u.matches.FindByID(ctx, matchID)
		if err != nil {
			return match.Match{}, fmt.Errorf("%w: match %s: %w", ErrPersistence, matchID, err)
		}
		if latest.Status == target {
			return latest, nil
		}
		return match.Match{}, fmt.Errorf("%w: match %s: %s -> %s", ErrInvalidTransition, matchID, latest.Status, target)
	}

	updated, err := u.matches.FindByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("%w: match %s: %w", ErrPersistence, matchID, err)
	}

	u.invalidateRanking(ctx, updated.RequestID)

	return updated, nil
}

// Shortlist materializes a pending match for a (request, candidate) pair with
// the computed score. The pair is unique; shortlisting twice returns the
// stored match unchanged.
func (u *Decision) Shortlist(ctx context.Context, requestID, candidateID uuid.UUID) (match.Match, error) {
	if requestID == uuid.Nil || candidateID == uuid.Nil {
		return match.Match{}, ErrInvalidInput
	}

	req, err := u.requests.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return match.Match{}, fmt.Errorf("%w: request %s", ErrNotFound, requestID)
		}
		return match.Match{}, fmt.Errorf("%w: request %s: %w", ErrPersistence, requestID, err)
	}

	cand, err := u.candidates.FindByID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return match.Match{}, fmt.Errorf("%w: candidate %s", ErrNotFound, candidateID)
		}
		return match.Match{}, fmt.Errorf("%w: candidate %s: %w", ErrPersistence, candidateID, err)
	}

	created, err := u.matches.Create(ctx, match.Match{
		RequestID:   requestID,
		CandidateID: candidateID,
		Score:       matching.Score(cand, req),
		Status:      match.StatusPending,
	})
	if err != nil {
		return match.Match{}, fmt.Errorf("%w: match %s/%s: %w", ErrPersistence, requestID, candidateID, err)
	}

	u.invalidateRanking(ctx, requestID)

	return created, nil
}

// acquireLease takes the cross-instance redis lease for a match id. It is
// best effort: after a few attempts the decision proceeds anyway, since the
// repository compare-and-swap alone rules out lost updates.
func (u *Decision) acquireLease(ctx context.Context, matchID uuid.UUID) func() {
	if u.cache == nil {
		return func() {}
	}

	key := "match:decision:" + matchID.String()
	token := uuid.NewString()

	for attempt := 0; attempt < 3; attempt++ {
		ok, err := u.cache.SetIfNotExists(ctx, key, token, u.lockTTL)
		if err != nil || ok {
			break
		}
		select {
		case <-ctx.Done():
			return func() {}
		case <-time.After(50 * time.Millisecond):
		}
	}

	return func() {
		_ = u.cache.Release(context.Background(), key, token)
	}
}

func (u *Decision) invalidateRanking(ctx context.Context, requestID uuid.UUID) {
	if u.cache == nil {
		return
	}
	_ = u.cache.DeleteByPattern(ctx, rankCachePattern(requestID))
}
