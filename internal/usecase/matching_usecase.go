package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logistaff/internal/domain/candidate"
	"logistaff/internal/domain/matching"
	"logistaff/internal/domain/request"
	"logistaff/internal/repository"

	"github.com/google/uuid"
)

type MatchingUsecase interface {
	RankMatches(req request.Request, pool []candidate.Candidate, criteria matching.Criteria, key matching.SortKey) []matching.RankedCandidate
	RankMatchesForRequest(ctx context.Context, requestID uuid.UUID, criteria matching.Criteria, key matching.SortKey) ([]matching.RankedCandidate, error)
}

type Matching struct {
	requests   repository.RequestRepository
	candidates repository.CandidateRepository
	cache      MatchCache
	resultTTL  time.Duration
}

func NewMatchingUsecase(requests repository.RequestRepository, candidates repository.CandidateRepository, cache MatchCache, resultTTL time.Duration) *Matching {
	return &Matching{requests: requests, candidates: candidates, cache: cache, resultTTL: resultTTL}
}

// RankMatches is the pure pipeline: filter the supplied pool, score what
// survives against the request, order by the sort key. The pool is whatever
// the caller hands in; nothing is fetched here.
func (u *Matching) RankMatches(req request.Request, pool []candidate.Candidate, criteria matching.Criteria, key matching.SortKey) []matching.RankedCandidate {
	filtered := matching.Filter(pool, criteria)

	ranked := make([]matching.RankedCandidate, 0, len(filtered))
	for _, c := range filtered {
		ranked = append(ranked, matching.RankedCandidate{
			Candidate: c,
			Score:     matching.Score(c, req),
		})
	}

	return matching.Rank(ranked, key)
}

// RankMatchesForRequest loads the request and the candidate pool from the
// persistence layer and delegates to RankMatches, with a cache-aside read of
// the ranked result.
func (u *Matching) RankMatchesForRequest(ctx context.Context, requestID uuid.UUID, criteria matching.Criteria, key matching.SortKey) ([]matching.RankedCandidate, error) {
	if requestID == uuid.Nil {
		return nil, ErrInvalidInput
	}

	cacheKey := rankCacheKey(requestID, criteria, key)
	if u.cache != nil {
		var cached []matching.RankedCandidate
		if ok, err := u.cache.GetJSON(ctx, cacheKey, &cached); err == nil && ok {
			return cached, nil
		}
	}

	req, err := u.requests.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, fmt.Errorf("%w: request %s", ErrNotFound, requestID)
		}
		return nil, fmt.Errorf("%w: request %s: %w", ErrPersistence, requestID, err)
	}

	pool, err := u.candidates.ListByStatus(ctx, criteria.Statuses)
	if err != nil {
		return nil, fmt.Errorf("%w: candidates for request %s: %w", ErrPersistence, requestID, err)
	}

	ranked := u.RankMatches(req, pool, criteria, key)

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, cacheKey, ranked, u.resultTTL)
	}

	return ranked, nil
}
