package handler

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"logistaff/internal/delivery/http/dto"
	"logistaff/internal/delivery/http/middleware"
	"logistaff/internal/domain/candidate"
	"logistaff/internal/domain/match"
	"logistaff/internal/domain/matching"
	"logistaff/internal/pkg/response"
	"logistaff/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MatchHandler struct {
	matchingUC usecase.MatchingUsecase
	decisionUC usecase.DecisionUsecase
}

func NewMatchHandler(matchingUC usecase.MatchingUsecase, decisionUC usecase.DecisionUsecase) *MatchHandler {
	return &MatchHandler{matchingUC: matchingUC, decisionUC: decisionUC}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	requests := r.Group("/requests")
	requests.Get("/:request_id/matches", h.RankMatches)
	requests.Post("/:request_id/candidates/:candidate_id/shortlist", h.Shortlist)

	matches := r.Group("/matches")
	matches.Post("/:match_id/decision", h.ApplyDecision)
}

func (h *MatchHandler) RankMatches(c fiber.Ctx) error {
	requestID, err := uuid.Parse(c.Params("request_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request id", nil, err)
	}

	criteria, err := criteriaFromQuery(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	}

	sortKey, ok := matching.ParseSortKey(c.Query("sort"))
	if !ok {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid sort key", nil, nil)
	}

	ranked, err := h.matchingUC.RankMatchesForRequest(c.Context(), requestID, criteria, sortKey)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]dto.RankedCandidateResponse, 0, len(ranked))
	for _, rc := range ranked {
		out = append(out, dto.RankedCandidateResponse{
			CandidateID:   rc.Candidate.ID,
			Name:          rc.Candidate.Name,
			Location:      rc.Candidate.Location,
			Skills:        rc.Candidate.Skills,
			HourlyRate:    rc.Candidate.HourlyRate,
			Availability:  string(rc.Candidate.Availability),
			Rating:        rc.Candidate.Rating,
			CompletedJobs: rc.Candidate.CompletedJobs,
			Status:        string(rc.Candidate.Status),
			MatchScore:    rc.Score,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *MatchHandler) Shortlist(c fiber.Ctx) error {
	requestID, err := uuid.Parse(c.Params("request_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request id", nil, err)
	}
	candidateID, err := uuid.Parse(c.Params("candidate_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid candidate id", nil, err)
	}

	m, err := h.decisionUC.Shortlist(c.Context(), requestID, candidateID)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, matchToDTO(m))
}

func (h *MatchHandler) ApplyDecision(c fiber.Ctx) error {
	matchID, err := uuid.Parse(c.Params("match_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid match id", nil, err)
	}

	var req dto.DecisionRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	action, ok := usecase.ParseAction(req.Action)
	if !ok {
		return middleware.NewAppError(fiber.StatusBadRequest, "Unknown action", nil, nil)
	}

	m, err := h.decisionUC.ApplyDecision(c.Context(), matchID, action, req.Reason)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, matchToDTO(m))
}

func matchToDTO(m match.Match) dto.MatchResponse {
	return dto.MatchResponse{
		ID:              m.ID,
		RequestID:       m.RequestID,
		CandidateID:     m.CandidateID,
		Score:           m.Score,
		Status:          string(m.Status),
		RejectionReason: m.RejectionReason,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func criteriaFromQuery(c fiber.Ctx) (matching.Criteria, error) {
	criteria := matching.Criteria{
		Keyword:  c.Query("keyword"),
		Location: c.Query("location"),
		Skills:   parseListQuery(c.Query("skills")),
	}

	switch strings.ToLower(strings.TrimSpace(c.Query("skill_mode"))) {
	case "", "any":
		criteria.SkillMode = matching.SkillMatchAny
	case "all":
		criteria.SkillMode = matching.SkillMatchAll
	default:
		return matching.Criteria{}, errors.New("invalid skill_mode")
	}

	var err error
	if criteria.RateMin, err = parseFloatQuery(c.Query("rate_min")); err != nil {
		return matching.Criteria{}, errors.New("invalid rate_min")
	}
	if criteria.RateMax, err = parseFloatQuery(c.Query("rate_max")); err != nil {
		return matching.Criteria{}, errors.New("invalid rate_max")
	}
	if criteria.StartDate, err = parseDateQuery(c.Query("start_date")); err != nil {
		return matching.Criteria{}, errors.New("invalid start_date")
	}
	if criteria.EndDate, err = parseDateQuery(c.Query("end_date")); err != nil {
		return matching.Criteria{}, errors.New("invalid end_date")
	}

	for _, raw := range parseListQuery(c.Query("statuses")) {
		criteria.Statuses = append(criteria.Statuses, candidate.Status(raw))
	}

	return criteria, nil
}

func parseListQuery(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

func parseFloatQuery(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func parseDateQuery(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func mapUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return middleware.NewAppError(fiber.StatusConflict, "Invalid match transition", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrPersistence):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "Storage unavailable, retry later", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
