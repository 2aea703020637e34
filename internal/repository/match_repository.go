package repository

import (
	"context"
	"errors"
	"time"

	"logistaff/internal/database"
	"logistaff/internal/domain/match"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrMatchNotFound = errors.New("match not found")

type MatchRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (match.Match, error)
	FindByPair(ctx context.Context, requestID, candidateID uuid.UUID) (match.Match, error)
	ListByRequest(ctx context.Context, requestID uuid.UUID) ([]match.Match, error)
	Create(ctx context.Context, m match.Match) (match.Match, error)
	// UpdateStatus persists a transition as a compare-and-swap on the stored
	// status. It reports whether a row actually changed, so a caller that
	// lost a race can re-read and decide between an idempotent no-op and an
	// invalid transition.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to match.Status, reason *string) (bool, error)
}

type PostgresMatchRepository struct {
	db database.DB
}

func NewPostgresMatchRepository(db database.DB) *PostgresMatchRepository {
	return &PostgresMatchRepository{db: db}
}

const matchColumns = `id, request_id, candidate_id, score, status, rejection_reason, created_at, updated_at`

func (r *PostgresMatchRepository) FindByID(ctx context.Context, id uuid.UUID) (match.Match, error) {
	row := r.db.QueryRow(ctx, `SELECT `+matchColumns+` FROM matches WHERE id = $1`, id)
	return scanMatch(row)
}

func (r *PostgresMatchRepository) FindByPair(ctx context.Context, requestID, candidateID uuid.UUID) (match.Match, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+matchColumns+` FROM matches WHERE request_id = $1 AND candidate_id = $2`,
		requestID, candidateID,
	)
	return scanMatch(row)
}

func (r *PostgresMatchRepository) ListByRequest(ctx context.Context, requestID uuid.UUID) ([]match.Match, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+matchColumns+` FROM matches WHERE request_id = $1 ORDER BY score DESC, id ASC`,
		requestID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]match.Match, 0)
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a match, keeping (request_id, candidate_id) unique. When the
// pair already exists the stored record is returned untouched.
func (r *PostgresMatchRepository) Create(ctx context.Context, m match.Match) (match.Match, error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	now := time.Now().UTC()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now

	_, err := r.db.Exec(ctx,
		`INSERT INTO matches (id, request_id, candidate_id, score, status, rejection_reason, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		 ON CONFLICT (request_id, candidate_id) DO NOTHING`,
		m.ID, m.RequestID, m.CandidateID, m.Score, string(m.Status), m.RejectionReason, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return match.Match{}, err
	}

	return r.FindByPair(ctx, m.RequestID, m.CandidateID)
}

func (r *PostgresMatchRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to match.Status, reason *string) (bool, error) {
	affected, err := r.db.Exec(ctx,
		`UPDATE matches
		 SET status = $1, rejection_reason = $2, updated_at = $3
		 WHERE id = $4 AND status = $5`,
		string(to), reason, time.Now().UTC(), id, string(from),
	)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func scanMatch(row scanner) (match.Match, error) {
	var m match.Match
	var status string
	err := row.Scan(
		&m.ID,
		&m.RequestID,
		&m.CandidateID,
		&m.Score,
		&status,
		&m.RejectionReason,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return match.Match{}, ErrMatchNotFound
		}
		return match.Match{}, err
	}
	m.Status = match.Status(status)
	return m, nil
}
