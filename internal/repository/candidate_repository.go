package repository

import (
	"context"
	"errors"

	"logistaff/internal/database"
	"logistaff/internal/domain/candidate"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrCandidateNotFound = errors.New("candidate not found")

type CandidateRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (candidate.Candidate, error)
	ListByStatus(ctx context.Context, statuses []candidate.Status) ([]candidate.Candidate, error)
}

type PostgresCandidateRepository struct {
	db database.DB
}

func NewPostgresCandidateRepository(db database.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

const candidateColumns = `id, name, location, skills, hourly_rate, availability,
	 rating, completed_jobs, status, available_from, created_at, updated_at`

func (r *PostgresCandidateRepository) FindByID(ctx context.Context, id uuid.UUID) (candidate.Candidate, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+candidateColumns+` FROM candidates WHERE id = $1`,
		id,
	)

	c, err := scanCandidate(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return candidate.Candidate{}, ErrCandidateNotFound
		}
		return candidate.Candidate{}, err
	}
	return c, nil
}

// ListByStatus returns candidates in any of the given statuses; an empty
// status list returns the whole pool.
func (r *PostgresCandidateRepository) ListByStatus(ctx context.Context, statuses []candidate.Status) ([]candidate.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates ORDER BY id ASC`
	args := []any{}
	if len(statuses) > 0 {
		raw := make([]string, 0, len(statuses))
		for _, s := range statuses {
			raw = append(raw, string(s))
		}
		query = `SELECT ` + candidateColumns + ` FROM candidates WHERE status = ANY($1) ORDER BY id ASC`
		args = append(args, raw)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]candidate.Candidate, 0)
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

// scanCandidate is the single mapping point between the stored row and the
// typed entity; nothing above the repository sees raw columns.
func scanCandidate(row scanner) (candidate.Candidate, error) {
	var c candidate.Candidate
	var availability, status string
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Location,
		&c.Skills,
		&c.HourlyRate,
		&availability,
		&c.Rating,
		&c.CompletedJobs,
		&status,
		&c.AvailableFrom,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return candidate.Candidate{}, err
	}
	c.Availability = candidate.Availability(availability)
	c.Status = candidate.Status(status)
	return c.Normalize(), nil
}
