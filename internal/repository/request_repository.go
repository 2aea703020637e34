package repository

import (
	"context"
	"errors"

	"logistaff/internal/database"
	"logistaff/internal/domain/request"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrRequestNotFound = errors.New("staffing request not found")

type RequestRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (request.Request, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

type PostgresRequestRepository struct {
	db database.DB
}

func NewPostgresRequestRepository(db database.DB) *PostgresRequestRepository {
	return &PostgresRequestRepository{db: db}
}

func (r *PostgresRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (request.Request, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, title, required_skills, urgency, staff_count, start_date,
		        duration, status, created_at, updated_at
		 FROM staffing_requests WHERE id = $1`,
		id,
	)

	var req request.Request
	var urgency, status string
	err := row.Scan(
		&req.ID,
		&req.Title,
		&req.RequiredSkills,
		&urgency,
		&req.StaffCount,
		&req.StartDate,
		&req.Duration,
		&status,
		&req.CreatedAt,
		&req.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return request.Request{}, ErrRequestNotFound
		}
		return request.Request{}, err
	}
	req.Urgency = request.Urgency(urgency)
	req.Status = request.Status(status)
	return req.Normalize(), nil
}

func (r *PostgresRequestRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM staffing_requests WHERE id = $1)`, id)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
