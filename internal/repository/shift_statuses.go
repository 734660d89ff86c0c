package repository

import (
	"context"
	"time"

	"github.com/sysu-ecnc-dev/weekly-roster/backend/internal/domain"
)

func (r *Repository) GetAllShiftStatuses() ([]*domain.ShiftStatus, error) {
	query := `
		SELECT id, name, created_at, version FROM shift_statuses
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	statuses := make([]*domain.ShiftStatus, 0)
	for rows.Next() {
		status := &domain.ShiftStatus{}
		if err := rows.Scan(&status.ID, &status.Name, &status.CreatedAt, &status.Version); err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return statuses, nil
}

func (r *Repository) GetShiftStatusByID(id int64) (*domain.ShiftStatus, error) {
	query := `
		SELECT name, created_at, version FROM shift_statuses WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	status := &domain.ShiftStatus{
		ID: id,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&status.Name, &status.CreatedAt, &status.Version); err != nil {
		return nil, err
	}

	return status, nil
}

func (r *Repository) CreateShiftStatus(status *domain.ShiftStatus) error {
	query := `
		INSERT INTO shift_statuses (name) VALUES ($1)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, status.Name).Scan(&status.ID, &status.CreatedAt, &status.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateShiftStatus(status *domain.ShiftStatus) error {
	query := `
		UPDATE shift_statuses
		SET
			name = $1,
			version = version + 1
		WHERE id = $2 AND version = $3
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, status.Name, status.ID, status.Version).Scan(&status.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteShiftStatus(id int64) error {
	query := `
		DELETE FROM shift_statuses WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}
