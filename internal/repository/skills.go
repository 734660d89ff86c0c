package repository

import (
	"context"
	"time"

	"github.com/sysu-ecnc-dev/weekly-roster/backend/internal/domain"
)

func (r *Repository) GetAllSkills() ([]*domain.Skill, error) {
	query := `
		SELECT id, name, created_at, version FROM skills
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	skills := make([]*domain.Skill, 0)
	for rows.Next() {
		skill := &domain.Skill{}
		if err := rows.Scan(&skill.ID, &skill.Name, &skill.CreatedAt, &skill.Version); err != nil {
			return nil, err
		}
		skills = append(skills, skill)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return skills, nil
}

func (r *Repository) GetSkillByID(id int64) (*domain.Skill, error) {
	query := `
		SELECT name, created_at, version FROM skills WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	skill := &domain.Skill{
		ID: id,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&skill.Name, &skill.CreatedAt, &skill.Version); err != nil {
		return nil, err
	}

	return skill, nil
}

func (r *Repository) CreateSkill(skill *domain.Skill) error {
	query := `
		INSERT INTO skills (name) VALUES ($1)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, skill.Name).Scan(&skill.ID, &skill.CreatedAt, &skill.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateSkill(skill *domain.Skill) error {
	query := `
		UPDATE skills
		SET
			name = $1,
			version = version + 1
		WHERE id = $2 AND version = $3
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, skill.Name, skill.ID, skill.Version).Scan(&skill.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteSkill(id int64) error {
	query := `
		DELETE FROM skills WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}
