package repository

import (
	"context"
	"time"

	"github.com/sysu-ecnc-dev/weekly-roster/backend/internal/domain"
)

func (r *Repository) GetEmployeeByID(id int64) (*domain.Employee, error) {
	query := `
		SELECT username, password_hash, full_name, email, role, is_active, max_weekly_hours, created_at, version
		FROM employees WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	employee := &domain.Employee{
		ID: id,
	}

	dst := []any{&employee.Username, &employee.PasswordHash, &employee.FullName, &employee.Email, &employee.Role, &employee.IsActive, &employee.MaxWeeklyHours, &employee.CreatedAt, &employee.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	if err := r.loadEmployeeSkills(ctx, employee); err != nil {
		return nil, err
	}

	return employee, nil
}

func (r *Repository) GetEmployeeByUsername(username string) (*domain.Employee, error) {
	query := `
		SELECT id, password_hash, full_name, email, role, is_active, max_weekly_hours, created_at, version
		FROM employees WHERE username = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	employee := &domain.Employee{
		Username: username,
	}

	dst := []any{&employee.ID, &employee.PasswordHash, &employee.FullName, &employee.Email, &employee.Role, &employee.IsActive, &employee.MaxWeeklyHours, &employee.CreatedAt, &employee.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, username).Scan(dst...); err != nil {
		return nil, err
	}

	if err := r.loadEmployeeSkills(ctx, employee); err != nil {
		return nil, err
	}

	return employee, nil
}

func (r *Repository) loadEmployeeSkills(ctx context.Context, employee *domain.Employee) error {
	query := `
		SELECT skill_id FROM employee_skills WHERE employee_id = $1 ORDER BY skill_id
	`

	rows, err := r.dbpool.QueryContext(ctx, query, employee.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	employee.SkillIDs = make([]int64, 0)
	for rows.Next() {
		var skillID int64
		if err := rows.Scan(&skillID); err != nil {
			return err
		}
		employee.SkillIDs = append(employee.SkillIDs, skillID)
	}

	return rows.Err()
}

func (r *Repository) GetAllEmployees() ([]*domain.Employee, error) {
	query := `
		SELECT id, username, password_hash, full_name, email, role, is_active, max_weekly_hours, created_at, version FROM employees
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]*domain.Employee, 0)
	employeeMap := make(map[int64]*domain.Employee)
	for rows.Next() {
		employee := &domain.Employee{SkillIDs: make([]int64, 0)}
		dst := []any{&employee.ID, &employee.Username, &employee.PasswordHash, &employee.FullName, &employee.Email, &employee.Role, &employee.IsActive, &employee.MaxWeeklyHours, &employee.CreatedAt, &employee.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		employees = append(employees, employee)
		employeeMap[employee.ID] = employee
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	// 一次性加载所有员工的技能，避免对每个员工都查询一遍
	skillQuery := `
		SELECT employee_id, skill_id FROM employee_skills ORDER BY skill_id
	`

	skillRows, err := r.dbpool.QueryContext(ctx, skillQuery)
	if err != nil {
		return nil, err
	}
	defer skillRows.Close()

	for skillRows.Next() {
		var employeeID, skillID int64
		if err := skillRows.Scan(&employeeID, &skillID); err != nil {
			return nil, err
		}
		if employee, exists := employeeMap[employeeID]; exists {
			employee.SkillIDs = append(employee.SkillIDs, skillID)
		}
	}

	if err := skillRows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

func (r *Repository) CreateEmployee(employee *domain.Employee) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO employees (username, password_hash, full_name, email, role, max_weekly_hours)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, is_active, created_at, version
	`

	args := []any{employee.Username, employee.PasswordHash, employee.FullName, employee.Email, employee.Role, employee.MaxWeeklyHours}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&employee.ID, &employee.IsActive, &employee.CreatedAt, &employee.Version); err != nil {
		return err
	}

	for _, skillID := range employee.SkillIDs {
		query := `
			INSERT INTO employee_skills (employee_id, skill_id) VALUES ($1, $2)
		`
		if _, err := tx.ExecContext(ctx, query, employee.ID, skillID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *Repository) UpdateEmployee(employee *domain.Employee) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		UPDATE employees
		SET
			password_hash = $1,
			email = $2,
			role = $3,
			is_active = $4,
			max_weekly_hours = $5,
			version = version + 1
		WHERE id = $6 AND version = $7
		RETURNING username, full_name, created_at, version
	`

	args := []any{employee.PasswordHash, employee.Email, employee.Role, employee.IsActive, employee.MaxWeeklyHours, employee.ID, employee.Version}
	dst := []any{&employee.Username, &employee.FullName, &employee.CreatedAt, &employee.Version}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(dst...); err != nil {
		return err
	}

	// 技能集合整体替换，先删后插
	if _, err := tx.ExecContext(ctx, `DELETE FROM employee_skills WHERE employee_id = $1`, employee.ID); err != nil {
		return err
	}

	for _, skillID := range employee.SkillIDs {
		query := `
			INSERT INTO employee_skills (employee_id, skill_id) VALUES ($1, $2)
		`
		if _, err := tx.ExecContext(ctx, query, employee.ID, skillID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *Repository) DeleteEmployee(id int64) error {
	query := `
		DELETE FROM employees WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) CheckEmailIfExists(email string) (bool, error) {
	isExists := false

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT EXISTS (SELECT 1 FROM employees WHERE email = $1)
	`
	if err := r.dbpool.QueryRowContext(ctx, query, email).Scan(&isExists); err != nil {
		return false, err
	}

	return isExists, nil
}
