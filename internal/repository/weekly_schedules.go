package repository

import (
	"context"
	"time"

	"github.com/sysu-ecnc-dev/weekly-roster/backend/internal/domain"
)

func (r *Repository) InsertWeeklySchedule(schedule *domain.WeeklySchedule) error {
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
		INSERT INTO weekly_schedules (name)
		VALUES ($1)
		RETURNING id, created_at, version
	`
	if err := tx.QueryRowContext(ctx, query, schedule.Name).Scan(&schedule.ID, &schedule.CreatedAt, &schedule.Version); err != nil {
		return err
	}

	for _, day := range schedule.Days {
		query := `
			INSERT INTO weekly_schedule_days (weekly_schedule_id, date_of_day)
			VALUES ($1, $2)
			RETURNING id
		`
		var dayID int64
		if err := tx.QueryRowContext(ctx, query, schedule.ID, day.Date).Scan(&dayID); err != nil {
			return err
		}

		for _, shift := range day.Shifts {
			query := `
				INSERT INTO weekly_schedule_shifts (
					weekly_schedule_day_id,
					employee_id,
					scheduled_start_time,
					scheduled_end_time,
					status_id,
					actual_start_time,
					actual_end_time,
					vci,
					agree_on_exception,
					exception_notes
				) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
				RETURNING id
			`
			params := []any{
				dayID,
				shift.EmployeeID,
				shift.ScheduledStartTime,
				shift.ScheduledEndTime,
				shift.StatusID,
				shift.ActualStartTime,
				shift.ActualEndTime,
				shift.VCI,
				shift.AgreeOnException,
				shift.ExceptionNotes,
			}
			var shiftID int64
			if err := tx.QueryRowContext(ctx, query, params...).Scan(&shiftID); err != nil {
				return err
			}

			for _, skillID := range shift.RequiredSkillIDs {
				query := `
					INSERT INTO weekly_schedule_shift_skills (weekly_schedule_shift_id, skill_id)
					VALUES ($1, $2)
				`
				if _, err := tx.ExecContext(ctx, query, shiftID, skillID); err != nil {
					return err
				}
			}
		}
	}

	return tx.Commit()
}

func (r *Repository) GetWeeklyScheduleByID(id int64) (*domain.WeeklySchedule, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT name, created_at, version
		FROM weekly_schedules
		WHERE id = $1
	`

	schedule := &domain.WeeklySchedule{
		ID: id,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&schedule.Name, &schedule.CreatedAt, &schedule.Version); err != nil {
		return nil, err
	}

	// 先加载所有的天，再把班次挂到对应的天上
	query = `
		SELECT id, date_of_day
		FROM weekly_schedule_days
		WHERE weekly_schedule_id = $1
		ORDER BY date_of_day
	`

	rows, err := r.dbpool.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dayIndexMap := make(map[int64]int)
	schedule.Days = make([]domain.DaySchedule, 0)
	for rows.Next() {
		var dayID int64
		day := domain.DaySchedule{
			Shifts: make([]domain.ShiftAssignment, 0),
		}
		if err := rows.Scan(&dayID, &day.Date); err != nil {
			return nil, err
		}
		dayIndexMap[dayID] = len(schedule.Days)
		schedule.Days = append(schedule.Days, day)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	query = `
		SELECT
			wss.id,
			wss.weekly_schedule_day_id,
			wss.employee_id,
			wss.scheduled_start_time,
			wss.scheduled_end_time,
			wss.status_id,
			wss.actual_start_time,
			wss.actual_end_time,
			wss.vci,
			wss.agree_on_exception,
			wss.exception_notes
		FROM weekly_schedule_shifts wss
		JOIN weekly_schedule_days wsd ON wss.weekly_schedule_day_id = wsd.id
		WHERE wsd.weekly_schedule_id = $1
		ORDER BY wss.id
	`

	shiftRows, err := r.dbpool.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer shiftRows.Close()

	shiftIndexMap := make(map[int64][2]int) // shiftID -> (day index, shift index)
	for shiftRows.Next() {
		var shiftID, dayID int64
		shift := domain.ShiftAssignment{
			RequiredSkillIDs: make([]int64, 0),
		}
		dst := []any{
			&shiftID,
			&dayID,
			&shift.EmployeeID,
			&shift.ScheduledStartTime,
			&shift.ScheduledEndTime,
			&shift.StatusID,
			&shift.ActualStartTime,
			&shift.ActualEndTime,
			&shift.VCI,
			&shift.AgreeOnException,
			&shift.ExceptionNotes,
		}
		if err := shiftRows.Scan(dst...); err != nil {
			return nil, err
		}

		dayIndex, exists := dayIndexMap[dayID]
		if !exists {
			continue
		}
		shiftIndexMap[shiftID] = [2]int{dayIndex, len(schedule.Days[dayIndex].Shifts)}
		schedule.Days[dayIndex].Shifts = append(schedule.Days[dayIndex].Shifts, shift)
	}

	if err := shiftRows.Err(); err != nil {
		return nil, err
	}

	query = `
		SELECT wsss.weekly_schedule_shift_id, wsss.skill_id
		FROM weekly_schedule_shift_skills wsss
		JOIN weekly_schedule_shifts wss ON wsss.weekly_schedule_shift_id = wss.id
		JOIN weekly_schedule_days wsd ON wss.weekly_schedule_day_id = wsd.id
		WHERE wsd.weekly_schedule_id = $1
		ORDER BY wsss.skill_id
	`

	skillRows, err := r.dbpool.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer skillRows.Close()

	for skillRows.Next() {
		var shiftID, skillID int64
		if err := skillRows.Scan(&shiftID, &skillID); err != nil {
			return nil, err
		}

		index, exists := shiftIndexMap[shiftID]
		if !exists {
			continue
		}
		shift := &schedule.Days[index[0]].Shifts[index[1]]
		shift.RequiredSkillIDs = append(shift.RequiredSkillIDs, skillID)
	}

	if err := skillRows.Err(); err != nil {
		return nil, err
	}

	return schedule, nil
}

func (r *Repository) GetAllWeeklySchedules() ([]*domain.WeeklySchedule, error) {
	query := `
		SELECT id, name, created_at, version FROM weekly_schedules ORDER BY created_at DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// 列表场景只返回元信息，具体的排班内容通过按 ID 查询获取
	schedules := make([]*domain.WeeklySchedule, 0)
	for rows.Next() {
		schedule := &domain.WeeklySchedule{}
		if err := rows.Scan(&schedule.ID, &schedule.Name, &schedule.CreatedAt, &schedule.Version); err != nil {
			return nil, err
		}
		schedules = append(schedules, schedule)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return schedules, nil
}

func (r *Repository) DeleteWeeklySchedule(id int64) error {
	query := `
		DELETE FROM weekly_schedules WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}
