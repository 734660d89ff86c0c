package handler

import (
	"fmt"
	"time"

	"github.com/sysu-ecnc-dev/weekly-roster/backend/internal/domain"
)

// 排班数据由外部系统（前端排班表导出、历史数据导入脚本）提交，
// 字段采用 snake_case 命名，且同时存在两种形态：
//  1. 按天组织的 weekly_schedule 数组
//  2. 旧版的单班次扁平格式（date_of_day 直接出现在顶层）
// 这里统一转换成 domain.WeeklyScheduleBatch 后再交给引擎处理。
// 注意班次的时间字符串原样保留，格式错误由引擎作为违规项报告，而不是在这里拒绝。

type shiftPayload struct {
	EmpInfoID          int64   `json:"emp_info_id"`
	ScheduledStartTime string  `json:"scheduled_start_time"`
	ScheduledEndTime   string  `json:"scheduled_end_time"`
	StatusID           int64   `json:"status_id"`
	ActualStartTime    *string `json:"actual_start_time"`
	ActualEndTime      *string `json:"actual_end_time"`
	VCI                *bool   `json:"vci"`
	AgreeOnException   *bool   `json:"agree_on_exception"`
	ExceptionNotes     *string `json:"exception_notes"`
	RequiredSkills     []int64 `json:"required_skills"`
}

type dayPayload struct {
	DateOfDay string         `json:"date_of_day"`
	Schedules []shiftPayload `json:"schedules"`
}

type weeklySchedulePayload struct {
	Name           string       `json:"name"`
	WeeklySchedule []dayPayload `json:"weekly_schedule"`

	// 旧版扁平格式的字段，仅当 weekly_schedule 为空时生效
	dayPayload
	shiftPayload
}

func (p *shiftPayload) toAssignment() domain.ShiftAssignment {
	assignment := domain.ShiftAssignment{
		EmployeeID:         p.EmpInfoID,
		ScheduledStartTime: p.ScheduledStartTime,
		ScheduledEndTime:   p.ScheduledEndTime,
		StatusID:           p.StatusID,
		ActualStartTime:    p.ActualStartTime,
		ActualEndTime:      p.ActualEndTime,
		VCI:                p.VCI,
		ExceptionNotes:     p.ExceptionNotes,
		RequiredSkillIDs:   p.RequiredSkills,
	}
	if p.AgreeOnException != nil {
		assignment.AgreeOnException = *p.AgreeOnException
	}
	return assignment
}

// toBatch 将提交的 payload 规范化为引擎输入。
// 日期必须是合法的 YYYY-MM-DD，否则整个请求无法定位到具体的某一天，直接报错。
func (p *weeklySchedulePayload) toBatch() (*domain.WeeklyScheduleBatch, error) {
	batch := &domain.WeeklyScheduleBatch{}

	if len(p.WeeklySchedule) > 0 {
		for _, day := range p.WeeklySchedule {
			date, err := time.Parse("2006-01-02", day.DateOfDay)
			if err != nil {
				return nil, fmt.Errorf("日期 %q 不是合法的 YYYY-MM-DD 格式", day.DateOfDay)
			}

			shifts := make([]domain.ShiftAssignment, 0, len(day.Schedules))
			for _, shift := range day.Schedules {
				shifts = append(shifts, shift.toAssignment())
			}

			batch.Days = append(batch.Days, domain.DaySchedule{
				Date:   date,
				Shifts: shifts,
			})
		}
		return batch, nil
	}

	// 旧版扁平格式：顶层直接带一条班次记录
	if p.DateOfDay != "" {
		date, err := time.Parse("2006-01-02", p.DateOfDay)
		if err != nil {
			return nil, fmt.Errorf("日期 %q 不是合法的 YYYY-MM-DD 格式", p.DateOfDay)
		}

		batch.Days = append(batch.Days, domain.DaySchedule{
			Date:   date,
			Shifts: []domain.ShiftAssignment{p.shiftPayload.toAssignment()},
		})
	}

	return batch, nil
}
