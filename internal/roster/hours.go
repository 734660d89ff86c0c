package roster

import (
	"github.com/sysu-ecnc-dev/weekly-roster/backend/internal/domain"
)

// EmployeeLookup 是调用方提供的只读员工信息快照，引擎不会修改它
type EmployeeLookup map[int64]*domain.Employee

// AggregateHours 汇总整个批次中每个员工的排班总时长并和周工时上限比较。
// 时长非正或时间无法解析的班次按 0 计入，不中断整个批次的汇总，
// 这类班次由结构性校验单独报告。员工不在 lookup 中时视为没有工时上限。
func AggregateHours(batch *domain.WeeklyScheduleBatch, lookup EmployeeLookup) map[int64]*domain.HoursSummary {
	summaries := make(map[int64]*domain.HoursSummary)

	for _, day := range batch.Days {
		for _, shift := range day.Shifts {
			summary, exists := summaries[shift.EmployeeID]
			if !exists {
				summary = &domain.HoursSummary{EmployeeID: shift.EmployeeID}
				summaries[shift.EmployeeID] = summary
			}

			summary.TotalScheduledHours += shiftHours(shift)
		}
	}

	for employeeID, summary := range summaries {
		employee, exists := lookup[employeeID]
		if !exists || employee.MaxWeeklyHours == nil {
			continue
		}

		maxHours := *employee.MaxWeeklyHours
		remaining := maxHours - summary.TotalScheduledHours

		summary.MaxWeeklyHours = &maxHours
		summary.HoursRemaining = &remaining
		summary.IsOverLimit = summary.TotalScheduledHours > maxHours
	}

	return summaries
}

func shiftHours(shift domain.ShiftAssignment) float64 {
	start, err := ParseTimeOfDay(shift.ScheduledStartTime)
	if err != nil {
		return 0
	}
	end, err := ParseTimeOfDay(shift.ScheduledEndTime)
	if err != nil {
		return 0
	}

	hours, err := DurationHours(start, end)
	if err != nil {
		return 0
	}
	return hours
}
