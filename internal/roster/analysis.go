package roster

import (
	"fmt"

	"github.com/sysu-ecnc-dev/weekly-roster/backend/internal/domain"
)

// Analyze 对一个周排班批次生成逐员工的覆盖和工时统计，供审批界面展示。
// 即使批次无法通过 ValidateBatch，分析也总是尽力返回结果而不失败，
// 方便调用方在修正违规之前预览排班效果。
func Analyze(batch *domain.WeeklyScheduleBatch, lookup EmployeeLookup) *domain.WeeklyAnalysis {
	analysis := &domain.WeeklyAnalysis{
		SkillCoverage: make(map[int64]*domain.SkillCoverage),
		HoursSummary:  AggregateHours(batch, lookup),
		Conflicts:     make([]domain.Conflict, 0),
	}

	// 周起止日期取批次中最早和最晚的日期
	for _, day := range batch.Days {
		if analysis.WeekStart.IsZero() || day.Date.Before(analysis.WeekStart) {
			analysis.WeekStart = day.Date
		}
		if analysis.WeekEnd.IsZero() || day.Date.After(analysis.WeekEnd) {
			analysis.WeekEnd = day.Date
		}
	}

	uniqueEmployees := make(map[int64]bool)
	requiredSkills := make(map[int64][]int64)

	for _, day := range batch.Days {
		analysis.TotalSchedules += len(day.Shifts)

		for _, shift := range day.Shifts {
			uniqueEmployees[shift.EmployeeID] = true
			requiredSkills[shift.EmployeeID] = append(requiredSkills[shift.EmployeeID], shift.RequiredSkillIDs...)
			analysis.TotalHours += shiftHours(shift)
		}
	}
	analysis.UniqueEmployees = len(uniqueEmployees)

	// 按员工聚合整个批次内所有班次的技能需求再做覆盖解析，
	// 没有任何技能需求的员工视为完全覆盖
	for employeeID := range uniqueEmployees {
		available := []int64{}
		if employee, exists := lookup[employeeID]; exists {
			available = employee.SkillIDs
		}
		analysis.SkillCoverage[employeeID] = ResolveCoverage(requiredSkills[employeeID], available)
	}

	analysis.Conflicts = collectConflicts(batch)

	return analysis
}

// collectConflicts 将结构性违规和班次冲突整理成结构化描述
func collectConflicts(batch *domain.WeeklyScheduleBatch) []domain.Conflict {
	conflicts := make([]domain.Conflict, 0)

	for _, day := range batch.Days {
		for i, shift := range day.Shifts {
			if valid, message := checkShiftTime(shift); !valid {
				conflicts = append(conflicts, domain.Conflict{
					Kind:            domain.ConflictInvalidTime,
					Date:            day.Date,
					EmployeeID:      shift.EmployeeID,
					FirstShiftIndex: i,
					Message:         message,
				})
			}
		}

		for _, pair := range FindOverlaps(day.Shifts) {
			secondIndex := pair.SecondIndex
			conflicts = append(conflicts, domain.Conflict{
				Kind:             domain.ConflictOverlap,
				Date:             day.Date,
				EmployeeID:       pair.EmployeeID,
				FirstShiftIndex:  pair.FirstIndex,
				SecondShiftIndex: &secondIndex,
				Message: fmt.Sprintf(
					"班次 %s-%s 与班次 %s-%s 时间冲突",
					pair.First.ScheduledStartTime, pair.First.ScheduledEndTime,
					pair.Second.ScheduledStartTime, pair.Second.ScheduledEndTime,
				),
			})
		}
	}

	return conflicts
}

func checkShiftTime(shift domain.ShiftAssignment) (bool, string) {
	start, err := ParseTimeOfDay(shift.ScheduledStartTime)
	if err != nil {
		return false, fmt.Sprintf("开始时间格式错误: %q", shift.ScheduledStartTime)
	}

	end, err := ParseTimeOfDay(shift.ScheduledEndTime)
	if err != nil {
		return false, fmt.Sprintf("结束时间格式错误: %q", shift.ScheduledEndTime)
	}

	if _, err := DurationHours(start, end); err != nil {
		return false, "结束时间必须晚于开始时间"
	}

	return true, ""
}
