package roster

import (
	"fmt"
	"slices"
	"time"

	"github.com/sysu-ecnc-dev/weekly-roster/backend/internal/domain"
)

// ValidateBatch 对一个周排班批次执行所有校验并收集全部违规项，
// 而不是在第一个错误处停止，保证调用方一次就能拿到完整的问题清单。
// lookup 为 nil 时跳过工时上限和技能覆盖检查。
func ValidateBatch(batch *domain.WeeklyScheduleBatch, lookup EmployeeLookup) *domain.ValidationResult {
	violations := make([]string, 0)

	// 结构性校验：时间格式和班次时长
	for _, day := range batch.Days {
		dateStr := day.Date.Format("2006-01-02")

		for i, shift := range day.Shifts {
			start, startErr := ParseTimeOfDay(shift.ScheduledStartTime)
			if startErr != nil {
				violations = append(violations, fmt.Sprintf(
					"%s 第 %d 个班次（员工 %d）的开始时间格式错误: %q",
					dateStr, i+1, shift.EmployeeID, shift.ScheduledStartTime,
				))
			}

			end, endErr := ParseTimeOfDay(shift.ScheduledEndTime)
			if endErr != nil {
				violations = append(violations, fmt.Sprintf(
					"%s 第 %d 个班次（员工 %d）的结束时间格式错误: %q",
					dateStr, i+1, shift.EmployeeID, shift.ScheduledEndTime,
				))
			}

			if startErr == nil && endErr == nil {
				if _, err := DurationHours(start, end); err != nil {
					violations = append(violations, fmt.Sprintf(
						"%s 第 %d 个班次（员工 %d）的结束时间必须晚于开始时间",
						dateStr, i+1, shift.EmployeeID,
					))
				}
			}
		}
	}

	// 工作周窗口校验
	dates := make([]time.Time, 0, len(batch.Days))
	for _, day := range batch.Days {
		dates = append(dates, day.Date)
	}
	violations = append(violations, ValidateWeekWindow(dates).Violations...)

	// 重复日期校验
	seenDates := make(map[string]bool)
	for _, day := range batch.Days {
		dateStr := day.Date.Format("2006-01-02")
		if seenDates[dateStr] {
			violations = append(violations, fmt.Sprintf("排班中存在重复日期 %s", dateStr))
			continue
		}
		seenDates[dateStr] = true
	}

	// 逐天检查同一个员工的班次时间冲突，跨天的班次不算冲突
	for _, day := range batch.Days {
		dateStr := day.Date.Format("2006-01-02")

		for _, pair := range FindOverlaps(day.Shifts) {
			violations = append(violations, fmt.Sprintf(
				"员工 %d 在 %s 的第 %d 个班次（%s-%s）与第 %d 个班次（%s-%s）时间冲突",
				pair.EmployeeID, dateStr,
				pair.FirstIndex+1, pair.First.ScheduledStartTime, pair.First.ScheduledEndTime,
				pair.SecondIndex+1, pair.Second.ScheduledStartTime, pair.Second.ScheduledEndTime,
			))
		}
	}

	if lookup != nil {
		// 周工时上限校验
		summaries := AggregateHours(batch, lookup)

		employeeIDs := make([]int64, 0, len(summaries))
		for employeeID := range summaries {
			employeeIDs = append(employeeIDs, employeeID)
		}
		slices.Sort(employeeIDs)

		for _, employeeID := range employeeIDs {
			summary := summaries[employeeID]
			if !summary.IsOverLimit {
				continue
			}
			violations = append(violations, fmt.Sprintf(
				"员工 %d 的每周排班总时长 %.1f 小时超出上限 %.1f 小时（超出 %.1f 小时）",
				employeeID, summary.TotalScheduledHours,
				*summary.MaxWeeklyHours, summary.TotalScheduledHours-*summary.MaxWeeklyHours,
			))
		}

		// 技能覆盖校验，员工不在 lookup 中时跳过而不是报错
		for _, day := range batch.Days {
			dateStr := day.Date.Format("2006-01-02")

			for i, shift := range day.Shifts {
				if len(shift.RequiredSkillIDs) == 0 {
					continue
				}

				employee, exists := lookup[shift.EmployeeID]
				if !exists {
					continue
				}

				coverage := ResolveCoverage(shift.RequiredSkillIDs, employee.SkillIDs)
				if !coverage.FullyCovered {
					violations = append(violations, fmt.Sprintf(
						"%s 第 %d 个班次的员工 %d 缺少所需技能 %v",
						dateStr, i+1, shift.EmployeeID, coverage.Missing,
					))
				}
			}
		}
	}

	return &domain.ValidationResult{
		Valid:      len(violations) == 0,
		Violations: violations,
	}
}
