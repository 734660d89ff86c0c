package roster

import (
	"fmt"
	"time"

	"github.com/sysu-ecnc-dev/weekly-roster/backend/internal/domain"
)

// maxWeekSpanDays 一个工作周为连续的 7 个自然日，即最早和最晚日期最多相差 6 天
const maxWeekSpanDays = 6

// ValidateWeekWindow 检查所有排班日期是否落在同一个工作周内，空集合视为合法
func ValidateWeekWindow(dates []time.Time) *domain.ValidationResult {
	violations := make([]string, 0)

	if len(dates) > 0 {
		minDate, maxDate := dates[0], dates[0]
		for _, d := range dates[1:] {
			if d.Before(minDate) {
				minDate = d
			}
			if d.After(maxDate) {
				maxDate = d
			}
		}

		spanDays := int(maxDate.Sub(minDate) / (24 * time.Hour))
		if spanDays > maxWeekSpanDays {
			violations = append(violations, fmt.Sprintf(
				"排班日期从 %s 到 %s 跨度为 %d 天，超出一个工作周（7 天）的范围",
				minDate.Format("2006-01-02"), maxDate.Format("2006-01-02"), spanDays+1,
			))
		}
	}

	return &domain.ValidationResult{
		Valid:      len(violations) == 0,
		Violations: violations,
	}
}
