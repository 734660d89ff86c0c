package roster

import (
	"github.com/sysu-ecnc-dev/weekly-roster/backend/internal/domain"
)

// OverlapPair 表示同一天内同一个员工的两个时间上冲突的班次
type OverlapPair struct {
	EmployeeID  int64
	FirstIndex  int // 班次在当天班次列表中的下标
	SecondIndex int
	First       domain.ShiftAssignment
	Second      domain.ShiftAssignment
}

// FindOverlaps 对同一天内属于同一个员工的班次做两两比较，返回所有冲突的组合。
// 不同员工的班次不存在冲突，时间无法解析的班次由结构性校验单独报告，这里跳过。
func FindOverlaps(shifts []domain.ShiftAssignment) []OverlapPair {
	pairs := make([]OverlapPair, 0)

	for i := 0; i < len(shifts); i++ {
		iStart, err := ParseTimeOfDay(shifts[i].ScheduledStartTime)
		if err != nil {
			continue
		}
		iEnd, err := ParseTimeOfDay(shifts[i].ScheduledEndTime)
		if err != nil {
			continue
		}

		for j := i + 1; j < len(shifts); j++ {
			if shifts[j].EmployeeID != shifts[i].EmployeeID {
				continue
			}

			jStart, err := ParseTimeOfDay(shifts[j].ScheduledStartTime)
			if err != nil {
				continue
			}
			jEnd, err := ParseTimeOfDay(shifts[j].ScheduledEndTime)
			if err != nil {
				continue
			}

			if Overlaps(iStart, iEnd, jStart, jEnd) {
				pairs = append(pairs, OverlapPair{
					EmployeeID:  shifts[i].EmployeeID,
					FirstIndex:  i,
					SecondIndex: j,
					First:       shifts[i],
					Second:      shifts[j],
				})
			}
		}
	}

	return pairs
}
