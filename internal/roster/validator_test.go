package roster

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/weekly-roster/backend/internal/domain"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func shift(employeeID int64, start, end string) domain.ShiftAssignment {
	return domain.ShiftAssignment{
		EmployeeID:         employeeID,
		ScheduledStartTime: start,
		ScheduledEndTime:   end,
		StatusID:           1,
	}
}

func floatPtr(f float64) *float64 {
	return &f
}

func TestValidateBatchEmptyBatchIsValid(t *testing.T) {
	batch := &domain.WeeklyScheduleBatch{Days: []domain.DaySchedule{}}

	result := ValidateBatch(batch, nil)

	assert.True(t, result.Valid)
	assert.Empty(t, result.Violations)
}

func TestValidateBatchDetectsOverlap(t *testing.T) {
	// 同一个员工在同一天有 08:00-12:00 和 11:00-15:00 两个班次
	batch := &domain.WeeklyScheduleBatch{
		Days: []domain.DaySchedule{
			{
				Date: date(2025, time.January, 6),
				Shifts: []domain.ShiftAssignment{
					shift(1, "08:00:00", "12:00:00"),
					shift(1, "11:00:00", "15:00:00"),
				},
			},
		},
	}

	result := ValidateBatch(batch, nil)

	require.False(t, result.Valid)
	require.Len(t, result.Violations, 1)
	assert.Contains(t, result.Violations[0], "冲突")
}

func TestValidateBatchAllowsBoundaryTouch(t *testing.T) {
	batch := &domain.WeeklyScheduleBatch{
		Days: []domain.DaySchedule{
			{
				Date: date(2025, time.January, 6),
				Shifts: []domain.ShiftAssignment{
					shift(1, "08:00:00", "12:00:00"),
					shift(1, "12:00:00", "16:00:00"),
				},
			},
		},
	}

	result := ValidateBatch(batch, nil)

	assert.True(t, result.Valid)
}

func TestValidateBatchAllowsSameTimeDifferentEmployees(t *testing.T) {
	batch := &domain.WeeklyScheduleBatch{
		Days: []domain.DaySchedule{
			{
				Date: date(2025, time.January, 6),
				Shifts: []domain.ShiftAssignment{
					shift(1, "08:00:00", "12:00:00"),
					shift(2, "08:00:00", "12:00:00"),
				},
			},
		},
	}

	result := ValidateBatch(batch, nil)

	assert.True(t, result.Valid)
}

func TestValidateBatchAllowsOverlapAcrossDays(t *testing.T) {
	// 同一个员工连续两天上同一时段的班不算冲突
	batch := &domain.WeeklyScheduleBatch{
		Days: []domain.DaySchedule{
			{
				Date:   date(2025, time.January, 6),
				Shifts: []domain.ShiftAssignment{shift(1, "08:00:00", "12:00:00")},
			},
			{
				Date:   date(2025, time.January, 7),
				Shifts: []domain.ShiftAssignment{shift(1, "08:00:00", "12:00:00")},
			},
		},
	}

	result := ValidateBatch(batch, nil)

	assert.True(t, result.Valid)
}

func TestValidateBatchDetectsWeekWindowViolation(t *testing.T) {
	// 周一到下周二一共 8 天
	batch := &domain.WeeklyScheduleBatch{
		Days: []domain.DaySchedule{
			{Date: date(2025, time.January, 6), Shifts: []domain.ShiftAssignment{shift(1, "08:00:00", "12:00:00")}},
			{Date: date(2025, time.January, 14), Shifts: []domain.ShiftAssignment{shift(1, "08:00:00", "12:00:00")}},
		},
	}

	result := ValidateBatch(batch, nil)

	require.False(t, result.Valid)
	require.Len(t, result.Violations, 1)
	assert.Contains(t, result.Violations[0], "工作周")
}

func TestValidateBatchDetectsDuplicateDates(t *testing.T) {
	batch := &domain.WeeklyScheduleBatch{
		Days: []domain.DaySchedule{
			{Date: date(2025, time.January, 6), Shifts: []domain.ShiftAssignment{shift(1, "08:00:00", "12:00:00")}},
			{Date: date(2025, time.January, 6), Shifts: []domain.ShiftAssignment{shift(2, "13:00:00", "17:00:00")}},
		},
	}

	result := ValidateBatch(batch, nil)

	require.False(t, result.Valid)
	require.Len(t, result.Violations, 1)
	assert.Contains(t, result.Violations[0], "重复日期")
}

func TestValidateBatchDetectsMalformedTimes(t *testing.T) {
	batch := &domain.WeeklyScheduleBatch{
		Days: []domain.DaySchedule{
			{
				Date: date(2025, time.January, 6),
				Shifts: []domain.ShiftAssignment{
					shift(1, "8:00", "12:00:00"),
					shift(1, "13:00:00", "11:00:00"),
				},
			},
		},
	}

	result := ValidateBatch(batch, nil)

	require.False(t, result.Valid)
	require.Len(t, result.Violations, 2)
	assert.Contains(t, result.Violations[0], "开始时间格式错误")
	assert.Contains(t, result.Violations[1], "结束时间必须晚于开始时间")
}

func TestValidateBatchDetectsHoursOverLimit(t *testing.T) {
	lookup := EmployeeLookup{
		1: {ID: 1, MaxWeeklyHours: floatPtr(40)},
	}

	days := make([]domain.DaySchedule, 0, 5)
	for i := 0; i < 5; i++ {
		days = append(days, domain.DaySchedule{
			Date:   date(2025, time.January, 6+i),
			Shifts: []domain.ShiftAssignment{shift(1, "08:00:00", "17:00:00")},
		})
	}
	batch := &domain.WeeklyScheduleBatch{Days: days}

	result := ValidateBatch(batch, lookup)

	require.False(t, result.Valid)
	require.Len(t, result.Violations, 1)
	assert.Contains(t, result.Violations[0], "员工 1")
	assert.Contains(t, result.Violations[0], "超出")
	assert.Contains(t, result.Violations[0], "5.0")
}

func TestValidateBatchUnknownEmployeeNeverOverLimit(t *testing.T) {
	batch := &domain.WeeklyScheduleBatch{
		Days: []domain.DaySchedule{
			{Date: date(2025, time.January, 6), Shifts: []domain.ShiftAssignment{shift(99, "00:00:01", "23:59:59")}},
		},
	}

	result := ValidateBatch(batch, EmployeeLookup{})

	assert.True(t, result.Valid)
}

func TestValidateBatchDetectsSkillGap(t *testing.T) {
	lookup := EmployeeLookup{
		1: {ID: 1, SkillIDs: []int64{1}},
	}

	s := shift(1, "08:00:00", "12:00:00")
	s.RequiredSkillIDs = []int64{1, 2}

	batch := &domain.WeeklyScheduleBatch{
		Days: []domain.DaySchedule{
			{Date: date(2025, time.January, 6), Shifts: []domain.ShiftAssignment{s}},
		},
	}

	result := ValidateBatch(batch, lookup)

	require.False(t, result.Valid)
	require.Len(t, result.Violations, 1)
	assert.Contains(t, result.Violations[0], "缺少所需技能")
	assert.Contains(t, result.Violations[0], "[2]")
}

func TestValidateBatchAccumulatesAllViolations(t *testing.T) {
	// 两个班次冲突 + 跨周 + 超出工时上限，三类违规应该同时被报告
	lookup := EmployeeLookup{
		1: {ID: 1, MaxWeeklyHours: floatPtr(10)},
	}

	batch := &domain.WeeklyScheduleBatch{
		Days: []domain.DaySchedule{
			{
				Date: date(2025, time.January, 6),
				Shifts: []domain.ShiftAssignment{
					shift(1, "08:00:00", "16:00:00"),
					shift(1, "15:00:00", "20:00:00"),
				},
			},
			{
				Date:   date(2025, time.January, 14),
				Shifts: []domain.ShiftAssignment{shift(1, "08:00:00", "12:00:00")},
			},
		},
	}

	result := ValidateBatch(batch, lookup)

	require.False(t, result.Valid)
	assert.GreaterOrEqual(t, len(result.Violations), 3)

	joined := strings.Join(result.Violations, "\n")
	assert.Contains(t, joined, "冲突")
	assert.Contains(t, joined, "工作周")
	assert.Contains(t, joined, "超出")
}

func TestValidateBatchDoesNotMutateInput(t *testing.T) {
	batch := &domain.WeeklyScheduleBatch{
		Days: []domain.DaySchedule{
			{
				Date: date(2025, time.January, 6),
				Shifts: []domain.ShiftAssignment{
					shift(1, "08:00:00", "12:00:00"),
					shift(1, "11:00:00", "15:00:00"),
				},
			},
		},
	}

	first := ValidateBatch(batch, nil)
	second := ValidateBatch(batch, nil)

	assert.Equal(t, first, second)
}
