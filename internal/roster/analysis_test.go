package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/weekly-roster/backend/internal/domain"
)

func TestAnalyzeEmptyBatch(t *testing.T) {
	batch := &domain.WeeklyScheduleBatch{Days: []domain.DaySchedule{}}

	analysis := Analyze(batch, EmployeeLookup{})

	assert.Equal(t, 0, analysis.TotalSchedules)
	assert.Equal(t, 0, analysis.UniqueEmployees)
	assert.Equal(t, 0.0, analysis.TotalHours)
	assert.Empty(t, analysis.SkillCoverage)
	assert.Empty(t, analysis.HoursSummary)
	assert.Empty(t, analysis.Conflicts)
}

func TestAnalyzeWeekBounds(t *testing.T) {
	batch := &domain.WeeklyScheduleBatch{
		Days: []domain.DaySchedule{
			{Date: date(2025, time.January, 8), Shifts: []domain.ShiftAssignment{shift(1, "08:00:00", "12:00:00")}},
			{Date: date(2025, time.January, 6), Shifts: []domain.ShiftAssignment{shift(2, "08:00:00", "12:00:00")}},
			{Date: date(2025, time.January, 10), Shifts: []domain.ShiftAssignment{shift(1, "13:00:00", "17:00:00")}},
		},
	}

	analysis := Analyze(batch, EmployeeLookup{})

	assert.Equal(t, date(2025, time.January, 6), analysis.WeekStart)
	assert.Equal(t, date(2025, time.January, 10), analysis.WeekEnd)
	assert.Equal(t, 3, analysis.TotalSchedules)
	assert.Equal(t, 2, analysis.UniqueEmployees)
	assert.Equal(t, 12.0, analysis.TotalHours)
}

func TestAnalyzeSingleDayWeekBounds(t *testing.T) {
	batch := &domain.WeeklyScheduleBatch{
		Days: []domain.DaySchedule{
			{Date: date(2025, time.January, 6), Shifts: []domain.ShiftAssignment{shift(1, "08:00:00", "12:00:00")}},
		},
	}

	analysis := Analyze(batch, EmployeeLookup{})

	assert.Equal(t, analysis.WeekStart, analysis.WeekEnd)
}

func TestAnalyzeHoursSummaryOverLimit(t *testing.T) {
	// 员工周工时上限 40 小时，五个 9 小时的班次一共 45 小时
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

	analysis := Analyze(batch, lookup)

	summary, exists := analysis.HoursSummary[1]
	require.True(t, exists)
	assert.Equal(t, 45.0, summary.TotalScheduledHours)
	require.NotNil(t, summary.MaxWeeklyHours)
	assert.Equal(t, 40.0, *summary.MaxWeeklyHours)
	require.NotNil(t, summary.HoursRemaining)
	assert.Equal(t, -5.0, *summary.HoursRemaining)
	assert.True(t, summary.IsOverLimit)
}

func TestAnalyzeUnknownEmployeeHasUnboundedCap(t *testing.T) {
	batch := &domain.WeeklyScheduleBatch{
		Days: []domain.DaySchedule{
			{Date: date(2025, time.January, 6), Shifts: []domain.ShiftAssignment{shift(42, "00:00:01", "23:59:59")}},
		},
	}

	analysis := Analyze(batch, EmployeeLookup{})

	summary, exists := analysis.HoursSummary[42]
	require.True(t, exists)
	assert.Nil(t, summary.MaxWeeklyHours)
	assert.Nil(t, summary.HoursRemaining)
	assert.False(t, summary.IsOverLimit)
}

func TestAnalyzeNonPositiveDurationCountsAsZero(t *testing.T) {
	batch := &domain.WeeklyScheduleBatch{
		Days: []domain.DaySchedule{
			{
				Date: date(2025, time.January, 6),
				Shifts: []domain.ShiftAssignment{
					shift(1, "08:00:00", "12:00:00"),
					shift(1, "18:00:00", "13:00:00"),
				},
			},
		},
	}

	analysis := Analyze(batch, EmployeeLookup{})

	assert.Equal(t, 4.0, analysis.TotalHours)
	assert.Equal(t, 4.0, analysis.HoursSummary[1].TotalScheduledHours)
	// 时长非正的班次按 0 计入工时，但会作为结构化冲突报告
	require.Len(t, analysis.Conflicts, 1)
	assert.Equal(t, domain.ConflictInvalidTime, analysis.Conflicts[0].Kind)
}

func TestAnalyzeSkillCoverageAggregatedPerEmployee(t *testing.T) {
	lookup := EmployeeLookup{
		1: {ID: 1, SkillIDs: []int64{1, 2}},
	}

	morning := shift(1, "08:00:00", "12:00:00")
	morning.RequiredSkillIDs = []int64{1}
	evening := shift(1, "13:00:00", "17:00:00")
	evening.RequiredSkillIDs = []int64{2, 3}

	batch := &domain.WeeklyScheduleBatch{
		Days: []domain.DaySchedule{
			{Date: date(2025, time.January, 6), Shifts: []domain.ShiftAssignment{morning}},
			{Date: date(2025, time.January, 7), Shifts: []domain.ShiftAssignment{evening}},
		},
	}

	analysis := Analyze(batch, lookup)

	coverage, exists := analysis.SkillCoverage[1]
	require.True(t, exists)
	assert.Equal(t, []int64{1, 2, 3}, coverage.Required)
	assert.Equal(t, []int64{3}, coverage.Missing)
	assert.False(t, coverage.FullyCovered)
}

func TestAnalyzeEmployeeWithoutRequirementsFullyCovered(t *testing.T) {
	batch := &domain.WeeklyScheduleBatch{
		Days: []domain.DaySchedule{
			{Date: date(2025, time.January, 6), Shifts: []domain.ShiftAssignment{shift(7, "08:00:00", "12:00:00")}},
		},
	}

	analysis := Analyze(batch, EmployeeLookup{})

	coverage, exists := analysis.SkillCoverage[7]
	require.True(t, exists)
	assert.True(t, coverage.FullyCovered)
}

func TestAnalyzeReportsOverlapConflicts(t *testing.T) {
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

	analysis := Analyze(batch, EmployeeLookup{})

	require.Len(t, analysis.Conflicts, 1)
	conflict := analysis.Conflicts[0]
	assert.Equal(t, domain.ConflictOverlap, conflict.Kind)
	assert.Equal(t, int64(1), conflict.EmployeeID)
	assert.Equal(t, 0, conflict.FirstShiftIndex)
	require.NotNil(t, conflict.SecondShiftIndex)
	assert.Equal(t, 1, *conflict.SecondShiftIndex)
}

func TestAnalyzeIsIdempotent(t *testing.T) {
	lookup := EmployeeLookup{
		1: {ID: 1, SkillIDs: []int64{1}, MaxWeeklyHours: floatPtr(40)},
	}

	s := shift(1, "08:00:00", "12:00:00")
	s.RequiredSkillIDs = []int64{1, 2}

	batch := &domain.WeeklyScheduleBatch{
		Days: []domain.DaySchedule{
			{Date: date(2025, time.January, 6), Shifts: []domain.ShiftAssignment{s}},
		},
	}

	first := Analyze(batch, lookup)
	second := Analyze(batch, lookup)

	assert.Equal(t, first, second)
}
