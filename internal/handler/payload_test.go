package handler

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBatchDayFormat(t *testing.T) {
	raw := `{
		"name": "第 36 周排班",
		"weekly_schedule": [
			{
				"date_of_day": "2025-09-01",
				"schedules": [
					{
						"emp_info_id": 1,
						"scheduled_start_time": "09:00:00",
						"scheduled_end_time": "17:00:00",
						"status_id": 2,
						"required_skills": [1, 3]
					},
					{
						"emp_info_id": 2,
						"scheduled_start_time": "12:00:00",
						"scheduled_end_time": "20:00:00",
						"status_id": 2,
						"agree_on_exception": true
					}
				]
			},
			{
				"date_of_day": "2025-09-02",
				"schedules": []
			}
		]
	}`

	var payload weeklySchedulePayload
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))

	batch, err := payload.toBatch()
	require.NoError(t, err)
	require.Len(t, batch.Days, 2)

	assert.Equal(t, time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), batch.Days[0].Date)
	require.Len(t, batch.Days[0].Shifts, 2)

	first := batch.Days[0].Shifts[0]
	assert.Equal(t, int64(1), first.EmployeeID)
	assert.Equal(t, "09:00:00", first.ScheduledStartTime)
	assert.Equal(t, "17:00:00", first.ScheduledEndTime)
	assert.Equal(t, int64(2), first.StatusID)
	assert.Equal(t, []int64{1, 3}, first.RequiredSkillIDs)
	assert.False(t, first.AgreeOnException)

	assert.True(t, batch.Days[0].Shifts[1].AgreeOnException)
	assert.Empty(t, batch.Days[1].Shifts)
}

func TestToBatchLegacyFlatFormat(t *testing.T) {
	raw := `{
		"date_of_day": "2025-09-03",
		"emp_info_id": 7,
		"scheduled_start_time": "08:30:00",
		"scheduled_end_time": "12:00:00",
		"status_id": 1,
		"vci": true,
		"exception_notes": "临时替班"
	}`

	var payload weeklySchedulePayload
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))

	batch, err := payload.toBatch()
	require.NoError(t, err)
	require.Len(t, batch.Days, 1)
	require.Len(t, batch.Days[0].Shifts, 1)

	shift := batch.Days[0].Shifts[0]
	assert.Equal(t, int64(7), shift.EmployeeID)
	assert.Equal(t, "08:30:00", shift.ScheduledStartTime)
	require.NotNil(t, shift.VCI)
	assert.True(t, *shift.VCI)
	require.NotNil(t, shift.ExceptionNotes)
	assert.Equal(t, "临时替班", *shift.ExceptionNotes)
}

func TestToBatchEmptyPayload(t *testing.T) {
	var payload weeklySchedulePayload
	require.NoError(t, json.Unmarshal([]byte(`{}`), &payload))

	batch, err := payload.toBatch()
	require.NoError(t, err)
	assert.Empty(t, batch.Days)
}

func TestToBatchInvalidDate(t *testing.T) {
	raw := `{
		"weekly_schedule": [
			{"date_of_day": "09/01/2025", "schedules": []}
		]
	}`

	var payload weeklySchedulePayload
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))

	_, err := payload.toBatch()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")
}

func TestToBatchMalformedTimePassesThrough(t *testing.T) {
	// 时间格式错误不在转换层拦截，由校验引擎作为违规项报告
	raw := `{
		"weekly_schedule": [
			{
				"date_of_day": "2025-09-01",
				"schedules": [
					{"emp_info_id": 1, "scheduled_start_time": "9am", "scheduled_end_time": "17:00:00", "status_id": 1}
				]
			}
		]
	}`

	var payload weeklySchedulePayload
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))

	batch, err := payload.toBatch()
	require.NoError(t, err)
	assert.Equal(t, "9am", batch.Days[0].Shifts[0].ScheduledStartTime)
}
