package domain

import "time"

type ShiftAssignment struct {
	EmployeeID         int64   `json:"employeeID"`
	ScheduledStartTime string  `json:"scheduledStartTime"` // HH:MM:SS
	ScheduledEndTime   string  `json:"scheduledEndTime"`   // HH:MM:SS
	StatusID           int64   `json:"statusID"`
	ActualStartTime    *string `json:"actualStartTime"`
	ActualEndTime      *string `json:"actualEndTime"`
	VCI                *bool   `json:"vci"`
	AgreeOnException   bool    `json:"agreeOnException"`
	ExceptionNotes     *string `json:"exceptionNotes"`
	RequiredSkillIDs   []int64 `json:"requiredSkillIDs"`
}

type DaySchedule struct {
	Date   time.Time         `json:"date"`
	Shifts []ShiftAssignment `json:"shifts"`
}

// WeeklyScheduleBatch 是引擎的输入，仅在一次校验/分析调用内有效
type WeeklyScheduleBatch struct {
	Days []DaySchedule `json:"days"`
}

type WeeklySchedule struct {
	ID        int64         `json:"id"`
	Name      string        `json:"name"`
	Days      []DaySchedule `json:"days"`
	CreatedAt time.Time     `json:"createdAt"`
	Version   int32         `json:"-"`
}
