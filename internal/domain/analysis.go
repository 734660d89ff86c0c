package domain

import "time"

type ValidationResult struct {
	Valid      bool     `json:"valid"`
	Violations []string `json:"violations"`
}

type SkillCoverage struct {
	Required     []int64 `json:"required"`
	Available    []int64 `json:"available"`
	Missing      []int64 `json:"missing"`
	FullyCovered bool    `json:"fullyCovered"`
}

type HoursSummary struct {
	EmployeeID          int64    `json:"employeeID"`
	TotalScheduledHours float64  `json:"totalScheduledHours"`
	MaxWeeklyHours      *float64 `json:"maxWeeklyHours"` // 为 nil 时表示工时上限未知
	HoursRemaining      *float64 `json:"hoursRemaining"`
	IsOverLimit         bool     `json:"isOverLimit"`
}

type ConflictKind string

const (
	ConflictInvalidTime ConflictKind = "invalid_time"
	ConflictOverlap     ConflictKind = "overlap"
)

// Conflict 是结构化的冲突描述，方便前端在表格中高亮对应的班次
type Conflict struct {
	Kind             ConflictKind `json:"kind"`
	Date             time.Time    `json:"date"`
	EmployeeID       int64        `json:"employeeID"`
	FirstShiftIndex  int          `json:"firstShiftIndex"`
	SecondShiftIndex *int         `json:"secondShiftIndex"` // 仅当 Kind 为 overlap 时存在
	Message          string       `json:"message"`
}

type WeeklyAnalysis struct {
	WeekStart       time.Time                `json:"weekStart"`
	WeekEnd         time.Time                `json:"weekEnd"`
	TotalSchedules  int                      `json:"totalSchedules"`
	UniqueEmployees int                      `json:"uniqueEmployees"`
	TotalHours      float64                  `json:"totalHours"`
	SkillCoverage   map[int64]*SkillCoverage `json:"skillCoverage"`
	HoursSummary    map[int64]*HoursSummary  `json:"hoursSummary"`
	Conflicts       []Conflict               `json:"conflicts"`
}
