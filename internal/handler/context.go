package handler

type ContextKey string

var (
	RoleCtxKey        ContextKey = "role"
	SubCtxKey         ContextKey = "sub"
	MyInfoCtx         ContextKey = "myInfo"
	EmployeeInfoCtx   ContextKey = "employeeInfo"
	SkillCtx          ContextKey = "skill"
	ShiftStatusCtx    ContextKey = "shiftStatus"
	WeeklyScheduleCtx ContextKey = "weeklySchedule"
)
