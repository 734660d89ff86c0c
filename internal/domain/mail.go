package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type CreateUserMailData struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type ResetPasswordMailData struct {
	FullName   string `json:"fullName"`
	OTP        string `json:"otp"`
	Expiration int    `json:"expiration"`
}

type WeeklyReportMailData struct {
	ScheduleName    string  `json:"scheduleName"`
	WeekStart       string  `json:"weekStart"`
	WeekEnd         string  `json:"weekEnd"`
	TotalSchedules  int     `json:"totalSchedules"`
	UniqueEmployees int     `json:"uniqueEmployees"`
	TotalHours      float64 `json:"totalHours"`
	ConflictCount   int     `json:"conflictCount"`
}
