package domain

import (
	"time"
)

type Role string

const (
	RoleStaff      Role = "普通员工"
	RoleSupervisor Role = "排班主管"
	RoleAdmin      Role = "系统管理员"
)

type Employee struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	PasswordHash   string    `json:"-"`
	FullName       string    `json:"fullName"`
	Email          string    `json:"email"`
	Role           Role      `json:"role"`
	IsActive       bool      `json:"isActive"`
	MaxWeeklyHours *float64  `json:"maxWeeklyHours"` // 为 nil 时表示没有登记周工时上限
	SkillIDs       []int64   `json:"skillIDs"`
	CreatedAt      time.Time `json:"createdAt"`
	Version        int32     `json:"-"`
}
