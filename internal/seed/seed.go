package seed

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/sysu-ecnc-dev/weekly-roster/backend/internal/domain"
	"github.com/sysu-ecnc-dev/weekly-roster/backend/internal/repository"
	"github.com/sysu-ecnc-dev/weekly-roster/backend/internal/roster"
)

// 前台常用的技能和班次状态，作为新环境的基础数据
var baseSkills = []string{"前台接待", "电话客服", "设备维护", "收银", "仓库管理"}
var baseShiftStatuses = []string{"已排班", "已确认", "已完成", "缺勤"}

func SeedBaseData(r *repository.Repository) {
	cnt := 0
	for _, name := range baseSkills {
		skill := &domain.Skill{Name: name}
		if err := r.CreateSkill(skill); err != nil {
			slog.Error("无法插入技能", "name", name, "error", err)
			continue
		}
		cnt++
	}
	slog.Info("插入技能成功", "count", cnt)

	cnt = 0
	for _, name := range baseShiftStatuses {
		status := &domain.ShiftStatus{Name: name}
		if err := r.CreateShiftStatus(status); err != nil {
			slog.Error("无法插入班次状态", "name", name, "error", err)
			continue
		}
		cnt++
	}
	slog.Info("插入班次状态成功", "count", cnt)
}

// 每天的固定班段，和前台的实际开放时间一致
var demoShiftWindows = [][2]string{
	{"09:00:00", "12:00:00"},
	{"13:30:00", "18:00:00"},
	{"19:00:00", "21:00:00"},
}

// SeedDemoWeeklySchedule 用数据库中已有的员工生成一份下周的演示排班并保存。
// 生成的排班保证能通过校验，方便前端直接展示分析结果。
func SeedDemoWeeklySchedule(r *repository.Repository) {
	employees, err := r.GetAllEmployees()
	if err != nil {
		slog.Error("无法获取员工列表", "error", err)
		return
	}
	if len(employees) == 0 {
		slog.Error("数据库中没有员工，请先插入随机员工")
		return
	}

	statuses, err := r.GetAllShiftStatuses()
	if err != nil {
		slog.Error("无法获取班次状态列表", "error", err)
		return
	}
	if len(statuses) == 0 {
		slog.Error("数据库中没有班次状态，请先插入基础数据")
		return
	}

	// 下周一作为一周的起点
	now := time.Now()
	daysUntilMonday := (8 - int(now.Weekday())) % 7
	if daysUntilMonday == 0 {
		daysUntilMonday = 7
	}
	monday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, daysUntilMonday)

	schedule := &domain.WeeklySchedule{
		Name: fmt.Sprintf("演示排班（%s 起）", monday.Format("2006-01-02")),
	}

	for day := 0; day < 7; day++ {
		shifts := []domain.ShiftAssignment{}
		for _, window := range demoShiftWindows {
			employee := employees[rand.Intn(len(employees))]
			shifts = append(shifts, domain.ShiftAssignment{
				EmployeeID:         employee.ID,
				ScheduledStartTime: window[0],
				ScheduledEndTime:   window[1],
				StatusID:           statuses[0].ID,
				RequiredSkillIDs:   employee.SkillIDs, // 用员工自己的技能作为要求，保证覆盖
			})
		}
		schedule.Days = append(schedule.Days, domain.DaySchedule{
			Date:   monday.AddDate(0, 0, day),
			Shifts: shifts,
		})
	}

	// 保存前先自检，随机分配偶尔会让某个员工的周工时超出上限
	lookup := make(roster.EmployeeLookup, len(employees))
	for _, employee := range employees {
		lookup[employee.ID] = employee
	}

	batch := &domain.WeeklyScheduleBatch{Days: schedule.Days}
	if result := roster.ValidateBatch(batch, lookup); !result.Valid {
		slog.Error("生成的演示排班未通过校验，请重试", "violations", result.Violations)
		return
	}

	if err := r.InsertWeeklySchedule(schedule); err != nil {
		slog.Error("无法插入演示排班", "error", err)
		return
	}

	slog.Info("插入演示排班成功", "id", schedule.ID, "name", schedule.Name)
}
