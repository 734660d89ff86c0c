package handler

import (
	"errors"
	"net/http"

	"github.com/sysu-ecnc-dev/weekly-roster/backend/internal/domain"
	"github.com/sysu-ecnc-dev/weekly-roster/backend/internal/roster"
)

// employeeLookup 为引擎准备员工信息（技能、周工时上限）。
// 排班表中出现数据库里不存在的员工时引擎自己会处理，这里不做过滤。
func (h *Handler) employeeLookup() (roster.EmployeeLookup, error) {
	employees, err := h.repository.GetAllEmployees()
	if err != nil {
		return nil, err
	}

	lookup := make(roster.EmployeeLookup, len(employees))
	for _, employee := range employees {
		lookup[employee.ID] = employee
	}
	return lookup, nil
}

func (h *Handler) ValidateWeeklySchedule(w http.ResponseWriter, r *http.Request) {
	var req weeklySchedulePayload

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	batch, err := req.toBatch()
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	lookup, err := h.employeeLookup()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	result := roster.ValidateBatch(batch, lookup)

	if !result.Valid {
		h.failResponse(w, r, "排班校验未通过", map[string]any{
			"validationResult": result,
		})
		return
	}

	h.successResponse(w, r, "排班校验通过", map[string]any{
		"validationResult": result,
	})
}

func (h *Handler) AnalyzeWeeklySchedule(w http.ResponseWriter, r *http.Request) {
	var req weeklySchedulePayload

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	batch, err := req.toBatch()
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	lookup, err := h.employeeLookup()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	analysis := roster.Analyze(batch, lookup)

	h.successResponse(w, r, "排班分析完成", map[string]any{
		"weekSummary": analysis,
	})
}

func (h *Handler) CreateWeeklySchedule(w http.ResponseWriter, r *http.Request) {
	var req weeklySchedulePayload

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Name == "" {
		h.badRequest(w, r, errors.New("排班名称不能为空"))
		return
	}

	batch, err := req.toBatch()
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	lookup, err := h.employeeLookup()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// 先校验，所有违规项一次性返回给客户端，校验不通过则不落库
	result := roster.ValidateBatch(batch, lookup)
	if !result.Valid {
		h.failResponse(w, r, "排班校验未通过，已拒绝保存", map[string]any{
			"validationResult": result,
		})
		return
	}

	schedule := &domain.WeeklySchedule{
		Name: req.Name,
		Days: batch.Days,
	}

	if err := h.repository.InsertWeeklySchedule(schedule); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	analysis := roster.Analyze(batch, lookup)

	// 给主管发送周报邮件，排班已经保存成功，邮件发送失败不影响响应
	mailMessage := domain.MailMessage{
		Type: "weekly_report",
		To:   h.config.Email.Supervisor,
		Data: domain.WeeklyReportMailData{
			ScheduleName:    schedule.Name,
			WeekStart:       analysis.WeekStart.Format("2006-01-02"),
			WeekEnd:         analysis.WeekEnd.Format("2006-01-02"),
			TotalSchedules:  analysis.TotalSchedules,
			UniqueEmployees: analysis.UniqueEmployees,
			TotalHours:      analysis.TotalHours,
			ConflictCount:   len(analysis.Conflicts),
		},
	}
	if err := h.publishMail(mailMessage); err != nil {
		h.logInternalServerError(r, err)
	}

	h.successResponse(w, r, "排班保存成功", map[string]any{
		"schedule":         schedule,
		"weekSummary":      analysis,
		"validationResult": result,
	})
}

func (h *Handler) GetAllWeeklySchedules(w http.ResponseWriter, r *http.Request) {
	schedules, err := h.repository.GetAllWeeklySchedules()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取排班列表成功", schedules)
}

func (h *Handler) GetWeeklySchedule(w http.ResponseWriter, r *http.Request) {
	schedule := r.Context().Value(WeeklyScheduleCtx).(*domain.WeeklySchedule)
	h.successResponse(w, r, "获取排班成功", schedule)
}

func (h *Handler) DeleteWeeklySchedule(w http.ResponseWriter, r *http.Request) {
	schedule := r.Context().Value(WeeklyScheduleCtx).(*domain.WeeklySchedule)

	if err := h.repository.DeleteWeeklySchedule(schedule.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "删除排班成功", nil)
}
