package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sysu-ecnc-dev/weekly-roster/backend/internal/domain"
	"github.com/sysu-ecnc-dev/weekly-roster/backend/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

func (h *Handler) GetAllEmployeeInfo(w http.ResponseWriter, r *http.Request) {
	employees, err := h.repository.GetAllEmployees()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取员工列表成功", employees)
}

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username       string   `json:"username" validate:"required"`
		FullName       string   `json:"fullName" validate:"required"`
		Email          string   `json:"email" validate:"required,email"`
		Role           string   `json:"role" validate:"required,oneof=普通员工 排班主管 系统管理员"`
		MaxWeeklyHours *float64 `json:"maxWeeklyHours" validate:"omitempty,gt=0"`
		SkillIDs       []int64  `json:"skillIds"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// 先检查邮箱是否被占用，尽早给出明确的提示
	isExists, err := h.repository.CheckEmailIfExists(req.Email)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if isExists {
		h.errorResponse(w, r, "邮箱已被占用")
		return
	}

	// 生成随机密码
	password := utils.GenerateRandomPassword(h.config.NewEmployee.PasswordLength)

	// 对密码进行哈希
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// 插入员工到数据库中
	employee := &domain.Employee{
		Username:       req.Username,
		PasswordHash:   string(hashedPassword),
		FullName:       req.FullName,
		Email:          req.Email,
		Role:           domain.Role(req.Role),
		MaxWeeklyHours: req.MaxWeeklyHours,
		SkillIDs:       req.SkillIDs,
	}

	if err := h.repository.CreateEmployee(employee); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch {
			case pgErr.ConstraintName == "employees_username_key":
				h.badRequest(w, r, errors.New("用户名已存在"))
			case pgErr.ConstraintName == "employees_email_key":
				h.badRequest(w, r, errors.New("邮箱已存在"))
			case pgErr.ConstraintName == "employee_skills_skill_id_fkey":
				h.badRequest(w, r, errors.New("技能不存在"))
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// 准备邮件
	mailMessage := domain.MailMessage{
		Type: "create_user",
		To:   employee.Email,
		Data: domain.CreateUserMailData{
			FullName: req.FullName,
			Username: req.Username,
			Password: password,
		},
	}

	if err := h.publishMail(mailMessage); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "员工创建成功", employee)
}

func (h *Handler) GetEmployeeInfo(w http.ResponseWriter, r *http.Request) {
	employee := r.Context().Value(EmployeeInfoCtx).(*domain.Employee)
	h.successResponse(w, r, "获取员工信息成功", employee)
}

func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FullName       *string  `json:"fullName"`
		Email          *string  `json:"email" validate:"omitempty,email"`
		Role           *string  `json:"role" validate:"omitempty,oneof=普通员工 排班主管 系统管理员"`
		IsActive       *bool    `json:"isActive"`
		MaxWeeklyHours *float64 `json:"maxWeeklyHours" validate:"omitempty,gt=0"`
		SkillIDs       []int64  `json:"skillIds"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	employee := r.Context().Value(EmployeeInfoCtx).(*domain.Employee)

	if req.FullName != nil {
		employee.FullName = *req.FullName
	}
	if req.Email != nil {
		employee.Email = *req.Email
	}
	if req.Role != nil {
		employee.Role = domain.Role(*req.Role)
	}
	if req.IsActive != nil {
		employee.IsActive = *req.IsActive
	}
	if req.MaxWeeklyHours != nil {
		employee.MaxWeeklyHours = req.MaxWeeklyHours
	}
	if req.SkillIDs != nil {
		employee.SkillIDs = req.SkillIDs
	}

	if err := h.repository.UpdateEmployee(employee); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch {
			case pgErr.ConstraintName == "employees_email_key":
				h.badRequest(w, r, errors.New("邮箱已存在"))
			case pgErr.ConstraintName == "employees_username_key":
				h.badRequest(w, r, errors.New("用户名已存在"))
			case pgErr.ConstraintName == "employee_skills_skill_id_fkey":
				h.badRequest(w, r, errors.New("技能不存在"))
			default:
				h.internalServerError(w, r, err)
			}
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "更新员工信息失败，请重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "更新员工信息成功", employee)
}

func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	employee := r.Context().Value(EmployeeInfoCtx).(*domain.Employee)

	if err := h.repository.DeleteEmployee(employee.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "删除员工成功", nil)
}
