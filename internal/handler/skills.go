package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sysu-ecnc-dev/weekly-roster/backend/internal/domain"
)

func (h *Handler) GetAllSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := h.repository.GetAllSkills()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取技能列表成功", skills)
}

func (h *Handler) CreateSkill(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	skill := &domain.Skill{
		Name: req.Name,
	}

	if err := h.repository.CreateSkill(skill); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch {
			case pgErr.ConstraintName == "skills_name_key":
				h.badRequest(w, r, errors.New("技能名称已存在"))
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "技能创建成功", skill)
}

func (h *Handler) GetSkill(w http.ResponseWriter, r *http.Request) {
	skill := r.Context().Value(SkillCtx).(*domain.Skill)
	h.successResponse(w, r, "获取技能信息成功", skill)
}

func (h *Handler) UpdateSkill(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name *string `json:"name"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	skill := r.Context().Value(SkillCtx).(*domain.Skill)

	if req.Name != nil {
		skill.Name = *req.Name
	}

	if err := h.repository.UpdateSkill(skill); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch {
			case pgErr.ConstraintName == "skills_name_key":
				h.badRequest(w, r, errors.New("技能名称已存在"))
			default:
				h.internalServerError(w, r, err)
			}
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "更新技能失败，请重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "更新技能成功", skill)
}

func (h *Handler) DeleteSkill(w http.ResponseWriter, r *http.Request) {
	skill := r.Context().Value(SkillCtx).(*domain.Skill)

	if err := h.repository.DeleteSkill(skill.ID); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch {
			// 仍被员工或班次引用的技能不允许删除
			case pgErr.ConstraintName == "employee_skills_skill_id_fkey":
				h.badRequest(w, r, errors.New("技能已被员工使用，无法删除"))
			case pgErr.ConstraintName == "weekly_schedule_shift_skills_skill_id_fkey":
				h.badRequest(w, r, errors.New("技能已被排班使用，无法删除"))
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "删除技能成功", nil)
}
