package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sysu-ecnc-dev/weekly-roster/backend/internal/domain"
)

func (h *Handler) GetAllShiftStatuses(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.repository.GetAllShiftStatuses()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取班次状态列表成功", statuses)
}

func (h *Handler) CreateShiftStatus(w http.ResponseWriter, r *http.Request) {
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

	status := &domain.ShiftStatus{
		Name: req.Name,
	}

	if err := h.repository.CreateShiftStatus(status); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch {
			case pgErr.ConstraintName == "shift_statuses_name_key":
				h.badRequest(w, r, errors.New("状态名称已存在"))
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "班次状态创建成功", status)
}

func (h *Handler) GetShiftStatus(w http.ResponseWriter, r *http.Request) {
	status := r.Context().Value(ShiftStatusCtx).(*domain.ShiftStatus)
	h.successResponse(w, r, "获取班次状态成功", status)
}

func (h *Handler) UpdateShiftStatus(w http.ResponseWriter, r *http.Request) {
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

	status := r.Context().Value(ShiftStatusCtx).(*domain.ShiftStatus)

	if req.Name != nil {
		status.Name = *req.Name
	}

	if err := h.repository.UpdateShiftStatus(status); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch {
			case pgErr.ConstraintName == "shift_statuses_name_key":
				h.badRequest(w, r, errors.New("状态名称已存在"))
			default:
				h.internalServerError(w, r, err)
			}
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "更新班次状态失败，请重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "更新班次状态成功", status)
}

func (h *Handler) DeleteShiftStatus(w http.ResponseWriter, r *http.Request) {
	status := r.Context().Value(ShiftStatusCtx).(*domain.ShiftStatus)

	if err := h.repository.DeleteShiftStatus(status.ID); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch {
			case pgErr.ConstraintName == "weekly_schedule_shifts_status_id_fkey":
				h.badRequest(w, r, errors.New("状态已被排班使用，无法删除"))
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "删除班次状态成功", nil)
}
