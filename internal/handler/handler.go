package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sysu-ecnc-dev/weekly-roster/backend/internal/config"
	"github.com/sysu-ecnc-dev/weekly-roster/backend/internal/domain"
	"github.com/sysu-ecnc-dev/weekly-roster/backend/internal/repository"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	zh := zh.New()
	uni := ut.New(zh, zh)
	trans, _ := uni.GetTranslator("zh")
	if err := zh_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// 认证相关
	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// 以下 API 必须要在登录后才允许调用
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Route("/my-info", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetMyInfo)
			r.Patch("/password", h.UpdateMyPassword)
		})

		r.Route("/employees", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/", h.CreateEmployee)
			r.Get("/", h.GetAllEmployeeInfo) // 排班界面需要展示所有员工的信息
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.employeeInfo)
				r.Get("/", h.GetEmployeeInfo)
				r.With(h.preventOperateInitialAdmin).With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Patch("/", h.UpdateEmployee)
				r.With(h.preventOperateInitialAdmin).With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeleteEmployee)
			})
		})

		r.Route("/skills", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleSupervisor, domain.RoleAdmin})).Post("/", h.CreateSkill)
			r.Get("/", h.GetAllSkills)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.skill)
				r.Get("/", h.GetSkill)
				r.With(h.RequiredRole([]domain.Role{domain.RoleSupervisor, domain.RoleAdmin})).Patch("/", h.UpdateSkill)
				r.With(h.RequiredRole([]domain.Role{domain.RoleSupervisor, domain.RoleAdmin})).Delete("/", h.DeleteSkill)
			})
		})

		r.Route("/shift-statuses", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleSupervisor, domain.RoleAdmin})).Post("/", h.CreateShiftStatus)
			r.Get("/", h.GetAllShiftStatuses)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.shiftStatus)
				r.Get("/", h.GetShiftStatus)
				r.With(h.RequiredRole([]domain.Role{domain.RoleSupervisor, domain.RoleAdmin})).Patch("/", h.UpdateShiftStatus)
				r.With(h.RequiredRole([]domain.Role{domain.RoleSupervisor, domain.RoleAdmin})).Delete("/", h.DeleteShiftStatus)
			})
		})

		r.Route("/weekly-schedules", func(r chi.Router) {
			// 校验和分析是纯计算，任何登录用户都可以调用
			r.Post("/validate", h.ValidateWeeklySchedule)
			r.Post("/analyze", h.AnalyzeWeeklySchedule)

			r.With(h.RequiredRole([]domain.Role{domain.RoleSupervisor, domain.RoleAdmin})).Post("/", h.CreateWeeklySchedule)
			r.Get("/", h.GetAllWeeklySchedules)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.weeklySchedule)
				r.Get("/", h.GetWeeklySchedule)
				r.With(h.RequiredRole([]domain.Role{domain.RoleSupervisor, domain.RoleAdmin})).Delete("/", h.DeleteWeeklySchedule)
			})
		})
	})
}
