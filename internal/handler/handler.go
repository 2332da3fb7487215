package handler

import (
	"log/slog"
	"reflect"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/sysu-ecnc-dev/holiday-planner/backend/internal/config"
	"github.com/sysu-ecnc-dev/holiday-planner/backend/internal/repository"
)

type Handler struct {
	validate   *validator.Validate
	config     *config.Config
	repository *repository.Repository
	translator ut.Translator
	logger     *slog.Logger
	now        func() time.Time

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, logger *slog.Logger) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	// report fields by their json names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		validate:   validate,
		config:     cfg,
		repository: repo,
		translator: trans,
		logger:     logger,
		now:        time.Now,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.requestLogger)
	h.Mux.Use(h.recoverer)

	h.Mux.Get("/time-slots", h.GetTimeSlots)

	h.Mux.Route("/holiday-plans", func(r chi.Router) {
		r.Post("/", h.CreateHolidayPlan)
		r.Get("/", h.GetAllHolidayPlans)
		r.Route("/{planID}", func(r chi.Router) {
			r.Use(h.holidayPlan)
			r.Get("/", h.GetHolidayPlan)
			r.Patch("/", h.UpdateHolidayPlan)
			r.Delete("/", h.DeleteHolidayPlan)
			r.Get("/timeline", h.GetHolidayPlanTimeline)

			r.Route("/schedules", func(r chi.Router) {
				r.Post("/", h.CreateSchedule)
				r.Route("/{scheduleID}", func(r chi.Router) {
					r.Use(h.schedule)
					r.Get("/", h.GetSchedule)
					r.Patch("/", h.UpdateSchedule)
					r.Delete("/", h.DeleteSchedule)
				})
			})
		})
	})
}
