package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/sysu-ecnc-dev/holiday-planner/backend/internal/domain"
	"github.com/sysu-ecnc-dev/holiday-planner/backend/internal/repository"
	"github.com/sysu-ecnc-dev/holiday-planner/backend/internal/timeline"
	"github.com/sysu-ecnc-dev/holiday-planner/backend/internal/utils"
)

func (h *Handler) CreateHolidayPlan(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title string `json:"title" validate:"required,max=100"`
		Date  string `json:"date" validate:"required,datetime=2006-01-02"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	plan := &domain.HolidayPlan{
		ID:        utils.GenerateID(),
		Title:     req.Title,
		Date:      req.Date,
		Schedules: []domain.Schedule{},
	}

	if err := utils.ValidateHolidayPlanDate(plan); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if outcome := h.repository.CreateHolidayPlan(plan); outcome != repository.OutcomeApplied {
		h.internalServerError(w, r, errStorageFailed)
		return
	}

	// the store may drop writes, so only report what can be read back
	saved := h.repository.GetHolidayPlanByID(plan.ID)
	if saved == nil {
		h.internalServerError(w, r, errors.New("holiday plan missing after save"))
		return
	}

	h.successResponse(w, r, "holiday plan created", saved)
}

func (h *Handler) GetAllHolidayPlans(w http.ResponseWriter, r *http.Request) {
	plans := h.repository.GetAllHolidayPlans()

	h.successResponse(w, r, "holiday plans fetched", plans)
}

func (h *Handler) GetHolidayPlan(w http.ResponseWriter, r *http.Request) {
	plan := r.Context().Value(HolidayPlanCtx).(*domain.HolidayPlan)

	h.successResponse(w, r, "holiday plan fetched", plan)
}

func (h *Handler) UpdateHolidayPlan(w http.ResponseWriter, r *http.Request) {
	plan := r.Context().Value(HolidayPlanCtx).(*domain.HolidayPlan)

	var req struct {
		Title *string `json:"title" validate:"omitempty,max=100"`
		Date  *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			h.errorResponse(w, r, "title is required")
			return
		}
		plan.Title = title
	}
	if req.Date != nil {
		plan.Date = *req.Date
	}

	if err := utils.ValidateHolidayPlanDate(plan); err != nil {
		h.badRequest(w, r, err)
		return
	}

	outcome := h.repository.UpdateHolidayPlan(plan)
	h.outcomeResponse(w, r, outcome, "holiday plan not found", "holiday plan updated", plan)
}

func (h *Handler) DeleteHolidayPlan(w http.ResponseWriter, r *http.Request) {
	plan := r.Context().Value(HolidayPlanCtx).(*domain.HolidayPlan)

	outcome := h.repository.DeleteHolidayPlan(plan.ID)
	h.outcomeResponse(w, r, outcome, "holiday plan not found", "holiday plan deleted", nil)
}

func (h *Handler) GetHolidayPlanTimeline(w http.ResponseWriter, r *http.Request) {
	plan := r.Context().Value(HolidayPlanCtx).(*domain.HolidayPlan)

	now := h.now()
	if s := r.URL.Query().Get("now"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			h.errorResponse(w, r, "now must be an RFC 3339 timestamp")
			return
		}
		now = t
	}

	h.successResponse(w, r, "timeline fetched", timeline.Build(plan, now))
}
