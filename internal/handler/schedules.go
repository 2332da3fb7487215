package handler

import (
	"net/http"
	"strings"

	"github.com/sysu-ecnc-dev/holiday-planner/backend/internal/domain"
	"github.com/sysu-ecnc-dev/holiday-planner/backend/internal/utils"
)

func (h *Handler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	plan := r.Context().Value(HolidayPlanCtx).(*domain.HolidayPlan)

	var req struct {
		Title     string `json:"title" validate:"required,max=100"`
		StartTime string `json:"startTime" validate:"required,datetime=15:04"`
		EndTime   string `json:"endTime" validate:"required,datetime=15:04"`
		Memo      string `json:"memo" validate:"max=1000"`
		Color     string `json:"color" validate:"omitempty,hexcolor"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Memo = strings.TrimSpace(req.Memo)
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	schedule := &domain.Schedule{
		ID:        utils.GenerateID(),
		Title:     req.Title,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Memo:      req.Memo,
		Color:     req.Color,
	}

	if err := utils.ValidateScheduleTime(schedule); err != nil {
		h.badRequest(w, r, err)
		return
	}

	outcome := h.repository.CreateSchedule(plan.ID, schedule)
	h.outcomeResponse(w, r, outcome, "holiday plan not found", "schedule created", schedule)
}

func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	schedule := r.Context().Value(ScheduleCtx).(*domain.Schedule)

	h.successResponse(w, r, "schedule fetched", schedule)
}

func (h *Handler) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	plan := r.Context().Value(HolidayPlanCtx).(*domain.HolidayPlan)
	schedule := r.Context().Value(ScheduleCtx).(*domain.Schedule)

	var req struct {
		Title     *string `json:"title" validate:"omitempty,max=100"`
		StartTime *string `json:"startTime" validate:"omitempty,datetime=15:04"`
		EndTime   *string `json:"endTime" validate:"omitempty,datetime=15:04"`
		Memo      *string `json:"memo" validate:"omitempty,max=1000"`
		Color     *string `json:"color" validate:"omitempty,hexcolor"`
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
		schedule.Title = title
	}
	if req.StartTime != nil {
		schedule.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		schedule.EndTime = *req.EndTime
	}
	if req.Memo != nil {
		schedule.Memo = strings.TrimSpace(*req.Memo)
	}
	if req.Color != nil {
		schedule.Color = *req.Color
	}

	// the merged result has to be checked, not just the changed fields
	if err := utils.ValidateScheduleTime(schedule); err != nil {
		h.badRequest(w, r, err)
		return
	}

	outcome := h.repository.UpdateSchedule(plan.ID, schedule)
	h.outcomeResponse(w, r, outcome, "schedule not found", "schedule updated", schedule)
}

func (h *Handler) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	plan := r.Context().Value(HolidayPlanCtx).(*domain.HolidayPlan)
	schedule := r.Context().Value(ScheduleCtx).(*domain.Schedule)

	outcome := h.repository.DeleteSchedule(plan.ID, schedule.ID)
	h.outcomeResponse(w, r, outcome, "schedule not found", "schedule deleted", nil)
}
