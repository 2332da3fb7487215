package handler

import (
	"net/http"
	"strconv"

	"github.com/sysu-ecnc-dev/holiday-planner/backend/internal/utils"
)

const defaultSlotInterval = 30

func (h *Handler) GetTimeSlots(w http.ResponseWriter, r *http.Request) {
	interval := defaultSlotInterval
	if s := r.URL.Query().Get("interval"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			h.errorResponse(w, r, "interval must be a number of minutes")
			return
		}
		interval = n
	}

	slots, err := utils.GenerateTimeSlots(interval)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	h.successResponse(w, r, "time slots generated", slots)
}
