package handler

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sysu-ecnc-dev/holiday-planner/backend/internal/domain"
)

type ResponseWriter struct {
	http.ResponseWriter
	StatusCode int
}

func (rw *ResponseWriter) WriteHeader(statusCode int) {
	rw.StatusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &ResponseWriter{ResponseWriter: w, StatusCode: http.StatusOK}
		next.ServeHTTP(rw, r)
		duration := time.Since(start)
		h.logger.Info("request handled", "status", rw.StatusCode, "ip", r.RemoteAddr, "method", r.Method, "path", r.URL.Path, "duration", duration)
	})
}

func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				h.internalServerError(w, r, fmt.Errorf("panic: %v", err))
				fmt.Print(string(debug.Stack())) // slog would mangle the stack trace
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) holidayPlan(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		plan := h.repository.GetHolidayPlanByID(chi.URLParam(r, "planID"))
		if plan == nil {
			h.errorResponse(w, r, "holiday plan not found")
			return
		}

		ctx := context.WithValue(r.Context(), HolidayPlanCtx, plan)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// schedule must run inside holidayPlan.
func (h *Handler) schedule(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		plan := r.Context().Value(HolidayPlanCtx).(*domain.HolidayPlan)

		schedule := h.repository.GetScheduleByID(plan.ID, chi.URLParam(r, "scheduleID"))
		if schedule == nil {
			h.errorResponse(w, r, "schedule not found")
			return
		}

		ctx := context.WithValue(r.Context(), ScheduleCtx, schedule)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
