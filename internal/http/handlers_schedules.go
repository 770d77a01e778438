package httpx

import (
	"net/http"
	"strings"

	"github.com/barberpro/dashboard/internal/domain/model"
	"github.com/barberpro/dashboard/internal/domain/route"
	"github.com/barberpro/dashboard/internal/http/validation"
	"github.com/barberpro/dashboard/internal/service"
)

const minCustomerLen = 3

// ScheduleHandlers serves the dashboard home (open appointments) and the new-schedule page.
type ScheduleHandlers struct {
	handlerBase
	Schedules *service.ScheduleService
	Haircuts  *service.HaircutService
}

type schedulesResponse struct {
	Schedules []model.Schedule `json:"schedules"`
}

// List returns the open appointments. GET /dashboard.
func (h *ScheduleHandlers) List(w http.ResponseWriter, r *http.Request) {
	cred, ok := h.credential(w, r)
	if !ok {
		return
	}

	list, err := h.Schedules.List(r.Context(), cred)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if list == nil {
		list = []model.Schedule{}
	}
	WriteJSON(w, http.StatusOK, schedulesResponse{Schedules: list})
}

// Finish closes an appointment. DELETE /dashboard?schedule_id=.
func (h *ScheduleHandlers) Finish(w http.ResponseWriter, r *http.Request) {
	cred, ok := h.credential(w, r)
	if !ok {
		return
	}

	id := strings.TrimSpace(r.URL.Query().Get("schedule_id"))
	fv := validation.New().Validate("schedule_id", id, validation.Required("Schedule", maxIDLen))
	if !fv.Valid() {
		writeValidation(w, fv)
		return
	}

	if err := h.Schedules.Finish(r.Context(), cred, id); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type haircutOptionsResponse struct {
	Haircuts []model.Haircut `json:"haircuts"`
}

// NewForm returns the active haircuts a new appointment can pick from.
// GET /dashboard/new-schedule.
func (h *ScheduleHandlers) NewForm(w http.ResponseWriter, r *http.Request) {
	cred, ok := h.credential(w, r)
	if !ok {
		return
	}

	haircuts, err := h.Haircuts.List(r.Context(), cred, true)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if haircuts == nil {
		haircuts = []model.Haircut{}
	}
	WriteJSON(w, http.StatusOK, haircutOptionsResponse{Haircuts: haircuts})
}

type createScheduleResponse struct {
	Schedule   model.Schedule `json:"schedule"`
	RedirectTo string         `json:"redirect_to"`
}

// Create opens an appointment. POST /dashboard/new-schedule.
func (h *ScheduleHandlers) Create(w http.ResponseWriter, r *http.Request) {
	cred, ok := h.credential(w, r)
	if !ok {
		return
	}

	var req model.CreateScheduleRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	req.Customer = strings.TrimSpace(req.Customer)
	req.HaircutID = strings.TrimSpace(req.HaircutID)

	fv := validation.New().
		Validate("customer", req.Customer, validation.MinLen("Customer", minCustomerLen)).
		Validate("haircut_id", req.HaircutID, validation.Required("Haircut", maxIDLen))
	if !fv.Valid() {
		writeValidation(w, fv)
		return
	}

	created, err := h.Schedules.Create(r.Context(), cred, req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, createScheduleResponse{Schedule: created, RedirectTo: route.DashboardPath})
}
