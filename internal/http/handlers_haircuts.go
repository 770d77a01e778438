package httpx

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/barberpro/dashboard/internal/domain/auth"
	"github.com/barberpro/dashboard/internal/domain/model"
	"github.com/barberpro/dashboard/internal/http/validation"
	"github.com/barberpro/dashboard/internal/service"
)

const (
	minHaircutNameLen = 3
	minPriceLen       = 2
	maxIDLen          = 128

	haircutsPath = "/dashboard/haircuts"
)

// HaircutHandlers serves the haircut catalogue pages.
type HaircutHandlers struct {
	handlerBase
	Svc *service.HaircutService
}

// priceInput accepts a price typed into a form (string, possibly with a decimal comma)
// as well as a plain JSON number.
type priceInput string

func (p *priceInput) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*p = priceInput(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*p = priceInput(n.String())
	return nil
}

func planLabel(premium bool) string {
	if premium {
		return auth.PlanPremium
	}
	return auth.PlanFree
}

type haircutsResponse struct {
	Haircuts []model.Haircut `json:"haircuts"`
	Status   bool            `json:"status"`
}

// List returns the haircuts with the requested status. GET /dashboard/haircuts?status=true|false.
func (h *HaircutHandlers) List(w http.ResponseWriter, r *http.Request) {
	cred, ok := h.credential(w, r)
	if !ok {
		return
	}

	status := true
	if raw := strings.TrimSpace(r.URL.Query().Get("status")); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			writeValidation(w, validation.New().Fail("status", "Status must be true or false."))
			return
		}
		status = v
	}

	list, err := h.Svc.List(r.Context(), cred, status)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if list == nil {
		list = []model.Haircut{}
	}
	WriteJSON(w, http.StatusOK, haircutsResponse{Haircuts: list, Status: status})
}

type usageResponse struct {
	Plan      string `json:"plan"`
	Count     int    `json:"count"`
	Limit     int    `json:"limit"`
	CanCreate bool   `json:"can_create"`
}

// NewForm reports whether the plan allows another haircut. GET /dashboard/haircuts/new.
func (h *HaircutHandlers) NewForm(w http.ResponseWriter, r *http.Request) {
	cred, ok := h.credential(w, r)
	if !ok {
		return
	}

	usage, err := h.Svc.Usage(r.Context(), cred)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, usageResponse{
		Plan:      planLabel(usage.Premium),
		Count:     usage.Count,
		Limit:     usage.Limit,
		CanCreate: usage.CanCreate,
	})
}

type haircutForm struct {
	Name   string     `json:"name"`
	Price  priceInput `json:"price"`
	Status *bool      `json:"status,omitempty"`
}

// validate checks name and price and returns the parsed price.
func (f *haircutForm) validate(fv *validation.FieldValidator) float64 {
	f.Name = strings.TrimSpace(f.Name)
	raw := strings.TrimSpace(string(f.Price))

	fv.Validate("name", f.Name, validation.MinLen("Name", minHaircutNameLen)).
		Validate("price", raw, validation.MinLen("Price", minPriceLen), validation.NonNegativeNumber("Price"))

	if _, failed := fv.Errors()["price"]; failed {
		return 0
	}
	price, err := model.ParsePrice(raw)
	if err != nil {
		fv.Fail("price", "Price must be a non-negative number.")
	}
	return price
}

type createHaircutResponse struct {
	Haircut    model.Haircut `json:"haircut"`
	RedirectTo string        `json:"redirect_to"`
}

// Create registers a haircut. POST /dashboard/haircuts/new.
func (h *HaircutHandlers) Create(w http.ResponseWriter, r *http.Request) {
	cred, ok := h.credential(w, r)
	if !ok {
		return
	}

	var form haircutForm
	if !DecodeJSON(w, r, &form) {
		return
	}
	fv := validation.New()
	price := form.validate(fv)
	if !fv.Valid() {
		writeValidation(w, fv)
		return
	}

	created, err := h.Svc.Create(r.Context(), cred, model.CreateHaircutRequest{Name: form.Name, Price: price})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, createHaircutResponse{Haircut: created, RedirectTo: haircutsPath})
}

type haircutDetailResponse struct {
	Haircut model.Haircut `json:"haircut"`
	Plan    string        `json:"plan"`
	CanEdit bool          `json:"can_edit"`
}

// Detail returns one haircut and whether the user may edit it. GET /dashboard/haircuts/{id}.
func (h *HaircutHandlers) Detail(w http.ResponseWriter, r *http.Request) {
	cred, ok := h.credential(w, r)
	if !ok {
		return
	}

	d, err := h.Svc.Detail(r.Context(), cred, r.PathValue("id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, haircutDetailResponse{
		Haircut: d.Haircut,
		Plan:    planLabel(d.Premium),
		CanEdit: d.CanEdit,
	})
}

type updateHaircutResponse struct {
	Haircut model.Haircut `json:"haircut"`
}

// Update edits a haircut. PUT /dashboard/haircuts/{id}.
func (h *HaircutHandlers) Update(w http.ResponseWriter, r *http.Request) {
	cred, ok := h.credential(w, r)
	if !ok {
		return
	}

	var form haircutForm
	if !DecodeJSON(w, r, &form) {
		return
	}
	fv := validation.New()
	price := form.validate(fv)
	if form.Status == nil {
		fv.Fail("status", "Status is required.")
	}
	if !fv.Valid() {
		writeValidation(w, fv)
		return
	}

	updated, err := h.Svc.Update(r.Context(), cred, model.UpdateHaircutRequest{
		HaircutID: r.PathValue("id"),
		Name:      form.Name,
		Price:     price,
		Status:    *form.Status,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, updateHaircutResponse{Haircut: updated})
}
