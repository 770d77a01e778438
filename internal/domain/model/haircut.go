//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// FreePlanHaircutLimit is how many haircut services a user without an active
// subscription may register.
const FreePlanHaircutLimit = 3

// ErrInvalidPrice is returned by ParsePrice for non-numeric or negative input.
var ErrInvalidPrice = errors.New("price must be a non-negative number")

// Haircut is a service offered by the barbershop.
type Haircut struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Status bool    `json:"status"`
	UserID string  `json:"user_id,omitempty"`
}

// HaircutsListOptions filters the haircut list by active status.
type HaircutsListOptions struct {
	Status bool
}

// CreateHaircutRequest is the backend payload for a new haircut.
type CreateHaircutRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// UpdateHaircutRequest is the backend payload for editing a haircut.
type UpdateHaircutRequest struct {
	HaircutID string  `json:"haircut_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Status    bool    `json:"status"`
}

// FilterHaircutsByStatus keeps only the haircuts whose Status matches status.
// The backend filter is not trusted to be exact.
func FilterHaircutsByStatus(in []Haircut, status bool) []Haircut {
	out := make([]Haircut, 0, len(in))
	for _, h := range in {
		if h.Status == status {
			out = append(out, h)
		}
	}
	return out
}

// ParsePrice converts user price input into a number. A decimal comma is accepted.
func ParsePrice(raw string) (float64, error) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	if s == "" {
		return 0, ErrInvalidPrice
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, ErrInvalidPrice
	}
	return v, nil
}

// CanCreateHaircut reports whether another haircut may be registered given the
// current count and whether the user is on the premium plan.
func CanCreateHaircut(premium bool, count int) bool {
	return premium || count < FreePlanHaircutLimit
}
