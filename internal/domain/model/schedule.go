//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

// Schedule is an open appointment for a customer.
type Schedule struct {
	ID        string          `json:"id"`
	Customer  string          `json:"customer"`
	HaircutID string          `json:"haircut_id,omitempty"`
	Haircut   ScheduleHaircut `json:"haircut"`
}

// ScheduleHaircut is the haircut summary embedded in a schedule.
type ScheduleHaircut struct {
	ID    string  `json:"id,omitempty"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// CreateScheduleRequest is the backend payload for a new appointment.
type CreateScheduleRequest struct {
	Customer  string `json:"customer"`
	HaircutID string `json:"haircut_id"`
}

// WithoutSchedule returns a copy of list with the schedule id removed and whether it was present.
func WithoutSchedule(list []Schedule, id string) ([]Schedule, bool) {
	out := make([]Schedule, 0, len(list))
	found := false
	for _, s := range list {
		if s.ID == id {
			found = true
			continue
		}
		out = append(out, s)
	}
	return out, found
}
