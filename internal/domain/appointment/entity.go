package appointment

import (
	"github.com/BruksfildServices01/detailing-scheduler/internal/httperr"
	"github.com/BruksfildServices01/detailing-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// ToBooked maps stored appointments onto calculator input.
func ToBooked(aps []models.Appointment) []Booked {
	out := make([]Booked, 0, len(aps))
	for _, ap := range aps {
		out = append(out, Booked{
			StartHour: ap.StartHour,
			Package:   Package(ap.Package),
		})
	}
	return out
}

// AssertSlotFree re-runs the calculator's check for a single candidate
// against a fresh list of the day's appointments.
func AssertSlotFree(startHour, durationHours int, existing []models.Appointment) error {
	if !IsSlotFree(startHour, durationHours, ToBooked(existing)) {
		return httperr.ErrBusiness("time_conflict")
	}
	return nil
}
