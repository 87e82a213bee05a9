package dto

import (
	domain "github.com/BruksfildServices01/detailing-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/detailing-scheduler/internal/models"
)

// PublicAppointmentDTO is what anonymous visitors may see of a booking.
type PublicAppointmentDTO struct {
	Date          string `json:"date"`
	TimeSlot      string `json:"timeSlot"`
	StartHour     int    `json:"startHour"`
	Package       string `json:"package"`
	DurationHours int    `json:"durationHours"`
}

func ToPublicAppointment(ap models.Appointment) PublicAppointmentDTO {
	return PublicAppointmentDTO{
		Date:          ap.Date,
		TimeSlot:      ap.TimeSlot,
		StartHour:     ap.StartHour,
		Package:       ap.Package,
		DurationHours: ap.DurationHours,
	}
}

type AvailabilityDTO struct {
	Date          string            `json:"date"`
	Package       string            `json:"package"`
	DurationHours int               `json:"durationHours"`
	OpeningHour   int               `json:"openingHour"`
	ClosingHour   int               `json:"closingHour"`
	Slots         []domain.TimeSlot `json:"slots"`

	AvailableHours []int `json:"availableHours"`
}
