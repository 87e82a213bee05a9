package appointment

import (
	"context"

	"github.com/BruksfildServices01/detailing-scheduler/internal/models"
)

type Repository interface {
	// -------- Read --------
	ListAppointmentsForDate(
		ctx context.Context,
		date string,
	) ([]models.Appointment, error)

	ListAllAppointments(
		ctx context.Context,
	) ([]models.Appointment, error)

	// -------- Write --------

	// CreateAppointmentIfFree serialises writers for ap.Date, calls assertFree
	// with the day's current appointments and inserts ap only if it returns nil.
	CreateAppointmentIfFree(
		ctx context.Context,
		ap *models.Appointment,
		assertFree func(existing []models.Appointment) error,
	) error
}

// DaySnapshotCache keeps the booked intervals of a date between reads.
// Implementations must treat every failure as a miss.
//
// Every Invalidate bumps the date's version. Set stores the snapshot only
// while the version still equals the one read before the snapshot was
// loaded, so a read that raced a booking never overwrites its invalidation.
type DaySnapshotCache interface {
	Get(ctx context.Context, date string) ([]Booked, bool)
	// Version returns a negative value when the version cannot be read.
	Version(ctx context.Context, date string) int64
	Set(ctx context.Context, date string, version int64, booked []Booked)
	Invalidate(ctx context.Context, date string)
}
