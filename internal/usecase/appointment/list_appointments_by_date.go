package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/detailing-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/detailing-scheduler/internal/dto"
	"github.com/BruksfildServices01/detailing-scheduler/internal/httperr"
	"github.com/BruksfildServices01/detailing-scheduler/internal/timezone"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListAppointmentsByDate(
	repo domain.Repository,
	loc *time.Location,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
		loc:  loc,
	}
}

// Execute returns only the fields a public calendar needs; customer data
// stays behind the admin listing.
func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	date string,
) ([]dto.PublicAppointmentDTO, error) {

	if _, err := timezone.ParseDate(date, uc.loc); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	appointments, err := uc.repo.ListAppointmentsForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	out := make([]dto.PublicAppointmentDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.ToPublicAppointment(ap))
	}

	return out, nil
}
