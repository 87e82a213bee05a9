package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/detailing-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/detailing-scheduler/internal/dto"
	"github.com/BruksfildServices01/detailing-scheduler/internal/httperr"
	"github.com/BruksfildServices01/detailing-scheduler/internal/timezone"
)

type GetAvailability struct {
	repo    domain.Repository
	cache   domain.DaySnapshotCache
	metrics Observer
	loc     *time.Location
}

func NewGetAvailability(
	repo domain.Repository,
	cache domain.DaySnapshotCache,
	metrics Observer,
	loc *time.Location,
) *GetAvailability {
	return &GetAvailability{
		repo:    repo,
		cache:   cache,
		metrics: metrics,
		loc:     loc,
	}
}

// Execute never rejects a package: unknown tiers are priced at the
// one-hour fallback duration.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) (*dto.AvailabilityDTO, error) {

	if _, err := timezone.ParseDate(in.Date, uc.loc); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	pkg, _ := domain.ParsePackage(in.Package)

	booked, err := uc.bookedFor(ctx, in.Date)
	if err != nil {
		return nil, err
	}

	slots := domain.CalculateSlots(pkg, booked)
	uc.metrics.SlotsCalculated()

	return &dto.AvailabilityDTO{
		Date:           in.Date,
		Package:        pkg.String(),
		DurationHours:  pkg.DurationHours(),
		OpeningHour:    domain.OpeningHour,
		ClosingHour:    domain.ClosingHour,
		Slots:          slots,
		AvailableHours: domain.AvailableHours(slots),
	}, nil
}

// bookedFor reads the day through the snapshot cache.
func (uc *GetAvailability) bookedFor(ctx context.Context, date string) ([]domain.Booked, error) {
	if booked, ok := uc.cache.Get(ctx, date); ok {
		return booked, nil
	}

	version := uc.cache.Version(ctx, date)

	apps, err := uc.repo.ListAppointmentsForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	booked := domain.ToBooked(apps)
	uc.cache.Set(ctx, date, version, booked)

	return booked, nil
}
