package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/detailing-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/detailing-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/detailing-scheduler/internal/httperr"
	"github.com/BruksfildServices01/detailing-scheduler/internal/models"
	"github.com/BruksfildServices01/detailing-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	Date     string
	TimeSlot string
	Package  string

	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	VehicleType   string
	Message       *string

	RequestID string
}

// BookingPolicy is the calendar a booking must fall in.
type BookingPolicy struct {
	Location   *time.Location
	WindowDays int

	// EmailDomainCheck is optional; nil skips the lookup.
	EmailDomainCheck func(email string) bool
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo    domain.Repository
	cache   domain.DaySnapshotCache
	audit   Auditor
	metrics Observer
	log     *zap.Logger
	policy  BookingPolicy
	now     func() time.Time
}

func NewCreateAppointment(
	repo domain.Repository,
	cache domain.DaySnapshotCache,
	audit Auditor,
	metrics Observer,
	log *zap.Logger,
	policy BookingPolicy,
) *CreateAppointment {
	return &CreateAppointment{
		repo:    repo,
		cache:   cache,
		audit:   audit,
		metrics: metrics,
		log:     log,
		policy:  policy,
		now:     time.Now,
	}
}

// WithClock replaces the wall clock used for the booking window.
func (uc *CreateAppointment) WithClock(now func() time.Time) *CreateAppointment {
	uc.now = now
	return uc
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Package (strict, unlike the calculator)
	// --------------------------------------------------
	pkg, ok := domain.ParsePackage(in.Package)
	if !ok {
		return nil, httperr.ErrBusiness("unknown_package")
	}
	duration := pkg.DurationHours()

	// --------------------------------------------------
	// Date inside the booking window
	// --------------------------------------------------
	day, err := timezone.ParseDate(in.Date, uc.policy.Location)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	now := uc.now().In(uc.policy.Location)
	if !timezone.WithinWindow(day, now, uc.policy.WindowDays) {
		return nil, httperr.ErrBusiness("date_out_of_range")
	}

	// --------------------------------------------------
	// Hour
	// --------------------------------------------------
	hour, err := domain.ParseTimeSlot(in.TimeSlot)
	if err != nil {
		return nil, err
	}
	if hour < domain.OpeningHour || hour > domain.ClosingHour {
		return nil, httperr.ErrBusiness("invalid_time_slot")
	}
	if !domain.IsWithinBusinessHours(hour, duration) {
		return nil, httperr.ErrBusiness("outside_business_hours")
	}

	// --------------------------------------------------
	// Customer
	// --------------------------------------------------
	email := strings.ToLower(strings.TrimSpace(in.CustomerEmail))
	if uc.policy.EmailDomainCheck != nil && !uc.policy.EmailDomainCheck(email) {
		return nil, httperr.ErrBusiness("invalid_email_domain")
	}

	ap := &models.Appointment{
		Reference:     uuid.NewString(),
		Date:          in.Date,
		StartHour:     hour,
		TimeSlot:      domain.FormatTimeSlot(hour),
		Package:       pkg.String(),
		DurationHours: duration,
		CustomerName:  strings.TrimSpace(in.CustomerName),
		CustomerEmail: email,
		CustomerPhone: strings.TrimSpace(in.CustomerPhone),
		VehicleType:   strings.TrimSpace(in.VehicleType),
		Message:       in.Message,
	}

	// --------------------------------------------------
	// Conflict check + insert, serialised per day
	// --------------------------------------------------
	err = uc.repo.CreateAppointmentIfFree(ctx, ap, func(existing []models.Appointment) error {
		return domain.AssertSlotFree(hour, duration, existing)
	})
	if err != nil {
		if httperr.IsBusiness(err, "time_conflict") {
			uc.conflict(in, hour, pkg)
		}
		return nil, err
	}

	uc.cache.Invalidate(ctx, ap.Date)

	// --------------------------------------------------
	// Audit
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Action:    audit.ActionAppointmentCreated,
		Entity:    "appointment",
		EntityID:  &ap.ID,
		RequestID: in.RequestID,
		Metadata: map[string]any{
			"reference": ap.Reference,
			"date":      ap.Date,
			"time_slot": ap.TimeSlot,
			"package":   ap.Package,
		},
	})
	uc.metrics.BookingCreated(ap.Package)

	uc.log.Info("appointment_created",
		zap.String("reference", ap.Reference),
		zap.String("date", ap.Date),
		zap.Int("start_hour", ap.StartHour),
		zap.String("package", ap.Package),
		zap.String("request_id", in.RequestID),
	)

	return ap, nil
}

func (uc *CreateAppointment) conflict(in CreateAppointmentInput, hour int, pkg domain.Package) {
	uc.audit.Dispatch(audit.Event{
		Action:    audit.ActionAppointmentConflict,
		Entity:    "appointment",
		RequestID: in.RequestID,
		Metadata: map[string]any{
			"date":       in.Date,
			"start_hour": hour,
			"package":    pkg.String(),
		},
	})
	uc.metrics.BookingConflict()

	uc.log.Info("appointment_conflict",
		zap.String("date", in.Date),
		zap.Int("start_hour", hour),
		zap.String("package", pkg.String()),
		zap.String("request_id", in.RequestID),
	)
}
