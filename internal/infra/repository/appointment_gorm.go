package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/detailing-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/detailing-scheduler/internal/httperr"
	"github.com/BruksfildServices01/detailing-scheduler/internal/models"
)

const pgUniqueViolation = "23505"

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsForDate(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("start_hour ASC").
		Find(&apps).Error; err != nil {
		return nil, fmt.Errorf("list appointments for %s: %w", date, err)
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListAllAppointments(
	ctx context.Context,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Order("date ASC, start_hour ASC").
		Find(&apps).Error; err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}

	return apps, nil
}

// --------------------------------------------------
// Write
// --------------------------------------------------

// CreateAppointmentIfFree takes a transaction-scoped advisory lock keyed by
// the date, so concurrent bookings for one day queue up behind each other
// while other days proceed. The (date, start_hour) unique index catches
// anything that slips past the lock.
func (r *AppointmentGormRepository) CreateAppointmentIfFree(
	ctx context.Context,
	ap *models.Appointment,
	assertFree func(existing []models.Appointment) error,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", ap.Date).Error; err != nil {
			return fmt.Errorf("lock day %s: %w", ap.Date, err)
		}

		var existing []models.Appointment
		if err := tx.
			Where("date = ?", ap.Date).
			Order("start_hour ASC").
			Find(&existing).Error; err != nil {
			return fmt.Errorf("list appointments for %s: %w", ap.Date, err)
		}

		if err := assertFree(existing); err != nil {
			return err
		}

		return tx.Create(ap).Error
	})

	if isUniqueViolation(err) {
		return httperr.ErrBusiness("time_conflict")
	}

	return err
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
