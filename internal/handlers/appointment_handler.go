package handlers

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/detailing-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/detailing-scheduler/internal/dto"
	"github.com/BruksfildServices01/detailing-scheduler/internal/httperr"
	"github.com/BruksfildServices01/detailing-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/detailing-scheduler/internal/middleware"
	"github.com/BruksfildServices01/detailing-scheduler/internal/models"
	ucAppointment "github.com/BruksfildServices01/detailing-scheduler/internal/usecase/appointment"
)

// ======================================================
// USE CASE PORTS
// ======================================================

type AvailabilityQuery interface {
	Execute(ctx context.Context, in domain.AvailabilityInput) (*dto.AvailabilityDTO, error)
}

type AppointmentCreator interface {
	Execute(ctx context.Context, in ucAppointment.CreateAppointmentInput) (*models.Appointment, error)
}

type AppointmentsByDate interface {
	Execute(ctx context.Context, date string) ([]dto.PublicAppointmentDTO, error)
}

type AllAppointments interface {
	Execute(ctx context.Context) ([]models.Appointment, error)
}

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	availability AvailabilityQuery
	create       AppointmentCreator
	byDate       AppointmentsByDate
	all          AllAppointments
}

func NewAppointmentHandler(
	availability AvailabilityQuery,
	create AppointmentCreator,
	byDate AppointmentsByDate,
	all AllAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		availability: availability,
		create:       create,
		byDate:       byDate,
		all:          all,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// Duration is accepted for compatibility with older booking forms and
// ignored; the package decides how long a booking takes.
type CreateAppointmentRequest struct {
	Date          string  `json:"date" binding:"required,isodate"`
	TimeSlot      string  `json:"timeSlot" binding:"required,hourslot"`
	Package       string  `json:"package" binding:"required,package"`
	Duration      *int    `json:"duration"`
	CustomerName  string  `json:"customerName" binding:"required,min=2,max=100"`
	CustomerEmail string  `json:"customerEmail" binding:"required,email,max=100"`
	CustomerPhone string  `json:"customerPhone" binding:"required,min=10,max=20"`
	VehicleType   string  `json:"vehicleType" binding:"required,max=100"`
	Message       *string `json:"message" binding:"omitempty,max=2000"`
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	date := strings.TrimSpace(c.Query("date"))
	if date == "" {
		httperr.BadRequest(c, "missing_params", "Date is required.")
		return
	}

	out, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		Date:    date,
		Package: c.Query("package"),
	})
	if err != nil {
		writeError(c, err, "failed_to_fetch_availability", "Failed to fetch availability.")
		return
	}

	httpresp.OK(c, out)
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Invalid(c, "Invalid appointment data.", err)
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		Date:          req.Date,
		TimeSlot:      req.TimeSlot,
		Package:       req.Package,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		VehicleType:   req.VehicleType,
		Message:       req.Message,
		RequestID:     middleware.GetRequestID(c),
	})
	if err != nil {
		writeError(c, err, "failed_to_create_appointment", "Failed to create appointment.")
		return
	}

	httpresp.Created(c, "appointment", ap)
}

// ======================================================
// LISTINGS
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	out, err := h.byDate.Execute(c.Request.Context(), c.Param("date"))
	if err != nil {
		writeError(c, err, "failed_to_fetch_appointments", "Failed to fetch appointments.")
		return
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) ListAll(c *gin.Context) {
	out, err := h.all.Execute(c.Request.Context())
	if err != nil {
		writeError(c, err, "failed_to_fetch_appointments", "Failed to fetch appointments.")
		return
	}

	httpresp.List(c, out)
}
