package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/detailing-scheduler/internal/httperr"
	"github.com/BruksfildServices01/detailing-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/detailing-scheduler/internal/middleware"
	"github.com/BruksfildServices01/detailing-scheduler/internal/models"
	ucContact "github.com/BruksfildServices01/detailing-scheduler/internal/usecase/contact"
)

type ContactCreator interface {
	Execute(ctx context.Context, in ucContact.CreateContactInput) (*models.Contact, error)
}

type MembershipSignup interface {
	Execute(ctx context.Context, in ucContact.MembershipSignupInput) (*models.Contact, error)
}

type ContactLister interface {
	Execute(ctx context.Context) ([]models.Contact, error)
}

type ContactHandler struct {
	create ContactCreator
	signup MembershipSignup
	list   ContactLister
}

func NewContactHandler(create ContactCreator, signup MembershipSignup, list ContactLister) *ContactHandler {
	return &ContactHandler{create: create, signup: signup, list: list}
}

// --------- Requests ---------

type CreateContactRequest struct {
	Name             string `json:"name" binding:"required,min=2,max=100"`
	Email            string `json:"email" binding:"required,email,max=100"`
	Phone            string `json:"phone" binding:"required,min=10,max=20"`
	VehicleType      string `json:"vehicleType" binding:"required,max=100"`
	PreferredPackage string `json:"preferredPackage" binding:"required,package"`
	Message          string `json:"message" binding:"required,max=2000"`
}

type MembershipSignupRequest struct {
	Name             string `json:"name" binding:"required,min=2,max=100"`
	Email            string `json:"email" binding:"required,email,max=100"`
	Phone            string `json:"phone" binding:"required,min=10,max=20"`
	VehicleMakeModel string `json:"vehicleMakeModel" binding:"required,min=3,max=100"`
	MembershipTier   string `json:"membershipTier" binding:"required,package"`
	Frequency        string `json:"frequency" binding:"required,oneof=monthly weekly"`
	StartDate        string `json:"startDate" binding:"required,isodate"`
	AgreedToTerms    bool   `json:"agreedToTerms"`
}

// --------- Handlers ---------

func (h *ContactHandler) Create(c *gin.Context) {
	var req CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Invalid(c, "Invalid contact data.", err)
		return
	}

	contact, err := h.create.Execute(c.Request.Context(), ucContact.CreateContactInput{
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		VehicleType:      req.VehicleType,
		PreferredPackage: req.PreferredPackage,
		Message:          req.Message,
		RequestID:        middleware.GetRequestID(c),
	})
	if err != nil {
		writeError(c, err, "failed_to_create_contact", "Failed to send message.")
		return
	}

	httpresp.Created(c, "contact", contact)
}

func (h *ContactHandler) SignupMembership(c *gin.Context) {
	var req MembershipSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Invalid(c, "Invalid membership data.", err)
		return
	}

	contact, err := h.signup.Execute(c.Request.Context(), ucContact.MembershipSignupInput{
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		VehicleMakeModel: req.VehicleMakeModel,
		MembershipTier:   req.MembershipTier,
		Frequency:        req.Frequency,
		StartDate:        req.StartDate,
		AgreedToTerms:    req.AgreedToTerms,
		RequestID:        middleware.GetRequestID(c),
	})
	if err != nil {
		writeError(c, err, "failed_to_create_membership", "Failed to submit membership signup.")
		return
	}

	httpresp.Created(c, "contact", contact)
}

func (h *ContactHandler) List(c *gin.Context) {
	contacts, err := h.list.Execute(c.Request.Context())
	if err != nil {
		writeError(c, err, "failed_to_fetch_contacts", "Failed to fetch contacts.")
		return
	}

	httpresp.List(c, contacts)
}
