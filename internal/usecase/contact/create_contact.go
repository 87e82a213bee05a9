package contact

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/detailing-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/detailing-scheduler/internal/domain/contact"
	"github.com/BruksfildServices01/detailing-scheduler/internal/httperr"
	"github.com/BruksfildServices01/detailing-scheduler/internal/models"
)

// Auditor receives audit events; *audit.Dispatcher satisfies it.
type Auditor interface {
	Dispatch(ev audit.Event)
}

type CreateContactInput struct {
	Name             string
	Email            string
	Phone            string
	VehicleType      string
	PreferredPackage string
	Message          string

	RequestID string
}

type CreateContact struct {
	repo        domain.Repository
	audit       Auditor
	log         *zap.Logger
	emailDomain func(email string) bool
}

// NewCreateContact takes an optional e-mail domain check; nil disables it.
func NewCreateContact(
	repo domain.Repository,
	audit Auditor,
	log *zap.Logger,
	emailDomain func(email string) bool,
) *CreateContact {
	return &CreateContact{
		repo:        repo,
		audit:       audit,
		log:         log,
		emailDomain: emailDomain,
	}
}

func (uc *CreateContact) Execute(ctx context.Context, in CreateContactInput) (*models.Contact, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if uc.emailDomain != nil && !uc.emailDomain(email) {
		return nil, httperr.ErrBusiness("invalid_email_domain")
	}

	c := &models.Contact{
		Name:             strings.TrimSpace(in.Name),
		Email:            email,
		Phone:            strings.TrimSpace(in.Phone),
		VehicleType:      strings.TrimSpace(in.VehicleType),
		PreferredPackage: strings.ToLower(strings.TrimSpace(in.PreferredPackage)),
		Message:          strings.TrimSpace(in.Message),
	}

	if err := uc.repo.CreateContact(ctx, c); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:    audit.ActionContactCreated,
		Entity:    "contact",
		EntityID:  &c.ID,
		RequestID: in.RequestID,
	})
	uc.log.Info("contact_created",
		zap.Uint("contact_id", c.ID),
		zap.String("request_id", in.RequestID),
	)

	return c, nil
}
