package contact

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/detailing-scheduler/internal/audit"
	appointment "github.com/BruksfildServices01/detailing-scheduler/internal/domain/appointment"
	domain "github.com/BruksfildServices01/detailing-scheduler/internal/domain/contact"
	"github.com/BruksfildServices01/detailing-scheduler/internal/httperr"
	"github.com/BruksfildServices01/detailing-scheduler/internal/models"
	"github.com/BruksfildServices01/detailing-scheduler/internal/timezone"
)

type MembershipSignupInput struct {
	Name             string
	Email            string
	Phone            string
	VehicleMakeModel string
	MembershipTier   string
	Frequency        string
	StartDate        string
	AgreedToTerms    bool

	RequestID string
}

// SignupMembership stores a membership request as a tagged contact; billing
// is arranged offline.
type SignupMembership struct {
	repo        domain.Repository
	audit       Auditor
	log         *zap.Logger
	loc         *time.Location
	emailDomain func(email string) bool
}

func NewSignupMembership(
	repo domain.Repository,
	audit Auditor,
	log *zap.Logger,
	loc *time.Location,
	emailDomain func(email string) bool,
) *SignupMembership {
	return &SignupMembership{
		repo:        repo,
		audit:       audit,
		log:         log,
		loc:         loc,
		emailDomain: emailDomain,
	}
}

func (uc *SignupMembership) Execute(ctx context.Context, in MembershipSignupInput) (*models.Contact, error) {
	if !in.AgreedToTerms {
		return nil, httperr.ErrBusiness("terms_not_accepted")
	}

	tier, ok := appointment.ParsePackage(in.MembershipTier)
	if !ok {
		return nil, httperr.ErrBusiness("unknown_package")
	}

	freq, err := domain.ParseFrequency(in.Frequency)
	if err != nil {
		return nil, err
	}

	if _, err := timezone.ParseDate(in.StartDate, uc.loc); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if uc.emailDomain != nil && !uc.emailDomain(email) {
		return nil, httperr.ErrBusiness("invalid_email_domain")
	}

	c := &models.Contact{
		Name:             strings.TrimSpace(in.Name),
		Email:            email,
		Phone:            strings.TrimSpace(in.Phone),
		VehicleType:      strings.TrimSpace(in.VehicleMakeModel),
		PreferredPackage: tier.String(),
		PreferredService: domain.ServiceMembership,
		Message:          domain.MembershipMessage(tier.String(), freq, in.StartDate),
	}

	if err := uc.repo.CreateContact(ctx, c); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:    audit.ActionMembershipSignup,
		Entity:    "contact",
		EntityID:  &c.ID,
		RequestID: in.RequestID,
		Metadata: map[string]string{
			"tier":      tier.String(),
			"frequency": string(freq),
		},
	})
	uc.log.Info("membership_signup",
		zap.Uint("contact_id", c.ID),
		zap.String("tier", tier.String()),
		zap.String("frequency", string(freq)),
		zap.String("request_id", in.RequestID),
	)

	return c, nil
}
