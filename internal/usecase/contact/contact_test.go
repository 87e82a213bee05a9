package contact

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/detailing-scheduler/internal/audit"
	"github.com/BruksfildServices01/detailing-scheduler/internal/httperr"
	"github.com/BruksfildServices01/detailing-scheduler/internal/models"
)

type memRepo struct {
	contacts []models.Contact
	err      error
}

func (r *memRepo) CreateContact(_ context.Context, c *models.Contact) error {
	if r.err != nil {
		return r.err
	}
	c.ID = uint(len(r.contacts) + 1)
	r.contacts = append(r.contacts, *c)
	return nil
}

func (r *memRepo) ListContacts(context.Context) ([]models.Contact, error) {
	return r.contacts, r.err
}

type recordingAuditor struct {
	events []audit.Event
}

func (a *recordingAuditor) Dispatch(ev audit.Event) {
	a.events = append(a.events, ev)
}

func TestCreateContact(t *testing.T) {
	repo := &memRepo{}
	auditor := &recordingAuditor{}
	uc := NewCreateContact(repo, auditor, zap.NewNop(), nil)

	c, err := uc.Execute(context.Background(), CreateContactInput{
		Name:             " Sam ",
		Email:            "Sam@Example.com",
		Phone:            "5551234567",
		VehicleType:      "Sedan",
		PreferredPackage: "Diamond",
		Message:          "Can you come Saturday?",
	})
	require.NoError(t, err)

	assert.Equal(t, uint(1), c.ID)
	assert.Equal(t, "Sam", c.Name)
	assert.Equal(t, "sam@example.com", c.Email)
	assert.Equal(t, "diamond", c.PreferredPackage)
	assert.Empty(t, c.PreferredService)
	require.Len(t, auditor.events, 1)
	assert.Equal(t, audit.ActionContactCreated, auditor.events[0].Action)
}

func TestCreateContactEmailDomainRejected(t *testing.T) {
	repo := &memRepo{}
	uc := NewCreateContact(repo, &recordingAuditor{}, zap.NewNop(), func(string) bool { return false })

	_, err := uc.Execute(context.Background(), CreateContactInput{Email: "x@nowhere.invalid"})
	assert.True(t, httperr.IsBusiness(err, "invalid_email_domain"))
	assert.Empty(t, repo.contacts)
}

func TestCreateContactStoreFailure(t *testing.T) {
	auditor := &recordingAuditor{}
	uc := NewCreateContact(&memRepo{err: errors.New("db down")}, auditor, zap.NewNop(), nil)

	_, err := uc.Execute(context.Background(), CreateContactInput{Email: "a@b.com"})
	require.Error(t, err)
	assert.Empty(t, auditor.events)
}

func validSignup() MembershipSignupInput {
	return MembershipSignupInput{
		Name:             "Alex",
		Email:            "alex@example.com",
		Phone:            "5551234567",
		VehicleMakeModel: "Honda Civic",
		MembershipTier:   "gold",
		Frequency:        "Weekly",
		StartDate:        "2026-11-01",
		AgreedToTerms:    true,
	}
}

func TestSignupMembership(t *testing.T) {
	repo := &memRepo{}
	auditor := &recordingAuditor{}
	uc := NewSignupMembership(repo, auditor, zap.NewNop(), time.UTC, nil)

	c, err := uc.Execute(context.Background(), validSignup())
	require.NoError(t, err)

	assert.Equal(t, "membership", c.PreferredService)
	assert.Equal(t, "gold", c.PreferredPackage)
	assert.Equal(t, "Honda Civic", c.VehicleType)
	assert.Equal(t, "Membership Signup - Tier: gold, Frequency: weekly, Start Date: 2026-11-01", c.Message)
	require.Len(t, auditor.events, 1)
	assert.Equal(t, audit.ActionMembershipSignup, auditor.events[0].Action)
}

func TestSignupMembershipRejections(t *testing.T) {
	cases := []struct {
		name string
		edit func(*MembershipSignupInput)
		code string
	}{
		{"terms", func(in *MembershipSignupInput) { in.AgreedToTerms = false }, "terms_not_accepted"},
		{"tier", func(in *MembershipSignupInput) { in.MembershipTier = "bronze" }, "unknown_package"},
		{"frequency", func(in *MembershipSignupInput) { in.Frequency = "daily" }, "invalid_frequency"},
		{"start date", func(in *MembershipSignupInput) { in.StartDate = "next week" }, "invalid_date"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &memRepo{}
			uc := NewSignupMembership(repo, &recordingAuditor{}, zap.NewNop(), time.UTC, nil)

			in := validSignup()
			tc.edit(&in)

			_, err := uc.Execute(context.Background(), in)
			assert.True(t, httperr.IsBusiness(err, tc.code), "got %v", err)
			assert.Empty(t, repo.contacts)
		})
	}
}

func TestListContacts(t *testing.T) {
	repo := &memRepo{contacts: []models.Contact{{ID: 1}, {ID: 2}}}

	out, err := NewListContacts(repo).Execute(context.Background())
	require.NoError(t, err)
	assert.Len(t, out, 2)
}
