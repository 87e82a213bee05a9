package contact

import (
	"fmt"
	"strings"

	"github.com/BruksfildServices01/detailing-scheduler/internal/httperr"
)

// ServiceMembership tags contacts created by the membership signup form.
const ServiceMembership = "membership"

type Frequency string

const (
	FrequencyMonthly Frequency = "monthly"
	FrequencyWeekly  Frequency = "weekly"
)

func ParseFrequency(s string) (Frequency, error) {
	switch f := Frequency(strings.ToLower(strings.TrimSpace(s))); f {
	case FrequencyMonthly, FrequencyWeekly:
		return f, nil
	default:
		return "", httperr.ErrBusiness("invalid_frequency")
	}
}

// MembershipMessage is the summary stored as the contact message.
func MembershipMessage(tier string, frequency Frequency, startDate string) string {
	return fmt.Sprintf(
		"Membership Signup - Tier: %s, Frequency: %s, Start Date: %s",
		tier, frequency, startDate,
	)
}
