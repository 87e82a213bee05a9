package appointment

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BruksfildServices01/detailing-scheduler/internal/httperr"
)

// Business window, 24h clock, business local time.
const (
	OpeningHour = 10
	ClosingHour = 17
)

// IsWithinBusinessHours reports whether [startHour, startHour+durationHours)
// fits inside the business window.
func IsWithinBusinessHours(startHour, durationHours int) bool {
	if startHour < OpeningHour || startHour > ClosingHour {
		return false
	}
	return startHour+durationHours <= ClosingHour
}

// ParseTimeSlot reads the "HH:00" wire format used by the booking form.
func ParseTimeSlot(slot string) (int, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(slot), ":")
	if !ok || mm != "00" {
		return 0, httperr.ErrBusiness("invalid_time_slot")
	}

	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return 0, httperr.ErrBusiness("invalid_time_slot")
	}

	return hour, nil
}

func FormatTimeSlot(hour int) string {
	return fmt.Sprintf("%d:00", hour)
}

// DisplayLabel renders an hour for customers, e.g. 14 -> "2:00 PM".
func DisplayLabel(hour int) string {
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}

	display := hour
	if hour > 12 {
		display = hour - 12
	}

	return fmt.Sprintf("%d:00 %s", display, period)
}
