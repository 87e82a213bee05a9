package appointment

// CalculateSlots returns one slot per whole hour from OpeningHour through
// ClosingHour, ascending, each flagged available when an appointment of the
// requested package could start there.
//
// It is a pure function of its arguments and is safe for concurrent use.
// Appointments are not checked against the queried date and their hours are
// not validated.
func CalculateSlots(requested Package, existing []Booked) []TimeSlot {
	duration := requested.DurationHours()

	slots := make([]TimeSlot, 0, ClosingHour-OpeningHour+1)
	for hour := OpeningHour; hour <= ClosingHour; hour++ {
		slots = append(slots, TimeSlot{
			Time:      FormatTimeSlot(hour),
			Hour:      hour,
			Label:     DisplayLabel(hour),
			Available: IsSlotFree(hour, duration, existing),
			Duration:  duration,
		})
	}

	return slots
}

// IsSlotFree checks a single candidate [startHour, startHour+durationHours)
// against the closing hour and every existing appointment.
func IsSlotFree(startHour, durationHours int, existing []Booked) bool {
	candidate := Interval{Start: startHour, End: startHour + durationHours}
	if candidate.End > ClosingHour {
		return false
	}

	for _, b := range existing {
		if candidate.Overlaps(b.Interval()) {
			return false
		}
	}

	return true
}

// AvailableHours picks the start hours of the available slots.
func AvailableHours(slots []TimeSlot) []int {
	hours := make([]int, 0, len(slots))
	for _, s := range slots {
		if s.Available {
			hours = append(hours, s.Hour)
		}
	}
	return hours
}
