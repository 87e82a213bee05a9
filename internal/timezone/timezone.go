package timezone

import "time"

// DefaultTimezone is where the crew operates. Appointment hours are always
// business-local; nothing is converted.
const DefaultTimezone = "America/New_York"

const dateLayout = "2006-01-02"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ParseDate parses a YYYY-MM-DD calendar day at midnight in loc.
func ParseDate(date string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(dateLayout, date, loc)
}

// BookableDates lists the next days calendar days starting with the day of now.
func BookableDates(now time.Time, days int) []string {
	today := startOfDay(now)

	out := make([]string, 0, days)
	for i := 0; i < days; i++ {
		out = append(out, today.AddDate(0, 0, i).Format(dateLayout))
	}
	return out
}

// WithinWindow reports whether date falls in [today, today+days).
func WithinWindow(date time.Time, now time.Time, days int) bool {
	today := startOfDay(now)
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())

	return !day.Before(today) && day.Before(today.AddDate(0, 0, days))
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
