package appointment

// AvailabilityInput is the query behind the booking calendar: which hours of
// Date can take a new appointment of Package.
type AvailabilityInput struct {
	Date    string
	Package string
}

// Interval is a half-open range of hours [Start, End).
type Interval struct {
	Start int
	End   int
}

// Overlaps treats touching intervals as disjoint.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start < o.End && i.End > o.Start
}

// Booked is what the calculator needs to know about an existing appointment.
type Booked struct {
	StartHour int     `json:"start_hour"`
	Package   Package `json:"package"`
}

func (b Booked) Interval() Interval {
	return Interval{Start: b.StartHour, End: b.StartHour + b.Package.DurationHours()}
}

type TimeSlot struct {
	Time      string `json:"time"`
	Hour      int    `json:"hour"`
	Label     string `json:"label"`
	Available bool   `json:"available"`
	Duration  int    `json:"duration"`
}
