package appointment

import "github.com/BruksfildServices01/detailing-scheduler/internal/audit"

// Auditor receives audit events; *audit.Dispatcher satisfies it.
type Auditor interface {
	Dispatch(ev audit.Event)
}

// Observer receives booking metrics; *metrics.Metrics satisfies it.
type Observer interface {
	SlotsCalculated()
	BookingCreated(pkg string)
	BookingConflict()
}
