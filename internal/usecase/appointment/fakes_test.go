package appointment

import (
	"context"
	"sync"

	"github.com/BruksfildServices01/detailing-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/detailing-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/detailing-scheduler/internal/models"
)

// memRepo serialises writes with a mutex, the way the advisory lock does in
// PostgreSQL.
type memRepo struct {
	mu      sync.Mutex
	apps    []models.Appointment
	nextID  uint
	listErr error
	saveErr error
	lists   int

	// onList runs before the day is read, as a concurrent writer would.
	onList func()
}

func (r *memRepo) ListAppointmentsForDate(_ context.Context, date string) ([]models.Appointment, error) {
	if r.onList != nil {
		r.onList()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.lists++
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.forDate(date), nil
}

func (r *memRepo) ListAllAppointments(context.Context) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.listErr != nil {
		return nil, r.listErr
	}
	return append([]models.Appointment(nil), r.apps...), nil
}

func (r *memRepo) CreateAppointmentIfFree(
	_ context.Context,
	ap *models.Appointment,
	assertFree func([]models.Appointment) error,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := assertFree(r.forDate(ap.Date)); err != nil {
		return err
	}
	if r.saveErr != nil {
		return r.saveErr
	}

	r.nextID++
	ap.ID = r.nextID
	r.apps = append(r.apps, *ap)
	return nil
}

func (r *memRepo) forDate(date string) []models.Appointment {
	var out []models.Appointment
	for _, ap := range r.apps {
		if ap.Date == date {
			out = append(out, ap)
		}
	}
	return out
}

func (r *memRepo) seed(date string, start int, pkg domain.Package) {
	r.nextID++
	r.apps = append(r.apps, models.Appointment{
		ID:            r.nextID,
		Date:          date,
		StartHour:     start,
		TimeSlot:      domain.FormatTimeSlot(start),
		Package:       pkg.String(),
		DurationHours: pkg.DurationHours(),
	})
}

type memCache struct {
	mu          sync.Mutex
	days        map[string][]domain.Booked
	versions    map[string]int64
	invalidated []string
}

func newMemCache() *memCache {
	return &memCache{days: map[string][]domain.Booked{}, versions: map[string]int64{}}
}

func (c *memCache) Version(_ context.Context, date string) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.versions[date]
}

func (c *memCache) Get(_ context.Context, date string) ([]domain.Booked, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.days[date]
	return b, ok
}

func (c *memCache) Set(_ context.Context, date string, version int64, booked []domain.Booked) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if version < 0 || c.versions[date] != version {
		return
	}
	c.days[date] = booked
}

func (c *memCache) Invalidate(_ context.Context, date string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.days, date)
	c.versions[date]++
	c.invalidated = append(c.invalidated, date)
}

type recordingAuditor struct {
	mu     sync.Mutex
	events []audit.Event
}

func (a *recordingAuditor) Dispatch(ev audit.Event) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, ev)
}

func (a *recordingAuditor) actions() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, 0, len(a.events))
	for _, ev := range a.events {
		out = append(out, ev.Action)
	}
	return out
}

type countingObserver struct {
	mu           sync.Mutex
	calculations int
	created      map[string]int
	conflicts    int
}

func newCountingObserver() *countingObserver {
	return &countingObserver{created: map[string]int{}}
}

func (o *countingObserver) SlotsCalculated() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calculations++
}

func (o *countingObserver) BookingCreated(pkg string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.created[pkg]++
}

func (o *countingObserver) BookingConflict() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.conflicts++
}
