package audit

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	ActionAppointmentCreated  = "appointment_created"
	ActionAppointmentConflict = "appointment_conflict"
	ActionContactCreated      = "contact_created"
	ActionMembershipSignup    = "membership_signup"
)

type Event struct {
	Action    string
	Entity    string
	EntityID  *uint
	RequestID string
	Metadata  any
}

// Sink is where the dispatcher worker writes events.
type Sink interface {
	Log(ctx context.Context, ev Event) error
}

type Dispatcher struct {
	sink   Sink
	log    *zap.Logger
	queue  chan Event
	done   chan struct{}
	closer sync.Once

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(sink Sink, log *zap.Logger, size int) *Dispatcher {
	if size <= 0 {
		size = 100
	}

	d := &Dispatcher{
		sink:  sink,
		log:   log,
		queue: make(chan Event, size),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := d.sink.Log(ctx, ev); err != nil {
			d.log.Warn("audit write failed",
				zap.String("action", ev.Action),
				zap.Error(err),
			)
		}
		cancel()
	}
}

// Dispatch never blocks: when the queue is full the event is dropped.
// After Close it drops every event.
func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.log.Warn("audit dispatcher closed, dropping event", zap.String("action", ev.Action))
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event", zap.String("action", ev.Action))
	}
}

// Close stops accepting events and waits for the queue to drain or ctx to
// expire.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.closer.Do(func() {
		d.mu.Lock()
		d.closed = true
		close(d.queue)
		d.mu.Unlock()
	})

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
