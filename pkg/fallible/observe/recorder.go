package observe

import (
	"sync"
	"time"

	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/ib-77/fallible/pkg/fallible"
)

// Clock is the part of quartz.Clock the recorder needs.
type Clock interface {
	Now(tags ...string) time.Time
}

// Event is one observed failure.
type Event struct {
	ID  uuid.UUID
	At  time.Time
	Err error
}

// Recorder keeps every observed failure in arrival order.
type Recorder struct {
	mu     sync.Mutex
	clock  Clock
	events []Event
}

type Option func(*Recorder)

func WithClock(clock Clock) Option {
	return func(r *Recorder) {
		r.clock = clock
	}
}

func NewRecorder(opts ...Option) *Recorder {
	r := &Recorder{clock: quartz.NewReal()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Observer returns the recorder as a fallible.Observer.
func (r *Recorder) Observer() fallible.Observer {
	return r.Record
}

func (r *Recorder) Record(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{
		ID:  uuid.New(),
		At:  r.clock.Now("observe", "record").UTC(),
		Err: err,
	})
}

func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

func (r *Recorder) Errors() []error {
	events := r.Events()
	out := make([]error, len(events))
	for i, e := range events {
		out[i] = e.Err
	}
	return out
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
