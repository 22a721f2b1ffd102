// Package selection holds which record, if any, the user is looking at.
package selection

import (
	"context"
	"sync"
	"time"

	"github.com/AliHaider728/royal-palm-map-clone/internal/records"
	"github.com/AliHaider728/royal-palm-map-clone/internal/utils"
)

type State int

const (
	Idle State = iota
	Selected
)

func (s State) String() string {
	if s == Selected {
		return "selected"
	}
	return "idle"
}

// AnalyticsNotifier is told when a record enters the Selected state.
type AnalyticsNotifier interface {
	RecordViewed(ctx context.Context, rec records.LocationRecord) error
}

// Transition is delivered to subscribers after every state change.
type Transition struct {
	From     State
	To       State
	Previous *records.LocationRecord
	Current  *records.LocationRecord
}

// Observer receives transitions synchronously, in subscription order.
type Observer func(Transition)

// NotifyTimeout bounds a single analytics call.
var NotifyTimeout = 5 * time.Second

// Controller is the Idle / Selected(record) state machine. It is safe for
// concurrent use.
type Controller struct {
	notifier AnalyticsNotifier

	mu          sync.Mutex
	current     *records.LocationRecord
	subscribers []Observer

	inflight sync.WaitGroup
}

// NewController returns an idle controller. notifier may be nil.
func NewController(notifier AnalyticsNotifier) *Controller {
	return &Controller{notifier: notifier}
}

// Subscribe registers fn for every later transition.
func (c *Controller) Subscribe(fn Observer) {
	c.mu.Lock()
	c.subscribers = append(c.subscribers, fn)
	c.mu.Unlock()
}

// Select moves to Selected(rec), from Idle or directly from another
// selection.
func (c *Controller) Select(rec records.LocationRecord) {
	c.mu.Lock()
	prev := c.current
	next := rec
	c.current = &next
	subs := append([]Observer(nil), c.subscribers...)
	c.mu.Unlock()

	from := Idle
	if prev != nil {
		from = Selected
	}
	emit(subs, Transition{From: from, To: Selected, Previous: prev, Current: &next})
	c.notify(next)
}

// Dismiss returns to Idle. Dismissing while idle does nothing.
func (c *Controller) Dismiss() {
	c.mu.Lock()
	prev := c.current
	c.current = nil
	subs := append([]Observer(nil), c.subscribers...)
	c.mu.Unlock()

	if prev == nil {
		return
	}
	emit(subs, Transition{From: Selected, To: Idle, Previous: prev})
}

// Current returns a copy of the selected record, or nil while idle.
func (c *Controller) Current() *records.LocationRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return nil
	}
	cp := *c.current
	return &cp
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return Idle
	}
	return Selected
}

// Wait blocks until every analytics call started so far has returned.
func (c *Controller) Wait() {
	c.inflight.Wait()
}

func (c *Controller) notify(rec records.LocationRecord) {
	if c.notifier == nil {
		return
	}
	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()
		ctx, cancel := context.WithTimeout(context.Background(), NotifyTimeout)
		defer cancel()
		if err := c.notifier.RecordViewed(ctx, rec); err != nil {
			utils.Logger.WithError(err).Warnf("View notification failed for record %s", rec.ID)
		}
	}()
}

func emit(subs []Observer, t Transition) {
	for _, fn := range subs {
		fn(t)
	}
}
