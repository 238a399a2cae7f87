package restkit

import (
	"context"
	"fmt"
)

// Announcer delivers post-mutation events to subscribers. Subscriptions are
// declared at composition time; publishing is read-only with respect to the
// subscription table, so concurrent publishes are safe once serving starts.
//
// Publish is synchronous: the mutating pipeline stage blocks until every
// subscriber for the (category, event) pair has run. There is no queueing,
// retry, or persistence. A subscriber error is not swallowed; it propagates
// to the publisher and fails the request.
type Announcer struct {
	subs map[string][]EventHandler
}

// NewAnnouncer creates an empty announcer.
func NewAnnouncer() *Announcer {
	return &Announcer{
		subs: make(map[string][]EventHandler),
	}
}

// Subscribe registers fn for events of the given category (resource singular
// name) and event name (EventCreate, EventUpdate, EventDelete). Handlers run
// in subscription order.
func (a *Announcer) Subscribe(category, event string, fn EventHandler) {
	key := subKey(category, event)
	a.subs[key] = append(a.subs[key], fn)
}

// HasSubscribers reports whether any handler is registered for the pair.
// The pipeline uses this for the conditional create/update fire rule.
func (a *Announcer) HasSubscribers(category, event string) bool {
	return len(a.subs[subKey(category, event)]) > 0
}

// Publish delivers e to every subscriber of (e.Category, e.Name), in order.
// Delivery stops at the first handler error, which is returned wrapped in
// ErrSubscriberFailed.
func (a *Announcer) Publish(ctx context.Context, e Event) error {
	for _, fn := range a.subs[subKey(e.Category, e.Name)] {
		if err := fn(ctx, e); err != nil {
			return fmt.Errorf("%w: %s %s: %w", ErrSubscriberFailed, e.Category, e.Name, err)
		}
	}
	return nil
}

func subKey(category, event string) string {
	return category + ":" + event
}
