package csdb

import "context"

// Op classifies a change event.
type Op int

const (
	// OpInsert signals a key which has not been present before.
	OpInsert Op = iota
	// OpUpdate signals an overwritten value.
	OpUpdate
)

func (op Op) String() string {
	switch op {
	case OpInsert:
		return "insert"
	case OpUpdate:
		return "update"
	}
	return "unknown"
}

// Event describes a successful modification of a database.
type Event struct {
	Op  Op
	Key string
}

// eventBuffer is the channel capacity of a subscription.
const eventBuffer = 64

// Subscribe returns a channel receiving an Event for every successful Set.
// The channel is closed when ctx is done or the database is closed.
//
// Publishing blocks while a subscriber's buffer is full, therefore
// subscribers have to drain their channel or cancel ctx. Once ctx is done,
// events still in flight for the subscription are discarded.
func (db *DB) Subscribe(ctx context.Context) (<-chan Event, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	if db.closed {
		return nil, ErrClosed
	}
	sub, ok := db.cast.Sub(ctx, eventBuffer)
	if !ok {
		return nil, ErrClosed
	}
	events := make(chan Event, eventBuffer)
	go func() {
		defer close(events)
		for msg := range sub {
			ev, ok := msg.(Event)
			if !ok {
				continue
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				drain(sub)
				return
			case <-db.done:
				drain(sub)
				return
			}
		}
	}()
	return events, nil
}

// drain discards messages until the caster closes sub. The caster delivers
// with a blocking send, so an abandoned subscription would stall publishing.
func drain(sub <-chan interface{}) {
	for range sub {
	}
}
