// Package hooks wraps client methods with loading, data and error state so
// callers can observe a request while it is in flight.
package hooks

import (
	"context"
	"maps"
	"slices"
	"sync"
)

// Status is the lifecycle stage of a Query.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "idle"
	}
}

// State is a snapshot of a Query.
type State[T any] struct {
	Status Status
	Data   T
	Err    error
}

// Loading reports whether a run is in flight.
func (s State[T]) Loading() bool {
	return s.Status == StatusLoading
}

// Fetcher is the shape of every generated client method.
type Fetcher[Req, Res any] func(ctx context.Context, req Req) (Res, error)

// Query tracks the state of calls made through a Fetcher. Only the most
// recent Run publishes its outcome; results of superseded runs are dropped.
// A Query is safe for concurrent use.
type Query[Req, Res any] struct {
	fetch Fetcher[Req, Res]

	mu        sync.Mutex
	state     State[Res]
	seq       uint64
	nextSubID int
	subs      map[int]func(State[Res])

	pending    []State[Res]
	delivering bool
}

// NewQuery wraps fetch.
func NewQuery[Req, Res any](fetch Fetcher[Req, Res]) *Query[Req, Res] {
	return &Query[Req, Res]{
		fetch: fetch,
		subs:  make(map[int]func(State[Res])),
	}
}

// Run executes the wrapped call and returns its result. The Query state moves
// to loading and then to success or error, unless a newer Run or a Reset
// happened in the meantime.
func (q *Query[Req, Res]) Run(ctx context.Context, req Req) (Res, error) {
	q.mu.Lock()
	q.seq++
	seq := q.seq
	q.state.Status = StatusLoading
	q.state.Err = nil
	q.publishLocked()
	q.mu.Unlock()
	q.deliver()

	data, err := q.fetch(ctx, req)

	q.mu.Lock()
	if seq == q.seq {
		if err != nil {
			var zero Res
			q.state = State[Res]{Status: StatusError, Data: zero, Err: err}
		} else {
			q.state = State[Res]{Status: StatusSuccess, Data: data}
		}
		q.publishLocked()
	}
	q.mu.Unlock()
	q.deliver()

	return data, err
}

// State returns the current snapshot.
func (q *Query[Req, Res]) State() State[Res] {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.state
}

func (q *Query[Req, Res]) Loading() bool {
	return q.State().Loading()
}

func (q *Query[Req, Res]) Err() error {
	return q.State().Err
}

func (q *Query[Req, Res]) Data() Res {
	return q.State().Data
}

// Reset returns the Query to idle and discards the outcome of in-flight runs.
func (q *Query[Req, Res]) Reset() {
	q.mu.Lock()
	q.seq++
	q.state = State[Res]{}
	q.publishLocked()
	q.mu.Unlock()
	q.deliver()
}

// Subscribe registers fn to receive every state transition. Listeners are
// called outside the Query lock, one state at a time and in transition order,
// so they may read the Query or start another Run.
func (q *Query[Req, Res]) Subscribe(fn func(State[Res])) (unsubscribe func()) {
	q.mu.Lock()
	id := q.nextSubID
	q.nextSubID++
	q.subs[id] = fn
	q.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			q.mu.Lock()
			delete(q.subs, id)
			q.mu.Unlock()
		})
	}
}

// publishLocked queues the current state for listeners. q.mu must be held.
func (q *Query[Req, Res]) publishLocked() {
	if len(q.subs) > 0 {
		q.pending = append(q.pending, q.state)
	}
}

// deliver drains the queue unless another call is already draining it. A Run
// started from a listener only queues its states; the outer call delivers them.
func (q *Query[Req, Res]) deliver() {
	q.mu.Lock()
	if q.delivering {
		q.mu.Unlock()
		return
	}
	q.delivering = true
	for len(q.pending) > 0 {
		state := q.pending[0]
		q.pending = q.pending[1:]
		listeners := make([]func(State[Res]), 0, len(q.subs))
		for _, id := range slices.Sorted(maps.Keys(q.subs)) {
			listeners = append(listeners, q.subs[id])
		}
		q.mu.Unlock()

		for _, fn := range listeners {
			fn(state)
		}

		q.mu.Lock()
	}
	q.pending = nil
	q.delivering = false
	q.mu.Unlock()
}
