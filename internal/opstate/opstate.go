// Package opstate implements the request lifecycle state machine applied
// to every network call: idle -> pending -> fulfilled | rejected.
//
// A dispatch keeps the previous data visible while the refetch is in
// flight, so views show stale content with a loading indicator instead of
// blanking. Each dispatch is tagged with a monotonically increasing
// sequence number and resolutions older than the last applied one are
// discarded, so two in-flight requests can never leave the state holding
// the older response.
package opstate

import (
	"context"
	"errors"
	"sync"

	"github.com/minhtranvn/toystore/internal/errs"
)

// Status is the lifecycle phase of an operation.
type Status int

const (
	Idle Status = iota
	Pending
	Fulfilled
	Rejected
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case Fulfilled:
		return "fulfilled"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Snapshot is a consistent view of an operation for rendering.
type Snapshot[T any] struct {
	Status  Status
	Data    T
	HasData bool
	Err     string
}

// Operation tracks one logical request slot (e.g. "the product listing").
// The zero value is ready to use and starts Idle.
type Operation[T any] struct {
	mu      sync.Mutex
	status  Status
	data    T
	hasData bool
	err     string

	seq     uint64 // last handed-out dispatch token
	applied uint64 // token of the last applied resolution
}

// Begin transitions to Pending, clears the previous error and preserves
// the previous data. It returns the dispatch token that must accompany
// the matching Fulfill or Reject.
func (o *Operation[T]) Begin() uint64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.seq++
	o.status = Pending
	o.err = ""
	return o.seq
}

// Fulfill applies a successful result. A token older than the newest
// applied resolution is discarded and false is returned.
func (o *Operation[T]) Fulfill(token uint64, v T) bool {
	return o.FulfillWith(token, func(T, bool) T { return v })
}

// FulfillWith applies a successful result computed from the previous
// value; list-append operations use it to concatenate instead of replace.
func (o *Operation[T]) FulfillWith(token uint64, merge func(prev T, ok bool) T) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if token <= o.applied {
		return false
	}
	o.applied = token
	o.data = merge(o.data, o.hasData)
	o.hasData = true
	o.err = ""
	if token == o.seq {
		o.status = Fulfilled
	}
	return true
}

// Reject applies a failure, leaving prior data untouched. Stale tokens
// are discarded.
func (o *Operation[T]) Reject(token uint64, err error) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if token <= o.applied {
		return false
	}
	o.applied = token
	o.err = messageOf(err)
	if token == o.seq {
		o.status = Rejected
	}
	return true
}

// Reset returns the operation to Idle and drops data and error. Pending
// dispatches that resolve afterwards are still guarded by their tokens.
func (o *Operation[T]) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	var zero T
	o.status = Idle
	o.data = zero
	o.hasData = false
	o.err = ""
	o.applied = o.seq
}

// Snapshot returns the current state for rendering.
func (o *Operation[T]) Snapshot() Snapshot[T] {
	o.mu.Lock()
	defer o.mu.Unlock()
	return Snapshot[T]{Status: o.status, Data: o.data, HasData: o.hasData, Err: o.err}
}

// Run dispatches fetch through the lifecycle: Begin, then Fulfill or
// Reject with the outcome. A context deadline surfaces as the timeout
// error kind. The fetched value and error are returned to the caller
// unchanged.
func (o *Operation[T]) Run(ctx context.Context, fetch func(context.Context) (T, error)) (T, error) {
	token := o.Begin()
	v, err := fetch(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, errs.ErrTimeout) {
			err = errs.ErrTimeout
		}
		o.Reject(token, err)
		return v, err
	}
	o.Fulfill(token, v)
	return v, nil
}

func messageOf(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
