package opstate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/minhtranvn/toystore/internal/errs"
)

func TestOperation_ZeroValueIsIdle(t *testing.T) {
	t.Parallel()

	var op Operation[int]
	s := op.Snapshot()
	if s.Status != Idle || s.HasData || s.Err != "" {
		t.Fatalf("zero value: %+v", s)
	}
}

func TestOperation_DispatchPreservesDataClearsError(t *testing.T) {
	t.Parallel()

	var op Operation[[]string]
	tok := op.Begin()
	op.Fulfill(tok, []string{"a", "b"})

	tok = op.Begin()
	op.Reject(tok, errors.New("boom"))
	if s := op.Snapshot(); s.Status != Rejected || s.Err != "boom" {
		t.Fatalf("after reject: %+v", s)
	}

	// refetch: pending again, stale data stays visible, error gone
	op.Begin()
	s := op.Snapshot()
	if s.Status != Pending {
		t.Fatalf("status: want pending, got %v", s.Status)
	}
	if s.Err != "" {
		t.Fatalf("dispatch must clear error, got %q", s.Err)
	}
	if !s.HasData || len(s.Data) != 2 || s.Data[0] != "a" {
		t.Fatalf("dispatch must preserve data, got %+v", s)
	}
}

func TestOperation_RejectLeavesDataUntouched(t *testing.T) {
	t.Parallel()

	var op Operation[int]
	op.Fulfill(op.Begin(), 42)
	op.Reject(op.Begin(), errors.New("down"))

	s := op.Snapshot()
	if s.Status != Rejected || !s.HasData || s.Data != 42 {
		t.Fatalf("reject must keep prior data: %+v", s)
	}
}

func TestOperation_StaleResolutionDiscarded(t *testing.T) {
	t.Parallel()

	var op Operation[string]
	first := op.Begin()
	second := op.Begin()

	if !op.Fulfill(second, "new") {
		t.Fatalf("newest resolution must apply")
	}
	if op.Fulfill(first, "old") {
		t.Fatalf("older resolution must be discarded")
	}
	if s := op.Snapshot(); s.Data != "new" || s.Status != Fulfilled {
		t.Fatalf("last dispatched wins: %+v", s)
	}
}

func TestOperation_EarlyResolutionKeepsPending(t *testing.T) {
	t.Parallel()

	var op Operation[string]
	first := op.Begin()
	op.Begin() // a newer dispatch is still in flight

	if !op.Fulfill(first, "first") {
		t.Fatalf("first resolution is not stale yet")
	}
	s := op.Snapshot()
	if s.Status != Pending {
		t.Fatalf("newer dispatch outstanding, want pending, got %v", s.Status)
	}
	if s.Data != "first" {
		t.Fatalf("interim data should be visible: %+v", s)
	}
}

func TestOperation_FulfillWithConcatenates(t *testing.T) {
	t.Parallel()

	var op Operation[[]int]
	op.Fulfill(op.Begin(), []int{1, 2})

	tok := op.Begin()
	op.FulfillWith(tok, func(prev []int, ok bool) []int {
		if !ok {
			return []int{3}
		}
		return append(prev, 3)
	})

	if s := op.Snapshot(); len(s.Data) != 3 || s.Data[2] != 3 {
		t.Fatalf("load-more must append: %+v", s.Data)
	}
}

func TestOperation_RunMapsDeadlineToTimeout(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()
	<-ctx.Done()

	var op Operation[int]
	_, err := op.Run(ctx, func(ctx context.Context) (int, error) {
		return 0, ctx.Err()
	})
	if !errors.Is(err, errs.ErrTimeout) {
		t.Fatalf("want ErrTimeout, got %v", err)
	}
	if s := op.Snapshot(); s.Status != Rejected || s.Err == "" {
		t.Fatalf("want rejected with message: %+v", s)
	}
}

func TestOperation_Reset(t *testing.T) {
	t.Parallel()

	var op Operation[int]
	op.Fulfill(op.Begin(), 7)
	op.Reset()

	if s := op.Snapshot(); s.Status != Idle || s.HasData {
		t.Fatalf("reset: %+v", s)
	}
}
