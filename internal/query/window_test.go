package query

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewWindow_FirstPage(t *testing.T) {
	t.Parallel()

	w := NewWindow(1, 20, 5)
	if diff := cmp.Diff([]int{1, 2, 3, 4, 5}, w.Pages); diff != "" {
		t.Fatalf("window (-want +got):\n%s", diff)
	}
	if w.ShowFirst || w.LeadingGap {
		t.Fatalf("page 1 inside window, no leading link/ellipsis: %+v", w)
	}
	if !w.ShowLast || !w.TrailingGap {
		t.Fatalf("want trailing ellipsis + last link: %+v", w)
	}
	if w.HasPrev || !w.HasNext {
		t.Fatalf("first page: prev disabled, next enabled: %+v", w)
	}
}

func TestNewWindow_LastPage(t *testing.T) {
	t.Parallel()

	w := NewWindow(20, 20, 5)
	if diff := cmp.Diff([]int{16, 17, 18, 19, 20}, w.Pages); diff != "" {
		t.Fatalf("window (-want +got):\n%s", diff)
	}
	if !w.ShowFirst || !w.LeadingGap {
		t.Fatalf("want leading ellipsis + first link: %+v", w)
	}
	if w.ShowLast || w.TrailingGap {
		t.Fatalf("last page inside window: %+v", w)
	}
	if !w.HasPrev || w.HasNext {
		t.Fatalf("last page: prev enabled, next disabled: %+v", w)
	}
}

func TestNewWindow_MiddleIsCentered(t *testing.T) {
	t.Parallel()

	w := NewWindow(10, 20, 5)
	if diff := cmp.Diff([]int{8, 9, 10, 11, 12}, w.Pages); diff != "" {
		t.Fatalf("window (-want +got):\n%s", diff)
	}
}

func TestNewWindow_AdjacentEdgeHasNoEllipsis(t *testing.T) {
	t.Parallel()

	// window [2..6]: page 1 is adjacent, link but no ellipsis
	w := NewWindow(4, 20, 5)
	if w.Start != 2 {
		t.Fatalf("start: want 2, got %d", w.Start)
	}
	if !w.ShowFirst || w.LeadingGap {
		t.Fatalf("adjacent first page: link without ellipsis: %+v", w)
	}
}

func TestNewWindow_SinglePageRendersNothing(t *testing.T) {
	t.Parallel()

	for _, pages := range []int{0, 1} {
		if w := NewWindow(1, pages, 5); w.Pages != nil {
			t.Fatalf("pages=%d: want no pager, got %+v", pages, w)
		}
	}
}

func TestNewWindow_FewerPagesThanWindow(t *testing.T) {
	t.Parallel()

	w := NewWindow(2, 3, 5)
	if diff := cmp.Diff([]int{1, 2, 3}, w.Pages); diff != "" {
		t.Fatalf("window (-want +got):\n%s", diff)
	}
	if w.ShowFirst || w.ShowLast {
		t.Fatalf("everything fits, no edge links: %+v", w)
	}
}
