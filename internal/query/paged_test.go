package query

import "testing"

func TestNormalize_ServerMetadataWins(t *testing.T) {
	t.Parallel()

	pages := 4
	p := Normalize([]string{"a", "b"}, 2, &pages, 26)
	if p.Page != 2 || p.Pages != 4 || p.Total != 26 || len(p.Items) != 2 {
		t.Fatalf("unexpected result: %+v", p)
	}
}

func TestNormalize_DerivesPagesFromTotal(t *testing.T) {
	t.Parallel()

	// pages omitted, 8 items visible, 26 matching overall -> ceil(26/8) = 4
	p := Normalize(make([]int, 8), 1, nil, 26)
	if p.Pages != 4 {
		t.Fatalf("pages: want 4, got %d", p.Pages)
	}
}

func TestNormalize_FallbackWithoutTotal(t *testing.T) {
	t.Parallel()

	if p := Normalize([]int{1, 2, 3}, 1, nil, 0); p.Pages != 1 {
		t.Fatalf("non-empty page: want pages=1, got %d", p.Pages)
	}
	if p := Normalize([]int{}, 1, nil, 0); p.Pages != 0 {
		t.Fatalf("empty page: want pages=0, got %d", p.Pages)
	}
}

func TestNormalize_PastTheEndRequest(t *testing.T) {
	t.Parallel()

	// Requested page 2 but only one page matches; the server answers with
	// page 1. The result reports what was actually returned.
	pages := 1
	p := Normalize([]string{"x", "y", "z"}, 1, &pages, 3)
	if p.Page != 1 || p.Pages != 1 {
		t.Fatalf("want page=1 pages=1, got page=%d pages=%d", p.Page, p.Pages)
	}

	// A server echoing the out-of-range request still yields a renderable
	// result: page is clamped to the last page.
	p = Normalize([]string{"x"}, 7, &pages, 3)
	if p.Page != 1 {
		t.Fatalf("clamp: want page=1, got %d", p.Page)
	}
}

func TestNormalize_PageInvariant(t *testing.T) {
	t.Parallel()

	pages := 0
	p := Normalize([]int{}, 0, &pages, 0)
	if p.Page != 1 || p.Pages != 0 {
		t.Fatalf("empty collection: got %+v", p)
	}
	if !p.Empty() {
		t.Fatalf("want empty")
	}
}
