package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/minhtranvn/toystore/internal/query"
)

func TestListFlagsParams(t *testing.T) {
	f := listFlags{
		page:     3,
		keyword:  "gỗ",
		sortBy:   "price",
		order:    "asc",
		minPrice: "50000",
		maxAge:   "6",
		featured: true,
	}

	got := f.params()

	minPrice := 50000.0
	maxAge := 6
	want := query.ListParams{
		Page:      3,
		Keyword:   "gỗ",
		SortBy:    query.SortPrice,
		SortOrder: query.Asc,
		MinPrice:  &minPrice,
		MaxAge:    &maxAge,
		Featured:  true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("params mismatch (-want +got):\n%s", diff)
	}
}

func TestListFlagsParamsDropsInvalidNumbers(t *testing.T) {
	f := listFlags{page: 1, minPrice: "abc", maxAge: "six", sortBy: "createdAt", order: "DESC"}
	got := f.params()
	if got.MinPrice != nil {
		t.Fatalf("MinPrice = %v, want nil for invalid input", *got.MinPrice)
	}
	if got.MaxAge != nil {
		t.Fatalf("MaxAge = %v, want nil for invalid input", *got.MaxAge)
	}
}

func TestAgeRange(t *testing.T) {
	three, six := 3, 6
	cases := []struct {
		lo, hi *int
		want   string
	}{
		{&three, &six, "3-6"},
		{&three, nil, "3+"},
		{nil, &six, "up to 6"},
		{nil, nil, "any"},
	}
	for _, c := range cases {
		if got := ageRange(c.lo, c.hi); got != c.want {
			t.Errorf("ageRange(%v, %v) = %q, want %q", c.lo, c.hi, got, c.want)
		}
	}
}
