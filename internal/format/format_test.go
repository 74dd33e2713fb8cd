package format

import "testing"

func TestVND(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   float64
		want string
	}{
		{0, "0 ₫"},
		{950, "950 ₫"},
		{1000, "1.000 ₫"},
		{150000, "150.000 ₫"},
		{1250000, "1.250.000 ₫"},
		{999.6, "1.000 ₫"},
		{-35000, "-35.000 ₫"},
	}
	for _, c := range cases {
		if got := VND(c.in); got != c.want {
			t.Fatalf("VND(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	if got := Truncate("đồ chơi gỗ", 6); got != "đồ ch…" {
		t.Fatalf("rune-safe truncate, got %q", got)
	}
	if got := Truncate("short", 10); got != "short" {
		t.Fatalf("no-op truncate, got %q", got)
	}
	if got := Truncate("abc", 0); got != "" {
		t.Fatalf("max=0, got %q", got)
	}
}

func TestStars(t *testing.T) {
	t.Parallel()

	if got := Stars(4.5); got != "★★★★★" {
		t.Fatalf("4.5 rounds up, got %q", got)
	}
	if got := Stars(3.2); got != "★★★☆☆" {
		t.Fatalf("3.2 rounds down, got %q", got)
	}
	if got := Stars(0); got != "☆☆☆☆☆" {
		t.Fatalf("zero, got %q", got)
	}
}
