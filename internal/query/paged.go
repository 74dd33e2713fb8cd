package query

// Paged is the normalized result of any collection endpoint. Items keep
// the server's order; the client never re-sorts and never assumes a
// secondary sort key.
type Paged[T any] struct {
	Items []T
	Page  int
	Pages int
	Total int
}

// Empty reports whether the result carries no items.
func (p Paged[T]) Empty() bool { return len(p.Items) == 0 }

// Normalize resolves pagination metadata the server may have omitted.
// pages == nil means the response had no pages field; it is then derived
// from total and the observed page size, falling back to 1 for a
// non-empty page and 0 for an empty one. Page size is server-owned and
// never hard-coded here.
//
// A server answering a past-the-end request with an earlier page is
// reported as-is: callers render the page actually returned.
func Normalize[T any](items []T, page int, pages *int, total int) Paged[T] {
	if page < 1 {
		page = 1
	}

	var resolved int
	switch {
	case pages != nil && *pages >= 0:
		resolved = *pages
	case total > 0 && len(items) > 0:
		resolved = (total + len(items) - 1) / len(items)
	case len(items) > 0:
		resolved = 1
	default:
		resolved = 0
	}

	if resolved > 0 && page > resolved {
		page = resolved
	}

	return Paged[T]{Items: items, Page: page, Pages: resolved, Total: total}
}
