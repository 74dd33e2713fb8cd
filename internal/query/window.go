package query

// Window is the numbered-pager control rendered under a listing. A zero
// Window (Pages == nil) means no pager is shown at all.
type Window struct {
	Pages []int // consecutive page numbers inside the window
	Start int
	End   int

	ShowFirst   bool // page 1 lies outside the window
	ShowLast    bool // last page lies outside the window
	LeadingGap  bool // ellipsis between 1 and the window
	TrailingGap bool // ellipsis between the window and the last page

	Current int
	Total   int

	HasPrev bool
	HasNext bool
}

// DefaultWindowSize is the number of page links shown at once.
const DefaultWindowSize = 5

// NewWindow computes the pager window for the current page. With one page
// or fewer there is nothing to page through and the zero Window is
// returned.
func NewWindow(page, pages, w int) Window {
	if pages <= 1 {
		return Window{}
	}
	if w < 1 {
		w = DefaultWindowSize
	}
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}

	start := page - w/2
	if start < 1 {
		start = 1
	}
	end := start + w - 1
	if end > pages {
		end = pages
	}
	if end-start+1 < w {
		start = end - w + 1
		if start < 1 {
			start = 1
		}
	}

	nums := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		nums = append(nums, i)
	}

	return Window{
		Pages:       nums,
		Start:       start,
		End:         end,
		ShowFirst:   start > 1,
		ShowLast:    end < pages,
		LeadingGap:  start > 2,
		TrailingGap: end < pages-1,
		Current:     page,
		Total:       pages,
		HasPrev:     page > 1,
		HasNext:     page < pages,
	}
}
