// Package paginate slices ordered lists into fixed-size pages and tracks the
// current page for a listing view. It owns no data; callers hand it the item
// count and slice their own lists with Slice.
package paginate

import "fmt"

// PerPage choices offered by the listing UI.
var AllowedPerPage = []int{6, 12, 24, 48}

const DefaultPerPage = 12

// windowSize is the max number of page buttons shown around the current page.
const windowSize = 5

type Pager struct {
	current int
	perPage int
	total   int // item count, not page count

	onNavigate func(page int)
}

func New(perPage int) *Pager {
	p := &Pager{current: 1, perPage: DefaultPerPage}
	if allowedPerPage(perPage) {
		p.perPage = perPage
	}
	return p
}

func (p *Pager) Current() int { return p.current }
func (p *Pager) PerPage() int { return p.perPage }
func (p *Pager) Total() int   { return p.total }

func (p *Pager) TotalPages() int {
	return TotalPages(p.total, p.perPage)
}

func TotalPages(n, perPage int) int {
	if n <= 0 || perPage <= 0 {
		return 0
	}
	return (n + perPage - 1) / perPage
}

// SetTotal records the size of the underlying list. When the list shrinks
// below the current page's start index the current page resets to 1.
func (p *Pager) SetTotal(n int) {
	if n < 0 {
		n = 0
	}
	p.total = n
	if n == 0 || (p.current-1)*p.perPage >= n {
		p.current = 1
	}
}

// SetPerPage switches the page size. Values outside AllowedPerPage are
// rejected. A successful switch always resets the current page to 1.
func (p *Pager) SetPerPage(perPage int) error {
	if !allowedPerPage(perPage) {
		return fmt.Errorf("paginate: per-page %d not in %v", perPage, AllowedPerPage)
	}
	p.perPage = perPage
	p.current = 1
	return nil
}

// GoToPage clamps n into [1, totalPages]. With no pages it is a no-op.
func (p *Pager) GoToPage(n int) {
	tp := p.TotalPages()
	if tp == 0 {
		return
	}
	if n < 1 {
		n = 1
	}
	if n > tp {
		n = tp
	}
	p.current = n
	p.navigated()
}

// Next advances one page; at the last page it is a no-op (no wrap).
func (p *Pager) Next() {
	if p.current >= p.TotalPages() {
		return
	}
	p.current++
	p.navigated()
}

// Prev goes back one page; at the first page it is a no-op.
func (p *Pager) Prev() {
	if p.current <= 1 || p.TotalPages() == 0 {
		return
	}
	p.current--
	p.navigated()
}

// OnNavigate registers a hook fired after an accepted navigation. The
// presentation layer uses it for scroll-to-top.
func (p *Pager) OnNavigate(fn func(page int)) { p.onNavigate = fn }

func (p *Pager) navigated() {
	if p.onNavigate != nil {
		p.onNavigate(p.current)
	}
}

// Slice returns the items of the given 1-indexed page. Out-of-range pages
// yield an empty slice.
func Slice[T any](items []T, page, perPage int) []T {
	if page < 1 || perPage < 1 {
		return nil
	}
	lo := (page - 1) * perPage
	if lo >= len(items) {
		return nil
	}
	hi := lo + perPage
	if hi > len(items) {
		hi = len(items)
	}
	return items[lo:hi]
}

// PageOf returns the half-open index range of page n against the recorded
// total, clamped so callers can slice without bounds checks.
func (p *Pager) PageOf(n int) (lo, hi int) {
	lo = (n - 1) * p.perPage
	if lo < 0 {
		lo = 0
	}
	hi = lo + p.perPage
	if lo > p.total {
		lo = p.total
	}
	if hi > p.total {
		hi = p.total
	}
	return lo, hi
}

// Window is the run of page numbers the pagination bar renders, plus flags
// for the "1 …" and "… N" affordances when the run excludes the ends.
type Window struct {
	Pages       []int
	LeadingGap  bool // window starts after page 1
	TrailingGap bool // window ends before the last page
}

func (p *Pager) Window() Window {
	tp := p.TotalPages()
	if tp == 0 {
		return Window{}
	}

	start := p.current - windowSize/2
	end := start + windowSize - 1
	if start < 1 {
		start = 1
		end = start + windowSize - 1
	}
	if end > tp {
		end = tp
		start = end - windowSize + 1
		if start < 1 {
			start = 1
		}
	}

	pages := make([]int, 0, end-start+1)
	for n := start; n <= end; n++ {
		pages = append(pages, n)
	}
	return Window{
		Pages:       pages,
		LeadingGap:  start > 1,
		TrailingGap: end < tp,
	}
}

func allowedPerPage(n int) bool {
	for _, a := range AllowedPerPage {
		if n == a {
			return true
		}
	}
	return false
}
