package paginate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(1, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 3, TotalPages(23, 10))
}

func TestSlice(t *testing.T) {
	items := make([]int, 23)
	for i := range items {
		items[i] = i
	}

	page1 := Slice(items, 1, 10)
	require.Len(t, page1, 10)
	assert.Equal(t, 0, page1[0])
	assert.Equal(t, 9, page1[9])

	page3 := Slice(items, 3, 10)
	require.Len(t, page3, 3)
	assert.Equal(t, []int{20, 21, 22}, page3)

	assert.Empty(t, Slice(items, 4, 10))
	assert.Empty(t, Slice(items, 0, 10))
	assert.Empty(t, Slice([]int{}, 1, 10))
}

func TestSliceCoversEveryItemOnce(t *testing.T) {
	for _, n := range []int{0, 1, 5, 12, 23, 48, 49, 100} {
		items := make([]int, n)
		per := 12
		total := 0
		for page := 1; page <= TotalPages(n, per); page++ {
			total += len(Slice(items, page, per))
		}
		assert.Equal(t, n, total, "n=%d", n)
	}
}

func TestGoToPageClamps(t *testing.T) {
	p := New(12)
	p.SetTotal(30) // 3 pages

	p.GoToPage(99)
	assert.Equal(t, 3, p.Current())

	p.GoToPage(-5)
	assert.Equal(t, 1, p.Current())

	p.GoToPage(2)
	assert.Equal(t, 2, p.Current())
}

func TestGoToPageEmptyListIsNoop(t *testing.T) {
	p := New(12)
	p.SetTotal(0)
	p.GoToPage(2)
	assert.Equal(t, 1, p.Current())
	assert.Equal(t, 0, p.TotalPages())
}

func TestNextPrevBoundaries(t *testing.T) {
	p := New(12)
	p.SetTotal(30)

	p.Prev()
	assert.Equal(t, 1, p.Current(), "prev at first page must not wrap")

	p.GoToPage(3)
	p.Next()
	assert.Equal(t, 3, p.Current(), "next at last page must not wrap")

	p.Prev()
	assert.Equal(t, 2, p.Current())
	p.Next()
	assert.Equal(t, 3, p.Current())
}

func TestSetPerPageResetsCurrent(t *testing.T) {
	p := New(12)
	p.SetTotal(100)
	p.GoToPage(4)

	require.NoError(t, p.SetPerPage(24))
	assert.Equal(t, 1, p.Current())
	assert.Equal(t, 24, p.PerPage())

	err := p.SetPerPage(7)
	require.Error(t, err)
	assert.Equal(t, 24, p.PerPage())
}

func TestSetTotalShrinkResets(t *testing.T) {
	p := New(12)
	p.SetTotal(100)
	p.GoToPage(5)

	// shrink below the current page's start index
	p.SetTotal(20)
	assert.Equal(t, 1, p.Current())

	// shrink that still covers the current page keeps it
	p.GoToPage(2)
	p.SetTotal(15)
	assert.Equal(t, 2, p.Current())
}

func TestOnNavigate(t *testing.T) {
	p := New(12)
	p.SetTotal(60)

	var fired []int
	p.OnNavigate(func(page int) { fired = append(fired, page) })

	p.GoToPage(3)
	p.Next()
	p.GoToPage(5)
	p.Next() // boundary no-op, no event
	p.Prev()

	assert.Equal(t, []int{3, 4, 5, 4}, fired)
}

func TestWindow(t *testing.T) {
	p := New(12)
	p.SetTotal(12 * 20) // 20 pages

	w := p.Window()
	assert.Equal(t, []int{1, 2, 3, 4, 5}, w.Pages)
	assert.False(t, w.LeadingGap)
	assert.True(t, w.TrailingGap)

	p.GoToPage(10)
	w = p.Window()
	assert.Equal(t, []int{8, 9, 10, 11, 12}, w.Pages)
	assert.True(t, w.LeadingGap)
	assert.True(t, w.TrailingGap)

	p.GoToPage(20)
	w = p.Window()
	assert.Equal(t, []int{16, 17, 18, 19, 20}, w.Pages)
	assert.True(t, w.LeadingGap)
	assert.False(t, w.TrailingGap)
}

func TestWindowFewPages(t *testing.T) {
	p := New(12)
	p.SetTotal(30) // 3 pages

	w := p.Window()
	assert.Equal(t, []int{1, 2, 3}, w.Pages)
	assert.False(t, w.LeadingGap)
	assert.False(t, w.TrailingGap)

	p.SetTotal(0)
	assert.Empty(t, p.Window().Pages)
}

func TestPageOfClampsBelowFirstPage(t *testing.T) {
	p := New(12)
	p.SetTotal(10)

	lo, hi := p.PageOf(0)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 10, hi)

	lo, hi = p.PageOf(-3)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 10, hi)
}
