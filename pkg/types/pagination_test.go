package types

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/matryer/is"
)

func TestFirstPageOfSeveral(t *testing.T) {
	is := is.New(t)

	p := NewPagination(1, 2, 5)

	is.True(p.Prev == nil)
	is.Equal(*p.Next, PageRef{Page: 2, Limit: 2})
}

func TestMiddlePage(t *testing.T) {
	is := is.New(t)

	p := NewPagination(2, 2, 5)

	is.Equal(*p.Prev, PageRef{Page: 1, Limit: 2})
	is.Equal(*p.Next, PageRef{Page: 3, Limit: 2})
}

func TestLastPage(t *testing.T) {
	is := is.New(t)

	p := NewPagination(3, 2, 5)

	is.Equal(*p.Prev, PageRef{Page: 2, Limit: 2})
	is.True(p.Next == nil)
}

func TestSinglePageHasNoLinks(t *testing.T) {
	is := is.New(t)

	p := NewPagination(1, 25, 25)

	is.True(p.Prev == nil)
	is.True(p.Next == nil)
}

func TestPaginationLinksFollowStartIndex(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("next is present iff more documents follow the page", prop.ForAll(
		func(page, limit, total int) bool {
			p := NewPagination(page, limit, uint64(total))
			hasMore := (page-1)*limit+limit < total
			return (p.Next != nil) == hasMore
		},
		gen.IntRange(1, 50),
		gen.IntRange(1, 100),
		gen.IntRange(0, 5000),
	))

	properties.Property("prev is present iff the page does not start at zero", prop.ForAll(
		func(page, limit, total int) bool {
			p := NewPagination(page, limit, uint64(total))
			return (p.Prev != nil) == (page > 1)
		},
		gen.IntRange(1, 50),
		gen.IntRange(1, 100),
		gen.IntRange(0, 5000),
	))

	properties.Property("links point at adjacent pages with the same limit", prop.ForAll(
		func(page, limit, total int) bool {
			p := NewPagination(page, limit, uint64(total))
			if p.Next != nil && (p.Next.Page != page+1 || p.Next.Limit != limit) {
				return false
			}
			if p.Prev != nil && (p.Prev.Page != page-1 || p.Prev.Limit != limit) {
				return false
			}
			return true
		},
		gen.IntRange(1, 50),
		gen.IntRange(1, 100),
		gen.IntRange(0, 5000),
	))

	properties.TestingRun(t)
}
