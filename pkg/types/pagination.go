package types

type PageRef struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

type Pagination struct {
	Next *PageRef `json:"next,omitempty"`
	Prev *PageRef `json:"prev,omitempty"`
}

func StartIndex(page, limit int) int {
	return (page - 1) * limit
}

// NewPagination describes where the page starting at (page-1)*limit sits within
// total matching documents.
func NewPagination(page, limit int, total uint64) Pagination {
	p := Pagination{}

	startIndex := StartIndex(page, limit)

	if uint64(startIndex+limit) < total {
		p.Next = &PageRef{Page: page + 1, Limit: limit}
	}

	if startIndex > 0 {
		p.Prev = &PageRef{Page: page - 1, Limit: limit}
	}

	return p
}
