package paginator

// Adjust normalizes the pagination parameters and enforces MaxLimit.
func (p *PaginateQuery) Adjust() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	switch {
	case p.Limit < 1:
		p.Limit = DefaultLimit
	case p.Limit > MaxLimit:
		p.Limit = MaxLimit
	}
}

func (p PaginateQuery) Offset() int {
	return (p.Page - 1) * p.Limit
}

// New builds the metadata for a page holding count items out of total.
func New(q PaginateQuery, total int64, count int) Paginator {
	return Paginator{Total: total, Count: count, PerPage: q.Limit, CurrentPage: q.Page}
}

func (p Paginator) TotalPages() int {
	if p.Total == 0 || p.PerPage == 0 {
		return 0
	}
	per := int64(p.PerPage)
	return int((p.Total + per - 1) / per)
}

func (p Paginator) ToResponse() PaginatorResponse {
	pages := p.TotalPages()
	return PaginatorResponse{
		Total:       p.Total,
		Count:       p.Count,
		PerPage:     p.PerPage,
		CurrentPage: p.CurrentPage,
		TotalPages:  pages,
		HasNext:     p.CurrentPage < pages,
		HasPrev:     p.CurrentPage > 1,
	}
}
