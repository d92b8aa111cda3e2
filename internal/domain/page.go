package domain

// PageRequest selects one page of a listing. Page numbers start at 1.
type PageRequest struct {
	Page int
	Size int
}

// Normalize clamps the request to a valid page with the given default and maximum size.
func (p PageRequest) Normalize(defaultSize, maxSize int) PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Size <= 0 {
		p.Size = defaultSize
	}
	if p.Size > maxSize {
		p.Size = maxSize
	}
	return p
}

// Offset returns the number of rows preceding the page.
func (p PageRequest) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Size
}

// Page is one page of a listing plus the total number of matching rows.
type Page[T any] struct {
	Items []T
	Total int
}

// HasNext reports whether another page follows req.
func (p Page[T]) HasNext(req PageRequest) bool {
	return req.Offset()+len(p.Items) < p.Total
}
