package pagination

const (
	DefaultPageNumber = 1
	DefaultPageSize   = 10
	MaxPageSize       = 20
)

// PageRequest carries the client's requested page. Out-of-range values
// are clamped silently rather than rejected.
type PageRequest struct {
	PageNumber int
	PageSize   int
}

// NewPageRequest builds a normalized page request.
func NewPageRequest(pageNumber, pageSize int) PageRequest {
	if pageNumber < 1 {
		pageNumber = DefaultPageNumber
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return PageRequest{PageNumber: pageNumber, PageSize: pageSize}
}

// Offset is the number of rows to skip for the current page.
func (p PageRequest) Offset() int {
	return (p.PageNumber - 1) * p.PageSize
}

func (p PageRequest) Limit() int {
	return p.PageSize
}

// PagedList wraps one page of items with its pagination metadata.
// The data slice is produced by the repository via LIMIT/OFFSET;
// PagedList never re-slices.
type PagedList[T any] struct {
	Items       []T
	TotalCount  int64
	PageSize    int
	CurrentPage int
	TotalPages  int
}

func NewPagedList[T any](items []T, totalCount int64, pageNumber, pageSize int) *PagedList[T] {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((totalCount + int64(pageSize) - 1) / int64(pageSize))
	}
	return &PagedList[T]{
		Items:       items,
		TotalCount:  totalCount,
		PageSize:    pageSize,
		CurrentPage: pageNumber,
		TotalPages:  totalPages,
	}
}

func (p *PagedList[T]) HasPrevious() bool {
	return p.CurrentPage > 1
}

func (p *PagedList[T]) HasNext() bool {
	return p.CurrentPage < p.TotalPages
}

// Meta is the JSON payload of the X-Pagination response header.
type Meta struct {
	TotalCount  int64 `json:"totalCount"`
	PageSize    int   `json:"pageSize"`
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
}

func (p *PagedList[T]) Meta() Meta {
	return Meta{
		TotalCount:  p.TotalCount,
		PageSize:    p.PageSize,
		CurrentPage: p.CurrentPage,
		TotalPages:  p.TotalPages,
	}
}
