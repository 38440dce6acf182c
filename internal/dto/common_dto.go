package dto

const (
	DefaultPageNumber = 0
	DefaultPageSize   = 20
)

// PageQuery holds the zero-based page/size query parameters.
type PageQuery struct {
	Page int `form:"page" binding:"omitempty,min=0"`
	Size int `form:"size" binding:"omitempty,min=1"`
}

// Normalized returns the query with storage defaults applied for
// omitted parameters.
func (q PageQuery) Normalized() PageQuery {
	if q.Size <= 0 {
		q.Size = DefaultPageSize
	}
	if q.Page < 0 {
		q.Page = DefaultPageNumber
	}
	return q
}

func (q PageQuery) Offset() int {
	return q.Page * q.Size
}

// PageResponse carries one page of results. NumberOfElements is the count
// actually returned, not the total across all pages.
type PageResponse[T any] struct {
	Content          []T `json:"content"`
	Number           int `json:"number"`
	Size             int `json:"size"`
	NumberOfElements int `json:"numberOfElements"`
}

func NewPageResponse[T any](content []T, query PageQuery) *PageResponse[T] {
	if content == nil {
		content = []T{}
	}
	return &PageResponse[T]{
		Content:          content,
		Number:           query.Page,
		Size:             query.Size,
		NumberOfElements: len(content),
	}
}
