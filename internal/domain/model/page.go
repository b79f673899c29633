package model

// Page is a slice of results plus the pagination metadata of the full result set.
type Page[T any] struct {
	Content          []T   `json:"content"`
	Number           int   `json:"number"`
	Size             int   `json:"size"`
	TotalElements    int64 `json:"totalElements"`
	TotalPages       int   `json:"totalPages"`
	NumberOfElements int   `json:"numberOfElements"`
	First            bool  `json:"first"`
	Last             bool  `json:"last"`
}

// NewPage builds a page. number is zero based; a nil content is rendered as an empty list.
func NewPage[T any](content []T, number int, size int, totalElements int64) *Page[T] {
	if content == nil {
		content = []T{}
	}
	totalPages := 0
	if size > 0 && totalElements > 0 {
		totalPages = int((totalElements + int64(size) - 1) / int64(size))
	}

	return &Page[T]{
		Content:          content,
		Number:           number,
		Size:             size,
		TotalElements:    totalElements,
		TotalPages:       totalPages,
		NumberOfElements: len(content),
		First:            number == 0,
		Last:             number >= totalPages-1,
	}
}

// Offset returns the row offset of a zero based page.
func Offset(page, size int) int {
	if page < 0 || size < 0 {
		return 0
	}
	return page * size
}
