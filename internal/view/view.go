package view

import (
	"strconv"

	"github.com/himanshu-suthar-simform/skillswap/internal/errs"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// PageFromQuery parses 1-based page/page_size query values with the
// standard defaults and cap.
func PageFromQuery(pageStr, sizeStr string) (int, int) {
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = 1
	}
	size, err := strconv.Atoi(sizeStr)
	if err != nil || size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return page, size
}

// Response is the common envelope for all API responses.
type Response[T any] struct {
	Data    T                   `json:"data,omitempty"`
	Error   string              `json:"error,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
	Message string              `json:"message,omitempty"`
}

// CreateResponse builds the envelope. Field-level messages are pulled
// out of validation errors so clients receive {field: [messages]}.
func CreateResponse[T any](data T, err error, message string) Response[T] {
	resp := Response[T]{
		Data:    data,
		Message: message,
	}
	if err != nil {
		resp.Error = err.Error()
		resp.Errors = errs.FieldErrors(err)
	}
	return resp
}

// MessageResponse and ErrorResponse exist for swagger annotations.
type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error  string              `json:"error"`
	Errors map[string][]string `json:"errors,omitempty"`
}

// PagedResponse wraps list results with the pagination envelope.
type PagedResponse[T any] struct {
	Count       int64 `json:"count"`
	TotalPages  int64 `json:"total_pages"`
	CurrentPage int   `json:"current_page"`
	PageSize    int   `json:"page_size"`
	Results     []T   `json:"results"`
}

func CreatePagedResponse[T any](results []T, count int64, page, pageSize int) PagedResponse[T] {
	totalPages := count / int64(pageSize)
	if count%int64(pageSize) != 0 {
		totalPages++
	}
	if results == nil {
		results = []T{}
	}
	return PagedResponse[T]{
		Count:       count,
		TotalPages:  totalPages,
		CurrentPage: page,
		PageSize:    pageSize,
		Results:     results,
	}
}
