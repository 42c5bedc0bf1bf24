package service

import (
	"fmt"

	"gedstore/internal/repository"
)

// Page is one page of a listing. PageIndex is zero-based.
type Page[T any] struct {
	Items      []T `json:"items"`
	PageIndex  int `json:"page_index"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}

// NewPage cuts page pageIndex out of items. Pages past the end are empty.
func NewPage[T any](items []T, pageIndex, pageSize int) (*Page[T], error) {
	if pageSize <= 0 {
		return nil, fmt.Errorf("page size %d: %w", pageSize, repository.ErrInvalidArgument)
	}
	if pageIndex < 0 {
		return nil, fmt.Errorf("page index %d: %w", pageIndex, repository.ErrInvalidArgument)
	}

	p := &Page[T]{
		Items:      []T{},
		PageIndex:  pageIndex,
		PageSize:   pageSize,
		TotalCount: len(items),
	}
	start := pageIndex * pageSize
	if start >= len(items) {
		return p, nil
	}
	end := min(start+pageSize, len(items))
	p.Items = append(p.Items, items[start:end]...)
	return p, nil
}

// TotalPages returns the number of pages needed for all items
func (p *Page[T]) TotalPages() int {
	return (p.TotalCount + p.PageSize - 1) / p.PageSize
}

// HasNext reports whether a later page holds items
func (p *Page[T]) HasNext() bool {
	return p.PageIndex+1 < p.TotalPages()
}

// HasPrevious reports whether this is not the first page
func (p *Page[T]) HasPrevious() bool {
	return p.PageIndex > 0
}
