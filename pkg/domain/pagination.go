package domain

import (
	"fmt"
)

// PageOptions defines limit/offset pagination for list responses
type PageOptions struct {
	Limit    int `json:"limit,omitempty"` // 0 means no limit
	Offset   int `json:"offset,omitempty"`
	MaxLimit int `json:"max_limit,omitempty"`
}

// PageResult contains a page of records plus pagination metadata
type PageResult struct {
	Records []Record `json:"records"`
	Total   int      `json:"total"`
	HasNext bool     `json:"has_next"`
	HasPrev bool     `json:"has_prev"`
}

// DefaultPageOptions returns default pagination settings
func DefaultPageOptions() *PageOptions {
	return &PageOptions{
		Limit:    0,
		MaxLimit: 1000,
	}
}

// Validate validates pagination options
func (po *PageOptions) Validate() error {
	if po.Limit < 0 {
		return fmt.Errorf("limit cannot be negative")
	}
	if po.Offset < 0 {
		return fmt.Errorf("offset cannot be negative")
	}
	if po.MaxLimit > 0 && po.Limit > po.MaxLimit {
		return fmt.Errorf("limit %d exceeds maximum %d", po.Limit, po.MaxLimit)
	}
	return nil
}

// Apply slices records according to the options. The input is not modified.
func (po *PageOptions) Apply(records []Record) PageResult {
	total := len(records)
	start := po.Offset
	if start > total {
		start = total
	}
	end := total
	if po.Limit > 0 && start+po.Limit < total {
		end = start + po.Limit
	}

	page := make([]Record, end-start)
	copy(page, records[start:end])

	return PageResult{
		Records: page,
		Total:   total,
		HasNext: end < total,
		HasPrev: start > 0,
	}
}
