package contract

import (
	"encoding/json"
	"strconv"
)

const (
	// DefaultLimit applies when a list request carries no limit.
	DefaultLimit = 20
	// MaxLimit caps every list request regardless of caller input.
	MaxLimit = 100
)

// Pagination describes one page of a list response.
//
// Invariant: totalPages == ceil(total/limit); limit never exceeds MaxLimit.
type Pagination struct {
	Page       int `json:"page" validate:"required,min=1"`
	Limit      int `json:"limit" validate:"required,min=1,max=100"`
	Total      int `json:"total" validate:"min=0"`
	TotalPages int `json:"totalPages" validate:"min=0"`
}

// NewPagination derives a consistent descriptor from raw counts. Page and
// limit are normalized the same way NormalizePageQuery does.
func NewPagination(page, limit, total int) Pagination {
	page, limit = clampPage(page), clampLimit(limit)
	if total < 0 {
		total = 0
	}
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: ceilDiv(total, limit),
	}
}

// NormalizePageQuery resolves raw page/limit query values into bounds the
// upstream contract accepts: page >= 1, 1 <= limit <= MaxLimit. Unparseable
// values fall back to the defaults rather than failing the request.
func NormalizePageQuery(rawPage, rawLimit string) (page, limit int) {
	page = 1
	if rawPage != "" {
		if p, err := strconv.Atoi(rawPage); err == nil {
			page = p
		}
	}
	limit = DefaultLimit
	if rawLimit != "" {
		if l, err := strconv.Atoi(rawLimit); err == nil {
			limit = l
		}
	}
	return clampPage(page), clampLimit(limit)
}

// ParsePagination validates an untyped payload against the pagination contract.
func ParsePagination(payload []byte) (*Pagination, error) {
	var p Pagination
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, malformed(contractPagination)
	}
	if err := validate.Struct(p); err != nil {
		return nil, firstViolation(contractPagination, err)
	}
	return &p, nil
}

func clampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func clampLimit(limit int) int {
	switch {
	case limit < 1:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	default:
		return limit
	}
}

func ceilDiv(total, limit int) int {
	if total == 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
