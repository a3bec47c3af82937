// Package query implements the generic list helper used by collection
// endpoints: free-text search across declared fields, whitelisted
// sorting, and offset pagination with total counts.
package query

import (
	"fmt"
	"math"
	"strings"

	"gorm.io/gorm"
)

const (
	defaultLimit = 10
	// defaultSortField is the fallback when sort_by is absent or not in
	// the sortable whitelist; creation order is the stable default.
	defaultSortField = "created_at"
)

// Options are the request-supplied list parameters.
type Options struct {
	Page      int
	Limit     int
	Search    string
	SortBy    string
	SortOrder string
}

// Pagination describes the slice returned by Apply relative to the full
// filtered result set.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// normalized returns opts with defaults applied.
func (o Options) normalized() Options {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.Limit < 1 {
		o.Limit = defaultLimit
	}
	if o.SortOrder != "desc" {
		o.SortOrder = "asc"
	}
	return o
}

// Apply filters, sorts and paginates the given base query. The base query
// must have its model set (e.g. db.Model(&models.Employee{})). Search is a
// case-insensitive substring match OR'ed across searchable fields; sorting
// only honors fields in the sortable whitelist. The total count is taken
// before slicing, so an out-of-range page yields an empty result with the
// true total. The result reflects the store at call time, not a snapshot.
func Apply[T any](base *gorm.DB, opts Options, searchable, sortable []string) ([]T, Pagination, error) {
	opts = opts.normalized()

	tx := base
	if s := strings.TrimSpace(opts.Search); s != "" && len(searchable) > 0 {
		conds := make([]string, 0, len(searchable))
		args := make([]interface{}, 0, len(searchable))
		pattern := "%" + strings.ToLower(s) + "%"
		for _, field := range searchable {
			conds = append(conds, fmt.Sprintf("LOWER(%s) LIKE ?", field))
			args = append(args, pattern)
		}
		tx = tx.Where(strings.Join(conds, " OR "), args...)
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, Pagination{}, fmt.Errorf("failed to count results: %w", err)
	}

	sortField := defaultSortField
	for _, field := range sortable {
		if field == opts.SortBy {
			sortField = field
			break
		}
	}

	var results []T
	err := tx.Order(sortField + " " + opts.SortOrder).
		Offset((opts.Page - 1) * opts.Limit).
		Limit(opts.Limit).
		Find(&results).Error
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("failed to list results: %w", err)
	}

	return results, Pagination{
		Page:       opts.Page,
		Limit:      opts.Limit,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(opts.Limit))),
	}, nil
}
