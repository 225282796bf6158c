package utils

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/shotaro12223/wisteria-ats-sub001/schemas"
)

const (
	LIST_DEFAULT_LIMIT = 20
	LIST_MAX_LIMIT     = 100
)

// FilterAll keeps the items every predicate accepts, preserving order.
func FilterAll[T any](items []T, preds ...func(T) bool) []T {
	filtered := []T{}
	for _, item := range items {
		ok := true
		for _, pred := range preds {
			if !pred(item) {
				ok = false
				break
			}
		}
		if ok {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// MatchesQuery reports whether any field contains the query as a
// case-insensitive substring. An empty query matches everything.
func MatchesQuery(query string, fields ...string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}

	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// HasAllTags requires every selected tag to be present (intersection
// semantics). No selection matches everything.
func HasAllTags(selected, have []string) bool {
	if len(selected) == 0 {
		return true
	}

	haveSet := make(map[string]bool, len(have))
	for _, tag := range have {
		haveSet[tag] = true
	}

	for _, tag := range selected {
		if !haveSet[tag] {
			return false
		}
	}
	return true
}

// InDateRange is inclusive on both ends; the "to" bound is promoted to
// end-of-day so same-day records are kept. Nil bounds are open.
func InDateRange(t time.Time, from, to *time.Time) bool {
	if from != nil && t.Before(*from) {
		return false
	}
	if to != nil && t.After(EndOfDay(*to)) {
		return false
	}
	return true
}

// SortStableBy returns a sorted copy; ties keep their input order.
func SortStableBy[T any](items []T, less func(a, b T) bool) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})
	return sorted
}

var (
	nameCollator      = collate.New(language.Japanese)
	nameCollatorMutex sync.Mutex
)

// CompareNames is a locale-aware comparison for display names. The collator
// is not safe for concurrent use, hence the lock.
func CompareNames(a, b string) int {
	nameCollatorMutex.Lock()
	defer nameCollatorMutex.Unlock()
	return nameCollator.CompareString(a, b)
}

// ParsePageLimit applies the list defaults: page >= 1, 1 <= limit <= 100.
func ParsePageLimit(pageStr, limitStr string) (int, int) {
	page := 1
	limit := LIST_DEFAULT_LIMIT

	if pageParsed, err := strconv.Atoi(pageStr); err == nil && pageParsed > 0 {
		page = pageParsed
	}
	if limitParsed, err := strconv.Atoi(limitStr); err == nil && limitParsed > 0 {
		if limitParsed > LIST_MAX_LIMIT {
			limit = LIST_MAX_LIMIT
		} else {
			limit = limitParsed
		}
	}

	return page, limit
}

// Paginate slices one page out of items and derives the pagination metadata.
func Paginate[T any](items []T, page, limit int) ([]T, schemas.Pagination) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = LIST_DEFAULT_LIMIT
	}

	totalCount := len(items)
	totalPages := (totalCount + limit - 1) / limit

	start := (page - 1) * limit
	end := start + limit
	if start > totalCount {
		start = totalCount
	}
	if end > totalCount {
		end = totalCount
	}

	pageItems := make([]T, end-start)
	copy(pageItems, items[start:end])

	return pageItems, schemas.Pagination{
		Page:            page,
		Limit:           limit,
		TotalCount:      totalCount,
		TotalPages:      totalPages,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}
}
