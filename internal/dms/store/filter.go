package store

import "strings"

// ListParams 列表查询参数
type ListParams struct {
	Keyword string
	Status  string
	Page    int
	Size    int
}

// Filter returns the records where any search field contains query, ignoring
// case. An empty query returns every record in the original order.
func Filter[T any](items []T, query string, fields func(T) []string) []T {
	out := make([]T, 0, len(items))
	if query == "" {
		return append(out, items...)
	}
	q := strings.ToLower(query)
	for _, item := range items {
		for _, f := range fields(item) {
			if strings.Contains(strings.ToLower(f), q) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// FilterStatus keeps records whose status equals status; empty keeps all.
func FilterStatus[T interface{ StatusValue() string }](items []T, status string) []T {
	if status == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if item.StatusValue() == status {
			out = append(out, item)
		}
	}
	return out
}

// Paginate slices items to the requested page. size <= 0 returns everything.
func Paginate[T any](items []T, page, size int) []T {
	if size <= 0 {
		return items
	}
	if page <= 0 {
		page = 1
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
