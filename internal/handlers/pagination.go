package handlers

import (
	"errors"
	"strconv"
)

func parsePaginationParams(pageStr, limitStr string) (int, int, error) {
	page := 1
	limit := 20

	if pageStr != "" {
		p, err := strconv.Atoi(pageStr)
		if err != nil || p < 1 {
			return 0, 0, errors.New("invalid page")
		}
		page = p
	}

	if limitStr != "" {
		l, err := strconv.Atoi(limitStr)
		if err != nil || l < 1 {
			return 0, 0, errors.New("invalid limit")
		}
		limit = l
	}

	return page, limit, nil
}

// paginate slices an in-memory result set. Sorting happens client-side after
// fetch, so pagination does too.
func paginate[T any](items []T, page, limit int) []T {
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
