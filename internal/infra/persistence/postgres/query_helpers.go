package postgres

import "strings"

// pageOffset converts a 1-based page number into a row offset.
func pageOffset(page, limit int) int {
	if page < 1 {
		page = 1
	}

	return (page - 1) * limit
}

// orderClause builds an ORDER BY fragment from user-supplied sort fields.
// Only columns present in the allow-list are accepted; anything else falls
// back to the given default column, descending.
func orderClause(sortBy, sortOrder string, allowed map[string]string, defaultColumn string) string {
	column, ok := allowed[strings.ToLower(sortBy)]
	if !ok {
		column = defaultColumn
	}

	direction := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		direction = "ASC"
	}

	return column + " " + direction
}
