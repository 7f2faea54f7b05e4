// Package pagination holds the offset/limit window math shared by every
// listable collection.
package pagination

import (
	"strconv"

	"playtube.com/pkg/constants"
)

// Page coerces the textual page query parameter. Non-numeric or
// non-positive input falls back to the first page rather than failing
// the request.
func Page(raw string) int64 {
	page, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || page <= 0 {
		return constants.DefaultPage
	}
	return page
}

// Limit coerces the textual limit query parameter, falling back to the
// default page size. No upper bound is enforced.
func Limit(raw string) int64 {
	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || limit <= 0 {
		return constants.DefaultLimit
	}
	return limit
}

func Offset(page, limit int64) int64 {
	return (page - 1) * limit
}

// TotalPages is ceil(total/limit). A page beyond this yields an empty
// result set, not an error.
func TotalPages(total, limit int64) int64 {
	if limit <= 0 {
		limit = constants.DefaultLimit
	}
	return (total + limit - 1) / limit
}
