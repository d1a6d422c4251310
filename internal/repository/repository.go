package repository

import (
	"errors"
	"strings"

	mssql "github.com/microsoft/go-mssqldb"
)

// sortColumn resolves the caller-supplied sort key against an allow-list so
// user input never reaches the SQL text. Unknown keys fall back to the
// resource default.
func sortColumn(allowed map[string]string, requested, fallback string) string {
	if col, ok := allowed[strings.ToLower(requested)]; ok {
		return col
	}
	return fallback
}

// orderDirection normalizes the sort direction, anything other than "desc"
// (case-insensitive) sorts ascending.
func orderDirection(direction string) string {
	if strings.EqualFold(direction, "desc") {
		return "DESC"
	}
	return "ASC"
}

// isUniqueViolation reports whether err is the driver's duplicate-key error
// (2627 = unique constraint, 2601 = unique index).
func isUniqueViolation(err error) bool {
	var sqlErr mssql.Error
	if !errors.As(err, &sqlErr) {
		return false
	}
	return sqlErr.Number == 2627 || sqlErr.Number == 2601
}
