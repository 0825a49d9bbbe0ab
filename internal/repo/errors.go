// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file centralizes the error classification the
// service/handler layers depend on.
package repo

import (
	"strings"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// IsConstraintViolation reports whether err was raised by the store for a
// referential or shape-level rejection: foreign-key violation, NOT NULL
// violation, or a syntax-level rejection of the statement. These are the
// failures the API surfaces as "Invalid Inputs" rather than a generic
// bad request.
//
// Both supported drivers expose these only as error text: the pure-Go
// SQLite driver reports "... constraint failed", and the Postgres driver
// embeds the SQLSTATE (23502 not-null, 23503 foreign-key, 42601 syntax).
func IsConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "constraint"):
		return true
	case strings.Contains(msg, "sqlstate 23502"),
		strings.Contains(msg, "sqlstate 23503"),
		strings.Contains(msg, "sqlstate 42601"):
		return true
	case strings.Contains(msg, "syntax error"):
		return true
	}
	return false
}
