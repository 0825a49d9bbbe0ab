// Package services defines the business logic for topics, articles,
// comments, and users. This file centralizes the domain failure type and
// the enumerated failures service methods return, so handlers can map them
// to HTTP results consistently.
//
// Operations never panic or throw: every predictable failure is one of the
// values below (an explicit status+message pair), and everything else is a
// raw store error left for the handler-level mapping chain to classify.
package services

import "net/http"

// AppError is a domain failure carrying the exact HTTP status and message
// the API must emit. The error-mapping chain emits matching AppErrors
// verbatim, ahead of any other classification.
type AppError struct {
	Status  int
	Message string
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Enumerated failures. Messages are part of the public API contract and
// asserted by clients; do not reword them.
var (
	// ErrBadRequest covers malformed ids, malformed payload shapes, and
	// invalid field values.
	ErrBadRequest = &AppError{Status: http.StatusBadRequest, Message: "Bad Request"}

	// ErrInvalidSort / ErrInvalidOrder reject listing parameters outside
	// the whitelists.
	ErrInvalidSort  = &AppError{Status: http.StatusBadRequest, Message: "Invalid sort_by query"}
	ErrInvalidOrder = &AppError{Status: http.StatusBadRequest, Message: "Invalid order_by query"}

	// Entity-specific not-found failures for well-formed identifiers with
	// no matching row.
	ErrArticleNotFound = &AppError{Status: http.StatusNotFound, Message: "Article Id not found"}
	ErrCommentNotFound = &AppError{Status: http.StatusNotFound, Message: "Comment Id not found"}
	ErrUserNotFound    = &AppError{Status: http.StatusNotFound, Message: "Username not found"}

	// Listing-filter existence failures: the filter value itself names
	// nothing in the store.
	ErrTopicNotFound  = &AppError{Status: http.StatusNotFound, Message: "Topic Not Found"}
	ErrAuthorNotFound = &AppError{Status: http.StatusNotFound, Message: "Author Not Found"}

	// ErrSearchNotFound is returned when a title search matches nothing.
	// Deliberate product decision: an empty search is an error, while an
	// empty filtered listing is a success.
	ErrSearchNotFound = &AppError{Status: http.StatusNotFound, Message: "Not Found"}
)
