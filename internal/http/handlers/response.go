// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the standard response utilities used across all
// endpoints. Success bodies always wrap the payload under an entity-named
// key ("articles", "article", "comments", ...); error bodies are a
// `{message}` envelope, optionally carrying the request correlation ID.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-news-backend/internal/http/middleware"
)

// ErrorResponse is the standard error envelope returned by all endpoints.
//
// Fields:
//   - RequestID: optional correlation ID, echoed from X-Request-ID, used to
//     correlate server logs with client-side errors.
//   - Message: a human-readable error description, safe for display. The
//     message strings are part of the API contract.
type ErrorResponse struct {
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	Message   string `json:"message" example:"Article Id not found"`
}

// fail aborts the request with the standard error envelope and logs
// server-side (5xx) errors with the request-scoped logger.
func fail(c *gin.Context, status int, msg string) {
	resp := ErrorResponse{
		RequestID: c.Writer.Header().Get("X-Request-ID"),
		Message:   msg,
	}

	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Int("status", status).
			Str("message", msg).
			Msg("api error")
	}

	c.AbortWithStatusJSON(status, resp)
}

// Fail is the exported variant of fail(). External packages (e.g., router
// setup for the NoRoute fallback) call it to return consistent envelopes.
func Fail(c *gin.Context, status int, msg string) { fail(c, status, msg) }

// ok writes a success JSON response.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// bindBody decodes a JSON request body into a loosely typed map so the
// services can enforce the exact-field rules (reject unknown or extra
// fields). UseNumber keeps numeric values as json.Number, which is what
// lets the vote-delta validation tell integers from floats.
//
// On a malformed body it writes a 400 and returns false.
func bindBody(c *gin.Context) (map[string]any, bool) {
	dec := json.NewDecoder(c.Request.Body)
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		fail(c, http.StatusBadRequest, "Bad Request")
		return nil, false
	}
	return m, true
}
