// Error-mapping chain.
//
// Every domain operation returns a typed result: either a *services.AppError
// carrying the exact status and message to emit, or a raw error from the
// store or input parsing. respondError walks an ordered list of
// predicate+responder pairs and the first match produces the HTTP response:
//
//  1. *services.AppError            -> emitted verbatim
//  2. malformed-input-type signal   -> 400 "Bad Request"
//  3. constraint/referential signal -> 400 "Invalid Inputs"
//  4. (unmatched routes never reach here; the router's NoRoute fallback
//     emits 404 "Route Not Found")
//  5. anything else                 -> 500 "Internal Server Error", logged
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-news-backend/internal/http/middleware"
	"github.com/tbourn/go-news-backend/internal/repo"
	"github.com/tbourn/go-news-backend/internal/services"
)

// errorMapper pairs a predicate with the responder that handles matching
// failures. Later mappers are skipped once one matches.
type errorMapper struct {
	matches func(error) bool
	respond func(*gin.Context, error)
}

var errorChain = []errorMapper{
	{
		// Domain failures carry their own status and message.
		matches: func(err error) bool {
			var ae *services.AppError
			return errors.As(err, &ae)
		},
		respond: func(c *gin.Context, err error) {
			var ae *services.AppError
			errors.As(err, &ae)
			fail(c, ae.Status, ae.Message)
		},
	},
	{
		// Type-coercion failures: a path or query value that should have
		// been numeric was not.
		matches: func(err error) bool {
			var ne *strconv.NumError
			return errors.As(err, &ne)
		},
		respond: func(c *gin.Context, _ error) {
			fail(c, http.StatusBadRequest, "Bad Request")
		},
	},
	{
		// Store-level referential/shape rejections (FK violation, NOT NULL,
		// syntax) get the distinguished message.
		matches: repo.IsConstraintViolation,
		respond: func(c *gin.Context, _ error) {
			fail(c, http.StatusBadRequest, "Invalid Inputs")
		},
	},
}

// respondError classifies err through the chain; unclassified failures are
// logged for operator visibility and surface as a generic 500 that never
// leaks internal detail.
func respondError(c *gin.Context, err error) {
	for _, m := range errorChain {
		if m.matches(err) {
			m.respond(c, err)
			return
		}
	}
	lg := middleware.LoggerFrom(c)
	lg.Error().Err(err).Msg("unclassified error")
	fail(c, http.StatusInternalServerError, "Internal Server Error")
}
