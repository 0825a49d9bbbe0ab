// Package services – shared input parsing.
//
// Every id-addressed endpoint applies the same three-way split: a
// non-numeric id is a type-level failure (the raw strconv error is
// propagated for the mapping chain), a negative id is an input-level
// failure (Bad Request), and only well-formed non-negative ids reach the
// store, where a missing row becomes the entity-specific not-found error.
package services

import (
	"encoding/json"
	"strconv"
)

// parseID validates a path id. Non-numeric input returns the raw
// *strconv.NumError; negative input returns ErrBadRequest.
func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	if id < 0 {
		return 0, ErrBadRequest
	}
	return id, nil
}

// voteDelta validates a vote-patch payload: exactly one recognized field,
// inc_votes, holding an integer (possibly negative). Anything else, such as
// a missing field, extra fields, or a non-integer value, is a Bad Request.
//
// The payload must have been decoded with json.Decoder.UseNumber so
// numeric values arrive as json.Number and integer-ness can be checked.
func voteDelta(body map[string]any) (int, error) {
	if len(body) != 1 {
		return 0, ErrBadRequest
	}
	v, ok := body["inc_votes"]
	if !ok {
		return 0, ErrBadRequest
	}
	n, ok := v.(json.Number)
	if !ok {
		return 0, ErrBadRequest
	}
	delta, err := n.Int64()
	if err != nil {
		return 0, ErrBadRequest
	}
	return int(delta), nil
}

// stringField extracts a non-empty string field from a decoded payload.
func stringField(body map[string]any, key string) (string, bool) {
	v, ok := body[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
