// Package utils provides small, generic helper functions used across
// different layers of the application. These utilities are independent
// of domain or business logic.
//
// This file holds the pure validation predicates applied to user-supplied
// identifiers and URIs. Each predicate returns a boolean and never errors;
// empty input is always invalid.
package utils

import (
	"net/url"
	"regexp"
)

// usernameRE: starts with a letter, then alphanumerics/underscores, and
// never ends with an underscore. A single letter is valid.
var usernameRE = regexp.MustCompile(`^[A-Za-z](?:[A-Za-z0-9_]*[A-Za-z0-9])?$`)

// nameRE: display names are letters only.
var nameRE = regexp.MustCompile(`^[A-Za-z]+$`)

// IsValidUsername reports whether s is an acceptable username: non-empty,
// begins with a letter, contains only letters, digits, and underscores,
// and does not begin or end with an underscore.
func IsValidUsername(s string) bool {
	return usernameRE.MatchString(s)
}

// IsValidName reports whether s is an acceptable display name
// (non-empty, letters only).
func IsValidName(s string) bool {
	return nameRE.MatchString(s)
}

// IsValidURI reports whether s is a syntactically well-formed absolute URI
// with at least a scheme and an authority. Empty input is invalid.
func IsValidURI(s string) bool {
	if s == "" {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
