// Package validation runs declarative per-field checks in declaration
// order and keeps only the first failure, so every handler returns a
// single localized message for the first bad field.
package validation

import "regexp"

type FieldError struct {
	Field   string
	Message string
}

type Chain struct {
	failure *FieldError
}

func New() *Chain {
	return &Chain{}
}

// Require fails when value is empty.
func (c *Chain) Require(field, value, message string) *Chain {
	if c.failure == nil && value == "" {
		c.failure = &FieldError{Field: field, Message: message}
	}
	return c
}

// Match fails when value does not match the pattern.
func (c *Chain) Match(field, value string, pattern *regexp.Regexp, message string) *Chain {
	if c.failure == nil && !pattern.MatchString(value) {
		c.failure = &FieldError{Field: field, Message: message}
	}
	return c
}

// Present fails when ok is false. Used for non-string body fields where
// "required" means the key was present in the JSON at all.
func (c *Chain) Present(field string, ok bool, message string) *Chain {
	if c.failure == nil && !ok {
		c.failure = &FieldError{Field: field, Message: message}
	}
	return c
}

// First returns the first failed check, or nil when everything passed.
func (c *Chain) First() *FieldError {
	return c.failure
}
