package service

import (
	"fmt"
	"strings"
)

// ValidationError lists every violated required field, not just the first.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields, "; ")
}

// MalformedDateError reports a date-valued field that matched none of the
// accepted layouts.
type MalformedDateError struct {
	Field string
	Value string
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("field %s: cannot parse %q as a date", e.Field, e.Value)
}
