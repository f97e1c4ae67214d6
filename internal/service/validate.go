package service

import (
	"strings"
	"time"
)

// Accepted date layouts. The original service parsed dates with the process
// locale, which made behavior depend on the host; here the grammar is pinned
// to ISO-8601: a bare calendar date or a full RFC 3339 timestamp.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// parseDate parses a raw date string and normalizes it to UTC.
func parseDate(field, raw string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, &MalformedDateError{Field: field, Value: raw}
}

// requireFields collects the names of all empty required fields into one
// ValidationError so the caller sees every violation at once.
func requireFields(fields map[string]string, order []string) error {
	var errs []string
	for _, name := range order {
		if strings.TrimSpace(fields[name]) == "" {
			errs = append(errs, name+" is required")
		}
	}
	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}
