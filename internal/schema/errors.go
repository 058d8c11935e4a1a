package schema

import (
	"fmt"
	"sort"
	"strings"
)

// Validation messages shared by the input schemas.
const (
	msgRequired     = "This field is required."
	msgInvalidEmail = "Enter a valid email address."
)

func msgMaxLength(limit int) string {
	return fmt.Sprintf("Ensure this field has no more than %d characters.", limit)
}

// FieldErrors maps a field name to the list of violations found on it.
type FieldErrors map[string][]string

// Add records a violation against a field.
func (e FieldErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Message renders the violations of the first offending field as a single
// human-readable detail string, e.g.
// "Error occurred on 'category id' field: This field is required."
func (e FieldErrors) Message() string {
	if len(e) == 0 {
		return ""
	}

	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	field := fields[0]
	return fmt.Sprintf("Error occurred on '%s' field: %s",
		strings.ReplaceAll(field, "_", " "), strings.Join(e[field], ", "))
}
