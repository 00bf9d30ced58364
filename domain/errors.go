package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound is returned by stores when no record has the requested id.
var ErrNotFound = errors.New("record not found")

// NonFieldErrors is the ValidationError key for problems not tied to one field.
const NonFieldErrors = "non_field_errors"

// ValidationError maps wire field names to the messages describing why they were rejected.
type ValidationError map[string][]string

func (v ValidationError) Add(field, msg string) {
	v[field] = append(v[field], msg)
}

func (v ValidationError) Has(field string) bool {
	_, ok := v[field]
	return ok
}

// Fields returns the rejected field names in sorted order.
func (v ValidationError) Fields() []string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

func (v ValidationError) Error() string {
	parts := make([]string, 0, len(v))
	for _, f := range v.Fields() {
		parts = append(parts, fmt.Sprintf("%s: %s", f, strings.Join(v[f], " ")))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsValidationError reports whether err carries a ValidationError and returns it.
func AsValidationError(err error) (ValidationError, bool) {
	var verr ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
