package validators

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
)

// NonFieldErrorsKey collects reasons that are not tied to a single field,
// such as a malformed JSON body.
const NonFieldErrorsKey = "non_field_errors"

// FieldErrors maps a request field name (as it appears in JSON) to the
// reasons the field was rejected.
type FieldErrors map[string][]string

// Add appends a reason for field.
func (e FieldErrors) Add(field, reason string) {
	e[field] = append(e[field], reason)
}

// Error renders the errors as "field: reason; ..." with fields sorted.
func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(f)
		b.WriteString(": ")
		b.WriteString(strings.Join(e[f], " "))
	}

	return b.String()
}
