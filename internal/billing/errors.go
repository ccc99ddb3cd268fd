package billing

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/gookit/validate"
)

// Not-found conditions are non-fatal: the store stays usable after any of
// them, callers decide whether to surface or ignore.
var (
	ErrClientNotFound       = errors.New("client not found")
	ErrMeetingNotFound      = errors.New("meeting not found")
	ErrInvoiceNotFound      = errors.New("invoice not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNoBillableMeetings   = errors.New("no billable meetings")
	ErrInvalidFormat        = errors.New("invalid format")
)

// ValidationError reports rejected form input. The operation that returned it
// performed no mutation and nothing was persisted.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	sort.Strings(parts)
	return "validation failed: " + strings.Join(parts, "; ")
}

func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// ValidateForm runs struct-tag validation and converts the result into a
// *ValidationError carrying one message per failed field, keyed by the
// field's json name.
func ValidateForm(form interface{}) error {
	v := validate.Struct(form)
	v.StopOnError = false
	if v.Validate() {
		return nil
	}
	names := jsonFieldNames(form)
	fields := make(map[string]string, len(v.Errors))
	for field, msgs := range v.Errors {
		name := field
		if tag, ok := names[field]; ok {
			name = tag
		}
		for _, msg := range msgs {
			fields[name] = msg
			break
		}
	}
	return &ValidationError{Fields: fields}
}

func jsonFieldNames(form interface{}) map[string]string {
	t := reflect.TypeOf(form)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	names := make(map[string]string)
	if t.Kind() != reflect.Struct {
		return names
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("json")
		if idx := strings.Index(tag, ","); idx >= 0 {
			tag = tag[:idx]
		}
		if tag == "" || tag == "-" {
			continue
		}
		names[field.Name] = tag
		names[tag] = tag
	}
	return names
}
