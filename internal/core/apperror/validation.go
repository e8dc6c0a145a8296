package apperror

import (
	"net/http"
)

// FieldErrors maps a field key to a single human-readable message.
// A later rule writing the same key overwrites the earlier message.
type FieldErrors map[string]string

// Set records a message for field. A nil receiver is not supported;
// use Validation.SetField when the map may not exist yet.
func (f FieldErrors) Set(field, message string) {
	f[field] = message
}

// Empty reports whether no message was recorded.
func (f FieldErrors) Empty() bool {
	return len(f) == 0
}

// Validation accumulates rule failures for a document and its line items.
// Item maps are positionally aligned with the input items slice: an item
// that passed every rule still occupies its slot with an empty map, so the
// caller can match messages back to lines by index.
type Validation struct {
	Fields FieldErrors
	Items  []FieldErrors
}

// NewValidationResult creates an accumulator sized for itemCount line items.
func NewValidationResult(itemCount int) *Validation {
	items := make([]FieldErrors, itemCount)
	for i := range items {
		items[i] = make(FieldErrors)
	}
	return &Validation{
		Fields: make(FieldErrors),
		Items:  items,
	}
}

// SetField records a document-level message.
func (v *Validation) SetField(field, message string) {
	if v.Fields == nil {
		v.Fields = make(FieldErrors)
	}
	v.Fields[field] = message
}

// Item returns the accumulator for line i, growing the slice if a rule
// runs against an index the constructor did not know about.
func (v *Validation) Item(i int) FieldErrors {
	for len(v.Items) <= i {
		v.Items = append(v.Items, make(FieldErrors))
	}
	return v.Items[i]
}

// SetItemField records a message for field on line i.
func (v *Validation) SetItemField(i int, field, message string) {
	v.Item(i).Set(field, message)
}

// Empty reports whether neither the document nor any line collected a message.
func (v *Validation) Empty() bool {
	if !v.Fields.Empty() {
		return false
	}
	for _, item := range v.Items {
		if !item.Empty() {
			return false
		}
	}
	return true
}

// Err converts the accumulator into an AppError, or nil when empty.
func (v *Validation) Err(message string) error {
	if v.Empty() {
		return nil
	}
	return NewValidationFields(message, v.Fields, v.Items)
}

// NewValidationFields creates a validation error (400) carrying the full
// field-keyed error map. Item maps are included only when at least one
// line collected a message, but then the whole aligned slice goes in.
func NewValidationFields(message string, fields FieldErrors, items []FieldErrors) *AppError {
	details := map[string]any{}
	if len(fields) > 0 {
		details["errors"] = fields
	}
	for _, item := range items {
		if !item.Empty() {
			details["items"] = items
			break
		}
	}
	return &AppError{
		Code:       CodeValidation,
		Message:    message,
		Details:    details,
		HTTPStatus: http.StatusBadRequest,
	}
}

// ValidationFields extracts the document-level field map from an error
// produced by NewValidationFields. Returns nil when err is not one.
func ValidationFields(err error) FieldErrors {
	appErr, ok := AsAppError(err)
	if !ok || appErr.Code != CodeValidation {
		return nil
	}
	if f, ok := appErr.Details["errors"].(FieldErrors); ok {
		return f
	}
	return nil
}

// ValidationItems extracts the per-line error maps from an error
// produced by NewValidationFields. Returns nil when none were recorded.
func ValidationItems(err error) []FieldErrors {
	appErr, ok := AsAppError(err)
	if !ok || appErr.Code != CodeValidation {
		return nil
	}
	if items, ok := appErr.Details["items"].([]FieldErrors); ok {
		return items
	}
	return nil
}
