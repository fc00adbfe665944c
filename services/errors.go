package services

import "fmt"

// MissingDataError is returned when the mandatory income form is
// absent for the requested return and year. No partial computation is
// produced.
type MissingDataError struct {
	Form    string
	TaxYear string
}

func (e *MissingDataError) Error() string {
	return fmt.Sprintf("%s form not found for tax year %s - required for tax computation", e.Form, e.TaxYear)
}

// ConfigurationError indicates an operational defect in the rate
// configuration: no rate table for the requested year, a gapped or
// unsorted slab list, or income that no slab covers. It is never a
// user error and always aborts the computation.
type ConfigurationError struct {
	TaxYear string
	Detail  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("rate configuration error for tax year %s: %s", e.TaxYear, e.Detail)
}

// ConflictError is returned when a form write carries a stale
// updated_at: someone else saved the form after the caller read it.
type ConflictError struct {
	Form string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s form was modified by another request - reload and retry", e.Form)
}

// FormValidationErrors collects every field-level validation failure
// on one form so the caller can render all problems at once instead of
// fixing them one request at a time.
type FormValidationErrors struct {
	Form   string
	Errors []error
}

func (e *FormValidationErrors) Error() string {
	return fmt.Sprintf("%s form failed validation: %d invalid field(s)", e.Form, len(e.Errors))
}

// Unwrap exposes the collected field errors to errors.Is/As.
func (e *FormValidationErrors) Unwrap() []error {
	return e.Errors
}
