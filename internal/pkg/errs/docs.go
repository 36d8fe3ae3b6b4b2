// Package errs provides standardized error types for the devbook application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: a required attribute is blank or missing
//   - ValueIsInvalidError: an attribute holds an unacceptable value
//   - ValueIsTooShortError: an attribute is shorter than its minimum length
//   - ValueIsOutOfRangeError: a value falls outside its allowed bounds
//   - ObjectNotFoundError: a persisted object cannot be found
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for errors.Is support
//
// The attribute errors together form a validation failure. Domain constructors join
// them with errors.Join so that callers can report every failed attribute at once
// through FailedAttributes.
package errs
