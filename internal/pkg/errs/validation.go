package errs

import "errors"

type attributeError interface {
	Attribute() string
}

// IsValidationFailure reports whether err carries at least one attribute
// validation error, either directly or inside an errors.Join tree.
func IsValidationFailure(err error) bool {
	return errors.Is(err, ErrValueIsRequired) ||
		errors.Is(err, ErrValueIsInvalid) ||
		errors.Is(err, ErrValueIsTooShort) ||
		errors.Is(err, ErrValueIsOutOfRange)
}

// FailedAttributes returns the names of every attribute that failed validation
// in err, in the order the errors were joined. Duplicates are kept once.
func FailedAttributes(err error) []string {
	attributes := make([]string, 0)
	seen := make(map[string]struct{})

	var walk func(error)
	walk = func(e error) {
		if e == nil {
			return
		}

		if a, ok := e.(attributeError); ok {
			name := a.Attribute()
			if _, dup := seen[name]; !dup {
				seen[name] = struct{}{}
				attributes = append(attributes, name)
			}
			return
		}

		switch u := e.(type) {
		case interface{ Unwrap() []error }:
			for _, inner := range u.Unwrap() {
				walk(inner)
			}
		case interface{ Unwrap() error }:
			walk(u.Unwrap())
		}
	}
	walk(err)

	return attributes
}
