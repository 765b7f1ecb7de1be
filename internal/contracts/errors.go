package contracts

import "errors"

// ErrInvalidDateFormat is returned when a caller-supplied local date
// string does not parse as YYYY-MM-DD. It is surfaced to the caller and
// never retried internally: the engine is pure, so retrying the same
// bad input cannot succeed.
var ErrInvalidDateFormat = errors.New("invalid date format, want YYYY-MM-DD")
