package backup

import "errors"

// ErrMalformed is returned when a backup is not a JSON object of the
// expected shape. It is always joined with a models.ValidationError.
var ErrMalformed = errors.New("malformed backup document")
