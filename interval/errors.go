package interval

import "errors"

// ErrInvalidInterval signals bounds which do not form a closed interval:
// lo > hi, NaN or infinite bounds.
var ErrInvalidInterval = errors.New("interval: invalid bounds")
