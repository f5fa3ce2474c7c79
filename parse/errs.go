package parse

import "github.com/signadot/yflow/token"

// ErrMalformed is wrapped by every error returned from Load.
var ErrMalformed = token.ErrMalformed
