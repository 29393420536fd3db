package parse

import (
	"github.com/signadot/simplejson/ir"
)

// ErrParse is returned, wrapped, for text which is not a JSON document.
var ErrParse = ir.ErrMalformed
