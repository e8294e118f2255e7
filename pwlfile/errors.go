package pwlfile

import "errors"

// ErrSyntax indicates text that does not follow the "time value" layout.
var ErrSyntax = errors.New("pwlfile: syntax error")

// ErrBadName indicates FileName was given an empty kind or non-positive
// alphabet/window sizes.
var ErrBadName = errors.New("pwlfile: invalid file name parameters")
