package conlog

import "errors"

// ErrNoBuilder is returned by New when no LogBuilder collaborator is
// supplied; the output cannot produce canonical records without one.
var ErrNoBuilder = errors.New("conlog: no log builder configured")
