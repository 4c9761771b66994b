package engine

import "errors"

// ErrActivationRequired is returned by Process for auto detection when the engine is gated
// and no well-formed activation code was supplied.
var ErrActivationRequired = errors.New("auto detection requires a valid activation code")
