package sigslot

import "errors"

// ErrInvalidHandle is returned when querying or changing the blocked state of
// a connection that no longer exists, either because it was disconnected or
// because the handle never referenced this signal. Disconnecting a stale
// handle is deliberately not an error; disconnect is idempotent.
var ErrInvalidHandle = errors.New("sigslot: invalid connection handle")
