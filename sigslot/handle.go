package sigslot

import "sync/atomic"

// ConnectionHandle is a copyable token referencing one connection without
// owning the signal. The zero value is an inactive handle belonging to no
// signal. Copies share the underlying record: disconnecting through any copy
// deactivates all of them.
type ConnectionHandle struct {
	c     *core
	id    uint64
	alive *atomic.Bool
}

// IsActive reports whether the connection still exists, i.e. the owning
// signal has neither disconnected it nor been torn down.
func (h ConnectionHandle) IsActive() bool {
	return h.alive != nil && h.alive.Load()
}

// Disconnect removes the connection from its signal. Stale and zero handles
// are a no-op, and disconnecting twice is fine.
func (h ConnectionHandle) Disconnect() {
	if !h.IsActive() {
		return
	}
	h.c.disconnect(h.id)
}

// BelongsTo reports whether this handle was issued by s. It is false for the
// zero handle against any signal, including an empty one, and it follows the
// records when a signal is moved.
func (h ConnectionHandle) BelongsTo(s Signal) bool {
	return h.c != nil && s != nil && h.c == s.signalCore()
}

// Block sets the blocked flag on the connection and returns the previous
// value. Returns ErrInvalidHandle if the connection no longer exists.
func (h ConnectionHandle) Block(blocked bool) (bool, error) {
	cn, err := h.record()
	if err != nil {
		return false, err
	}
	was := cn.blocked
	cn.blocked = blocked
	return was, nil
}

// IsBlocked reports whether the connection is blocked. Returns
// ErrInvalidHandle if the connection no longer exists.
func (h ConnectionHandle) IsBlocked() (bool, error) {
	cn, err := h.record()
	if err != nil {
		return false, err
	}
	return cn.blocked, nil
}

func (h ConnectionHandle) record() (*connection, error) {
	if h.c == nil || !h.IsActive() {
		return nil, ErrInvalidHandle
	}
	return h.c.find(h.id)
}
