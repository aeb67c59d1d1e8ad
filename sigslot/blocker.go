package sigslot

// ConnectionBlocker blocks a connection for a lexical scope:
//
//	blocker, err := sigslot.NewConnectionBlocker(handle)
//	if err != nil {
//		return err
//	}
//	defer blocker.Release()
//
// Release restores whatever blocked state the connection had when the
// blocker was created, so a connection that was already blocked stays
// blocked afterwards.
type ConnectionBlocker struct {
	handle     ConnectionHandle
	wasBlocked bool
}

// NewConnectionBlocker blocks the handle's connection and remembers its
// previous blocked state. Returns ErrInvalidHandle if the connection no
// longer exists.
func NewConnectionBlocker(h ConnectionHandle) (*ConnectionBlocker, error) {
	was, err := h.Block(true)
	if err != nil {
		return nil, err
	}
	return &ConnectionBlocker{handle: h, wasBlocked: was}, nil
}

// Release restores the blocked state captured at construction. Releasing a
// handle that was disconnected in the meantime is a no-op.
func (b *ConnectionBlocker) Release() {
	_, _ = b.handle.Block(b.wasBlocked)
}
