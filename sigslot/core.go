package sigslot

import "sync/atomic"

// Signal is implemented by every signal arity in this package. It exists so
// ConnectionHandle.BelongsTo can take any of them.
type Signal interface {
	signalCore() *core
}

// connection is the record for one subscription. The alive flag is shared
// with every handle issued for it and with any pending deferred invocation,
// so disconnection is observable after the record has left the signal.
type connection struct {
	id        uint64
	slot      func(args []any)
	blocked   bool
	alive     *atomic.Bool
	evaluator *ConnectionEvaluator // non-nil marks the connection deferred
}

// core owns the ordered connection records of one signal. Handles reference
// the core directly, so it doubles as the signal's stable identity token:
// moving a signal hands the whole core to the destination and every
// outstanding handle follows it.
type core struct {
	conns  []*connection
	nextID uint64
}

func (c *core) connect(slot func(args []any), ev *ConnectionEvaluator) ConnectionHandle {
	c.nextID++
	alive := &atomic.Bool{}
	alive.Store(true)
	cn := &connection{
		id:        c.nextID,
		slot:      slot,
		alive:     alive,
		evaluator: ev,
	}
	c.conns = append(c.conns, cn)
	return ConnectionHandle{c: c, id: cn.id, alive: alive}
}

func (c *core) disconnect(id uint64) {
	for i, cn := range c.conns {
		if cn.id == id {
			cn.alive.Store(false)
			c.conns = append(c.conns[:i], c.conns[i+1:]...)
			return
		}
	}
}

func (c *core) disconnectAll() {
	for _, cn := range c.conns {
		cn.alive.Store(false)
	}
	c.conns = c.conns[:0]
}

func (c *core) find(id uint64) (*connection, error) {
	for _, cn := range c.conns {
		if cn.id == id {
			return cn, nil
		}
	}
	return nil, ErrInvalidHandle
}

// emit walks a snapshot of the current records so slots may disconnect
// themselves or later slots mid-emission. Liveness and the blocked flag are
// re-checked per record, so an entry removed earlier in the same emission is
// skipped rather than revisited.
func (c *core) emit(args []any) {
	if len(c.conns) == 0 {
		return
	}
	snapshot := make([]*connection, len(c.conns))
	copy(snapshot, c.conns)
	for _, cn := range snapshot {
		if !cn.alive.Load() || cn.blocked {
			continue
		}
		if cn.evaluator != nil {
			cn.evaluator.enqueue(cn.alive, cn.slot, args)
		} else {
			cn.slot(args)
		}
	}
}

// base carries everything about a signal that does not depend on its arity.
// The generated SignalN types embed it.
type base struct {
	c *core
}

func (b *base) ensure() *core {
	if b.c == nil {
		b.c = &core{}
	}
	return b.c
}

func (b *base) signalCore() *core { return b.c }

func (b *base) connect(slot func(args []any)) ConnectionHandle {
	return b.ensure().connect(slot, nil)
}

func (b *base) connectDeferred(ev *ConnectionEvaluator, slot func(args []any)) ConnectionHandle {
	if ev == nil {
		panic("sigslot: deferred connection requires an evaluator")
	}
	return b.ensure().connect(slot, ev)
}

func (b *base) emit(args []any) {
	if b.c == nil {
		return
	}
	b.c.emit(args)
}

// moveFrom transfers every record of src, re-pointing all of src's
// outstanding handles at the receiver. Existing connections of the receiver
// are dropped first; src is left with no connections.
func (b *base) moveFrom(src *base) {
	if src == b {
		return
	}
	if b.c != nil {
		b.c.disconnectAll()
	}
	b.c = src.c
	src.c = nil
}

// Disconnect removes the connection referenced by the handle. Stale handles
// and handles issued by a different signal are a no-op.
func (b *base) Disconnect(h ConnectionHandle) {
	if b.c == nil || h.c != b.c {
		return
	}
	b.c.disconnect(h.id)
}

// DisconnectAll removes every connection; all outstanding handles become
// inactive. Use it to tear a signal down before dropping it, so handles and
// pending deferred invocations observe its end of life.
func (b *base) DisconnectAll() {
	if b.c == nil {
		return
	}
	b.c.disconnectAll()
}

// BlockConnection sets the blocked flag on the referenced connection and
// returns the previous value. A blocked connection keeps its place in the
// signal but is skipped during emission. Returns ErrInvalidHandle if the
// handle does not reference a live record in this signal.
func (b *base) BlockConnection(h ConnectionHandle, blocked bool) (bool, error) {
	cn, err := b.findHandle(h)
	if err != nil {
		return false, err
	}
	was := cn.blocked
	cn.blocked = blocked
	return was, nil
}

// IsConnectionBlocked reports whether the referenced connection is blocked.
// Returns ErrInvalidHandle under the same condition as BlockConnection.
func (b *base) IsConnectionBlocked(h ConnectionHandle) (bool, error) {
	cn, err := b.findHandle(h)
	if err != nil {
		return false, err
	}
	return cn.blocked, nil
}

func (b *base) findHandle(h ConnectionHandle) (*connection, error) {
	if b.c == nil || h.c != b.c {
		return nil, ErrInvalidHandle
	}
	return b.c.find(h.id)
}
