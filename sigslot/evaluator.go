package sigslot

import (
	"sync"
	"sync/atomic"
)

// ConnectionEvaluator collects deferred slot invocations until a caller
// drains them. One evaluator may be shared by any number of signals and
// goroutines; its queue is safe for concurrent enqueue (via Emit on deferred
// connections) and draining. The lock is held only around queue mutation,
// never while a slot runs.
type ConnectionEvaluator struct {
	mu    sync.Mutex
	queue []deferredInvocation
}

// deferredInvocation is a zero-argument call with its arguments already
// bound, paired with the liveness cell of its originating connection.
type deferredInvocation struct {
	alive *atomic.Bool
	call  func()
}

func NewConnectionEvaluator() *ConnectionEvaluator {
	return &ConnectionEvaluator{}
}

// EvaluateDeferredConnections runs every invocation enqueued before the call,
// in enqueue order, on the calling goroutine. Invocations whose connection
// was disconnected after enqueue are silently skipped; liveness is checked
// when the invocation is about to run, not when it was enqueued. Invocations
// enqueued while the batch runs are kept for the next call. Draining an empty
// queue is a no-op.
func (e *ConnectionEvaluator) EvaluateDeferredConnections() {
	e.mu.Lock()
	batch := e.queue
	e.queue = nil
	e.mu.Unlock()

	for _, inv := range batch {
		if !inv.alive.Load() {
			continue
		}
		inv.call()
	}
}

// PendingConnections returns the number of invocations waiting to be drained.
func (e *ConnectionEvaluator) PendingConnections() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.queue)
}

func (e *ConnectionEvaluator) enqueue(alive *atomic.Bool, slot func(args []any), args []any) {
	// Arguments are captured by value at emit time; the batch owns its copy.
	bound := make([]any, len(args))
	copy(bound, args)

	e.mu.Lock()
	e.queue = append(e.queue, deferredInvocation{
		alive: alive,
		call:  func() { slot(bound) },
	})
	e.mu.Unlock()
}
