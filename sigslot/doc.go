// Package sigslot provides in-process signals: event sources that invoke
// connected slots with the emitted arguments, either inline on the emitting
// goroutine or deferred onto a shared ConnectionEvaluator that is drained on
// demand.
//
//	var clicked sigslot.Signal2[string, float64]
//
//	handle := clicked.Connect(func(text string, number float64) {
//		fmt.Println("first handler says:", text, number)
//	})
//
//	clicked.Emit("pi approximately equals", 3.14159)
//	handle.Disconnect()
//
// A single signal is not safe for unsynchronized connect/disconnect/emit from
// multiple goroutines; callers that need cross-goroutine delivery connect
// through a ConnectionEvaluator, whose queue is the only locked coordination
// point in the package.
//
// Signals must not be copied after first use; copying a subscriber list has
// no sensible semantics. To relocate a signal, MoveFrom transfers its
// connections and every outstanding ConnectionHandle follows them.
package sigslot
