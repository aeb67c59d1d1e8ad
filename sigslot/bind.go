package sigslot

// The BindMToN adapters fix M leading slot arguments at connect time and
// leave N arguments to come from the signal. Bound values are evaluated once,
// when the adapter is built, never per emission. The returned function
// matches one of the Connect/ConnectK slot shapes, so bound and discarded
// arguments compose:
//
//	var s sigslot.Signal2[int, bool]
//	s.Connect1(sigslot.Bind1To1(fn, 5))
//
// connects fn(bound, signalled int) with its first argument fixed to 5, fed
// by the signal's first argument, with the trailing bool discarded.

// Bind1To0 fixes the only argument of fn.
func Bind1To0[B0 any](fn func(B0), b0 B0) func() {
	return func() { fn(b0) }
}

// Bind1To1 fixes the first argument of fn; the remaining one is supplied by
// the signal.
func Bind1To1[B0, T0 any](fn func(B0, T0), b0 B0) func(T0) {
	return func(a0 T0) { fn(b0, a0) }
}

// Bind1To2 fixes the first argument of fn; the remaining two are supplied by
// the signal.
func Bind1To2[B0, T0, T1 any](fn func(B0, T0, T1), b0 B0) func(T0, T1) {
	return func(a0 T0, a1 T1) { fn(b0, a0, a1) }
}

// Bind1To3 fixes the first argument of fn; the remaining three are supplied
// by the signal.
func Bind1To3[B0, T0, T1, T2 any](fn func(B0, T0, T1, T2), b0 B0) func(T0, T1, T2) {
	return func(a0 T0, a1 T1, a2 T2) { fn(b0, a0, a1, a2) }
}

// Bind2To0 fixes both arguments of fn.
func Bind2To0[B0, B1 any](fn func(B0, B1), b0 B0, b1 B1) func() {
	return func() { fn(b0, b1) }
}

// Bind2To1 fixes the first two arguments of fn; the remaining one is supplied
// by the signal.
func Bind2To1[B0, B1, T0 any](fn func(B0, B1, T0), b0 B0, b1 B1) func(T0) {
	return func(a0 T0) { fn(b0, b1, a0) }
}

// Bind2To2 fixes the first two arguments of fn; the remaining two are
// supplied by the signal.
func Bind2To2[B0, B1, T0, T1 any](fn func(B0, B1, T0, T1), b0 B0, b1 B1) func(T0, T1) {
	return func(a0 T0, a1 T1) { fn(b0, b1, a0, a1) }
}
