package sigslot

type Signal0 struct {
	base
}

func (s *Signal0) Connect(fn func()) ConnectionHandle {
	return s.connect(func(args []any) { fn() })
}

func (s *Signal0) ConnectDeferred(evaluator *ConnectionEvaluator, fn func()) ConnectionHandle {
	return s.connectDeferred(evaluator, func(args []any) { fn() })
}

func (s *Signal0) Emit() {
	s.emit(nil)
}

func (s *Signal0) MoveFrom(src *Signal0) {
	s.moveFrom(&src.base)
}

type Signal1[T0 any] struct {
	base
}

func (s *Signal1[T0]) Connect(fn func(T0)) ConnectionHandle {
	return s.connect(func(args []any) { fn(args[0].(T0)) })
}

func (s *Signal1[T0]) Connect0(fn func()) ConnectionHandle {
	return s.connect(func(args []any) { fn() })
}

func (s *Signal1[T0]) ConnectDeferred(evaluator *ConnectionEvaluator, fn func(T0)) ConnectionHandle {
	return s.connectDeferred(evaluator, func(args []any) { fn(args[0].(T0)) })
}

func (s *Signal1[T0]) ConnectDeferred0(evaluator *ConnectionEvaluator, fn func()) ConnectionHandle {
	return s.connectDeferred(evaluator, func(args []any) { fn() })
}

func (s *Signal1[T0]) Emit(a0 T0) {
	s.emit([]any{a0})
}

func (s *Signal1[T0]) MoveFrom(src *Signal1[T0]) {
	s.moveFrom(&src.base)
}

type Signal2[T0, T1 any] struct {
	base
}

func (s *Signal2[T0, T1]) Connect(fn func(T0, T1)) ConnectionHandle {
	return s.connect(func(args []any) { fn(args[0].(T0), args[1].(T1)) })
}

func (s *Signal2[T0, T1]) Connect1(fn func(T0)) ConnectionHandle {
	return s.connect(func(args []any) { fn(args[0].(T0)) })
}

func (s *Signal2[T0, T1]) Connect0(fn func()) ConnectionHandle {
	return s.connect(func(args []any) { fn() })
}

func (s *Signal2[T0, T1]) ConnectDeferred(evaluator *ConnectionEvaluator, fn func(T0, T1)) ConnectionHandle {
	return s.connectDeferred(evaluator, func(args []any) { fn(args[0].(T0), args[1].(T1)) })
}

func (s *Signal2[T0, T1]) ConnectDeferred1(evaluator *ConnectionEvaluator, fn func(T0)) ConnectionHandle {
	return s.connectDeferred(evaluator, func(args []any) { fn(args[0].(T0)) })
}

func (s *Signal2[T0, T1]) ConnectDeferred0(evaluator *ConnectionEvaluator, fn func()) ConnectionHandle {
	return s.connectDeferred(evaluator, func(args []any) { fn() })
}

func (s *Signal2[T0, T1]) Emit(a0 T0, a1 T1) {
	s.emit([]any{a0, a1})
}

func (s *Signal2[T0, T1]) MoveFrom(src *Signal2[T0, T1]) {
	s.moveFrom(&src.base)
}

type Signal3[T0, T1, T2 any] struct {
	base
}

func (s *Signal3[T0, T1, T2]) Connect(fn func(T0, T1, T2)) ConnectionHandle {
	return s.connect(func(args []any) { fn(args[0].(T0), args[1].(T1), args[2].(T2)) })
}

func (s *Signal3[T0, T1, T2]) Connect2(fn func(T0, T1)) ConnectionHandle {
	return s.connect(func(args []any) { fn(args[0].(T0), args[1].(T1)) })
}

func (s *Signal3[T0, T1, T2]) Connect1(fn func(T0)) ConnectionHandle {
	return s.connect(func(args []any) { fn(args[0].(T0)) })
}

func (s *Signal3[T0, T1, T2]) Connect0(fn func()) ConnectionHandle {
	return s.connect(func(args []any) { fn() })
}

func (s *Signal3[T0, T1, T2]) ConnectDeferred(evaluator *ConnectionEvaluator, fn func(T0, T1, T2)) ConnectionHandle {
	return s.connectDeferred(evaluator, func(args []any) { fn(args[0].(T0), args[1].(T1), args[2].(T2)) })
}

func (s *Signal3[T0, T1, T2]) ConnectDeferred2(evaluator *ConnectionEvaluator, fn func(T0, T1)) ConnectionHandle {
	return s.connectDeferred(evaluator, func(args []any) { fn(args[0].(T0), args[1].(T1)) })
}

func (s *Signal3[T0, T1, T2]) ConnectDeferred1(evaluator *ConnectionEvaluator, fn func(T0)) ConnectionHandle {
	return s.connectDeferred(evaluator, func(args []any) { fn(args[0].(T0)) })
}

func (s *Signal3[T0, T1, T2]) ConnectDeferred0(evaluator *ConnectionEvaluator, fn func()) ConnectionHandle {
	return s.connectDeferred(evaluator, func(args []any) { fn() })
}

func (s *Signal3[T0, T1, T2]) Emit(a0 T0, a1 T1, a2 T2) {
	s.emit([]any{a0, a1, a2})
}

func (s *Signal3[T0, T1, T2]) MoveFrom(src *Signal3[T0, T1, T2]) {
	s.moveFrom(&src.base)
}
