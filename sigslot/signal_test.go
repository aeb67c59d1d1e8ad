package sigslot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delaneyj/slotparty/sigslot"
)

func TestSignalWithArgumentsInvokesSlot(t *testing.T) {
	var signal sigslot.Signal2[string, int]

	called := false
	handle := signal.Connect(func(text string, number int) {
		called = true
		assert.Equal(t, "The answer:", text)
		assert.Equal(t, 42, number)
	})
	require.True(t, handle.IsActive())

	signal.Emit("The answer:", 42)
	assert.True(t, called)
}

func TestEmitInvokesSlotsInConnectOrder(t *testing.T) {
	var signal sigslot.Signal1[int]

	var order []int
	for i := 0; i < 5; i++ {
		i := i
		signal.Connect(func(int) {
			order = append(order, i)
		})
	}

	signal.Emit(0)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)

	signal.Emit(0)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 0, 1, 2, 3, 4}, order)
}

func TestSlotCanDiscardTrailingArguments(t *testing.T) {
	var signal sigslot.Signal2[bool, int]

	lambdaCalled := false
	signal.Connect1(func(value bool) {
		lambdaCalled = value
	})

	signal.Emit(true, 5)
	assert.True(t, lambdaCalled)

	signal.Emit(false, 5)
	assert.False(t, lambdaCalled)
}

func TestSlotCanDiscardEveryArgument(t *testing.T) {
	var signal sigslot.Signal1[int]

	emitted := false
	signal.Connect0(func() {
		emitted = true
	})

	signal.Emit(4)
	assert.True(t, emitted)
}

func TestBoundArgumentsPrependSlotArguments(t *testing.T) {
	var signal sigslot.Signal2[int, bool]

	signalValue := 0
	boundValue := 0
	signal.Connect1(sigslot.Bind1To1(func(bound, signalled int) {
		boundValue = bound
		signalValue = signalled
	}, 5))

	// The bound value is fixed at connect time but only observable on emit.
	assert.Equal(t, 0, boundValue)

	signal.Emit(10, false)
	assert.Equal(t, 5, boundValue)
	assert.Equal(t, 10, signalValue)
}

func TestBindTwoArguments(t *testing.T) {
	var signal sigslot.Signal1[string]

	var got string
	signal.Connect(sigslot.Bind2To1(func(a, b, c string) {
		got = a + " " + b + " " + c
	}, "fixed", "values"))

	signal.Emit("emitted")
	assert.Equal(t, "fixed values emitted", got)
}

func TestDisconnectAfterConnect(t *testing.T) {
	var signal sigslot.Signal0

	lambdaCallCount := 0
	result := signal.Connect(func() {
		lambdaCallCount++
	})

	lambdaCallCount2 := 0
	signal.Connect(func() {
		lambdaCallCount2++
	})

	signal.Emit()
	require.Equal(t, 1, lambdaCallCount)
	require.Equal(t, 1, lambdaCallCount2)

	result.Disconnect()

	signal.Emit()
	assert.Equal(t, 1, lambdaCallCount)
	assert.Equal(t, 2, lambdaCallCount2)
}

func TestDisconnectInsideSlot(t *testing.T) {
	var signal sigslot.Signal0

	var handle sigslot.ConnectionHandle
	lambdaCallCount := 0
	handle = signal.Connect(func() {
		lambdaCallCount++
		handle.Disconnect()
	})

	lambdaCallCount2 := 0
	signal.Connect(func() {
		lambdaCallCount2++
	})

	signal.Emit()
	require.Equal(t, 1, lambdaCallCount)
	require.Equal(t, 1, lambdaCallCount2)

	signal.Emit()
	assert.Equal(t, 1, lambdaCallCount)
	assert.Equal(t, 2, lambdaCallCount2)
}

func TestSlotDisconnectingLaterSlotSuppressesIt(t *testing.T) {
	var signal sigslot.Signal0

	var victim sigslot.ConnectionHandle
	firstRan := false
	signal.Connect(func() {
		firstRan = true
		victim.Disconnect()
	})

	victimRan := false
	victim = signal.Connect(func() {
		victimRan = true
	})

	signal.Emit()
	assert.True(t, firstRan)
	assert.False(t, victimRan, "a slot removed mid-emission must not run in the same emit")
}

func TestDisconnectAll(t *testing.T) {
	var signal sigslot.Signal0

	lambdaCallCount := 0
	signal.Connect(func() {
		lambdaCallCount++
	})

	lambdaCallCount2 := 0
	h2 := signal.Connect(func() {
		lambdaCallCount2++
	})

	signal.Emit()
	require.Equal(t, 1, lambdaCallCount)
	require.Equal(t, 1, lambdaCallCount2)

	signal.DisconnectAll()

	signal.Emit()
	assert.Equal(t, 1, lambdaCallCount)
	assert.Equal(t, 1, lambdaCallCount2)
	assert.False(t, h2.IsActive())
}

func TestDisconnectIsIdempotentAcrossSignals(t *testing.T) {
	var signal sigslot.Signal0
	var other sigslot.Signal0

	called := false
	handle := signal.Connect(func() { called = true })

	// Disconnecting through the wrong signal is a no-op, not an error.
	other.Disconnect(handle)
	assert.True(t, handle.IsActive())

	signal.Disconnect(handle)
	assert.False(t, handle.IsActive())
	signal.Disconnect(handle)

	signal.Emit()
	assert.False(t, called)
}

func TestZeroValueSignalEmits(t *testing.T) {
	var signal sigslot.Signal1[int]
	signal.Emit(1)

	var empty sigslot.Signal0
	empty.Emit()
	empty.DisconnectAll()
}
