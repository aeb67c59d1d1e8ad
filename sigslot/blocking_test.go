package sigslot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delaneyj/slotparty/sigslot"
)

func TestBlockConnection(t *testing.T) {
	var signal sigslot.Signal0

	count := 0
	handle := signal.Connect(func() { count++ })

	blocked, err := signal.IsConnectionBlocked(handle)
	require.NoError(t, err)
	require.False(t, blocked)

	wasBlocked, err := signal.BlockConnection(handle, true)
	require.NoError(t, err)
	assert.False(t, wasBlocked)

	signal.Emit()
	assert.Equal(t, 0, count)

	wasBlocked, err = signal.BlockConnection(handle, false)
	require.NoError(t, err)
	assert.True(t, wasBlocked)

	signal.Emit()
	assert.Equal(t, 1, count)
}

func TestConnectionBlockerBlocksForScope(t *testing.T) {
	var signal sigslot.Signal0

	count := 0
	handle := signal.Connect(func() { count++ })

	func() {
		blocker, err := sigslot.NewConnectionBlocker(handle)
		require.NoError(t, err)
		defer blocker.Release()

		blocked, err := signal.IsConnectionBlocked(handle)
		require.NoError(t, err)
		assert.True(t, blocked)

		signal.Emit()
		assert.Equal(t, 0, count)
	}()

	blocked, err := signal.IsConnectionBlocked(handle)
	require.NoError(t, err)
	assert.False(t, blocked)

	signal.Emit()
	assert.Equal(t, 1, count)
}

func TestConnectionBlockerKeepsPreblockedConnectionsBlocked(t *testing.T) {
	var signal sigslot.Signal0
	handle := signal.Connect(func() {})

	_, err := signal.BlockConnection(handle, true)
	require.NoError(t, err)

	func() {
		blocker, err := sigslot.NewConnectionBlocker(handle)
		require.NoError(t, err)
		defer blocker.Release()

		blocked, err := signal.IsConnectionBlocked(handle)
		require.NoError(t, err)
		assert.True(t, blocked)
	}()

	blocked, err := signal.IsConnectionBlocked(handle)
	require.NoError(t, err)
	assert.True(t, blocked)
}

func TestConnectionBlockerOnStaleHandleErrors(t *testing.T) {
	var signal sigslot.Signal0
	handle := signal.Connect(func() {})

	signal.Disconnect(handle)

	_, err := sigslot.NewConnectionBlocker(handle)
	assert.ErrorIs(t, err, sigslot.ErrInvalidHandle)
}

func TestConnectionBlockerReleaseAfterDisconnectIsNoop(t *testing.T) {
	var signal sigslot.Signal0
	handle := signal.Connect(func() {})

	blocker, err := sigslot.NewConnectionBlocker(handle)
	require.NoError(t, err)

	handle.Disconnect()
	assert.NotPanics(t, blocker.Release)
}
