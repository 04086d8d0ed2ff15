package winkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorPos(t *testing.T) {
	mock := installMock(t)
	mock.WithCursorPos(640, 360)

	p, err := CursorPos()
	require.NoError(t, err)
	assert.Equal(t, Point{X: 640, Y: 360}, p)
}

func TestCursorPos_Failure(t *testing.T) {
	mock := installMock(t)
	mock.WithFailure("GetCursorPos", 5)

	_, err := CursorPos()

	var callErr *NativeCallError
	require.ErrorAs(t, err, &callErr)
	assert.Equal(t, "GetCursorPos", callErr.Call)
}

func TestClipCursor(t *testing.T) {
	mock := installMock(t)

	r := rect(0, 0, 1920, 1080)
	require.NoError(t, ClipCursor(&r))
	assert.Equal(t, 1, mock.CallsNamed("ClipCursor"))
}

func TestClipCursor_NilReleasesConfinement(t *testing.T) {
	mock := installMock(t)

	require.NoError(t, ClipCursor(nil))
	assert.Equal(t, 1, mock.CallsNamed("ClipCursor"))
}

func TestClipCursor_Failure(t *testing.T) {
	mock := installMock(t)
	mock.WithFailure("ClipCursor", 5)

	err := ClipCursor(nil)

	var callErr *NativeCallError
	require.ErrorAs(t, err, &callErr)
	assert.Equal(t, "ClipCursor", callErr.Call)
}

func TestIsProcessDPIAware(t *testing.T) {
	mock := installMock(t)

	assert.False(t, IsProcessDPIAware())

	mock.WithDPIAware(true)
	assert.True(t, IsProcessDPIAware())
}

func TestWaitMessage(t *testing.T) {
	installMock(t)

	assert.True(t, WaitMessage())
}

func TestWaitMessage_Failure(t *testing.T) {
	mock := installMock(t)
	mock.WithFailure("WaitMessage", 5)

	assert.False(t, WaitMessage())
}
