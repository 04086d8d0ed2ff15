package winkit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/winkit/internal/testutil"
)

func TestWindow_BringToTop(t *testing.T) {
	mock := installMock(t)
	mock.WithWindow(0x10, testutil.WindowState{Visible: true})

	w, _ := NewWindow(0x10)

	require.NoError(t, w.BringToTop())
	assert.Equal(t, 1, mock.CallsNamed("BringWindowToTop"))
}

func TestWindow_BringToTop_Failure(t *testing.T) {
	mock := installMock(t)
	mock.WithFailure("BringWindowToTop", 1400).
		WithMessage(1400, "Invalid window handle.")

	w, _ := NewWindow(0x10)

	err := w.BringToTop()

	var callErr *NativeCallError
	require.ErrorAs(t, err, &callErr)
	assert.Equal(t, uint32(1400), callErr.Code)
}

func TestWindow_SetForeground(t *testing.T) {
	mock := installMock(t)
	mock.WithWindow(0x10, testutil.WindowState{Visible: true})

	w, _ := NewWindow(0x10)

	require.NoError(t, w.SetForeground())

	fg, ok := ForegroundWindow()
	require.True(t, ok)
	assert.Equal(t, w, fg)
}

func TestWindow_SetForeground_RefusedWithoutErrorCode(t *testing.T) {
	mock := installMock(t)
	mock.WithFailure("SetForegroundWindow", 0)

	w, _ := NewWindow(0x10)

	err := w.SetForeground()

	assert.ErrorIs(t, err, ErrSetForegroundWindow)

	// No code exists for this refusal, so the slot must never be consulted.
	assert.Zero(t, mock.CallsNamed("GetLastError"))

	var callErr *NativeCallError
	assert.False(t, errors.As(err, &callErr),
		"refusal must not carry a fabricated error code")
}

func TestWindow_SetPos(t *testing.T) {
	mock := installMock(t)
	mock.WithWindow(0x10, testutil.WindowState{Visible: true})

	w, _ := NewWindow(0x10)

	require.NoError(t, w.SetPos(100, 150, 640, 480, ZOrderTop, 0))
	assert.Equal(t, rect(100, 150, 740, 630).native(), mock.Window(0x10).Rect)
}

func TestWindow_SetPos_Failure(t *testing.T) {
	mock := installMock(t)
	mock.WithFailure("SetWindowPos", 87).
		WithMessage(87, "The parameter is incorrect.")

	w, _ := NewWindow(0x10)

	err := w.SetPos(0, 0, 100, 100, ZOrderTopMost, PosNoActivate)

	var callErr *NativeCallError
	require.ErrorAs(t, err, &callErr)
	assert.Equal(t, "SetWindowPos", callErr.Call)
	assert.Equal(t, uint32(87), callErr.Code)
}

func TestWindow_Move(t *testing.T) {
	mock := installMock(t)
	mock.WithWindow(0x10, testutil.WindowState{
		Visible: true,
		Rect:    rect(0, 0, 100, 100).native(),
	})

	w, _ := NewWindow(0x10)

	require.NoError(t, w.Move(300, 400, 800, 600, true))

	r, err := w.Rect()
	require.NoError(t, err)
	assert.Equal(t, rect(300, 400, 1100, 1000), r)
}

func TestWindow_Move_Failure(t *testing.T) {
	mock := installMock(t)
	mock.WithFailure("MoveWindow", 5)

	w, _ := NewWindow(0x10)

	err := w.Move(0, 0, 10, 10, false)

	var callErr *NativeCallError
	require.ErrorAs(t, err, &callErr)
	assert.Equal(t, "MoveWindow", callErr.Call)
}

func TestLockSetForegroundWindow(t *testing.T) {
	mock := installMock(t)

	require.NoError(t, LockSetForegroundWindow(true))
	assert.True(t, mock.ForegroundLocked())

	require.NoError(t, LockSetForegroundWindow(false))
	assert.False(t, mock.ForegroundLocked())
}

func TestLockSetForegroundWindow_Failure(t *testing.T) {
	mock := installMock(t)
	mock.WithFailure("LockSetForegroundWindow", 5)

	err := LockSetForegroundWindow(true)

	var callErr *NativeCallError
	require.ErrorAs(t, err, &callErr)
	assert.Equal(t, "LockSetForegroundWindow", callErr.Call)
}
