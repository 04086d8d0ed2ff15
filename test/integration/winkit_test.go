//go:build windows && integration

package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/winkit"
)

// These tests run against the live desktop and only assert facts that hold
// on any interactive Windows session.

func TestIntegration_DesktopWindow(t *testing.T) {
	w := winkit.DesktopWindow()

	assert.NotZero(t, w.Handle(), "Desktop window should always exist")
	assert.True(t, w.Exists())
	assert.True(t, w.Visible())
}

func TestIntegration_EnumWindows(t *testing.T) {
	windows := winkit.AllWindows()

	require.NotEmpty(t, windows, "An interactive session has top-level windows")

	for _, w := range windows {
		assert.NotZero(t, w.Handle())
	}
}

func TestIntegration_DesktopGeometry(t *testing.T) {
	w := winkit.DesktopWindow()

	r, err := w.Rect()
	require.NoError(t, err)
	assert.Positive(t, r.Width())
	assert.Positive(t, r.Height())
}

func TestIntegration_MonitorLookups(t *testing.T) {
	m := winkit.MonitorFromPoint(0, 0, winkit.NearestMonitor)
	assert.True(t, m.Valid(), "The nearest fallback always resolves a monitor")

	primary := winkit.MonitorFromPoint(0, 0, winkit.PrimaryMonitor)
	assert.True(t, primary.Valid())
}

func TestIntegration_ScaleFactor(t *testing.T) {
	scale := winkit.ScaleFactorForDevice()

	// 100 is unscaled; anything below that would be a binding bug.
	assert.GreaterOrEqual(t, scale, 100)
}

func TestIntegration_CursorPos(t *testing.T) {
	_, err := winkit.CursorPos()
	assert.NoError(t, err)
}

func TestIntegration_FindWindow_NoMatch(t *testing.T) {
	_, err := winkit.FindWindow("winkit-no-such-window-8b1f2c")

	var callErr *winkit.NativeCallError
	require.ErrorAs(t, err, &callErr)
	assert.Equal(t, "FindWindowW", callErr.Call)
}
